package auth

import (
	"context"

	domain "github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/user"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/observability"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/observability/logctx"
)

// Service performs plaintext credential checks against the seeded user
// table. There are no sessions or tokens; every call is a fresh comparison.
type Service struct {
	users domain.Repository
	log   observability.Logger
}

func NewService(users domain.Repository, logger observability.Logger) *Service {
	if logger == nil {
		logger = observability.NopLogger()
	}
	return &Service{
		users: users,
		log:   logger.With(observability.F("component", "auth_service")),
	}
}

func (s *Service) Login(ctx context.Context, username, password string) error {
	if err := s.users.Authenticate(ctx, username, password); err != nil {
		logctx.FromOr(ctx, s.log).Warn("login_failed",
			observability.F("username", username),
		)
		return err
	}
	logctx.FromOr(ctx, s.log).Info("login_succeeded",
		observability.F("username", username),
	)
	return nil
}
