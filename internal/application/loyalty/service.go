package loyalty

import (
	"context"

	domain "github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/loyalty"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/observability"
)

type Service struct {
	repo domain.Repository
	log  observability.Logger
}

func NewService(repo domain.Repository, logger observability.Logger) *Service {
	if logger == nil {
		logger = observability.NopLogger()
	}
	return &Service{
		repo: repo,
		log:  logger.With(observability.F("component", "loyalty_service")),
	}
}

// Points returns the user's balance; unknown users get a zero balance.
func (s *Service) Points(ctx context.Context, userID int) (domain.Points, error) {
	points, err := s.repo.PointsFor(ctx, userID)
	if err != nil {
		return domain.Points{}, err
	}
	return domain.Points{UserID: userID, Points: points}, nil
}
