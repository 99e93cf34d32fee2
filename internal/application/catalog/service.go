package catalog

import (
	"context"
	"strings"

	domain "github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/catalog"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/observability"
)

// Service is the read-only catalog: listing, substring filters, and
// same-category recommendations. All matching is case-insensitive.
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
		log:  logger.With(observability.F("component", "catalog_service")),
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, productID int) (domain.Product, error) {
	return s.repo.Get(ctx, productID)
}

// ByName returns products whose name contains the given substring.
func (s *Service) ByName(ctx context.Context, name string) ([]domain.Product, error) {
	return s.filter(ctx, func(p domain.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), strings.ToLower(name))
	})
}

// ByCategory returns products whose category contains the given substring.
func (s *Service) ByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.filter(ctx, func(p domain.Product) bool {
		return strings.Contains(strings.ToLower(p.Category), strings.ToLower(category))
	})
}

// InCategory fetches a product by id and checks it belongs to the category;
// ErrNotFound either way it fails.
func (s *Service) InCategory(ctx context.Context, category string, productID int) (domain.Product, error) {
	p, err := s.repo.Get(ctx, productID)
	if err != nil {
		return domain.Product{}, err
	}
	if !strings.Contains(strings.ToLower(p.Category), strings.ToLower(category)) {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, nil
}

// Recommendations returns every product sharing the exact category of the
// given product, the product itself included.
func (s *Service) Recommendations(ctx context.Context, productID int) ([]domain.Product, error) {
	p, err := s.repo.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	category := strings.ToLower(p.Category)
	return s.filter(ctx, func(candidate domain.Product) bool {
		return strings.ToLower(candidate.Category) == category
	})
}

func (s *Service) filter(ctx context.Context, keep func(domain.Product) bool) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out, nil
}
