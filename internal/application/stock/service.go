package stock

import (
	"context"
	"errors"
	"fmt"

	domloc "github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/location"
	domain "github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/stock"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/observability"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/observability/logctx"
)

const componentStockService = "stock_service"

// Service answers stock queries against the ledger and maintains the
// per-location materialized views derived from it.
type Service struct {
	ledger    domain.Ledger
	locations domloc.Repository
	log       observability.Logger
}

func NewService(ledger domain.Ledger, locations domloc.Repository, logger observability.Logger) *Service {
	if logger == nil {
		logger = observability.NopLogger()
	}
	return &Service{
		ledger:    ledger,
		locations: locations,
		log:       logger.With(observability.F("component", componentStockService)),
	}
}

func (s *Service) ListStock(ctx context.Context) ([]domain.Entry, error) {
	return s.ledger.List(ctx)
}

func (s *Service) Entry(ctx context.Context, productID int) (domain.Entry, error) {
	return s.ledger.Get(ctx, productID)
}

func (s *Service) ListLocations(ctx context.Context) ([]*domloc.Location, error) {
	return s.locations.List(ctx)
}

func (s *Service) Location(ctx context.Context, locationID int) (*domloc.Location, error) {
	return s.locations.Get(ctx, locationID)
}

// LocationStock returns the location's current materialized view.
func (s *Service) LocationStock(ctx context.Context, locationID int) ([]domain.Entry, error) {
	loc, err := s.locations.Get(ctx, locationID)
	if err != nil {
		return nil, err
	}
	return loc.Stock, nil
}

// LocationEntry returns the view entry for one product; ErrNotFound when the
// location does not carry it.
func (s *Service) LocationEntry(ctx context.Context, locationID, productID int) (domain.Entry, error) {
	loc, err := s.locations.Get(ctx, locationID)
	if err != nil {
		return domain.Entry{}, err
	}
	e, ok := loc.StockFor(productID)
	if !ok {
		return domain.Entry{}, domain.ErrNotFound
	}
	return e, nil
}

// Refresh rebuilds a location's view from the ledger: one entry per carried
// product still present in the ledger, at the ledger's current quantity.
// Unknown locations are a no-op.
func (s *Service) Refresh(ctx context.Context, locationID int) error {
	loc, err := s.locations.Get(ctx, locationID)
	if err != nil {
		if errors.Is(err, domloc.ErrNotFound) {
			logctx.FromOr(ctx, s.log).Debug("refresh_skipped_unknown_location",
				observability.F("location_id", locationID),
			)
			return nil
		}
		return fmt.Errorf("stock: load location: %w", err)
	}

	view := make([]domain.Entry, 0, len(loc.Carried))
	for _, pid := range loc.Carried {
		e, err := s.ledger.Get(ctx, pid)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Products dropped from the ledger disappear from the view.
				continue
			}
			return fmt.Errorf("stock: read ledger: %w", err)
		}
		view = append(view, e)
	}

	if err := s.locations.ReplaceStock(ctx, locationID, view); err != nil {
		return fmt.Errorf("stock: replace view: %w", err)
	}

	logctx.FromOr(ctx, s.log).Info("location_view_refreshed",
		observability.F("location_id", locationID),
		observability.F("entries", len(view)),
	)
	return nil
}
