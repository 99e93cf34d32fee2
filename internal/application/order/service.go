package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	domain "github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/order"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/observability"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/observability/logctx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	componentOrderService = "order_service"
	useCaseOrderCreate    = "order.create"
	useCaseOrderList      = "order.list"
)

// Service owns the order workflow: persist the order, then announce it on the
// notification channel. The announcement is strictly best-effort and strictly
// after the store commit.
type Service struct {
	repo      domain.Repository
	publisher Publisher
	tel       observability.Telemetry

	log          observability.Logger
	reqCounter   observability.Counter
	durHistogram observability.Histogram
}

func NewService(repo domain.Repository, publisher Publisher, tel observability.Telemetry) *Service {
	if tel == nil {
		tel = observability.NopTelemetry()
	}
	return &Service{
		repo:         repo,
		publisher:    publisher,
		tel:          tel,
		log:          tel.Logger().With(observability.F("component", componentOrderService)),
		reqCounter:   tel.Counter(observability.MUsecaseRequests),
		durHistogram: tel.Histogram(observability.MUsecaseDuration),
	}
}

type CreateOrderInput struct {
	OrderID    int
	UserID     int
	ProductIDs []int
	Quantities []int
	LocationID int
}

// CreateOrder validates and stores the order, then hands it to the publisher.
// A publish failure is logged and swallowed: the order exists regardless.
func (s *Service) CreateOrder(ctx context.Context, input CreateOrderInput) (err error) {
	logger := logctx.FromOr(ctx, s.log).With(observability.F("use_case", useCaseOrderCreate))

	ctx, span := s.tel.Tracer().Start(ctx, "UC.CreateOrder",
		attribute.Int("order.id", input.OrderID),
		attribute.Int("order.user_id", input.UserID),
		attribute.Int("order.location_id", input.LocationID),
	)
	start := time.Now()
	outcome := "success"

	defer func() {
		if err != nil {
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
		s.reqCounter.Add(1,
			observability.L("use_case", useCaseOrderCreate),
			observability.L("outcome", outcome),
		)
		s.durHistogram.Observe(time.Since(start).Seconds(),
			observability.L("use_case", useCaseOrderCreate),
		)
	}()

	entity, err := domain.New(input.OrderID, input.UserID, input.ProductIDs, input.Quantities, input.LocationID)
	if err != nil {
		logger.Warn("order_rejected", observability.F("error", err.Error()))
		return err
	}

	if err := s.repo.Save(ctx, entity); err != nil {
		logger.Error("order_save_failed",
			observability.F("order_id", entity.ID),
			observability.F("error", err.Error()),
		)
		return fmt.Errorf("order: save: %w", err)
	}

	span.AddEvent("order.created")
	logger.Info("order_created",
		observability.F("order_id", entity.ID),
		observability.F("lines", len(entity.ProductIDs)),
	)

	// The order is committed; from here on nothing may fail the request.
	if s.publisher != nil {
		event := domain.NewCreatedEvent(uuid.NewString(), entity)
		if pubErr := s.publisher.Publish(ctx, event); pubErr != nil {
			logger.Warn("order_publish_failed",
				observability.F("order_id", entity.ID),
				observability.F("error", pubErr.Error()),
			)
		}
	}

	return nil
}

// ListOrders returns all orders in insertion order.
func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("order: list: %w", err)
	}
	logctx.FromOr(ctx, s.log).Debug("orders_listed",
		observability.F("use_case", useCaseOrderList),
		observability.F("count", len(orders)),
	)
	return orders, nil
}
