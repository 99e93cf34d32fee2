package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	domorder "github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/order"
	domain "github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/payment"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/stock"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/observability"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/observability/logctx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	componentPaymentService = "payment_service"
	useCasePaymentProcess   = "payment.process"
)

// Service is the payment orchestrator: it validates the payment against an
// existing order, debits the ledger, refreshes the order location's stock
// view, and records the payment outcome — in that order.
type Service struct {
	orders   domorder.Repository
	ledger   stock.Ledger
	payments domain.Repository
	view     LocationView

	// allowReprocess restores the legacy double-debit on repeated payments.
	allowReprocess bool

	tel          observability.Telemetry
	log          observability.Logger
	reqCounter   observability.Counter
	durHistogram observability.Histogram
}

func NewService(
	orders domorder.Repository,
	ledger stock.Ledger,
	payments domain.Repository,
	view LocationView,
	allowReprocess bool,
	tel observability.Telemetry,
) *Service {
	if tel == nil {
		tel = observability.NopTelemetry()
	}
	return &Service{
		orders:         orders,
		ledger:         ledger,
		payments:       payments,
		view:           view,
		allowReprocess: allowReprocess,
		tel:            tel,
		log:            tel.Logger().With(observability.F("component", componentPaymentService)),
		reqCounter:     tel.Counter(observability.MUsecaseRequests),
		durHistogram:   tel.Histogram(observability.MUsecaseDuration),
	}
}

// Process transitions an order to paid. The whole debit is atomic: an order
// line naming an unknown product fails the call before any quantity changes.
func (s *Service) Process(ctx context.Context, orderID int, status string) (err error) {
	logger := logctx.FromOr(ctx, s.log).With(
		observability.F("use_case", useCasePaymentProcess),
		observability.F("order_id", orderID),
	)

	ctx, span := s.tel.Tracer().Start(ctx, "UC.ProcessPayment",
		attribute.Int("payment.order_id", orderID),
		attribute.String("payment.status", status),
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
			observability.L("use_case", useCasePaymentProcess),
			observability.L("outcome", outcome),
		)
		s.durHistogram.Observe(time.Since(start).Seconds(),
			observability.L("use_case", useCasePaymentProcess),
		)
	}()

	o, err := s.orders.Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, domorder.ErrNotFound) {
			logger.Warn("payment_order_not_found")
			return domorder.ErrNotFound
		}
		return fmt.Errorf("payment: load order: %w", err)
	}

	if !s.allowReprocess {
		if _, lookupErr := s.payments.Get(ctx, orderID); lookupErr == nil {
			logger.Warn("payment_already_paid")
			return domain.ErrAlreadyPaid
		} else if !errors.Is(lookupErr, domain.ErrNotFound) {
			return fmt.Errorf("payment: lookup: %w", lookupErr)
		}
	}

	entries, err := s.ledger.DebitAll(ctx, o.Lines())
	if err != nil {
		if errors.Is(err, stock.ErrNotFound) {
			logger.Warn("payment_product_not_found")
			return stock.ErrNotFound
		}
		return fmt.Errorf("payment: debit: %w", err)
	}
	span.AddEvent("ledger.debited", trace.WithAttributes(attribute.Int("payment.lines", len(entries))))

	if err := s.view.Refresh(ctx, o.LocationID); err != nil {
		return fmt.Errorf("payment: refresh location %d: %w", o.LocationID, err)
	}

	if err := s.payments.Save(ctx, domain.Payment{OrderID: orderID, Status: status}); err != nil {
		return fmt.Errorf("payment: save: %w", err)
	}

	logger.Info("payment_processed",
		observability.F("status", status),
		observability.F("lines", len(entries)),
	)
	return nil
}
