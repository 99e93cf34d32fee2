package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appAuth "github.com/neftalics/Lab01-Inkafarma-Software/internal/application/auth"
	appCatalog "github.com/neftalics/Lab01-Inkafarma-Software/internal/application/catalog"
	appLoyalty "github.com/neftalics/Lab01-Inkafarma-Software/internal/application/loyalty"
	appOrder "github.com/neftalics/Lab01-Inkafarma-Software/internal/application/order"
	appPayment "github.com/neftalics/Lab01-Inkafarma-Software/internal/application/payment"
	appStock "github.com/neftalics/Lab01-Inkafarma-Software/internal/application/stock"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/config"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/infrastructure/memory"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/infrastructure/notify"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/infrastructure/observability/oteltrace"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/infrastructure/observability/prometrics"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/infrastructure/observability/telemetry"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/infrastructure/observability/zaplogger"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/observability"
	httppresentation "github.com/neftalics/Lab01-Inkafarma-Software/internal/presentation/http"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.Load()

	logger := zaplogger.New(
		observability.F("service", cfg.ServiceName),
		observability.F("env", cfg.Env),
	)

	metrics := prometrics.New(cfg.ServiceName, "")
	counters := map[observability.MetricKey]observability.Counter{
		observability.MUsecaseRequests: metrics.Counter(
			string(observability.MUsecaseRequests),
			"Total number of use case invocations.",
			"use_case", "outcome",
		),
		observability.MHTTPRequests: metrics.Counter(
			string(observability.MHTTPRequests),
			"Total number of HTTP requests.",
			"method", "route", "status",
		),
		observability.MNotifyPublishFailed: metrics.Counter(
			string(observability.MNotifyPublishFailed),
			"Count of order notification delivery failures.",
		),
		observability.MNotifyPublishDropped: metrics.Counter(
			string(observability.MNotifyPublishDropped),
			"Count of order notifications dropped before delivery.",
		),
	}
	histograms := map[observability.MetricKey]observability.Histogram{
		observability.MUsecaseDuration: metrics.Histogram(
			string(observability.MUsecaseDuration),
			"Duration of use case execution in seconds.",
			prometheus.DefBuckets,
			"use_case",
		),
		observability.MHTTPRequestDuration: metrics.Histogram(
			string(observability.MHTTPRequestDuration),
			"Duration of HTTP requests in seconds.",
			prometheus.DefBuckets,
			"method", "route", "status",
		),
	}

	tel := telemetry.New(oteltrace.New(cfg.ServiceName), logger, counters, histograms)
	systemLogger := tel.Logger().With(observability.F("component", "main"))

	// Repositories, seeded with the static catalog, ledger, locations, users.
	catalogRepo := memory.NewCatalogRepository(memory.SeedProducts())
	ledgerRepo := memory.NewLedgerRepository(memory.SeedStock())
	locationRepo := memory.NewLocationRepository(memory.SeedLocations())
	orderRepo := memory.NewOrderRepository()
	paymentRepo := memory.NewPaymentRepository()
	loyaltyRepo := memory.NewLoyaltyRepository(nil)
	userRepo := memory.NewUserRepository(memory.SeedUsers())

	// Notification channel: Kafka when brokers are configured, otherwise a
	// logging sink. Either way the hand-off never blocks order creation.
	var sink notify.Sink
	if len(cfg.KafkaBrokers) > 0 {
		sink = notify.NewKafkaSink(cfg.KafkaBrokers, cfg.OrdersTopic)
		systemLogger.Info("notify_sink_kafka",
			observability.F("brokers", cfg.KafkaBrokers),
			observability.F("topic", cfg.OrdersTopic),
		)
	} else {
		sink = notify.NewLogSink(tel.Logger())
		systemLogger.Info("notify_sink_log")
	}
	dispatcher := notify.NewDispatcher(sink, cfg.NotifyBuffer, config.PublishTimeout, tel)
	dispatcher.Start(context.Background())
	defer dispatcher.Stop(context.Background())

	stockService := appStock.NewService(ledgerRepo, locationRepo, tel.Logger())
	handler := httppresentation.NewHandler(
		appAuth.NewService(userRepo, tel.Logger()),
		appCatalog.NewService(catalogRepo, tel.Logger()),
		stockService,
		appOrder.NewService(orderRepo, dispatcher, tel),
		appPayment.NewService(orderRepo, ledgerRepo, paymentRepo, stockService, cfg.PaymentAllowReprocess, tel),
		appLoyalty.NewService(loyaltyRepo, tel.Logger()),
		tel,
	)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		systemLogger.Info("http_server_start",
			observability.F("addr", server.Addr),
		)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			systemLogger.Error("http_server_error",
				observability.F("error", err.Error()),
			)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		systemLogger.Error("http_server_shutdown_error",
			observability.F("error", err.Error()),
		)
	} else {
		systemLogger.Info("http_server_stopped")
	}
}
