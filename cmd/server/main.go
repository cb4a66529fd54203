package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/eldhojacob/dairyfarm/internal/auth"
	"github.com/eldhojacob/dairyfarm/internal/config"
	"github.com/eldhojacob/dairyfarm/internal/repository/mongodb"
	"github.com/eldhojacob/dairyfarm/internal/repository/sheets"
	"github.com/eldhojacob/dairyfarm/internal/scheduler"
	"github.com/eldhojacob/dairyfarm/internal/server/handlers"
	"github.com/eldhojacob/dairyfarm/internal/server/router"
	billingsvc "github.com/eldhojacob/dairyfarm/internal/service/billing"
	customersvc "github.com/eldhojacob/dairyfarm/internal/service/customers"
	reportingsvc "github.com/eldhojacob/dairyfarm/internal/service/reporting"
	whatsappclient "github.com/eldhojacob/dairyfarm/pkg/clients/whatsapp"
	"github.com/eldhojacob/dairyfarm/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.New(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	var sheetsExporter billingsvc.RowWriter
	if cfg.Sheets.Enabled() {
		exporter, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
		sheetsExporter = exporter
		baseLogger.Info("sheets billing export enabled")
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour, cfg.Auth.Issuer)
	authMW := auth.NewMiddleware(jwtManager, baseLogger.Named("auth"))

	reportingSvc := reportingsvc.NewService(mongoRepo, baseLogger.Named("svc.reporting"))
	billingSvc := billingsvc.NewService(mongoRepo, sheetsExporter, baseLogger.Named("svc.billing"))
	customersSvc := customersvc.NewService(mongoRepo, baseLogger.Named("svc.customers"))

	engine := router.New(router.Handlers{
		Auth:     handlers.NewAuthHandler(mongoRepo, jwtManager, baseLogger.Named("handlers.auth")),
		Customer: handlers.NewCustomerHandler(customersSvc, baseLogger.Named("handlers.customers")),
		Delivery: handlers.NewDeliveryHandler(mongoRepo, baseLogger.Named("handlers.delivery")),
		Billing:  handlers.NewBillingHandler(billingSvc, baseLogger.Named("handlers.billing")),
		Report:   handlers.NewReportHandler(reportingSvc, baseLogger.Named("handlers.reports")),
		Settings: handlers.NewSettingsHandler(mongoRepo, baseLogger.Named("handlers.settings")),
	}, authMW, baseLogger.Named("router"))

	if cfg.WhatsApp.Enabled() {
		whatsClient := whatsappclient.NewClient(cfg.WhatsApp)
		sched := scheduler.NewScheduler(*cfg, reportingSvc, whatsClient, baseLogger.Named("scheduler"))
		sched.Start()
		defer sched.Stop()
	} else {
		baseLogger.Info("whatsapp credentials missing, owner summary push disabled")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
