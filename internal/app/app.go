package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	internalhttp "outlet-analytics/internal/http"
	"outlet-analytics/internal/ingestors"
	"outlet-analytics/internal/insights"
	"outlet-analytics/internal/scheduler"
	"outlet-analytics/internal/shared/configs"
	"outlet-analytics/internal/shared/filestorages"
	"outlet-analytics/internal/shared/loggers"
	"outlet-analytics/internal/stores"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	counterUpdater *ingestors.CounterUpdater
	fleetScheduler *scheduler.Scheduler
	reconciler     *scheduler.Reconciler

	disconnectMongo  func(context.Context) error
	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "outlet-analytics").
		Logger()

	// Connect primary document store
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelConnect()
	db, disconnectMongo, err := stores.NewMongoDatabase(connectCtx, config.Mongo.URI, config.Mongo.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect primary store: %w", err)
	}

	// Initialize fallback sink over local file storage
	fileStorage, err := filestorages.NewFileStorage(config.Fallback.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	fallbackStore := stores.NewFallbackStore(fileStorage)

	eventStore := stores.NewMongoEventStore(db)
	summaryStore := stores.NewMongoSummaryStore(db)

	// Initialize ingestion pipeline
	countersLogger := appLogger.With().Str(loggers.FieldComponent, "counter_updater").Logger()
	counterUpdater := ingestors.NewCounterUpdater(eventStore, countersLogger)
	deduplicator := ingestors.NewDeduplicator(config.Ingestion.DedupCapacity)
	batchParser := ingestors.NewBatchParser()
	eventProcessor := ingestors.NewEventProcessor(deduplicator, eventStore, fallbackStore, counterUpdater)
	ingestionService := ingestors.NewIngestionService(batchParser, eventProcessor)

	// Initialize insights engine and background workers
	insightsEngine := insights.NewInsightsEngine(eventStore, summaryStore)

	var fleetScheduler *scheduler.Scheduler
	if config.Scheduler.Enabled {
		schedulerLogger := appLogger.With().Str(loggers.FieldComponent, "scheduler").Logger()
		fleetScheduler = scheduler.NewScheduler(
			insightsEngine,
			eventStore,
			config.Insights.BatchSize,
			time.Duration(config.Insights.BatchDelayMS)*time.Millisecond,
			schedulerLogger,
		)
	}

	reconcilerLogger := appLogger.With().Str(loggers.FieldComponent, "reconciler").Logger()
	reconciler := scheduler.NewReconciler(
		fallbackStore,
		eventStore,
		time.Duration(config.Reconciler.IntervalMinutes)*time.Minute,
		reconcilerLogger,
	)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(ingestionService, insightsEngine, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:          config,
		appLogger:       appLogger,
		server:          server,
		counterUpdater:  counterUpdater,
		fleetScheduler:  fleetScheduler,
		reconciler:      reconciler,
		disconnectMongo: disconnectMongo,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting outlet-analytics service on port %d (log_level=%s, fallback_root_dir=%s, scheduler_enabled=%t)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Fallback.RootDir,
			app.config.Scheduler.Enabled)

	// start background workers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.counterUpdater.Start(app.backgroundCtx)
	app.reconciler.Start(app.backgroundCtx)
	if app.fleetScheduler != nil {
		app.fleetScheduler.Start(app.backgroundCtx)
	}

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Cancel background workers
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Background workers cancelled")
	}

	// 3) Wait for background workers to finish. The counter updater stops
	// last so in-flight ingestion increments still drain.
	if app.fleetScheduler != nil {
		app.fleetScheduler.Stop()
	}
	app.reconciler.Stop()
	app.counterUpdater.Stop()
	app.appLogger.Info().Msg("Background workers stopped")

	// 4) Disconnect primary store
	if err := app.disconnectMongo(ctx); err != nil {
		return fmt.Errorf("primary store disconnect failed: %w", err)
	}
	app.appLogger.Info().Msg("Primary store disconnected")

	return nil
}
