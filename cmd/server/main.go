package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dsr-service/internal/domain/repository"
	"dsr-service/internal/infrastructure/auth"
	"dsr-service/internal/infrastructure/config"
	"dsr-service/internal/infrastructure/persistence"
	"dsr-service/internal/infrastructure/router"
	"dsr-service/internal/interface/httpapi"
	mongoRepo "dsr-service/internal/interface/repository"
	"dsr-service/internal/interface/websocket"
	"dsr-service/internal/usecase"
	"dsr-service/pkg/logger"
	"dsr-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load config", "error", err)
	}

	// Create logger
	zapLog := logger.NewLogger(cfg.LogLevel)
	defer zapLog.Sync()
	var log logger.Logger = zapLog
	log.Info("Starting DSR Service", "version", cfg.AppVersion)

	if cfg.JWTAccessSecret == "" || cfg.JWTRefreshSecret == "" {
		log.Fatal("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must be set")
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Warn("Unknown timezone, falling back to UTC", "timezone", cfg.Timezone, "error", err)
		location = time.UTC
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, persistence.MongoOptions{
		URI:         cfg.MongoURI,
		Database:    cfg.MongoDB,
		Username:    cfg.MongoUser,
		Password:    cfg.MongoPassword,
		MinPoolSize: cfg.MongoMinPool,
		MaxPoolSize: cfg.MongoMaxPool,
	})
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// ICD master data lives in PostgreSQL and is optional
	var directoryRepo repository.DirectoryRepository
	if cfg.PostgresURI != "" {
		gormDB, err := persistence.NewPostgresDB(cfg.PostgresURI)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		directoryRepo = mongoRepo.NewGormDirectoryRepository(gormDB)
	} else {
		log.Warn("POSTGRES_DSN not set, ICD filters match custom_house verbatim")
	}

	// Set up repositories
	jobRepo := mongoRepo.NewMongoJobRepository(db)
	userRepo := mongoRepo.NewMongoUserRepository(db)
	prRepo := mongoRepo.NewMongoPrDataRepository(db)

	m := metrics.NewMetrics("dsr", prometheus.DefaultRegisterer)

	profiles := router.NewProfileRouter(log)
	for _, p := range usecase.DefaultProfiles() {
		profiles.Register(p)
	}

	issuer := auth.NewTokenIssuer(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	lists := usecase.NewJobListService(jobRepo, directoryRepo, profiles, log)
	refresher := usecase.NewStatusRefresher(jobRepo, m, log)
	services := httpapi.Services{
		Lists:     lists,
		Jobs:      usecase.NewJobService(jobRepo, log),
		Refresher: refresher,
		Reports:   usecase.NewReportExporter(lists, log),
		Directory: usecase.NewDirectoryService(jobRepo, directoryRepo),
		Transport: usecase.NewTransportService(prRepo, log),
		Auth:      usecase.NewAuthService(userRepo, issuer, log),
	}

	overview := usecase.NewOverviewAggregator(jobRepo, m, log, location)
	hub := websocket.NewHub(overview, cfg.OverviewInterval, m, log)

	handler := router.NewHTTPRouter(router.HTTPRouterConfig{
		Handler:      httpapi.NewHandler(services, issuer, auth.CookieWriter{Secure: cfg.CookieSecure}, m, log),
		Overview:     hub,
		Issuer:       issuer,
		Metrics:      m,
		Gatherer:     prometheus.DefaultGatherer,
		LoginLimiter: rate.NewLimiter(rate.Limit(cfg.LoginRate), cfg.LoginBurst),
	})

	// Periodic detailed_status reconciliation
	scheduler := cron.New(cron.WithLocation(location))
	if _, err := scheduler.AddFunc(cfg.StatusRefreshCron, func() {
		refresher.RunScheduled(ctx, cfg.StatusRefreshTTL)
	}); err != nil {
		log.Fatal("Invalid status refresh schedule", "schedule", cfg.StatusRefreshCron, "error", err)
	}
	scheduler.Start()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hub.Run(gctx)
		return nil
	})

	g.Go(func() error {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Wait for interrupt signal or a failed component
	g.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			log.Info("Received signal", "signal", sig)
		case <-gctx.Done():
		}

		// Graceful shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		stopped := scheduler.Stop()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP server shutdown error", "error", err)
		}
		cancel() // Cancel the context to stop the hub and any running refresh
		<-stopped.Done()
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("Service stopped with error", "error", err)
	}

	// Disconnect from MongoDB
	disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer disconnectCancel()
	if err := mongoClient.Disconnect(disconnectCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("DSR Service stopped")
}
