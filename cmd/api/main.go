package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wealthview/internal/config"
	"wealthview/internal/database"
	"wealthview/internal/logger"
	"wealthview/internal/metrics"
	"wealthview/internal/scheduler"
	"wealthview/internal/seed"
	"wealthview/internal/server"
	"wealthview/internal/services"
)

// @title           Wealthview Asset API
// @version         1.0
// @description     Catalog of financial assets with filtered, paginated reads and idempotent seeding from JSON sources.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Services
	db := dbManager.DB()
	m := metrics.New()
	assetService := services.NewAssetService(db)
	seedService := services.NewSeedService(db, services.SeedConfig{
		DefaultLocation: appConfig.SeedFile,
		BatchSize:       appConfig.SeedBatchSize,
		S3: seed.S3Options{
			Region:    appConfig.SeedS3Region,
			Endpoint:  appConfig.SeedS3Endpoint,
			PathStyle: appConfig.SeedS3PathStyle,
		},
	}, m)

	// Background seeding
	sched := scheduler.New(ctx, log)
	seedJob := scheduler.SeedJob{Service: seedService}
	if appConfig.SeedOnStartup {
		if err := sched.RunNow(seedJob); err != nil {
			log.Warnf("startup seed failed: %v", err)
		}
	}
	if appConfig.SeedSchedule != "" {
		if err := sched.AddJob(appConfig.SeedSchedule, seedJob); err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()
	}

	router := server.NewRouter(server.Options{
		APIPrefix:   appConfig.APIPrefix,
		CORSOrigins: appConfig.CORSOrigins,
		Metrics:     m,
	}, assetService, seedService)

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting Wealthview asset API on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
