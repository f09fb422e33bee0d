package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"realestate/server/config"
	"realestate/server/internal/api"
	"realestate/server/internal/catalog"
	"realestate/server/internal/database"
	"realestate/server/internal/queue"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.WithError(err).Warnf("Unknown log level %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.Infof("Using database at: %s", cfg.DatabasePath)
	db, err := database.NewDatabase(cfg.DatabasePath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	logger.Info("Running database migrations...")
	if err := db.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	if cfg.SeedFile != "" {
		if err := seedCatalog(db, cfg.SeedFile, logger); err != nil {
			logger.WithError(err).Fatal("Failed to seed catalog")
		}
	}

	inquiries := queue.NewInquiryQueue(cfg.InquiryQueueSize, logger)
	inquiries.Subscribe(queue.LogNotifier(logger))
	inquiries.Start()
	defer inquiries.Close()

	svc := catalog.NewService(db, inquiries, logger)
	handler := api.NewHandler(svc, logger)
	limiter := api.NewRateLimiter(cfg.RateLimit.InquiriesPerMinute, cfg.RateLimit.Burst, logger)

	gin.SetMode(gin.ReleaseMode)
	router, err := api.NewRouter(handler, limiter, logger, cfg.AllowedOrigins, cfg.TrustedProxies)
	if err != nil {
		logger.WithError(err).Fatal("Failed to set up router")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := limiter.Cleanup(); n > 0 {
					logger.Debugf("Rate limiter cleanup removed %d idle clients", n)
				}
			}
		}
	}()

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("Starting server on %s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed to start")
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server shutdown failed")
	}
}

// seedCatalog loads the seed file into the catalog when it is still empty
func seedCatalog(db *database.Database, path string, logger *logrus.Logger) error {
	ctx := context.Background()

	count, err := db.CountProperties(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Infof("Catalog already holds %d properties, skipping seed", count)
		return nil
	}

	properties, err := config.LoadSeedProperties(path)
	if err != nil {
		return err
	}

	n, err := db.SeedProperties(ctx, properties)
	if err != nil {
		return err
	}
	logger.Infof("Seeded %d properties from %s", n, path)
	return nil
}
