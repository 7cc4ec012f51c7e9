package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cavaltron-backend/config"
	_ "cavaltron-backend/docs" // Important for Swagger
	v1 "cavaltron-backend/internal/delivery/http/v1"
	"cavaltron-backend/internal/repository/cache"
	"cavaltron-backend/internal/repository/postgres"
	"cavaltron-backend/internal/usecase"
	"cavaltron-backend/pkg/database"
	"cavaltron-backend/pkg/email"
	"cavaltron-backend/pkg/logger"
	"cavaltron-backend/pkg/redis"
	"cavaltron-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// @title           CAVALTRON Site API
// @version         1.0
// @description     Contact form delivery and page content for the CAVALTRON site.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Loggers
	logger.Init(cfg.IsProduction())
	logger.Log.Info("Starting cavaltron backend", "port", cfg.Port)

	environment := "development"
	if cfg.IsProduction() {
		environment = "production"
	}
	auditLog := security.InitSecurityLogger("cavaltron-backend", environment)
	defer func() { _ = auditLog.Sync() }()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(context.Background(), cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional: rate limiting and content cache)
	var store cache.Store
	if cfg.UpstashRedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting without content cache", "error", err)
		} else {
			store = redis.Client()
			defer func() { _ = redis.Close() }()
		}
	}

	// 5. Setup Repositories
	contentRepo := cache.NewContentCache(postgres.NewContentRepository(dbPool), store, cfg.ContentCacheTTL)

	// 6. Setup Email Sender
	sender, err := email.NewSender(email.ProviderConfig{
		Provider:     cfg.EmailProvider,
		ResendAPIKey: cfg.ResendAPIKey,
		SMTP: email.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
		},
		Logger: logger.Log,
	})
	if err != nil {
		logger.Log.Error("Invalid email configuration", "error", err)
		os.Exit(1)
	}
	if !sender.IsConfigured() {
		logger.Log.Warn("Email sender not fully configured - contact form will be unavailable", "provider", cfg.EmailProvider)
	}

	// 7. Setup UseCases
	contactUC := usecase.NewContactUsecase(sender, email.ContactIdentity{
		From:    cfg.ContactEmailFrom,
		To:      cfg.ContactEmailTo,
		Subject: cfg.ContactEmailSubject,
	}, cfg.EmailSendTimeout)
	contentUC := usecase.NewContentUsecase(contentRepo)

	probes := map[string]usecase.Probe{
		"database": dbPool.Ping,
		"redis":    nil,
		"email": func(context.Context) error {
			if !sender.IsConfigured() {
				return email.ErrNotConfigured
			}
			return nil
		},
	}
	if store != nil {
		probes["redis"] = redis.HealthCheck
	}
	healthUC := usecase.NewHealthUsecase(probes)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		ContentUC: contentUC,
		HealthUC:  healthUC,
		Config:    cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.EmailSendTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
