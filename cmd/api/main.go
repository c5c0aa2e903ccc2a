// Package main boots the training registration API: config, database,
// migrations, optional Redis cache, payment and email adapters, services,
// and the HTTP server with graceful shutdown.
//
//	@title			TrainingHub API
//	@version		1.0
//	@description	Corporate AI-training catalog, registration, and payment API.
//	@BasePath		/
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"traininghub/config"
	_ "traininghub/docs"
	"traininghub/internal/adapters/auth"
	"traininghub/internal/adapters/email"
	"traininghub/internal/adapters/stripe"
	"traininghub/internal/cache"
	httpdelivery "traininghub/internal/delivery/http"
	"traininghub/internal/delivery/http/controllers"
	"traininghub/internal/delivery/http/middleware"
	"traininghub/internal/migrations"
	"traininghub/internal/repository/postgres"
	"traininghub/internal/services"
)

const serviceTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		logger.Error("database unreachable", "err", err)
		os.Exit(1)
	}

	if err := migrations.Run(db, cfg.MigrationsPath); err != nil {
		logger.Error("migrations failed", "err", err)
		os.Exit(1)
	}
	logger.Info("migrations applied")

	var catalogCache *cache.Cache
	if cfg.RedisAddr != "" {
		catalogCache, err = cache.InitServer(context.Background(), cache.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			logger.Warn("redis unavailable, catalog caching disabled", "err", err)
			catalogCache = nil
		} else {
			logger.Info("redis connected", "addr", cfg.RedisAddr)
		}
	} else {
		logger.Info("no REDIS_ADDR configured, catalog caching disabled")
	}

	payments := stripe.NewClient(cfg.StripeSecretKey, cfg.StripeAPIURL)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSSESRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	tokens := auth.NewJWTTokens(cfg.JWTSecret)
	secret := auth.NewSecretChecker(cfg.AdminPasswordHash)

	serviceRepo := postgres.NewTrainingServiceRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	contactRepo := postgres.NewContactRepository(db)

	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	catalogService := services.NewCatalogService(serviceRepo, sessionRepo, catalogCache, logger, serviceTimeout)
	registrationService := services.NewRegistrationService(registrationRepo, sessionRepo, serviceRepo, contactRepo, payments, emailService, logger, serviceTimeout)
	contactService := services.NewContactService(contactRepo, emailService, logger, serviceTimeout)
	adminService := services.NewAdminService(serviceRepo, sessionRepo, registrationRepo, secret, tokens, catalogCache, cfg.Environment, cfg.AdminTokenTTL, logger, serviceTimeout)

	mux := httpdelivery.NewRouter(
		controllers.NewCatalogController(logger, catalogService),
		controllers.NewRegistrationController(logger, registrationService),
		controllers.NewContactController(logger, contactService),
		controllers.NewAdminController(logger, adminService),
		tokens,
		logger,
		db,
	)

	var handler http.Handler = mux
	handler = middleware.LoggingMiddleware(logger, handler)
	if cfg.CORSAllowedOrigins != "" {
		handler = middleware.CORS(strings.Split(cfg.CORSAllowedOrigins, ","), handler)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server startup failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "err", err)
	}
	logger.Info("server exited")
}
