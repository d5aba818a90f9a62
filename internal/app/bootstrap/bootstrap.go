package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	feedbackservice "maxhelp/contexts/community-experience/feedback-service"
	feedbackpostgres "maxhelp/contexts/community-experience/feedback-service/adapters/postgres"
	inventoryservice "maxhelp/contexts/commerce/inventory-service"
	inventorypostgres "maxhelp/contexts/commerce/inventory-service/adapters/postgres"
	notificationservice "maxhelp/contexts/commerce/notification-service"
	notificationpostgres "maxhelp/contexts/commerce/notification-service/adapters/postgres"
	orderengine "maxhelp/contexts/commerce/order-engine"
	orderpostgres "maxhelp/contexts/commerce/order-engine/adapters/postgres"
	reportingservice "maxhelp/contexts/commerce/reporting-service"
	reportingpostgres "maxhelp/contexts/commerce/reporting-service/adapters/postgres"
	authservice "maxhelp/contexts/identity-access/auth-service"
	"maxhelp/contexts/identity-access/auth-service/adapters/credentials"
	authpostgres "maxhelp/contexts/identity-access/auth-service/adapters/postgres"
	"maxhelp/internal/platform/config"
	"maxhelp/internal/platform/db"
	"maxhelp/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	if err := migrateAll(pg); err != nil {
		_ = pg.Close()
		return nil, err
	}

	authRepo := authpostgres.NewRepository(pg.DB, logger)
	authModule := authservice.NewModule(authservice.Dependencies{
		Users:     authRepo,
		Units:     authRepo,
		Passwords: credentials.BcryptHasher{},
		Tokens:    credentials.TokenCodec{Secret: []byte(cfg.JWTSecret)},
		Clock:     authpostgres.SystemClock{},
		TokenTTL:  cfg.TokenTTL,
		Logger:    logger,
	})

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		ctx := context.Background()
		created, err := authModule.Service.SeedAdmin(ctx, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			_ = pg.Close()
			return nil, err
		}
		if created {
			logger.Info("admin account seeded",
				"event", "bootstrap_admin_seeded",
				"module", "internal/app/bootstrap",
				"layer", "platform",
				"email", cfg.AdminEmail,
			)
		}
	}

	inventoryModule := inventoryservice.NewModule(inventoryservice.Dependencies{
		Repo:   inventorypostgres.NewRepository(pg.DB, logger),
		Clock:  inventorypostgres.SystemClock{},
		Logger: logger,
	})
	orderModule := orderengine.NewModule(orderengine.Dependencies{
		Repo:   orderpostgres.NewRepository(pg.DB, logger),
		Clock:  orderpostgres.SystemClock{},
		Logger: logger,
	})
	notificationModule := notificationservice.NewModule(notificationservice.Dependencies{
		Repo:   notificationpostgres.NewRepository(pg.DB, logger),
		Clock:  notificationpostgres.SystemClock{},
		Logger: logger,
	})
	reportingModule := reportingservice.NewModule(reportingservice.Dependencies{
		Repo:   reportingpostgres.NewRepository(pg.DB, logger),
		Logger: logger,
	})
	feedbackModule := feedbackservice.NewModule(feedbackservice.Dependencies{
		Repo:   feedbackpostgres.NewRepository(pg.DB, logger),
		Clock:  feedbackpostgres.SystemClock{},
		Logger: logger,
	})

	server := httpserver.New(
		authModule,
		inventoryModule,
		orderModule,
		notificationModule,
		reportingModule,
		feedbackModule,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func migrateAll(pg *db.Postgres) error {
	migrations := []func(*gorm.DB) error{
		authpostgres.AutoMigrate,
		inventorypostgres.AutoMigrate,
		orderpostgres.AutoMigrate,
		notificationpostgres.AutoMigrate,
		feedbackpostgres.AutoMigrate,
	}
	for _, migrate := range migrations {
		if err := migrate(pg.DB); err != nil {
			return err
		}
	}
	return nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
