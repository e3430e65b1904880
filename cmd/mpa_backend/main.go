package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/SscSPs/memorial_park_app/internal/adapters/lock"
	"github.com/SscSPs/memorial_park_app/internal/adapters/mailer"
	"github.com/SscSPs/memorial_park_app/internal/adapters/pdf"
	"github.com/SscSPs/memorial_park_app/internal/adapters/storage"
	"github.com/SscSPs/memorial_park_app/internal/core/ports/gateways"
	"github.com/SscSPs/memorial_park_app/internal/core/services"
	"github.com/SscSPs/memorial_park_app/internal/handlers"
	"github.com/SscSPs/memorial_park_app/internal/middleware"
	"github.com/SscSPs/memorial_park_app/internal/platform/config"
	"github.com/SscSPs/memorial_park_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/memorial_park_app/internal/utils"
	"github.com/SscSPs/memorial_park_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Memorial Park Cashier API
// @version 1.0
// @description Walk-in payments, documents and notifications for the memorial park cashier desk.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	gw, closeGateways, err := buildGateways(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize gateways", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeGateways()

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, gw)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.PosthogMiddleware(posthogClient))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, posthogClient); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func runMigrations(logger *slog.Logger, cfg *config.Config) error {
	logger.Info("Running database migrations...")
	// Migrations use a short-lived database/sql connection on the pgx stdlib driver
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// buildGateways picks the storage, mail, PDF and lock implementations from config.
func buildGateways(ctx context.Context, cfg *config.Config, logger *slog.Logger) (gateways.Provider, func(), error) {
	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var gw gateways.Provider

	switch cfg.StorageProvider {
	case config.StorageProviderGCS:
		gcs, err := storage.NewGCSStorage(ctx, cfg.GCSCredentialsJSON, cfg.StoragePublicBaseURL)
		if err != nil {
			return gw, closeAll, err
		}
		closers = append(closers, func() {
			if err := gcs.Close(); err != nil {
				logger.Warn("Failed to close storage client", slog.String("error", err.Error()))
			}
		})
		gw.Storage = gcs
	default:
		local, err := storage.NewLocalStorage(cfg.StorageLocalRoot, cfg.StoragePublicBaseURL)
		if err != nil {
			return gw, closeAll, err
		}
		gw.Storage = local
	}
	logger.Info("Document storage configured", slog.String("provider", cfg.StorageProvider))

	if cfg.SMTPHost != "" {
		gw.Mailer = mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom)
	} else {
		gw.Mailer = mailer.NewLogMailer(logger)
	}

	switch cfg.PDFRenderer {
	case config.PDFRendererGotenberg:
		gw.Renderer = pdf.NewGotenbergRenderer(cfg.GotenbergURL, &http.Client{Timeout: 30 * time.Second})
	default:
		gw.Renderer = pdf.NewFPDFRenderer()
	}

	gw.Locker = lock.NoopLocker{}
	if cfg.RedisAddress != "" {
		locker, rdb, err := lock.NewRedisLocker(ctx, cfg.RedisAddress, cfg.RedisPassword)
		if err != nil {
			logger.Warn("Redis unavailable, walk-in locking disabled", slog.String("error", err.Error()))
		} else {
			closers = append(closers, func() { _ = rdb.Close() })
			gw.Locker = locker
		}
	}

	return gw, closeAll, nil
}
