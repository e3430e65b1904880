package handlers

import (
	"log/slog"

	"github.com/SscSPs/memorial_park_app/cmd/docs"
	portssvc "github.com/SscSPs/memorial_park_app/internal/core/ports/services"
	"github.com/SscSPs/memorial_park_app/internal/middleware"
	"github.com/SscSPs/memorial_park_app/internal/platform/config"
	"github.com/SscSPs/memorial_park_app/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) error {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	if err := setupAPIRoutes(r, cfg, services, posthogClient); err != nil {
		return err
	}

	// Uploaded documents are served by the API itself when stored on local disk
	if cfg.StorageProvider == config.StorageProviderLocal {
		r.Static("/files", cfg.StorageLocalRoot)
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIRoutes configures the /api group and delegates to specific entity route registrations
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) error {
	public := r.Group("/api")
	api := public.Group("", middleware.AuthMiddleware(cfg.JWTSecret))

	loginLimiter, err := middleware.NewInMemoryLimiter(cfg.LoginRate)
	if err != nil {
		slog.Error("Invalid LOGIN_RATE", slog.String("rate", cfg.LoginRate), slog.String("error", err.Error()))
		return err
	}

	emailLimiter, err := middleware.NewInMemoryLimiter(cfg.EmailDocumentsRate)
	if err != nil {
		slog.Error("Invalid EMAIL_DOCUMENTS_RATE", slog.String("rate", cfg.EmailDocumentsRate), slog.String("error", err.Error()))
		return err
	}

	RegisterAuthRoutes(public, services.Auth, loginLimiter)
	RegisterCashierRoutes(api, services.WalkIn, services.Payment, services.Notification, posthogClient)
	RegisterClientRoutes(api, services.DocumentEmail, middleware.RateLimit(emailLimiter))
	RegisterLotRoutes(api, services.Lot)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
