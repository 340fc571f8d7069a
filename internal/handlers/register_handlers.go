package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/ark_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/ark_management_app/internal/core/ports/services"
	"github.com/SscSPs/ark_management_app/internal/middleware"
	"github.com/SscSPs/ark_management_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

const defaultLoginRate = "5-M"

// RegisterRoutes mounts the health check and every /api route on r.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		logger.Warn("Invalid LOGIN_RATE_LIMIT, using default",
			slog.String("value", cfg.LoginRateLimit),
			slog.String("default", defaultLoginRate))
		if loginLimiter, err = middleware.NewMemoryLimiter(defaultLoginRate); err != nil {
			return err
		}
	}
	limit := middleware.RateLimit(loginLimiter)
	authenticate := middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)

	api := r.Group("/api")
	registerAuthRoutes(api, services.Auth, limit, authenticate)

	authed := api.Group("", authenticate)
	registerFileRoutes(authed, services.Attachment)

	data := authed.Group("/data", middleware.RequireRole(domain.RoleEmployee), middleware.RequireTenant())
	registerProfileRoutes(data, services.Profile, cfg.MaxUploadBytes)
	registerCatalogRoutes(data, services.Employee, services.Catalog)
	registerTransactionRoutes(data, services, cfg.MaxUploadBytes)

	admin := authed.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
	registerAdminRoutes(admin, services.Admin)

	partners := authed.Group("/partners", middleware.RequireRole(domain.RoleAdmin))
	registerPartnerRoutes(partners, services.Partner)

	return nil
}
