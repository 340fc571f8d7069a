package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/ark_management_app/cmd/docs"
	"github.com/SscSPs/ark_management_app/internal/core/services"
	"github.com/SscSPs/ark_management_app/internal/dto"
	"github.com/SscSPs/ark_management_app/internal/handlers"
	"github.com/SscSPs/ark_management_app/internal/mailer"
	"github.com/SscSPs/ark_management_app/internal/middleware"
	"github.com/SscSPs/ark_management_app/internal/platform/config"
	"github.com/SscSPs/ark_management_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/ark_management_app/internal/storage"
	"github.com/SscSPs/ark_management_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title ARK Backend API
// @version 1.0
// @description Multi-tenant business management API: ledger, catalog, reports and the partner program.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
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
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, err := newFileStore(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize file storage",
			slog.String("backend", string(cfg.StorageBackend)),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("File storage ready", slog.String("backend", string(cfg.StorageBackend)))

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, store, mailer.New(cfg.Email, logger))

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		seedCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		err := serviceContainer.Auth.EnsureAdmin(seedCtx, cfg.AdminEmail, cfg.AdminPassword)
		cancel()
		if err != nil {
			logger.Error("Failed to seed admin user", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidators(v); err != nil {
			logger.Error("Failed to register validators", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))
	if cfg.MetricsEnabled {
		r.Use(middleware.MetricsMiddleware())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, logger); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	setupSwaggerRoutes(r, cfg)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newFileStore(ctx context.Context, cfg *config.Config) (storage.FileStore, error) {
	var store storage.FileStore
	switch cfg.StorageBackend {
	case config.StorageGCS:
		client, err := storage.NewGCSClient(ctx, cfg.GCSCredentialsFile)
		if err != nil {
			return nil, err
		}
		store = storage.NewGCSStore(client, cfg.GCSBucket)
	default:
		local, err := storage.NewLocalStore(cfg.UploadDir)
		if err != nil {
			return nil, err
		}
		store = local
	}

	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := store.Check(checkCtx); err != nil {
		return nil, err
	}
	return store, nil
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowOrigins = cfg.CORSAllowedOrigins
	if len(c.AllowOrigins) == 0 {
		c.AllowAllOrigins = true
	}
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", middleware.LegacyTokenHeader)
	c.ExposeHeaders = []string{dto.NextTokenHeader}
	return c
}

func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
