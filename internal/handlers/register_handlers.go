package handlers

import (
	"github.com/SscSPs/abase_form_kit/cmd/docs"
	portssvc "github.com/SscSPs/abase_form_kit/internal/core/ports/services"
	"github.com/SscSPs/abase_form_kit/internal/middleware"
	"github.com/SscSPs/abase_form_kit/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// cepLimiter may be nil to leave the CEP proxy unlimited.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	cepLimiter *limiter.Limiter,
) {
	r.GET("/health", healthCheck)

	setupAPIV1Routes(r, cfg, services, cepLimiter)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group. Form helpers are public;
// preferences belong to a user and need a token.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	cepLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1")

	RegisterMoneyRoutes(v1, services.Money)
	RegisterPixRoutes(v1, services.Pix)

	var cepMiddleware []gin.HandlerFunc
	if cepLimiter != nil {
		cepMiddleware = append(cepMiddleware, middleware.RateLimit(cepLimiter))
	}
	RegisterAddressRoutes(v1, services.Address, cepMiddleware...)

	authed := v1.Group("", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	RegisterPreferenceRoutes(authed, services.Preference)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
