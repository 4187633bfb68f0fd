package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/tableauchef/tableauchef_backend/cmd/docs"
	portssvc "github.com/tableauchef/tableauchef_backend/internal/core/ports/services"
	"github.com/tableauchef/tableauchef_backend/internal/middleware"
	"github.com/tableauchef/tableauchef_backend/internal/platform/events"
	"github.com/tableauchef/tableauchef_backend/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	broadcaster *events.Broadcaster,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	registerAuthRoutes(r, cfg, services)
	registerContactPublicRoutes(r, services.Contact)

	setupAPIV1Routes(r, cfg, services, broadcaster)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 group.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	broadcaster *events.Broadcaster,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	RegisterRegisterRoutes(v1, services.Register)
	registerInventoryRoutes(v1, services.Inventory)
	registerProductRoutes(v1, services.Product)
	registerOrderRoutes(v1, services.Order)
	registerJournalRoutes(v1, services.Journal)
	registerNotificationRoutes(v1, services.Notification)
	registerDirectoryRoutes(v1, services.Directory)
	registerContactAdminRoutes(v1, services.Contact)
	registerEventRoutes(v1, services.User, broadcaster)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
