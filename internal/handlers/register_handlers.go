package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/boighar/backoffice/cmd/docs"
	portssvc "github.com/boighar/backoffice/internal/core/ports/services"
	"github.com/boighar/backoffice/internal/middleware"
	"github.com/boighar/backoffice/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container interfaces.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	registerAuthRoutes(r, services)
	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 group and delegates
// to the per-entity route registrations.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerSaleRoutes(v1, services.Sale)
	registerExpenseRoutes(v1, services.Expense)
	registerFundingRoutes(v1, services.Funding)
	registerTransferRoutes(v1, services.Transfer)
	registerReceivableRoutes(v1, services.Receivable)
	registerReturnRoutes(v1, services.Return)
	registerPurchaseRoutes(v1, services.Purchase)
	registerOfficeAssetRoutes(v1, services.OfficeAsset)
	registerCustomerRoutes(v1, services.Customer)
	registerBookRoutes(v1, services.Book)
	registerReportingRoutes(v1, services.Reporting, services.Snapshot)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
