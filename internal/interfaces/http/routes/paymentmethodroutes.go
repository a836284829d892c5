package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vnstore/paycore/internal/interfaces/http/handlers"
	"github.com/vnstore/paycore/internal/interfaces/http/middleware"
	"github.com/vnstore/paycore/internal/shared/authorization"
)

// PaymentMethodRouteConfig holds dependencies for payment method routes.
type PaymentMethodRouteConfig struct {
	Handler              *handlers.PaymentMethodHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupPaymentMethodRoutes configures the public method list and the admin
// registry.
func SetupPaymentMethodRoutes(engine *gin.Engine, cfg *PaymentMethodRouteConfig) {
	engine.GET("/payment-methods", cfg.Handler.ListAvailable)

	admin := engine.Group("/admin/payment-methods")
	admin.Use(cfg.AuthMiddleware.RequireAuth())
	{
		admin.GET("",
			cfg.PermissionMiddleware.RequirePermission(authorization.ResourcePaymentMethod, authorization.ActionRead),
			cfg.Handler.ListAll)
		admin.PUT("",
			cfg.PermissionMiddleware.RequirePermission(authorization.ResourcePaymentMethod, authorization.ActionUpdate),
			cfg.Handler.Update)
		admin.PUT("/:id/toggle",
			cfg.PermissionMiddleware.RequirePermission(authorization.ResourcePaymentMethod, authorization.ActionUpdate),
			cfg.Handler.Toggle)
	}
}
