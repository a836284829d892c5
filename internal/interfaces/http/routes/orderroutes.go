package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vnstore/paycore/internal/interfaces/http/handlers"
	"github.com/vnstore/paycore/internal/interfaces/http/middleware"
	"github.com/vnstore/paycore/internal/shared/authorization"
)

// OrderRouteConfig holds dependencies for order routes.
type OrderRouteConfig struct {
	OrderHandler         *handlers.OrderHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimiter          *middleware.RateLimiter
}

// SetupOrderRoutes configures checkout and order lifecycle routes.
func SetupOrderRoutes(engine *gin.Engine, cfg *OrderRouteConfig) {
	orders := engine.Group("/orders")
	{
		orders.POST("", cfg.RateLimiter.Limit("checkout"), cfg.OrderHandler.CreateOrder)
		orders.GET("/:orderId/payment-status", cfg.OrderHandler.GetPaymentStatus)
		orders.GET("/code/:orderCode/payment-status", cfg.OrderHandler.GetPaymentStatusByCode)

		staff := orders.Group("")
		staff.Use(cfg.AuthMiddleware.RequireAuth())
		{
			staff.PUT("/:orderId/cancel",
				cfg.PermissionMiddleware.RequirePermission(authorization.ResourceOrder, authorization.ActionCancel),
				cfg.OrderHandler.CancelOrder)
			staff.PUT("/:orderId/cash-collected",
				cfg.PermissionMiddleware.RequirePermission(authorization.ResourceOrder, authorization.ActionSettle),
				cfg.OrderHandler.ConfirmCashCollected)
			staff.GET("/:orderId/callbacks",
				cfg.PermissionMiddleware.RequirePermission(authorization.ResourceOrder, authorization.ActionAudit),
				cfg.OrderHandler.ListCallbackLogs)
		}
	}
}
