package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/vnstore/paycore/docs"
	"github.com/vnstore/paycore/internal/interfaces/http/middleware"
	"github.com/vnstore/paycore/internal/interfaces/http/routes"
)

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	r := c.engine

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(c.log))
	r.Use(middleware.Recovery(c.log))
	r.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.Metrics(c.metrics))

	r.GET("/health", c.hdlrs.healthHandler.HealthCheck)
	r.GET("/metrics", gin.WrapH(c.metrics.Handler()))

	if c.cfg.Server.Mode != gin.ReleaseMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	routes.SetupOrderRoutes(r, &routes.OrderRouteConfig{
		OrderHandler:         c.hdlrs.orderHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
		RateLimiter:          c.rateLimiter,
	})

	routes.SetupPaymentMethodRoutes(r, &routes.PaymentMethodRouteConfig{
		Handler:              c.hdlrs.paymentMethodHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupBankPaymentRoutes(r, &routes.BankPaymentRouteConfig{
		BankPaymentHandler:   c.hdlrs.bankPaymentHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
		RateLimiter:          c.rateLimiter,
	})

	routes.SetupVNPayRoutes(r, &routes.VNPayRouteConfig{
		VNPayHandler: c.hdlrs.vnpayHandler,
		RateLimiter:  c.rateLimiter,
	})
}

// GetEngine returns the Gin engine
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}
