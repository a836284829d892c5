package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vnstore/paycore/internal/interfaces/http/handlers"
	"github.com/vnstore/paycore/internal/interfaces/http/middleware"
)

// VNPayRouteConfig holds dependencies for VNPAY routes.
type VNPayRouteConfig struct {
	VNPayHandler *handlers.VNPayHandler
	RateLimiter  *middleware.RateLimiter
}

// SetupVNPayRoutes configures VNPAY routes. The return and IPN callbacks are
// authenticated by their signature, not by the rate limiter or a token.
func SetupVNPayRoutes(engine *gin.Engine, cfg *VNPayRouteConfig) {
	vnpay := engine.Group("/vnpay")
	{
		vnpay.POST("/create-payment", cfg.RateLimiter.Limit("vnpay"), cfg.VNPayHandler.CreatePayment)
		vnpay.GET("/payment-return", cfg.VNPayHandler.PaymentReturn)
		vnpay.GET("/ipn", cfg.VNPayHandler.IPN)
	}
}
