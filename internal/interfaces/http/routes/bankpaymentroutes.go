package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vnstore/paycore/internal/interfaces/http/handlers"
	"github.com/vnstore/paycore/internal/interfaces/http/middleware"
	"github.com/vnstore/paycore/internal/shared/authorization"
)

// BankPaymentRouteConfig holds dependencies for bank transfer routes.
type BankPaymentRouteConfig struct {
	BankPaymentHandler   *handlers.BankPaymentHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimiter          *middleware.RateLimiter
}

// SetupBankPaymentRoutes configures receiving accounts, QR codes, claim
// submission and the staff review queue.
func SetupBankPaymentRoutes(engine *gin.Engine, cfg *BankPaymentRouteConfig) {
	h := cfg.BankPaymentHandler
	perm := cfg.PermissionMiddleware

	engine.GET("/bank-accounts", h.ListBankAccounts)

	bankPayments := engine.Group("/bank-payments")
	{
		// Specific named endpoints (must come BEFORE /:claimId)
		bankPayments.POST("/generate-qr", cfg.RateLimiter.Limit("qr"), h.GenerateQR)
		bankPayments.POST("/orders/:orderId", cfg.RateLimiter.Limit("claim"), h.SubmitClaim)

		staff := bankPayments.Group("")
		staff.Use(cfg.AuthMiddleware.RequireAuth())
		{
			staff.GET("/status/:status",
				perm.RequirePermission(authorization.ResourceBankClaim, authorization.ActionRead),
				h.ListClaims)
			staff.PUT("/:claimId/verify",
				perm.RequirePermission(authorization.ResourceBankClaim, authorization.ActionVerify),
				h.VerifyClaim)
			staff.PUT("/:claimId/reject",
				perm.RequirePermission(authorization.ResourceBankClaim, authorization.ActionReject),
				h.RejectClaim)
			staff.PUT("/:claimId/note",
				perm.RequirePermission(authorization.ResourceBankClaim, authorization.ActionVerify),
				h.AppendClaimNote)
		}
	}
}
