package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnstore/paycore/internal/infrastructure/permission"
	"github.com/vnstore/paycore/internal/shared/logger"
	"github.com/vnstore/paycore/internal/shared/utils"
)

type PermissionMiddleware struct {
	checker permission.Checker
	logger  logger.Interface
}

func NewPermissionMiddleware(checker permission.Checker, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		checker: checker,
		logger:  logger,
	}
}

// RequirePermission must run after AuthMiddleware.RequireAuth. The staff role
// is the casbin subject.
func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		staffID := StaffID(c)
		role := StaffRole(c)
		if staffID == 0 || role == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "staff not authenticated")
			c.Abort()
			return
		}

		allowed, err := m.checker.Enforce(role.String(), resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "staff_id", staffID, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "staff_id", staffID, "role", role, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
