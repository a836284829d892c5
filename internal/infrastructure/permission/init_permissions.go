package permission

import (
	"fmt"

	"github.com/vnstore/paycore/internal/shared/authorization"
)

// DefaultPolicies grant staff the review and settlement actions. Admins
// inherit every staff permission and additionally manage payment methods and
// read the gateway callback audit trail.
func DefaultPolicies() [][]string {
	staff := authorization.RoleStaff.String()
	admin := authorization.RoleAdmin.String()
	return [][]string{
		{staff, authorization.ResourceBankClaim, authorization.ActionRead},
		{staff, authorization.ResourceBankClaim, authorization.ActionVerify},
		{staff, authorization.ResourceBankClaim, authorization.ActionReject},
		{staff, authorization.ResourceOrder, authorization.ActionCancel},
		{staff, authorization.ResourceOrder, authorization.ActionSettle},

		{admin, authorization.ResourcePaymentMethod, authorization.ActionRead},
		{admin, authorization.ResourcePaymentMethod, authorization.ActionUpdate},
		{admin, authorization.ResourceOrder, authorization.ActionAudit},
	}
}

// InitPaymentPermissions installs DefaultPolicies. Existing policies are kept,
// so it is safe to run on every start.
func (e *Enforcer) InitPaymentPermissions() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, policy := range DefaultPolicies() {
		if _, err := e.enforcer.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			e.logger.Errorw("failed to add payment permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	if _, err := e.enforcer.AddRoleForUser(authorization.RoleAdmin.String(), authorization.RoleStaff.String()); err != nil {
		return fmt.Errorf("failed to add admin role inheritance: %w", err)
	}

	if err := e.enforcer.SavePolicy(); err != nil {
		e.logger.Errorw("failed to save payment permissions", "error", err)
		return fmt.Errorf("failed to save payment permissions: %w", err)
	}

	e.logger.Info("payment permissions initialized successfully")
	return nil
}
