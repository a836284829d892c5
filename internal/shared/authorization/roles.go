package authorization

type StaffRole string

const (
	RoleAdmin StaffRole = "admin"
	RoleStaff StaffRole = "staff"
)

func (r StaffRole) String() string {
	return string(r)
}

func (r StaffRole) IsValid() bool {
	return r == RoleAdmin || r == RoleStaff
}

// ParseStaffRole returns "" for unknown roles.
func ParseStaffRole(s string) StaffRole {
	role := StaffRole(s)
	if !role.IsValid() {
		return ""
	}
	return role
}

// Resources and actions checked by the permission enforcer.
const (
	ResourceBankClaim     = "bank_claim"
	ResourceOrder         = "order"
	ResourcePaymentMethod = "payment_method"

	ActionRead   = "read"
	ActionVerify = "verify"
	ActionReject = "reject"
	ActionCancel = "cancel"
	ActionSettle = "settle"
	ActionUpdate = "update"
	ActionAudit  = "audit"
)
