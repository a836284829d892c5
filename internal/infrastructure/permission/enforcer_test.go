package permission

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vnstore/paycore/internal/shared/authorization"
	"github.com/vnstore/paycore/internal/shared/logger"
)

func newTestEnforcer(t *testing.T) *Enforcer {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e, err := NewEnforcer(db, "testdata/does-not-exist.conf", log)
	require.NoError(t, err)
	require.NoError(t, e.InitPaymentPermissions())
	return e
}

func TestEnforcer_DefaultPolicies(t *testing.T) {
	e := newTestEnforcer(t)

	tests := []struct {
		role     authorization.StaffRole
		resource string
		action   string
		want     bool
	}{
		{authorization.RoleStaff, authorization.ResourceBankClaim, authorization.ActionVerify, true},
		{authorization.RoleStaff, authorization.ResourceBankClaim, authorization.ActionReject, true},
		{authorization.RoleStaff, authorization.ResourceOrder, authorization.ActionSettle, true},
		{authorization.RoleStaff, authorization.ResourcePaymentMethod, authorization.ActionUpdate, false},
		{authorization.RoleAdmin, authorization.ResourcePaymentMethod, authorization.ActionUpdate, true},
		{authorization.RoleAdmin, authorization.ResourceBankClaim, authorization.ActionVerify, true},
		{authorization.RoleAdmin, authorization.ResourceOrder, authorization.ActionAudit, true},
		{authorization.RoleStaff, authorization.ResourceOrder, authorization.ActionAudit, false},
		{authorization.StaffRole("customer"), authorization.ResourceBankClaim, authorization.ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+" "+tt.resource+":"+tt.action, func(t *testing.T) {
			allowed, err := e.Enforce(tt.role.String(), tt.resource, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestEnforcer_InitIsIdempotent(t *testing.T) {
	e := newTestEnforcer(t)
	require.NoError(t, e.InitPaymentPermissions())

	perms, err := e.GetPermissionsForRole(authorization.RoleStaff.String())
	require.NoError(t, err)
	assert.Len(t, perms, 5)
}

func TestEnforcer_AddAndRemovePolicy(t *testing.T) {
	e := newTestEnforcer(t)

	require.NoError(t, e.AddPolicy(authorization.RoleStaff.String(), authorization.ResourcePaymentMethod, authorization.ActionRead))
	allowed, err := e.Enforce(authorization.RoleStaff.String(), authorization.ResourcePaymentMethod, authorization.ActionRead)
	require.NoError(t, err)
	assert.True(t, allowed)

	require.NoError(t, e.RemovePolicy(authorization.RoleStaff.String(), authorization.ResourcePaymentMethod, authorization.ActionRead))
	require.NoError(t, e.LoadPolicy())
	allowed, err = e.Enforce(authorization.RoleStaff.String(), authorization.ResourcePaymentMethod, authorization.ActionRead)
	require.NoError(t, err)
	assert.False(t, allowed)
}
