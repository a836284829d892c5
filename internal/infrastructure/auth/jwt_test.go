package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnstore/paycore/internal/shared/authorization"
	sharedConfig "github.com/vnstore/paycore/internal/shared/config"
)

func newTestJWTService(t *testing.T) *JWTService {
	t.Helper()
	s, err := NewJWTService(sharedConfig.JWTConfig{
		Secret:           "test-secret-0123456789",
		AccessExpMinutes: 60,
		Issuer:           "paycore",
	})
	require.NoError(t, err)
	return s
}

func TestJWTService_GenerateAndVerify(t *testing.T) {
	s := newTestJWTService(t)

	token, exp, err := s.Generate(7, authorization.RoleStaff)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	claims, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.StaffID)
	assert.Equal(t, authorization.RoleStaff, claims.Role)
	assert.Equal(t, "7", claims.Subject)
}

func TestJWTService_Expired(t *testing.T) {
	s := newTestJWTService(t)
	issued := time.Now().UTC().Add(-2 * time.Hour)
	s.now = func() time.Time { return issued }

	token, _, err := s.Generate(1, authorization.RoleAdmin)
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	s := newTestJWTService(t)

	other, err := NewJWTService(sharedConfig.JWTConfig{Secret: "another-secret-abcdef", Issuer: "paycore"})
	require.NoError(t, err)
	foreign, _, err := other.Generate(1, authorization.RoleAdmin)
	require.NoError(t, err)

	_, err = s.Verify(foreign)
	assert.Error(t, err, "different secret")

	wrongIssuer, err := NewJWTService(sharedConfig.JWTConfig{Secret: "test-secret-0123456789", Issuer: "shop"})
	require.NoError(t, err)
	token, _, err := wrongIssuer.Generate(1, authorization.RoleAdmin)
	require.NoError(t, err)
	_, err = s.Verify(token)
	assert.Error(t, err, "different issuer")

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{StaffID: 1, Role: authorization.RoleAdmin, TokenType: TokenTypeAccess})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = s.Verify(unsigned)
	assert.Error(t, err, "alg none")
}

func TestJWTService_GenerateValidation(t *testing.T) {
	s := newTestJWTService(t)

	_, _, err := s.Generate(0, authorization.RoleAdmin)
	assert.Error(t, err)

	_, _, err = s.Generate(1, authorization.StaffRole("customer"))
	assert.Error(t, err)

	_, err = NewJWTService(sharedConfig.JWTConfig{Secret: "short"})
	assert.Error(t, err)
}
