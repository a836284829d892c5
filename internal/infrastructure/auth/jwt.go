package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vnstore/paycore/internal/shared/authorization"
	"github.com/vnstore/paycore/internal/shared/biztime"
	sharedConfig "github.com/vnstore/paycore/internal/shared/config"
)

type TokenType string

const TokenTypeAccess TokenType = "access"

// Claims identify a staff member acting on orders and bank claims.
type Claims struct {
	StaffID   uint                    `json:"staff_id"`
	Role      authorization.StaffRole `json:"role"`
	TokenType TokenType               `json:"token_type"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	issuer           string
	accessExpMinutes int
	now              func() time.Time
}

func NewJWTService(cfg sharedConfig.JWTConfig) (*JWTService, error) {
	if len(cfg.Secret) < 16 {
		return nil, fmt.Errorf("jwt secret must be at least 16 bytes")
	}
	exp := cfg.AccessExpMinutes
	if exp <= 0 {
		exp = 480
	}
	return &JWTService{
		secret:           []byte(cfg.Secret),
		issuer:           cfg.Issuer,
		accessExpMinutes: exp,
		now:              biztime.NowUTC,
	}, nil
}

// Generate issues an access token for a staff member.
func (s *JWTService) Generate(staffID uint, role authorization.StaffRole) (string, time.Time, error) {
	if staffID == 0 {
		return "", time.Time{}, fmt.Errorf("staff id is required")
	}
	if !role.IsValid() {
		return "", time.Time{}, fmt.Errorf("invalid staff role: %s", role)
	}

	now := s.now()
	exp := now.Add(time.Duration(s.accessExpMinutes) * time.Minute)
	claims := &Claims{
		StaffID:   staffID,
		Role:      role,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatUint(uint64(staffID), 10),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, exp, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithTimeFunc(s.now)}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, fmt.Errorf("token is not an access token")
	}
	if !claims.Role.IsValid() || claims.StaffID == 0 {
		return nil, fmt.Errorf("token carries no staff identity")
	}
	return claims, nil
}

// AccessExpMinutes returns the access token lifetime in minutes.
func (s *JWTService) AccessExpMinutes() int {
	return s.accessExpMinutes
}
