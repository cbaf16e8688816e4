package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vyronamart/group-ledger/internal/domain/entity"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")
)

// Claims are the bearer token claims shared with the rest of the platform
type Claims struct {
	UserID uint64 `json:"user_id"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTManager issues and validates HS256 bearer tokens
type JWTManager struct {
	secretKey     []byte
	issuer        string
	tokenDuration time.Duration
	timeProvider  coreport.TimeProvider
}

// NewJWTManager creates a manager. An empty issuer disables the issuer check.
func NewJWTManager(secretKey, issuer string, tokenDuration time.Duration, timeProvider coreport.TimeProvider) *JWTManager {
	return &JWTManager{
		secretKey:     []byte(secretKey),
		issuer:        issuer,
		tokenDuration: tokenDuration,
		timeProvider:  timeProvider,
	}
}

// Generate signs a token for the principal
func (m *JWTManager) Generate(principal entity.Principal) (string, error) {
	now := m.timeProvider.Now()
	claims := &Claims{
		UserID: principal.UserID,
		Email:  principal.Email,
		Role:   string(principal.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   fmt.Sprintf("%d", principal.UserID),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses a token and returns the principal it names
func (m *JWTManager) Validate(tokenString string) (entity.Principal, error) {
	if tokenString == "" {
		return entity.Principal{}, ErrMissingToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.timeProvider.Now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (any, error) {
		return m.secretKey, nil
	}, opts...)
	if err != nil {
		return entity.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return entity.Principal{}, ErrInvalidToken
	}
	return entity.Principal{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   entity.ParsePrincipalRole(claims.Role),
	}, nil
}
