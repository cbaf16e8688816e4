package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vyronamart/group-ledger/internal/domain/entity"
	domainerr "github.com/vyronamart/group-ledger/internal/domain/error"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/api/dto"
)

const principalKey = "principal"

// TokenValidator resolves a bearer token into the caller
type TokenValidator interface {
	Validate(token string) (entity.Principal, error)
}

// Auth requires a valid bearer token and stores the principal in the gin context
func Auth(validator TokenValidator, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeUnauthorized,
				Message: "Missing bearer token",
			})
			return
		}

		principal, err := validator.Validate(token)
		if err != nil {
			logger.Debug("Rejected bearer token", map[string]any{
				"request_id": c.GetString(RequestIDKey),
				"error":      err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeUnauthorized,
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// PrincipalFrom returns the authenticated caller, if any
func PrincipalFrom(c *gin.Context) (entity.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return entity.Principal{}, false
	}
	principal, ok := v.(entity.Principal)
	return principal, ok && !principal.IsZero()
}

// SetPrincipal stores a principal, for handlers mounted without Auth in tests
func SetPrincipal(c *gin.Context, principal entity.Principal) {
	c.Set(principalKey, principal)
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
