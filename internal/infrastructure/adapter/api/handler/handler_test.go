package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/vyronamart/group-ledger/internal/domain/entity"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/api/validation"
)

var (
	caller   = entity.Principal{UserID: 7, Email: "asha@example.com", Role: entity.PrincipalCustomer}
	operator = entity.Principal{UserID: 1, Email: "ops@vyronamart.in", Role: entity.PrincipalOperator}
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := validation.RegisterRules(); err != nil {
		panic(err)
	}
}

// newTestRouter mounts handlers behind a stub that authenticates as p, or
// leaves the request anonymous when p is nil
func newTestRouter(p *entity.Principal) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if p != nil {
			middleware.SetPrincipal(c, *p)
		}
		c.Next()
	})
	return router
}

func perform(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	return decode[dto.ErrorResponse](t, rec)
}
