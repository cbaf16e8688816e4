package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vyronamart/group-ledger/internal/domain/entity"
	domainerr "github.com/vyronamart/group-ledger/internal/domain/error"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/logger"
	coremocks "github.com/vyronamart/group-ledger/mocks/port/core"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubValidator struct {
	principal entity.Principal
	err       error
}

func (s stubValidator) Validate(string) (entity.Principal, error) {
	return s.principal, s.err
}

type recordedRequest struct {
	method, route string
	status        int
}

type fakeRecorder struct {
	mu       sync.Mutex
	requests []recordedRequest
	inFlight float64
	peak     float64
}

func (f *fakeRecorder) RecordHTTPRequest(method, route string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, recordedRequest{method, route, status})
}

func (f *fakeRecorder) TrackInFlight(delta float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight += delta
	if f.inFlight > f.peak {
		f.peak = f.inFlight
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, coreport.RequestIDFromContext(c.Request.Context()))
	})

	t.Run("generates an id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := rec.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("reuses the caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "checkout-123")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "checkout-123", rec.Header().Get(RequestIDHeader))
		assert.Equal(t, "checkout-123", rec.Body.String())
	})
}

func TestAuth(t *testing.T) {
	newRouter := func(v TokenValidator) *gin.Engine {
		router := gin.New()
		router.Use(Auth(v, logger.NewNoopLogger()))
		router.GET("/me", func(c *gin.Context) {
			principal, ok := PrincipalFrom(c)
			require.True(t, ok)
			c.JSON(http.StatusOK, gin.H{"userId": principal.UserID})
		})
		return router
	}

	t.Run("valid token", func(t *testing.T) {
		router := newRouter(stubValidator{principal: entity.Principal{UserID: 7}})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer good")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"userId":7}`, rec.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		router := newRouter(stubValidator{principal: entity.Principal{UserID: 7}})
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, domainerr.CodeUnauthorized, decodeError(t, rec).Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		router := newRouter(stubValidator{principal: entity.Principal{UserID: 7}})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Basic Zm9vOmJhcg==")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		router := newRouter(stubValidator{err: errors.New("expired")})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer stale")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid or expired token", decodeError(t, rec).Message)
	})
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	log := coremocks.NewMockLogger(t).AllowAll()
	router := gin.New()
	router.Use(RequestID(), ErrorHandler(log))
	router.GET("/boom", func(*gin.Context) { panic("nil map write") })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, domainerr.CodeInternalServer, decodeError(t, rec).Code)
	log.AssertCalled(t, "Error", "Panic recovered in API request", mock.Anything)
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	recorder := &fakeRecorder{}
	router := gin.New()
	router.Use(Metrics(recorder))
	router.GET("/groups/:groupId", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, path := range []string{"/groups/1", "/groups/2", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Len(t, recorder.requests, 3)
	assert.Equal(t, recordedRequest{http.MethodGet, "/groups/:groupId", http.StatusNoContent}, recorder.requests[0])
	assert.Equal(t, "/groups/:groupId", recorder.requests[1].route)
	assert.Equal(t, recordedRequest{http.MethodGet, "unmatched", http.StatusNotFound}, recorder.requests[2])
	assert.Equal(t, 0.0, recorder.inFlight)
	assert.Equal(t, 1.0, recorder.peak)
}

func TestLoggerLevelFollowsStatus(t *testing.T) {
	log := coremocks.NewMockLogger(t).AllowAll()
	router := gin.New()
	router.Use(Logger(log))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusBadGateway) })

	for _, path := range []string{"/ok", "/bad", "/fail"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	log.AssertCalled(t, "Info", "Request processed", mock.Anything)
	log.AssertCalled(t, "Warn", "Request processed", mock.Anything)
	log.AssertCalled(t, "Error", "Request processed", mock.Anything)
}
