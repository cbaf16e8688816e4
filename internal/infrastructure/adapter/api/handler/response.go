package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vyronamart/group-ledger/internal/domain/entity"
	domainerr "github.com/vyronamart/group-ledger/internal/domain/error"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/api/middleware"
)

// respondError writes the error body for err. Server-side failures are
// logged with their cause; caller errors only at debug.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := domainerr.HTTPStatus(err)
	fields := domainerr.Fields(err)
	fields["request_id"] = c.GetString(middleware.RequestIDKey)
	fields["route"] = c.FullPath()

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", fields)
	} else {
		logger.Debug("Request rejected", fields)
	}

	_ = c.Error(err)
	c.JSON(status, dto.NewErrorResponse(err))
}

// respondBindingError reports a malformed body or query string
func respondBindingError(c *gin.Context, logger coreport.Logger, err error) {
	logger.Debug("Invalid request format", map[string]any{
		"request_id": c.GetString(middleware.RequestIDKey),
		"route":      c.FullPath(),
		"error":      err.Error(),
	})
	c.JSON(http.StatusBadRequest, dto.BindingErrorResponse(err))
}

// idParam parses a positive numeric path parameter. On failure it writes a
// 400 with invalid's code and returns false.
func idParam(c *gin.Context, name string, invalid error) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(invalid),
			Message: "Invalid " + name + " format",
		})
		return 0, false
	}
	return id, true
}

// principal returns the authenticated caller or writes a 401
func principal(c *gin.Context) (entity.Principal, bool) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeUnauthorized,
			Message: domainerr.ErrUnauthorized.Error(),
		})
		return entity.Principal{}, false
	}
	return p, true
}
