package dto

import (
	errs "github.com/vyronamart/group-ledger/internal/domain/error"
)

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse maps a domain error to its stable code. Store and
// unexpected failures never leak their cause to the client.
func NewErrorResponse(err error) ErrorResponse {
	code := errs.ErrorCode(err)
	if code >= errs.CodeInternalServer && code != errs.CodeExternalService {
		return ErrorResponse{Code: code, Message: "Internal server error"}
	}
	return ErrorResponse{Code: code, Message: err.Error()}
}

// BindingErrorResponse reports a request body or query that failed binding
func BindingErrorResponse(err error) ErrorResponse {
	return ErrorResponse{
		Code:    errs.CodeValidation,
		Message: "Invalid request format: " + err.Error(),
	}
}
