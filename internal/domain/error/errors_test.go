package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInsufficientBalance.Error() != "insufficient balance" {
		t.Errorf("ErrInsufficientBalance has unexpected message: %s", ErrInsufficientBalance.Error())
	}
	if ErrGroupNotFound.Error() != "group not found or inactive" {
		t.Errorf("ErrGroupNotFound has unexpected message: %s", ErrGroupNotFound.Error())
	}
}

func TestErrorClasses(t *testing.T) {
	testCases := []struct {
		name  string
		err   error
		class error
	}{
		{"InvalidGroupName", ErrInvalidGroupName, ErrValidation},
		{"AlreadyMember", ErrAlreadyMember, ErrValidation},
		{"InsufficientBalance", ErrInsufficientBalance, ErrValidation},
		{"InvalidTransition", ErrInvalidTransition, ErrValidation},
		{"GroupNotFound", ErrGroupNotFound, ErrNotFound},
		{"UserNotFound", ErrUserNotFound, ErrNotFound},
		{"NotGroupCreator", ErrNotGroupCreator, ErrForbidden},
		{"OperatorOnly", ErrOperatorOnly, ErrForbidden},
		{"DuplicateRoomCode", ErrDuplicateRoomCode, ErrPersistence},
		{"WrappedNotFound", fmt.Errorf("load: %w", ErrOrderNotFound), ErrNotFound},
		{"PersistenceError", NewPersistenceError("insert", errors.New("disk full")), ErrPersistence},
		{"ExternalServiceError", NewExternalServiceError("brevo", "send", errors.New("timeout")), ErrExternalService},
		{"DetailedBalance", NewInsufficientBalanceError(1, -100, 50), ErrValidation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.class) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tc.err, tc.class)
			}
		})
	}

	if errors.Is(ErrGroupNotFound, ErrValidation) {
		t.Errorf("ErrGroupNotFound must not be a validation error")
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientBalance", ErrInsufficientBalance, 4001},
		{"DetailedInsufficientBalance", NewInsufficientBalanceError(1, -10, 0), 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"InvalidUserID", ErrInvalidUserID, 4003},
		{"InvalidGroupName", ErrInvalidGroupName, 4004},
		{"InvalidTransition", ErrInvalidTransition, 4005},
		{"GenericValidation", ErrInvalidRoomCode, 4000},
		{"UserNotFound", ErrUserNotFound, 4041},
		{"GroupNotFound", ErrGroupNotFound, 4042},
		{"AlreadyMember", ErrAlreadyMember, 4090},
		{"Forbidden", ErrNotGroupMember, 4030},
		{"Unauthorized", ErrUnauthorized, 4010},
		{"Persistence", NewPersistenceError("update", errors.New("boom")), 5001},
		{"ExternalService", NewExternalServiceError("qr", "render", errors.New("boom")), 5020},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation", ErrInvalidGroupName, http.StatusBadRequest},
		{"AlreadyMember", ErrAlreadyMember, http.StatusConflict},
		{"InsufficientBalance", ErrInsufficientBalance, http.StatusUnprocessableEntity},
		{"NotFound", ErrGroupNotFound, http.StatusNotFound},
		{"Forbidden", ErrNotGroupCreator, http.StatusForbidden},
		{"Unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"External", NewExternalServiceError("qr", "render", errors.New("x")), http.StatusBadGateway},
		{"Persistence", NewPersistenceError("select", errors.New("x")), http.StatusInternalServerError},
		{"Unknown", errors.New("x"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HTTPStatus(tc.err); got != tc.expected {
				t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.expected)
			}
		})
	}
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewPersistenceError("insert transaction", cause)

	expectedMsg := "persistence failure during insert transaction: connection reset"
	if err.Error() != expectedMsg {
		t.Errorf("PersistenceError.Error() = %s, want %s", err.Error(), expectedMsg)
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}

	// Domain errors pass through unchanged
	if got := NewPersistenceError("select", ErrUserNotFound); got != ErrUserNotFound {
		t.Errorf("NewPersistenceError should not wrap domain errors, got %v", got)
	}
	if NewPersistenceError("noop", nil) != nil {
		t.Errorf("NewPersistenceError(nil) should be nil")
	}

	fields := Fields(err)
	if fields["operation"] != "insert transaction" {
		t.Errorf("Fields operation = %v, want insert transaction", fields["operation"])
	}
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError(123, -500, 250)

	expectedMsg := "insufficient balance for user 123: delta -500, available 250"
	if err.Error() != expectedMsg {
		t.Errorf("InsufficientBalanceError.Error() = %s, want %s", err.Error(), expectedMsg)
	}
	if !IsInsufficientBalanceError(err) {
		t.Errorf("IsInsufficientBalanceError(err) = false, want true")
	}

	fields := Fields(err)
	if fields["current_balance"] != int64(250) {
		t.Errorf("Fields current_balance = %v, want 250", fields["current_balance"])
	}
}

func TestFieldsFallback(t *testing.T) {
	fields := Fields(ErrGroupNotFound)
	if fields["error_code"] != CodeGroupNotFound {
		t.Errorf("Fields error_code = %v, want %d", fields["error_code"], CodeGroupNotFound)
	}
}
