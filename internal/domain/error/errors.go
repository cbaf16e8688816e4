package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation          = 4000
	CodeInsufficientBalance = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidUserID       = 4003
	CodeInvalidGroupName    = 4004
	CodeInvalidTransition   = 4005
	CodeInvalidTxType       = 4006
	CodeUnauthorized        = 4010
	CodeForbidden           = 4030
	CodeNotFound            = 4040
	CodeUserNotFound        = 4041
	CodeGroupNotFound       = 4042
	CodeOrderNotFound       = 4043
	CodeAlreadyMember       = 4090
	CodeDuplicateUser       = 4091

	// 5xxx - Server errors
	CodeInternalServer  = 5000
	CodePersistence     = 5001
	CodeExternalService = 5020
)

// Error classes. Every domain error belongs to exactly one of them.
var (
	// ErrValidation is the class of bad or missing input that the caller must fix
	ErrValidation = errors.New("validation error")

	// ErrNotFound is the class of referenced entities that are absent
	ErrNotFound = errors.New("resource not found")

	// ErrPersistence is the class of store read/write failures
	ErrPersistence = errors.New("persistence error")

	// ErrExternalService is the class of email or artifact-rendering collaborator failures
	ErrExternalService = errors.New("external service error")

	// ErrUnauthorized is returned when no authenticated principal is present
	ErrUnauthorized = errors.New("authentication required")

	// ErrForbidden is returned when the principal may not perform the operation
	ErrForbidden = errors.New("operation not permitted")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// Specific errors
var (
	ErrInvalidUserID          = newClassified(ErrValidation, "user ID must be positive")
	ErrInvalidAmount          = newClassified(ErrValidation, "invalid amount")
	ErrInvalidTransactionType = newClassified(ErrValidation, "invalid transaction type")
	ErrInvalidGroupName       = newClassified(ErrValidation, "group name is required")
	ErrInvalidGroupID         = newClassified(ErrValidation, "group ID must be positive")
	ErrInvalidRoomCode        = newClassified(ErrValidation, "invalid room code")
	ErrInvalidCartItem        = newClassified(ErrValidation, "invalid cart item")
	ErrInvalidTransition      = newClassified(ErrValidation, "invalid order status transition")
	ErrInvalidOrder           = newClassified(ErrValidation, "invalid order")
	ErrInsufficientBalance    = newClassified(ErrValidation, "insufficient balance")
	ErrAlreadyMember          = newClassified(ErrValidation, "user is already a member of this group")
	ErrDuplicateUser          = newClassified(ErrValidation, "user already exists")

	ErrUserNotFound   = newClassified(ErrNotFound, "user not found")
	ErrGroupNotFound  = newClassified(ErrNotFound, "group not found or inactive")
	ErrOrderNotFound  = newClassified(ErrNotFound, "order not found")
	ErrRoomCodeUnused = newClassified(ErrNotFound, "no active group with this room code")

	ErrNotGroupMember  = newClassified(ErrForbidden, "user is not a member of this group")
	ErrNotGroupCreator = newClassified(ErrForbidden, "only the group creator can do this")
	ErrOperatorOnly    = newClassified(ErrForbidden, "operation requires the operator role")

	ErrDuplicateRoomCode  = newClassified(ErrPersistence, "room code already taken")
	ErrDatabaseConnection = newClassified(ErrPersistence, "database connection error")
)

// classifiedError is a leaf error that reports membership in an error class
type classifiedError struct {
	msg   string
	class error
}

func newClassified(class error, msg string) error {
	return &classifiedError{msg: msg, class: class}
}

// Error implements the error interface
func (e *classifiedError) Error() string {
	return e.msg
}

// Is reports whether target is the class of this error
func (e *classifiedError) Is(target error) bool {
	return target == e.class
}

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidGroupName):
		return CodeInvalidGroupName
	case errors.Is(err, ErrInvalidTransition):
		return CodeInvalidTransition
	case errors.Is(err, ErrInvalidTransactionType):
		return CodeInvalidTxType
	case errors.Is(err, ErrAlreadyMember):
		return CodeAlreadyMember
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrGroupNotFound):
		return CodeGroupNotFound
	case errors.Is(err, ErrOrderNotFound):
		return CodeOrderNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrPersistence):
		return CodePersistence
	case errors.Is(err, ErrExternalService):
		return CodeExternalService
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps a domain error to the HTTP status code returned to clients
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrAlreadyMember), errors.Is(err, ErrDuplicateUser):
		return http.StatusConflict
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrExternalService):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// PersistenceError wraps a store failure with the operation that failed
type PersistenceError struct {
	Op  string
	Err error
}

// Error implements the error interface for PersistenceError
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is reports membership in the persistence class
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// LogFields returns a map of fields for structured logging
func (e *PersistenceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "persistence_error",
		"operation":  e.Op,
		"error":      e.Err.Error(),
		"error_code": CodePersistence,
	}
}

// NewPersistenceError wraps err unless it already carries a domain class
func NewPersistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsDomainError(err) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

// ExternalServiceError describes a failed call to an external collaborator
type ExternalServiceError struct {
	Service string
	Op      string
	Err     error
}

// Error implements the error interface for ExternalServiceError
func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Service, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// Is reports membership in the external service class
func (e *ExternalServiceError) Is(target error) bool {
	return target == ErrExternalService
}

// LogFields returns a map of fields for structured logging
func (e *ExternalServiceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "external_service_error",
		"service":    e.Service,
		"operation":  e.Op,
		"error":      e.Err.Error(),
		"error_code": CodeExternalService,
	}
}

// NewExternalServiceError creates a new external service error
func NewExternalServiceError(service, op string, err error) error {
	return &ExternalServiceError{Service: service, Op: op, Err: err}
}

// InsufficientBalanceError provides detailed error information for a rejected debit
type InsufficientBalanceError struct {
	UserID  uint64
	Amount  int64
	Balance int64
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %d: delta %d, available %d",
		e.UserID, e.Amount, e.Balance)
}

// Is checks if the target error is an ErrInsufficientBalance or its class
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance || target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.Balance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID uint64, amount, balance int64) error {
	return &InsufficientBalanceError{UserID: userID, Amount: amount, Balance: balance}
}

// LogFieldser is implemented by errors that carry structured logging fields
type LogFieldser interface {
	LogFields() map[string]any
}

// Fields returns structured logging fields for err
func Fields(err error) map[string]any {
	var lf LogFieldser
	if errors.As(err, &lf) {
		return lf.LogFields()
	}
	return map[string]any{
		"error":      err.Error(),
		"error_code": ErrorCode(err),
	}
}

// IsDomainError reports whether err belongs to any known error class
func IsDomainError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrPersistence) ||
		errors.Is(err, ErrExternalService) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrForbidden)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if the error is caused by caller input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}
