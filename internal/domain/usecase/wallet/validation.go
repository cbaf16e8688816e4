package wallet

import (
	"fmt"
	"unicode/utf8"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
	errs "github.com/vyronamart/group-ledger/internal/domain/error"
	"github.com/vyronamart/group-ledger/internal/domain/port/usecase"
)

// MaxAbsoluteDelta caps a single balance change at ₹1 crore
const MaxAbsoluteDelta int64 = 1_000_000_000

// Validation limits
const (
	MaxDescriptionLength = 255
	DefaultPageSize      = 50
	MaxPageSize          = 200
)

// DeltaValidator provides validation for wallet requests
type DeltaValidator struct{}

// NewDeltaValidator creates a new DeltaValidator
func NewDeltaValidator() *DeltaValidator {
	return &DeltaValidator{}
}

// ValidateDelta validates all ApplyDelta fields and returns the parsed type
func (v *DeltaValidator) ValidateDelta(req usecase.ApplyDeltaRequest) (entity.TransactionType, error) {
	if req.UserID == 0 {
		return "", errs.ErrInvalidUserID
	}

	txType, err := entity.ParseTransactionType(req.Type)
	if err != nil {
		return "", err
	}

	if err := v.validateAmount(req.Amount); err != nil {
		return "", err
	}

	if utf8.RuneCountInString(req.Description) > MaxDescriptionLength {
		return "", fmt.Errorf("%w: description longer than %d characters", errs.ErrValidation, MaxDescriptionLength)
	}

	return txType, nil
}

// validateAmount checks the magnitude only; zero and negative deltas are legal
func (v *DeltaValidator) validateAmount(amount int64) error {
	if amount > MaxAbsoluteDelta || amount < -MaxAbsoluteDelta {
		return fmt.Errorf("%w: magnitude exceeds %d", errs.ErrInvalidAmount, MaxAbsoluteDelta)
	}
	return nil
}

// NormalizePage clamps list paging parameters
func (v *DeltaValidator) NormalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
