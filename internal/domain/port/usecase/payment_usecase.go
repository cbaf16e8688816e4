package usecase

import (
	"context"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
)

// GenerateIntentRequest identifies what a payment is for
type GenerateIntentRequest struct {
	GroupID uint64
	ItemID  uint64
	UserID  uint64
	Amount  int64
}

// PaymentUseCase builds payment intents for out-of-band settlement. It never moves money.
type PaymentUseCase interface {
	GenerateIntent(ctx context.Context, req GenerateIntentRequest) (*entity.PaymentIntent, error)
}
