package dto

import (
	"time"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
)

// GenerateIntentRequest asks for a UPI payment intent for one cart item
type GenerateIntentRequest struct {
	ItemID uint64 `json:"itemId" binding:"required"`
	Amount int64  `json:"amount"`
}

// PaymentIntentResponse represents a generated intent and its QR artifact
type PaymentIntentResponse struct {
	ReferenceID  string    `json:"referenceId"`
	GroupID      uint64    `json:"groupId"`
	ItemID       uint64    `json:"itemId"`
	UserID       uint64    `json:"userId"`
	Amount       int64     `json:"amount"`
	Currency     string    `json:"currency"`
	Payee        string    `json:"payee"`
	PayeeName    string    `json:"payeeName"`
	Note         string    `json:"note"`
	URI          string    `json:"uri"`
	QRCode       string    `json:"qrCode"`
	ExpiresAt    time.Time `json:"expiresAt"`
	Instructions []string  `json:"instructions"`
}

// NewPaymentIntentResponse converts a payment intent
func NewPaymentIntentResponse(p *entity.PaymentIntent) PaymentIntentResponse {
	return PaymentIntentResponse{
		ReferenceID:  p.ReferenceID,
		GroupID:      p.GroupID,
		ItemID:       p.ItemID,
		UserID:       p.UserID,
		Amount:       p.Amount,
		Currency:     p.Currency,
		Payee:        p.Payee,
		PayeeName:    p.PayeeName,
		Note:         p.Note,
		URI:          p.URI,
		QRCode:       p.Artifact,
		ExpiresAt:    p.ExpiresAt,
		Instructions: p.Instructions,
	}
}
