package dto

import (
	"time"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
	"github.com/vyronamart/group-ledger/internal/domain/port/usecase"
)

// CreateOrderRequest places an order. Status emails go to the caller's token
// email; the body cannot redirect them.
type CreateOrderRequest struct {
	GroupID *uint64 `json:"groupId"`
	Total   int64   `json:"total" binding:"min=0"`
}

// AdvanceStatusRequest moves an order to its next status
type AdvanceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing shipped out_for_delivery delivered"`
}

// OrderResponse represents an order
type OrderResponse struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"userId"`
	Email     string    `json:"email"`
	GroupID   *uint64   `json:"groupId,omitempty"`
	Total     int64     `json:"total"`
	Formatted string    `json:"formatted"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderEventResponse represents one status transition
type OrderEventResponse struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Notified  bool      `json:"notified"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrderDetailsResponse is an order with its history
type OrderDetailsResponse struct {
	OrderResponse
	Events []OrderEventResponse `json:"events"`
}

// NewOrderResponse converts an order
func NewOrderResponse(o *entity.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		Email:     o.Email,
		GroupID:   o.GroupID,
		Total:     o.Total,
		Formatted: o.FormattedTotal(),
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

// NewOrderDetailsResponse converts an order and its events
func NewOrderDetailsResponse(d *usecase.OrderDetails) OrderDetailsResponse {
	events := make([]OrderEventResponse, 0, len(d.Events))
	for _, e := range d.Events {
		events = append(events, OrderEventResponse{
			From:      string(e.From),
			To:        string(e.To),
			Notified:  e.Notified,
			CreatedAt: e.CreatedAt,
		})
	}
	return OrderDetailsResponse{
		OrderResponse: NewOrderResponse(d.Order),
		Events:        events,
	}
}
