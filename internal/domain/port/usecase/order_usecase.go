package usecase

import (
	"context"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
)

// CreateOrderRequest places an order. Status emails go to the caller's
// token email, never to an address from the request.
type CreateOrderRequest struct {
	GroupID *uint64
	Total   int64
}

// OrderDetails is an order with its transition history
type OrderDetails struct {
	Order  *entity.Order
	Events []*entity.OrderStatusEvent
}

// OrderUseCase defines order placement and the delivery status machine
type OrderUseCase interface {
	CreateOrder(ctx context.Context, principal entity.Principal, req CreateOrderRequest) (*entity.Order, error)
	GetOrder(ctx context.Context, principal entity.Principal, orderID uint64) (*OrderDetails, error)
	// AdvanceStatus moves the order one step forward and sends a best-effort
	// email. Callers gate it to operators.
	AdvanceStatus(ctx context.Context, orderID uint64, target entity.OrderStatus) (*entity.Order, error)
}
