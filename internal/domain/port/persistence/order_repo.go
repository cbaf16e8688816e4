package persistence

import (
	"context"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
)

// OrderRepository stores orders and their status history
type OrderRepository interface {
	// Create inserts a pending order and assigns its ID
	Create(ctx context.Context, order *entity.Order) error

	// GetByID returns an order
	//
	// Possible errors:
	// - ErrOrderNotFound: If no order has this ID
	GetByID(ctx context.Context, id uint64) (*entity.Order, error)

	// UpdateStatus persists order.Status only if the stored status still equals from.
	// A concurrent transition makes this fail with ErrInvalidTransition.
	UpdateStatus(ctx context.Context, order *entity.Order, from entity.OrderStatus) error

	// AddEvent appends a status event and assigns its ID
	AddEvent(ctx context.Context, event *entity.OrderStatusEvent) error

	// MarkEventNotified records the notification outcome of an event
	MarkEventNotified(ctx context.Context, eventID uint64, notified bool) error

	// ListEvents returns an order's events oldest first
	ListEvents(ctx context.Context, orderID uint64) ([]*entity.OrderStatusEvent, error)
}
