package entity

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	errs "github.com/vyronamart/group-ledger/internal/domain/error"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
)

// OrderStatus is a step in the delivery lifecycle
type OrderStatus string

// Order statuses, in lifecycle order
const (
	OrderPending        OrderStatus = "pending"
	OrderProcessing     OrderStatus = "processing"
	OrderShipped        OrderStatus = "shipped"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
)

var orderLifecycle = []OrderStatus{
	OrderPending,
	OrderProcessing,
	OrderShipped,
	OrderOutForDelivery,
	OrderDelivered,
}

// ParseOrderStatus validates a raw status string
func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range orderLifecycle {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: unknown status %q", errs.ErrInvalidTransition, raw)
}

// Next returns the only status reachable from s. delivered has none.
func (s OrderStatus) Next() (OrderStatus, bool) {
	for i, known := range orderLifecycle {
		if known == s && i+1 < len(orderLifecycle) {
			return orderLifecycle[i+1], true
		}
	}
	return "", false
}

// IsTerminal reports whether no further transition exists
func (s OrderStatus) IsTerminal() bool {
	_, ok := s.Next()
	return !ok
}

// Order is a placed purchase whose delivery progress is tracked
type Order struct {
	ID        uint64
	UserID    uint64
	Email     string
	GroupID   *uint64
	Total     int64 // paise
	Status    OrderStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderStatusEvent records one transition and whether its email went out
type OrderStatusEvent struct {
	ID        uint64
	OrderID   uint64
	From      OrderStatus
	To        OrderStatus
	Notified  bool
	CreatedAt time.Time
}

// NewOrder validates input and builds a pending order
func NewOrder(userID uint64, email string, groupID *uint64, total int64, timeProvider coreport.TimeProvider) (*Order, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: email %q", errs.ErrInvalidOrder, email)
	}
	if total < 0 {
		return nil, fmt.Errorf("%w: total must not be negative", errs.ErrInvalidAmount)
	}
	if groupID != nil && *groupID == 0 {
		groupID = nil
	}

	now := timeProvider.Now()
	return &Order{
		UserID:    userID,
		Email:     email,
		GroupID:   groupID,
		Total:     total,
		Status:    OrderPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Advance moves the order to target if target is the immediate successor.
// It returns the transition event to persist.
func (o *Order) Advance(target OrderStatus, timeProvider coreport.TimeProvider) (*OrderStatusEvent, error) {
	next, ok := o.Status.Next()
	if !ok || next != target {
		return nil, fmt.Errorf("%w: %s -> %s", errs.ErrInvalidTransition, o.Status, target)
	}

	now := timeProvider.Now()
	from := o.Status
	o.Status = target
	o.UpdatedAt = now

	return &OrderStatusEvent{
		OrderID:   o.ID,
		From:      from,
		To:        target,
		CreatedAt: now,
	}, nil
}

// FormattedTotal renders the order total in rupees
func (o *Order) FormattedTotal() string {
	return FormatRupees(o.Total)
}
