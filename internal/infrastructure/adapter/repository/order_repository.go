package repository

import (
	"context"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
	errs "github.com/vyronamart/group-ledger/internal/domain/error"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// OrderRepository implements OrderRepository interface using GORM
type OrderRepository struct {
	db     *gorm.DB
	logger coreport.Logger
	errors dbErrorHandler
}

// NewOrderRepository creates a new OrderRepository instance
func NewOrderRepository(db *gorm.DB, logger coreport.Logger) *OrderRepository {
	return &OrderRepository{
		db:     db,
		logger: logger,
		errors: dbErrorHandler{
			logger:     logger,
			classifier: NewErrorClassifier(),
			notFound:   errs.ErrOrderNotFound,
		},
	}
}

func orderModelToEntity(m *model.Order) *entity.Order {
	return &entity.Order{
		ID:        m.ID,
		UserID:    m.UserID,
		Email:     m.Email,
		GroupID:   m.GroupID,
		Total:     m.Total,
		Status:    entity.OrderStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// Create inserts an order
func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	row := model.Order{
		UserID:    order.UserID,
		Email:     order.Email,
		GroupID:   order.GroupID,
		Total:     order.Total,
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.errors.handle("creating order", err, map[string]any{"user_id": order.UserID})
	}
	order.ID = row.ID

	r.logger.Debug("Order created successfully", map[string]any{
		"order_id": order.ID,
		"user_id":  order.UserID,
	})
	return nil
}

// GetByID retrieves an order by ID
func (r *OrderRepository) GetByID(ctx context.Context, id uint64) (*entity.Order, error) {
	var row model.Order
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, r.errors.handle("getting order", err, map[string]any{"order_id": id})
	}
	return orderModelToEntity(&row), nil
}

// UpdateStatus is a compare-and-set on the status column. Losing a race
// against another transition surfaces as ErrInvalidTransition.
func (r *OrderRepository) UpdateStatus(ctx context.Context, order *entity.Order, from entity.OrderStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ? AND status = ?", order.ID, string(from)).
		Updates(map[string]any{
			"status":     string(order.Status),
			"updated_at": order.UpdatedAt,
		})
	if result.Error != nil {
		return r.errors.handle("updating order status", result.Error, map[string]any{
			"order_id": order.ID,
			"from":     string(from),
			"to":       string(order.Status),
		})
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Order status changed concurrently", map[string]any{
			"order_id": order.ID,
			"from":     string(from),
		})
		return errs.ErrInvalidTransition
	}
	return nil
}

// AddEvent appends a status event
func (r *OrderRepository) AddEvent(ctx context.Context, event *entity.OrderStatusEvent) error {
	row := model.OrderStatusEvent{
		OrderID:    event.OrderID,
		FromStatus: string(event.From),
		ToStatus:   string(event.To),
		Notified:   event.Notified,
		CreatedAt:  event.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Omit("Order").Create(&row).Error; err != nil {
		return r.errors.handle("adding order event", err, map[string]any{"order_id": event.OrderID})
	}
	event.ID = row.ID
	return nil
}

// MarkEventNotified records whether the event's email went out
func (r *OrderRepository) MarkEventNotified(ctx context.Context, eventID uint64, notified bool) error {
	err := r.db.WithContext(ctx).Model(&model.OrderStatusEvent{}).
		Where("id = ?", eventID).
		Update("notified", notified).Error
	if err != nil {
		return r.errors.handle("marking event notified", err, map[string]any{"event_id": eventID})
	}
	return nil
}

// ListEvents returns an order's status history oldest first
func (r *OrderRepository) ListEvents(ctx context.Context, orderID uint64) ([]*entity.OrderStatusEvent, error) {
	var rows []model.OrderStatusEvent
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, r.errors.handle("listing order events", err, map[string]any{"order_id": orderID})
	}

	events := make([]*entity.OrderStatusEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, &entity.OrderStatusEvent{
			ID:        row.ID,
			OrderID:   row.OrderID,
			From:      entity.OrderStatus(row.FromStatus),
			To:        entity.OrderStatus(row.ToStatus),
			Notified:  row.Notified,
			CreatedAt: row.CreatedAt,
		})
	}
	return events, nil
}
