package model

import (
	"time"
)

// Order represents the database model for orders
type Order struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `gorm:"not null;index"`
	Email     string    `gorm:"not null;size:255"`
	GroupID   *uint64   `gorm:"index"`
	Total     int64     `gorm:"not null"`
	Status    string    `gorm:"not null;size:32;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "orders"
}

// OrderStatusEvent is one append-only row of an order's status history
type OrderStatusEvent struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	OrderID    uint64    `gorm:"not null;index"`
	FromStatus string    `gorm:"not null;size:32"`
	ToStatus   string    `gorm:"not null;size:32"`
	Notified   bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null"`

	Order Order `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the table name for OrderStatusEvent
func (OrderStatusEvent) TableName() string {
	return "order_status_events"
}
