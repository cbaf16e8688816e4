package model

import (
	"time"
)

// CartItem represents one line of a group's shared cart
type CartItem struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	GroupID   uint64    `gorm:"not null;index"`
	UserID    uint64    `gorm:"not null"`
	ProductID string    `gorm:"size:64"`
	Name      string    `gorm:"not null;size:255"`
	Price     int64     `gorm:"not null;check:chk_cart_items_price,price >= 0 AND price <= 1000000000"`
	Quantity  int64     `gorm:"not null;check:chk_cart_items_quantity,quantity >= 1 AND quantity <= 10000"`
	CreatedAt time.Time `gorm:"not null"`

	Group ShoppingGroup `gorm:"foreignKey:GroupID;references:ID"`
}

// TableName specifies the table name for CartItem
func (CartItem) TableName() string {
	return "cart_items"
}

// CartTotals is the read shape of the cart aggregate query
type CartTotals struct {
	Total     int64
	ItemCount int64
	Quantity  int64
}
