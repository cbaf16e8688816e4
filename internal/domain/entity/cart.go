package entity

import (
	"strings"
	"time"

	errs "github.com/vyronamart/group-ledger/internal/domain/error"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
)

const (
	// MaxCartItemPrice caps a unit price at ₹1 crore
	MaxCartItemPrice int64 = 1_000_000_000
	// MaxCartItemQuantity caps the units on one cart line
	MaxCartItemQuantity int64 = 10_000
)

// CartItem is one product line added to a group's shared cart
type CartItem struct {
	ID        uint64
	GroupID   uint64
	UserID    uint64
	ProductID string
	Name      string
	Price     int64 // unit price in paise
	Quantity  int64
	CreatedAt time.Time
}

// AggregateCart summarizes a group's cart
type AggregateCart struct {
	GroupID   uint64 `json:"groupId"`
	Total     int64  `json:"total"`
	ItemCount int64  `json:"itemCount"`
	Quantity  int64  `json:"quantity"`
}

// NewCartItem validates input and builds a cart line
func NewCartItem(
	groupID uint64,
	userID uint64,
	productID string,
	name string,
	price int64,
	quantity int64,
	timeProvider coreport.TimeProvider,
) (*CartItem, error) {
	if groupID == 0 {
		return nil, errs.ErrInvalidGroupID
	}
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	name = strings.TrimSpace(name)
	if name == "" || price < 0 || quantity < 1 {
		return nil, errs.ErrInvalidCartItem
	}
	if price > MaxCartItemPrice || quantity > MaxCartItemQuantity {
		return nil, errs.ErrInvalidCartItem
	}

	return &CartItem{
		GroupID:   groupID,
		UserID:    userID,
		ProductID: strings.TrimSpace(productID),
		Name:      name,
		Price:     price,
		Quantity:  quantity,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// Subtotal returns price x quantity
func (c *CartItem) Subtotal() int64 {
	return c.Price * c.Quantity
}

// FormattedTotal renders the aggregate total in rupees
func (a AggregateCart) FormattedTotal() string {
	return FormatRupees(a.Total)
}
