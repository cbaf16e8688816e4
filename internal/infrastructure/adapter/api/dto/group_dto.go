package dto

import (
	"time"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
)

// CreateGroupRequest creates a shopping group
type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// JoinByRoomCodeRequest joins a group by its shareable code
type JoinByRoomCodeRequest struct {
	RoomCode string `json:"roomCode" binding:"required,roomcode"`
}

// AddCartItemRequest adds a product line to a group cart
type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"max=64"`
	Name      string `json:"name" binding:"required,max=200"`
	Price     int64  `json:"price" binding:"min=0,max=1000000000"`
	Quantity  int64  `json:"quantity" binding:"required,min=1,max=10000"`
}

// GroupResponse represents a shopping group
type GroupResponse struct {
	ID          uint64     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	CreatorID   uint64     `json:"creatorId"`
	Active      bool       `json:"active"`
	RoomCode    string     `json:"roomCode"`
	MemberCount int64      `json:"memberCount"`
	CreatedAt   time.Time  `json:"createdAt"`
	ClosedAt    *time.Time `json:"closedAt,omitempty"`
}

// MemberResponse represents one membership
type MemberResponse struct {
	GroupID  uint64    `json:"groupId"`
	UserID   uint64    `json:"userId"`
	UserName string    `json:"userName,omitempty"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

// CartItemResponse represents one cart line
type CartItemResponse struct {
	ID        uint64 `json:"id"`
	GroupID   uint64 `json:"groupId"`
	UserID    uint64 `json:"userId"`
	ProductID string `json:"productId,omitempty"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

// AggregateCartResponse summarizes a group cart
type AggregateCartResponse struct {
	GroupID   uint64 `json:"groupId"`
	Total     int64  `json:"total"`
	Formatted string `json:"formatted"`
	ItemCount int64  `json:"itemCount"`
	Quantity  int64  `json:"quantity"`
}

// NewGroupResponse converts a group
func NewGroupResponse(g *entity.ShoppingGroup) GroupResponse {
	return GroupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		CreatorID:   g.CreatorID,
		Active:      g.Active,
		RoomCode:    g.RoomCode,
		MemberCount: g.MemberCount,
		CreatedAt:   g.CreatedAt,
		ClosedAt:    g.ClosedAt,
	}
}

// NewGroupList converts groups
func NewGroupList(groups []*entity.ShoppingGroup) []GroupResponse {
	out := make([]GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, NewGroupResponse(g))
	}
	return out
}

// NewMemberResponse converts a membership
func NewMemberResponse(m *entity.GroupMembership) MemberResponse {
	return MemberResponse{
		GroupID:  m.GroupID,
		UserID:   m.UserID,
		UserName: m.UserName,
		Role:     string(m.Role),
		JoinedAt: m.JoinedAt,
	}
}

// NewMemberList converts memberships
func NewMemberList(members []*entity.GroupMembership) []MemberResponse {
	out := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, NewMemberResponse(m))
	}
	return out
}

// NewCartItemResponse converts a cart line
func NewCartItemResponse(item *entity.CartItem) CartItemResponse {
	return CartItemResponse{
		ID:        item.ID,
		GroupID:   item.GroupID,
		UserID:    item.UserID,
		ProductID: item.ProductID,
		Name:      item.Name,
		Price:     item.Price,
		Quantity:  item.Quantity,
		Subtotal:  item.Subtotal(),
	}
}

// NewCartItemList converts cart lines
func NewCartItemList(items []*entity.CartItem) []CartItemResponse {
	out := make([]CartItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, NewCartItemResponse(item))
	}
	return out
}

// NewAggregateCartResponse converts a cart summary
func NewAggregateCartResponse(a *entity.AggregateCart) AggregateCartResponse {
	return AggregateCartResponse{
		GroupID:   a.GroupID,
		Total:     a.Total,
		Formatted: a.FormattedTotal(),
		ItemCount: a.ItemCount,
		Quantity:  a.Quantity,
	}
}
