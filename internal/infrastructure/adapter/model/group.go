package model

import (
	"time"
)

// ShoppingGroup represents the database model for shopping groups
type ShoppingGroup struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"not null;size:120"`
	Description string    `gorm:"type:text"`
	CreatorID   uint64    `gorm:"not null;index"`
	Active      bool      `gorm:"not null;default:true;index"`
	RoomCode    string    `gorm:"not null;size:12;uniqueIndex:idx_shopping_groups_room_code"`
	CreatedAt   time.Time `gorm:"not null"`
	ClosedAt    *time.Time
}

// TableName specifies the table name for ShoppingGroup
func (ShoppingGroup) TableName() string {
	return "shopping_groups"
}

// GroupMembership is the join row between users and groups.
// The composite primary key keeps one row per (group, user).
type GroupMembership struct {
	GroupID  uint64    `gorm:"primaryKey;autoIncrement:false"`
	UserID   uint64    `gorm:"primaryKey;autoIncrement:false;index"`
	Role     string    `gorm:"not null;size:16"`
	JoinedAt time.Time `gorm:"not null"`

	Group ShoppingGroup `gorm:"foreignKey:GroupID;references:ID"`
}

// TableName specifies the table name for GroupMembership
func (GroupMembership) TableName() string {
	return "group_memberships"
}

// GroupWithCount is the read shape of the member count aggregate
type GroupWithCount struct {
	ID          uint64
	Name        string
	Description string
	CreatorID   uint64
	Active      bool
	RoomCode    string
	CreatedAt   time.Time
	ClosedAt    *time.Time
	MemberCount int64
}

// MemberWithName is the read shape of a membership joined with its user
type MemberWithName struct {
	GroupID  uint64
	UserID   uint64
	Role     string
	JoinedAt time.Time
	UserName string
}
