package entity

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	errs "github.com/vyronamart/group-ledger/internal/domain/error"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
)

// Room code shape
const (
	DefaultRoomCodeLength = 6
	MinRoomCodeLength     = 4
	MaxRoomCodeLength     = 12
	roomCodeAlphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// MembershipRole describes how a user belongs to a group
type MembershipRole string

// Membership roles
const (
	RoleCreator MembershipRole = "creator"
	RoleMember  MembershipRole = "member"
)

// ShoppingGroup is a set of users pooling purchases into one cart
type ShoppingGroup struct {
	ID          uint64
	Name        string
	Description string
	CreatorID   uint64
	Active      bool
	RoomCode    string
	MemberCount int64 // computed from memberships, never stored
	CreatedAt   time.Time
	ClosedAt    *time.Time
}

// GroupMembership joins a user to a group
type GroupMembership struct {
	GroupID  uint64
	UserID   uint64
	UserName string // filled by member listings
	Role     MembershipRole
	JoinedAt time.Time
}

// NewShoppingGroup validates input and builds an active group
func NewShoppingGroup(
	name string,
	description string,
	creatorID uint64,
	roomCode string,
	timeProvider coreport.TimeProvider,
) (*ShoppingGroup, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.ErrInvalidGroupName
	}
	if creatorID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	return &ShoppingGroup{
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatorID:   creatorID,
		Active:      true,
		RoomCode:    roomCode,
		MemberCount: 1,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// IsCreator reports whether userID created the group
func (g *ShoppingGroup) IsCreator(userID uint64) bool {
	return g.CreatorID == userID
}

// Close deactivates the group. Closed groups stay readable but reject joins.
func (g *ShoppingGroup) Close(timeProvider coreport.TimeProvider) {
	now := timeProvider.Now()
	g.Active = false
	g.ClosedAt = &now
}

// NewMembership creates a membership row for userID in groupID
func NewMembership(groupID, userID uint64, role MembershipRole, timeProvider coreport.TimeProvider) (*GroupMembership, error) {
	if groupID == 0 {
		return nil, errs.ErrInvalidGroupID
	}
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return &GroupMembership{
		GroupID:  groupID,
		UserID:   userID,
		Role:     role,
		JoinedAt: timeProvider.Now(),
	}, nil
}

// GenerateRoomCode draws length characters from [A-Z0-9] using crypto/rand
func GenerateRoomCode(length int) (string, error) {
	if length < MinRoomCodeLength || length > MaxRoomCodeLength {
		return "", fmt.Errorf("%w: length %d", errs.ErrInvalidRoomCode, length)
	}

	limit := big.NewInt(int64(len(roomCodeAlphabet)))
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("generate room code: %w", err)
		}
		sb.WriteByte(roomCodeAlphabet[n.Int64()])
	}
	return sb.String(), nil
}

// NormalizeRoomCode upper-cases user input and checks its shape
func NormalizeRoomCode(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if !IsValidRoomCode(code) {
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidRoomCode, raw)
	}
	return code, nil
}

// IsValidRoomCode reports whether code is an upper-case alphanumeric code of acceptable length
func IsValidRoomCode(code string) bool {
	if len(code) < MinRoomCodeLength || len(code) > MaxRoomCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(roomCodeAlphabet, rune(code[i])) {
			return false
		}
	}
	return true
}
