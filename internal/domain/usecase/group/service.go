package group

import (
	"context"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
	"github.com/vyronamart/group-ledger/internal/domain/port/external"
	"github.com/vyronamart/group-ledger/internal/domain/port/persistence"
)

// Group lifecycle events reported to metrics
const (
	eventCreated       = "created"
	eventJoined        = "joined"
	eventClosed        = "closed"
	eventCartItemAdded = "cart_item_added"
)

// Options tunes room code generation
type Options struct {
	RoomCodeLength      int
	MaxRoomCodeAttempts int
}

// DefaultOptions returns the production room code settings
func DefaultOptions() Options {
	return Options{
		RoomCodeLength:      entity.DefaultRoomCodeLength,
		MaxRoomCodeAttempts: 5,
	}
}

// Service implements usecase.GroupUseCase
type Service struct {
	uow          persistence.UnitOfWork
	cache        external.GroupListCache
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
	options      Options
}

// NewGroupService creates a new group service. cache may be nil.
func NewGroupService(
	uow persistence.UnitOfWork,
	cache external.GroupListCache,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
	options Options,
) *Service {
	defaults := DefaultOptions()
	if options.RoomCodeLength == 0 {
		options.RoomCodeLength = defaults.RoomCodeLength
	}
	if options.MaxRoomCodeAttempts <= 0 {
		options.MaxRoomCodeAttempts = defaults.MaxRoomCodeAttempts
	}

	return &Service{
		uow:          uow,
		cache:        cache,
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
		options:      options,
	}
}

// invalidateListing drops the cached group listing. Failures are logged; the entry still expires with its TTL.
func (s *Service) invalidateListing(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("Failed to invalidate group cache", map[string]any{
			"error": err.Error(),
		})
	}
}
