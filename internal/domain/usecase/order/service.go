package order

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
	errs "github.com/vyronamart/group-ledger/internal/domain/error"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
	"github.com/vyronamart/group-ledger/internal/domain/port/external"
	"github.com/vyronamart/group-ledger/internal/domain/port/persistence"
	"github.com/vyronamart/group-ledger/internal/domain/port/usecase"
)

// Service implements usecase.OrderUseCase
type Service struct {
	uow          persistence.UnitOfWork
	sender       external.EmailSender
	templates    *Templates
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics

	notifyTimeout time.Duration
	pending       sync.WaitGroup
}

// NewOrderService creates a new order service
func NewOrderService(
	uow persistence.UnitOfWork,
	sender external.EmailSender,
	templates *Templates,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
) *Service {
	return &Service{
		uow:          uow,
		sender:       sender,
		templates:    templates,
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,

		notifyTimeout: DefaultNotifyTimeout,
	}
}

// CreateOrder places a pending order for the caller
func (s *Service) CreateOrder(ctx context.Context, principal entity.Principal, req usecase.CreateOrderRequest) (*entity.Order, error) {
	if principal.IsZero() {
		return nil, errs.ErrUnauthorized
	}

	order, err := entity.NewOrder(principal.UserID, principal.Email, req.GroupID, req.Total, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if order.GroupID != nil {
		if _, err := s.uow.GetGroupRepository(ctx).GetByID(ctx, *order.GroupID); err != nil {
			return nil, err
		}
	}

	if err := s.uow.GetOrderRepository(ctx).Create(ctx, order); err != nil {
		s.logger.Error("Failed to create order", errs.Fields(err))
		return nil, err
	}

	s.logger.Info("Order created", map[string]any{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"total":    order.Total,
	})
	return order, nil
}

// GetOrder returns the caller's order with its status history
func (s *Service) GetOrder(ctx context.Context, principal entity.Principal, orderID uint64) (*usecase.OrderDetails, error) {
	if principal.IsZero() {
		return nil, errs.ErrUnauthorized
	}
	if orderID == 0 {
		return nil, fmt.Errorf("%w: order ID must be positive", errs.ErrInvalidOrder)
	}

	repo := s.uow.GetOrderRepository(ctx)
	order, err := repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != principal.UserID {
		return nil, errs.ErrOrderNotFound
	}

	events, err := repo.ListEvents(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &usecase.OrderDetails{Order: order, Events: events}, nil
}
