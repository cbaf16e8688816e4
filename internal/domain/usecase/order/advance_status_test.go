package order

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
	errs "github.com/vyronamart/group-ledger/internal/domain/error"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
	"github.com/vyronamart/group-ledger/internal/domain/port/external"
	"github.com/vyronamart/group-ledger/internal/domain/port/usecase"
	mcore "github.com/vyronamart/group-ledger/mocks/port/core"
	mext "github.com/vyronamart/group-ledger/mocks/port/external"
	mpers "github.com/vyronamart/group-ledger/mocks/port/persistence"
)

type contextKey string

const txKey contextKey = "tx"

type orderMocks struct {
	uow     *mpers.MockUnitOfWork
	orders  *mpers.MockOrderRepository
	groups  *mpers.MockGroupRepository
	sender  *mext.MockEmailSender
	clock   *mcore.MockTimeProvider
	logger  *mcore.MockLogger
	metrics *mcore.MockMetrics
	txCtx   context.Context
}

func newOrderMocks(t *testing.T) *orderMocks {
	m := &orderMocks{
		uow:     mpers.NewMockUnitOfWork(t),
		orders:  mpers.NewMockOrderRepository(t),
		groups:  mpers.NewMockGroupRepository(t),
		sender:  mext.NewMockEmailSender(t),
		clock:   mcore.NewMockTimeProvider(t),
		logger:  mcore.NewMockLogger(t).AllowAll(),
		metrics: mcore.NewMockMetrics(t),
		txCtx:   context.WithValue(context.Background(), txKey, "tx"),
	}
	m.clock.On("Now").Return(time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)).Maybe()
	m.uow.On("GetOrderRepository", mock.Anything).Return(m.orders).Maybe()
	m.uow.On("GetGroupRepository", mock.Anything).Return(m.groups).Maybe()
	return m
}

func (m *orderMocks) service(t *testing.T) *Service {
	templates, err := NewTemplates()
	require.NoError(t, err)
	return NewOrderService(m.uow, m.sender, templates, m.clock, m.logger, m.metrics)
}

func (m *orderMocks) expectTransition(order *entity.Order, from entity.OrderStatus) {
	m.uow.On("Begin", mock.Anything).Return(m.txCtx, nil)
	m.orders.On("GetByID", m.txCtx, order.ID).Return(order, nil)
	m.orders.On("UpdateStatus", m.txCtx, order, from).Return(nil)
	m.orders.On("AddEvent", m.txCtx, mock.AnythingOfType("*entity.OrderStatusEvent")).
		Run(func(args mock.Arguments) { args.Get(1).(*entity.OrderStatusEvent).ID = 77 }).
		Return(nil)
	m.uow.On("Commit", m.txCtx).Return(nil)
}

func TestService_AdvanceStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("should advance and send exactly one email", func(t *testing.T) {
		// Arrange
		m := newOrderMocks(t)
		svc := m.service(t)
		order := &entity.Order{ID: 5, UserID: 1, Email: "buyer@example.com", Total: 129900, Status: entity.OrderPending}
		m.expectTransition(order, entity.OrderPending)
		m.sender.On("Send", mock.Anything, "buyer@example.com",
			"Your VyronaMart order #5 is being prepared",
			mock.MatchedBy(func(html string) bool {
				return strings.Contains(html, "#5") && strings.Contains(html, "₹1299.00")
			}),
		).Return(external.SendResult{Success: true, MessageID: "m-1"}, nil).Once()
		m.orders.On("MarkEventNotified", mock.Anything, uint64(77), true).Return(nil).Once()
		m.metrics.On("RecordNotification", "processing", coreport.OutcomeSuccess).Return()

		// Act
		updated, err := svc.AdvanceStatus(ctx, 5, entity.OrderProcessing)
		svc.Wait()

		// Assert
		require.NoError(t, err)
		assert.Equal(t, entity.OrderProcessing, updated.Status)
	})

	t.Run("should swallow send errors", func(t *testing.T) {
		m := newOrderMocks(t)
		svc := m.service(t)
		order := &entity.Order{ID: 5, Email: "buyer@example.com", Status: entity.OrderProcessing}
		m.expectTransition(order, entity.OrderProcessing)
		m.sender.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(external.SendResult{}, errors.New("provider timeout")).Once()
		m.metrics.On("RecordNotification", "shipped", coreport.OutcomeFailure).Return()

		updated, err := svc.AdvanceStatus(ctx, 5, entity.OrderShipped)
		svc.Wait()

		require.NoError(t, err)
		assert.Equal(t, entity.OrderShipped, updated.Status)
		m.orders.AssertNotCalled(t, "MarkEventNotified", mock.Anything, mock.Anything, mock.Anything)
		m.logger.AssertCalled(t, "Warn", "Order email not sent", mock.Anything)
	})

	t.Run("should treat unsuccessful result like an error", func(t *testing.T) {
		m := newOrderMocks(t)
		svc := m.service(t)
		order := &entity.Order{ID: 5, Email: "buyer@example.com", Status: entity.OrderOutForDelivery}
		m.expectTransition(order, entity.OrderOutForDelivery)
		m.sender.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(external.SendResult{Success: false}, nil).Once()
		m.metrics.On("RecordNotification", "delivered", coreport.OutcomeFailure).Return()

		updated, err := svc.AdvanceStatus(ctx, 5, entity.OrderDelivered)
		svc.Wait()

		require.NoError(t, err)
		assert.Equal(t, entity.OrderDelivered, updated.Status)
	})

	t.Run("should return before the email is sent", func(t *testing.T) {
		m := newOrderMocks(t)
		svc := m.service(t)
		release := make(chan time.Time)
		order := &entity.Order{ID: 5, Email: "buyer@example.com", Status: entity.OrderPending}
		m.expectTransition(order, entity.OrderPending)
		m.sender.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			WaitUntil(release).
			Return(external.SendResult{Success: true}, nil).Once()
		m.orders.On("MarkEventNotified", mock.Anything, uint64(77), true).Return(nil).Once()
		m.metrics.On("RecordNotification", "processing", coreport.OutcomeSuccess).Return()

		updated, err := svc.AdvanceStatus(ctx, 5, entity.OrderProcessing)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderProcessing, updated.Status)
		close(release)
		svc.Wait()
	})

	t.Run("should still notify after the caller goes away", func(t *testing.T) {
		m := newOrderMocks(t)
		svc := m.service(t)
		svc.notifyTimeout = time.Minute
		reqCtx, cancel := context.WithCancel(context.Background())
		defer cancel()
		order := &entity.Order{ID: 5, Email: "buyer@example.com", Status: entity.OrderPending}
		m.expectTransition(order, entity.OrderPending)
		live := mock.MatchedBy(func(c context.Context) bool {
			_, hasDeadline := c.Deadline()
			return c.Err() == nil && hasDeadline
		})
		m.sender.On("Send", live, mock.Anything, mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { cancel() }).
			Return(external.SendResult{Success: true}, nil).Once()
		m.orders.On("MarkEventNotified", live, uint64(77), true).Return(nil).Once()
		m.metrics.On("RecordNotification", "processing", coreport.OutcomeSuccess).Return()

		_, err := svc.AdvanceStatus(reqCtx, 5, entity.OrderProcessing)
		svc.Wait()

		require.NoError(t, err)
		assert.Error(t, reqCtx.Err())
	})

	t.Run("should reject skipping a step without sending", func(t *testing.T) {
		m := newOrderMocks(t)
		order := &entity.Order{ID: 5, Status: entity.OrderPending}
		m.uow.On("Begin", mock.Anything).Return(m.txCtx, nil)
		m.orders.On("GetByID", m.txCtx, uint64(5)).Return(order, nil)
		m.uow.On("Rollback", m.txCtx).Return(nil)

		_, err := m.service(t).AdvanceStatus(ctx, 5, entity.OrderDelivered)

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		m.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should reject leaving delivered", func(t *testing.T) {
		m := newOrderMocks(t)
		order := &entity.Order{ID: 5, Status: entity.OrderDelivered}
		m.uow.On("Begin", mock.Anything).Return(m.txCtx, nil)
		m.orders.On("GetByID", m.txCtx, uint64(5)).Return(order, nil)
		m.uow.On("Rollback", m.txCtx).Return(nil)

		_, err := m.service(t).AdvanceStatus(ctx, 5, entity.OrderPending)

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("should fail for missing order", func(t *testing.T) {
		m := newOrderMocks(t)
		m.uow.On("Begin", mock.Anything).Return(m.txCtx, nil)
		m.orders.On("GetByID", m.txCtx, uint64(9)).Return(nil, errs.ErrOrderNotFound)
		m.uow.On("Rollback", m.txCtx).Return(nil)

		_, err := m.service(t).AdvanceStatus(ctx, 9, entity.OrderProcessing)

		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("should surface a lost race on the status update", func(t *testing.T) {
		m := newOrderMocks(t)
		order := &entity.Order{ID: 5, Status: entity.OrderPending}
		m.uow.On("Begin", mock.Anything).Return(m.txCtx, nil)
		m.orders.On("GetByID", m.txCtx, uint64(5)).Return(order, nil)
		m.orders.On("UpdateStatus", m.txCtx, order, entity.OrderPending).Return(errs.ErrInvalidTransition)
		m.uow.On("Rollback", m.txCtx).Return(nil)

		_, err := m.service(t).AdvanceStatus(ctx, 5, entity.OrderProcessing)

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestService_CreateAndGetOrder(t *testing.T) {
	ctx := context.Background()
	buyer := entity.Principal{UserID: 1, Email: "buyer@example.com"}

	t.Run("should create with principal email", func(t *testing.T) {
		m := newOrderMocks(t)
		m.orders.On("Create", ctx, mock.MatchedBy(func(o *entity.Order) bool {
			return o.Email == "buyer@example.com" && o.Status == entity.OrderPending
		})).Run(func(args mock.Arguments) { args.Get(1).(*entity.Order).ID = 3 }).Return(nil)

		order, err := m.service(t).CreateOrder(ctx, buyer, usecase.CreateOrderRequest{Total: 5000})

		require.NoError(t, err)
		assert.Equal(t, uint64(3), order.ID)
	})

	t.Run("should reject a token without email", func(t *testing.T) {
		m := newOrderMocks(t)

		_, err := m.service(t).CreateOrder(ctx, entity.Principal{UserID: 1}, usecase.CreateOrderRequest{Total: 5000})

		assert.ErrorIs(t, err, errs.ErrInvalidOrder)
		m.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should check referenced group", func(t *testing.T) {
		m := newOrderMocks(t)
		groupID := uint64(8)
		m.groups.On("GetByID", ctx, groupID).Return(nil, errs.ErrGroupNotFound)

		_, err := m.service(t).CreateOrder(ctx, buyer, usecase.CreateOrderRequest{GroupID: &groupID, Total: 5000})

		assert.ErrorIs(t, err, errs.ErrGroupNotFound)
	})

	t.Run("should hide other users' orders", func(t *testing.T) {
		m := newOrderMocks(t)
		m.orders.On("GetByID", ctx, uint64(3)).Return(&entity.Order{ID: 3, UserID: 2}, nil)

		_, err := m.service(t).GetOrder(ctx, buyer, 3)

		assert.ErrorIs(t, err, errs.ErrOrderNotFound)
	})

	t.Run("should return order with events", func(t *testing.T) {
		m := newOrderMocks(t)
		events := []*entity.OrderStatusEvent{{ID: 1, OrderID: 3, From: entity.OrderPending, To: entity.OrderProcessing, Notified: true}}
		m.orders.On("GetByID", ctx, uint64(3)).Return(&entity.Order{ID: 3, UserID: 1}, nil)
		m.orders.On("ListEvents", ctx, uint64(3)).Return(events, nil)

		details, err := m.service(t).GetOrder(ctx, buyer, 3)

		require.NoError(t, err)
		assert.Equal(t, events, details.Events)
	})
}

func TestTemplates_Render(t *testing.T) {
	templates, err := NewTemplates()
	require.NoError(t, err)

	t.Run("renders every reachable status", func(t *testing.T) {
		for _, status := range []entity.OrderStatus{entity.OrderProcessing, entity.OrderShipped, entity.OrderOutForDelivery, entity.OrderDelivered} {
			subject, html, err := templates.Render(&entity.Order{ID: 42, Status: status, Total: 100})
			require.NoError(t, err, status)
			assert.Contains(t, subject, "#42")
			assert.Contains(t, html, string(status))
		}
	})

	t.Run("pending has no template", func(t *testing.T) {
		_, _, err := templates.Render(&entity.Order{ID: 42, Status: entity.OrderPending})
		assert.Error(t, err)
	})
}
