package order

import (
	"context"
	"fmt"
	"time"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
	errs "github.com/vyronamart/group-ledger/internal/domain/error"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
)

// DefaultNotifyTimeout bounds one status email send and its bookkeeping
const DefaultNotifyTimeout = 15 * time.Second

// AdvanceStatus moves an order one step along its lifecycle, then sends one
// status email in the background. The email is best-effort: a failed send is
// logged and counted but never undoes the transition.
func (s *Service) AdvanceStatus(ctx context.Context, orderID uint64, target entity.OrderStatus) (*entity.Order, error) {
	if orderID == 0 {
		return nil, fmt.Errorf("%w: order ID must be positive", errs.ErrInvalidOrder)
	}

	order, event, err := s.transition(ctx, orderID, target)
	if err != nil {
		if errs.IsValidationError(err) || errs.IsNotFoundError(err) {
			s.logger.Warn("Order transition rejected", map[string]any{
				"order_id": orderID,
				"target":   string(target),
				"error":    err.Error(),
			})
		} else {
			s.logger.Error("Order transition failed", errs.Fields(err))
		}
		return nil, err
	}

	s.logger.Info("Order status advanced", map[string]any{
		"order_id": order.ID,
		"from":     string(event.From),
		"to":       string(event.To),
	})

	s.dispatch(ctx, *order, *event)
	return order, nil
}

// dispatch sends the status email off the request path. The send outlives the
// caller's cancellation but not notifyTimeout.
func (s *Service) dispatch(ctx context.Context, order entity.Order, event entity.OrderStatusEvent) {
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		defer cancel()

		if !s.notify(notifyCtx, &order) {
			return
		}
		if err := s.uow.GetOrderRepository(notifyCtx).MarkEventNotified(notifyCtx, event.ID, true); err != nil {
			s.logger.Warn("Failed to record notification outcome", map[string]any{
				"order_id": order.ID,
				"event_id": event.ID,
				"error":    err.Error(),
			})
		}
	}()
}

// Wait blocks until every in-flight status email has finished
func (s *Service) Wait() {
	s.pending.Wait()
}

// transition persists the new status and its event in one unit of work
func (s *Service) transition(ctx context.Context, orderID uint64, target entity.OrderStatus) (*entity.Order, *entity.OrderStatusEvent, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, nil, errs.NewPersistenceError("begin order transition", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = s.uow.Rollback(txCtx)
		}
	}()

	repo := s.uow.GetOrderRepository(txCtx)
	order, err := repo.GetByID(txCtx, orderID)
	if err != nil {
		return nil, nil, err
	}

	from := order.Status
	event, err := order.Advance(target, s.timeProvider)
	if err != nil {
		return nil, nil, err
	}

	if err := repo.UpdateStatus(txCtx, order, from); err != nil {
		return nil, nil, err
	}
	if err := repo.AddEvent(txCtx, event); err != nil {
		return nil, nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, nil, errs.NewPersistenceError("commit order transition", err)
	}
	committed = true
	return order, event, nil
}

// notify renders and sends the status email and reports whether it was accepted
func (s *Service) notify(ctx context.Context, order *entity.Order) bool {
	status := string(order.Status)

	subject, html, err := s.templates.Render(order)
	if err != nil {
		s.metrics.RecordNotification(status, coreport.OutcomeFailure)
		s.logger.Error("Failed to render order email", map[string]any{
			"order_id": order.ID,
			"status":   status,
			"error":    err.Error(),
		})
		return false
	}

	result, err := s.sender.Send(ctx, order.Email, subject, html)
	if err != nil || !result.Success {
		fields := map[string]any{
			"order_id": order.ID,
			"status":   status,
			"to":       order.Email,
		}
		if err != nil {
			fields["error"] = err.Error()
		}
		s.metrics.RecordNotification(status, coreport.OutcomeFailure)
		s.logger.Warn("Order email not sent", fields)
		return false
	}

	s.metrics.RecordNotification(status, coreport.OutcomeSuccess)
	s.logger.Debug("Order email sent", map[string]any{
		"order_id":   order.ID,
		"status":     status,
		"message_id": result.MessageID,
	})
	return true
}
