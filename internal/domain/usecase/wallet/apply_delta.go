package wallet

import (
	"context"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
	errs "github.com/vyronamart/group-ledger/internal/domain/error"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
	"github.com/vyronamart/group-ledger/internal/domain/port/usecase"
)

// ApplyDelta applies a signed amount to the user's balance and appends a ledger
// row. Both writes share one unit of work: either both land or neither does.
func (s *Service) ApplyDelta(ctx context.Context, req usecase.ApplyDeltaRequest) (*usecase.ApplyDeltaResult, error) {
	txType, err := s.validator.ValidateDelta(req)
	if err != nil {
		s.metrics.RecordWalletDelta(req.Type, coreport.OutcomeRejected)
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		s.metrics.RecordWalletDelta(string(txType), coreport.OutcomeFailure)
		return nil, errs.NewPersistenceError("begin wallet transaction", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Warn("Failed to roll back wallet transaction", map[string]any{
				"user_id": req.UserID,
				"error":   rbErr.Error(),
			})
		}
	}()

	user, err := s.uow.GetUserRepository(txCtx).ApplyBalanceDelta(txCtx, req.UserID, req.Amount)
	if err != nil {
		s.recordDeltaFailure(req, txType, err)
		return nil, err
	}

	txn, err := entity.NewTransaction(user.ID, req.Amount, txType, req.Description, user.Balance, s.timeProvider)
	if err != nil {
		s.recordDeltaFailure(req, txType, err)
		return nil, err
	}

	if err := s.uow.GetTransactionRepository(txCtx).Create(txCtx, txn); err != nil {
		s.recordDeltaFailure(req, txType, err)
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		err = errs.NewPersistenceError("commit wallet transaction", err)
		s.recordDeltaFailure(req, txType, err)
		return nil, err
	}
	committed = true

	s.metrics.RecordWalletDelta(string(txType), coreport.OutcomeSuccess)
	s.logger.Info("Wallet delta applied", map[string]any{
		"user_id":        req.UserID,
		"amount":         req.Amount,
		"type":           string(txType),
		"transaction_id": txn.ID,
		"new_balance":    user.Balance,
	})

	return &usecase.ApplyDeltaResult{
		Balance:     user.Balance,
		Transaction: txn,
	}, nil
}

func (s *Service) recordDeltaFailure(req usecase.ApplyDeltaRequest, txType entity.TransactionType, err error) {
	fields := errs.Fields(err)
	fields["user_id"] = req.UserID
	fields["amount"] = req.Amount
	fields["type"] = string(txType)

	switch {
	case errs.IsInsufficientBalanceError(err), errs.IsNotFoundError(err):
		s.metrics.RecordWalletDelta(string(txType), coreport.OutcomeRejected)
		s.logger.Warn("Wallet delta rejected", fields)
	default:
		s.metrics.RecordWalletDelta(string(txType), coreport.OutcomeFailure)
		s.logger.Error("Wallet delta failed", fields)
	}
}
