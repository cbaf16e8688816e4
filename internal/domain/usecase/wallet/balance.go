package wallet

import (
	"context"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
	errs "github.com/vyronamart/group-ledger/internal/domain/error"
)

// GetBalance returns the stored balance
func (s *Service) GetBalance(ctx context.Context, userID uint64) (*entity.BalanceResponse, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	user, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := entity.UserToBalanceResponse(user)
	s.logger.Debug("User balance retrieved", map[string]any{
		"user_id": userID,
		"balance": user.Balance,
	})
	return &response, nil
}

// ListTransactions returns the user's ledger newest first
func (s *Service) ListTransactions(ctx context.Context, userID uint64, limit, offset int) ([]*entity.Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	if _, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID); err != nil {
		return nil, err
	}

	limit, offset = s.validator.NormalizePage(limit, offset)
	return s.uow.GetTransactionRepository(ctx).ListByUserID(ctx, userID, limit, offset)
}

// Reconcile compares the stored balance with the sum of the user's ledger.
// It only reports; drift is never corrected automatically.
func (s *Service) Reconcile(ctx context.Context, userID uint64) (*entity.ReconcileReport, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	user, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	sum, count, err := s.uow.GetTransactionRepository(ctx).SumByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	report := entity.NewReconcileReport(userID, user.Balance, sum, count)
	if !report.Consistent {
		s.logger.Warn("Ledger drift detected", map[string]any{
			"user_id":        userID,
			"stored_balance": report.StoredBalance,
			"ledger_sum":     report.LedgerSum,
			"drift":          report.Drift,
		})
	}
	return &report, nil
}
