package wallet

import (
	"context"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
	errs "github.com/vyronamart/group-ledger/internal/domain/error"
	"github.com/vyronamart/group-ledger/internal/domain/port/usecase"
)

const openingBalanceDescription = "opening balance"

// CreateUser provisions a wallet. A positive opening balance is applied as a
// topup so the ledger always sums to the stored balance.
func (s *Service) CreateUser(ctx context.Context, req usecase.CreateUserRequest) (*entity.User, error) {
	user, err := entity.NewUser(req.ID, req.Email, req.Name, req.InitialBalance, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := s.validator.validateAmount(req.InitialBalance); err != nil {
		return nil, err
	}

	opening := user.Balance
	user.Balance = 0

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, errs.NewPersistenceError("begin create user", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = s.uow.Rollback(txCtx)
		}
	}()

	if err := s.uow.GetUserRepository(txCtx).Create(txCtx, user); err != nil {
		return nil, err
	}

	if opening > 0 {
		updated, err := s.uow.GetUserRepository(txCtx).ApplyBalanceDelta(txCtx, user.ID, opening)
		if err != nil {
			return nil, err
		}
		txn, err := entity.NewTransaction(user.ID, opening, entity.TypeTopUp, openingBalanceDescription, updated.Balance, s.timeProvider)
		if err != nil {
			return nil, err
		}
		if err := s.uow.GetTransactionRepository(txCtx).Create(txCtx, txn); err != nil {
			return nil, err
		}
		user.Balance = updated.Balance
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, errs.NewPersistenceError("commit create user", err)
	}
	committed = true

	s.logger.Info("User created", map[string]any{
		"user_id": user.ID,
		"balance": user.Balance,
	})
	return user, nil
}
