package repository

import (
	"context"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
	errs "github.com/vyronamart/group-ledger/internal/domain/error"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
	errors dbErrorHandler
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
		errors: dbErrorHandler{
			logger:     logger,
			classifier: NewErrorClassifier(),
			notFound:   errs.ErrUserNotFound,
		},
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		UserID:       transaction.UserID,
		Amount:       transaction.Amount,
		Type:         string(transaction.Type),
		Description:  transaction.Description,
		BalanceAfter: transaction.BalanceAfter,
		CreatedAt:    transaction.CreatedAt,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:           m.ID,
		UserID:       m.UserID,
		Amount:       m.Amount,
		Type:         entity.TransactionType(m.Type),
		Description:  m.Description,
		BalanceAfter: m.BalanceAfter,
		CreatedAt:    m.CreatedAt,
	}
}

// Create appends a ledger row
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := r.entityToModel(transaction)

	if err := r.db.WithContext(ctx).Omit("User").Create(&transactionModel).Error; err != nil {
		return r.errors.handle("creating transaction", err, map[string]any{
			"user_id": transaction.UserID,
			"amount":  transaction.Amount,
		})
	}
	transaction.ID = transactionModel.ID

	r.logger.Debug("Transaction created successfully", map[string]any{
		"transaction_id": transaction.ID,
		"user_id":        transaction.UserID,
	})
	return nil
}

// ListByUserID returns a user's ledger newest first
func (r *TransactionRepository) ListByUserID(ctx context.Context, userID uint64, limit, offset int) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []model.Transaction
	if err := query.Find(&rows).Error; err != nil {
		return nil, r.errors.handle("listing transactions", err, map[string]any{"user_id": userID})
	}

	transactions := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		transactions = append(transactions, r.modelToEntity(&rows[i]))
	}
	return transactions, nil
}

// SumByUserID totals a user's ledger in one aggregate query
func (r *TransactionRepository) SumByUserID(ctx context.Context, userID uint64) (int64, int64, error) {
	var totals struct {
		Sum   int64
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS sum, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Scan(&totals).Error
	if err != nil {
		return 0, 0, r.errors.handle("summing transactions", err, map[string]any{"user_id": userID})
	}
	return totals.Sum, totals.Count, nil
}
