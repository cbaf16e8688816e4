package repository

import (
	"context"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
	errs "github.com/vyronamart/group-ledger/internal/domain/error"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// getOperationType returns "credit" for positive or zero changes and "debit" for negative changes
func getOperationType(balanceChange int64) string {
	if balanceChange >= 0 {
		return "credit"
	}
	return "debit"
}

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errors       dbErrorHandler
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		errors: dbErrorHandler{
			logger:     logger,
			classifier: NewErrorClassifier(),
			notFound:   errs.ErrUserNotFound,
			duplicate:  errs.ErrDuplicateUser,
		},
	}
}

func userModelToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		Balance:      m.Balance,
		RewardPoints: m.RewardPoints,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	r.logger.Debug("Getting user by ID", map[string]any{
		"user_id": id,
	})

	var userModel model.User
	if err := r.db.WithContext(ctx).First(&userModel, id).Error; err != nil {
		return nil, r.errors.handle("getting user", err, map[string]any{"user_id": id})
	}

	return userModelToEntity(&userModel), nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Creating new user", map[string]any{
		"user_id": user.ID,
		"balance": user.Balance,
	})

	userModel := model.User{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Balance:      user.Balance,
		RewardPoints: user.RewardPoints,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return r.errors.handle("creating user", err, map[string]any{"user_id": user.ID})
	}

	r.logger.Info("User created successfully", map[string]any{
		"user_id": user.ID,
	})
	return nil
}

// ApplyBalanceDelta adds delta to the balance in one guarded UPDATE. The
// WHERE clause only matches while the result stays non-negative, so two
// racing debits cannot both pass.
func (r *UserRepository) ApplyBalanceDelta(ctx context.Context, id uint64, delta int64) (*entity.User, error) {
	fields := map[string]any{
		"user_id":        id,
		"balance_change": delta,
		"operation_type": getOperationType(delta),
	}
	r.logger.Debug("Applying balance delta", fields)

	db := r.db.WithContext(ctx)
	result := db.Model(&model.User{}).
		Where("id = ? AND balance + ? >= 0", id, delta).
		Updates(map[string]any{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return nil, r.errors.handle("applying balance delta", result.Error, fields)
	}

	var userModel model.User
	if err := db.First(&userModel, id).Error; err != nil {
		return nil, r.errors.handle("reading balance", err, fields)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Insufficient balance for delta", map[string]any{
			"user_id":          id,
			"current_balance":  userModel.Balance,
			"requested_change": delta,
		})
		return nil, errs.NewInsufficientBalanceError(id, delta, userModel.Balance)
	}

	r.logger.Debug("Balance delta applied", map[string]any{
		"user_id":     id,
		"new_balance": userModel.Balance,
	})
	return userModelToEntity(&userModel), nil
}
