package repository

import (
	"context"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
	errs "github.com/vyronamart/group-ledger/internal/domain/error"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CartRepository implements CartRepository interface using GORM
type CartRepository struct {
	db     *gorm.DB
	logger coreport.Logger
	errors dbErrorHandler
}

// NewCartRepository creates a new CartRepository instance
func NewCartRepository(db *gorm.DB, logger coreport.Logger) *CartRepository {
	return &CartRepository{
		db:     db,
		logger: logger,
		errors: dbErrorHandler{
			logger:     logger,
			classifier: NewErrorClassifier(),
			notFound:   errs.ErrGroupNotFound,
		},
	}
}

// Add inserts a cart line
func (r *CartRepository) Add(ctx context.Context, item *entity.CartItem) error {
	row := model.CartItem{
		GroupID:   item.GroupID,
		UserID:    item.UserID,
		ProductID: item.ProductID,
		Name:      item.Name,
		Price:     item.Price,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Omit("Group").Create(&row).Error; err != nil {
		return r.errors.handle("adding cart item", err, map[string]any{
			"group_id": item.GroupID,
			"user_id":  item.UserID,
		})
	}
	item.ID = row.ID
	return nil
}

// Aggregate computes the cart total with a single SUM over price * quantity
func (r *CartRepository) Aggregate(ctx context.Context, groupID uint64) (entity.AggregateCart, error) {
	var totals model.CartTotals
	err := r.db.WithContext(ctx).Model(&model.CartItem{}).
		Select("COALESCE(SUM(price * quantity), 0) AS total, COUNT(*) AS item_count, COALESCE(SUM(quantity), 0) AS quantity").
		Where("group_id = ?", groupID).
		Scan(&totals).Error
	if err != nil {
		return entity.AggregateCart{}, r.errors.handle("aggregating cart", err, map[string]any{"group_id": groupID})
	}

	return entity.AggregateCart{
		GroupID:   groupID,
		Total:     totals.Total,
		ItemCount: totals.ItemCount,
		Quantity:  totals.Quantity,
	}, nil
}

// ListByGroup returns the group's cart lines oldest first
func (r *CartRepository) ListByGroup(ctx context.Context, groupID uint64) ([]*entity.CartItem, error) {
	var rows []model.CartItem
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, r.errors.handle("listing cart items", err, map[string]any{"group_id": groupID})
	}

	items := make([]*entity.CartItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &entity.CartItem{
			ID:        row.ID,
			GroupID:   row.GroupID,
			UserID:    row.UserID,
			ProductID: row.ProductID,
			Name:      row.Name,
			Price:     row.Price,
			Quantity:  row.Quantity,
			CreatedAt: row.CreatedAt,
		})
	}
	return items, nil
}
