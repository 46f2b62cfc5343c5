package repository

import (
	"context"

	"orderdesk/internal/model"

	"gorm.io/gorm"
)

// OrderRepository reads orders and rewrites their persisted total.
// Orders are never created or deleted through this service.
type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (*model.Order, error)
	// UpdateTotal persists the reconciled total (minor units) for an order.
	UpdateTotal(ctx context.Context, tx *gorm.DB, orderID int64, total int64) error
	// ListIDs pages through all order identifiers (sweep cron).
	ListIDs(ctx context.Context, offset, limit int) ([]int64, error)

	DB() *gorm.DB
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) DB() *gorm.DB { return r.db }

func (r *orderRepo) FindByID(ctx context.Context, orderID int64) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).First(&o, "orderid = ?", orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) UpdateTotal(ctx context.Context, tx *gorm.DB, orderID int64, total int64) error {
	conn := r.db
	if tx != nil {
		conn = tx
	}
	return conn.WithContext(ctx).Model(&model.Order{}).
		Where("orderid = ?", orderID).
		Update("total", total).Error
}

func (r *orderRepo) ListIDs(ctx context.Context, offset, limit int) ([]int64, error) {
	ids := make([]int64, 0, limit)
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Order("orderid ASC").
		Offset(offset).Limit(limit).
		Pluck("orderid", &ids).Error
	return ids, err
}
