package repository

import (
	"context"

	"orderdesk/internal/model"

	"gorm.io/gorm"
)

// OrderInfoRepository defines the data access contract for line items.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory stubs.
//
// Methods that take a tx parameter run against that transaction when it is
// non-nil; a nil tx falls back to the repository's own connection (unit test
// mode, mirroring how services run without a real DB).
type OrderInfoRepository interface {
	Create(ctx context.Context, tx *gorm.DB, li *model.OrderInfo) error
	FindByID(ctx context.Context, id int64) (*model.OrderInfo, error)
	Update(ctx context.Context, tx *gorm.DB, li *model.OrderInfo) error
	Delete(ctx context.Context, tx *gorm.DB, id int64) error
	// ListByOrder returns the order's line items with Product preloaded,
	// in insertion order. An order with no items yields an empty slice.
	ListByOrder(ctx context.Context, tx *gorm.DB, orderID int64) ([]model.OrderInfo, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type orderInfoRepo struct{ db *gorm.DB }

func NewOrderInfoRepository(db *gorm.DB) OrderInfoRepository { return &orderInfoRepo{db: db} }

func (r *orderInfoRepo) DB() *gorm.DB { return r.db }

func (r *orderInfoRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *orderInfoRepo) Create(ctx context.Context, tx *gorm.DB, li *model.OrderInfo) error {
	return r.conn(tx).WithContext(ctx).Create(li).Error
}

func (r *orderInfoRepo) FindByID(ctx context.Context, id int64) (*model.OrderInfo, error) {
	var li model.OrderInfo
	err := r.db.WithContext(ctx).First(&li, id).Error
	if err != nil {
		return nil, err
	}
	return &li, nil
}

func (r *orderInfoRepo) Update(ctx context.Context, tx *gorm.DB, li *model.OrderInfo) error {
	return r.conn(tx).WithContext(ctx).Save(li).Error
}

func (r *orderInfoRepo) Delete(ctx context.Context, tx *gorm.DB, id int64) error {
	return r.conn(tx).WithContext(ctx).Delete(&model.OrderInfo{}, id).Error
}

func (r *orderInfoRepo) ListByOrder(ctx context.Context, tx *gorm.DB, orderID int64) ([]model.OrderInfo, error) {
	items := make([]model.OrderInfo, 0)
	err := r.conn(tx).WithContext(ctx).
		Preload("Product").
		Where("orderid = ?", orderID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}
