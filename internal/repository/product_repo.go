package repository

import (
	"context"

	"orderdesk/internal/model"

	"gorm.io/gorm"
)

// ProductRepository is the read-only product lookup used for display names,
// default line pricing, and the quick-create picker.
type ProductRepository interface {
	FindByID(ctx context.Context, productID int64) (*model.Product, error)
	// Search matches product names for the quick-create select widget.
	Search(ctx context.Context, q string, limit int) ([]model.Product, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) FindByID(ctx context.Context, productID int64) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, "productid = ?", productID).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) Search(ctx context.Context, q string, limit int) ([]model.Product, error) {
	products := make([]model.Product, 0)
	query := r.db.WithContext(ctx).Model(&model.Product{})
	if q != "" {
		query = query.Where("name LIKE ?", "%"+q+"%")
	}
	err := query.Order("name ASC").Limit(limit).Find(&products).Error
	return products, err
}
