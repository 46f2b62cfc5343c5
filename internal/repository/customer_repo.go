package repository

import (
	"context"

	"orderdesk/internal/model"

	"gorm.io/gorm"
)

// CustomerRepository is the read-only customer lookup for the order-edit page.
type CustomerRepository interface {
	FindByID(ctx context.Context, customerID int64) (*model.Customer, error)
}

type customerRepo struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) CustomerRepository { return &customerRepo{db: db} }

func (r *customerRepo) FindByID(ctx context.Context, customerID int64) (*model.Customer, error) {
	var cust model.Customer
	err := r.db.WithContext(ctx).First(&cust, "customerid = ?", customerID).Error
	if err != nil {
		return nil, err
	}
	return &cust, nil
}
