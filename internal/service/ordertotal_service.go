package service

import (
	"context"

	"orderdesk/internal/repository"

	"gorm.io/gorm"
)

// OrderTotalService is the sole place that computes and persists an order's
// aggregate total. The operation is stateless and idempotent: it reads the
// order's line items, sums discount_price with an int64 accumulator (minor
// units — money never touches floating point), and rewrites orders.total.
// An order with zero line items gets total 0 persisted, not left unchanged.
type OrderTotalService interface {
	RecomputeTotal(ctx context.Context, orderID int64) (int64, error)
	// RecomputeTotalTx is the transactional variant used by mutations that
	// reconcile inside their own transaction.
	RecomputeTotalTx(ctx context.Context, tx *gorm.DB, orderID int64) (int64, error)
}

type orderTotalService struct {
	items  repository.OrderInfoRepository
	orders repository.OrderRepository
}

func NewOrderTotalService(items repository.OrderInfoRepository, orders repository.OrderRepository) OrderTotalService {
	return &orderTotalService{items: items, orders: orders}
}

func (s *orderTotalService) RecomputeTotal(ctx context.Context, orderID int64) (int64, error) {
	var total int64
	err := runTx(ctx, s.orders.DB(), func(tx *gorm.DB) error {
		var txErr error
		total, txErr = s.RecomputeTotalTx(ctx, tx, orderID)
		return txErr
	})
	return total, err
}

func (s *orderTotalService) RecomputeTotalTx(ctx context.Context, tx *gorm.DB, orderID int64) (int64, error) {
	if _, err := s.orders.FindByID(ctx, orderID); err != nil {
		return 0, ErrOrderNotFound
	}

	items, err := s.items.ListByOrder(ctx, tx, orderID)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, li := range items {
		total += li.DiscountPrice
	}

	if err := s.orders.UpdateTotal(ctx, tx, orderID, total); err != nil {
		return 0, err
	}
	return total, nil
}
