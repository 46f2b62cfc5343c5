package service_test

import (
	"context"
	"testing"

	"orderdesk/internal/model"
	"orderdesk/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTotalSvc() (service.OrderTotalService, *stubOrderInfoRepo, *stubOrderRepo) {
	itemRepo := newStubOrderInfoRepo(nil)
	orderRepo := newStubOrderRepo()
	return service.NewOrderTotalService(itemRepo, orderRepo), itemRepo, orderRepo
}

func TestRecomputeTotal_ZeroItems(t *testing.T) {
	svc, _, orderRepo := buildTotalSvc()
	order := seedOrder(orderRepo, 1, 10)
	order.Total = 7777 // stale value to prove the zero is written, not skipped

	total, err := svc.RecomputeTotal(context.Background(), order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Equal(t, int64(0), order.Total)
	assert.Equal(t, 1, orderRepo.updateTotalCalls)
}

func TestRecomputeTotal_Idempotent(t *testing.T) {
	svc, itemRepo, orderRepo := buildTotalSvc()
	order := seedOrder(orderRepo, 1, 10)
	require.NoError(t, itemRepo.Create(context.Background(), nil,
		&model.OrderInfo{OrderID: order.OrderID, ProductID: 1, TotalNum: 2, DiscountPrice: 4200}))

	first, err := svc.RecomputeTotal(context.Background(), order.OrderID)
	require.NoError(t, err)
	second, err := svc.RecomputeTotal(context.Background(), order.OrderID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(4200), order.Total)
}

func TestRecomputeTotal_IntegerExactness(t *testing.T) {
	svc, itemRepo, orderRepo := buildTotalSvc()
	order := seedOrder(orderRepo, 1, 10)
	for _, price := range []int64{12550, 7499, 100} {
		require.NoError(t, itemRepo.Create(context.Background(), nil,
			&model.OrderInfo{OrderID: order.OrderID, ProductID: 1, TotalNum: 1, DiscountPrice: price}))
	}

	// Summation is pure int64 — repeating it must never drift.
	for i := 0; i < 100; i++ {
		total, err := svc.RecomputeTotal(context.Background(), order.OrderID)
		require.NoError(t, err)
		assert.Equal(t, int64(20149), total)
	}
	assert.Equal(t, int64(20149), order.Total)
}

func TestRecomputeTotal_OrderMissing(t *testing.T) {
	svc, _, orderRepo := buildTotalSvc()

	_, err := svc.RecomputeTotal(context.Background(), 42)
	assert.ErrorIs(t, err, service.ErrOrderNotFound)
	assert.Equal(t, 0, orderRepo.updateTotalCalls)
}
