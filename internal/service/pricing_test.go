package service_test

import (
	"context"
	"testing"

	"orderdesk/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitPricePricer_MultipliesUnitPrice(t *testing.T) {
	productRepo := newStubProductRepo()
	p := productRepo.add("Espresso Beans 1kg", 2599)
	pricer := service.NewUnitPricePricer(productRepo)

	total, err := pricer.QuoteLineTotal(context.Background(), p.ProductID, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(7797), total)
}

func TestUnitPricePricer_ProductMissing(t *testing.T) {
	pricer := service.NewUnitPricePricer(newStubProductRepo())

	_, err := pricer.QuoteLineTotal(context.Background(), 404, 1)
	assert.ErrorIs(t, err, service.ErrProductNotFound)
}
