package service

import (
	"context"

	"orderdesk/internal/repository"
)

// Pricer derives the default line price when the client omits
// discount_price on create. It is a strategy interface so deployments with
// promotion or tiered-pricing rules can swap in their own implementation.
type Pricer interface {
	// QuoteLineTotal returns the full line price in minor units for
	// totalNum units of the given product.
	QuoteLineTotal(ctx context.Context, productID int64, totalNum int) (int64, error)
}

// unitPricePricer is the default strategy: product unit price × quantity,
// no discount applied.
type unitPricePricer struct {
	products repository.ProductRepository
}

func NewUnitPricePricer(products repository.ProductRepository) Pricer {
	return &unitPricePricer{products: products}
}

func (p *unitPricePricer) QuoteLineTotal(ctx context.Context, productID int64, totalNum int) (int64, error) {
	product, err := p.products.FindByID(ctx, productID)
	if err != nil {
		return 0, ErrProductNotFound
	}
	return product.Price * int64(totalNum), nil
}
