package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateLineItemRequest is the quick-create payload: pick a product, set a
// quantity, optionally override the computed line price.
type CreateLineItemRequest struct {
	ProductID int64 `json:"productid" validate:"required"`
	TotalNum  int   `json:"total_num" validate:"required"`
	// DiscountPrice is the full line price in minor units. Leave empty to
	// have it derived from the product's unit price.
	DiscountPrice *int64  `json:"discount_price"`
	Desc          *string `json:"desc"`
}

// UpdateLineItemRequest is a partial inline edit: only the fields present
// are applied.
type UpdateLineItemRequest struct {
	TotalNum      *int    `json:"total_num"`
	DiscountPrice *int64  `json:"discount_price"`
	Desc          *string `json:"desc"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// LineItemRow is one grid row: line item joined with the product name.
// DiscountPriceDisplay is the major-unit rendering (minor units / 100) the
// grid shows next to the raw value.
type LineItemRow struct {
	ID                   int64           `json:"id"`
	ProductName          string          `json:"product_name"`
	TotalNum             int             `json:"total_num"`
	DiscountPrice        int64           `json:"discount_price"`
	DiscountPriceDisplay decimal.Decimal `json:"discount_price_display"`
	CreatedAt            string          `json:"created_at"`
	UpdatedAt            string          `json:"updated_at"`
}

// LineItemResponse is the detail view: raw persisted fields.
type LineItemResponse struct {
	ID            int64   `json:"id"`
	OrderID       int64   `json:"orderid"`
	ProductID     int64   `json:"productid"`
	Desc          *string `json:"desc,omitempty"`
	TotalNum      int     `json:"total_num"`
	DiscountPrice int64   `json:"discount_price"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}
