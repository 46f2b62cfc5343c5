package dto

import "github.com/shopspring/decimal"

// CustomerInfo carries the contact block of the order-edit page. When the
// customer row is missing every field holds the literal placeholder
// "unknown" — the page renders the placeholder instead of failing.
type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// EditPageProduct is one row of the order-edit product list: line item
// fields joined with the product's display name.
type EditPageProduct struct {
	Name          string  `json:"name"`
	ProductID     int64   `json:"productid"`
	Desc          *string `json:"desc,omitempty"`
	TotalNum      int     `json:"total_num"`
	DiscountPrice int64   `json:"discount_price"`
}

// EditOrderPageResponse is the full composition payload for the
// customer-facing order-edit page.
type EditOrderPageResponse struct {
	OrderID      int64             `json:"orderid"`
	CustomerID   int64             `json:"customerid"`
	CustomerInfo CustomerInfo      `json:"customer_info"`
	ProductList  []EditPageProduct `json:"product_list"`
}

// RecomputeTotalResponse reports the persisted order total after an explicit
// reconciliation.
type RecomputeTotalResponse struct {
	OrderID      int64           `json:"orderid"`
	Total        int64           `json:"total"`
	TotalDisplay decimal.Decimal `json:"total_display"`
}
