package model

import "time"

// Order is the parent aggregate. Rows are created by the storefront, never
// here — this service only reads orders and rewrites their total.
// Total is the sum of DiscountPrice over the order's line items, in minor
// currency units (cents).
type Order struct {
	OrderID    int64 `gorm:"column:orderid;primaryKey;autoIncrement"`
	CustomerID int64 `gorm:"column:customerid;index;not null"`
	Total      int64 `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Items []OrderInfo `gorm:"foreignKey:OrderID;references:OrderID"`
}

func (Order) TableName() string { return "orders" }
