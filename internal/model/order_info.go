package model

import "time"

// OrderInfo is one line item: a product, a quantity, and the line's total
// price after discount. DiscountPrice is the whole line's price in minor
// currency units, not a unit price. When the client omits it on create, the
// pricing strategy derives it from the product's unit price and TotalNum.
type OrderInfo struct {
	ID            int64   `gorm:"primaryKey;autoIncrement"`
	OrderID       int64   `gorm:"column:orderid;index;not null"`
	ProductID     int64   `gorm:"column:productid;not null"`
	Desc          *string `gorm:"column:desc"`
	TotalNum      int     `gorm:"not null"`
	DiscountPrice int64   `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Product *Product `gorm:"foreignKey:ProductID;references:ProductID"`
}

func (OrderInfo) TableName() string { return "order_infos" }
