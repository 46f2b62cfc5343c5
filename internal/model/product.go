package model

import "time"

// Product is a read-only reference entity: this service looks up names for
// display and unit prices for default line pricing, nothing more.
// Price is the unit price in minor currency units.
type Product struct {
	ProductID int64   `gorm:"column:productid;primaryKey;autoIncrement"`
	Name      string  `gorm:"index;not null"`
	Price     int64   `gorm:"not null"`
	Desc      *string `gorm:"column:desc"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Product) TableName() string { return "products" }
