package model

import "time"

// Customer holds the contact details shown on the order-edit page.
// Read-only here; customer management lives elsewhere.
type Customer struct {
	CustomerID int64  `gorm:"column:customerid;primaryKey;autoIncrement"`
	Name       string `gorm:"not null"`
	Phone      string
	Address    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Customer) TableName() string { return "customers" }
