package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	// Public reference shown to users, decoupled from the row id.
	Code string `gorm:"uniqueIndex;not null" json:"code"`

	TotalAmount float64     `gorm:"not null" json:"totalAmount"`
	Status      OrderStatus `gorm:"not null;default:PENDING" json:"status"`
	Method      OrderMethod `gorm:"not null" json:"method"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `json:"-"`

	VendorID uint   `gorm:"not null;index" json:"vendorId"`
	Vendor   Vendor `json:"-"`

	Items []OrderItem `json:"-"`
}
