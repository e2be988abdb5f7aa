package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity int `gorm:"not null" json:"quantity"`
	// UnitPrice is the menu item's price at order time; later price edits on
	// the menu never touch it.
	UnitPrice     float64 `gorm:"not null" json:"unitPrice"`
	Customization string  `json:"customization"`

	OrderID uint  `gorm:"not null;index" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}

// LineTotal is UnitPrice × Quantity.
func (oi *OrderItem) LineTotal() float64 {
	return oi.UnitPrice * float64(oi.Quantity)
}
