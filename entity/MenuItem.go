package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name             string  `gorm:"not null" json:"name"`
	ShortDescription string  `json:"shortDescription"`
	Price            float64 `gorm:"not null" json:"price"`
	IsAvailable      bool    `gorm:"default:true" json:"isAvailable"`
	IsVegetarian     bool    `gorm:"default:false" json:"isVegetarian"`

	// Customization choices (sizes, toppings, ...) as an opaque JSON blob.
	Options datatypes.JSON `json:"options"`

	AvgRating float64 `gorm:"default:0" json:"avgRating"`

	VendorID uint   `gorm:"not null;index" json:"vendorId"`
	Vendor   Vendor `json:"-"`

	OrderItems []OrderItem `json:"-"`
	Reviews    []Review    `json:"-"`
}
