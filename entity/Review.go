package entity

import (
	"gorm.io/gorm"
)

// Review targets a vendor, a menu item, or both. The check constraint keeps
// a review from floating free of any target.
type Review struct {
	gorm.Model
	Rating  int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment string `json:"comment"`

	UserID uint `gorm:"not null" json:"userId"`
	User   User `json:"-"`

	VendorID *uint   `gorm:"check:chk_review_target,vendor_id IS NOT NULL OR menu_item_id IS NOT NULL" json:"vendorId"`
	Vendor   *Vendor `json:"-"`

	MenuItemID *uint     `json:"menuItemId"`
	MenuItem   *MenuItem `json:"-"`
}
