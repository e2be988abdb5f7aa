package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:student" json:"role"`

	// Relations — preload only when needed
	Profile     *Profile `gorm:"foreignKey:UserID" json:"-"`
	VendorOwned *Vendor  `gorm:"foreignKey:UserID" json:"-"`
	Orders      []Order  `json:"-"`
	Reviews     []Review `json:"-"`
}
