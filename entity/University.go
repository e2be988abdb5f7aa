package entity

import (
	"gorm.io/gorm"
)

type University struct {
	gorm.Model
	Name    string  `gorm:"uniqueIndex;not null" json:"name"`
	Domain  *string `gorm:"uniqueIndex" json:"domain"` // email domain, e.g. "iitd.ac.in"; null = no auto-match
	Address string  `json:"address"`
	Logo    string  `json:"logo"`

	Profiles []Profile `json:"-"`
	Vendors  []Vendor  `json:"-"`
}
