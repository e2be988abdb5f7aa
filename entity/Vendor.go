package entity

import (
	"time"

	"gorm.io/gorm"
)

// Crowd status labels derived from the load counters.
const (
	CrowdNotAvailable      = "Not Available"
	CrowdVeryCrowded       = "Very Crowded"
	CrowdModeratelyCrowded = "Moderately Crowded"
	CrowdNotCrowded        = "Not Crowded"
)

type Vendor struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Logo        string `json:"logo"`

	// "HH:MM" 24h local time. Hours spanning midnight are not supported.
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`

	ServiceType  string `json:"serviceType"`  // "restaurant", "stall", ...
	DietaryFocus string `json:"dietaryFocus"` // "veg", "non-veg", "mixed"

	PickupAvailable   bool `gorm:"default:true" json:"pickupAvailable"`
	DeliveryAvailable bool `gorm:"default:false" json:"deliveryAvailable"`

	// Live load accounting: CurrentOrders goes up by one when an order is
	// placed and down by one when that order first turns terminal.
	CurrentOrders int `gorm:"not null;default:0" json:"currentOrders"`
	MaxOrders     int `gorm:"not null;default:0" json:"maxOrders"`

	AvgRating float64 `gorm:"default:0" json:"avgRating"`

	UniversityID uint       `gorm:"not null" json:"universityId"`
	University   University `json:"-"`

	// Operator account, at most one per vendor.
	UserID *uint `gorm:"uniqueIndex" json:"userId"`
	User   *User `json:"-"`

	MenuItems []MenuItem `json:"-"`
	Orders    []Order    `json:"-"`
	Reviews   []Review   `json:"-"`
}

// CrowdStatus buckets the current load into a three-tier label.
func (v *Vendor) CrowdStatus() string {
	if v.MaxOrders <= 0 {
		return CrowdNotAvailable
	}
	ratio := float64(v.CurrentOrders) / float64(v.MaxOrders)
	switch {
	case ratio >= 0.8:
		return CrowdVeryCrowded
	case ratio >= 0.5:
		return CrowdModeratelyCrowded
	default:
		return CrowdNotCrowded
	}
}

// IsOpen compares the wall clock against the operating hours. Malformed or
// missing hours read as closed.
func (v *Vendor) IsOpen(now time.Time) bool {
	open, err := time.Parse("15:04", v.OpeningTime)
	if err != nil {
		return false
	}
	closing, err := time.Parse("15:04", v.ClosingTime)
	if err != nil {
		return false
	}
	minutes := now.Hour()*60 + now.Minute()
	openMin := open.Hour()*60 + open.Minute()
	closeMin := closing.Hour()*60 + closing.Minute()
	return minutes >= openMin && minutes < closeMin
}
