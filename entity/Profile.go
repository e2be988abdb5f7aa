package entity

import (
	"gorm.io/gorm"
)

// Profile carries the campus identity of a user. Created in the same
// transaction as the User row, never on its own.
type Profile struct {
	gorm.Model
	RollNo string `gorm:"not null" json:"rollNo"`
	Phone  string `json:"phone"`

	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"-"`

	UniversityID uint       `gorm:"not null" json:"universityId"`
	University   University `json:"-"`
}
