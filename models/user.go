package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	UserID   string `gorm:"uniqueIndex;not null"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string

	MFAEnabled    bool
	MFACode       string
	ResetToken    string
	ResetTokenExp time.Time

	// RemindersEnabled gates the background reminder poller for this user.
	RemindersEnabled bool `gorm:"default:true"`
	Disabled         bool `gorm:"default:false"`
}
