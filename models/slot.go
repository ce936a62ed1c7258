package models

import "gorm.io/gorm"

// SlotID identifies one of the three fixed daily medicine windows.
type SlotID string

const (
	SlotMorning   SlotID = "morning"
	SlotAfternoon SlotID = "afternoon"
	SlotNight     SlotID = "night"
)

// SlotPreference is a per-user override of a slot's label and/or time.
// At most one row per (user, slot); a nil field means "use the default."
type SlotPreference struct {
	gorm.Model
	UserID      uint    `gorm:"uniqueIndex:idx_slot_prefs_user_slot;not null"`
	SlotID      SlotID  `gorm:"size:16;uniqueIndex:idx_slot_prefs_user_slot;not null"`
	CustomLabel *string `gorm:"size:100"`
	CustomTime  *string `gorm:"size:5"` // "HH:MM", 24h
}
