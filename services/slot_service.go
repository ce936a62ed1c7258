package services

import (
	"errors"
	"regexp"

	"github.com/mindkhichdi/diabeticks-sub000/models"

	"gorm.io/gorm"
)

// ResolvedSlot is a canonical slot merged with the user's preference.
type ResolvedSlot struct {
	ID    models.SlotID `json:"id"`
	Label string        `json:"label"`
	Time  string        `json:"time"` // "HH:MM", 24h
}

// The three canonical slots, in display order. Fixed at process start.
var slotDefaults = []ResolvedSlot{
	{ID: models.SlotMorning, Label: "Morning", Time: "08:00"},
	{ID: models.SlotAfternoon, Label: "Afternoon", Time: "14:00"},
	{ID: models.SlotNight, Label: "Night", Time: "20:00"},
}

var (
	ErrUnknownSlot = errors.New("unknown slot id")
	ErrInvalidTime = errors.New("custom time must be HH:MM between 00:00 and 23:59")
)

var slotTimeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func ValidSlotID(id models.SlotID) bool {
	switch id {
	case models.SlotMorning, models.SlotAfternoon, models.SlotNight:
		return true
	}
	return false
}

func validCustomTime(t string) bool {
	return slotTimeRe.MatchString(t)
}

// mergeSlots applies preferences over the defaults, field by field.
// A partial override (custom time, no custom label) keeps the default label.
func mergeSlots(prefs []models.SlotPreference) []ResolvedSlot {
	bySlot := make(map[models.SlotID]models.SlotPreference, len(prefs))
	for _, p := range prefs {
		bySlot[p.SlotID] = p
	}

	out := make([]ResolvedSlot, 0, len(slotDefaults))
	for _, def := range slotDefaults {
		r := def
		if p, ok := bySlot[def.ID]; ok {
			if p.CustomLabel != nil && *p.CustomLabel != "" {
				r.Label = *p.CustomLabel
			}
			if p.CustomTime != nil && *p.CustomTime != "" {
				r.Time = *p.CustomTime
			}
		}
		out = append(out, r)
	}
	return out
}

type SlotService struct{ db *gorm.DB }

func NewSlotService(db *gorm.DB) *SlotService { return &SlotService{db: db} }

// ResolveSlots always returns exactly the three canonical slots in order
// (morning, afternoon, night), merged with the user's saved preferences.
func (s *SlotService) ResolveSlots(userID uint) ([]ResolvedSlot, error) {
	var prefs []models.SlotPreference
	if err := s.db.Where("user_id = ?", userID).Find(&prefs).Error; err != nil {
		return nil, err
	}
	return mergeSlots(prefs), nil
}

// SetPreference upserts the (user, slot) preference row. Passing nil for a
// field clears that override back to the slot default.
func (s *SlotService) SetPreference(userID uint, slotID models.SlotID, customLabel, customTime *string) error {
	if !ValidSlotID(slotID) {
		return ErrUnknownSlot
	}
	if customTime != nil && *customTime != "" && !validCustomTime(*customTime) {
		return ErrInvalidTime
	}

	pref := models.SlotPreference{UserID: userID, SlotID: slotID}
	return s.db.
		Where("user_id = ? AND slot_id = ?", userID, slotID).
		Assign(map[string]interface{}{
			"custom_label": customLabel,
			"custom_time":  customTime,
		}).
		FirstOrCreate(&pref).Error
}
