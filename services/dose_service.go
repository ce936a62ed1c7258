package services

import (
	"errors"
	"time"

	"github.com/mindkhichdi/diabeticks-sub000/models"

	"gorm.io/gorm"
)

var ErrFutureDose = errors.New("dose time cannot be in the future")

// DoseService is the thin adapter over the dose_records table. It appends
// and reads; it never updates or deletes, and it does not retry — retries
// are the caller's policy.
type DoseService struct{ db *gorm.DB }

func NewDoseService(db *gorm.DB) *DoseService { return &DoseService{db: db} }

// RecordDose appends one dose event. takenAt may be backdated (the UI lets
// the user mark a past day) but never lies in the future.
func (s *DoseService) RecordDose(userID uint, slotID models.SlotID, takenAt time.Time) (*models.DoseRecord, error) {
	if !ValidSlotID(slotID) {
		return nil, ErrUnknownSlot
	}
	if takenAt.After(time.Now()) {
		return nil, ErrFutureDose
	}

	rec := &models.DoseRecord{
		UserID:  userID,
		SlotID:  slotID,
		TakenAt: takenAt,
	}
	if err := s.db.Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// ListDoses returns every dose whose taken_at falls on a local calendar day
// within [from, to], in no particular order.
func (s *DoseService) ListDoses(userID uint, from, to time.Time) ([]models.DoseRecord, error) {
	start := dayStartLocal(from)
	end := dayStartLocal(to).Add(24 * time.Hour)

	var doses []models.DoseRecord
	err := s.db.
		Where("user_id = ? AND taken_at >= ? AND taken_at < ?", userID, start, end).
		Find(&doses).Error
	return doses, err
}
