package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DoseRecord marks one act of taking a slot's medicine. Append-only:
// rows are never updated or deleted, and duplicates per (user, slot, day)
// are allowed — the read layer derives status by existence, not count.
type DoseRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"index:idx_dose_records_user_taken;not null" json:"user_id"`
	SlotID    SlotID    `gorm:"size:16;not null" json:"slot_id"`
	TakenAt   time.Time `gorm:"index:idx_dose_records_user_taken;not null" json:"taken_at"`
}

func (d *DoseRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return
}
