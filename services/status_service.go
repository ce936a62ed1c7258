package services

import (
	"time"

	"github.com/mindkhichdi/diabeticks-sub000/models"
)

// DailyStatus is derived from the dose set for one calendar day.
// It is never persisted; recompute it whenever the doses change.
type DailyStatus struct {
	Date      string `json:"date"` // "YYYY-MM-DD"
	Morning   bool   `json:"morning"`
	Afternoon bool   `json:"afternoon"`
	Night     bool   `json:"night"`
	AllTaken  bool   `json:"all_taken"`
}

// TakenCount returns how many of the three slots are taken.
func (st DailyStatus) TakenCount() int {
	n := 0
	for _, taken := range []bool{st.Morning, st.Afternoon, st.Night} {
		if taken {
			n++
		}
	}
	return n
}

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// sameLocalDay is the single calendar-day comparison used everywhere a dose
// is matched to a day. All matching happens in the local time zone; mixing
// frames misclassifies doses near midnight.
func sameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.In(time.Local).Date()
	by, bm, bd := b.In(time.Local).Date()
	return ay == by && am == bm && ad == bd
}

// ComputeStatus derives the per-slot taken flags for one calendar day.
// A slot is taken iff at least one dose for that slot falls on the day,
// so duplicate records for the same slot and day change nothing.
func ComputeStatus(doses []models.DoseRecord, date time.Time) DailyStatus {
	st := DailyStatus{Date: dayStartLocal(date).Format("2006-01-02")}
	for _, d := range doses {
		if !sameLocalDay(d.TakenAt, date) {
			continue
		}
		switch d.SlotID {
		case models.SlotMorning:
			st.Morning = true
		case models.SlotAfternoon:
			st.Afternoon = true
		case models.SlotNight:
			st.Night = true
		}
	}
	st.AllTaken = st.Morning && st.Afternoon && st.Night
	return st
}
