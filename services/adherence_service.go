package services

import (
	"time"

	"github.com/mindkhichdi/diabeticks-sub000/models"
)

// Trend is the coarse monthly adherence bucket shown on the calendar.
type Trend string

const (
	TrendExcellent        Trend = "excellent"
	TrendGood             Trend = "good"
	TrendFair             Trend = "fair"
	TrendNeedsImprovement Trend = "needs-improvement"
)

// MonthlyEntry is one calendar day within a month view.
type MonthlyEntry struct {
	Day           int         `json:"day"`
	Status        DailyStatus `json:"status"`
	AdherenceRate float64     `json:"adherence_rate"` // 0, 33.3, 66.6 or 100
}

// MonthView is the full adherence calendar for one month.
type MonthView struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	// LeadingBlankCount pads a 7-column grid so day 1 lands in its
	// weekday column (0=Sunday .. 6=Saturday).
	LeadingBlankCount int            `json:"leading_blank_count"`
	Entries           []MonthlyEntry `json:"entries"`
	OverallRate       float64        `json:"overall_rate"`
	Trend             Trend          `json:"trend"`
}

// ClassifyTrend buckets an overall rate by fixed thresholds.
func ClassifyTrend(rate float64) Trend {
	switch {
	case rate >= 90:
		return TrendExcellent
	case rate >= 70:
		return TrendGood
	case rate >= 50:
		return TrendFair
	default:
		return TrendNeedsImprovement
	}
}

// BuildMonth derives the adherence calendar for one month from the raw dose
// set. For the current month only days up to and including today count
// toward the overall rate; future days are still rendered as entries. now is
// a parameter so callers (and tests) pin what "current" means.
func BuildMonth(doses []models.DoseRecord, year int, month time.Month, now time.Time) MonthView {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	view := MonthView{
		Year:              year,
		Month:             month,
		LeadingBlankCount: int(first.Weekday()),
	}

	// day 0 of the next month is the last day of this one
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()

	nowLocal := now.In(time.Local)
	currentMonth := nowLocal.Year() == year && nowLocal.Month() == month

	takenSum, relevantDays := 0, 0
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		st := ComputeStatus(doses, date)
		count := st.TakenCount()

		view.Entries = append(view.Entries, MonthlyEntry{
			Day:           day,
			Status:        st,
			AdherenceRate: float64(count) / 3.0 * 100,
		})

		if !currentMonth || day <= nowLocal.Day() {
			takenSum += count
			relevantDays++
		}
	}

	if relevantDays > 0 {
		view.OverallRate = float64(takenSum) / float64(relevantDays*3) * 100
	}
	view.Trend = ClassifyTrend(view.OverallRate)
	return view
}
