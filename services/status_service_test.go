package services

import (
	"testing"
	"time"

	"github.com/mindkhichdi/diabeticks-sub000/models"
)

func localDate(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func dose(slot models.SlotID, takenAt time.Time) models.DoseRecord {
	return models.DoseRecord{UserID: 1, SlotID: slot, TakenAt: takenAt}
}

func TestComputeStatusMorningOnly(t *testing.T) {
	doses := []models.DoseRecord{
		dose(models.SlotMorning, localDate(2024, time.January, 1, 8, 5)),
	}

	st := ComputeStatus(doses, localDate(2024, time.January, 1, 0, 0))

	if !st.Morning || st.Afternoon || st.Night {
		t.Fatalf("expected morning only, got %+v", st)
	}
	if st.AllTaken {
		t.Fatalf("allTaken should be false with one slot taken")
	}
	if st.Date != "2024-01-01" {
		t.Fatalf("expected date 2024-01-01, got %s", st.Date)
	}
}

func TestComputeStatusAllTaken(t *testing.T) {
	doses := []models.DoseRecord{
		dose(models.SlotMorning, localDate(2024, time.January, 1, 8, 0)),
		dose(models.SlotAfternoon, localDate(2024, time.January, 1, 14, 30)),
		dose(models.SlotNight, localDate(2024, time.January, 1, 21, 0)),
	}

	st := ComputeStatus(doses, localDate(2024, time.January, 1, 12, 0))

	if !st.AllTaken {
		t.Fatalf("expected allTaken, got %+v", st)
	}
	if st.TakenCount() != 3 {
		t.Fatalf("expected 3 taken, got %d", st.TakenCount())
	}
}

func TestComputeStatusAllTakenIsConjunction(t *testing.T) {
	cases := [][]models.SlotID{
		{},
		{models.SlotMorning},
		{models.SlotMorning, models.SlotAfternoon},
		{models.SlotMorning, models.SlotAfternoon, models.SlotNight},
		{models.SlotNight},
	}

	for _, slots := range cases {
		var doses []models.DoseRecord
		for _, s := range slots {
			doses = append(doses, dose(s, localDate(2024, time.March, 10, 9, 0)))
		}
		st := ComputeStatus(doses, localDate(2024, time.March, 10, 0, 0))
		want := st.Morning && st.Afternoon && st.Night
		if st.AllTaken != want {
			t.Fatalf("allTaken %v, want %v for slots %v", st.AllTaken, want, slots)
		}
	}
}

func TestComputeStatusIgnoresOtherDays(t *testing.T) {
	doses := []models.DoseRecord{
		dose(models.SlotMorning, localDate(2024, time.January, 2, 8, 0)),
		dose(models.SlotNight, localDate(2023, time.December, 31, 22, 0)),
	}

	st := ComputeStatus(doses, localDate(2024, time.January, 1, 0, 0))

	if st.TakenCount() != 0 {
		t.Fatalf("doses from other days must not count, got %+v", st)
	}
}

func TestComputeStatusDuplicateDosesIdempotent(t *testing.T) {
	once := []models.DoseRecord{
		dose(models.SlotMorning, localDate(2024, time.January, 1, 8, 0)),
	}
	twice := append(once,
		dose(models.SlotMorning, localDate(2024, time.January, 1, 8, 30)))

	day := localDate(2024, time.January, 1, 0, 0)
	if ComputeStatus(once, day) != ComputeStatus(twice, day) {
		t.Fatalf("a duplicate dose for an already-taken slot changed the status")
	}
}

func TestComputeStatusLocalDayBoundary(t *testing.T) {
	// 23:59 and 00:00 land on different local days
	doses := []models.DoseRecord{
		dose(models.SlotNight, localDate(2024, time.January, 1, 23, 59)),
	}

	if st := ComputeStatus(doses, localDate(2024, time.January, 1, 0, 0)); !st.Night {
		t.Fatalf("23:59 dose should count for Jan 1")
	}
	if st := ComputeStatus(doses, localDate(2024, time.January, 2, 0, 0)); st.Night {
		t.Fatalf("23:59 dose must not leak into Jan 2")
	}
}
