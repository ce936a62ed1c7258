package services

import (
	"testing"

	"github.com/mindkhichdi/diabeticks-sub000/models"
)

func strPtr(s string) *string { return &s }

func TestMergeSlotsDefaults(t *testing.T) {
	slots := mergeSlots(nil)

	if len(slots) != 3 {
		t.Fatalf("expected exactly 3 slots, got %d", len(slots))
	}
	order := []models.SlotID{models.SlotMorning, models.SlotAfternoon, models.SlotNight}
	for i, id := range order {
		if slots[i].ID != id {
			t.Fatalf("slot %d should be %s, got %s", i, id, slots[i].ID)
		}
	}
	if slots[0].Label != "Morning" || slots[0].Time != "08:00" {
		t.Fatalf("unexpected morning defaults: %+v", slots[0])
	}
}

func TestMergeSlotsPartialOverride(t *testing.T) {
	prefs := []models.SlotPreference{
		{UserID: 1, SlotID: models.SlotMorning, CustomTime: strPtr("06:30")},
		{UserID: 1, SlotID: models.SlotNight, CustomLabel: strPtr("Bedtime"), CustomTime: strPtr("22:15")},
	}

	slots := mergeSlots(prefs)

	// custom time keeps the default label
	if slots[0].Label != "Morning" || slots[0].Time != "06:30" {
		t.Fatalf("partial override broke the merge: %+v", slots[0])
	}
	// untouched slot keeps both defaults
	if slots[1].Label != "Afternoon" || slots[1].Time != "14:00" {
		t.Fatalf("afternoon should be untouched: %+v", slots[1])
	}
	if slots[2].Label != "Bedtime" || slots[2].Time != "22:15" {
		t.Fatalf("full override not applied: %+v", slots[2])
	}
}

func TestMergeSlotsEmptyStringsKeepDefaults(t *testing.T) {
	prefs := []models.SlotPreference{
		{UserID: 1, SlotID: models.SlotMorning, CustomLabel: strPtr(""), CustomTime: strPtr("")},
	}

	slots := mergeSlots(prefs)
	if slots[0].Label != "Morning" || slots[0].Time != "08:00" {
		t.Fatalf("empty overrides must fall back to defaults: %+v", slots[0])
	}
}

func TestValidCustomTime(t *testing.T) {
	valid := []string{"00:00", "08:05", "12:30", "23:59"}
	for _, v := range valid {
		if !validCustomTime(v) {
			t.Fatalf("%q should be valid", v)
		}
	}

	invalid := []string{"24:00", "8:05", "12:60", "noon", "12-30", "1230", "12:3", ""}
	for _, v := range invalid {
		if validCustomTime(v) {
			t.Fatalf("%q should be rejected", v)
		}
	}
}

func TestValidSlotID(t *testing.T) {
	for _, id := range []models.SlotID{models.SlotMorning, models.SlotAfternoon, models.SlotNight} {
		if !ValidSlotID(id) {
			t.Fatalf("%s should be valid", id)
		}
	}
	for _, id := range []models.SlotID{"", "evening", "Morning", "noon"} {
		if ValidSlotID(id) {
			t.Fatalf("%s should be rejected", id)
		}
	}
}
