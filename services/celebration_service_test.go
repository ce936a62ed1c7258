package services

import "testing"

func newTestTracker() (*CelebrationTracker, *[]string) {
	var fired []string
	t := NewCelebrationTracker()
	t.notify = func(userID uint, typ, message string, data map[string]string) {
		fired = append(fired, data["date"])
	}
	return t, &fired
}

func TestCelebrationFiresOnceOnTransition(t *testing.T) {
	tracker, fired := newTestTracker()

	partial := DailyStatus{Date: "2024-01-01", Morning: true}
	if tracker.Observe(1, partial) {
		t.Fatalf("must not fire while slots are missing")
	}

	full := DailyStatus{Date: "2024-01-01", Morning: true, Afternoon: true, Night: true, AllTaken: true}
	if !tracker.Observe(1, full) {
		t.Fatalf("expected fire on false->true transition")
	}

	// identical recomputation, e.g. a duplicate dose write
	if tracker.Observe(1, full) {
		t.Fatalf("re-observing an unchanged all-taken day refired")
	}

	if len(*fired) != 1 || (*fired)[0] != "2024-01-01" {
		t.Fatalf("expected exactly one event for 2024-01-01, got %v", *fired)
	}
}

func TestCelebrationTracksDaysIndependently(t *testing.T) {
	tracker, fired := newTestTracker()

	full := func(date string) DailyStatus {
		return DailyStatus{Date: date, Morning: true, Afternoon: true, Night: true, AllTaken: true}
	}

	if !tracker.Observe(1, full("2024-01-01")) {
		t.Fatalf("day one should fire")
	}
	if !tracker.Observe(1, full("2024-01-02")) {
		t.Fatalf("a new day has its own edge")
	}
	if len(*fired) != 2 {
		t.Fatalf("expected two events, got %v", *fired)
	}
}

func TestCelebrationTracksUsersIndependently(t *testing.T) {
	tracker, fired := newTestTracker()

	full := DailyStatus{Date: "2024-01-01", Morning: true, Afternoon: true, Night: true, AllTaken: true}

	if !tracker.Observe(1, full) {
		t.Fatalf("first user should fire")
	}
	if !tracker.Observe(2, full) {
		t.Fatalf("second user's edge is independent")
	}
	if tracker.Observe(1, full) || tracker.Observe(2, full) {
		t.Fatalf("neither user may refire")
	}
	if len(*fired) != 2 {
		t.Fatalf("expected two events, got %v", *fired)
	}
}
