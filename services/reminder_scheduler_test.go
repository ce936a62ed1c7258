package services

import (
	"testing"
	"time"
)

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

type stubResolver struct{ slots []ResolvedSlot }

func (s stubResolver) ResolveSlots(userID uint) ([]ResolvedSlot, error) {
	return s.slots, nil
}

type firedReminder struct {
	userID uint
	slot   string
}

func newTestScheduler(clock *fakeClock, slots []ResolvedSlot, users []uint) (*ReminderScheduler, *[]firedReminder) {
	var fired []firedReminder

	s := NewReminderScheduler(nil, stubResolver{slots: slots})
	s.clock = clock
	s.recipients = func() ([]uint, error) { return users, nil }
	s.notify = func(userID uint, typ, message string, data map[string]string) {
		fired = append(fired, firedReminder{userID: userID, slot: data["slot"]})
	}
	return s, &fired
}

func TestSchedulerFiresAtLeadMinute(t *testing.T) {
	clock := &fakeClock{now: localDate(2024, time.January, 1, 7, 50)}
	s, fired := newTestScheduler(clock,
		[]ResolvedSlot{{ID: "morning", Label: "Morning", Time: "08:00"}},
		[]uint{1})

	s.Tick()

	if len(*fired) != 1 {
		t.Fatalf("expected one reminder at 07:50 for an 08:00 slot, got %d", len(*fired))
	}
	if (*fired)[0].slot != "morning" || (*fired)[0].userID != 1 {
		t.Fatalf("unexpected reminder %+v", (*fired)[0])
	}
}

func TestSchedulerDoesNotFireOffMinute(t *testing.T) {
	for _, hhmm := range [][2]int{{7, 49}, {7, 51}, {8, 0}} {
		clock := &fakeClock{now: localDate(2024, time.January, 1, hhmm[0], hhmm[1])}
		s, fired := newTestScheduler(clock,
			[]ResolvedSlot{{ID: "morning", Label: "Morning", Time: "08:00"}},
			[]uint{1})

		s.Tick()

		if len(*fired) != 0 {
			t.Fatalf("fired at %02d:%02d for an 08:00 slot", hhmm[0], hhmm[1])
		}
	}
}

func TestSchedulerGuardsAgainstDoubleFire(t *testing.T) {
	// sub-minute polling must not fire twice within the target minute
	clock := &fakeClock{now: localDate(2024, time.January, 1, 7, 50)}
	s, fired := newTestScheduler(clock,
		[]ResolvedSlot{{ID: "morning", Label: "Morning", Time: "08:00"}},
		[]uint{1})

	s.Tick()
	clock.now = clock.now.Add(20 * time.Second)
	s.Tick()
	clock.now = clock.now.Add(20 * time.Second)
	s.Tick()

	if len(*fired) != 1 {
		t.Fatalf("expected one reminder within the minute, got %d", len(*fired))
	}
}

func TestSchedulerHasNoCatchUp(t *testing.T) {
	// the poller sleeps through the target minute entirely
	clock := &fakeClock{now: localDate(2024, time.January, 1, 7, 49)}
	s, fired := newTestScheduler(clock,
		[]ResolvedSlot{{ID: "morning", Label: "Morning", Time: "08:00"}},
		[]uint{1})

	s.Tick()
	clock.now = localDate(2024, time.January, 1, 7, 52)
	s.Tick()

	if len(*fired) != 0 {
		t.Fatalf("a skipped minute must stay missed, got %d reminders", len(*fired))
	}
}

func TestSchedulerUsesCustomSlotTimes(t *testing.T) {
	// a 09:30 override reminds at 09:20, and the default 08:00 stays quiet
	clock := &fakeClock{now: localDate(2024, time.January, 1, 9, 20)}
	s, fired := newTestScheduler(clock,
		[]ResolvedSlot{
			{ID: "morning", Label: "Morning", Time: "09:30"},
			{ID: "afternoon", Label: "Afternoon", Time: "14:00"},
		},
		[]uint{1, 2})

	s.Tick()

	if len(*fired) != 2 {
		t.Fatalf("expected one reminder per user, got %d", len(*fired))
	}
	for _, f := range *fired {
		if f.slot != "morning" {
			t.Fatalf("only the morning slot is due at 09:20, got %+v", f)
		}
	}
}

func TestSchedulerNextDayFiresAgain(t *testing.T) {
	clock := &fakeClock{now: localDate(2024, time.January, 1, 7, 50)}
	s, fired := newTestScheduler(clock,
		[]ResolvedSlot{{ID: "morning", Label: "Morning", Time: "08:00"}},
		[]uint{1})

	s.Tick()
	clock.now = localDate(2024, time.January, 2, 7, 50)
	s.Tick()

	if len(*fired) != 2 {
		t.Fatalf("the same minute on the next day should fire again, got %d", len(*fired))
	}
}

func TestSchedulerStartStop(t *testing.T) {
	s, _ := newTestScheduler(&fakeClock{now: time.Now()}, nil, nil)
	s.interval = time.Millisecond

	s.Start()
	time.Sleep(5 * time.Millisecond)
	s.Stop() // blocks until the poller goroutine exits
}
