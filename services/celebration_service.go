package services

import (
	"fmt"
	"sync"
)

// CelebrationTracker fires a one-time event when a day's status crosses
// from not-all-taken to all-taken. It is edge-triggered: re-observing an
// unchanged all-taken day must not refire, so the previous value is held
// explicitly per (user, date).
type CelebrationTracker struct {
	mu     sync.Mutex
	prev   map[string]bool // "userID|YYYY-MM-DD" -> last observed AllTaken
	notify func(userID uint, typ, message string, data map[string]string)
}

func NewCelebrationTracker() *CelebrationTracker {
	return &CelebrationTracker{
		prev:   make(map[string]bool),
		notify: EmitAlert,
	}
}

// Observe records the day's freshly computed status and reports whether the
// celebration fired. Call it after every dose-set change for the day.
func (t *CelebrationTracker) Observe(userID uint, st DailyStatus) bool {
	key := fmt.Sprintf("%d|%s", userID, st.Date)

	t.mu.Lock()
	prev := t.prev[key]
	t.prev[key] = st.AllTaken
	t.mu.Unlock()

	if !st.AllTaken || prev {
		return false
	}

	t.notify(userID, "celebration",
		fmt.Sprintf("All doses taken for %s. Great job!", st.Date),
		map[string]string{"date": st.Date})
	return true
}
