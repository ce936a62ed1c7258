package services

import (
	"fmt"
	"log"
	"time"

	"github.com/mindkhichdi/diabeticks-sub000/models"

	"gorm.io/gorm"
)

// Clock abstracts wall-clock reads so tests can simulate time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// reminderLead is how long before a slot's nominal time the reminder fires.
const reminderLead = 10 * time.Minute

type slotResolver interface {
	ResolveSlots(userID uint) ([]ResolvedSlot, error)
}

// ReminderScheduler polls the wall clock once a minute and fires a reminder
// when the current minute equals a slot's time minus the lead. Equality, not
// a window: a minute the poller slept through is missed for the day, there
// is no catch-up. The fired set guards against double firing when ticks
// land inside the same minute.
type ReminderScheduler struct {
	db       *gorm.DB
	slots    slotResolver
	clock    Clock
	interval time.Duration

	notify     func(userID uint, typ, message string, data map[string]string)
	recipients func() ([]uint, error)

	fired      map[string]struct{}
	lastMinute string

	stop chan struct{}
	done chan struct{}
}

func NewReminderScheduler(db *gorm.DB, slots slotResolver) *ReminderScheduler {
	s := &ReminderScheduler{
		db:       db,
		slots:    slots,
		clock:    realClock{},
		interval: time.Minute,
		notify:   EmitAlert,
		fired:    make(map[string]struct{}),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	s.recipients = s.enabledUsers
	return s
}

// Start launches the polling goroutine. Call Stop on teardown or the
// poller leaks.
func (s *ReminderScheduler) Start() {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Tick()
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop cancels the polling goroutine and waits for it to exit.
func (s *ReminderScheduler) Stop() {
	close(s.stop)
	<-s.done
}

// Tick runs one polling pass. Exported so tests can drive the scheduler
// with a fake clock instead of waiting on real time.
func (s *ReminderScheduler) Tick() {
	now := s.clock.Now().In(time.Local)
	minute := now.Format("2006-01-02T15:04")

	// a new minute invalidates the old fired guard
	if minute != s.lastMinute {
		s.fired = make(map[string]struct{})
		s.lastMinute = minute
	}

	userIDs, err := s.recipients()
	if err != nil {
		log.Printf("reminder scheduler: listing recipients failed: %v", err)
		return
	}

	for _, uid := range userIDs {
		slots, err := s.slots.ResolveSlots(uid)
		if err != nil {
			log.Printf("reminder scheduler: resolving slots for user %d failed: %v", uid, err)
			continue
		}
		for _, sl := range slots {
			slotTime, err := time.ParseInLocation("15:04", sl.Time, time.Local)
			if err != nil {
				continue
			}
			target := time.Date(now.Year(), now.Month(), now.Day(),
				slotTime.Hour(), slotTime.Minute(), 0, 0, time.Local).
				Add(-reminderLead)

			if now.Hour() != target.Hour() || now.Minute() != target.Minute() {
				continue
			}

			key := fmt.Sprintf("%d|%s|%s", uid, sl.ID, minute)
			if _, dup := s.fired[key]; dup {
				continue
			}
			s.fired[key] = struct{}{}

			s.notify(uid, "reminder",
				fmt.Sprintf("%s medicine is due at %s", sl.Label, sl.Time),
				map[string]string{"slot": string(sl.ID), "time": sl.Time})
		}
	}
}

func (s *ReminderScheduler) enabledUsers() ([]uint, error) {
	var users []models.User
	err := s.db.
		Where("reminders_enabled = ? AND disabled = ?", true, false).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids, nil
}
