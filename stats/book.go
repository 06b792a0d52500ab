package stats

import (
	"errors"
	"time"

	"github.com/focusflow/focusflow/internal/models"
	"github.com/focusflow/focusflow/internal/timeutil"
)

// errCountersCurrent aborts a stats update that would not change anything.
var errCountersCurrent = errors.New("task counters are current")

// Store persists the stats document.
type Store interface {
	LoadStats() models.Stats
	UpdateStats(fn func(*models.Stats) error) error
}

// Book owns the stats document. Every change is applied to a fresh copy read
// from the store inside the write, so that several focusflow processes
// sharing one database do not overwrite each other's counts.
type Book struct {
	store Store
	doc   models.Stats
}

// NewBook loads the stats document from s.
func NewBook(s Store) *Book {
	return &Book{
		store: s,
		doc:   s.LoadStats(),
	}
}

// Snapshot returns a copy of the document as of the last read or write.
func (b *Book) Snapshot() models.Stats {
	return b.doc
}

// update applies fn to the stored document and caches the result.
func (b *Book) update(fn func(*models.Stats) error) error {
	var latest models.Stats

	err := b.store.UpdateStats(func(doc *models.Stats) error {
		err := fn(doc)
		latest = *doc

		return err
	})

	if err != nil && !errors.Is(err, errCountersCurrent) {
		return err
	}

	b.doc = latest

	return nil
}

// RecordPomodoro accounts for one completed work session of workMinutes
// finishing at the given time.
func (b *Book) RecordPomodoro(workMinutes int, at time.Time) error {
	return b.update(func(doc *models.Stats) error {
		doc.TotalPomodoros++
		doc.FocusHours += timeutil.MinutesToHours(workMinutes)
		doc.WeeklyData[at.Weekday()]++

		return nil
	})
}

// SyncTasks replaces the task counters with values derived from the task
// registry. Nothing is written when they are already current.
func (b *Book) SyncTasks(total, completed int) error {
	return b.update(func(doc *models.Stats) error {
		if doc.TotalTasks == total && doc.CompletedTasks == completed {
			return errCountersCurrent
		}

		doc.TotalTasks = total
		doc.CompletedTasks = completed

		return nil
	})
}
