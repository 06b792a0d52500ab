// Package tasks manages the user's to-do list.
package tasks

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"

	"github.com/focusflow/focusflow/internal/models"
)

// errUnchanged aborts a task list update that has nothing to write.
var errUnchanged = errors.New("task list unchanged")

// Store persists the task list. UpdateTasks must hand fn the stored list and
// write its result back atomically.
type Store interface {
	LoadTasks() []models.Task
	UpdateTasks(fn func([]models.Task) ([]models.Task, error)) error
}

// Counter receives the task totals after every mutation.
type Counter interface {
	SyncTasks(total, completed int) error
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock replaces time.Now as the source of ids and creation times.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// Registry is the in-memory task list. Every mutation re-reads the stored
// list, applies the change to it and writes it back in one step, so that
// changes made by another focusflow process in the meantime are kept.
type Registry struct {
	store   Store
	counter Counter
	now     func() time.Time
	tasks   []models.Task
	lastID  int64
}

// NewRegistry loads the task list from s. The counter is brought in line
// with the loaded list straight away.
func NewRegistry(s Store, c Counter, opts ...Option) *Registry {
	r := &Registry{
		store:   s,
		counter: c,
		now:     time.Now,
		tasks:   s.LoadTasks(),
	}

	for _, opt := range opts {
		opt(r)
	}

	for i := range r.tasks {
		r.lastID = max(r.lastID, r.tasks[i].ID)
	}

	if err := r.sync(); err != nil {
		slog.Warn("syncing task counters failed", slog.Any("error", err))
	}

	return r
}

// nextID is derived from the clock in milliseconds and bumped past the
// previous id so that ids stay unique when tasks are added quickly.
func (r *Registry) nextID(now time.Time) int64 {
	r.lastID = max(now.UnixMilli(), r.lastID+1)

	return r.lastID
}

func (r *Registry) counts() (total, completed int) {
	for i := range r.tasks {
		if r.tasks[i].Completed {
			completed++
		}
	}

	return len(r.tasks), completed
}

func (r *Registry) sync() error {
	if r.counter == nil {
		return nil
	}

	return r.counter.SyncTasks(r.counts())
}

// mutate applies fn to the stored list and, once the result is written,
// adopts it as the in-memory list and resyncs the counters. The in-memory
// list is left alone when the write fails. fn may return errUnchanged to
// skip the write.
func (r *Registry) mutate(fn func(tasks []models.Task) ([]models.Task, error)) error {
	var latest []models.Task

	err := r.store.UpdateTasks(func(tasks []models.Task) ([]models.Task, error) {
		for i := range tasks {
			r.lastID = max(r.lastID, tasks[i].ID)
		}

		latest = tasks

		out, err := fn(tasks)
		if err != nil {
			return nil, err
		}

		latest = out

		return out, nil
	})

	if errors.Is(err, errUnchanged) {
		r.tasks = latest
		return nil
	}

	if err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}

	r.tasks = latest

	if err := r.sync(); err != nil {
		return fmt.Errorf("syncing task counters: %w", err)
	}

	return nil
}

func indexOf(tasks []models.Task, id int64) int {
	return slices.IndexFunc(tasks, func(t models.Task) bool {
		return t.ID == id
	})
}

// Add appends a new pending task. The title is stored as given.
func (r *Registry) Add(
	title string,
	category models.Category,
	priority models.Priority,
	dueDate string,
) (models.Task, error) {
	// UTC drops the monotonic reading so the task equals its stored copy
	now := r.now().UTC()

	var t models.Task

	err := r.mutate(func(tasks []models.Task) ([]models.Task, error) {
		t = models.Task{
			ID:        r.nextID(now),
			Title:     title,
			Category:  category,
			Priority:  priority,
			DueDate:   dueDate,
			CreatedAt: now,
		}

		return append(tasks, t), nil
	})

	if err != nil {
		return t, err
	}

	slog.Debug("task added", slog.Int64("id", t.ID))

	return t, nil
}

// Toggle flips the completion state of the task with the given id. It
// reports false, and changes nothing, when no such task exists.
func (r *Registry) Toggle(id int64) (models.Task, bool, error) {
	var (
		task  models.Task
		found bool
	)

	err := r.mutate(func(tasks []models.Task) ([]models.Task, error) {
		i := indexOf(tasks, id)
		if i < 0 {
			return nil, errUnchanged
		}

		tasks[i].Completed = !tasks[i].Completed
		task, found = tasks[i], true

		return tasks, nil
	})

	return task, found, err
}

// Delete removes the task with the given id, reporting whether it existed.
func (r *Registry) Delete(id int64) (bool, error) {
	var found bool

	err := r.mutate(func(tasks []models.Task) ([]models.Task, error) {
		i := indexOf(tasks, id)
		if i < 0 {
			return nil, errUnchanged
		}

		found = true

		return slices.Delete(tasks, i, i+1), nil
	})

	return found, err
}

// Get returns the task with the given id.
func (r *Registry) Get(id int64) (models.Task, bool) {
	i := indexOf(r.tasks, id)
	if i < 0 {
		return models.Task{}, false
	}

	return r.tasks[i], true
}

// All returns a copy of every task in insertion order.
func (r *Registry) All() []models.Task {
	return slices.Clone(r.tasks)
}

// Len is the number of tasks.
func (r *Registry) Len() int {
	return len(r.tasks)
}

func matches(t *models.Task, filter models.Filter) bool {
	switch filter {
	case models.FilterPending:
		return !t.Completed
	case models.FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Filtered returns the tasks that match filter and whose title contains
// search, ignoring case. Insertion order is kept.
func (r *Registry) Filtered(filter models.Filter, search string) []models.Task {
	needle := strings.ToLower(search)
	out := []models.Task{}

	for i := range r.tasks {
		t := &r.tasks[i]

		if !matches(t, filter) {
			continue
		}

		if !strings.Contains(strings.ToLower(t.Title), needle) {
			continue
		}

		out = append(out, *t)
	}

	return out
}

// Pending returns at most limit pending tasks in insertion order. A limit
// below one returns all of them.
func (r *Registry) Pending(limit int) []models.Task {
	out := r.Filtered(models.FilterPending, "")
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}

// SortByTitle orders tasks by title in natural order, so "task 2" sorts
// before "task 10". Tasks with equal titles keep their relative order.
func SortByTitle(list []models.Task) {
	sort.SliceStable(list, func(i, j int) bool {
		return natural.Less(
			strings.ToLower(list[i].Title),
			strings.ToLower(list[j].Title),
		)
	})
}
