package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/focusflow/focusflow/internal/apperr"
	"github.com/focusflow/focusflow/internal/config"
	"github.com/focusflow/focusflow/internal/models"
	"github.com/focusflow/focusflow/internal/notify"
	"github.com/focusflow/focusflow/stats"
	"github.com/focusflow/focusflow/store"
	"github.com/focusflow/focusflow/tasks"
	"github.com/focusflow/focusflow/timer"
)

const taskDoneTitle = "Task completed"

var errInvalidSettings = &apperr.Error{
	Message: "invalid settings",
}

// WorkspaceOption configures a Workspace.
type WorkspaceOption func(*Workspace)

// WithNotifier replaces the desktop notifier.
func WithNotifier(n timer.Notifier) WorkspaceOption {
	return func(w *Workspace) {
		w.notifier = n
	}
}

// WithClock replaces time.Now for task ids and recorded sessions.
func WithClock(now func() time.Time) WorkspaceOption {
	return func(w *Workspace) {
		w.now = now
	}
}

// Workspace is the application context shared by every command. It owns the
// store and the components built on top of it.
type Workspace struct {
	cfg      *config.Config
	store    *store.Store
	notifier timer.Notifier
	now      func() time.Time
	book     *stats.Book
	registry *tasks.Registry
	machine  *timer.Machine
	settings models.Settings
}

// Open opens the configured store and loads every document.
func Open(cfg *config.Config, opts ...WorkspaceOption) (*Workspace, error) {
	st, err := store.Open(cfg.Store.Driver, cfg.Store.Path)
	if err != nil {
		return nil, err
	}

	return NewWorkspace(cfg, st, opts...), nil
}

// NewWorkspace builds a workspace on an open store. The workspace takes
// ownership of st.
func NewWorkspace(
	cfg *config.Config,
	st *store.Store,
	opts ...WorkspaceOption,
) *Workspace {
	w := &Workspace{
		cfg:   cfg,
		store: st,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.notifier == nil {
		w.notifier = notify.NewDesktop()
	}

	w.settings = st.LoadSettings()
	w.book = stats.NewBook(st)
	w.registry = tasks.NewRegistry(st, w.book, tasks.WithClock(w.now))

	return w
}

// Close releases the store.
func (w *Workspace) Close() error {
	if w.machine != nil {
		w.machine.Pause()
	}

	return w.store.Close()
}

// Settings returns the current settings.
func (w *Workspace) Settings() models.Settings {
	return w.settings
}

// Tasks returns the task registry.
func (w *Workspace) Tasks() *tasks.Registry {
	return w.registry
}

// Dashboard summarises the stats document and the current task list.
func (w *Workspace) Dashboard() stats.Dashboard {
	return stats.Summarize(w.book.Snapshot(), w.registry.All())
}

// Export writes every document to out as one JSON object.
func (w *Workspace) Export(out io.Writer) error {
	return w.store.Export(out)
}

// ToggleTask flips a task's completion state. When the task becomes
// completed and task notifications are enabled, the user is notified.
func (w *Workspace) ToggleTask(id int64) (models.Task, bool, error) {
	t, ok, err := w.registry.Toggle(id)
	if !ok {
		return t, ok, err
	}

	if t.Completed && w.settings.NotifTasks {
		w.notifier.Notify(taskDoneTitle, t.Title, w.settings.NotifSounds)
	}

	return t, ok, err
}

// SaveSettings validates and persists s. An idle timer is reset so the new
// durations apply straight away.
func (w *Workspace) SaveSettings(s models.Settings) error {
	if err := config.Struct(s); err != nil {
		return errInvalidSettings.Wrap(err)
	}

	if err := w.store.SaveSettings(s); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	w.settings = s

	if w.machine != nil && !w.machine.State().Running {
		w.machine.Reset()
	}

	return nil
}

// NewMachine creates the workspace's timer driven by scheduler.
func (w *Workspace) NewMachine(scheduler timer.Scheduler) (*timer.Machine, error) {
	m, err := timer.NewMachine(
		w,
		w.book,
		scheduler,
		timer.WithNotifier(w.notifier),
		timer.WithLongBreakInterval(w.cfg.Timer.LongBreakInterval),
		timer.WithClock(w.now),
	)
	if err != nil {
		return nil, err
	}

	if cmd := w.cfg.Timer.SessionCmd; cmd != "" {
		m.OnTransition(func(tr timer.Transition) {
			go func() {
				if err := runSessionCmd(cmd, tr); err != nil {
					slog.Error(
						"session command failed",
						slog.String("cmd", cmd),
						slog.Any("error", err),
					)
				}
			}()
		})
	}

	w.machine = m

	return m, nil
}
