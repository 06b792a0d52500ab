package timer

import (
	"log/slog"
	"time"

	"github.com/focusflow/focusflow/internal/models"
)

const (
	secondsInAMinute = 60

	// DefaultLongBreakInterval is the number of work sessions between long
	// breaks.
	DefaultLongBreakInterval = 4

	notificationTitle = "focusflow"
	workDoneMessage   = "Great work! Time for a break."
	breakDoneMessage  = "Break complete! Ready to focus?"
)

// SettingsSource provides the current settings. It is consulted every time a
// duration or notification switch is needed so that edits apply at once.
type SettingsSource interface {
	Settings() models.Settings
}

// Recorder accounts for completed work sessions.
type Recorder interface {
	RecordPomodoro(workMinutes int, at time.Time) error
}

// Notifier delivers a user facing notification.
type Notifier interface {
	Notify(title, message string, sound bool)
}

// State is the ephemeral timer state. It is never persisted.
type State struct {
	Mode              Mode
	TimeLeft          int
	Running           bool
	SessionsCompleted int
}

// Transition describes a completed session.
type Transition struct {
	At                time.Time
	From              Mode
	To                Mode
	Message           string
	SessionsCompleted int
}

// Option configures a Machine.
type Option func(*Machine) error

// WithLongBreakInterval sets how many work sessions precede a long break.
func WithLongBreakInterval(n int) Option {
	return func(m *Machine) error {
		if n < 1 {
			return errInvalidInterval.Fmt(n)
		}

		m.longBreakInterval = n

		return nil
	}
}

// WithNotifier sets the notifier used on completion.
func WithNotifier(n Notifier) Option {
	return func(m *Machine) error {
		m.notifier = n
		return nil
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) error {
		m.now = now
		return nil
	}
}

// Machine is the Pomodoro state machine. It is not safe for concurrent use:
// every method, including the scheduled ticks, must run on one goroutine.
// Both schedulers in this package guarantee that.
type Machine struct {
	settings          SettingsSource
	recorder          Recorder
	notifier          Notifier
	scheduler         Scheduler
	now               func() time.Time
	cancel            func()
	hooks             []func(Transition)
	state             State
	longBreakInterval int
	// gen identifies the active schedule. Ticks from an older schedule that
	// were already queued when it was cancelled are ignored.
	gen uint64
}

// NewMachine returns a paused machine in work mode.
func NewMachine(
	settings SettingsSource,
	recorder Recorder,
	scheduler Scheduler,
	opts ...Option,
) (*Machine, error) {
	m := &Machine{
		settings:          settings,
		recorder:          recorder,
		scheduler:         scheduler,
		now:               time.Now,
		longBreakInterval: DefaultLongBreakInterval,
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	m.SwitchMode(Work)

	return m, nil
}

// OnTransition registers fn to run after every completed session.
func (m *Machine) OnTransition(fn func(Transition)) {
	m.hooks = append(m.hooks, fn)
}

// State returns a copy of the current state.
func (m *Machine) State() State {
	return m.state
}

// LongBreakInterval is the number of work sessions between long breaks.
func (m *Machine) LongBreakInterval() int {
	return m.longBreakInterval
}

func (m *Machine) duration(mode Mode) int {
	return max(mode.Minutes(m.settings.Settings())*secondsInAMinute, 0)
}

// SwitchMode pauses the timer and loads the full duration of mode.
func (m *Machine) SwitchMode(mode Mode) {
	m.Pause()

	m.state.Mode = mode
	m.state.TimeLeft = m.duration(mode)
}

// Start runs the countdown. It does nothing when already running.
func (m *Machine) Start() {
	if m.state.Running {
		return
	}

	m.state.Running = true

	m.gen++
	gen := m.gen

	m.cancel = m.scheduler.Every(time.Second, func() {
		if m.gen == gen {
			m.Tick()
		}
	})
}

// Pause stops the countdown and keeps the time left.
func (m *Machine) Pause() {
	m.state.Running = false
	m.gen++

	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// Reset pauses the timer and reloads the full duration of the current mode.
func (m *Machine) Reset() {
	m.SwitchMode(m.state.Mode)
}

// Tick advances a running countdown by one second. It reports whether the
// tick completed the session.
func (m *Machine) Tick() (Transition, bool) {
	if !m.state.Running {
		return Transition{}, false
	}

	m.state.TimeLeft = max(m.state.TimeLeft-1, 0)

	if m.state.TimeLeft > 0 {
		return Transition{}, false
	}

	return m.Complete(), true
}

// Complete ends the current session and moves to the next mode. A completed
// work session is recorded and every LongBreakInterval-th one is followed by
// a long break.
func (m *Machine) Complete() Transition {
	m.Pause()

	settings := m.settings.Settings()
	now := m.now()

	tr := Transition{
		At:   now,
		From: m.state.Mode,
	}

	if m.state.Mode == Work {
		m.state.SessionsCompleted++

		if err := m.recorder.RecordPomodoro(settings.WorkDuration, now); err != nil {
			slog.Error(
				"recording pomodoro failed",
				slog.Any("error", err),
			)
		}

		tr.Message = workDoneMessage
		tr.To = ShortBreak

		if m.state.SessionsCompleted%m.longBreakInterval == 0 {
			tr.To = LongBreak
		}
	} else {
		tr.Message = breakDoneMessage
		tr.To = Work
	}

	if settings.NotifBreaks && m.notifier != nil {
		m.notifier.Notify(notificationTitle, tr.Message, settings.NotifSounds)
	}

	tr.SessionsCompleted = m.state.SessionsCompleted

	m.SwitchMode(tr.To)

	slog.Info(
		"session completed",
		slog.String("from", string(tr.From)),
		slog.String("to", string(tr.To)),
		slog.Int("sessions_completed", tr.SessionsCompleted),
	)

	for _, fn := range m.hooks {
		fn(tr)
	}

	return tr
}

// Progress is the fraction of the current mode's duration still remaining,
// from 1 at the start of a session down to 0.
func (m *Machine) Progress() float64 {
	total := m.duration(m.state.Mode)
	if total == 0 {
		return 0
	}

	return min(float64(m.state.TimeLeft)/float64(total), 1)
}
