package timer

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Scheduler runs a function repeatedly until the returned cancel function is
// called. Implementations must invoke fn on the goroutine that owns the
// Machine.
type Scheduler interface {
	Every(d time.Duration, fn func()) (cancel func())
}

// LoopScheduler is driven by time.Ticker. Due jobs are queued and executed
// by Run on the caller's goroutine.
type LoopScheduler struct {
	jobs chan func()
}

// NewLoopScheduler returns an idle LoopScheduler.
func NewLoopScheduler() *LoopScheduler {
	return &LoopScheduler{
		jobs: make(chan func()),
	}
}

// Every implements Scheduler.
func (l *LoopScheduler) Every(d time.Duration, fn func()) func() {
	ticker := time.NewTicker(d)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				select {
				case l.jobs <- fn:
				case <-done:
					return
				}
			}
		}
	}()

	var once sync.Once

	return func() {
		once.Do(func() {
			close(done)
		})
	}
}

// Run executes due jobs until ctx is done.
func (l *LoopScheduler) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.jobs:
			fn()
		}
	}
}

// tickMsg is delivered by bubbletea when a scheduled job is due.
type tickMsg struct {
	id int
}

type job struct {
	fn func()
	d  time.Duration
}

// ProgramScheduler schedules jobs as bubbletea commands so that they run
// inside the program's Update loop. Each job is tagged with an id and ticks
// for cancelled ids are dropped on arrival.
type ProgramScheduler struct {
	jobs    map[int]job
	pending []tea.Cmd
	next    int
}

// NewProgramScheduler returns an idle ProgramScheduler.
func NewProgramScheduler() *ProgramScheduler {
	return &ProgramScheduler{
		jobs: make(map[int]job),
	}
}

func (p *ProgramScheduler) tick(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

// Every implements Scheduler. The first tick is only armed once the
// command returned by Cmd is handed to bubbletea.
func (p *ProgramScheduler) Every(d time.Duration, fn func()) func() {
	p.next++
	id := p.next

	p.jobs[id] = job{fn: fn, d: d}
	p.pending = append(p.pending, p.tick(id, d))

	return func() {
		delete(p.jobs, id)
	}
}

// Cmd drains the ticks armed since the last call.
func (p *ProgramScheduler) Cmd() tea.Cmd {
	cmds := p.pending
	p.pending = nil

	return tea.Batch(cmds...)
}

// Handle runs the job a tick belongs to and re-arms it, unless the job was
// cancelled in the meantime.
func (p *ProgramScheduler) Handle(msg tickMsg) tea.Cmd {
	j, ok := p.jobs[msg.id]
	if !ok {
		return nil
	}

	j.fn()

	if _, ok := p.jobs[msg.id]; !ok {
		return p.Cmd()
	}

	return tea.Batch(p.tick(msg.id, j.d), p.Cmd())
}
