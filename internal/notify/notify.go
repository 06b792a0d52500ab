// Package notify delivers desktop notifications and an audible chime.
package notify

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate    beep.SampleRate = 44100
	chimeFreq                     = 880.0
	chimeDuration                 = 300 * time.Millisecond
	// quieter than full scale
	chimeGain = -0.6
)

// Option configures a Desktop notifier.
type Option func(*Desktop)

// WithSender replaces beeep.Notify.
func WithSender(fn func(title, message, icon string) error) Option {
	return func(d *Desktop) {
		d.send = fn
	}
}

// WithPlayer replaces the synthesised chime.
func WithPlayer(fn func() error) Option {
	return func(d *Desktop) {
		d.play = fn
	}
}

// Desktop shows notifications through the operating system's notification
// service. Failures are logged and never returned.
type Desktop struct {
	send     func(title, message, icon string) error
	play     func() error
	icon     string
	initOnce sync.Once
	initErr  error
}

// NewDesktop returns a notifier that uses the focusflow icon when one is
// installed in the data directory.
func NewDesktop(opts ...Option) *Desktop {
	// icon is empty when the file is not found
	icon, _ := xdg.SearchDataFile(filepath.Join("focusflow", "icon.png"))

	d := &Desktop{
		send: beeep.Notify,
		icon: icon,
	}

	d.play = d.chime

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Notify shows message and, when sound is set, plays a short chime.
func (d *Desktop) Notify(title, message string, sound bool) {
	if err := d.send(title, message, d.icon); err != nil {
		slog.Warn(
			"unable to display notification",
			slog.Any("error", err),
		)
	}

	if !sound {
		return
	}

	if err := d.play(); err != nil {
		slog.Warn(
			"unable to play sound",
			slog.Any("error", err),
		)
	}
}

// chime plays a short sine tone. The speaker is initialised on first use and
// playback does not block.
func (d *Desktop) chime() error {
	d.initOnce.Do(func() {
		//nolint:gomnd // buffer a tenth of a second
		d.initErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})

	if d.initErr != nil {
		return d.initErr
	}

	tone, err := generators.SineTone(sampleRate, chimeFreq)
	if err != nil {
		return err
	}

	speaker.Play(&effects.Gain{
		Streamer: beep.Take(sampleRate.N(chimeDuration), tone),
		Gain:     chimeGain,
	})

	return nil
}
