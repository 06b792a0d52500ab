package timer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/focusflow/focusflow/internal/timeutil"
)

// RunPlain drives a machine created with loop without the interactive UI.
// The countdown starts immediately and the remaining time is printed every
// second until ctx is cancelled. Completed sessions roll straight into the
// next one.
func RunPlain(ctx context.Context, w io.Writer, m *Machine, loop *LoopScheduler) error {
	m.OnTransition(func(tr Transition) {
		fmt.Fprintf(w, "\n%s\n", tr.Message)
		m.Start()
	})

	printStatus := func() {
		st := m.State()
		fmt.Fprintf(w, "\r%-12s %s", st.Mode.Label(), timeutil.Clock(st.TimeLeft))
	}

	printStatus()
	m.Start()

	stop := loop.Every(time.Second, printStatus)
	defer stop()

	err := loop.Run(ctx)

	m.Pause()
	fmt.Fprintln(w)

	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
