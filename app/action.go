package app

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/focusflow/focusflow/internal/apperr"
	"github.com/focusflow/focusflow/internal/models"
	"github.com/focusflow/focusflow/tasks"
	"github.com/focusflow/focusflow/timer"
)

const (
	envNoColor          = "NO_COLOR"
	envFocusflowNoColor = "FOCUSFLOW_NO_COLOR"

	sortCreated = "created"
	sortTitle   = "title"
)

var (
	errEmptyTitle = &apperr.Error{
		Message: "a task needs a title",
	}

	errMissingID = &apperr.Error{
		Message: "a task id is required (see 'focusflow list')",
	}

	errInvalidID = &apperr.Error{
		Message: "%q is not a valid task id",
	}

	errTaskNotFound = &apperr.Error{
		Message: "no task with id %d",
	}

	errUnknownSort = &apperr.Error{
		Message: "unknown sort order %q (expected created or title)",
	}
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func taskID(ctx *cli.Context) (int64, error) {
	arg := ctx.Args().First()
	if arg == "" {
		return 0, errMissingID
	}

	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, errInvalidID.Fmt(arg)
	}

	return id, nil
}

func printSuccess(ctx *cli.Context, format string, a ...any) {
	fmt.Fprintln(ctx.App.Writer, pterm.Success.Sprintf(format, a...))
}

func printInfo(ctx *cli.Context, a ...any) {
	fmt.Fprintln(ctx.App.Writer, pterm.Info.Sprint(a...))
}

// addAction handles the add command which appends a new task.
func addAction(ctx *cli.Context, ws *Workspace) error {
	title := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
	if title == "" {
		return errEmptyTitle
	}

	category, err := models.ParseCategory(ctx.String(categoryFlag.Name))
	if err != nil {
		return err
	}

	priority, err := models.ParsePriority(ctx.String(priorityFlag.Name))
	if err != nil {
		return err
	}

	due, err := parseDueDate(ctx.String(dueFlag.Name), ws.now())
	if err != nil {
		return err
	}

	t, err := ws.Tasks().Add(title, category, priority, due)
	if err != nil {
		return err
	}

	printSuccess(ctx, "Added task %d: %s", t.ID, t.Title)

	return nil
}

// doneAction handles the done command which toggles a task's completion.
func doneAction(ctx *cli.Context, ws *Workspace) error {
	id, err := taskID(ctx)
	if err != nil {
		return err
	}

	t, ok, err := ws.ToggleTask(id)
	if err != nil {
		return err
	}

	if !ok {
		return errTaskNotFound.Fmt(id)
	}

	if t.Completed {
		printSuccess(ctx, "Completed: %s", t.Title)
	} else {
		printInfo(ctx, "Reopened: "+t.Title)
	}

	return nil
}

// listAction handles the list command and prints a table of tasks.
func listAction(ctx *cli.Context, ws *Workspace) error {
	filter, err := models.ParseFilter(ctx.String(filterFlag.Name))
	if err != nil {
		return err
	}

	list := ws.Tasks().Filtered(filter, ctx.String(searchFlag.Name))

	switch ctx.String(sortFlag.Name) {
	case sortCreated, "":
	case sortTitle:
		tasks.SortByTitle(list)
	default:
		return errUnknownSort.Fmt(ctx.String(sortFlag.Name))
	}

	if ctx.Bool(jsonFlag.Name) {
		b, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(ctx.App.Writer, string(b))

		return nil
	}

	if len(list) == 0 {
		printInfo(ctx, noTasksMsg)
		return nil
	}

	printTasksTable(ctx.App.Writer, list)

	return nil
}

// statsAction prints the dashboard.
func statsAction(ctx *cli.Context, ws *Workspace) error {
	d := ws.Dashboard()

	if ctx.Bool(jsonFlag.Name) {
		b, err := d.ToJSON()
		if err != nil {
			return err
		}

		fmt.Fprintln(ctx.App.Writer, string(b))

		return nil
	}

	return renderDashboard(ctx.App.Writer, d, ws.Tasks().Pending(upNextLimit))
}

// settingsAction prints the current settings.
func settingsAction(ctx *cli.Context, ws *Workspace) error {
	if ctx.Bool(jsonFlag.Name) {
		b, err := json.MarshalIndent(ws.Settings(), "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(ctx.App.Writer, string(b))

		return nil
	}

	printSettings(ctx.App.Writer, ws.Settings())

	return nil
}

// settingsSetAction updates the settings named on the command line.
func settingsSetAction(ctx *cli.Context, ws *Workspace) error {
	s := ws.Settings()

	if ctx.IsSet(workFlag.Name) {
		s.WorkDuration = ctx.Int(workFlag.Name)
	}

	if ctx.IsSet(shortBreakFlag.Name) {
		s.ShortBreakDuration = ctx.Int(shortBreakFlag.Name)
	}

	if ctx.IsSet(longBreakFlag.Name) {
		s.LongBreakDuration = ctx.Int(longBreakFlag.Name)
	}

	if ctx.IsSet(notifyBreaksFlag.Name) {
		s.NotifBreaks = ctx.Bool(notifyBreaksFlag.Name)
	}

	if ctx.IsSet(notifyTasksFlag.Name) {
		s.NotifTasks = ctx.Bool(notifyTasksFlag.Name)
	}

	if ctx.IsSet(notifySoundsFlag.Name) {
		s.NotifSounds = ctx.Bool(notifySoundsFlag.Name)
	}

	if err := ws.SaveSettings(s); err != nil {
		return err
	}

	printSuccess(ctx, "Settings saved")

	return nil
}

// exportAction writes every document as JSON.
func exportAction(ctx *cli.Context, ws *Workspace) error {
	return ws.Export(ctx.App.Writer)
}

// timerAction runs the Pomodoro timer until the user quits.
func timerAction(ctx *cli.Context, ws *Workspace) error {
	mode, err := timer.ParseMode(ctx.String(modeFlag.Name))
	if err != nil {
		return err
	}

	if ctx.Bool(plainFlag.Name) {
		loop := timer.NewLoopScheduler()

		m, err := ws.NewMachine(loop)
		if err != nil {
			return err
		}

		m.SwitchMode(mode)

		sigCtx, stop := signal.NotifyContext(
			ctx.Context,
			os.Interrupt,
			syscall.SIGTERM,
		)
		defer stop()

		return timer.RunPlain(sigCtx, ctx.App.Writer, m, loop)
	}

	scheduler := timer.NewProgramScheduler()

	m, err := ws.NewMachine(scheduler)
	if err != nil {
		return err
	}

	m.SwitchMode(mode)

	p := tea.NewProgram(
		timer.NewModel(m, scheduler, ws.cfg.Display.TwentyFourHour),
		tea.WithContext(ctx.Context),
	)

	_, err = p.Run()

	return err
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(configPath string) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		defaultEditor := "nano"

		if runtime.GOOS == "windows" {
			defaultEditor = "C:\\Windows\\system32\\notepad.exe"
		}

		editor := firstNonEmptyString(
			os.Getenv("VISUAL"),
			os.Getenv("EDITOR"),
			defaultEditor,
		)

		cmd := exec.Command(editor, configPath)

		cmd.Stderr = os.Stderr
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout

		return cmd.Run()
	}
}
