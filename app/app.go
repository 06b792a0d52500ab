// Package app wires focusflow's command-line interface.
package app

import (
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/focusflow/focusflow/internal/config"
	"github.com/focusflow/focusflow/internal/ui"
)

// cliApp carries what the commands need besides their flags.
type cliApp struct {
	cfg          *config.Config
	open         func() (*Workspace, error)
	confirm      confirmFunc
	editSettings settingsEditor
}

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// withWorkspace opens a workspace for the duration of one command.
func (a *cliApp) withWorkspace(
	fn func(*cli.Context, *Workspace) error,
) cli.ActionFunc {
	return func(ctx *cli.Context) (err error) {
		ws, err := a.open()
		if err != nil {
			return err
		}

		defer func() {
			if cerr := ws.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()

		return fn(ctx, ws)
	}
}

// rmAction deletes a task after confirmation.
func (a *cliApp) rmAction(ctx *cli.Context, ws *Workspace) error {
	id, err := taskID(ctx)
	if err != nil {
		return err
	}

	t, ok := ws.Tasks().Get(id)
	if !ok {
		return errTaskNotFound.Fmt(id)
	}

	if !ctx.Bool(yesFlag.Name) {
		proceed, err := a.confirm(deletePrompt(t))
		if err != nil {
			return err
		}

		if !proceed {
			printInfo(ctx, "Nothing was deleted")
			return nil
		}
	}

	if _, err := ws.Tasks().Delete(id); err != nil {
		return err
	}

	printSuccess(ctx, "Deleted: %s", t.Title)

	return nil
}

// settingsEditAction edits the settings interactively.
func (a *cliApp) settingsEditAction(ctx *cli.Context, ws *Workspace) error {
	s := ws.Settings()

	if err := a.editSettings(&s); err != nil {
		return err
	}

	if err := ws.SaveSettings(s); err != nil {
		return err
	}

	printSuccess(ctx, "Settings saved")

	return nil
}

func beforeAction(cfg *config.Config) cli.BeforeFunc {
	return func(ctx *cli.Context) error {
		// Override the default help template
		cli.AppHelpTemplate = helpText()

		ui.DarkTheme = cfg.Display.DarkTheme

		pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
		pterm.Error.Prefix = pterm.Prefix{
			Text:  "ERROR",
			Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
		}

		// Disable colour output if NO_COLOR is set
		if _, exists := os.LookupEnv(envNoColor); exists {
			disableStyling()
		}

		// Disable colour output if FOCUSFLOW_NO_COLOR is set
		if _, exists := os.LookupEnv(envFocusflowNoColor); exists {
			disableStyling()
		}

		if ctx.Bool(noColorFlag.Name) {
			disableStyling()
		}

		slog.DebugContext(
			ctx.Context,
			"starting focusflow",
			slog.Any("args", ctx.Args().Slice()),
		)

		return nil
	}
}

func afterAction(ctx *cli.Context) error {
	slog.DebugContext(ctx.Context, "exiting focusflow")

	return nil
}

// Get returns the focusflow command-line app backed by the store described
// in cfg.
func Get(cfg *config.Config) *cli.App {
	return newApp(&cliApp{
		cfg: cfg,
		open: func() (*Workspace, error) {
			return Open(cfg)
		},
		confirm:      huhConfirm,
		editSettings: huhSettingsForm,
	})
}

func newApp(a *cliApp) *cli.App {
	return &cli.App{
		Name: "focusflow",
		Usage: `
		focusflow combines a task list, a Pomodoro timer and a local statistics
		dashboard. Everything is stored on this machine.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a task",
				ArgsUsage: "TITLE",
				Flags:     []cli.Flag{categoryFlag, priorityFlag, dueFlag},
				Action:    a.withWorkspace(addAction),
			},
			{
				Name:      "done",
				Usage:     "Mark a task as completed, or reopen a completed task",
				ArgsUsage: "ID",
				Action:    a.withWorkspace(doneAction),
			},
			{
				Name:      "rm",
				Aliases:   []string{"delete"},
				Usage:     "Delete a task",
				ArgsUsage: "ID",
				Flags:     []cli.Flag{yesFlag},
				Action:    a.withWorkspace(a.rmAction),
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List tasks",
				Flags:   []cli.Flag{filterFlag, searchFlag, sortFlag, jsonFlag},
				Action:  a.withWorkspace(listAction),
			},
			{
				Name:   "timer",
				Usage:  "Start the Pomodoro timer",
				Flags:  []cli.Flag{modeFlag, plainFlag},
				Action: a.withWorkspace(timerAction),
			},
			{
				Name:   "stats",
				Usage:  "Show your productivity dashboard",
				Flags:  []cli.Flag{jsonFlag},
				Action: a.withWorkspace(statsAction),
			},
			{
				Name:   "settings",
				Usage:  "Show or change the timer and notification settings",
				Flags:  []cli.Flag{jsonFlag},
				Action: a.withWorkspace(settingsAction),
				Subcommands: []*cli.Command{
					{
						Name:  "set",
						Usage: "Change individual settings",
						Flags: []cli.Flag{
							workFlag,
							shortBreakFlag,
							longBreakFlag,
							notifyBreaksFlag,
							notifyTasksFlag,
							notifySoundsFlag,
						},
						Action: a.withWorkspace(settingsSetAction),
					},
					{
						Name:   "edit",
						Usage:  "Edit the settings interactively",
						Action: a.withWorkspace(a.settingsEditAction),
					},
				},
			},
			{
				Name:   "export",
				Usage:  "Print all tasks, settings and statistics as JSON",
				Action: a.withWorkspace(exportAction),
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction(a.cfg.Path),
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
		},
		Before: beforeAction(a.cfg),
		After:  afterAction,
	}
}
