package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	categoryFlag = &cli.StringFlag{
		Name:    "category",
		Aliases: []string{"c"},
		Usage:   "Task category: work, personal, study or other",
		Value:   "work",
	}

	priorityFlag = &cli.StringFlag{
		Name:    "priority",
		Aliases: []string{"p"},
		Usage:   "Task priority: low, medium or high (or 1, 2, 3)",
		Value:   "medium",
	}

	dueFlag = &cli.StringFlag{
		Name:    "due",
		Aliases: []string{"d"},
		Usage:   "Due date, e.g. 2024-06-01, 'tomorrow' or 'next friday'",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}

	filterFlag = &cli.StringFlag{
		Name:    "filter",
		Aliases: []string{"f"},
		Usage:   "Show all, pending or completed tasks",
		Value:   "all",
	}

	searchFlag = &cli.StringFlag{
		Name:    "search",
		Aliases: []string{"s"},
		Usage:   "Only show tasks whose title contains this text",
	}

	sortFlag = &cli.StringFlag{
		Name:  "sort",
		Usage: "Order tasks by 'created' or 'title'",
		Value: sortCreated,
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	modeFlag = &cli.StringFlag{
		Name:    "mode",
		Aliases: []string{"m"},
		Usage:   "Session to start with: work, short or long",
		Value:   "work",
	}

	plainFlag = &cli.BoolFlag{
		Name:  "plain",
		Usage: "Print a plain countdown instead of the interactive timer",
	}

	workFlag = &cli.IntFlag{
		Name:    "work",
		Aliases: []string{"w"},
		Usage:   "Work duration in minutes",
	}

	shortBreakFlag = &cli.IntFlag{
		Name:    "short-break",
		Aliases: []string{"s"},
		Usage:   "Short break duration in minutes",
	}

	longBreakFlag = &cli.IntFlag{
		Name:    "long-break",
		Aliases: []string{"l"},
		Usage:   "Long break duration in minutes",
	}

	notifyBreaksFlag = &cli.BoolFlag{
		Name:  "notify-breaks",
		Usage: "Notify when a session ends (use --notify-breaks=false to disable)",
	}

	notifyTasksFlag = &cli.BoolFlag{
		Name:  "notify-tasks",
		Usage: "Notify when a task is completed",
	}

	notifySoundsFlag = &cli.BoolFlag{
		Name:  "notify-sounds",
		Usage: "Play a sound with notifications",
	}
)
