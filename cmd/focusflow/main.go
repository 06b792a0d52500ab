package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/focusflow/focusflow/app"
	"github.com/focusflow/focusflow/internal/config"
	"github.com/focusflow/focusflow/internal/logger"
	"github.com/focusflow/focusflow/internal/pathutil"
)

const envDB = "FOCUSFLOW_DB"

func run(args []string) error {
	paths, err := pathutil.Get()
	if err != nil {
		return err
	}

	cfg, err := config.New(
		config.WithViperConfig(paths.ConfigFile),
		config.WithStorePath(os.Getenv(envDB)),
		config.WithDefaultStorePath(paths.BoltFile, paths.SQLiteFile),
	)
	if err != nil {
		return err
	}

	logPath := cfg.Log.Path
	if logPath == "" {
		logPath = paths.LogFile
	}

	closer, err := logger.Init(cfg.Log, logPath)
	if err != nil {
		return err
	}

	defer closer.Close()

	return app.Get(cfg).Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
