// Package pathutil resolves the locations of focusflow's files.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const (
	appDir = "focusflow"
	envKey = "FOCUSFLOW_ENV"
)

// Paths holds the absolute locations of the files focusflow reads and
// writes.
type Paths struct {
	ConfigFile string
	BoltFile   string
	SQLiteFile string
	LogFile    string
}

var (
	paths   *Paths
	once    sync.Once
	initErr error
)

// Get resolves the paths on first use and returns them.
func Get() (*Paths, error) {
	once.Do(func() {
		paths, initErr = resolve(strings.TrimSpace(os.Getenv(envKey)))
	})

	return paths, initErr
}

// fileName appends the environment suffix (if any) to a base name, so that
// FOCUSFLOW_ENV=dev yields config_dev.yml and friends.
func fileName(base, ext, env string) string {
	if env == "" {
		return base + ext
	}

	return fmt.Sprintf("%s_%s%s", base, env, ext)
}

func resolve(env string) (*Paths, error) {
	configFile, err := xdg.ConfigFile(
		filepath.Join(appDir, fileName("config", ".yml", env)),
	)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}

	dataDir, err := xdg.DataFile(appDir)
	if err != nil {
		return nil, fmt.Errorf("resolving data dir: %w", err)
	}

	return &Paths{
		ConfigFile: configFile,
		BoltFile:   filepath.Join(dataDir, fileName("focusflow", ".db", env)),
		SQLiteFile: filepath.Join(dataDir, fileName("focusflow", ".sqlite", env)),
		LogFile: filepath.Join(
			dataDir,
			"log",
			fileName("focusflow", ".log", env),
		),
	}, nil
}
