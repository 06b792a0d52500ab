package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusflow/focusflow/internal/config"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig(path string) *config.Config {
	return &config.Config{
		Store: config.StoreConfig{
			Driver: config.DriverBolt,
		},
		Log: config.LogConfig{
			Level:      "info",
			MaxSize:    5,
			MaxBackups: 3,
		},
		Timer: config.TimerConfig{
			LongBreakInterval: 4,
		},
		Display: config.DisplayConfig{
			DarkTheme: true,
		},
		Path: path,
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(configPath), cfg)
	assert.FileExists(t, configPath)

	// the written file must load back to the same values
	again, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	modified := `store:
  driver: sqlite
  path: /tmp/flow.sqlite
log:
  level: debug
timer:
  long_break_interval: 6
  session_cmd: notify-send done
display:
  dark_theme: false
  24hr_clock: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(modified), 0o600))

	want := defaultConfig(configPath)
	want.Store = config.StoreConfig{Driver: config.DriverSQLite, Path: "/tmp/flow.sqlite"}
	want.Log.Level = "debug"
	want.Timer = config.TimerConfig{LongBreakInterval: 6, SessionCmd: "notify-send done"}
	want.Display = config.DisplayConfig{DarkTheme: false, TwentyFourHour: true}

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, want, cfg)
}

func TestValidationRejectsUnknownDriver(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	require.NoError(
		t,
		os.WriteFile(configPath, []byte("store:\n  driver: postgres\n"), 0o600),
	)

	_, err := config.New(config.WithViperConfig(configPath))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config.Store.Driver")
}

func TestWithStorePath(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
		config.WithStorePath("/data/custom.db"),
	)
	require.NoError(t, err)

	assert.Equal(t, "/data/custom.db", cfg.Store.Path)
}

func TestCorruptConfigFails(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	require.NoError(t, os.WriteFile(configPath, []byte("store: [\n"), 0o600))

	_, err := config.New(config.WithViperConfig(configPath))
	assert.Error(t, err)
}

func TestWithDefaultStorePath(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"bolt default", "", "/data/focusflow.db"},
		{"sqlite", "store:\n  driver: sqlite\n", "/data/focusflow.sqlite"},
		{"explicit path wins", "store:\n  path: /srv/mine.db\n", "/srv/mine.db"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yml")

			if tc.yaml != "" {
				require.NoError(t, os.WriteFile(configPath, []byte(tc.yaml), 0o600))
			}

			cfg, err := config.New(
				config.WithViperConfig(configPath),
				config.WithDefaultStorePath("/data/focusflow.db", "/data/focusflow.sqlite"),
			)
			require.NoError(t, err)

			assert.Equal(t, tc.want, cfg.Store.Path)
		})
	}
}
