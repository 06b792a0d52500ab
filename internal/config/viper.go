package config

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

const (
	keyStoreDriver       = "store.driver"
	keyStorePath         = "store.path"
	keyLogLevel          = "log.level"
	keyLogPath           = "log.path"
	keyLogMaxSize        = "log.max_size"
	keyLogMaxBackups     = "log.max_backups"
	keyLongBreakInterval = "timer.long_break_interval"
	keySessionCmd        = "timer.session_cmd"
	keyDarkTheme         = "display.dark_theme"
	keyTwentyFourHour    = "display.24hr_clock"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. The file is created with default values when missing.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return errReadConfig.Wrap(err)
			}

			if err := v.WriteConfigAs(configPath); err != nil {
				return errWriteConfig.Wrap(err)
			}
		}

		if err := v.Unmarshal(c); err != nil {
			return errReadConfig.Wrap(err)
		}

		c.Path = configPath

		return nil
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyStoreDriver, DriverBolt)
	v.SetDefault(keyStorePath, "")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogPath, "")
	v.SetDefault(keyLogMaxSize, 5)
	v.SetDefault(keyLogMaxBackups, 3)
	v.SetDefault(keyLongBreakInterval, 4)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
}
