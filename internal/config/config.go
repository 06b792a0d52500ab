// Package config loads focusflow's configuration file.
package config

type (
	// Config holds all configuration settings.
	Config struct {
		Store   StoreConfig   `mapstructure:"store"`
		Log     LogConfig     `mapstructure:"log"`
		Display DisplayConfig `mapstructure:"display"`
		Timer   TimerConfig   `mapstructure:"timer"`
		// Path is the file the configuration was read from.
		Path string `mapstructure:"-"`
	}

	// StoreConfig selects the persistence backend.
	StoreConfig struct {
		Driver string `mapstructure:"driver" validate:"oneof=bolt sqlite"`
		// Path overrides the default database location when set.
		Path string `mapstructure:"path"`
	}

	// LogConfig controls the rotating log file.
	LogConfig struct {
		Level      string `mapstructure:"level"       validate:"oneof=debug info warn error"`
		Path       string `mapstructure:"path"`
		MaxSize    int    `mapstructure:"max_size"    validate:"gte=1"`
		MaxBackups int    `mapstructure:"max_backups" validate:"gte=0"`
	}

	// TimerConfig holds timer behaviour that is not part of the user's
	// settings document.
	TimerConfig struct {
		SessionCmd        string `mapstructure:"session_cmd"`
		LongBreakInterval int    `mapstructure:"long_break_interval" validate:"gte=1,lte=12"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
)

// New creates a new Config, applies opts in order and validates the result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// WithStorePath overrides the database location.
func WithStorePath(path string) Option {
	return func(c *Config) error {
		if path != "" {
			c.Store.Path = path
		}

		return nil
	}
}

// WithDefaultStorePath fills in the database location for the configured
// driver when the config file leaves it empty.
func WithDefaultStorePath(boltPath, sqlitePath string) Option {
	return func(c *Config) error {
		if c.Store.Path != "" {
			return nil
		}

		c.Store.Path = boltPath
		if c.Store.Driver == DriverSQLite {
			c.Store.Path = sqlitePath
		}

		return nil
	}
}
