package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Report modes.
const (
	ModeAppend    = "append"
	ModeOverwrite = "overwrite"
)

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the sysexplorer configuration.
type Config struct {
	OutputFile         string `mapstructure:"output_file"`
	ReportMode         string `mapstructure:"report_mode"`
	Format             string `mapstructure:"format"`
	Snapshot           string `mapstructure:"snapshot"`
	IncludeEnvironment bool   `mapstructure:"include_environment"`
	StatsTemplate      string `mapstructure:"stats_template"`
	LogLevel           string `mapstructure:"log_level"`
	LogFormat          string `mapstructure:"log_format"`
	EventLog           bool   `mapstructure:"event_log"`
	SentryDSN          string `mapstructure:"sentry_dsn"`
	SentryEnvironment  string `mapstructure:"sentry_environment"`
}

// Load reads configuration from an optional .env file, the config file and
// SYSEXPLORER_* environment variables, in increasing precedence.
func Load(cfgFile string) (*Config, error) {
	// A missing .env is the common case.
	_ = godotenv.Load()

	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("sysexplorer")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "sysexplorer"))
		}
	}

	v.SetDefault("output_file", "devices.txt")
	v.SetDefault("report_mode", ModeAppend)
	v.SetDefault("format", FormatText)
	v.SetDefault("snapshot", "")
	v.SetDefault("include_environment", false)
	v.SetDefault("stats_template", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")
	v.SetDefault("event_log", false)
	v.SetDefault("sentry_dsn", "")
	v.SetDefault("sentry_environment", "")

	v.SetEnvPrefix("SYSEXPLORER")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	c.ReportMode = strings.ToLower(c.ReportMode)
	c.Format = strings.ToLower(c.Format)
	switch c.ReportMode {
	case ModeAppend, ModeOverwrite:
	default:
		return fmt.Errorf("report_mode %q: want %s or %s", c.ReportMode, ModeAppend, ModeOverwrite)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("format %q: want %s or %s", c.Format, FormatText, FormatJSON)
	}
	return nil
}
