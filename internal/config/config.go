// Package config handles configuration management using Viper
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/wayseat/wayseat/internal/xkb"
)

// Config represents the application configuration
type Config struct {
	// Input device configuration
	Input InputConfig `mapstructure:"input"`

	// Logging configuration
	Logging LoggingConfig `mapstructure:"logging"`
}

// InputConfig contains input-layer settings. The five xkb_* fields
// override the XKB_DEFAULT_* environment variables when non-empty.
type InputConfig struct {
	DeviceDir  string `mapstructure:"device_dir"`
	XKBRules   string `mapstructure:"xkb_rules"`
	XKBModel   string `mapstructure:"xkb_model"`
	XKBLayout  string `mapstructure:"xkb_layout"`
	XKBVariant string `mapstructure:"xkb_variant"`
	XKBOptions string `mapstructure:"xkb_options"`
}

// RuleNames merges the configured keymap settings over the environment:
// empty config fields defer to XKB_DEFAULT_*, read at call time.
func (c InputConfig) RuleNames() xkb.RuleNames {
	names := xkb.RuleNamesFromEnv()
	if c.XKBRules != "" {
		names.Rules = c.XKBRules
	}
	if c.XKBModel != "" {
		names.Model = c.XKBModel
	}
	if c.XKBLayout != "" {
		names.Layout = c.XKBLayout
	}
	if c.XKBVariant != "" {
		names.Variant = c.XKBVariant
	}
	if c.XKBOptions != "" {
		names.Options = c.XKBOptions
	}
	return names
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"` // Override LOG_LEVEL env var
}

var (
	// DefaultConfig provides sensible defaults
	DefaultConfig = Config{
		Input: InputConfig{
			DeviceDir: "/dev/input",
		},
		Logging: LoggingConfig{
			LogLevel: "", // Empty means use LOG_LEVEL env var
		},
	}

	// Global config instance
	cfg *Config

	// Override config path if set
	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init initializes the configuration system
func Init() error {
	viper.SetConfigName("wayseat")
	viper.SetConfigType("toml")

	// If a specific path is set, use only that
	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		viper.AddConfigPath("/etc/wayseat")
		if home := os.Getenv("HOME"); home != "" {
			viper.AddConfigPath(filepath.Join(home, ".config", "wayseat"))
		}
		viper.AddConfigPath(".")
	}

	// Set defaults - need to set individual fields for proper merging
	viper.SetDefault("input.device_dir", DefaultConfig.Input.DeviceDir)
	viper.SetDefault("input.xkb_rules", DefaultConfig.Input.XKBRules)
	viper.SetDefault("input.xkb_model", DefaultConfig.Input.XKBModel)
	viper.SetDefault("input.xkb_layout", DefaultConfig.Input.XKBLayout)
	viper.SetDefault("input.xkb_variant", DefaultConfig.Input.XKBVariant)
	viper.SetDefault("input.xkb_options", DefaultConfig.Input.XKBOptions)
	viper.SetDefault("logging.log_level", DefaultConfig.Logging.LogLevel)

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, use defaults
	}

	// Unmarshal config
	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return nil
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		// Return defaults if not initialized
		return &DefaultConfig
	}
	return cfg
}

// Set sets the current configuration (for testing)
func Set(c *Config) {
	cfg = c
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	if configPathOverride != "" {
		return configPathOverride
	}
	if viper.ConfigFileUsed() != "" {
		return viper.ConfigFileUsed()
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "/etc/wayseat/wayseat.toml"
	}
	return filepath.Join(home, ".config", "wayseat", "wayseat.toml")
}
