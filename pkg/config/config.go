package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Text        string        `mapstructure:"text"`
	Color       string        `mapstructure:"color"`
	Channel     string        `mapstructure:"channel"`
	Chat        bool          `mapstructure:"chat"`
	HideTimer   bool          `mapstructure:"hide_timer"`
	ProgressBar bool          `mapstructure:"progress_bar"`
	Padding     int           `mapstructure:"padding"`
	SongDisplay bool          `mapstructure:"song_display"`
	SongCommand string        `mapstructure:"song_command"`
	ChatLimit   int           `mapstructure:"chat_limit"`
	Hooks       HooksConfig   `mapstructure:"hooks"`
	Logging     LoggingConfig `mapstructure:"logging"`
}

// HooksConfig holds the ordered hook command lists
type HooksConfig struct {
	Start          []string `mapstructure:"start"`
	Exit           []string `mapstructure:"exit"`
	TimeoutSeconds int      `mapstructure:"timeout_seconds"`
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	LogFile  string `mapstructure:"log_file"`
	Preserve bool   `mapstructure:"preserve"`
	Level    string `mapstructure:"level"`
}

// Global config instance
var cfg *Config

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		panic("config not initialized")
	}
	return cfg
}

// Load loads configuration from file, environment and bound flags.
// Precedence is flag > environment > config file > default.
func Load(cfgFile string) (*Config, error) {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		viper.AddConfigPath(dir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("brb")
	}

	viper.SetEnvPrefix("BRB")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// An explicitly requested file must exist; only the default
		// lookup path may be absent, in which case defaults apply.
		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config %s: %w", cfgFile, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Dir returns the directory the config file is looked up in.
func Dir() (string, error) {
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		xdgConfigHome = filepath.Join(home, ".config")
	}
	return filepath.Join(xdgConfigHome, "brb"), nil
}

// BuildSettingsPath resolves a filename relative to the config directory.
func BuildSettingsPath(filename string) string {
	dir, err := Dir()
	if err != nil {
		return filename
	}
	return filepath.Join(dir, filename)
}

func setDefaults() {
	viper.SetDefault("text", "Be right back")
	viper.SetDefault("color", "white")
	viper.SetDefault("chat", false)
	viper.SetDefault("hide_timer", false)
	viper.SetDefault("progress_bar", true)
	viper.SetDefault("padding", 1)
	viper.SetDefault("song_display", false)
	viper.SetDefault("song_command", "sc current")
	viper.SetDefault("chat_limit", 100)

	viper.SetDefault("hooks.start", []string{})
	viper.SetDefault("hooks.exit", []string{})
	viper.SetDefault("hooks.timeout_seconds", 10)

	viper.SetDefault("logging.log_file", "brb.log")
	viper.SetDefault("logging.preserve", false)
	viper.SetDefault("logging.level", "info")
}
