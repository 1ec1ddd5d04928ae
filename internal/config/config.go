package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Log       LogConfig       `mapstructure:"log"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Study     StudyConfig     `mapstructure:"study"`
}

// DatabaseConfig holds the SQLite database location.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SchedulerConfig holds the owner-level scheduling knobs.
type SchedulerConfig struct {
	// Algorithm is "modern" or "classic".
	Algorithm string `mapstructure:"algorithm"`
	// TargetRetention is the retention aimed for at the next review.
	TargetRetention float64 `mapstructure:"target_retention"`
	// FocusMode shortens the learning-step ladder for cram sessions.
	FocusMode bool `mapstructure:"focus_mode"`
}

// StudyConfig holds session-shaping knobs.
type StudyConfig struct {
	// Interleave alternates categories between consecutive cards.
	Interleave bool `mapstructure:"interleave"`
}

// Load reads configuration from file and environment variables. Environment
// variables use the BAEUM_ prefix, e.g. BAEUM_SCHEDULER_ALGORITHM.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("baeum")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "baeum"))
	}

	setDefaults(v)

	v.SetEnvPrefix("BAEUM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", defaultDatabasePath())

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("scheduler.algorithm", "modern")
	v.SetDefault("scheduler.target_retention", 0.90)
	v.SetDefault("scheduler.focus_mode", false)

	v.SetDefault("study.interleave", true)
}

func defaultDatabasePath() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "baeum.db"
	}
	return filepath.Join(dir, ".baeum", "baeum.db")
}
