// Package config provides configuration loading, validation, and management
// for the decode pipeline service. It handles reading from YAML files,
// setting default values, and validating configuration parameters.
package config

import (
	"time"
)

// Config defines the application configuration parameters for all
// components: logging, the MTProto session, the archive database, the
// message cache, reply resolution and scheduled maintenance.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Decoder   DecoderConfig   `mapstructure:"decoder"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// LoggerConfig controls log output.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelegramConfig holds the MTProto API credentials and session location.
type TelegramConfig struct {
	APIID       int    `mapstructure:"api_id"   validate:"required,gt=0"`
	APIHash     string `mapstructure:"api_hash" validate:"required"`
	Phone       string `mapstructure:"phone"`
	Password    string `mapstructure:"password"`
	SessionPath string `mapstructure:"session_path" validate:"required"`
}

// DatabaseConfig holds the message archive settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// CacheConfig bounds the in-process message cache.
type CacheConfig struct {
	MaxEntries int           `mapstructure:"max_entries" validate:"gt=0"`
	TTL        time.Duration `mapstructure:"ttl"         validate:"gt=0"`
}

// DecoderConfig tunes the decode pipeline.
type DecoderConfig struct {
	// ReplyDepth bounds recursive reply resolution per decoded message.
	ReplyDepth int `mapstructure:"reply_depth" validate:"min=0,max=5"`
}

// SchedulerConfig maps task names to their schedules.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks"`
}

// TaskConfig configures one scheduled maintenance task.
type TaskConfig struct {
	Schedule string `mapstructure:"schedule" validate:"required"`
	Enabled  bool   `mapstructure:"enabled"`
}
