package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Task     TaskConfig     `mapstructure:"task"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// RedisConfig contains settings for the word-lookup cache. An empty Addr
// disables the cache entirely; lookups then always go to the database.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"       validate:"gte=0,lte=15"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// TaskConfig contains settings for the background task runner that
// persists translation requests.
type TaskConfig struct {
	WorkerCount int `mapstructure:"worker_count" validate:"gte=1,lte=32"`
	QueueSize   int `mapstructure:"queue_size"   validate:"gte=1"`
}
