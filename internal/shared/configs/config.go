package configs

// Config holds all configuration for the application.
type Config struct {
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Log        LogConfig        `mapstructure:"log" validate:"required"`
	Mongo      MongoConfig      `mapstructure:"mongo" validate:"required"`
	Fallback   FallbackConfig   `mapstructure:"fallback" validate:"required"`
	Ingestion  IngestionConfig  `mapstructure:"ingestion" validate:"required"`
	Insights   InsightsConfig   `mapstructure:"insights" validate:"required"`
	Scheduler  SchedulerConfig  `mapstructure:"scheduler"`
	Reconciler ReconcilerConfig `mapstructure:"reconciler" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// MongoConfig holds the primary document store configuration.
type MongoConfig struct {
	URI      string `mapstructure:"uri" validate:"required"`
	Database string `mapstructure:"database" validate:"required"`
}

// FallbackConfig holds the durable overflow sink configuration.
type FallbackConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// IngestionConfig holds event ingestion configuration.
type IngestionConfig struct {
	DedupCapacity int `mapstructure:"dedup_capacity" validate:"required,min=100"`
}

// InsightsConfig holds fleet-run pacing configuration.
type InsightsConfig struct {
	BatchSize    int `mapstructure:"batch_size" validate:"required,min=1"`
	BatchDelayMS int `mapstructure:"batch_delay_ms" validate:"min=0"`
}

// SchedulerConfig holds the periodic recomputation configuration.
type SchedulerConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// ReconcilerConfig holds the fallback replay sweep configuration.
type ReconcilerConfig struct {
	IntervalMinutes int `mapstructure:"interval_minutes" validate:"required,min=1"`
}
