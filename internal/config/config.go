package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"      validate:"required"`
	SRS      SRSConfig      `mapstructure:"srs"      validate:"required"`
	Batch    BatchConfig    `mapstructure:"batch"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret                   string `mapstructure:"jwt_secret"                     validate:"required,min=32"`
	TokenLifetimeMinutes        int    `mapstructure:"token_lifetime_minutes"         validate:"required,gt=0"`
	RefreshTokenLifetimeMinutes int    `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gt=0"`
}

// LLMConfig contains settings for the question generation collaborator.
type LLMConfig struct {
	GeminiAPIKey      string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName         string `mapstructure:"model_name"     validate:"required"`
	MaxRetries        int    `mapstructure:"max_retries"        validate:"gte=0"`
	RetryDelaySeconds int    `mapstructure:"retry_delay_seconds" validate:"gte=0"`
}

// SRSConfig carries the tunable scheduling parameters. They are mapped
// into an immutable srs.Params at startup and injected into the engine;
// nothing reads them as globals.
type SRSConfig struct {
	// RetentionThreshold is the minimum acceptable recall probability
	// before a word must be re-shown.
	RetentionThreshold float64 `mapstructure:"retention_threshold" validate:"required,gt=0,lt=1"`

	// GracePeriodHours is the delay between saving a word and its first
	// scheduled exposure.
	GracePeriodHours int `mapstructure:"grace_period_hours" validate:"required,gt=0"`

	// TailHalvingDays halves the slowest decay rate once per period for
	// very mature memories.
	TailHalvingDays int `mapstructure:"tail_halving_days" validate:"required,gt=0"`
}

// BatchConfig contains settings for priority batch assembly.
type BatchConfig struct {
	// MaxSize is the server-side clamp on requested batch sizes.
	MaxSize int `mapstructure:"max_size" validate:"required,gt=0"`

	// EverydayBundle names the fallback bundle sampled by the third
	// assembly tier.
	EverydayBundle string `mapstructure:"everyday_bundle" validate:"required"`
}
