package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Blob      BlobConfig      `yaml:"blob"`
	Signing   SigningConfig   `yaml:"signing"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Vision    VisionConfig    `yaml:"vision"`
	Speech    SpeechConfig    `yaml:"speech"`
	Anthropic AnthropicConfig `yaml:"anthropic"`
	Gemini    GeminiConfig    `yaml:"gemini"`
	Ledger    LedgerConfig    `yaml:"ledger"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig selects and configures the persistence backend.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"             env:"DATABASE_DRIVER"             env-default:"sqlite"`
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	SQLitePath      string        `yaml:"sqlite_path"        env:"DATABASE_SQLITE_PATH"        env-default:"./data/ecovoice.db"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// BlobConfig describes the object store holding uploads.
type BlobConfig struct {
	RootDir string `yaml:"root_dir" env:"BLOB_ROOT_DIR" env-default:"./data/blobs"`

	// PublicBaseURL is the externally reachable origin used in signed read URLs.
	PublicBaseURL  string `yaml:"public_base_url"  env:"BLOB_PUBLIC_BASE_URL"  env-default:"http://localhost:8080"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes" env:"BLOB_MAX_UPLOAD_BYTES" env-default:"26214400"`
}

// SigningConfig holds the key material for transient read handles.
type SigningConfig struct {
	Secret  string        `yaml:"secret"   env:"SIGNING_SECRET"`
	Issuer  string        `yaml:"issuer"   env:"SIGNING_ISSUER"   env-default:"ecovoice"`
	ReadTTL time.Duration `yaml:"read_ttl" env:"SIGNING_READ_TTL" env-default:"1h"`
}

// Supported model providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// ScoringConfig holds the advice/score request parameters.
type ScoringConfig struct {
	Provider        string        `yaml:"provider"          env:"SCORING_PROVIDER"          env-default:"anthropic"`
	Model           string        `yaml:"model"             env:"SCORING_MODEL"             env-default:"claude-haiku-4-5"`
	Temperature     float64       `yaml:"temperature"       env:"SCORING_TEMPERATURE"       env-default:"0.7"`
	TopP            float64       `yaml:"top_p"             env:"SCORING_TOP_P"             env-default:"0.95"`
	MaxOutputTokens int           `yaml:"max_output_tokens" env:"SCORING_MAX_OUTPUT_TOKENS" env-default:"400"`
	Timeout         time.Duration `yaml:"timeout"           env:"SCORING_TIMEOUT"           env-default:"30s"`
}

// VisionConfig configures image description. Gemini receives the image
// bytes inline; Anthropic fetches the signed URL itself, so it needs a
// publicly reachable blob.public_base_url.
type VisionConfig struct {
	Provider        string        `yaml:"provider"          env:"VISION_PROVIDER"          env-default:"gemini"`
	Model           string        `yaml:"model"             env:"VISION_MODEL"             env-default:"gemini-2.5-flash"`
	MaxOutputTokens int           `yaml:"max_output_tokens" env:"VISION_MAX_OUTPUT_TOKENS" env-default:"200"`
	Timeout         time.Duration `yaml:"timeout"           env:"VISION_TIMEOUT"           env-default:"30s"`
}

// SpeechConfig configures voice transcription.
type SpeechConfig struct {
	Model    string        `yaml:"model"    env:"SPEECH_MODEL"    env-default:"gemini-2.5-flash"`
	Language string        `yaml:"language" env:"SPEECH_LANGUAGE" env-default:"en-US"`
	Timeout  time.Duration `yaml:"timeout"  env:"SPEECH_TIMEOUT"  env-default:"30s"`

	// TempDir holds downloaded recordings while they are transcribed.
	// Empty means os.TempDir().
	TempDir string `yaml:"temp_dir" env:"SPEECH_TEMP_DIR"`
}

// AnthropicConfig holds Anthropic API credentials.
type AnthropicConfig struct {
	APIKey     string `yaml:"api_key"     env:"ANTHROPIC_API_KEY"`
	BaseURL    string `yaml:"base_url"    env:"ANTHROPIC_BASE_URL"`
	MaxRetries int    `yaml:"max_retries" env:"ANTHROPIC_MAX_RETRIES" env-default:"2"`
}

// GeminiConfig holds Gemini API credentials.
type GeminiConfig struct {
	APIKey  string `yaml:"api_key"  env:"GEMINI_API_KEY"`
	BaseURL string `yaml:"base_url" env:"GEMINI_BASE_URL"`
}

// LedgerConfig tunes optimistic-concurrency retries on reputation updates.
type LedgerConfig struct {
	MaxAttempts int           `yaml:"max_attempts" env:"LEDGER_MAX_ATTEMPTS" env-default:"10"`
	BaseBackoff time.Duration `yaml:"base_backoff" env:"LEDGER_BASE_BACKOFF" env-default:"5ms"`
	MaxBackoff  time.Duration `yaml:"max_backoff"  env:"LEDGER_MAX_BACKOFF"  env-default:"200ms"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig limits analysis requests per client IP.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	AnalyzePerMin   int           `yaml:"analyze_per_min"  env:"RATE_LIMIT_ANALYZE_PER_MIN"  env-default:"30"`
	UploadPerMin    int           `yaml:"upload_per_min"   env:"RATE_LIMIT_UPLOAD_PER_MIN"   env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// UsesProvider reports whether any model-backed component is configured to
// call the named provider. Speech always runs on Gemini.
func (c *Config) UsesProvider(name string) bool {
	if name == ProviderGemini {
		return true
	}
	return c.Scoring.Provider == name || c.Vision.Provider == name
}
