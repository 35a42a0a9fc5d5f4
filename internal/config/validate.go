package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"
)

const (
	minSigningSecretLen = 32
	maxReadTTL          = 24 * time.Hour
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if len(c.Signing.Secret) < minSigningSecretLen {
		return fmt.Errorf("signing.secret must be at least %d characters (got %d)", minSigningSecretLen, len(c.Signing.Secret))
	}
	if c.Signing.ReadTTL <= 0 || c.Signing.ReadTTL > maxReadTTL {
		return fmt.Errorf("signing.read_ttl must be in (0, %s] (got %s)", maxReadTTL, c.Signing.ReadTTL)
	}

	baseURL, err := url.Parse(c.Blob.PublicBaseURL)
	if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
		return fmt.Errorf("blob.public_base_url must be an absolute URL (got %q)", c.Blob.PublicBaseURL)
	}
	if c.Blob.MaxUploadBytes <= 0 {
		return fmt.Errorf("blob.max_upload_bytes must be > 0 (got %d)", c.Blob.MaxUploadBytes)
	}

	if err := c.Scoring.validate(); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}
	if !isKnownProvider(c.Vision.Provider) {
		return fmt.Errorf("vision.provider must be %q or %q (got %q)", ProviderAnthropic, ProviderGemini, c.Vision.Provider)
	}
	if c.Vision.Provider == ProviderAnthropic && isLoopbackHost(baseURL.Hostname()) {
		return fmt.Errorf("vision.provider %q fetches images by URL; blob.public_base_url must be publicly reachable (got %q)",
			ProviderAnthropic, c.Blob.PublicBaseURL)
	}
	if c.Speech.Timeout <= 0 {
		return fmt.Errorf("speech.timeout must be > 0 (got %s)", c.Speech.Timeout)
	}
	if c.Speech.Language == "" {
		return fmt.Errorf("speech.language is required")
	}

	if c.UsesProvider(ProviderAnthropic) && c.Anthropic.APIKey == "" {
		return fmt.Errorf("anthropic.api_key is required when anthropic is a configured provider")
	}
	if c.UsesProvider(ProviderGemini) && c.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required for speech transcription")
	}

	if c.Ledger.MaxAttempts < 1 {
		return fmt.Errorf("ledger.max_attempts must be >= 1 (got %d)", c.Ledger.MaxAttempts)
	}
	if c.Ledger.BaseBackoff <= 0 {
		return fmt.Errorf("ledger.base_backoff must be > 0 (got %s)", c.Ledger.BaseBackoff)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	switch d.Driver {
	case DriverPostgres:
		if d.DSN == "" {
			return fmt.Errorf("dsn is required for the postgres driver")
		}
		if d.MinConns > d.MaxConns {
			return fmt.Errorf("min_conns (%d) must not exceed max_conns (%d)", d.MinConns, d.MaxConns)
		}
	case DriverSQLite:
		if d.SQLitePath == "" {
			return fmt.Errorf("sqlite_path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("driver must be %q or %q (got %q)", DriverPostgres, DriverSQLite, d.Driver)
	}
	return nil
}

func (s *ScoringConfig) validate() error {
	if !isKnownProvider(s.Provider) {
		return fmt.Errorf("provider must be %q or %q (got %q)", ProviderAnthropic, ProviderGemini, s.Provider)
	}
	if s.Model == "" {
		return fmt.Errorf("model is required")
	}
	if s.Temperature < 0 || s.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2] (got %v)", s.Temperature)
	}
	if s.TopP <= 0 || s.TopP > 1 {
		return fmt.Errorf("top_p must be in (0, 1] (got %v)", s.TopP)
	}
	if s.MaxOutputTokens <= 0 {
		return fmt.Errorf("max_output_tokens must be > 0 (got %d)", s.MaxOutputTokens)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", s.Timeout)
	}
	return nil
}

func isKnownProvider(name string) bool {
	return name == ProviderAnthropic || name == ProviderGemini
}

func isLoopbackHost(host string) bool {
	if strings.EqualFold(host, "localhost") || strings.HasSuffix(strings.ToLower(host), ".localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && (ip.IsLoopback() || ip.IsUnspecified())
}
