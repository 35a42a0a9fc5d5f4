package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ecovoice-backend/internal/adapter/download"
	"github.com/heartmarshall/ecovoice-backend/internal/adapter/provider/claude"
	"github.com/heartmarshall/ecovoice-backend/internal/adapter/provider/gemini"
	"github.com/heartmarshall/ecovoice-backend/internal/config"
	"github.com/heartmarshall/ecovoice-backend/internal/domain"
	"github.com/heartmarshall/ecovoice-backend/internal/provider"
)

type completer interface {
	CompleteJSON(ctx context.Context, req provider.CompletionRequest) (string, error)
}

type describer interface {
	Describe(ctx context.Context, req provider.DescribeRequest) (domain.ImageDescription, error)
}

// models holds the model clients selected by configuration. Gemini is
// always present because it runs speech recognition.
type models struct {
	claude *claude.Client
	gemini *gemini.Client
}

func newModels(ctx context.Context, cfg *config.Config, fetcher *download.Fetcher, logger *slog.Logger) (*models, error) {
	m := &models{}

	if cfg.UsesProvider(config.ProviderAnthropic) {
		m.claude = claude.New(cfg.Anthropic.APIKey, cfg.Anthropic.BaseURL, cfg.Anthropic.MaxRetries, cfg.Scoring.Timeout, logger)
	}

	g, err := gemini.New(ctx, cfg.Gemini.APIKey, cfg.Gemini.BaseURL, cfg.Speech.Timeout, fetcher, logger)
	if err != nil {
		return nil, err
	}
	m.gemini = g

	return m, nil
}

func (m *models) completer(name string) (completer, error) {
	switch name {
	case config.ProviderAnthropic:
		if m.claude != nil {
			return m.claude, nil
		}
	case config.ProviderGemini:
		return m.gemini, nil
	}
	return nil, fmt.Errorf("scoring provider %q unavailable: %w", name, domain.ErrConfiguration)
}

func (m *models) describer(name string) (describer, error) {
	switch name {
	case config.ProviderAnthropic:
		if m.claude != nil {
			return m.claude, nil
		}
	case config.ProviderGemini:
		return m.gemini, nil
	}
	return nil, fmt.Errorf("vision provider %q unavailable: %w", name, domain.ErrConfiguration)
}
