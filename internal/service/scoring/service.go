// Package scoring turns a normalized activity description into advice and
// an eco-points score using a language model.
package scoring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/ecovoice-backend/internal/config"
	"github.com/heartmarshall/ecovoice-backend/internal/domain"
	"github.com/heartmarshall/ecovoice-backend/internal/provider"
)

const systemPrompt = "You are an eco-friendly assistant that analyzes user activities, " +
	"provides specific impact and specific sustainability advice. " +
	"Also rate how sustainable the activity is on a scale of -10 to +15, " +
	"where -10 is very harmful to the environment and +15 is very beneficial. " +
	"Give me response in Json with fields impact, advice and ecopoints."

// responseSchema constrains the model reply.
var responseSchema = provider.Schema{
	"type": "object",
	"properties": map[string]any{
		"impact":    map[string]any{"type": "string"},
		"advice":    map[string]any{"type": "string"},
		"ecopoints": map[string]any{"type": "integer"},
	},
	"required":             []string{"impact", "advice", "ecopoints"},
	"additionalProperties": false,
}

type completer interface {
	CompleteJSON(ctx context.Context, req provider.CompletionRequest) (string, error)
}

// Service is the advice/score engine.
type Service struct {
	llm completer
	cfg config.ScoringConfig
	log *slog.Logger
}

// NewService creates a new scoring service.
func NewService(log *slog.Logger, llm completer, cfg config.ScoringConfig) *Service {
	return &Service{
		llm: llm,
		cfg: cfg,
		log: log.With("service", "scoring"),
	}
}

type reply struct {
	Impact    string `json:"impact"`
	Advice    string `json:"advice"`
	EcoPoints *int   `json:"ecopoints"`
}

// Score asks the model to assess text.
//
// Transient upstream failures and empty replies yield domain.DegradedScore
// with a nil error. A reply that does not match the schema is reported as
// domain.ErrUpstreamContract.
func (s *Service) Score(ctx context.Context, text string) (domain.ScoreResult, error) {
	callCtx := ctx
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	content, err := s.llm.CompleteJSON(callCtx, provider.CompletionRequest{
		Model:           s.cfg.Model,
		System:          systemPrompt,
		Prompt:          text,
		Temperature:     s.cfg.Temperature,
		TopP:            s.cfg.TopP,
		MaxOutputTokens: s.cfg.MaxOutputTokens,
		Schema:          responseSchema,
	})
	if err != nil {
		// The caller's context wins over our own deadline.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.ScoreResult{}, ctxErr
		}
		if errors.Is(err, domain.ErrTransient) || errors.Is(err, context.DeadlineExceeded) {
			s.log.WarnContext(ctx, "scoring degraded", slog.String("error", err.Error()))
			return domain.DegradedScore(), nil
		}
		return domain.ScoreResult{}, fmt.Errorf("score: %w", err)
	}

	if strings.TrimSpace(content) == "" {
		s.log.WarnContext(ctx, "scoring degraded: empty reply")
		return domain.DegradedScore(), nil
	}

	var r reply
	if err := provider.DecodeJSON(content, &r); err != nil {
		return domain.ScoreResult{}, fmt.Errorf("score: decode reply: %v: %w", err, domain.ErrUpstreamContract)
	}
	if r.EcoPoints == nil {
		return domain.ScoreResult{}, fmt.Errorf("score: reply has no ecopoints: %w", domain.ErrUpstreamContract)
	}

	result := domain.ScoreResult{
		Advice:        r.Advice,
		ImpactSummary: r.Impact,
		EcoPoints:     *r.EcoPoints,
	}
	if !result.InRange() {
		s.log.WarnContext(ctx, "eco points out of range",
			slog.Int("eco_points", result.EcoPoints),
			slog.Int("min", domain.MinEcoPoints),
			slog.Int("max", domain.MaxEcoPoints),
		)
	}
	return result, nil
}
