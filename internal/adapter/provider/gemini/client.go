// Package gemini adapts the Gemini API to the scoring, vision and speech
// ports.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/heartmarshall/ecovoice-backend/internal/domain"
	"github.com/heartmarshall/ecovoice-backend/internal/provider"
)

// imageFetcher downloads an image through its signed read handle.
type imageFetcher interface {
	FetchBytes(ctx context.Context, signedURL string) ([]byte, string, error)
}

// Client calls Gemini models.
type Client struct {
	api     *genai.Client
	fetcher imageFetcher
	log     *slog.Logger
}

// New creates a Client. baseURL may be empty to use the public endpoint.
func New(ctx context.Context, apiKey, baseURL string, timeout time.Duration, fetcher imageFetcher, logger *slog.Logger) (*Client, error) {
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions.BaseURL = baseURL
	}
	if timeout > 0 {
		cc.HTTPOptions.Timeout = &timeout
	}

	api, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %v: %w", err, domain.ErrConfiguration)
	}

	return &Client{
		api:     api,
		fetcher: fetcher,
		log:     logger.With("adapter", "gemini"),
	}, nil
}

// CompleteJSON sends a single-turn request constrained to req.Schema and
// returns the raw text of the reply. An empty string means the model
// produced no text.
func (c *Client) CompleteJSON(ctx context.Context, req provider.CompletionRequest) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(req.Temperature)),
		TopP:             genai.Ptr(float32(req.TopP)),
		FrequencyPenalty: genai.Ptr(float32(req.FrequencyPenalty)),
		PresencePenalty:  genai.Ptr(float32(req.PresencePenalty)),
		MaxOutputTokens:  int32(req.MaxOutputTokens),
		ResponseMIMEType: "application/json",
		ThinkingConfig:   noThinking(),
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.Schema != nil {
		cfg.ResponseJsonSchema = req.Schema
	}

	start := time.Now()
	resp, err := c.api.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", c.mapError(ctx, "complete", err)
	}

	text := resp.Text()
	c.log.DebugContext(ctx, "completion received",
		slog.String("model", req.Model),
		slog.Int("chars", len(text)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return text, nil
}

// Describe captions the image behind req.ImageURL. The bytes are fetched
// here and sent inline.
func (c *Client) Describe(ctx context.Context, req provider.DescribeRequest) (domain.ImageDescription, error) {
	data, contentType, err := c.fetcher.FetchBytes(ctx, req.ImageURL)
	if err != nil {
		return domain.ImageDescription{}, fmt.Errorf("gemini describe: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(data, imageMIMEType(contentType, req.ImageURL)),
			genai.NewPartFromText(provider.DescribePrompt),
		}, genai.RoleUser),
	}

	resp, err := c.api.Models.GenerateContent(ctx, req.Model, contents, &genai.GenerateContentConfig{
		MaxOutputTokens:    int32(req.MaxOutputTokens),
		ResponseMIMEType:   "application/json",
		ResponseJsonSchema: provider.DescriptionSchema,
		ThinkingConfig:     noThinking(),
	})
	if err != nil {
		return domain.ImageDescription{}, c.mapError(ctx, "describe", err)
	}

	return provider.DecodeDescription(resp.Text())
}

func noThinking() *genai.ThinkingConfig {
	return &genai.ThinkingConfig{ThinkingBudget: genai.Ptr[int32](0)}
}

// imageMIMEType prefers the server-reported type, then the object extension.
func imageMIMEType(contentType, rawURL string) string {
	if mt, _, err := mime.ParseMediaType(contentType); err == nil && strings.HasPrefix(mt, "image/") {
		return mt
	}
	if u, err := url.Parse(rawURL); err == nil {
		if mt := mime.TypeByExtension(path.Ext(u.Path)); strings.HasPrefix(mt, "image/") {
			return mt
		}
	}
	return "image/jpeg"
}

// mapError classifies SDK failures into domain errors.
// Context errors from the caller pass through unchanged.
func (c *Client) mapError(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("gemini %s: %w", op, ctxErr)
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.Code
		c.log.WarnContext(ctx, "gemini api error", slog.String("op", op), slog.Int("status", code), slog.String("api_status", apiErr.Status))
		switch {
		case code == http.StatusUnauthorized || code == http.StatusForbidden:
			return fmt.Errorf("gemini %s: status %d: %w", op, code, domain.ErrConfiguration)
		case code == http.StatusBadRequest || code == http.StatusNotFound:
			return fmt.Errorf("gemini %s: status %d: %s: %w", op, code, apiErr.Message, domain.ErrConfiguration)
		case code == http.StatusTooManyRequests || code >= 500:
			return fmt.Errorf("gemini %s: status %d: %w", op, code, domain.ErrTransient)
		default:
			return fmt.Errorf("gemini %s: status %d: %w", op, code, domain.ErrUpstreamContract)
		}
	}

	return fmt.Errorf("gemini %s: %v: %w", op, err, domain.ErrTransient)
}
