// Package claude adapts the Anthropic Messages API to the scoring and
// vision ports.
package claude

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/ecovoice-backend/internal/domain"
	"github.com/heartmarshall/ecovoice-backend/internal/provider"
)

// Client calls Claude models.
type Client struct {
	api anthropic.Client
	log *slog.Logger
}

// New creates a Client. baseURL may be empty to use the public endpoint.
func New(apiKey, baseURL string, maxRetries int, timeout time.Duration, logger *slog.Logger) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(maxRetries),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(timeout))
	}

	return &Client{
		api: anthropic.NewClient(opts...),
		log: logger.With("adapter", "claude"),
	}
}

// CompleteJSON sends a single-turn request constrained to req.Schema and
// returns the raw text of the reply. An empty string means the model
// produced no text.
//
// The Messages API has no frequency or presence penalties; those fields are
// ignored. TopP is not sent either: current models reject requests that set
// both temperature and top_p.
func (c *Client) CompleteJSON(ctx context.Context, req provider.CompletionRequest) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: int64(req.MaxOutputTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
		Temperature: anthropic.Float(req.Temperature),
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if req.Schema != nil {
		params.OutputConfig = anthropic.OutputConfigParam{
			Format: anthropic.JSONOutputFormatParam{Schema: req.Schema},
		}
	}

	start := time.Now()
	msg, err := c.api.Messages.New(ctx, params)
	if err != nil {
		return "", c.mapError(ctx, "complete", err)
	}

	text := joinText(msg)
	c.log.DebugContext(ctx, "completion received",
		slog.String("model", req.Model),
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Int("chars", len(text)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return text, nil
}

// Describe captions the image behind req.ImageURL. The URL is fetched by
// the API, so it must be reachable from the internet for its lifetime.
func (c *Client) Describe(ctx context.Context, req provider.DescribeRequest) (domain.ImageDescription, error) {
	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: int64(req.MaxOutputTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewImageBlock(anthropic.URLImageSourceParam{URL: req.ImageURL}),
				anthropic.NewTextBlock(provider.DescribePrompt),
			),
		},
		OutputConfig: anthropic.OutputConfigParam{
			Format: anthropic.JSONOutputFormatParam{Schema: provider.DescriptionSchema},
		},
	})
	if err != nil {
		return domain.ImageDescription{}, c.mapError(ctx, "describe", err)
	}

	return provider.DecodeDescription(joinText(msg))
}

func joinText(msg *anthropic.Message) string {
	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String()
}

// mapError classifies SDK failures into domain errors.
// Context errors pass through unchanged.
func (c *Client) mapError(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("claude %s: %w", op, ctxErr)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("claude %s: %v: %w", op, err, domain.ErrTransient)
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		c.log.WarnContext(ctx, "claude api error", slog.String("op", op), slog.Int("status", status))
		switch {
		case status == http.StatusUnauthorized || status == http.StatusForbidden:
			return fmt.Errorf("claude %s: status %d: %w", op, status, domain.ErrConfiguration)
		case status == http.StatusBadRequest || status == http.StatusNotFound:
			return fmt.Errorf("claude %s: status %d: %v: %w", op, status, err, domain.ErrConfiguration)
		case status == http.StatusTooManyRequests || status >= 500:
			return fmt.Errorf("claude %s: status %d: %w", op, status, domain.ErrTransient)
		default:
			return fmt.Errorf("claude %s: status %d: %w", op, status, domain.ErrUpstreamContract)
		}
	}

	// Anything without an HTTP status is a transport failure.
	return fmt.Errorf("claude %s: %v: %w", op, err, domain.ErrTransient)
}
