package normalize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ecovoice-backend/internal/config"
	"github.com/heartmarshall/ecovoice-backend/internal/domain"
	"github.com/heartmarshall/ecovoice-backend/internal/provider"
)

type readHandleIssuer interface {
	IssueReadHandle(container, key string) (string, error)
}

type visionDescriber interface {
	Describe(ctx context.Context, req provider.DescribeRequest) (domain.ImageDescription, error)
}

// ImageCaptioner describes an uploaded image in words.
type ImageCaptioner struct {
	issuer readHandleIssuer
	vision visionDescriber
	cfg    config.VisionConfig
	log    *slog.Logger
}

// NewImageCaptioner creates an ImageCaptioner.
func NewImageCaptioner(log *slog.Logger, issuer readHandleIssuer, vision visionDescriber, cfg config.VisionConfig) *ImageCaptioner {
	return &ImageCaptioner{
		issuer: issuer,
		vision: vision,
		cfg:    cfg,
		log:    log.With("service", "image_captioner"),
	}
}

// Normalize captions the image stored under objectKey. A transient vision
// failure yields an empty description rather than an error.
func (c *ImageCaptioner) Normalize(ctx context.Context, objectKey string) (domain.NormalizedInput, error) {
	url, err := c.issuer.IssueReadHandle(domain.ContainerImages, objectKey)
	if err != nil {
		return domain.NormalizedInput{}, fmt.Errorf("issue image handle: %w", err)
	}

	callCtx := ctx
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	desc, err := c.vision.Describe(callCtx, provider.DescribeRequest{
		Model:           c.cfg.Model,
		ImageURL:        url,
		MaxOutputTokens: c.cfg.MaxOutputTokens,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.NormalizedInput{}, ctxErr
		}
		if !errors.Is(err, domain.ErrTransient) && !errors.Is(err, context.DeadlineExceeded) {
			return domain.NormalizedInput{}, fmt.Errorf("describe image: %w", err)
		}
		c.log.WarnContext(ctx, "image description degraded",
			slog.String("object_key", objectKey),
			slog.String("error", err.Error()),
		)
		desc = domain.ImageDescription{}
	}

	return domain.NormalizedInput{
		Text:       CaptionText(desc),
		Provenance: domain.ProvenanceCaption,
		Image:      &desc,
	}, nil
}

// CaptionText is the text the scoring engine sees for an image.
func CaptionText(desc domain.ImageDescription) string {
	return fmt.Sprintf("Image description: %s. Image tags: %s", desc.Caption, desc.TagList())
}
