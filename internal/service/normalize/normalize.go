// Package normalize converts each input modality into the plain text the
// scoring engine consumes.
package normalize

import (
	"context"
	"strings"

	"github.com/heartmarshall/ecovoice-backend/internal/domain"
)

// TextPassthrough normalizes text input as-is.
type TextPassthrough struct{}

// Normalize returns text unchanged. Blank text is a validation error.
func (TextPassthrough) Normalize(_ context.Context, text string) (domain.NormalizedInput, error) {
	if strings.TrimSpace(text) == "" {
		return domain.NormalizedInput{}, domain.NewValidationError("text", "required")
	}
	return domain.NormalizedInput{Text: text, Provenance: domain.ProvenanceDirect}, nil
}
