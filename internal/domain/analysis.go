package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AnalysisRequest is one submission to the analysis pipeline.
type AnalysisRequest struct {
	UserID  string
	Payload Payload
}

// Modality returns the modality implied by the payload.
func (r AnalysisRequest) Modality() Modality {
	if r.Payload == nil {
		return ""
	}
	return r.Payload.Modality()
}

// Validate checks the request before any external call is made.
func (r AnalysisRequest) Validate() error {
	var errs []FieldError

	if strings.TrimSpace(r.UserID) == "" {
		errs = append(errs, FieldError{Field: "userId", Message: "required"})
	}

	switch p := r.Payload.(type) {
	case nil:
		errs = append(errs, FieldError{Field: "payload", Message: "required"})
	case TextPayload:
		if strings.TrimSpace(p.Text) == "" {
			errs = append(errs, FieldError{Field: "text", Message: "required"})
		}
	case ImagePayload:
		if msg := objectKeyProblem(p.ObjectKey); msg != "" {
			errs = append(errs, FieldError{Field: "imageUrl", Message: msg})
		}
	case VoicePayload:
		if msg := objectKeyProblem(p.ObjectKey); msg != "" {
			errs = append(errs, FieldError{Field: "voiceUrl", Message: msg})
		}
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// ImageDescription is what a vision model reports about an image.
type ImageDescription struct {
	Caption string
	Tags    []string
}

// TagList renders tags the way they appear in prompts and narratives.
func (d ImageDescription) TagList() string {
	return strings.Join(d.Tags, ", ")
}

// NormalizedInput is the text handed to the scoring engine.
type NormalizedInput struct {
	Text       string
	Provenance Provenance
	// Image is set for image submissions.
	Image *ImageDescription
}

// ScoreResult is the outcome of scoring normalized text.
type ScoreResult struct {
	Advice        string
	ImpactSummary string
	EcoPoints     int
	// Degraded is set when no usable response was received and the
	// fallback values were substituted.
	Degraded bool
}

// Fallback values used when the engine produced nothing.
const (
	DegradedAdvice  = "No response received."
	DegradedDetails = "No response computed."
)

// DegradedScore returns the zero-point fallback result.
func DegradedScore() ScoreResult {
	return ScoreResult{Advice: DegradedAdvice, EcoPoints: 0, Degraded: true}
}

// Score bounds asked of the engine. Values outside are accepted as-is.
const (
	MinEcoPoints = -10
	MaxEcoPoints = 15
)

// InRange reports whether EcoPoints lies within the requested scale.
func (s ScoreResult) InRange() bool {
	return s.EcoPoints >= MinEcoPoints && s.EcoPoints <= MaxEcoPoints
}

// AnalysisResult is returned to the caller.
type AnalysisResult struct {
	Advice          string
	EcoPoints       int
	AnalysisDetails string
	Transcription   *string
}

// ActivityRecord is one persisted analysis outcome. Records are append-only.
type ActivityRecord struct {
	ID        uuid.UUID
	UserID    string
	Modality  Modality
	Content   string
	Advice    string
	EcoPoints int
	Timestamp time.Time
}
