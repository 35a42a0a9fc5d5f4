package domain

import "strings"

// Payload is the modality-specific content of an AnalysisRequest.
// The set of variants is closed: only TextPayload, ImagePayload and
// VoicePayload implement it.
type Payload interface {
	Modality() Modality
	// Content is what gets recorded on the activity: the submitted text, or
	// the object key for blob-backed modalities.
	Content() string
	Accept(v PayloadVisitor) error
	isPayload()
}

// PayloadVisitor dispatches on the concrete payload variant. Adding a variant
// adds a method here, so every visitor stops compiling until it handles it.
type PayloadVisitor interface {
	VisitText(p TextPayload) error
	VisitImage(p ImagePayload) error
	VisitVoice(p VoicePayload) error
}

// TextPayload carries free text typed by the user.
type TextPayload struct {
	Text string
}

func (TextPayload) Modality() Modality              { return ModalityText }
func (p TextPayload) Content() string               { return p.Text }
func (p TextPayload) Accept(v PayloadVisitor) error { return v.VisitText(p) }
func (TextPayload) isPayload()                      {}

// ImagePayload references an uploaded image in the images container.
type ImagePayload struct {
	ObjectKey string
}

func (ImagePayload) Modality() Modality              { return ModalityImage }
func (p ImagePayload) Content() string               { return p.ObjectKey }
func (p ImagePayload) Accept(v PayloadVisitor) error { return v.VisitImage(p) }
func (ImagePayload) isPayload()                      {}

// VoicePayload references an uploaded WAV recording in the voice container.
type VoicePayload struct {
	ObjectKey string
}

func (VoicePayload) Modality() Modality              { return ModalityVoice }
func (p VoicePayload) Content() string               { return p.ObjectKey }
func (p VoicePayload) Accept(v PayloadVisitor) error { return v.VisitVoice(p) }
func (VoicePayload) isPayload()                      {}

const maxObjectKeyLen = 256

// ValidateObjectKey checks that key names a single object inside a container.
func ValidateObjectKey(key string) error {
	if msg := objectKeyProblem(key); msg != "" {
		return NewValidationError("objectKey", msg)
	}
	return nil
}

func objectKeyProblem(key string) string {
	switch {
	case strings.TrimSpace(key) == "":
		return "required"
	case len(key) > maxObjectKeyLen:
		return "too long"
	case strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, "."):
		return "must be a plain object name"
	}
	return ""
}
