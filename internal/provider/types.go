// Package provider holds the request and result types exchanged with
// model-backed adapters (scoring, vision, speech).
package provider

import "context"

// Schema is a JSON Schema document constraining a structured response.
type Schema = map[string]any

// CompletionRequest asks a text model for a single JSON object.
type CompletionRequest struct {
	Model            string
	System           string
	Prompt           string
	Temperature      float64
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
	MaxOutputTokens  int
	Schema           Schema
}

// DescribeRequest asks a vision model to caption and tag an image.
type DescribeRequest struct {
	Model           string
	ImageURL        string // signed, time-limited read handle
	MaxOutputTokens int
}

// RecognitionRequest starts a speech recognition session over a local file.
type RecognitionRequest struct {
	Model     string
	AudioPath string
	MimeType  string
	Language  string
}

// EventKind classifies a recognition event.
type EventKind int

const (
	EventRecognized EventKind = iota + 1
	EventNoMatch
	EventCanceled
)

func (k EventKind) String() string {
	switch k {
	case EventRecognized:
		return "recognized"
	case EventNoMatch:
		return "no_match"
	case EventCanceled:
		return "canceled"
	}
	return "unknown"
}

// RecognitionEvent is emitted by a RecognitionSession.
type RecognitionEvent struct {
	Kind EventKind
	Text string
	// Err is set for EventCanceled.
	Err error
}

// RecognitionSession is a running recognition over an audio file.
type RecognitionSession interface {
	// Events delivers recognition results. It is closed when the session
	// has nothing more to say.
	Events() <-chan RecognitionEvent
	// Stop ends the session and blocks until the engine no longer reads
	// the audio file. It is safe to call more than once.
	Stop(ctx context.Context) error
}
