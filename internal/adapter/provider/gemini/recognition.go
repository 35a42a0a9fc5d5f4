package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/heartmarshall/ecovoice-backend/internal/provider"
)

// noSpeechMarker is what the model is told to answer for silent audio.
const noSpeechMarker = "[no speech]"

const transcribePrompt = "Transcribe the speech in this recording verbatim. " +
	"The spoken language is %s. Output only the transcript text. " +
	"If the recording contains no intelligible speech, output exactly " + noSpeechMarker + "."

// Recognition is a single transcription running in the background.
type Recognition struct {
	events   chan provider.RecognitionEvent
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// StartRecognition begins transcribing the file at req.AudioPath and
// returns immediately. Exactly one event is delivered before Events is
// closed, unless the session is stopped first.
func (c *Client) StartRecognition(ctx context.Context, req provider.RecognitionRequest) (provider.RecognitionSession, error) {
	if _, err := os.Stat(req.AudioPath); err != nil {
		return nil, fmt.Errorf("gemini recognition: audio file: %w", err)
	}

	sessCtx, cancel := context.WithCancel(ctx)
	r := &Recognition{
		events: make(chan provider.RecognitionEvent, 1),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = "audio/wav"
	}
	log := c.log.With(slog.String("language", req.Language))

	go func() {
		defer close(r.done)
		defer close(r.events)

		ev := c.recognize(sessCtx, req, mimeType)
		if sessCtx.Err() != nil {
			// stopped or abandoned; nobody is listening
			return
		}
		log.DebugContext(sessCtx, "recognition event", slog.String("kind", ev.Kind.String()))
		r.events <- ev
	}()

	return r, nil
}

func (c *Client) recognize(ctx context.Context, req provider.RecognitionRequest, mimeType string) provider.RecognitionEvent {
	data, err := os.ReadFile(req.AudioPath)
	if err != nil {
		return provider.RecognitionEvent{Kind: provider.EventCanceled, Err: fmt.Errorf("read audio: %w", err)}
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(data, mimeType),
			genai.NewPartFromText(fmt.Sprintf(transcribePrompt, req.Language)),
		}, genai.RoleUser),
	}

	resp, err := c.api.Models.GenerateContent(ctx, req.Model, contents, &genai.GenerateContentConfig{
		Temperature:    genai.Ptr[float32](0),
		ThinkingConfig: noThinking(),
	})
	if err != nil {
		return provider.RecognitionEvent{Kind: provider.EventCanceled, Err: c.mapError(ctx, "recognize", err)}
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" || strings.EqualFold(text, noSpeechMarker) {
		return provider.RecognitionEvent{Kind: provider.EventNoMatch}
	}
	return provider.RecognitionEvent{Kind: provider.EventRecognized, Text: text}
}

// Events implements provider.RecognitionSession.
func (r *Recognition) Events() <-chan provider.RecognitionEvent {
	return r.events
}

// Stop cancels the session and waits until the audio file is no longer in
// use, or until ctx ends.
func (r *Recognition) Stop(ctx context.Context) error {
	r.stopOnce.Do(r.cancel)
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("gemini recognition: stop: %w", ctx.Err())
	}
}

var _ provider.RecognitionSession = (*Recognition)(nil)
