package normalize

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecovoice-backend/internal/config"
	"github.com/heartmarshall/ecovoice-backend/internal/domain"
	"github.com/heartmarshall/ecovoice-backend/internal/provider"
)

// NoSpeechDetected is the transcript reported when nothing was recognized.
const NoSpeechDetected = "No speech detected"

// stopTimeout bounds how long we wait for a session to release the audio file.
const stopTimeout = 5 * time.Second

type downloader interface {
	Fetch(ctx context.Context, signedURL string, w io.Writer) (int64, error)
}

type recognizer interface {
	StartRecognition(ctx context.Context, req provider.RecognitionRequest) (provider.RecognitionSession, error)
}

// SpeechTranscriber turns an uploaded voice recording into text.
type SpeechTranscriber struct {
	issuer     readHandleIssuer
	downloader downloader
	recognizer recognizer
	cfg        config.SpeechConfig
	log        *slog.Logger
}

// NewSpeechTranscriber creates a SpeechTranscriber.
func NewSpeechTranscriber(
	log *slog.Logger,
	issuer readHandleIssuer,
	downloader downloader,
	recognizer recognizer,
	cfg config.SpeechConfig,
) *SpeechTranscriber {
	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}
	return &SpeechTranscriber{
		issuer:     issuer,
		downloader: downloader,
		recognizer: recognizer,
		cfg:        cfg,
		log:        log.With("service", "speech_transcriber"),
	}
}

// Normalize transcribes the recording stored under objectKey.
//
// The recording is downloaded to a private temp file which is removed on
// every return path, always after the recognition session has stopped.
func (s *SpeechTranscriber) Normalize(ctx context.Context, objectKey string) (domain.NormalizedInput, error) {
	url, err := s.issuer.IssueReadHandle(domain.ContainerVoice, objectKey)
	if err != nil {
		return domain.NormalizedInput{}, fmt.Errorf("issue voice handle: %w", err)
	}

	path := filepath.Join(s.cfg.TempDir, uuid.NewString()+".wav")
	defer s.removeTemp(ctx, path)

	if err := s.download(ctx, url, path); err != nil {
		return domain.NormalizedInput{}, err
	}

	transcript, err := s.recognize(ctx, path)
	if err != nil {
		return domain.NormalizedInput{}, err
	}

	return domain.NormalizedInput{Text: transcript, Provenance: domain.ProvenanceTranscript}, nil
}

func (s *SpeechTranscriber) download(ctx context.Context, url, path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("create temp audio: %w", err)
	}

	n, err := s.downloader.Fetch(ctx, url, f)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("download recording: %w", err)
	}

	s.log.DebugContext(ctx, "recording downloaded", slog.Int64("bytes", n))
	return nil
}

// recognize runs one session and waits for its first event, the timeout,
// or cancellation. The session is stopped before returning.
func (s *SpeechTranscriber) recognize(ctx context.Context, path string) (string, error) {
	sess, err := s.recognizer.StartRecognition(ctx, provider.RecognitionRequest{
		Model:     s.cfg.Model,
		AudioPath: path,
		MimeType:  "audio/wav",
		Language:  s.cfg.Language,
	})
	if err != nil {
		return "", fmt.Errorf("start recognition: %w", err)
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), stopTimeout)
		defer cancel()
		if err := sess.Stop(stopCtx); err != nil {
			s.log.WarnContext(ctx, "recognition stop", slog.String("error", err.Error()))
		}
	}()

	timer := time.NewTimer(s.cfg.Timeout)
	defer timer.Stop()

	select {
	case ev, ok := <-sess.Events():
		if !ok {
			return NoSpeechDetected, nil
		}
		return s.handleEvent(ctx, ev)
	case <-timer.C:
		s.log.InfoContext(ctx, "recognition timed out", slog.Duration("timeout", s.cfg.Timeout))
		return NoSpeechDetected, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (s *SpeechTranscriber) handleEvent(ctx context.Context, ev provider.RecognitionEvent) (string, error) {
	s.log.DebugContext(ctx, "recognition event", slog.String("kind", ev.Kind.String()))

	switch ev.Kind {
	case provider.EventRecognized:
		if ev.Text == "" {
			return NoSpeechDetected, nil
		}
		return ev.Text, nil
	case provider.EventNoMatch:
		return NoSpeechDetected, nil
	default:
		cause := ev.Err
		if cause == nil {
			cause = errors.New("recognition canceled")
		}
		if errors.Is(cause, domain.ErrConfiguration) {
			return "", fmt.Errorf("recognition: %w", cause)
		}
		return "", fmt.Errorf("recognition: %v: %w", cause, domain.ErrUpstreamContract)
	}
}

func (s *SpeechTranscriber) removeTemp(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.DebugContext(ctx, "temp audio cleanup", slog.String("path", path), slog.String("error", err.Error()))
	}
}
