// Package upload stores user files in the blob store and hands back the
// object key that analysis requests refer to.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecovoice-backend/internal/domain"
)

const maxExtLen = 10

type objectWriter interface {
	Put(ctx context.Context, container, key string, r io.Reader) (int64, error)
}

// Service accepts uploads.
type Service struct {
	store    objectWriter
	maxBytes int64
	log      *slog.Logger
}

// NewService creates a new upload service. maxBytes <= 0 disables the size
// check.
func NewService(log *slog.Logger, store objectWriter, maxBytes int64) *Service {
	return &Service{
		store:    store,
		maxBytes: maxBytes,
		log:      log.With("service", "upload"),
	}
}

// File is one uploaded file as received from the client.
type File struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// Stored describes where an upload ended up.
type Stored struct {
	Container string
	Key       string
	Size      int64
}

var errTooLarge = errors.New("upload exceeds size limit")

// Upload writes f under a fresh key. Images go to the images container and
// everything else to the voice container.
func (s *Service) Upload(ctx context.Context, f File) (Stored, error) {
	if f.Body == nil {
		return Stored{}, domain.NewValidationError("file", "required")
	}

	container := ContainerFor(f.ContentType)
	key := uuid.NewString() + extension(f.Name)

	body := f.Body
	if s.maxBytes > 0 {
		body = &limitedReader{r: f.Body, remaining: s.maxBytes}
	}

	n, err := s.store.Put(ctx, container, key, body)
	if err != nil {
		if errors.Is(err, errTooLarge) {
			return Stored{}, domain.NewValidationError("file", fmt.Sprintf("larger than %d bytes", s.maxBytes))
		}
		return Stored{}, fmt.Errorf("upload: %w", err)
	}
	if n == 0 {
		s.log.WarnContext(ctx, "empty upload stored", slog.String("container", container), slog.String("key", key))
	}

	s.log.InfoContext(ctx, "file uploaded",
		slog.String("container", container),
		slog.String("key", key),
		slog.String("content_type", f.ContentType),
		slog.Int64("bytes", n),
	)
	return Stored{Container: container, Key: key, Size: n}, nil
}

// ContainerFor picks the container for a declared content type.
func ContainerFor(contentType string) string {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image") {
		return domain.ContainerImages
	}
	return domain.ContainerVoice
}

// extension keeps the client's file extension when it is short and
// alphanumeric, and drops it otherwise.
func extension(name string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(name)))
	if len(ext) < 2 || len(ext) > maxExtLen {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}

// limitedReader fails once more than remaining bytes have been read, so a
// partial object is never committed.
type limitedReader struct {
	r         io.Reader
	remaining int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.remaining < 0 {
		return 0, errTooLarge
	}
	if int64(len(p)) > l.remaining+1 {
		p = p[:l.remaining+1]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	if l.remaining < 0 {
		return n, errTooLarge
	}
	return n, err
}
