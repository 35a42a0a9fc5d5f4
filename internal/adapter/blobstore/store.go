// Package blobstore keeps uploaded objects on the local filesystem, one
// directory per container.
package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecovoice-backend/internal/domain"
)

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Size        int64
	ModTime     time.Time
	ContentType string
}

// Store is a directory-backed object store.
type Store struct {
	root string
	log  *slog.Logger
}

// New creates the root and container directories if needed.
func New(root string, logger *slog.Logger) (*Store, error) {
	for _, c := range []string{domain.ContainerImages, domain.ContainerVoice} {
		if err := os.MkdirAll(filepath.Join(root, c), 0o750); err != nil {
			return nil, fmt.Errorf("blobstore: create container %s: %w", c, err)
		}
	}
	return &Store{root: root, log: logger.With("adapter", "blobstore")}, nil
}

func (s *Store) path(container, key string) (string, error) {
	if !domain.IsKnownContainer(container) {
		return "", fmt.Errorf("blobstore: unknown container %q: %w", container, domain.ErrNotFound)
	}
	if err := domain.ValidateObjectKey(key); err != nil {
		return "", fmt.Errorf("blobstore: %w", err)
	}
	return filepath.Join(s.root, container, key), nil
}

// Put writes r as container/key. The object becomes visible only once fully
// written; an existing key is rejected with domain.ErrAlreadyExists.
func (s *Store) Put(ctx context.Context, container, key string, r io.Reader) (int64, error) {
	dst, err := s.path(container, key)
	if err != nil {
		return 0, err
	}
	if _, err := os.Stat(dst); err == nil {
		return 0, fmt.Errorf("blobstore: %s/%s: %w", container, key, domain.ErrAlreadyExists)
	}

	tmp := filepath.Join(s.root, container, ".upload-"+uuid.NewString())
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return 0, fmt.Errorf("blobstore: create temp: %w", err)
	}

	n, copyErr := io.Copy(f, readerWithContext(ctx, r))
	closeErr := f.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(tmp)
		if copyErr != nil {
			return 0, fmt.Errorf("blobstore: write %s/%s: %w", container, key, copyErr)
		}
		return 0, fmt.Errorf("blobstore: close %s/%s: %w", container, key, closeErr)
	}

	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("blobstore: commit %s/%s: %w", container, key, err)
	}

	s.log.DebugContext(ctx, "object stored",
		slog.String("container", container),
		slog.String("key", key),
		slog.Int64("bytes", n),
	)
	return n, nil
}

// Open returns a reader for container/key. The caller must close it.
func (s *Store) Open(_ context.Context, container, key string) (io.ReadCloser, ObjectInfo, error) {
	p, err := s.path(container, key)
	if err != nil {
		return nil, ObjectInfo{}, err
	}

	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ObjectInfo{}, fmt.Errorf("blobstore: %s/%s: %w", container, key, domain.ErrNotFound)
		}
		return nil, ObjectInfo{}, fmt.Errorf("blobstore: open %s/%s: %w", container, key, err)
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ObjectInfo{}, fmt.Errorf("blobstore: stat %s/%s: %w", container, key, err)
	}

	return f, ObjectInfo{Size: st.Size(), ModTime: st.ModTime(), ContentType: contentType(key)}, nil
}

// audioTypes pins recording types, which the mime package lacks or maps
// differently per host.
var audioTypes = map[string]string{
	".wav":  "audio/wav",
	".mp3":  "audio/mpeg",
	".m4a":  "audio/mp4",
	".ogg":  "audio/ogg",
	".webm": "audio/webm",
	".flac": "audio/flac",
}

func contentType(key string) string {
	ext := strings.ToLower(filepath.Ext(key))
	if ct, ok := audioTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

func readerWithContext(ctx context.Context, r io.Reader) io.Reader {
	return ctxReader{ctx: ctx, r: r}
}
