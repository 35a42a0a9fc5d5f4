package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/ecovoice-backend/internal/adapter/blobstore"
)

type readHandleVerifier interface {
	VerifyReadHandle(token, container, key string) error
}

type objectReader interface {
	Open(ctx context.Context, container, key string) (io.ReadCloser, blobstore.ObjectInfo, error)
}

// BlobHandler serves objects behind signed read handles.
type BlobHandler struct {
	verifier readHandleVerifier
	store    objectReader
	log      *slog.Logger
}

// NewBlobHandler creates a BlobHandler.
func NewBlobHandler(verifier readHandleVerifier, store objectReader, logger *slog.Logger) *BlobHandler {
	return &BlobHandler{verifier: verifier, store: store, log: logger.With("handler", "blobs")}
}

// Get handles GET /blobs/{container}/{key}?sig=. The signature is checked
// before the store is touched.
func (h *BlobHandler) Get(w http.ResponseWriter, r *http.Request) {
	container, key := r.PathValue("container"), r.PathValue("key")

	if err := h.verifier.VerifyReadHandle(r.URL.Query().Get("sig"), container, key); err != nil {
		h.log.DebugContext(r.Context(), "read handle rejected",
			slog.String("container", container),
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		handleError(w, r, h.log, err)
		return
	}

	body, info, err := h.store.Open(r.Context(), container, key)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", info.ContentType)
	w.Header().Set("Cache-Control", "private, no-store")

	if rs, ok := body.(io.ReadSeeker); ok {
		http.ServeContent(w, r, key, info.ModTime, rs)
		return
	}

	w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, body); err != nil {
		h.log.WarnContext(r.Context(), "blob stream interrupted", slog.String("error", err.Error()))
	}
}
