package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/ecovoice-backend/internal/domain"
	"github.com/heartmarshall/ecovoice-backend/internal/service/upload"
)

// multipartOverhead is allowed on top of the file limit for boundaries
// and part headers.
const multipartOverhead = 64 << 10

type uploadService interface {
	Upload(ctx context.Context, f upload.File) (upload.Stored, error)
}

// UploadHandler serves POST /api/upload.
type UploadHandler struct {
	svc      uploadService
	maxBytes int64
	log      *slog.Logger
}

// NewUploadHandler creates an UploadHandler. maxBytes bounds the whole
// request body; <= 0 leaves it unbounded.
func NewUploadHandler(svc uploadService, maxBytes int64, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{svc: svc, maxBytes: maxBytes, log: logger.With("handler", "upload")}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload handles POST /api/upload. The file is read from the multipart
// field "file" and streamed to the store without buffering the body.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+multipartOverhead)
	}

	mr, err := r.MultipartReader()
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("file", "expected multipart/form-data"))
		return
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			handleError(w, r, h.log, domain.NewValidationError("file", "required"))
			return
		}
		if err != nil {
			handleError(w, r, h.log, uploadReadError(err))
			return
		}
		if part.FormName() != "file" {
			part.Close()
			continue
		}

		stored, err := h.svc.Upload(r.Context(), upload.File{
			Name:        part.FileName(),
			ContentType: part.Header.Get("Content-Type"),
			Body:        part,
		})
		part.Close()
		if err != nil {
			handleError(w, r, h.log, uploadReadError(err))
			return
		}

		writeJSON(w, http.StatusOK, uploadResponse{URL: stored.Key})
		return
	}
}

func uploadReadError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return domain.NewValidationError("file", fmt.Sprintf("request larger than %d bytes", maxErr.Limit))
	}
	if errors.Is(err, domain.ErrValidation) {
		return err
	}
	return fmt.Errorf("read upload: %w", err)
}
