package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/ecovoice-backend/internal/domain"
)

// Error codes carried in the "code" field of every error body.
const (
	codeInvalidRequest   = "invalid_request"
	codeNotFound         = "not_found"
	codeForbidden        = "forbidden"
	codeUpstreamContract = "upstream_contract_violation"
	codeConfiguration    = "configuration_error"
	codeConflict         = "conflict"
	codeUnavailable      = "unavailable"
	codeRateLimited      = "rate_limited"
	codeInternal         = "internal_error"
)

type errorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}

// handleError maps a service error to its HTTP status and body. Internal
// details are logged, never returned.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	ctx := r.Context()

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		fields := make([]fieldError, 0, len(verr.Errors))
		for _, fe := range verr.Errors {
			fields = append(fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Error(), Code: codeInvalidRequest, Fields: fields})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, codeInvalidRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "not found")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, codeForbidden, "forbidden")
	case errors.Is(err, domain.ErrUpstreamContract):
		log.WarnContext(ctx, "upstream contract violation", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, codeUpstreamContract, "upstream returned an unusable response")
	case errors.Is(err, domain.ErrConfiguration):
		log.ErrorContext(ctx, "configuration error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, codeConfiguration, "service is misconfigured")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, codeConflict, "concurrent update, try again")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.WarnContext(ctx, "request aborted", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, codeUnavailable, "request canceled or timed out")
	default:
		log.ErrorContext(ctx, "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}
