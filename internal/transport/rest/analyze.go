package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/ecovoice-backend/internal/domain"
)

type analysisService interface {
	Analyze(ctx context.Context, req domain.AnalysisRequest) (domain.AnalysisResult, error)
}

// AnalyzeHandler serves POST /api/analyze.
type AnalyzeHandler struct {
	svc analysisService
	log *slog.Logger
}

// NewAnalyzeHandler creates an AnalyzeHandler.
func NewAnalyzeHandler(svc analysisService, logger *slog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc, log: logger.With("handler", "analyze")}
}

// analyzeRequest is the wire form of a submission. imageUrl and voiceUrl
// carry object keys returned by the upload endpoint.
type analyzeRequest struct {
	UserID    string `json:"userId"`
	InputType string `json:"inputType"`
	Text      string `json:"text"`
	ImageURL  string `json:"imageUrl"`
	VoiceURL  string `json:"voiceUrl"`
}

type analyzeResponse struct {
	Advice          string  `json:"advice"`
	EcoPoints       int     `json:"ecoPoints"`
	AnalysisDetails string  `json:"analysisDetails"`
	Transcription   *string `json:"transcription,omitempty"`
}

// Analyze handles POST /api/analyze.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	in, err := req.toDomain()
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Analyze(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		Advice:          result.Advice,
		EcoPoints:       result.EcoPoints,
		AnalysisDetails: result.AnalysisDetails,
		Transcription:   result.Transcription,
	})
}

// toDomain maps the wire form onto a payload. Exactly one payload field may
// be set, and it must match inputType.
func (req analyzeRequest) toDomain() (domain.AnalysisRequest, error) {
	out := domain.AnalysisRequest{UserID: req.UserID}
	modality := domain.Modality(strings.ToLower(strings.TrimSpace(req.InputType)))

	switch modality {
	case domain.ModalityText:
		out.Payload = domain.TextPayload{Text: req.Text}
	case domain.ModalityImage:
		out.Payload = domain.ImagePayload{ObjectKey: req.ImageURL}
	case domain.ModalityVoice:
		out.Payload = domain.VoicePayload{ObjectKey: req.VoiceURL}
	default:
		return domain.AnalysisRequest{}, domain.NewValidationError("inputType", "must be one of text, image, voice")
	}

	var errs []domain.FieldError
	for _, f := range []struct {
		name     string
		value    string
		modality domain.Modality
	}{
		{"text", req.Text, domain.ModalityText},
		{"imageUrl", req.ImageURL, domain.ModalityImage},
		{"voiceUrl", req.VoiceURL, domain.ModalityVoice},
	} {
		if f.modality != modality && f.value != "" {
			errs = append(errs, domain.FieldError{Field: f.name, Message: "not allowed for inputType " + string(modality)})
		}
	}
	if len(errs) > 0 {
		return domain.AnalysisRequest{}, domain.NewValidationErrors(errs)
	}

	return out, nil
}
