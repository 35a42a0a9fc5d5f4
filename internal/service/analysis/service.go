// Package analysis runs one user activity through the pipeline:
// normalize, score, record, and credit the user's reputation.
package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ecovoice-backend/internal/domain"
	"github.com/heartmarshall/ecovoice-backend/pkg/ctxutil"
)

type textNormalizer interface {
	Normalize(ctx context.Context, text string) (domain.NormalizedInput, error)
}

// objectNormalizer handles payloads that reference an uploaded object.
type objectNormalizer interface {
	Normalize(ctx context.Context, objectKey string) (domain.NormalizedInput, error)
}

type scorer interface {
	Score(ctx context.Context, text string) (domain.ScoreResult, error)
}

type activityRecorder interface {
	Record(ctx context.Context, userID string, modality domain.Modality, content, advice string, ecoPoints int) (domain.ActivityRecord, error)
}

type reputationLedger interface {
	ApplyDelta(ctx context.Context, userID string, delta int) (domain.UserReputation, error)
}

// Service is the pipeline orchestrator.
type Service struct {
	text     textNormalizer
	image    objectNormalizer
	voice    objectNormalizer
	scorer   scorer
	recorder activityRecorder
	ledger   reputationLedger
	log      *slog.Logger
}

// NewService creates a new analysis service.
func NewService(
	log *slog.Logger,
	text textNormalizer,
	image objectNormalizer,
	voice objectNormalizer,
	scorer scorer,
	recorder activityRecorder,
	ledger reputationLedger,
) *Service {
	return &Service{
		text:     text,
		image:    image,
		voice:    voice,
		scorer:   scorer,
		recorder: recorder,
		ledger:   ledger,
		log:      log.With("service", "analysis"),
	}
}

// Analyze runs req through every stage and returns the user-facing result.
//
// A failure to record the activity is logged and does not stop the
// reputation update. A ledger failure fails the request; the recorded
// activity is kept.
func (s *Service) Analyze(ctx context.Context, req domain.AnalysisRequest) (domain.AnalysisResult, error) {
	if err := req.Validate(); err != nil {
		return domain.AnalysisResult{}, err
	}

	ctx = ctxutil.WithUserID(ctx, req.UserID)
	modality := req.Modality()
	log := s.log.With(slog.String("modality", string(modality)))
	log = log.With(ctxutil.LogAttrs(ctx)...)

	fail := func(stage domain.Stage, err error) (domain.AnalysisResult, error) {
		log.WarnContext(ctx, "analysis failed",
			slog.String("stage", domain.StageFailed.String()),
			slog.String("failed_at", stage.String()),
			slog.String("error", err.Error()),
		)
		return domain.AnalysisResult{}, err
	}

	log.InfoContext(ctx, "analysis stage", slog.String("stage", domain.StageReceived.String()))

	// Normalizing
	log.DebugContext(ctx, "analysis stage", slog.String("stage", domain.StageNormalizing.String()))
	v := &normalizeVisitor{ctx: ctx, svc: s}
	if err := req.Payload.Accept(v); err != nil {
		return fail(domain.StageNormalizing, fmt.Errorf("normalize %s: %w", modality, err))
	}

	// Scoring
	log.DebugContext(ctx, "analysis stage", slog.String("stage", domain.StageScoring.String()))
	score, err := s.scorer.Score(ctx, v.input.Text)
	if err != nil {
		return fail(domain.StageScoring, err)
	}

	// Recording
	log.DebugContext(ctx, "analysis stage", slog.String("stage", domain.StageRecording.String()))
	if _, err := s.recorder.Record(ctx, req.UserID, modality, v.content, score.Advice, score.EcoPoints); err != nil {
		log.ErrorContext(ctx, "activity not recorded", slog.String("error", err.Error()))
	}

	// UpdatingReputation
	log.DebugContext(ctx, "analysis stage", slog.String("stage", domain.StageUpdatingReputation.String()))
	rep, err := s.ledger.ApplyDelta(ctx, req.UserID, score.EcoPoints)
	if err != nil {
		return fail(domain.StageUpdatingReputation, fmt.Errorf("update reputation: %w", err))
	}

	log.InfoContext(ctx, "analysis stage",
		slog.String("stage", domain.StageCompleted.String()),
		slog.Int("eco_points", score.EcoPoints),
		slog.Bool("degraded", score.Degraded),
		slog.Int("total", rep.TotalEcoPoints),
		slog.Int("level", rep.Level),
	)

	return buildResult(modality, v.input, score), nil
}

// normalizeVisitor routes a payload to its normalizer and remembers what
// should be stored as the activity content.
type normalizeVisitor struct {
	ctx     context.Context
	svc     *Service
	input   domain.NormalizedInput
	content string
}

func (v *normalizeVisitor) VisitText(p domain.TextPayload) error {
	in, err := v.svc.text.Normalize(v.ctx, p.Text)
	v.input, v.content = in, p.Text
	return err
}

func (v *normalizeVisitor) VisitImage(p domain.ImagePayload) error {
	in, err := v.svc.image.Normalize(v.ctx, p.ObjectKey)
	v.input, v.content = in, p.ObjectKey
	return err
}

func (v *normalizeVisitor) VisitVoice(p domain.VoicePayload) error {
	in, err := v.svc.voice.Normalize(v.ctx, p.ObjectKey)
	v.input, v.content = in, p.ObjectKey
	return err
}

var _ domain.PayloadVisitor = (*normalizeVisitor)(nil)
