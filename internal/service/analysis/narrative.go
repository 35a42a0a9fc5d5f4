package analysis

import (
	"fmt"

	"github.com/heartmarshall/ecovoice-backend/internal/domain"
)

// lineBreak is a markdown hard line break.
const lineBreak = "  \n"

func buildResult(modality domain.Modality, in domain.NormalizedInput, score domain.ScoreResult) domain.AnalysisResult {
	impact := score.ImpactSummary
	if score.Degraded {
		impact = domain.DegradedDetails
	}

	result := domain.AnalysisResult{
		Advice:    score.Advice,
		EcoPoints: score.EcoPoints,
	}

	switch modality {
	case domain.ModalityImage:
		var desc domain.ImageDescription
		if in.Image != nil {
			desc = *in.Image
		}
		result.AnalysisDetails = "Analysis results based on:" + lineBreak +
			fmt.Sprintf("**Image Description:** %s", desc.Caption) + lineBreak +
			fmt.Sprintf("**Tags:** %s", desc.TagList()) + lineBreak +
			fmt.Sprintf("**Environmental Impact:** %s", impact)
	case domain.ModalityVoice:
		transcript := in.Text
		result.Transcription = &transcript
		result.AnalysisDetails = "Analysis results based on:" + lineBreak +
			fmt.Sprintf("**Transcription:** %s", transcript) + lineBreak +
			fmt.Sprintf("**Environmental Impact:** %s", impact)
	default:
		result.AnalysisDetails = fmt.Sprintf("**Environmental Impact:** %s", impact)
	}

	return result
}
