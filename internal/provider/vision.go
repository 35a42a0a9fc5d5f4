package provider

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/ecovoice-backend/internal/domain"
)

// DescribePrompt is sent with the image to every vision backend.
const DescribePrompt = "Describe this image in one short sentence and list up to 10 single-word tags " +
	"for the objects and activities visible in it. " +
	"Respond in JSON with fields caption (string) and tags (array of strings)."

// DescriptionSchema constrains the vision response.
var DescriptionSchema = Schema{
	"type": "object",
	"properties": map[string]any{
		"caption": map[string]any{"type": "string"},
		"tags": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	},
	"required":             []string{"caption", "tags"},
	"additionalProperties": false,
}

type descriptionPayload struct {
	Caption string   `json:"caption"`
	Tags    []string `json:"tags"`
}

// DecodeDescription parses a vision response. Blank tags are dropped.
func DecodeDescription(content string) (domain.ImageDescription, error) {
	var p descriptionPayload
	if err := DecodeJSON(content, &p); err != nil {
		return domain.ImageDescription{}, fmt.Errorf("decode image description: %v: %w", err, domain.ErrUpstreamContract)
	}

	desc := domain.ImageDescription{Caption: strings.TrimSpace(p.Caption)}
	for _, tag := range p.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			desc.Tags = append(desc.Tags, tag)
		}
	}
	return desc, nil
}
