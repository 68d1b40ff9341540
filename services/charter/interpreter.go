package charter

import (
	"context"
	"fmt"

	"yachtmatch/models"
	ai "yachtmatch/services/intelligence"
)

// ExtractRequirement turns free-form booking text into a BookingRequirement.
// The schema is exhaustive: every field comes back with a value or an
// explicit null, and the validation boundary normalizes casing and
// confidence before the record propagates. The supervisor also runs this
// per turn to update its checklist, which is why it is not a method.
func ExtractRequirement(ctx context.Context, engine ai.Engine, brief string) (*models.BookingRequirement, error) {
	raw, err := engine.Generate(ctx, buildInterpreterPrompt(brief))
	if err != nil {
		return nil, fmt.Errorf("needs interpreter: %w", err)
	}

	var req models.BookingRequirement
	if err := decodeModelJSON(raw, &req); err != nil {
		return nil, newMalformedOutputError("NeedsInterpreter", err)
	}
	normalizeRequirement(&req)
	return &req, nil
}

func (s *DefaultPipelineService) interpret(ctx context.Context, brief string) (*models.BookingRequirement, error) {
	return ExtractRequirement(ctx, s.Engine, brief)
}
