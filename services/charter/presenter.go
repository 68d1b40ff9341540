package charter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"yachtmatch/models"
)

// present renders the compiled plan and the safety summary into the final
// natural-language itinerary. Pure formatting; the model introduces no new
// facts here.
func (s *DefaultPipelineService) present(ctx context.Context, plan *models.CompiledPlan, safetySummary string) (string, error) {
	planJSON, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal compiled plan: %w", err)
	}

	raw, err := s.Engine.Generate(ctx, buildPresenterPrompt(s.CompanyName, string(planJSON), safetySummary))
	if err != nil {
		return "", fmt.Errorf("presentation agent: %w", err)
	}
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", newMalformedOutputError("PresentationAgent", fmt.Errorf("empty itinerary"))
	}
	return text, nil
}
