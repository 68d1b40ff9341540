package charter

import (
	"encoding/json"
	"errors"
	"strings"

	"yachtmatch/models"
)

// Exact section headers the safety summary must carry; the presenter's
// formatting depends on finding them verbatim.
const (
	WeatherSectionHeader = "Weather Forecast"
	SafetyTipsHeader     = "Mandatory Safety Tips for the Guest"
)

// decodeModelJSON parses a reasoning step's output into out. Models wrap
// JSON in markdown fences or lead with filler often enough that the
// boundary tolerates both before giving up.
func decodeModelJSON(raw string, out any) error {
	cleaned := stripCodeFence(raw)
	if err := json.Unmarshal([]byte(cleaned), out); err == nil {
		return nil
	}
	// Fall back to the outermost braces.
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return errors.New("no JSON object in output")
	}
	return json.Unmarshal([]byte(cleaned[start:end+1]), out)
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// normalizeRequirement enforces the interpreter's formatting rules on the
// model's output: lowercase location/occasion, a non-nil vibe list, and a
// confidence clamped into [0,1].
func normalizeRequirement(req *models.BookingRequirement) {
	if req.Location != nil {
		lower := strings.ToLower(strings.TrimSpace(*req.Location))
		req.Location = &lower
	}
	if req.Occasion != nil {
		lower := strings.ToLower(strings.TrimSpace(*req.Occasion))
		req.Occasion = &lower
	}
	if req.Vibe == nil {
		req.Vibe = []string{}
	}
	if req.Confidence < 0 {
		req.Confidence = 0
	}
	if req.Confidence > 1 {
		req.Confidence = 1
	}
}

// validateMatchedYacht rejects a yacht match without an identity; everything
// else about the record is taken verbatim.
func validateMatchedYacht(y *models.MatchedYacht) error {
	if strings.TrimSpace(y.ID) == "" {
		return errors.New("matched yacht has no id")
	}
	if strings.TrimSpace(y.YachtName) == "" {
		return errors.New("matched yacht has no name")
	}
	return nil
}

// validateMatchedTheme rejects a nameless theme and caps the decor list at
// the schema limit.
func validateMatchedTheme(t *models.ThemeRecord) error {
	if strings.TrimSpace(t.ThemeName) == "" {
		return errors.New("matched theme has no name")
	}
	if len(t.Decor) > models.MaxDecorItems {
		t.Decor = t.Decor[:models.MaxDecorItems]
	}
	return nil
}

// ensureSafetySections repairs a safety summary that dropped the contractual
// section headers, prepending the forecast section when needed.
func ensureSafetySections(summary, weather string) string {
	out := strings.TrimSpace(summary)
	if !strings.Contains(out, SafetyTipsHeader) {
		out = SafetyTipsHeader + "\n" + out
	}
	if !strings.Contains(out, WeatherSectionHeader) {
		out = WeatherSectionHeader + "\n" + weather + "\n\n" + out
	}
	return out
}
