package charter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"yachtmatch/models"

	"go.uber.org/zap"
)

// planResult carries the three fan-out outputs. Each branch writes only its
// own field, so a failed branch can never corrupt a sibling's slot.
type planResult struct {
	yacht  *models.MatchedYacht
	theme  *models.ThemeRecord
	safety string
}

// plan runs the yacht matcher, theme matcher and safety checker concurrently
// over the same requirement and waits for all three. Any branch error fails
// the whole turn; there is no partial-result or retry policy.
func (s *DefaultPipelineService) plan(ctx context.Context, req models.BookingRequirement) (*planResult, error) {
	reqJSON, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal requirement: %w", err)
	}

	var (
		wg        sync.WaitGroup
		res       planResult
		yachtErr  error
		themeErr  error
		safetyErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		res.yacht, yachtErr = s.matchYacht(ctx, string(reqJSON))
	}()
	go func() {
		defer wg.Done()
		res.theme, themeErr = s.matchTheme(ctx, string(reqJSON))
	}()
	go func() {
		defer wg.Done()
		res.safety, safetyErr = s.checkSafety(ctx, string(reqJSON), req)
	}()
	wg.Wait()

	for _, branchErr := range []error{yachtErr, themeErr, safetyErr} {
		if branchErr != nil {
			return nil, branchErr
		}
	}
	return &res, nil
}

// matchYacht asks the model to pick one fleet entry. When the answer names a
// real catalog id, the canonical record is restored from the catalog so the
// nested route data stays verbatim regardless of what the model echoed back.
func (s *DefaultPipelineService) matchYacht(ctx context.Context, reqJSON string) (*models.MatchedYacht, error) {
	raw, err := s.Engine.Generate(ctx, buildYachtMatcherPrompt(reqJSON, s.Catalog.YachtsJSON()))
	if err != nil {
		return nil, fmt.Errorf("yacht matcher: %w", err)
	}

	var matched models.MatchedYacht
	if err := decodeModelJSON(raw, &matched); err != nil {
		return nil, newMalformedOutputError("YachtMatcher", err)
	}
	if err := validateMatchedYacht(&matched); err != nil {
		return nil, newMalformedOutputError("YachtMatcher", err)
	}
	if rec, ok := s.Catalog.YachtByID(matched.ID); ok {
		matched.YachtRecord = rec
	}
	s.Logger.Debug("yacht matched", zap.String("yachtId", matched.ID), zap.Bool("estimated", matched.Estimated))
	return &matched, nil
}

func (s *DefaultPipelineService) matchTheme(ctx context.Context, reqJSON string) (*models.ThemeRecord, error) {
	raw, err := s.Engine.Generate(ctx, buildThemeMatcherPrompt(reqJSON, s.Catalog.ThemesJSON()))
	if err != nil {
		return nil, fmt.Errorf("theme matcher: %w", err)
	}

	var theme models.ThemeRecord
	if err := decodeModelJSON(raw, &theme); err != nil {
		return nil, newMalformedOutputError("ThemeAgent", err)
	}
	if err := validateMatchedTheme(&theme); err != nil {
		return nil, newMalformedOutputError("ThemeAgent", err)
	}
	s.Logger.Debug("theme matched", zap.String("theme", theme.ThemeName))
	return &theme, nil
}

// checkSafety fetches the (stubbed) forecast and asks for the two-section
// advisory summary whose headers the presenter depends on.
func (s *DefaultPipelineService) checkSafety(ctx context.Context, reqJSON string, req models.BookingRequirement) (string, error) {
	location := "the charter area"
	if req.Location != nil && strings.TrimSpace(*req.Location) != "" {
		location = *req.Location
	}
	date := "the charter date"
	if req.Date != nil && strings.TrimSpace(*req.Date) != "" {
		date = *req.Date
	}
	weather := FetchWeather(location, date)

	raw, err := s.Engine.Generate(ctx, buildSafetyPrompt(reqJSON, weather))
	if err != nil {
		return "", fmt.Errorf("safety agent: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		return "", newMalformedOutputError("SafetyAgent", fmt.Errorf("empty summary"))
	}
	return ensureSafetySections(raw, weather), nil
}
