package charter

import (
	"yachtmatch/models"

	"go.uber.org/zap"
)

// compile merges the requirement, both matches and the pricing result into
// the single CompiledPlan the presenter consumes. Compilation is fully
// deterministic: no reasoning call sits between the fan-in and the price.
// A pricing failure rides along as a structured payload instead of failing
// the turn, so the presenter can explain it to the user.
func (s *DefaultPipelineService) compile(req models.BookingRequirement, yacht models.MatchedYacht, theme models.ThemeRecord) *models.CompiledPlan {
	plan := &models.CompiledPlan{
		UserRequirements: req,
		MatchedYacht:     yacht,
		MatchedTheme:     theme,
	}

	duration := 0.0
	if req.DurationHr != nil {
		duration = *req.DurationHr
	}

	quote, priceErr := ComputePrice(s.Catalog, yacht.ID, duration)
	if priceErr != nil {
		s.Logger.Warn("pricing failed",
			zap.String("yachtId", yacht.ID),
			zap.Float64("durationHr", duration),
			zap.String("code", priceErr.Code))
		plan.PricingError = priceErr
		return plan
	}

	plan.Pricing = quote
	return plan
}
