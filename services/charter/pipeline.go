package charter

import (
	"context"
	"strings"

	"yachtmatch/models"

	"go.uber.org/zap"
)

// Run executes one full pipeline turn over a synthesized brief:
// interpret -> parallel plan -> compile -> present. Slots are written in
// stage order; a stage failure leaves earlier slots intact and later ones
// untouched.
func (s *DefaultPipelineService) Run(ctx context.Context, brief string, sess *models.Session) (string, error) {
	s.Logger.Info("pipeline dispatched",
		zap.String("userId", sess.UserID),
		zap.String("sessionId", sess.SessionID))

	req, err := s.interpret(ctx, brief)
	if err != nil {
		return "", err
	}
	sess.Slots.UserRequirements = req

	res, err := s.plan(ctx, *req)
	if err != nil {
		return "", err
	}

	// Completeness check: compilation must never start from a missing slot.
	if res.yacht == nil {
		return "", newPlanningIncompleteError("matched_yacht_data")
	}
	if res.theme == nil {
		return "", newPlanningIncompleteError("matched_theme_data")
	}
	if strings.TrimSpace(res.safety) == "" {
		return "", newPlanningIncompleteError("safety_summary")
	}
	sess.Slots.MatchedYacht = res.yacht
	sess.Slots.MatchedTheme = res.theme
	sess.Slots.SafetySummary = res.safety

	plan := s.compile(*req, *res.yacht, *res.theme)
	sess.Slots.CombinedPlan = plan

	itinerary, err := s.present(ctx, plan, res.safety)
	if err != nil {
		return "", err
	}

	s.Logger.Info("pipeline completed",
		zap.String("userId", sess.UserID),
		zap.String("yachtId", plan.MatchedYacht.ID))
	return itinerary, nil
}
