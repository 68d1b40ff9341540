package supervisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"yachtmatch/models"
	"yachtmatch/services/charter"

	"go.uber.org/zap"
)

// How much recent conversation the question-phrasing prompt sees.
const recentTurnWindow = 6

// HandleTurn processes one user message. The gate is a two-state machine per
// turn: Collecting until every checklist field is confirmed, then Dispatched
// with a single pipeline invocation. No tool runs while details are missing.
func (g *DefaultGateService) HandleTurn(ctx context.Context, userID, message string) (string, *models.Session, error) {
	sess, err := g.Sessions.Get(ctx, userID)
	if err != nil {
		return "", nil, err
	}
	if sess == nil {
		if sess, err = g.Sessions.Create(ctx, userID); err != nil {
			return "", nil, err
		}
		g.Logger.Info("session created", zap.String("userId", userID), zap.String("sessionId", sess.SessionID))
	}

	sess.AppendTurn("user", message)
	sess.Dispatched = false

	extracted, err := charter.ExtractRequirement(ctx, g.Engine, g.extractionBrief(sess, message))
	if err != nil {
		return "", nil, err
	}
	sess.Confirmed.Merge(*extracted)

	missing := sess.Confirmed.Missing()
	if len(missing) > 0 {
		reply := g.askOneQuestion(ctx, sess, missing)
		sess.AppendTurn("assistant", reply)
		if err := g.Sessions.Save(ctx, sess); err != nil {
			return "", nil, err
		}
		g.scheduleFollowup(sess, missing)
		return reply, sess, nil
	}

	brief := synthesizeBrief(sess.Confirmed, sess.State["company_name"])
	itinerary, err := g.Pipeline.Run(ctx, brief, sess)
	if err != nil {
		return "", nil, err
	}
	sess.Dispatched = true
	sess.AppendTurn("assistant", itinerary)
	if err := g.Sessions.Save(ctx, sess); err != nil {
		return "", nil, err
	}
	return itinerary, sess, nil
}

// extractionBrief gives the interpreter the already-confirmed facts plus the
// new message, so a detail confirmed three turns ago is never re-asked.
func (g *DefaultGateService) extractionBrief(sess *models.Session, message string) string {
	confirmed, _ := json.Marshal(sess.Confirmed)
	return fmt.Sprintf("Previously confirmed booking details (JSON, null means unknown):\n%s\n\nLatest user message:\n%s", confirmed, message)
}

// askOneQuestion phrases the single clarifying follow-up. The checklist
// decision is already made deterministically; the model only words the
// question, and a canned fallback covers an engine failure.
func (g *DefaultGateService) askOneQuestion(ctx context.Context, sess *models.Session, missing []string) string {
	prompt := charter.BuildQuestionPrompt(g.CompanyName, strings.Join(missing, ", "), recentHistory(sess))
	if q, err := g.Engine.Generate(ctx, prompt); err == nil && strings.TrimSpace(q) != "" {
		return strings.TrimSpace(q)
	} else if err != nil {
		g.Logger.Warn("question phrasing failed, using fallback", zap.Error(err))
	}
	return fmt.Sprintf("To plan your charter I still need a few details: %s. Could you share your %s?",
		strings.Join(missing, ", "), missing[0])
}

func (g *DefaultGateService) scheduleFollowup(sess *models.Session, missing []string) {
	if g.Followups == nil {
		return
	}
	payload := models.FollowupPayload{
		UserID:    sess.UserID,
		SessionID: sess.SessionID,
		Missing:   missing,
		AskedAt:   time.Now().Format(time.RFC3339),
	}
	if err := g.Followups.ScheduleFollowup(payload, g.FollowupDelay); err != nil {
		g.Logger.Warn("failed to schedule followup", zap.String("userId", sess.UserID), zap.Error(err))
	}
}

func recentHistory(sess *models.Session) string {
	turns := sess.History
	if len(turns) > recentTurnWindow {
		turns = turns[len(turns)-recentTurnWindow:]
	}
	var sb strings.Builder
	for _, t := range turns {
		fmt.Fprintf(&sb, "%s: %s\n", t.Role, t.Text)
	}
	return sb.String()
}

// synthesizeBrief renders the confirmed checklist as the full combined user
// brief the pipeline is dispatched with.
func synthesizeBrief(req models.BookingRequirement, companyName string) string {
	var sb strings.Builder
	if companyName != "" {
		fmt.Fprintf(&sb, "Confirmed charter booking brief for %s.\n", companyName)
	} else {
		sb.WriteString("Confirmed charter booking brief.\n")
	}
	if req.Location != nil {
		fmt.Fprintf(&sb, "Location: %s\n", *req.Location)
	}
	if req.Date != nil {
		fmt.Fprintf(&sb, "Date: %s\n", *req.Date)
	}
	if req.StartTime != nil {
		fmt.Fprintf(&sb, "Start time: %s\n", *req.StartTime)
	}
	if req.DurationHr != nil {
		fmt.Fprintf(&sb, "Duration: %g hours\n", *req.DurationHr)
	}
	if req.Guests != nil {
		fmt.Fprintf(&sb, "Guests: %d\n", *req.Guests)
	}
	if req.Occasion != nil {
		fmt.Fprintf(&sb, "Occasion: %s\n", *req.Occasion)
	}
	if len(req.Vibe) > 0 {
		fmt.Fprintf(&sb, "Vibe: %s\n", strings.Join(req.Vibe, ", "))
	}
	if req.BudgetTotal != nil {
		fmt.Fprintf(&sb, "Total budget: %g\n", *req.BudgetTotal)
	}
	if req.SpecialRequirements != nil {
		fmt.Fprintf(&sb, "Special requirements: %s\n", *req.SpecialRequirements)
	}
	return sb.String()
}
