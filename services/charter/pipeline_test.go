package charter

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"yachtmatch/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubEngine routes each prompt to a canned response by the step's
// instruction header, so the orchestration runs without a live model.
type stubEngine struct {
	responses map[string]string
	errs      map[string]error
}

func stepFor(prompt string) string {
	switch {
	case strings.Contains(prompt, "Needs Interpreter"):
		return "interpreter"
	case strings.Contains(prompt, "Yacht Matching Specialist"):
		return "yacht"
	case strings.Contains(prompt, "Event Theme Designer"):
		return "theme"
	case strings.Contains(prompt, "Safety Officer"):
		return "safety"
	case strings.Contains(prompt, "Presentation Agent"):
		return "presenter"
	default:
		return "unknown"
	}
}

func (s *stubEngine) Generate(_ context.Context, prompt string) (string, error) {
	step := stepFor(prompt)
	if err, ok := s.errs[step]; ok {
		return "", err
	}
	resp, ok := s.responses[step]
	if !ok {
		return "", nil
	}
	return resp, nil
}

const fullRequirementJSON = `{
	"location": "goa", "date": "2025-12-31", "start_time": "20:00",
	"duration_hr": 4, "guests": 5, "occasion": "new year party",
	"vibe": ["party", "loud"], "budget_total": 30000,
	"special_requirements": null, "confidence": 0.9
}`

func happyEngine() *stubEngine {
	return &stubEngine{
		responses: map[string]string{
			"interpreter": fullRequirementJSON,
			// Routes deliberately stripped; the planner must restore them
			// verbatim from the catalog record.
			"yacht":     `{"id": "Y1", "yacht_name": "Sea Breeze", "rate_hr": 5000, "routes": []}`,
			"theme":     `{"theme_name": "Neon Nights", "decor": ["neon LED strips"], "vibe_tags": ["party"]}`,
			"safety":    WeatherSectionHeader + "\nClear skies.\n\n" + SafetyTipsHeader + "\n1. Wear a life jacket.",
			"presenter": "Your New Year charter on Sea Breeze awaits!",
		},
		errs: map[string]error{},
	}
}

func pipelineWith(engine *stubEngine) *DefaultPipelineService {
	cat := testCatalog()
	return &DefaultPipelineService{
		Engine:      engine,
		Catalog:     cat,
		CompanyName: "Livin Charters",
		Logger:      zap.NewNop(),
	}
}

func TestPipelineRun(t *testing.T) {
	svc := pipelineWith(happyEngine())
	sess := &models.Session{SessionID: "s1", UserID: "u1"}

	out, err := svc.Run(context.Background(), "confirmed brief", sess)
	require.NoError(t, err)
	assert.Equal(t, "Your New Year charter on Sea Breeze awaits!", out)

	// Every slot written by its producing step.
	require.NotNil(t, sess.Slots.UserRequirements)
	require.NotNil(t, sess.Slots.MatchedYacht)
	require.NotNil(t, sess.Slots.MatchedTheme)
	assert.NotEmpty(t, sess.Slots.SafetySummary)
	require.NotNil(t, sess.Slots.CombinedPlan)

	// Deterministic pricing from the catalog record.
	plan := sess.Slots.CombinedPlan
	require.NotNil(t, plan.Pricing)
	assert.Equal(t, 20000.0, plan.Pricing.TotalCharterCost)
	assert.Nil(t, plan.PricingError)
}

func TestPipelineRun_RequirementFieldsSurviveCompilation(t *testing.T) {
	svc := pipelineWith(happyEngine())
	sess := &models.Session{SessionID: "s1", UserID: "u1"}

	_, err := svc.Run(context.Background(), "confirmed brief", sess)
	require.NoError(t, err)

	// Round-trip property: every BookingRequirement key appears in the
	// compiled plan's user_requirements block, nulls included.
	var reqKeys map[string]any
	require.NoError(t, json.Unmarshal([]byte(fullRequirementJSON), &reqKeys))

	compiled, err := json.Marshal(sess.Slots.CombinedPlan)
	require.NoError(t, err)
	var planMap map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(compiled, &planMap))

	var compiledReq map[string]any
	require.NoError(t, json.Unmarshal(planMap["user_requirements"], &compiledReq))
	for key := range reqKeys {
		_, present := compiledReq[key]
		assert.True(t, present, "key %q lost in compilation", key)
	}
}

func TestPipelineRun_PricingErrorRidesIntoPlan(t *testing.T) {
	engine := happyEngine()
	engine.responses["yacht"] = `{"id": "GHOST", "yacht_name": "Ghost Ship", "routes": []}`
	svc := pipelineWith(engine)
	sess := &models.Session{SessionID: "s1", UserID: "u1"}

	_, err := svc.Run(context.Background(), "confirmed brief", sess)
	require.NoError(t, err)

	plan := sess.Slots.CombinedPlan
	require.NotNil(t, plan)
	require.NotNil(t, plan.PricingError)
	assert.Equal(t, "yachtNotFound", plan.PricingError.Code)
	assert.Nil(t, plan.Pricing)
}

func TestPipelineRun_MalformedInterpreterOutput(t *testing.T) {
	engine := happyEngine()
	engine.responses["interpreter"] = "sorry, I cannot help with that"
	svc := pipelineWith(engine)
	sess := &models.Session{SessionID: "s1", UserID: "u1"}

	_, err := svc.Run(context.Background(), "confirmed brief", sess)
	require.Error(t, err)

	var perr *PipelineError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "malformedModelOutput", perr.Code)
	assert.Nil(t, sess.Slots.CombinedPlan)
}
