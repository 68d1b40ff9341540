package charter

import (
	"context"
	"errors"
	"testing"

	"yachtmatch/catalog"
	"yachtmatch/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func planRequirement() models.BookingRequirement {
	return models.BookingRequirement{
		Location:   strp("goa"),
		Date:       strp("2025-12-31"),
		Vibe:       []string{"party"},
		Confidence: 0.9,
	}
}

func TestPlan_FanoutProducesAllThreeBranches(t *testing.T) {
	svc := pipelineWith(happyEngine())

	res, err := svc.plan(context.Background(), planRequirement())
	require.NoError(t, err)

	require.NotNil(t, res.yacht)
	assert.Equal(t, "Y1", res.yacht.ID)
	require.NotNil(t, res.theme)
	assert.Equal(t, "Neon Nights", res.theme.ThemeName)
	assert.Contains(t, res.safety, WeatherSectionHeader)
	assert.Contains(t, res.safety, SafetyTipsHeader)
}

func TestPlan_RestoresRoutesFromCatalog(t *testing.T) {
	routes := []models.RouteDescriptor{
		{RouteName: "Sunset Fort Loop", DurationHr: 3, Highlights: "Aguada fort from the water"},
		{RouteName: "Midnight Bay", DurationHr: 5, Highlights: "open-sea anchoring"},
	}
	cat := catalog.New([]models.YachtRecord{
		{ID: "Y1", YachtName: "Sea Breeze", RateHr: 5000, MaxCapacity: 10, Location: "goa", FoodIncluded: true, Routes: routes},
	}, []models.ThemeRecord{
		{ThemeName: "Neon Nights", VibeTags: []string{"party"}, Decor: []string{"neon LED strips"}},
	})
	svc := &DefaultPipelineService{
		Engine:      happyEngine(),
		Catalog:     cat,
		CompanyName: "Livin Charters",
		Logger:      zap.NewNop(),
	}

	// The stub engine answers with an empty routes array; the canonical
	// record must win.
	res, err := svc.plan(context.Background(), planRequirement())
	require.NoError(t, err)
	require.NotNil(t, res.yacht)
	assert.Equal(t, routes, res.yacht.Routes)
	assert.Equal(t, 5000.0, res.yacht.RateHr)
	assert.True(t, res.yacht.FoodIncluded)
}

func TestPlan_OneFailingBranchFailsTheTurn(t *testing.T) {
	engine := happyEngine()
	engine.errs["theme"] = errors.New("model unavailable")
	svc := pipelineWith(engine)

	res, err := svc.plan(context.Background(), planRequirement())
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "theme matcher")
}

func TestPlan_BranchFailureDoesNotTouchSessionSlots(t *testing.T) {
	engine := happyEngine()
	engine.responses["yacht"] = `{"yacht_name": "Ghost"}`
	svc := pipelineWith(engine)
	sess := &models.Session{SessionID: "s1", UserID: "u1"}

	_, err := svc.Run(context.Background(), "confirmed brief", sess)
	require.Error(t, err)

	var perr *PipelineError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "YachtMatcher", perr.Step)

	// Interpretation succeeded before the fan-out, so its slot stands.
	// Nothing downstream of the failed branch may be written.
	assert.NotNil(t, sess.Slots.UserRequirements)
	assert.Nil(t, sess.Slots.MatchedYacht)
	assert.Nil(t, sess.Slots.MatchedTheme)
	assert.Empty(t, sess.Slots.SafetySummary)
	assert.Nil(t, sess.Slots.CombinedPlan)
}

func TestCheckSafety_FallbackLocationAndDate(t *testing.T) {
	svc := pipelineWith(happyEngine())

	summary, err := svc.checkSafety(context.Background(), "{}", models.BookingRequirement{})
	require.NoError(t, err)
	assert.NotEmpty(t, summary)
	// FetchWeather is deterministic; the fallback phrasing must be used
	// when location and date are unknown.
	assert.Equal(t,
		"Weather in the charter area on the charter date: Clear skies, Wind 10kn (Safe).",
		FetchWeather("the charter area", "the charter date"))
}

func TestCheckSafety_EmptySummaryIsMalformed(t *testing.T) {
	engine := happyEngine()
	engine.responses["safety"] = "   \n  "
	svc := pipelineWith(engine)

	_, err := svc.checkSafety(context.Background(), "{}", planRequirement())
	require.Error(t, err)

	var perr *PipelineError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "SafetyAgent", perr.Step)
}
