package charter

import (
	"testing"

	"yachtmatch/catalog"
	"yachtmatch/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]models.YachtRecord{
		{ID: "Y1", YachtName: "Sea Breeze", RateHr: 5000, MaxCapacity: 10, Location: "goa", FoodIncluded: true, Routes: []models.RouteDescriptor{}},
		{ID: "Y2", YachtName: "Ocean Pearl", RateHr: 8500.50, MaxCapacity: 20, Location: "goa", FoodIncluded: false},
	}, []models.ThemeRecord{
		{ThemeName: "Neon Nights", VibeTags: []string{"party"}, Decor: []string{"neon LED strips"}},
	})
}

func TestComputePrice(t *testing.T) {
	quote, priceErr := ComputePrice(testCatalog(), "Y1", 4)
	require.Nil(t, priceErr)

	assert.Equal(t, "Sea Breeze", quote.YachtName)
	assert.Equal(t, 5000.0, quote.RatePerHour)
	assert.Equal(t, 4.0, quote.DurationHr)
	assert.Equal(t, 20000.0, quote.TotalCharterCost)
	assert.True(t, quote.FoodIncluded)
}

func TestComputePrice_ExactForFractionalRates(t *testing.T) {
	// 8500.50 * 3 must not pick up binary float drift.
	quote, priceErr := ComputePrice(testCatalog(), "Y2", 3)
	require.Nil(t, priceErr)
	assert.Equal(t, 25501.50, quote.TotalCharterCost)
}

func TestComputePrice_MatchesRateTimesDuration(t *testing.T) {
	durations := []float64{0.5, 1, 2.5, 4, 8, 12, 24}
	for _, d := range durations {
		quote, priceErr := ComputePrice(testCatalog(), "Y1", d)
		require.Nil(t, priceErr)
		assert.Equal(t, 5000*d, quote.TotalCharterCost, "duration %v", d)
	}
}

func TestComputePrice_YachtNotFound(t *testing.T) {
	quote, priceErr := ComputePrice(testCatalog(), "UNKNOWN", 3)
	require.Nil(t, quote)
	require.NotNil(t, priceErr)

	assert.Equal(t, "yachtNotFound", priceErr.Code)
	assert.Contains(t, priceErr.Message, "UNKNOWN")
}

func TestComputePrice_RejectsNonPositiveDuration(t *testing.T) {
	for _, d := range []float64{0, -1, -3.5} {
		quote, priceErr := ComputePrice(testCatalog(), "Y1", d)
		require.Nil(t, quote, "duration %v", d)
		require.NotNil(t, priceErr, "duration %v", d)
		assert.Equal(t, "invalidDuration", priceErr.Code)
	}
}

func TestFetchWeather(t *testing.T) {
	got := FetchWeather("goa", "2025-12-31")
	assert.Equal(t, "Weather in goa on 2025-12-31: Clear skies, Wind 10kn (Safe).", got)
}
