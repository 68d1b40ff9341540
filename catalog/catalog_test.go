package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"yachtmatch/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYachts(t *testing.T) {
	path := writeSeed(t, "yachts.json", `[
		{"id": "Y1", "yacht_name": "Sea Breeze", "rate_hr": 5000, "max_capacity": 10,
		 "location": "goa", "food_included": true,
		 "routes": [{"route_name": "Sunset", "duration_hr": 3, "highlights": "fort views"}]}
	]`)

	yachts, err := LoadYachts(path)
	require.NoError(t, err)
	require.Len(t, yachts, 1)
	assert.Equal(t, "Sea Breeze", yachts[0].YachtName)
	assert.Equal(t, 5000.0, yachts[0].RateHr)
	require.Len(t, yachts[0].Routes, 1)
	assert.Equal(t, "Sunset", yachts[0].Routes[0].RouteName)
}

func TestLoadYachts_EmptyArray(t *testing.T) {
	path := writeSeed(t, "yachts.json", `[]`)

	_, err := LoadYachts(path)
	require.Error(t, err)
	assert.True(t, IsEmpty(err))
	assert.False(t, IsUnreadable(err))
}

func TestLoadYachts_MalformedJSON(t *testing.T) {
	path := writeSeed(t, "yachts.json", `{"not": "an array"`)

	_, err := LoadYachts(path)
	require.Error(t, err)
	assert.True(t, IsUnreadable(err))
}

func TestLoadYachts_MissingFile(t *testing.T) {
	_, err := LoadYachts(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, IsUnreadable(err))
}

func TestLoadThemes_EmptyArray(t *testing.T) {
	path := writeSeed(t, "themes.json", `[]`)

	_, err := LoadThemes(path)
	require.Error(t, err)
	assert.True(t, IsEmpty(err))
}

func TestCatalogLookup(t *testing.T) {
	cat := New([]models.YachtRecord{
		{ID: "Y1", YachtName: "Sea Breeze"},
		{ID: "Y2", YachtName: "Ocean Pearl"},
	}, nil)

	rec, ok := cat.YachtByID("Y2")
	require.True(t, ok)
	assert.Equal(t, "Ocean Pearl", rec.YachtName)

	_, ok = cat.YachtByID("UNKNOWN")
	assert.False(t, ok)
}

func TestCatalogCopiesAreIsolated(t *testing.T) {
	cat := New([]models.YachtRecord{{ID: "Y1", YachtName: "Sea Breeze"}}, nil)

	yachts := cat.Yachts()
	yachts[0].YachtName = "mutated"

	rec, ok := cat.YachtByID("Y1")
	require.True(t, ok)
	assert.Equal(t, "Sea Breeze", rec.YachtName)
}
