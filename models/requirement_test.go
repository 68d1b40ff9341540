package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sp(s string) *string { return &s }
func fp(f float64) *float64 { return &f }
func ip(i int) *int { return &i }

func TestMissing_EmptyRequirement(t *testing.T) {
	var req BookingRequirement
	assert.Equal(t, ChecklistFields, req.Missing())
}

func TestMissing_ReportsInChecklistOrder(t *testing.T) {
	req := BookingRequirement{
		Date:       sp("2025-12-31"),
		Guests:     ip(5),
		DurationHr: fp(4),
	}
	assert.Equal(t, []string{"location", "start_time", "occasion", "budget_total"}, req.Missing())
}

func TestMissing_CompleteRequirement(t *testing.T) {
	req := BookingRequirement{
		Location:    sp("goa"),
		Date:        sp("2025-12-31"),
		StartTime:   sp("20:00"),
		DurationHr:  fp(4),
		Guests:      ip(5),
		Occasion:    sp("new year party"),
		BudgetTotal: fp(30000),
	}
	assert.Empty(t, req.Missing())
}

func TestMerge_NilNeverErasesConfirmed(t *testing.T) {
	req := BookingRequirement{
		Location:    sp("goa"),
		BudgetTotal: fp(30000),
		Vibe:        []string{"party"},
		Confidence:  0.9,
	}
	req.Merge(BookingRequirement{Date: sp("2025-12-31")})

	require.NotNil(t, req.Location)
	assert.Equal(t, "goa", *req.Location)
	require.NotNil(t, req.BudgetTotal)
	assert.Equal(t, 30000.0, *req.BudgetTotal)
	require.NotNil(t, req.Date)
	assert.Equal(t, []string{"party"}, req.Vibe)
	assert.Equal(t, 0.9, req.Confidence)
}

func TestMerge_LaterValueWins(t *testing.T) {
	req := BookingRequirement{Guests: ip(5)}
	req.Merge(BookingRequirement{Guests: ip(8)})

	require.NotNil(t, req.Guests)
	assert.Equal(t, 8, *req.Guests)
}
