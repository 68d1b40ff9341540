package models

// BookingRequirement is the structured record extracted from free-form user
// text by the needs interpreter. Fields the user never mentioned are nil,
// never omitted, so downstream steps can tell "unknown" from "empty".
type BookingRequirement struct {
	Location            *string  `json:"location"`
	Date                *string  `json:"date"`
	StartTime           *string  `json:"start_time"`
	DurationHr          *float64 `json:"duration_hr"`
	Guests              *int     `json:"guests"`
	Occasion            *string  `json:"occasion"`
	Vibe                []string `json:"vibe"`
	BudgetTotal         *float64 `json:"budget_total"`
	SpecialRequirements *string  `json:"special_requirements"`
	Confidence          float64  `json:"confidence"`
}

// ChecklistFields lists the booking details the supervisor must confirm
// before the pipeline may run, in the order they are asked about.
var ChecklistFields = []string{
	"location",
	"date",
	"start_time",
	"duration_hr",
	"guests",
	"occasion",
	"budget_total",
}

// Missing returns the checklist fields not yet confirmed.
func (r BookingRequirement) Missing() []string {
	var missing []string
	checks := map[string]bool{
		"location":     r.Location != nil,
		"date":         r.Date != nil,
		"start_time":   r.StartTime != nil,
		"duration_hr":  r.DurationHr != nil,
		"guests":       r.Guests != nil,
		"occasion":     r.Occasion != nil,
		"budget_total": r.BudgetTotal != nil,
	}
	for _, f := range ChecklistFields {
		if !checks[f] {
			missing = append(missing, f)
		}
	}
	return missing
}

// Merge copies every non-nil field of other into r. Confirmed facts are
// never un-confirmed; a later nil does not erase an earlier value.
func (r *BookingRequirement) Merge(other BookingRequirement) {
	if other.Location != nil {
		r.Location = other.Location
	}
	if other.Date != nil {
		r.Date = other.Date
	}
	if other.StartTime != nil {
		r.StartTime = other.StartTime
	}
	if other.DurationHr != nil {
		r.DurationHr = other.DurationHr
	}
	if other.Guests != nil {
		r.Guests = other.Guests
	}
	if other.Occasion != nil {
		r.Occasion = other.Occasion
	}
	if len(other.Vibe) > 0 {
		r.Vibe = other.Vibe
	}
	if other.BudgetTotal != nil {
		r.BudgetTotal = other.BudgetTotal
	}
	if other.SpecialRequirements != nil {
		r.SpecialRequirements = other.SpecialRequirements
	}
	if other.Confidence > 0 {
		r.Confidence = other.Confidence
	}
}
