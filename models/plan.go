package models

import "fmt"

// PriceQuote is the deterministic cost breakdown for a charter.
type PriceQuote struct {
	YachtName        string  `json:"yacht_name"`
	RatePerHour      float64 `json:"rate_per_hour"`
	DurationHr       float64 `json:"duration_hr"`
	TotalCharterCost float64 `json:"total_charter_cost"`
	FoodIncluded     bool    `json:"food_included"`
}

// PriceError is the structured error payload the pricing calculator returns
// instead of raising, so the pipeline can surface it to the user.
type PriceError struct {
	Code    string `json:"code"`
	Message string `json:"error"`
}

func (e *PriceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// CompiledPlan merges the interpreter output, both planner matches and the
// pricing result into the single record the presenter renders. Built once
// per run; either Pricing or PricingError is set, never both.
type CompiledPlan struct {
	UserRequirements BookingRequirement `json:"user_requirements"`
	MatchedYacht     MatchedYacht       `json:"matched_yacht_data"`
	MatchedTheme     ThemeRecord        `json:"matched_theme_data"`
	Pricing          *PriceQuote        `json:"pricing,omitempty"`
	PricingError     *PriceError        `json:"pricing_error,omitempty"`
}
