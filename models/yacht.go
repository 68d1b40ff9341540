package models

// RouteDescriptor is one cruising route offered by a yacht.
type RouteDescriptor struct {
	RouteName  string  `json:"route_name" bson:"route_name"`
	DurationHr float64 `json:"duration_hr" bson:"duration_hr"`
	Highlights string  `json:"highlights" bson:"highlights"`
}

// YachtRecord is one fleet entry from the yacht catalog. Loaded once at
// startup and read-only for the lifetime of the process.
type YachtRecord struct {
	ID           string            `json:"id" bson:"id"`
	YachtName    string            `json:"yacht_name" bson:"yacht_name"`
	RateHr       float64           `json:"rate_hr" bson:"rate_hr"`
	MaxCapacity  int               `json:"max_capacity" bson:"max_capacity"`
	Location     string            `json:"location" bson:"location"`
	FoodIncluded bool              `json:"food_included" bson:"food_included"`
	Routes       []RouteDescriptor `json:"routes" bson:"routes"`
}

// MatchedYacht is the yacht matcher's per-request output: the selected
// record verbatim, plus the estimated/candidates variant used when no
// exact match exists.
type MatchedYacht struct {
	YachtRecord
	Estimated  bool          `json:"estimated,omitempty"`
	Candidates []YachtRecord `json:"candidates,omitempty"`
}
