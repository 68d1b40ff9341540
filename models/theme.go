package models

// MaxDecorItems caps the decor list of any theme handed downstream.
const MaxDecorItems = 6

// ThemeRecord is one event theme template from the theme catalog.
type ThemeRecord struct {
	ThemeName         string   `json:"theme_name" bson:"theme_name"`
	MusicPlaylist     string   `json:"music_playlist" bson:"music_playlist"`
	Decor             []string `json:"decor" bson:"decor"`
	MoodDescription   string   `json:"mood_description" bson:"mood_description"`
	FoodAndDrinks     string   `json:"food_and_drinks" bson:"food_and_drinks"`
	RecommendedTiming string   `json:"recommended_timing" bson:"recommended_timing"`
	VibeTags          []string `json:"vibe_tags" bson:"vibe_tags"`
	Confidence        float64  `json:"confidence" bson:"confidence"`
}
