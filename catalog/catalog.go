package catalog

import (
	"encoding/json"
	"os"

	"yachtmatch/models"
)

// Catalog is the process-wide read-only reference data: the yacht fleet and
// the event theme templates. It is built once at startup and passed by
// reference into every component that needs it; nothing mutates it after
// construction.
type Catalog struct {
	yachts   []models.YachtRecord
	themes   []models.ThemeRecord
	yachtIdx map[string]int
}

// New builds a Catalog from already-loaded records.
func New(yachts []models.YachtRecord, themes []models.ThemeRecord) *Catalog {
	idx := make(map[string]int, len(yachts))
	for i, y := range yachts {
		idx[y.ID] = i
	}
	return &Catalog{yachts: yachts, themes: themes, yachtIdx: idx}
}

// YachtByID looks up a fleet entry by its unique id.
func (c *Catalog) YachtByID(id string) (models.YachtRecord, bool) {
	i, ok := c.yachtIdx[id]
	if !ok {
		return models.YachtRecord{}, false
	}
	return c.yachts[i], true
}

// Yachts returns a copy of the fleet list.
func (c *Catalog) Yachts() []models.YachtRecord {
	out := make([]models.YachtRecord, len(c.yachts))
	copy(out, c.yachts)
	return out
}

// Themes returns a copy of the theme template list.
func (c *Catalog) Themes() []models.ThemeRecord {
	out := make([]models.ThemeRecord, len(c.themes))
	copy(out, c.themes)
	return out
}

// YachtsJSON renders the fleet as an indented JSON array for prompt text.
func (c *Catalog) YachtsJSON() string {
	b, _ := json.MarshalIndent(c.yachts, "", "  ")
	return string(b)
}

// ThemesJSON renders the theme templates as an indented JSON array.
func (c *Catalog) ThemesJSON() string {
	b, _ := json.MarshalIndent(c.themes, "", "  ")
	return string(b)
}

// LoadYachts reads the yacht fleet from a JSON seed file.
func LoadYachts(path string) ([]models.YachtRecord, error) {
	var yachts []models.YachtRecord
	if err := loadSeed(path, &yachts); err != nil {
		return nil, err
	}
	if len(yachts) == 0 {
		return nil, newEmptyError(path)
	}
	return yachts, nil
}

// LoadThemes reads the theme templates from a JSON seed file.
func LoadThemes(path string) ([]models.ThemeRecord, error) {
	var themes []models.ThemeRecord
	if err := loadSeed(path, &themes); err != nil {
		return nil, err
	}
	if len(themes) == 0 {
		return nil, newEmptyError(path)
	}
	return themes, nil
}

func loadSeed(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return newUnreadableError(path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return newUnreadableError(path, err)
	}
	return nil
}
