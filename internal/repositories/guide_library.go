package repositories

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
)

//go:embed data/city_guides.json
var cityGuidesJSON []byte

// GuideTemplate is one hand-authored city record from the embedded asset.
// Section maps are keyed by budget level (budget / mid-range / luxury);
// itineraries by interest ("default" plus optional culture/food/nightlife
// variants). Content is static; the renderer interpolates budget figures.
type GuideTemplate struct {
	Key               string              `json:"key"`
	Name              string              `json:"name"`
	Aliases           []string            `json:"aliases,omitempty"`
	Overview          string              `json:"overview"`
	InterestOverviews map[string]string   `json:"interest_overviews,omitempty"`
	Itineraries       map[string][]string `json:"itineraries"`
	ExtraDay          string              `json:"extra_day,omitempty"`
	BudgetBreakdown   map[string]string   `json:"budget_breakdown"`
	MoneySavingTips   map[string]string   `json:"money_saving_tips"`
	LocalFood         map[string]string   `json:"local_food"`
	LocalSecret       string              `json:"local_secret"`
	PracticalInfo     string              `json:"practical_info"`
}

// GuideLibrary is the read-only per-city fallback guide table, populated at
// startup and shared between concurrent requests without locking.
type GuideLibrary interface {
	Find(city string) (*GuideTemplate, bool)
	Cities() []string
}

type guideLibrary struct {
	byKey map[string]*GuideTemplate
}

func NewGuideLibrary() (GuideLibrary, error) {
	var templates []*GuideTemplate
	if err := json.Unmarshal(cityGuidesJSON, &templates); err != nil {
		return nil, fmt.Errorf("parsing embedded city guides: %w", err)
	}

	byKey := make(map[string]*GuideTemplate, len(templates)*2)
	for _, tpl := range templates {
		if tpl.Key == "" || tpl.Name == "" {
			return nil, fmt.Errorf("city guide entry missing key or name")
		}
		byKey[NormalizeCityKey(tpl.Key)] = tpl
		for _, alias := range tpl.Aliases {
			byKey[NormalizeCityKey(alias)] = tpl
		}
	}
	return &guideLibrary{byKey: byKey}, nil
}

func (l *guideLibrary) Find(city string) (*GuideTemplate, bool) {
	tpl, ok := l.byKey[NormalizeCityKey(city)]
	return tpl, ok
}

func (l *guideLibrary) Cities() []string {
	seen := make(map[string]bool)
	var names []string
	for _, tpl := range l.byKey {
		if !seen[tpl.Name] {
			seen[tpl.Name] = true
			names = append(names, tpl.Name)
		}
	}
	sort.Strings(names)
	return names
}
