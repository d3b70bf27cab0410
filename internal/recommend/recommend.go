package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KishoreS200/Climate-Smart-Cafeteria/internal/catalog"
)

// Scoring weights. They sum to 1 so a perfect dish scores 1.0.
const (
	carbonWeight     = 0.4
	preferenceWeight = 0.3
	dietaryWeight    = 0.2
	popularityWeight = 0.1
)

// maxDishCarbon is the heaviest footprint in the menu dataset; it
// normalizes the carbon factor into [0, 1].
const maxDishCarbon = 5.8

const defaultMax = 5

// Profile carries the parts of a user relevant to scoring.
type Profile struct {
	Preferences         []string `json:"preferences"` // favorite dish IDs
	DietaryRestrictions []string `json:"dietary_restrictions"`
	MonthlyCarbonKg     float64  `json:"monthly_carbon_kg"`
}

// HistoryEntry is one logged meal.
type HistoryEntry struct {
	Date     string  `json:"date"` // YYYY-MM-DD
	CarbonKg float64 `json:"carbon_kg"`
}

// Recommendation pairs a dish with its score and a human-readable
// explanation of why it ranked where it did.
type Recommendation struct {
	Dish   catalog.Dish `json:"dish"`
	Score  float64      `json:"score"`
	Reason string       `json:"reason"`
}

func (p Profile) prefers(dishID string) bool {
	for _, id := range p.Preferences {
		if id == dishID {
			return true
		}
	}
	return false
}

func (p Profile) meetsRestrictions(d catalog.Dish) bool {
	for _, r := range p.DietaryRestrictions {
		switch strings.ToLower(r) {
		case "vegetarian":
			if !d.IsVegetarian {
				return false
			}
		case "vegan":
			if !d.IsVegan {
				return false
			}
		case "gluten-free":
			if !d.IsGlutenFree {
				return false
			}
		}
	}
	return true
}

// MealRecommendations scores every dish for the profile and returns
// the top max, highest score first. Ties keep menu order, so the
// result is deterministic. max <= 0 falls back to the default of 5.
func MealRecommendations(p Profile, dishes []catalog.Dish, max int) []Recommendation {
	if max <= 0 {
		max = defaultMax
	}

	recs := make([]Recommendation, 0, len(dishes))
	for _, d := range dishes {
		score := 0.0
		var reasons []string

		score += (1 - d.CarbonFootprint/maxDishCarbon) * carbonWeight
		reasons = append(reasons, fmt.Sprintf("Low carbon footprint (%.1f kg CO2e)", d.CarbonFootprint))

		if p.prefers(d.ID) {
			score += preferenceWeight
			reasons = append(reasons, "Matches your preferences")
		}
		if p.meetsRestrictions(d) {
			score += dietaryWeight
			reasons = append(reasons, "Meets your dietary restrictions")
		}

		score += float64(d.Popularity) / 10 * popularityWeight
		reasons = append(reasons, fmt.Sprintf("Popular choice (%d/10)", d.Popularity))

		recs = append(recs, Recommendation{
			Dish:   d,
			Score:  score,
			Reason: strings.Join(reasons, ", "),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if len(recs) > max {
		recs = recs[:max]
	}
	return recs
}

// Daily average footprint above this suggests plant-based swaps.
const highDailyCarbon = 3.0

// Monthly footprint above this is called out as above average.
const highMonthlyCarbon = 40.0

// CarbonTips derives personalized tips from the profile and meal
// history. An empty history yields no tips rather than a division
// by zero.
func CarbonTips(p Profile, history []HistoryEntry) []string {
	var tips []string

	if len(history) > 0 {
		daily := make(map[string]float64)
		for _, e := range history {
			daily[e.Date] += e.CarbonKg
		}
		var total float64
		for _, v := range daily {
			total += v
		}
		if total/float64(len(daily)) > highDailyCarbon {
			tips = append(tips, "Consider choosing more plant-based options to reduce your carbon footprint")
		}
	}

	if p.MonthlyCarbonKg > highMonthlyCarbon {
		tips = append(tips, "Your monthly carbon footprint is above average. Try incorporating more low-carbon meals")
	}

	return tips
}
