package waste

import "fmt"

// Suggestions groups the data-driven recommendations shown on the
// tracker's suggestions tab.
type Suggestions struct {
	TopWasteTypes []string   `json:"top_waste_types"`
	TopSource     Source     `json:"top_source"`
	TopMealPeriod MealPeriod `json:"top_meal_period"`
	Menu          []string   `json:"menu"`
	Portions      []string   `json:"portions"`
	Disposal      []string   `json:"disposal"`
}

// BuildSuggestions derives reduction advice from an aggregation.
// Returns nil when the log is empty — there is nothing to advise on.
func BuildSuggestions(agg Aggregation) *Suggestions {
	if agg.Total == 0 {
		return nil
	}

	top := agg.TopTypes(3)
	types := make([]string, len(top))
	for i, t := range top {
		types[i] = t.FoodType
	}

	topSource := maxKey(agg.BySource)
	topMeal := maxKey(agg.ByMealPeriod)

	s := &Suggestions{
		TopWasteTypes: types,
		TopSource:     topSource,
		TopMealPeriod: topMeal,
	}

	s.Menu = append(s.Menu,
		fmt.Sprintf("Reduce portion sizes for %s dishes to minimize leftovers", types[0]),
		fmt.Sprintf("Adjust menu planning to reduce %s offerings during %s", types[0], topMeal),
	)
	if len(types) > 1 {
		s.Menu = append(s.Menu,
			fmt.Sprintf("Consider reformulating recipes that use %s to improve consumption rates", types[1]))
	}

	s.Portions = append(s.Portions,
		fmt.Sprintf("Offer variable portion sizes for %s meals", topMeal),
		"Conduct regular plate waste audits to fine-tune portion sizes",
	)

	if agg.CompostPercentage < 50 {
		s.Disposal = append(s.Disposal,
			"Increase composting capacity and add clear signage for waste sorting")
	}
	if agg.ByDisposal[DisposalLandfill] > agg.ByDisposal[DisposalDonation] {
		s.Disposal = append(s.Disposal,
			"Implement a food donation program for safe, unused prepared foods")
	}
	s.Disposal = append(s.Disposal,
		fmt.Sprintf("Focus reduction efforts on the %s, the largest waste source", topSource))

	return s
}

// maxKey picks the heaviest key; ties break on the key's string
// form so repeated calls stay deterministic.
func maxKey[K ~string](m map[K]float64) K {
	var best K
	bestV := -1.0
	for k, v := range m {
		if v > bestV || (v == bestV && k < best) {
			best, bestV = k, v
		}
	}
	return best
}
