package catalog

import "strings"

// Fixed tag group matched by the regional cuisine toggle.
var regionalCuisineTags = []string{"Indian", "South Indian", "North Indian", "South Asian"}

// Approximate ₹-per-$ rate used ONLY to normalize prices for range
// filtering. This is a documented filtering convenience, not an FX
// lookup, and is never used for pricing.
const rupeeExchangeRate = 80.0

type DietaryFilters struct {
	Vegetarian bool `json:"vegetarian"`
	Vegan      bool `json:"vegan"`
	GlutenFree bool `json:"gluten_free"`
}

// Criteria describes one filter pass over the catalog. Zero value
// matches everything inside the price range.
type Criteria struct {
	Search          string         `json:"search"`
	RegionalCuisine bool           `json:"regional_cuisine"`
	EthnoTags       []string       `json:"ethno_tags"`
	PriceMin        float64        `json:"price_min"`
	PriceMax        float64        `json:"price_max"`
	CarbonScores    []CarbonScore  `json:"carbon_scores"`
	Dietary         DietaryFilters `json:"dietary"`
}

func (c Criteria) hasTag(tag string) bool {
	for _, t := range c.EthnoTags {
		if t == tag {
			return true
		}
	}
	return false
}

func (c Criteria) matchesSearch(d Dish) bool {
	if c.Search == "" {
		return true
	}
	q := strings.ToLower(c.Search)
	if strings.Contains(strings.ToLower(d.Name), q) ||
		strings.Contains(strings.ToLower(d.Description), q) {
		return true
	}
	for _, ing := range d.Ingredients {
		if strings.Contains(strings.ToLower(ing), q) {
			return true
		}
	}
	return false
}

func (c Criteria) matchesCuisine(d Dish) bool {
	// The regional toggle short-circuits the general tag filter:
	// only one of the two is ever applied.
	if c.RegionalCuisine {
		for _, t := range regionalCuisineTags {
			if d.HasTag(t) {
				return true
			}
		}
		return false
	}
	if len(c.EthnoTags) == 0 {
		return true
	}
	for _, t := range c.EthnoTags {
		if d.HasTag(t) {
			return true
		}
	}
	return false
}

func (c Criteria) matchesPrice(d Dish) bool {
	if c.PriceMin == 0 && c.PriceMax == 0 {
		return true
	}
	normalized := d.Price
	if d.Currency == "₹" {
		normalized = d.Price / rupeeExchangeRate
	}
	// Slider bounds are expressed in the currency implied by the
	// selected tags: rupees when "Indian" is selected, dollars otherwise.
	min, max := c.PriceMin, c.PriceMax
	if c.hasTag("Indian") {
		min /= rupeeExchangeRate
		max /= rupeeExchangeRate
	}
	return normalized >= min && normalized <= max
}

func (c Criteria) matchesCarbon(d Dish) bool {
	if len(c.CarbonScores) == 0 {
		return true
	}
	for _, s := range c.CarbonScores {
		if d.CarbonScore == s {
			return true
		}
	}
	return false
}

func (c Criteria) matchesDietary(d Dish) bool {
	if c.Dietary.Vegetarian && !d.IsVegetarian {
		return false
	}
	if c.Dietary.Vegan && !d.IsVegan {
		return false
	}
	if c.Dietary.GlutenFree && !d.IsGlutenFree {
		return false
	}
	return true
}

// Filter applies the criteria to dishes, preserving input order.
// Pure: identical inputs always yield identical outputs.
func Filter(dishes []Dish, c Criteria) []Dish {
	result := []Dish{}
	for _, d := range dishes {
		if !c.matchesSearch(d) {
			continue
		}
		if !c.matchesCuisine(d) {
			continue
		}
		if !c.matchesPrice(d) {
			continue
		}
		if !c.matchesCarbon(d) {
			continue
		}
		if !c.matchesDietary(d) {
			continue
		}
		result = append(result, d)
	}
	return result
}
