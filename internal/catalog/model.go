package catalog

// CarbonScore is the coarse Low/Medium/High bucket derived
// from a dish's carbon footprint
type CarbonScore string

const (
	CarbonLow    CarbonScore = "Low"
	CarbonMedium CarbonScore = "Medium"
	CarbonHigh   CarbonScore = "High"
)

// Footprint thresholds (kg CO2e per serving)
const (
	lowCarbonMax    = 1.0
	mediumCarbonMax = 3.0
)

// ScoreFor buckets a footprint into a CarbonScore
func ScoreFor(footprint float64) CarbonScore {
	switch {
	case footprint < lowCarbonMax:
		return CarbonLow
	case footprint <= mediumCarbonMax:
		return CarbonMedium
	default:
		return CarbonHigh
	}
}

type Nutrition struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// Dish is immutable reference data, seeded at process start
type Dish struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	Ingredients     []string    `json:"ingredients"`
	Price           float64     `json:"price"`
	Currency        string      `json:"currency"` // "$" or "₹"
	CarbonFootprint float64     `json:"carbon_footprint"`
	CarbonScore     CarbonScore `json:"carbon_score"`
	Nutrition       Nutrition   `json:"nutrition"`
	EthnoTags       []string    `json:"ethno_tags"`
	IsVegetarian    bool        `json:"is_vegetarian"`
	IsVegan         bool        `json:"is_vegan"`
	IsGlutenFree    bool        `json:"is_gluten_free"`
	Allergens       []string    `json:"allergens"`
	Popularity      int         `json:"popularity"` // 0-10
}

func (d Dish) HasTag(tag string) bool {
	for _, t := range d.EthnoTags {
		if t == tag {
			return true
		}
	}
	return false
}
