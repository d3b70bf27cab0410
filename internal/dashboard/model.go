package dashboard

// Location is a campus dining location tracked on the leaderboard.
type Location struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Type                string  `json:"type"` // Dining Hall, Café, Food Court
	WasteReduction      float64 `json:"waste_reduction_pct"`
	CarbonSaved         float64 `json:"carbon_saved_kg"`
	SustainabilityScore int     `json:"sustainability_score"` // 0-100
}

// Farm is a local sourcing partner.
type Farm struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Distance    float64  `json:"distance_miles"`
	Sustainable bool     `json:"sustainable"`
	Products    []string `json:"products"`
}
