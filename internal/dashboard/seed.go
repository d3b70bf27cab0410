package dashboard

// Demo dataset shown until location metering is wired up.
func SeedLocations() []Location {
	return []Location{
		{ID: "loc-1", Name: "North Commons", Type: "Dining Hall", WasteReduction: 32.5, CarbonSaved: 4820, SustainabilityScore: 88},
		{ID: "loc-2", Name: "South Dining Hall", Type: "Dining Hall", WasteReduction: 28.1, CarbonSaved: 4150, SustainabilityScore: 82},
		{ID: "loc-3", Name: "Engineering Café", Type: "Café", WasteReduction: 21.4, CarbonSaved: 1680, SustainabilityScore: 74},
		{ID: "loc-4", Name: "Student Union Food Court", Type: "Food Court", WasteReduction: 18.9, CarbonSaved: 2390, SustainabilityScore: 69},
		{ID: "loc-5", Name: "Library Espresso Bar", Type: "Café", WasteReduction: 15.2, CarbonSaved: 540, SustainabilityScore: 61},
		{ID: "loc-6", Name: "Athletics Grill", Type: "Food Court", WasteReduction: 11.7, CarbonSaved: 1120, SustainabilityScore: 54},
	}
}

func SeedFarms() []Farm {
	return []Farm{
		{
			ID:          "farm-1",
			Name:        "Green Valley Organics",
			Description: "Certified organic vegetables grown without synthetic pesticides.",
			Distance:    8.5,
			Sustainable: true,
			Products:    []string{"Leafy Greens", "Tomatoes", "Root Vegetables"},
		},
		{
			ID:          "farm-2",
			Name:        "Hillside Dairy Cooperative",
			Description: "Small-herd dairy cooperative with pasture-raised cattle.",
			Distance:    14.2,
			Sustainable: true,
			Products:    []string{"Milk", "Yogurt", "Paneer"},
		},
		{
			ID:          "farm-3",
			Name:        "Riverbend Grains",
			Description: "Family farm supplying rice, lentils and seasonal pulses.",
			Distance:    22.0,
			Sustainable: true,
			Products:    []string{"Rice", "Lentils", "Chickpeas"},
		},
		{
			ID:          "farm-4",
			Name:        "Oakfield Poultry",
			Description: "Free-range poultry farm with conventional feed.",
			Distance:    17.8,
			Sustainable: false,
			Products:    []string{"Chicken", "Eggs"},
		},
		{
			ID:          "farm-5",
			Name:        "Cedar Creek Orchard",
			Description: "Low-spray orchard supplying seasonal fruit.",
			Distance:    11.3,
			Sustainable: true,
			Products:    []string{"Apples", "Berries", "Stone Fruit"},
		},
	}
}
