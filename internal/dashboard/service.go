package dashboard

import "sort"

// RankedLocation is a leaderboard row.
type RankedLocation struct {
	Rank int `json:"rank"`
	Location
}

// Summary holds the headline cards above the leaderboard.
type Summary struct {
	AverageWasteReduction float64 `json:"average_waste_reduction_pct"`
	TotalCarbonSaved      float64 `json:"total_carbon_saved_kg"`
	TopPerformer          string  `json:"top_performer"`
	TopPerformerScore     int     `json:"top_performer_score"`
}

// FarmStats summarizes the sourcing network.
type FarmStats struct {
	TotalPartners   int     `json:"total_partners"`
	AverageDistance float64 `json:"average_distance_miles"`
	SustainablePct  float64 `json:"sustainable_pct"`
}

type Service struct {
	locations []Location
	farms     []Farm
}

func NewService(locations []Location, farms []Farm) *Service {
	return &Service{locations: locations, farms: farms}
}

// Leaderboard returns locations ranked by sustainability score,
// highest first. Ties keep their seed order.
func (s *Service) Leaderboard() []RankedLocation {
	sorted := make([]Location, len(s.locations))
	copy(sorted, s.locations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SustainabilityScore > sorted[j].SustainabilityScore
	})

	ranked := make([]RankedLocation, len(sorted))
	for i, loc := range sorted {
		ranked[i] = RankedLocation{Rank: i + 1, Location: loc}
	}
	return ranked
}

// Summarize computes the headline metrics across all locations.
func (s *Service) Summarize() Summary {
	if len(s.locations) == 0 {
		return Summary{}
	}

	var wasteSum, carbonSum float64
	top := s.locations[0]
	for _, loc := range s.locations {
		wasteSum += loc.WasteReduction
		carbonSum += loc.CarbonSaved
		if loc.SustainabilityScore > top.SustainabilityScore {
			top = loc
		}
	}

	return Summary{
		AverageWasteReduction: wasteSum / float64(len(s.locations)),
		TotalCarbonSaved:      carbonSum,
		TopPerformer:          top.Name,
		TopPerformerScore:     top.SustainabilityScore,
	}
}

// Farms returns the sourcing partners in seed order.
func (s *Service) Farms() []Farm {
	out := make([]Farm, len(s.farms))
	copy(out, s.farms)
	return out
}

// FarmNetwork computes the farm summary cards.
func (s *Service) FarmNetwork() FarmStats {
	if len(s.farms) == 0 {
		return FarmStats{}
	}

	var distance float64
	sustainable := 0
	for _, f := range s.farms {
		distance += f.Distance
		if f.Sustainable {
			sustainable++
		}
	}

	return FarmStats{
		TotalPartners:   len(s.farms),
		AverageDistance: distance / float64(len(s.farms)),
		SustainablePct:  float64(sustainable) / float64(len(s.farms)) * 100,
	}
}
