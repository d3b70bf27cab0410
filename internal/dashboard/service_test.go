package dashboard

import "testing"

func testLocations() []Location {
	return []Location{
		{ID: "a", Name: "Alpha Hall", WasteReduction: 20, CarbonSaved: 1000, SustainabilityScore: 70},
		{ID: "b", Name: "Beta Café", WasteReduction: 30, CarbonSaved: 2000, SustainabilityScore: 90},
		{ID: "c", Name: "Gamma Court", WasteReduction: 10, CarbonSaved: 500, SustainabilityScore: 80},
	}
}

func TestLeaderboardSortsByScore(t *testing.T) {
	s := NewService(testLocations(), nil)

	ranked := s.Leaderboard()
	if len(ranked) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(ranked))
	}

	want := []string{"b", "c", "a"}
	for i, row := range ranked {
		if row.ID != want[i] {
			t.Fatalf("expected %s at rank %d, got %s", want[i], i+1, row.ID)
		}
		if row.Rank != i+1 {
			t.Fatalf("expected rank %d, got %d", i+1, row.Rank)
		}
	}
}

func TestSummarize(t *testing.T) {
	s := NewService(testLocations(), nil)

	sum := s.Summarize()
	if sum.AverageWasteReduction != 20 {
		t.Fatalf("expected average 20, got %v", sum.AverageWasteReduction)
	}
	if sum.TotalCarbonSaved != 3500 {
		t.Fatalf("expected total 3500, got %v", sum.TotalCarbonSaved)
	}
	if sum.TopPerformer != "Beta Café" || sum.TopPerformerScore != 90 {
		t.Fatalf("unexpected top performer: %+v", sum)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := NewService(nil, nil)
	if sum := s.Summarize(); sum.TopPerformer != "" || sum.TotalCarbonSaved != 0 {
		t.Fatalf("expected zero summary, got %+v", sum)
	}
}

func TestFarmNetwork(t *testing.T) {
	farms := []Farm{
		{ID: "f1", Distance: 10, Sustainable: true},
		{ID: "f2", Distance: 20, Sustainable: true},
		{ID: "f3", Distance: 30, Sustainable: false},
	}
	s := NewService(nil, farms)

	stats := s.FarmNetwork()
	if stats.TotalPartners != 3 {
		t.Fatalf("expected 3 partners, got %d", stats.TotalPartners)
	}
	if stats.AverageDistance != 20 {
		t.Fatalf("expected average distance 20, got %v", stats.AverageDistance)
	}
	if stats.SustainablePct < 66 || stats.SustainablePct > 67 {
		t.Fatalf("expected ~66.7%%, got %v", stats.SustainablePct)
	}
}

func TestSeedDataIsConsistent(t *testing.T) {
	for _, loc := range SeedLocations() {
		if loc.SustainabilityScore < 0 || loc.SustainabilityScore > 100 {
			t.Fatalf("location %s has score %d out of range", loc.ID, loc.SustainabilityScore)
		}
	}
	for _, farm := range SeedFarms() {
		if farm.Distance <= 0 || len(farm.Products) == 0 {
			t.Fatalf("farm %s has incomplete data", farm.ID)
		}
	}
}
