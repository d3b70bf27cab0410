package waste

import (
	"testing"
	"time"
)

func entry(date string, foodType string, qty float64, disposal DisposalMethod) Entry {
	return Entry{
		ID:             foodType + date,
		Date:           date,
		Source:         SourceCafeteria,
		FoodType:       foodType,
		Quantity:       qty,
		DisposalMethod: disposal,
		MealPeriod:     MealLunch,
	}
}

func TestAggregateEmptyLog(t *testing.T) {
	agg := Aggregate(nil)

	if agg.Total != 0 {
		t.Fatalf("expected zero total, got %v", agg.Total)
	}
	if agg.CompostPercentage != 0 {
		t.Fatalf("expected zero compost percentage, got %v", agg.CompostPercentage)
	}
	if len(agg.BySource) != 0 || len(agg.ByType) != 0 {
		t.Fatalf("expected empty maps, got %+v", agg)
	}
}

func TestAggregateCompostPercentage(t *testing.T) {
	entries := []Entry{
		entry("2025-04-01", "Rice", 2, DisposalCompost),
		entry("2025-04-01", "Bread", 8, DisposalLandfill),
	}

	agg := Aggregate(entries)
	if agg.Total != 10 {
		t.Fatalf("expected total 10, got %v", agg.Total)
	}
	if agg.CompostPercentage != 20 {
		t.Fatalf("expected 20%% compost, got %v", agg.CompostPercentage)
	}
}

func TestTopTypesDeterministicTieBreak(t *testing.T) {
	entries := []Entry{
		entry("2025-04-01", "Rice", 5, DisposalCompost),
		entry("2025-04-01", "Bread", 5, DisposalCompost),
		entry("2025-04-01", "Salad", 2, DisposalCompost),
	}

	top := Aggregate(entries).TopTypes(2)
	if len(top) != 2 {
		t.Fatalf("expected 2 types, got %d", len(top))
	}
	// Equal quantities sort alphabetically.
	if top[0].FoodType != "Bread" || top[1].FoodType != "Rice" {
		t.Fatalf("expected Bread then Rice, got %s then %s", top[0].FoodType, top[1].FoodType)
	}
}

func TestDailySeriesFillsMissingDays(t *testing.T) {
	end := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)
	entries := []Entry{
		entry("2025-04-10", "Rice", 3, DisposalCompost),
		entry("2025-04-08", "Bread", 1, DisposalLandfill),
	}

	series := DailySeries(entries, end, 3)
	if len(series) != 3 {
		t.Fatalf("expected 3 days, got %d", len(series))
	}
	if series[0].Date != "2025-04-08" || series[0].Quantity != 1 {
		t.Fatalf("unexpected first day: %+v", series[0])
	}
	if series[1].Date != "2025-04-09" || series[1].Quantity != 0 {
		t.Fatalf("expected zero-filled 2025-04-09, got %+v", series[1])
	}
	if series[2].Date != "2025-04-10" || series[2].Quantity != 3 {
		t.Fatalf("unexpected last day: %+v", series[2])
	}
}

func TestWeeklyTrendDown(t *testing.T) {
	now := time.Date(2025, 4, 14, 12, 0, 0, 0, time.UTC)
	entries := []Entry{
		// Last 7 days: 4 kg.
		entry("2025-04-12", "Rice", 4, DisposalCompost),
		// Previous 7 days: 8 kg.
		entry("2025-04-05", "Rice", 8, DisposalCompost),
	}

	trend := WeeklyTrend(entries, now)
	if !trend.Available {
		t.Fatal("expected an available trend")
	}
	if trend.Direction != "down" {
		t.Fatalf("expected down, got %s", trend.Direction)
	}
	if trend.Percentage != 50 {
		t.Fatalf("expected 50%%, got %v", trend.Percentage)
	}
}

func TestWeeklyTrendUnavailableWithoutBaseline(t *testing.T) {
	now := time.Date(2025, 4, 14, 12, 0, 0, 0, time.UTC)
	entries := []Entry{
		entry("2025-04-12", "Rice", 4, DisposalCompost),
	}

	trend := WeeklyTrend(entries, now)
	if trend.Available {
		t.Fatalf("expected unavailable trend, got %+v", trend)
	}
}

func TestBuildSuggestionsEmptyLog(t *testing.T) {
	if s := BuildSuggestions(Aggregate(nil)); s != nil {
		t.Fatalf("expected nil suggestions for empty log, got %+v", s)
	}
}

func TestBuildSuggestionsNamesHeaviestType(t *testing.T) {
	entries := []Entry{
		entry("2025-04-01", "Rice", 9, DisposalLandfill),
		entry("2025-04-01", "Bread", 2, DisposalCompost),
	}

	s := BuildSuggestions(Aggregate(entries))
	if s == nil {
		t.Fatal("expected suggestions")
	}
	if s.TopWasteTypes[0] != "Rice" {
		t.Fatalf("expected Rice first, got %v", s.TopWasteTypes)
	}
	if s.TopSource != SourceCafeteria {
		t.Fatalf("expected Cafeteria, got %s", s.TopSource)
	}
	// Under 50% compost must trigger the composting suggestion.
	if len(s.Disposal) == 0 {
		t.Fatal("expected disposal suggestions")
	}
}
