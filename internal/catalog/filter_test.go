package catalog

import "testing"

func ids(dishes []Dish) []string {
	out := make([]string, len(dishes))
	for i, d := range dishes {
		out[i] = d.ID
	}
	return out
}

func assertIDs(t *testing.T, got []Dish, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d dishes %v, got %d %v", len(want), want, len(got), ids(got))
	}
	for i, d := range got {
		if d.ID != want[i] {
			t.Fatalf("expected dish %s at position %d, got %s", want[i], i, d.ID)
		}
	}
}

func TestFilterEmptyCriteriaMatchesEverything(t *testing.T) {
	dishes := Seed()
	got := Filter(dishes, Criteria{})
	if len(got) != len(dishes) {
		t.Fatalf("expected all %d dishes, got %d", len(dishes), len(got))
	}
	// Order must be preserved.
	for i := range got {
		if got[i].ID != dishes[i].ID {
			t.Fatalf("expected catalog order, got %v", ids(got))
		}
	}
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	got := Filter(Seed(), Criteria{Search: "CHICKPEA"})
	assertIDs(t, got, "1", "7")
}

func TestFilterSearchCoversIngredients(t *testing.T) {
	// "saffron" appears only in the biryani's ingredient list.
	got := Filter(Seed(), Criteria{Search: "saffron"})
	assertIDs(t, got, "5")
}

func TestFilterRegionalToggleShortCircuitsTags(t *testing.T) {
	// With the toggle on, the tag list must be ignored entirely.
	got := Filter(Seed(), Criteria{
		RegionalCuisine: true,
		EthnoTags:       []string{"Italian"},
	})
	assertIDs(t, got, "2", "3", "5", "7", "9", "11")
}

func TestFilterByTag(t *testing.T) {
	got := Filter(Seed(), Criteria{EthnoTags: []string{"Japanese"}})
	assertIDs(t, got, "6")
}

func TestFilterPriceNormalizesRupees(t *testing.T) {
	// Dollar bounds: rupee prices are divided by the fixed rate, so
	// no rupee dish lands in [5, 10].
	got := Filter(Seed(), Criteria{PriceMin: 5, PriceMax: 10})
	assertIDs(t, got, "1", "8", "10")
}

func TestFilterPriceBoundsFollowIndianTag(t *testing.T) {
	// When "Indian" is selected the slider is in rupees, so the
	// bounds are normalized the same way as the prices.
	got := Filter(Seed(), Criteria{
		EthnoTags: []string{"Indian"},
		PriceMin:  100,
		PriceMax:  160,
	})
	assertIDs(t, got, "2", "3", "7")
}

func TestFilterZeroPriceBoundsSkipPriceCheck(t *testing.T) {
	got := Filter(Seed(), Criteria{PriceMin: 0, PriceMax: 0})
	if len(got) != len(Seed()) {
		t.Fatalf("zero bounds should not filter, got %d dishes", len(got))
	}
}

func TestFilterByCarbonScore(t *testing.T) {
	got := Filter(Seed(), Criteria{CarbonScores: []CarbonScore{CarbonLow}})
	assertIDs(t, got, "1", "2", "7", "9", "12")
}

func TestFilterDietaryIsConjunctive(t *testing.T) {
	got := Filter(Seed(), Criteria{
		Dietary: DietaryFilters{Vegetarian: true, Vegan: true},
	})
	assertIDs(t, got, "1", "2", "7", "9")
}

func TestFilterCombinedCriteria(t *testing.T) {
	got := Filter(Seed(), Criteria{
		RegionalCuisine: true,
		CarbonScores:    []CarbonScore{CarbonLow},
		Dietary:         DietaryFilters{GlutenFree: true},
	})
	assertIDs(t, got, "2", "7", "9")
}

func TestFilterIsPure(t *testing.T) {
	dishes := Seed()
	crit := Criteria{Search: "rice", CarbonScores: []CarbonScore{CarbonLow}}

	first := Filter(dishes, crit)
	second := Filter(dishes, crit)

	if len(first) != len(second) {
		t.Fatalf("expected identical results, got %d then %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("expected identical order, got %v and %v", ids(first), ids(second))
		}
	}
}
