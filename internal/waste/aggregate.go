package waste

import (
	"sort"
	"time"
)

// TypeTotal is a food type with its accumulated quantity.
type TypeTotal struct {
	FoodType string  `json:"food_type"`
	Quantity float64 `json:"quantity"`
}

// Aggregation is a pure reduction over the log, recomputed on every
// call. No caching; the expected log volumes do not need it.
type Aggregation struct {
	Total             float64                    `json:"total_kg"`
	BySource          map[Source]float64         `json:"by_source"`
	ByType            map[string]float64         `json:"by_type"`
	ByDisposal        map[DisposalMethod]float64 `json:"by_disposal"`
	ByMealPeriod      map[MealPeriod]float64     `json:"by_meal_period"`
	CompostPercentage float64                    `json:"compost_percentage"`
}

// Aggregate reduces the log. An empty log yields zero totals and
// empty maps, never an error and never NaN.
func Aggregate(entries []Entry) Aggregation {
	agg := Aggregation{
		BySource:     make(map[Source]float64),
		ByType:       make(map[string]float64),
		ByDisposal:   make(map[DisposalMethod]float64),
		ByMealPeriod: make(map[MealPeriod]float64),
	}

	for _, e := range entries {
		agg.Total += e.Quantity
		agg.BySource[e.Source] += e.Quantity
		agg.ByType[e.FoodType] += e.Quantity
		agg.ByDisposal[e.DisposalMethod] += e.Quantity
		agg.ByMealPeriod[e.MealPeriod] += e.Quantity
	}

	if agg.Total > 0 {
		agg.CompostPercentage = agg.ByDisposal[DisposalCompost] / agg.Total * 100
	}
	return agg
}

// TopTypes returns the n heaviest food types in descending order.
// Ties break alphabetically so the output is deterministic.
func (a Aggregation) TopTypes(n int) []TypeTotal {
	totals := make([]TypeTotal, 0, len(a.ByType))
	for t, q := range a.ByType {
		totals = append(totals, TypeTotal{FoodType: t, Quantity: q})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Quantity != totals[j].Quantity {
			return totals[i].Quantity > totals[j].Quantity
		}
		return totals[i].FoodType < totals[j].FoodType
	})
	if n < len(totals) {
		totals = totals[:n]
	}
	return totals
}

// DayTotal is one point of the daily series.
type DayTotal struct {
	Date     string  `json:"date"`
	Quantity float64 `json:"quantity"`
}

// DailySeries sums the log per day for the `days` days ending at
// `end`, oldest first. Days without entries appear with zero.
func DailySeries(entries []Entry, end time.Time, days int) []DayTotal {
	byDate := make(map[string]float64)
	for _, e := range entries {
		byDate[e.Date] += e.Quantity
	}

	series := make([]DayTotal, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := end.AddDate(0, 0, -i).Format("2006-01-02")
		series = append(series, DayTotal{Date: date, Quantity: byDate[date]})
	}
	return series
}

// Trend compares the last 7 days of the log against the 7 days
// before that. Unlike the placeholder it replaces, the direction and
// percentage come from the log itself; when the previous period has
// no waste the trend is reported as unavailable.
type Trend struct {
	Available  bool    `json:"available"`
	Direction  string  `json:"direction,omitempty"` // "up" or "down"
	Percentage float64 `json:"percentage,omitempty"`
}

func WeeklyTrend(entries []Entry, now time.Time) Trend {
	var current, previous float64

	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	for _, e := range entries {
		d, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			continue
		}
		switch {
		case d.After(weekAgo) && !d.After(now):
			current += e.Quantity
		case d.After(twoWeeksAgo) && !d.After(weekAgo):
			previous += e.Quantity
		}
	}

	if previous == 0 {
		return Trend{}
	}

	change := (current - previous) / previous * 100
	direction := "up"
	if change < 0 {
		direction = "down"
		change = -change
	}
	return Trend{Available: true, Direction: direction, Percentage: change}
}
