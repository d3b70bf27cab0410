package pricing

import (
	"errors"

	"github.com/KishoreS200/Climate-Smart-Cafeteria/internal/cart"
	"github.com/KishoreS200/Climate-Smart-Cafeteria/internal/catalog"
)

// ErrEmptyCart guards the average-footprint division; an empty cart
// has no meaningful display rate.
var ErrEmptyCart = errors.New("cart is empty")

// Charged policy: each Low-carbon line is reduced by a flat 10%.
const lowCarbonLineDiscount = 0.10

// Display policy thresholds over the cart's average footprint.
const (
	displayRateLowAvg = 1.0 // avg < 1.0 kg CO2e → 10%
	displayRateMidAvg = 2.0 // avg < 2.0 kg CO2e → 5%
)

// Fixed baseline (kg CO2e) for a conventional order, used only for
// the "you saved" line on the confirmation screen.
const conventionalOrderCarbon = 5.0

// SubtotalsByCurrency sums price*quantity per currency symbol.
// Currencies are never converted or merged; a multi-currency cart
// yields one total per currency.
func SubtotalsByCurrency(items []cart.Item) map[string]float64 {
	totals := make(map[string]float64)
	for _, it := range items {
		totals[it.Dish.Currency] += it.Dish.Price * float64(it.Quantity)
	}
	return totals
}

// DiscountedTotalsByCurrency applies the charged line-item policy:
// Low-carbon lines pay 90% of their line total, everything else pays
// full price. This — not the display rate — is what the customer is
// actually charged.
func DiscountedTotalsByCurrency(items []cart.Item) map[string]float64 {
	totals := make(map[string]float64)
	for _, it := range items {
		line := it.Dish.Price * float64(it.Quantity)
		if it.Dish.CarbonScore == catalog.CarbonLow {
			line *= 1 - lowCarbonLineDiscount
		}
		totals[it.Dish.Currency] += line
	}
	return totals
}

// TotalCarbonFootprint sums footprint*quantity across the cart.
func TotalCarbonFootprint(items []cart.Item) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Dish.CarbonFootprint * float64(it.Quantity)
	}
	return total
}

// DisplayDiscountRate is the aggregate rate shown on the order
// confirmation: 10% when the cart's average footprint per serving is
// under 1 kg CO2e, 5% under 2, otherwise 0.
//
// This rate is informational only. The charged amount always comes
// from the per-line Low-carbon reduction, so the two figures can
// legitimately disagree — that asymmetry is kept on purpose rather
// than unified.
func DisplayDiscountRate(items []cart.Item) (float64, error) {
	quantity := 0
	for _, it := range items {
		quantity += it.Quantity
	}
	if quantity == 0 {
		return 0, ErrEmptyCart
	}

	average := TotalCarbonFootprint(items) / float64(quantity)
	switch {
	case average < displayRateLowAvg:
		return 0.10, nil
	case average < displayRateMidAvg:
		return 0.05, nil
	default:
		return 0, nil
	}
}

// Quote is the full pricing breakdown for a cart.
type Quote struct {
	Subtotals        map[string]float64 `json:"subtotals"`
	DiscountedTotals map[string]float64 `json:"discounted_totals"`
	Discounts        map[string]float64 `json:"discounts"`
	DisplayRate      float64            `json:"display_discount_rate"`
	TotalCarbon      float64            `json:"total_carbon_kg"`
	CarbonSavings    float64            `json:"estimated_carbon_savings_kg"`
}

// NewQuote computes every total for the confirmation screen.
// Fails with ErrEmptyCart for carts with no quantity.
func NewQuote(items []cart.Item) (*Quote, error) {
	rate, err := DisplayDiscountRate(items)
	if err != nil {
		return nil, err
	}

	subtotals := SubtotalsByCurrency(items)
	discounted := DiscountedTotalsByCurrency(items)

	discounts := make(map[string]float64, len(subtotals))
	for currency, amount := range subtotals {
		discounts[currency] = amount - discounted[currency]
	}

	carbon := TotalCarbonFootprint(items)

	return &Quote{
		Subtotals:        subtotals,
		DiscountedTotals: discounted,
		Discounts:        discounts,
		DisplayRate:      rate,
		TotalCarbon:      carbon,
		CarbonSavings:    conventionalOrderCarbon - carbon,
	}, nil
}
