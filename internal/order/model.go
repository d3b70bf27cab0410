package order

import (
	"time"

	"github.com/KishoreS200/Climate-Smart-Cafeteria/internal/pricing"
)

// Line is one charged order line. Discounted reflects the line-item
// policy: Low-carbon lines pay 90%.
type Line struct {
	DishID     string  `json:"dish_id"`
	Name       string  `json:"name"`
	Currency   string  `json:"currency"`
	Quantity   int     `json:"quantity"`
	LineTotal  float64 `json:"line_total"`
	Discounted float64 `json:"discounted"`
	LowCarbon  bool    `json:"low_carbon"`
}

// Order is the persisted confirmation record.
type Order struct {
	ID          string         `json:"id"`
	OrderNumber string         `json:"order_number"`
	UserID      string         `json:"user_id"`
	PickupTime  string         `json:"pickup_time"`
	Lines       []Line         `json:"lines"`
	Quote       *pricing.Quote `json:"quote"`
	CreatedAt   time.Time      `json:"created_at"`
}
