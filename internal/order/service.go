package order

import (
	"context"
	"errors"
	"time"

	"github.com/KishoreS200/Climate-Smart-Cafeteria/internal/cart"
	"github.com/KishoreS200/Climate-Smart-Cafeteria/internal/catalog"
	"github.com/KishoreS200/Climate-Smart-Cafeteria/internal/pricing"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrMissingPickupTime = errors.New("pickup time is required")
)

type Service struct {
	repo  Repository
	carts *cart.Store
	now   func() time.Time
}

func NewService(repo Repository, carts *cart.Store) *Service {
	return &Service{repo: repo, carts: carts, now: time.Now}
}

// Place checks out the user's cart: prices it with the line-item
// discount policy, persists the confirmation and clears the cart.
func (s *Service) Place(ctx context.Context, userID, pickupTime string) (*Order, error) {
	if pickupTime == "" {
		return nil, ErrMissingPickupTime
	}

	var placed *Order

	err := s.carts.With(userID, func(c *cart.Cart) error {
		items := c.Items()
		if len(items) == 0 {
			return ErrEmptyCart
		}

		quote, err := pricing.NewQuote(items)
		if err != nil {
			return err
		}

		lines := make([]Line, 0, len(items))
		for _, it := range items {
			line := it.Dish.Price * float64(it.Quantity)
			discounted := line
			low := it.Dish.CarbonScore == catalog.CarbonLow
			if low {
				discounted = line * 0.9
			}
			lines = append(lines, Line{
				DishID:     it.Dish.ID,
				Name:       it.Dish.Name,
				Currency:   it.Dish.Currency,
				Quantity:   it.Quantity,
				LineTotal:  line,
				Discounted: discounted,
				LowCarbon:  low,
			})
		}

		placed = &Order{
			ID:          uuid.New().String(),
			OrderNumber: "CSC-" + uuid.New().String()[:8],
			UserID:      userID,
			PickupTime:  pickupTime,
			Lines:       lines,
			Quote:       quote,
			CreatedAt:   s.now(),
		}

		if err := s.repo.Save(ctx, placed); err != nil {
			return err
		}

		c.Clear()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return placed, nil
}

// QuoteCart prices the user's current cart without placing an order.
func (s *Service) QuoteCart(userID string) (*pricing.Quote, error) {
	items := s.carts.Snapshot(userID)
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	return pricing.NewQuote(items)
}

// History lists the user's orders, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]*Order, error) {
	return s.repo.ListByUser(ctx, userID)
}
