package order

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/KishoreS200/Climate-Smart-Cafeteria/internal/cart"
	"github.com/KishoreS200/Climate-Smart-Cafeteria/internal/catalog"
)

func lowCarbonDish() catalog.Dish {
	return catalog.Dish{
		ID:              "low",
		Name:            "Grain Bowl",
		Price:           10,
		Currency:        "$",
		CarbonFootprint: 0.5,
		CarbonScore:     catalog.CarbonLow,
	}
}

func testService() (*Service, *cart.Store) {
	carts := cart.NewStore()
	return NewService(NewInMemoryRepository(), carts), carts
}

func TestPlaceEmptyCart(t *testing.T) {
	s, _ := testService()

	_, err := s.Place(context.Background(), "alice", "12:30")
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestPlaceMissingPickupTime(t *testing.T) {
	s, carts := testService()
	_ = carts.With("alice", func(c *cart.Cart) error {
		return c.Add(lowCarbonDish())
	})

	_, err := s.Place(context.Background(), "alice", "")
	if !errors.Is(err, ErrMissingPickupTime) {
		t.Fatalf("expected ErrMissingPickupTime, got %v", err)
	}

	// A failed place must not consume the cart.
	if len(carts.Snapshot("alice")) != 1 {
		t.Fatal("cart was cleared on failed place")
	}
}

func TestPlaceChecksOutAndClearsCart(t *testing.T) {
	s, carts := testService()
	_ = carts.With("alice", func(c *cart.Cart) error {
		if err := c.Add(lowCarbonDish()); err != nil {
			return err
		}
		return c.Add(lowCarbonDish())
	})

	placed, err := s.Place(context.Background(), "alice", "12:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(placed.OrderNumber, "CSC-") {
		t.Fatalf("expected CSC- order number, got %s", placed.OrderNumber)
	}
	if len(placed.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(placed.Lines))
	}

	line := placed.Lines[0]
	if line.LineTotal != 20 {
		t.Fatalf("expected line total 20, got %v", line.LineTotal)
	}
	if !line.LowCarbon || line.Discounted != 18 {
		t.Fatalf("expected discounted 18 on a low-carbon line, got %+v", line)
	}

	if placed.Quote == nil || placed.Quote.DiscountedTotals["$"] != 18 {
		t.Fatalf("unexpected quote: %+v", placed.Quote)
	}

	if len(carts.Snapshot("alice")) != 0 {
		t.Fatal("cart not cleared after place")
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	s, carts := testService()

	for i := 0; i < 2; i++ {
		_ = carts.With("alice", func(c *cart.Cart) error {
			return c.Add(lowCarbonDish())
		})
		if _, err := s.Place(context.Background(), "alice", "12:30"); err != nil {
			t.Fatalf("place %d failed: %v", i, err)
		}
	}

	orders, err := s.History(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].CreatedAt.Before(orders[1].CreatedAt) {
		t.Fatal("expected newest order first")
	}

	// Other users see nothing.
	others, _ := s.History(context.Background(), "bob")
	if len(others) != 0 {
		t.Fatalf("expected no orders for bob, got %d", len(others))
	}
}

func TestQuoteCart(t *testing.T) {
	s, carts := testService()

	if _, err := s.QuoteCart("alice"); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}

	_ = carts.With("alice", func(c *cart.Cart) error {
		return c.Add(lowCarbonDish())
	})

	quote, err := s.QuoteCart("alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Subtotals["$"] != 10 || quote.DiscountedTotals["$"] != 9 {
		t.Fatalf("unexpected quote: %+v", quote)
	}

	// Quoting must not consume the cart.
	if len(carts.Snapshot("alice")) != 1 {
		t.Fatal("cart changed after quote")
	}
}
