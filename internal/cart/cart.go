package cart

import (
	"errors"

	"github.com/KishoreS200/Climate-Smart-Cafeteria/internal/catalog"
)

var (
	// ErrMaxQuantity signals that an add was a no-op because the
	// item already holds the per-item cap.
	ErrMaxQuantity = errors.New("item already at maximum quantity")

	// ErrInvalidQuantity is returned for quantities below 1; use
	// Remove to drop an item.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// MaxQuantityPerItem caps how many servings of one dish a cart may hold.
const MaxQuantityPerItem = 5

// Item pairs a dish with a quantity in [1, MaxQuantityPerItem].
type Item struct {
	Dish     catalog.Dish `json:"dish"`
	Quantity int          `json:"quantity"`
}

// Cart holds at most one entry per dish ID, in insertion order.
// Not safe for concurrent use; Store serializes access per user.
type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

func (c *Cart) index(dishID string) int {
	for i, it := range c.items {
		if it.Dish.ID == dishID {
			return i
		}
	}
	return -1
}

// Add inserts the dish with quantity 1 or increments an existing
// entry. At the cap the cart is left unchanged and ErrMaxQuantity
// reported so callers can surface the condition.
func (c *Cart) Add(dish catalog.Dish) error {
	if i := c.index(dish.ID); i >= 0 {
		if c.items[i].Quantity >= MaxQuantityPerItem {
			return ErrMaxQuantity
		}
		c.items[i].Quantity++
		return nil
	}
	c.items = append(c.items, Item{Dish: dish, Quantity: 1})
	return nil
}

// Remove deletes the entry entirely regardless of quantity.
// Absent IDs are a no-op, not an error.
func (c *Cart) Remove(dishID string) {
	if i := c.index(dishID); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// UpdateQuantity replaces the quantity of an existing entry.
// Quantities below 1 fail with ErrInvalidQuantity and leave the
// cart unchanged; absent IDs are a no-op.
func (c *Cart) UpdateQuantity(dishID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if quantity > MaxQuantityPerItem {
		return ErrMaxQuantity
	}
	if i := c.index(dishID); i >= 0 {
		c.items[i].Quantity = quantity
	}
	return nil
}

func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a snapshot in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

// TotalQuantity sums quantities across all entries.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, it := range c.items {
		total += it.Quantity
	}
	return total
}
