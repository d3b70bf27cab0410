package catalog

import (
	"errors"
	"sort"
)

var ErrDishNotFound = errors.New("dish not found")

// Catalog is a read-only view over the seeded dishes
type Catalog struct {
	dishes []Dish
	byID   map[string]Dish
}

func New(dishes []Dish) *Catalog {
	byID := make(map[string]Dish, len(dishes))
	for _, d := range dishes {
		byID[d.ID] = d
	}
	return &Catalog{dishes: dishes, byID: byID}
}

// All returns the dishes in catalog order
func (c *Catalog) All() []Dish {
	out := make([]Dish, len(c.dishes))
	copy(out, c.dishes)
	return out
}

func (c *Catalog) Get(id string) (Dish, error) {
	d, ok := c.byID[id]
	if !ok {
		return Dish{}, ErrDishNotFound
	}
	return d, nil
}

// --------------------------------------------------
// Menu tab views
// --------------------------------------------------

const popularMin = 8

func (c *Catalog) LowCarbon() []Dish {
	var out []Dish
	for _, d := range c.dishes {
		if d.CarbonScore == CarbonLow {
			out = append(out, d)
		}
	}
	return out
}

func (c *Catalog) Vegetarian() []Dish {
	var out []Dish
	for _, d := range c.dishes {
		if d.IsVegetarian {
			out = append(out, d)
		}
	}
	return out
}

func (c *Catalog) Popular() []Dish {
	var out []Dish
	for _, d := range c.dishes {
		if d.Popularity >= popularMin {
			out = append(out, d)
		}
	}
	return out
}

// EthnoTags returns the sorted set of tags across the catalog
func (c *Catalog) EthnoTags() []string {
	seen := map[string]bool{}
	var tags []string
	for _, d := range c.dishes {
		for _, t := range d.EthnoTags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags
}
