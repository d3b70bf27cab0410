package order

import "context"

// Repository stores placed orders.
type Repository interface {
	Save(ctx context.Context, order *Order) error
	ListByUser(ctx context.Context, userID string) ([]*Order, error)
}
