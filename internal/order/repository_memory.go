package order

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu     sync.Mutex
	orders map[string][]*Order // keyed by user ID, newest first
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{orders: make(map[string][]*Order)}
}

func (r *InMemoryRepository) Save(ctx context.Context, order *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[order.UserID] = append([]*Order{order}, r.orders[order.UserID]...)
	return nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := r.orders[userID]
	out := make([]*Order, len(orders))
	copy(out, orders)
	return out, nil
}
