package waste

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu      sync.Mutex
	entries []Entry
}

// NewInMemoryRepository seeds the log with the given entries,
// newest first.
func NewInMemoryRepository(seed []Entry) *InMemoryRepository {
	entries := make([]Entry, len(seed))
	copy(entries, seed)
	return &InMemoryRepository{entries: entries}
}

func (r *InMemoryRepository) ListAll(ctx context.Context) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

func (r *InMemoryRepository) Append(ctx context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append([]Entry{entry}, r.entries...)
	return nil
}
