package mealplan

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrPlanNotFound covers unknown, already-claimed and expired plans.
var ErrPlanNotFound = errors.New("meal plan not found or expired")

// Plans exist only to hand a planner selection to the order flow,
// so they expire quickly.
const planTTL = 15 * time.Minute

type plan struct {
	dishIDs   []string
	expiresAt time.Time
}

// Store is the server-side replacement for the browser-local
// hand-off: the planner saves a selection, the order page claims it
// exactly once by ID.
type Store struct {
	mu    sync.Mutex
	plans map[string]plan
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{
		plans: make(map[string]plan),
		now:   time.Now,
	}
}

// Save stores the selection and returns its claim ID.
func (s *Store) Save(dishIDs []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	ids := make([]string, len(dishIDs))
	copy(ids, dishIDs)

	s.plans[id] = plan{
		dishIDs:   ids,
		expiresAt: s.now().Add(planTTL),
	}
	return id
}

// Claim returns the selection once and deletes it. A second claim,
// or a claim after expiry, fails with ErrPlanNotFound.
func (s *Store) Claim(id string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.plans[id]
	if !ok {
		return nil, ErrPlanNotFound
	}
	delete(s.plans, id)

	if s.now().After(p.expiresAt) {
		return nil, ErrPlanNotFound
	}
	return p.dishIDs, nil
}
