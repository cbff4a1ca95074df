// Package memory provides the in-memory user store backing the API.
package memory

import (
	"context"
	"sync"

	"github.com/bissquit/assessment-garden/internal/domain"
)

// Repository is a mutex-guarded in-memory user collection.
type Repository struct {
	mu    sync.RWMutex
	items []domain.User
}

// NewRepository creates a store seeded with the fixture users.
func NewRepository() *Repository {
	r := &Repository{}
	r.reset()
	return r
}

// Reset restores the collection to its seed state. Intended for tests.
func (r *Repository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reset()
}

func (r *Repository) reset() {
	r.items = seedUsers()
}

// List returns a snapshot copy of the collection in insertion order.
func (r *Repository) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.User, len(r.items))
	copy(out, r.items)
	return out, nil
}

// Len reports the current collection size. Used by the metrics collector.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
