// Package memory provides the in-memory assessment store backing the API.
// The collection is rebuilt from the seed fixtures on every process start.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/bissquit/assessment-garden/internal/assessments"
	"github.com/bissquit/assessment-garden/internal/domain"
)

// Repository is a mutex-guarded in-memory assessment collection.
// net/http serves requests on concurrent goroutines, so every access
// goes through the lock.
type Repository struct {
	mu    sync.RWMutex
	items []domain.Assessment
	seq   int
}

// NewRepository creates a store seeded with the fixture assessments.
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
	r.items = seedAssessments()
	// The sequence only ever increments, so identifiers of deleted
	// records are never reissued.
	r.seq = len(r.items)
}

// List returns a snapshot copy of the collection in insertion order.
func (r *Repository) List(_ context.Context) ([]domain.Assessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Assessment, len(r.items))
	copy(out, r.items)
	return out, nil
}

// Len reports the current collection size. Used by the metrics collector.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Create assigns a fresh identifier and creation timestamp, then appends
// the record.
func (r *Repository) Create(_ context.Context, assessment *domain.Assessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	assessment.ID = fmt.Sprintf("asm-%03d", r.seq)
	assessment.CreatedAt = time.Now().UTC()

	r.items = append(r.items, *assessment)
	return nil
}

// Update merges the provided fields over the record with the given id.
// Identifier and creation timestamp are never touched.
func (r *Repository) Update(_ context.Context, id string, input assessments.UpdateAssessmentInput) (*domain.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}

		a := &r.items[i]
		if input.Name != nil {
			a.Name = *input.Name
		}
		if input.Owner != nil {
			a.Owner = *input.Owner
		}
		if input.Status != nil {
			a.Status = *input.Status
		}
		if input.Priority != nil {
			a.Priority = *input.Priority
		}

		updated := *a
		return &updated, nil
	}

	return nil, assessments.ErrAssessmentNotFound
}

// Delete removes the record with the given id.
func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = slices.Delete(r.items, i, i+1)
			return nil
		}
	}

	return assessments.ErrAssessmentNotFound
}
