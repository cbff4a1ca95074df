package assessments

import (
	"context"

	"github.com/bissquit/assessment-garden/internal/domain"
)

// Repository defines the interface for assessment data operations.
type Repository interface {
	// List returns a snapshot of the full collection in insertion order.
	List(ctx context.Context) ([]domain.Assessment, error)
	// Create assigns the record a fresh identifier and creation timestamp
	// and appends it to the collection.
	Create(ctx context.Context, assessment *domain.Assessment) error
	// Update merges only the provided fields over the record with the
	// given id, preserving identifier and creation timestamp.
	Update(ctx context.Context, id string, input UpdateAssessmentInput) (*domain.Assessment, error)
	// Delete removes the record with the given id.
	Delete(ctx context.Context, id string) error
}
