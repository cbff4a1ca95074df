package users

import (
	"context"

	"github.com/bissquit/assessment-garden/internal/domain"
)

// Repository defines the interface for user data operations.
type Repository interface {
	// List returns a snapshot of the full collection in insertion order.
	List(ctx context.Context) ([]domain.User, error)
}
