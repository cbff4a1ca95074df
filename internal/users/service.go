package users

import (
	"context"
	"fmt"
	"strings"

	"github.com/bissquit/assessment-garden/internal/domain"
)

// Service implements user listing business logic.
type Service struct {
	repo Repository
}

// NewService creates a new users service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Filter is the conjunction of user listing filters. An unrecognized
// role or status value acts as "no filter" rather than an error.
type Filter struct {
	Search string
	Role   string
	Status string
}

// List returns every user matching all supplied filters, in insertion
// order. Unlike the assessments listing there is no pagination block;
// the item count itself is the filtered total.
func (s *Service) List(ctx context.Context, f Filter) ([]domain.User, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	filtered := make([]domain.User, 0, len(all))
	for _, u := range all {
		if f.matches(u) {
			filtered = append(filtered, u)
		}
	}
	return filtered, nil
}

func (f Filter) matches(u domain.User) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(u.Name), q) &&
			!strings.Contains(strings.ToLower(u.Email), q) {
			return false
		}
	}

	if role := domain.UserRole(f.Role); role.IsValid() && u.Role != role {
		return false
	}

	if status := domain.UserStatus(f.Status); status.IsValid() && u.Status != status {
		return false
	}

	return true
}
