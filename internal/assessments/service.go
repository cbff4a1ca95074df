package assessments

import (
	"context"
	"fmt"

	"github.com/bissquit/assessment-garden/internal/domain"
	"github.com/bissquit/assessment-garden/internal/query"
)

// DefaultSortField orders listings by creation time unless the caller
// asks otherwise.
const DefaultSortField = "createdAt"

// Service implements assessment business logic.
type Service struct {
	repo Repository
}

// NewService creates a new assessment service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateAssessmentInput holds normalized data for creating an assessment.
// Nil Status/Priority mean the caller omitted them; defaults are applied
// at the point of record creation.
type CreateAssessmentInput struct {
	Name     string
	Owner    string
	Status   *domain.AssessmentStatus
	Priority *domain.AssessmentPriority
}

// UpdateAssessmentInput holds the subset of mutable fields present in an
// update request. Nil fields are left untouched.
type UpdateAssessmentInput struct {
	Name     *string
	Owner    *string
	Status   *domain.AssessmentStatus
	Priority *domain.AssessmentPriority
}

// List returns the requested page of the collection. Pagination metadata
// reports the full collection count.
func (s *Service) List(ctx context.Context, p query.Params) (query.Result[domain.Assessment], error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return query.Result[domain.Assessment]{}, fmt.Errorf("list assessments: %w", err)
	}

	p = p.Normalize(DefaultSortField)
	return query.Apply(items, p, assessmentField), nil
}

// Create appends a new assessment with server-assigned id and timestamp.
// Omitted status and priority fall back to scheduled / medium.
func (s *Service) Create(ctx context.Context, input CreateAssessmentInput) (*domain.Assessment, error) {
	assessment := &domain.Assessment{
		Name:     input.Name,
		Owner:    input.Owner,
		Status:   domain.AssessmentStatusScheduled,
		Priority: domain.AssessmentPriorityMedium,
	}
	if input.Status != nil {
		assessment.Status = *input.Status
	}
	if input.Priority != nil {
		assessment.Priority = *input.Priority
	}

	if err := s.repo.Create(ctx, assessment); err != nil {
		return nil, fmt.Errorf("create assessment: %w", err)
	}
	return assessment, nil
}

// Update merges the provided fields over the existing record. An input
// with no fields set is an accepted no-op.
func (s *Service) Update(ctx context.Context, id string, input UpdateAssessmentInput) (*domain.Assessment, error) {
	return s.repo.Update(ctx, id, input)
}

// Delete removes the record with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// assessmentField resolves a sortBy name to that record's sort key.
// Unknown names return nil, which the query engine treats as "no
// preference" rather than an error.
func assessmentField(a domain.Assessment, field string) any {
	switch field {
	case "id":
		return a.ID
	case "name":
		return a.Name
	case "status":
		return string(a.Status)
	case "owner":
		return a.Owner
	case "createdAt":
		return a.CreatedAt
	case "priority":
		return string(a.Priority)
	}
	return nil
}
