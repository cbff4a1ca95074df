package assessments

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bissquit/assessment-garden/internal/domain"
	"github.com/bissquit/assessment-garden/internal/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRepository implements Repository for testing.
type mockRepository struct {
	items     []domain.Assessment
	seq       int
	createErr error
}

func newMockRepository(items ...domain.Assessment) *mockRepository {
	return &mockRepository{items: items, seq: len(items)}
}

func (m *mockRepository) List(_ context.Context) ([]domain.Assessment, error) {
	out := make([]domain.Assessment, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *mockRepository) Create(_ context.Context, a *domain.Assessment) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.seq++
	a.ID = fmt.Sprintf("asm-%03d", m.seq)
	a.CreatedAt = time.Now().UTC()
	m.items = append(m.items, *a)
	return nil
}

func (m *mockRepository) Update(_ context.Context, id string, input UpdateAssessmentInput) (*domain.Assessment, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			if input.Name != nil {
				m.items[i].Name = *input.Name
			}
			updated := m.items[i]
			return &updated, nil
		}
	}
	return nil, ErrAssessmentNotFound
}

func (m *mockRepository) Delete(_ context.Context, id string) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return ErrAssessmentNotFound
}

func testAssessment(id string, createdAt time.Time) domain.Assessment {
	return domain.Assessment{
		ID:        id,
		Name:      "Assessment " + id,
		Status:    domain.AssessmentStatusScheduled,
		Owner:     "Owner",
		CreatedAt: createdAt,
		Priority:  domain.AssessmentPriorityMedium,
	}
}

func TestServiceCreateDefaults(t *testing.T) {
	svc := NewService(newMockRepository())

	created, err := svc.Create(context.Background(), CreateAssessmentInput{
		Name:  "Firewall Review",
		Owner: "Alex Rivers",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.AssessmentStatusScheduled, created.Status)
	assert.Equal(t, domain.AssessmentPriorityMedium, created.Priority)
	assert.Equal(t, "asm-001", created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestServiceCreateExplicitEnums(t *testing.T) {
	svc := NewService(newMockRepository())

	status := domain.AssessmentStatusBlocked
	priority := domain.AssessmentPriorityCritical
	created, err := svc.Create(context.Background(), CreateAssessmentInput{
		Name:     "Firewall Review",
		Owner:    "Alex Rivers",
		Status:   &status,
		Priority: &priority,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.AssessmentStatusBlocked, created.Status)
	assert.Equal(t, domain.AssessmentPriorityCritical, created.Priority)
}

func TestServiceListDefaultSort(t *testing.T) {
	base := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	repo := newMockRepository(
		testAssessment("asm-001", base),
		testAssessment("asm-002", base.Add(48*time.Hour)),
		testAssessment("asm-003", base.Add(24*time.Hour)),
	)
	svc := NewService(repo)

	result, err := svc.List(context.Background(), query.Params{})
	require.NoError(t, err)

	// Newest first by default.
	require.Len(t, result.Items, 3)
	assert.Equal(t, "asm-002", result.Items[0].ID)
	assert.Equal(t, "asm-003", result.Items[1].ID)
	assert.Equal(t, "asm-001", result.Items[2].ID)
	assert.Equal(t, query.Pagination{Page: 1, Limit: 10, Total: 3, TotalPages: 1}, result.Pagination)
}

func TestServiceListSortByOwnerAsc(t *testing.T) {
	base := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	a := testAssessment("asm-001", base)
	a.Owner = "Priya Shah"
	b := testAssessment("asm-002", base)
	b.Owner = "Alex Rivers"

	svc := NewService(newMockRepository(a, b))

	result, err := svc.List(context.Background(), query.Params{SortBy: "owner", Order: query.OrderAsc})
	require.NoError(t, err)

	assert.Equal(t, "asm-002", result.Items[0].ID)
	assert.Equal(t, "asm-001", result.Items[1].ID)
}

func TestServiceListUnknownSortFieldKeepsOrder(t *testing.T) {
	base := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	repo := newMockRepository(
		testAssessment("asm-001", base.Add(time.Hour)),
		testAssessment("asm-002", base),
	)
	svc := NewService(repo)

	result, err := svc.List(context.Background(), query.Params{SortBy: "nosuchfield"})
	require.NoError(t, err)

	assert.Equal(t, "asm-001", result.Items[0].ID)
	assert.Equal(t, "asm-002", result.Items[1].ID)
}

func TestServiceUpdateNotFound(t *testing.T) {
	svc := NewService(newMockRepository())

	_, err := svc.Update(context.Background(), "asm-999", UpdateAssessmentInput{})
	assert.ErrorIs(t, err, ErrAssessmentNotFound)
}

func TestServiceDeleteNotFound(t *testing.T) {
	svc := NewService(newMockRepository())

	err := svc.Delete(context.Background(), "asm-999")
	assert.ErrorIs(t, err, ErrAssessmentNotFound)
}
