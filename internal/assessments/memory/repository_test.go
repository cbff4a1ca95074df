package memory

import (
	"context"
	"testing"
	"time"

	"github.com/bissquit/assessment-garden/internal/assessments"
	"github.com/bissquit/assessment-garden/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededCollection(t *testing.T) {
	repo := NewRepository()

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 12)

	assert.Equal(t, "asm-001", items[0].ID)
	assert.Equal(t, "Quarterly Risk Review", items[0].Name)
	assert.Equal(t, domain.AssessmentStatusInProgress, items[0].Status)
	assert.Equal(t, "asm-012", items[11].ID)
	assert.Equal(t, 12, repo.Len())
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	repo := NewRepository()

	a := domain.Assessment{Name: "New One", Owner: "Alex Rivers"}
	require.NoError(t, repo.Create(context.Background(), &a))
	assert.Equal(t, "asm-013", a.ID)
	assert.False(t, a.CreatedAt.IsZero())
	assert.Equal(t, 13, repo.Len())
}

func TestIDsNeverReused(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	a := domain.Assessment{Name: "First", Owner: "Alex Rivers"}
	require.NoError(t, repo.Create(ctx, &a))
	require.Equal(t, "asm-013", a.ID)

	require.NoError(t, repo.Delete(ctx, a.ID))

	b := domain.Assessment{Name: "Second", Owner: "Priya Shah"}
	require.NoError(t, repo.Create(ctx, &b))
	assert.Equal(t, "asm-014", b.ID)
}

func TestUpdateMergesFields(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	before, err := repo.List(ctx)
	require.NoError(t, err)
	original := before[0]

	name := "Annual Risk Review"
	status := domain.AssessmentStatusComplete
	updated, err := repo.Update(ctx, original.ID, assessments.UpdateAssessmentInput{
		Name:   &name,
		Status: &status,
	})
	require.NoError(t, err)

	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, "Annual Risk Review", updated.Name)
	assert.Equal(t, domain.AssessmentStatusComplete, updated.Status)
	// Untouched fields survive the merge.
	assert.Equal(t, original.Owner, updated.Owner)
	assert.Equal(t, original.Priority, updated.Priority)
	assert.True(t, updated.CreatedAt.Equal(original.CreatedAt))
}

func TestUpdateEmptyInputIsNoOp(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	updated, err := repo.Update(ctx, "asm-002", assessments.UpdateAssessmentInput{})
	require.NoError(t, err)

	assert.Equal(t, "Vendor Security Check", updated.Name)
	assert.Equal(t, domain.AssessmentStatusBlocked, updated.Status)
}

func TestUpdateUnknownID(t *testing.T) {
	repo := NewRepository()

	_, err := repo.Update(context.Background(), "asm-999", assessments.UpdateAssessmentInput{})
	assert.ErrorIs(t, err, assessments.ErrAssessmentNotFound)
}

func TestDeleteRemovesRecord(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, "asm-003"))
	assert.Equal(t, 11, repo.Len())

	items, err := repo.List(ctx)
	require.NoError(t, err)
	for _, item := range items {
		assert.NotEqual(t, "asm-003", item.ID)
	}

	assert.ErrorIs(t, repo.Delete(ctx, "asm-003"), assessments.ErrAssessmentNotFound)
}

func TestResetRestoresSeedState(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, "asm-001"))
	a := domain.Assessment{Name: "Extra", Owner: "Morgan Chen"}
	require.NoError(t, repo.Create(ctx, &a))

	repo.Reset()

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 12)
	assert.Equal(t, "asm-001", items[0].ID)

	// Sequence restarts with the seed, so the next id follows the fixtures.
	b := domain.Assessment{Name: "After Reset", Owner: "Jordan Lee"}
	require.NoError(t, repo.Create(ctx, &b))
	assert.Equal(t, "asm-013", b.ID)
}

func TestListReturnsSnapshot(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	items, err := repo.List(ctx)
	require.NoError(t, err)

	items[0].Name = "mutated"
	items[0].CreatedAt = time.Now()

	fresh, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Quarterly Risk Review", fresh[0].Name)
}
