package education

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahathirrr/portfolio/internal/domain/education"
	"github.com/mahathirrr/portfolio/internal/testutil"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

func seeded() (*testutil.Store[education.Education], []*education.Education) {
	rows := []*education.Education{
		{ID: uuid.New(), Institution: "MIT", Degree: "BSc", StartDate: time.Date(2012, 9, 1, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), Institution: "ETH", Degree: "MSc", StartDate: time.Date(2016, 9, 1, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), Institution: "EPFL", Degree: "PhD", StartDate: time.Date(2018, 9, 1, 0, 0, 0, 0, time.UTC)},
	}
	return testutil.NewEducationRepo(rows...), rows
}

func snapshot(rows []*education.Education) []education.Education {
	out := make([]education.Education, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	return out
}

func TestCreateEducation_CurrentDropsEndDate(t *testing.T) {
	repo := testutil.NewEducationRepo()
	uc := NewEducationUseCase(repo, logger.NewNop())
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	e, err := uc.CreateEducation(context.Background(), CreateEducationInput{
		Institution: "MIT",
		StartDate:   time.Date(2022, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     &end,
		IsCurrent:   true,
	})

	require.NoError(t, err)
	assert.Nil(t, e.EndDate)
	assert.Len(t, repo.Rows(), 1)
}

func TestCreateEducation_RequiresStartDate(t *testing.T) {
	repo := testutil.NewEducationRepo()
	uc := NewEducationUseCase(repo, logger.NewNop())

	_, err := uc.CreateEducation(context.Background(), CreateEducationInput{Institution: "MIT"})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Empty(t, repo.Rows())
}

func TestUpdateEducation_OnlyTouchesTargetRow(t *testing.T) {
	repo, rows := seeded()
	uc := NewEducationUseCase(repo, logger.NewNop())
	before := snapshot(rows)
	current := true

	updated, err := uc.UpdateEducation(context.Background(), rows[1].ID, education.Patch{IsCurrent: &current})

	require.NoError(t, err)
	assert.True(t, updated.IsCurrent)
	assert.Nil(t, updated.EndDate)
	assert.Equal(t, "ETH", updated.Institution)

	after := snapshot(repo.Rows())
	require.Len(t, after, 3)
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2], after[2])
}

func TestUpdateEducation_UnknownID(t *testing.T) {
	repo, _ := seeded()
	uc := NewEducationUseCase(repo, logger.NewNop())

	_, err := uc.UpdateEducation(context.Background(), uuid.New(), education.Patch{})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDeleteEducation_OnlyRemovesTargetRow(t *testing.T) {
	repo, rows := seeded()
	uc := NewEducationUseCase(repo, logger.NewNop())
	before := snapshot(rows)
	id := rows[1].ID

	require.NoError(t, uc.DeleteEducation(context.Background(), id))

	after := snapshot(repo.Rows())
	assert.Equal(t, []education.Education{before[0], before[2]}, after)
	assert.ErrorIs(t, uc.DeleteEducation(context.Background(), id), apperror.ErrNotFound)
}
