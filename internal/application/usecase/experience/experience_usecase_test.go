package experience

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahathirrr/portfolio/internal/domain/experience"
	"github.com/mahathirrr/portfolio/internal/testutil"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

func TestCreateExperience_CurrentDropsEndDate(t *testing.T) {
	repo := testutil.NewExperienceRepo()
	uc := NewExperienceUseCase(repo, logger.NewNop())
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	blank := " "

	e, err := uc.CreateExperience(context.Background(), CreateExperienceInput{
		Title:     "Engineer",
		Company:   "Acme",
		Location:  &blank,
		StartDate: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
		IsCurrent: true,
	})

	require.NoError(t, err)
	assert.Nil(t, e.EndDate)
	assert.Nil(t, e.Location)
	assert.Equal(t, experience.DefaultEmploymentType, e.EmploymentType)
	assert.Len(t, repo.Rows(), 1)
}

func TestCreateExperience_RequiresStartDate(t *testing.T) {
	uc := NewExperienceUseCase(testutil.NewExperienceRepo(), logger.NewNop())

	_, err := uc.CreateExperience(context.Background(), CreateExperienceInput{Title: "Engineer"})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestUpdateExperience_ClearsEndDate(t *testing.T) {
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := testutil.NewExperienceRepo()
	uc := NewExperienceUseCase(repo, logger.NewNop())
	created, err := uc.CreateExperience(context.Background(), CreateExperienceInput{
		Title: "Engineer", StartDate: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), EndDate: &end,
	})
	require.NoError(t, err)

	updated, err := uc.UpdateExperience(context.Background(), created.ID, experience.Patch{ClearEndDate: true})

	require.NoError(t, err)
	assert.Nil(t, updated.EndDate)
	assert.Equal(t, "Jan 2022 - Present", updated.Period())
}

func TestUpdateAndDeleteExperience_LeaveOtherRowsUnchanged(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	first := experience.Experience{ID: uuid.New(), Title: "Intern", Company: "Acme", StartDate: start}
	second := experience.Experience{ID: uuid.New(), Title: "Engineer", Company: "Globex", StartDate: start.AddDate(1, 0, 0)}
	third := experience.Experience{ID: uuid.New(), Title: "Lead", Company: "Initech", StartDate: start.AddDate(2, 0, 0)}
	a, b, c := first, second, third
	repo := testutil.NewExperienceRepo(&a, &b, &c)
	uc := NewExperienceUseCase(repo, logger.NewNop())
	current := true

	updated, err := uc.UpdateExperience(context.Background(), second.ID, experience.Patch{IsCurrent: &current})
	require.NoError(t, err)
	assert.True(t, updated.IsCurrent)

	rows := repo.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, first, *rows[0])
	assert.Equal(t, third, *rows[2])

	require.NoError(t, uc.DeleteExperience(context.Background(), first.ID))
	rows = repo.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, second.ID, rows[0].ID)
	assert.Equal(t, third, *rows[1])
	assert.ErrorIs(t, uc.DeleteExperience(context.Background(), first.ID), apperror.ErrNotFound)
}
