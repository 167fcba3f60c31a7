package project

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahathirrr/portfolio/internal/domain/project"
	"github.com/mahathirrr/portfolio/internal/testutil"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

func strPtr(s string) *string { return &s }

func TestCreateProject_AppliesDefaults(t *testing.T) {
	repo := testutil.NewProjectRepo()
	uc := NewCreateProjectUseCase(repo, logger.NewNop())

	out, err := uc.Execute(context.Background(), CreateProjectInput{
		Title:       "CMS",
		Description: "Portfolio backend",
		DemoURL:     strPtr("  "),
		GithubURL:   strPtr("https://github.com/example/cms"),
	})

	require.NoError(t, err)
	assert.Equal(t, project.DefaultStatus, out.Project.Status)
	assert.NotNil(t, out.Project.Categories)
	assert.NotNil(t, out.Project.Technologies)
	assert.Nil(t, out.Project.DemoURL)
	require.NotNil(t, out.Project.GithubURL)
	assert.Len(t, repo.Rows(), 1)
}

func TestCreateProject_RequiresTitleAndDescription(t *testing.T) {
	repo := testutil.NewProjectRepo()
	uc := NewCreateProjectUseCase(repo, logger.NewNop())

	_, err := uc.Execute(context.Background(), CreateProjectInput{Description: "no title"})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Empty(t, repo.Rows())
}

func TestUpdateProject_MergesPatch(t *testing.T) {
	existing := &project.Project{ID: uuid.New(), Title: "Old", Description: "desc", Categories: []string{"Web"}, Status: "In Progress"}
	repo := testutil.NewProjectRepo(existing)
	uc := NewUpdateProjectUseCase(repo, logger.NewNop())
	categories := []string{"Web", "Mobile"}

	out, err := uc.Execute(context.Background(), UpdateProjectInput{
		ProjectID: existing.ID,
		Patch:     project.Patch{Title: strPtr("New"), Categories: &categories},
	})

	require.NoError(t, err)
	assert.Equal(t, "New", out.Project.Title)
	assert.Equal(t, "desc", out.Project.Description)
	assert.Equal(t, "In Progress", out.Project.Status)
	assert.Equal(t, categories, out.Project.Categories)
	assert.False(t, out.Project.UpdatedAt.IsZero())
}

func TestCreateProject_LegacyCategoryFillsList(t *testing.T) {
	repo := testutil.NewProjectRepo()
	uc := NewCreateProjectUseCase(repo, logger.NewNop())

	_, err := uc.Execute(context.Background(), CreateProjectInput{Title: "CMS", Description: "d", Category: "Web"})

	require.NoError(t, err)
	stored := repo.Rows()[0]
	assert.Equal(t, []string{"Web"}, stored.Categories)
	assert.Equal(t, "Web", stored.Category)
}

func TestUpdateProject_ReplacingCategoriesDropsOldOne(t *testing.T) {
	existing := &project.Project{ID: uuid.New(), Title: "a", Description: "d", Category: "C", Categories: []string{"C"}}
	repo := testutil.NewProjectRepo(existing)
	uc := NewUpdateProjectUseCase(repo, logger.NewNop())
	categories := []string{"A"}

	_, err := uc.Execute(context.Background(), UpdateProjectInput{
		ProjectID: existing.ID,
		Patch:     project.Patch{Categories: &categories},
	})
	require.NoError(t, err)

	list, err := NewListProjectsUseCase(repo).Execute(context.Background(), ListProjectsInput{Category: "C"})
	require.NoError(t, err)
	assert.Empty(t, list.Projects)
	assert.Equal(t, []string{"A"}, list.Categories)
}

func TestUpdateProject_Errors(t *testing.T) {
	existing := &project.Project{ID: uuid.New(), Title: "Old", Description: "desc"}
	uc := NewUpdateProjectUseCase(testutil.NewProjectRepo(existing), logger.NewNop())

	_, err := uc.Execute(context.Background(), UpdateProjectInput{ProjectID: uuid.New()})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = uc.Execute(context.Background(), UpdateProjectInput{ProjectID: existing.ID, Patch: project.Patch{Title: strPtr(" ")}})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestListProjects_FiltersAfterFetch(t *testing.T) {
	repo := testutil.NewProjectRepo(
		&project.Project{ID: uuid.New(), Title: "a", Categories: []string{"Web"}},
		&project.Project{ID: uuid.New(), Title: "b", Category: "Data"},
	)
	uc := NewListProjectsUseCase(repo)

	out, err := uc.Execute(context.Background(), ListProjectsInput{Category: "Data"})

	require.NoError(t, err)
	require.Len(t, out.Projects, 1)
	assert.Equal(t, "b", out.Projects[0].Title)
	assert.Equal(t, []string{"Web", "Data"}, out.Categories)
}

func TestDeleteProject(t *testing.T) {
	existing := &project.Project{ID: uuid.New(), Title: "a", Description: "d"}
	repo := testutil.NewProjectRepo(existing)
	uc := NewDeleteProjectUseCase(repo)

	require.NoError(t, uc.Execute(context.Background(), DeleteProjectInput{ProjectID: existing.ID}))
	assert.ErrorIs(t, uc.Execute(context.Background(), DeleteProjectInput{ProjectID: existing.ID}), apperror.ErrNotFound)
}

func TestRSS_NewestFirst(t *testing.T) {
	repo := testutil.NewProjectRepo(
		&project.Project{ID: uuid.New(), Title: "older", Categories: []string{"Web Apps"}},
		&project.Project{ID: uuid.New(), Title: "newer", DemoURL: strPtr("https://demo.example.com")},
	)
	uc := NewRSSUseCase(repo, "https://example.com/", "Jane", logger.NewNop())

	feed, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/references", feed.Link.Href)
	require.Len(t, feed.Items, 2)
	assert.Equal(t, "newer", feed.Items[0].Title)
	assert.Equal(t, "https://demo.example.com", feed.Items[0].Link.Href)
	assert.Equal(t, "https://example.com/references?category=Web+Apps", feed.Items[1].Link.Href)

	rss, err := feed.ToRss()
	require.NoError(t, err)
	assert.Contains(t, rss, "<title>older</title>")
}

func threeProjects() (*testutil.Store[project.Project], []project.Project, []uuid.UUID) {
	rows := []*project.Project{
		{ID: uuid.New(), Title: "a", Description: "da", Categories: []string{"Web"}, Category: "Web"},
		{ID: uuid.New(), Title: "b", Description: "db", Categories: []string{"Data"}, Category: "Data"},
		{ID: uuid.New(), Title: "c", Description: "dc", Categories: []string{"Mobile"}, Category: "Mobile"},
	}
	values := make([]project.Project, 0, len(rows))
	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		values = append(values, *r)
		ids = append(ids, r.ID)
	}
	return testutil.NewProjectRepo(rows...), values, ids
}

func TestUpdateProject_LeavesOtherRowsUnchanged(t *testing.T) {
	repo, before, ids := threeProjects()
	uc := NewUpdateProjectUseCase(repo, logger.NewNop())

	_, err := uc.Execute(context.Background(), UpdateProjectInput{
		ProjectID: ids[1],
		Patch:     project.Patch{Title: strPtr("b2"), Status: strPtr("In Progress")},
	})
	require.NoError(t, err)

	after := repo.Rows()
	require.Len(t, after, 3)
	assert.Equal(t, before[0], *after[0])
	assert.Equal(t, before[2], *after[2])
	assert.Equal(t, "b2", after[1].Title)
	assert.Equal(t, "db", after[1].Description)
}

func TestDeleteProject_LeavesOtherRowsUnchanged(t *testing.T) {
	repo, before, ids := threeProjects()
	uc := NewDeleteProjectUseCase(repo)

	require.NoError(t, uc.Execute(context.Background(), DeleteProjectInput{ProjectID: ids[1]}))

	after := repo.Rows()
	require.Len(t, after, 2)
	assert.Equal(t, before[0], *after[0])
	assert.Equal(t, before[2], *after[1])
}
