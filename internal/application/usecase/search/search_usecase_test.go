package search

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahathirrr/portfolio/internal/domain/search"
	"github.com/mahathirrr/portfolio/internal/testutil"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

func TestExecute_EmptyQuerySkipsRepository(t *testing.T) {
	repo := &testutil.SearchRepo{}
	uc := NewSearchUseCase(repo, logger.NewNop())

	out, err := uc.Execute(context.Background(), SearchInput{Query: "   "})

	require.NoError(t, err)
	assert.NotNil(t, out.Results)
	assert.Empty(t, out.Results)
	assert.Zero(t, repo.Calls)
}

func TestExecute_ClampsLimit(t *testing.T) {
	repo := &testutil.SearchRepo{}
	uc := NewSearchUseCase(repo, logger.NewNop())

	_, err := uc.Execute(context.Background(), SearchInput{Query: " kafka "})
	require.NoError(t, err)
	assert.Equal(t, "kafka", repo.LastQuery)
	assert.Equal(t, DefaultLimit, repo.LastLimit)

	_, err = uc.Execute(context.Background(), SearchInput{Query: "kafka", Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, repo.LastLimit)
}

func TestExecute_ReturnsResults(t *testing.T) {
	id := uuid.New()
	repo := &testutil.SearchRepo{Results: []search.SearchResult{{ID: id, ResourceType: search.ResourceProject, Title: "Kafka Pipeline"}}}
	uc := NewSearchUseCase(repo, logger.NewNop())

	out, err := uc.Execute(context.Background(), SearchInput{Query: "kafka"})

	require.NoError(t, err)
	require.Len(t, out.Results, 1)
	assert.Equal(t, id, out.Results[0].ID)
}

func TestExecute_Errors(t *testing.T) {
	uc := NewSearchUseCase(&testutil.SearchRepo{}, logger.NewNop())
	_, err := uc.Execute(context.Background(), SearchInput{Query: strings.Repeat("x", MaxQueryLength+1)})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	failing := NewSearchUseCase(&testutil.SearchRepo{Err: errors.New("boom")}, logger.NewNop())
	_, err = failing.Execute(context.Background(), SearchInput{Query: "kafka"})
	assert.ErrorIs(t, err, apperror.ErrInternal)
}
