package search

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/mahathirrr/portfolio/internal/domain/search"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

const (
	DefaultLimit   = 10
	MaxLimit       = 50
	MaxQueryLength = 200
)

type SearchUseCase struct {
	searchRepo search.Repository
	logger     logger.Logger
}

func NewSearchUseCase(sr search.Repository, log logger.Logger) *SearchUseCase {
	return &SearchUseCase{
		searchRepo: sr,
		logger:     log,
	}
}

type SearchInput struct {
	Query string
	Limit int
}

type SearchOutput struct {
	Results []search.SearchResult
}

func (uc *SearchUseCase) Execute(ctx context.Context, input SearchInput) (*SearchOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return &SearchOutput{Results: []search.SearchResult{}}, nil
	}
	if utf8.RuneCountInString(query) > MaxQueryLength {
		return nil, apperror.NewInvalidInput("search query is too long", nil)
	}
	if input.Limit <= 0 {
		input.Limit = DefaultLimit
	}
	if input.Limit > MaxLimit {
		input.Limit = MaxLimit
	}

	uc.logger.Info("Executing public search", zap.String("query", query))
	results, err := uc.searchRepo.Search(ctx, query, input.Limit)
	if err != nil {
		uc.logger.Error("Search execution failed", err)
		return nil, apperror.NewInternal("search failed", err)
	}
	if results == nil {
		results = []search.SearchResult{}
	}

	return &SearchOutput{Results: results}, nil
}
