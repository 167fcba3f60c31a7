package persistence

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mahathirrr/portfolio/internal/domain/search"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type postgresSearchRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSearchRepo(db *pgxpool.Pool, logger logger.Logger) search.Repository {
	return &postgresSearchRepo{db: db, logger: logger}
}

// A title match adds 1 to rank so it sorts before description-only matches.
const searchSQL = `
	(SELECT
		id, 'project' AS resource_type, title,
		ts_headline('simple', description, plainto_tsquery('simple', $1), 'StartSel=*,StopSel=*,MaxFragments=1,MaxWords=10,MinWords=5') AS snippet,
		(ts_rank_cd(to_tsvector('simple', title || ' ' || description), plainto_tsquery('simple', $1))
			+ CASE WHEN title ILIKE '%' || $1 || '%' THEN 1 ELSE 0 END)::real AS rank,
		updated_at
	FROM projects
	WHERE to_tsvector('simple', title || ' ' || description) @@ plainto_tsquery('simple', $1)
		OR title ILIKE '%' || $1 || '%')

	UNION ALL

	(SELECT
		id, 'service' AS resource_type, title,
		ts_headline('simple', description, plainto_tsquery('simple', $1), 'StartSel=*,StopSel=*,MaxFragments=1,MaxWords=10,MinWords=5') AS snippet,
		(ts_rank_cd(to_tsvector('simple', title || ' ' || description), plainto_tsquery('simple', $1))
			+ CASE WHEN title ILIKE '%' || $1 || '%' THEN 1 ELSE 0 END)::real AS rank,
		updated_at
	FROM services
	WHERE to_tsvector('simple', title || ' ' || description) @@ plainto_tsquery('simple', $1)
		OR title ILIKE '%' || $1 || '%')

	ORDER BY rank DESC, title ASC
	LIMIT $2
`

func (r *postgresSearchRepo) Search(ctx context.Context, query string, limit int) ([]search.SearchResult, error) {
	rows, err := r.db.Query(ctx, searchSQL, query, limit)
	if err != nil {
		return nil, apperror.NewInternal("failed to execute search", err)
	}
	defer rows.Close()

	results := make([]search.SearchResult, 0)
	for rows.Next() {
		var res search.SearchResult
		if err := rows.Scan(
			&res.ID, &res.ResourceType, &res.Title,
			&res.Snippet, &res.Rank, &res.UpdatedAt,
		); err != nil {
			return nil, apperror.NewInternal("failed to scan search result", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating search results", err)
	}
	return results, nil
}
