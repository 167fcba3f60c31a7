package persistence

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/mahathirrr/portfolio/internal/domain/personalinfo"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type postgresPersonalInfoRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresPersonalInfoRepo(db *pgxpool.Pool, logger logger.Logger) personalinfo.Repository {
	return &postgresPersonalInfoRepo{db: db, logger: logger}
}

// FindSingle reads LIMIT 2 to detect a table with more than one row.
func (r *postgresPersonalInfoRepo) FindSingle(ctx context.Context) (*personalinfo.PersonalInfo, error) {
	query := `
		SELECT id, name, title, description, email, github_url, linkedin_url, created_at, updated_at
		FROM personal_info
		ORDER BY created_at ASC
		LIMIT 2
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewInternal("failed to query personal info", err)
	}
	defer rows.Close()

	found := make([]*personalinfo.PersonalInfo, 0, 2)
	for rows.Next() {
		p := &personalinfo.PersonalInfo{}
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Title, &p.Description, &p.Email,
			&p.GithubURL, &p.LinkedinURL, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, apperror.NewInternal("failed to scan personal info row", err)
		}
		found = append(found, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating personal info rows", err)
	}

	if len(found) != 1 {
		r.logger.Warn("personal_info is not a single row", zap.Int("rows", len(found)))
		return nil, apperror.NewInternal("expected exactly one personal_info row", nil)
	}
	return found[0], nil
}

func (r *postgresPersonalInfoRepo) Save(ctx context.Context, p *personalinfo.PersonalInfo) error {
	query := `
		INSERT INTO personal_info (id, name, title, description, email, github_url, linkedin_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Title, p.Description, p.Email, p.GithubURL, p.LinkedinURL, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save personal info", err)
	}
	return nil
}

func (r *postgresPersonalInfoRepo) Update(ctx context.Context, p *personalinfo.PersonalInfo) error {
	query := `
		UPDATE personal_info SET
			name = $2, title = $3, description = $4, email = $5,
			github_url = $6, linkedin_url = $7, updated_at = $8
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Title, p.Description, p.Email, p.GithubURL, p.LinkedinURL, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to update personal info", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("personal info", p.ID.String())
	}
	return nil
}
