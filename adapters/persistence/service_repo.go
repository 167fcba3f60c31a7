package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mahathirrr/portfolio/internal/domain/service"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type postgresServiceRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresServiceRepo(db *pgxpool.Pool, logger logger.Logger) service.Repository {
	return &postgresServiceRepo{db: db, logger: logger}
}

const serviceColumns = "id, title, description, icon, category, image_url, features, created_at, updated_at"

func scanService(row pgx.Row) (*service.Service, error) {
	s := &service.Service{}
	err := row.Scan(
		&s.ID,
		&s.Title,
		&s.Description,
		&s.Icon,
		&s.Category,
		&s.ImageURL,
		&s.Features,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("service", "")
		}
		return nil, apperror.NewInternal("failed to scan service row", err)
	}
	return s, nil
}

func (r *postgresServiceRepo) Save(ctx context.Context, s *service.Service) error {
	query := `
		INSERT INTO services (id, title, description, icon, category, image_url, features, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.Title, s.Description, s.Icon, s.Category, s.ImageURL, s.Features,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.NewConflict("service", "id", s.ID.String())
		}
		return apperror.NewInternal("failed to save service", err)
	}
	return nil
}

func (r *postgresServiceRepo) Update(ctx context.Context, s *service.Service) error {
	query := `
		UPDATE services SET
			title = $2, description = $3, icon = $4, category = $5, image_url = $6,
			features = $7, updated_at = $8
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		s.ID, s.Title, s.Description, s.Icon, s.Category, s.ImageURL, s.Features, s.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to update service", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("service", s.ID.String())
	}
	return nil
}

func (r *postgresServiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete service", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("service", id.String())
	}
	return nil
}

func (r *postgresServiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*service.Service, error) {
	row := r.db.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)
	s, err := scanService(row)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.NewNotFound("service", id.String())
	}
	return s, err
}

func (r *postgresServiceRepo) List(ctx context.Context) ([]*service.Service, error) {
	sql, args, err := psql.Select(serviceColumns).
		From("services").
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list services query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query services", err)
	}
	defer rows.Close()

	services := make([]*service.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating service rows", err)
	}
	return services, nil
}
