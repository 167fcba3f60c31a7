package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mahathirrr/portfolio/internal/domain/education"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type postgresEducationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresEducationRepo(db *pgxpool.Pool, logger logger.Logger) education.Repository {
	return &postgresEducationRepo{db: db, logger: logger}
}

const educationColumns = "id, institution, degree, field_of_study, start_date, end_date, is_current, grade, activities, description, created_at, updated_at"

func scanEducation(row pgx.Row) (*education.Education, error) {
	e := &education.Education{}
	err := row.Scan(
		&e.ID,
		&e.Institution,
		&e.Degree,
		&e.FieldOfStudy,
		&e.StartDate,
		&e.EndDate,
		&e.IsCurrent,
		&e.Grade,
		&e.Activities,
		&e.Description,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("education", "")
		}
		return nil, apperror.NewInternal("failed to scan education row", err)
	}
	return e, nil
}

func (r *postgresEducationRepo) Save(ctx context.Context, e *education.Education) error {
	query := `
		INSERT INTO education (id, institution, degree, field_of_study, start_date, end_date, is_current, grade, activities, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.Institution, e.Degree, e.FieldOfStudy, e.StartDate, e.EndDate,
		e.IsCurrent, e.Grade, e.Activities, e.Description, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save education", err)
	}
	return nil
}

func (r *postgresEducationRepo) Update(ctx context.Context, e *education.Education) error {
	query := `
		UPDATE education SET
			institution = $2, degree = $3, field_of_study = $4, start_date = $5, end_date = $6,
			is_current = $7, grade = $8, activities = $9, description = $10, updated_at = $11
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		e.ID, e.Institution, e.Degree, e.FieldOfStudy, e.StartDate, e.EndDate,
		e.IsCurrent, e.Grade, e.Activities, e.Description, e.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to update education", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("education", e.ID.String())
	}
	return nil
}

func (r *postgresEducationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM education WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete education", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("education", id.String())
	}
	return nil
}

func (r *postgresEducationRepo) FindByID(ctx context.Context, id uuid.UUID) (*education.Education, error) {
	row := r.db.QueryRow(ctx, `SELECT `+educationColumns+` FROM education WHERE id = $1`, id)
	e, err := scanEducation(row)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.NewNotFound("education", id.String())
	}
	return e, err
}

func (r *postgresEducationRepo) List(ctx context.Context) ([]*education.Education, error) {
	sql, args, err := psql.Select(educationColumns).
		From("education").
		OrderBy("start_date DESC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list education query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query education", err)
	}
	defer rows.Close()

	items := make([]*education.Education, 0)
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating education rows", err)
	}
	return items, nil
}
