package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mahathirrr/portfolio/internal/domain/sitesetting"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type postgresSiteSettingRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSiteSettingRepo(db *pgxpool.Pool, logger logger.Logger) sitesetting.Repository {
	return &postgresSiteSettingRepo{db: db, logger: logger}
}

const settingColumns = "id, setting_key, setting_value, description, created_at, updated_at"

func scanSetting(row pgx.Row) (*sitesetting.Setting, error) {
	s := &sitesetting.Setting{}
	if err := row.Scan(&s.ID, &s.Key, &s.Value, &s.Description, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("site setting", "")
		}
		return nil, apperror.NewInternal("failed to scan site setting row", err)
	}
	return s, nil
}

func (r *postgresSiteSettingRepo) List(ctx context.Context) ([]*sitesetting.Setting, error) {
	sql, args, err := psql.Select(settingColumns).From("site_settings").OrderBy("setting_key ASC").ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list settings query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query site settings", err)
	}
	defer rows.Close()

	settings := make([]*sitesetting.Setting, 0)
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating site setting rows", err)
	}
	return settings, nil
}

func (r *postgresSiteSettingRepo) FindByKey(ctx context.Context, key string) (*sitesetting.Setting, error) {
	row := r.db.QueryRow(ctx, `SELECT `+settingColumns+` FROM site_settings WHERE setting_key = $1`, key)
	s, err := scanSetting(row)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.NewNotFound("site setting", key)
	}
	return s, err
}

// Upsert by setting_key, keeping id and created_at of an existing row.
func (r *postgresSiteSettingRepo) Upsert(ctx context.Context, s *sitesetting.Setting) error {
	query := `
		INSERT INTO site_settings (id, setting_key, setting_value, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (setting_key) DO UPDATE SET
			setting_value = EXCLUDED.setting_value,
			description = COALESCE(EXCLUDED.description, site_settings.description),
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, description
	`
	err := r.db.QueryRow(ctx, query, s.ID, s.Key, s.Value, s.Description, s.CreatedAt, s.UpdatedAt).
		Scan(&s.ID, &s.CreatedAt, &s.Description)
	if err != nil {
		return apperror.NewInternal("failed to upsert site setting", err)
	}
	return nil
}
