package persistence

import (
	"context"

	"github.com/ccoveille/go-safecast"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mahathirrr/portfolio/internal/domain/contact"
	"github.com/mahathirrr/portfolio/pkg/apperror"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type postgresContactRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresContactRepo(db *pgxpool.Pool, logger logger.Logger) contact.Repository {
	return &postgresContactRepo{db: db, logger: logger}
}

func (r *postgresContactRepo) Save(ctx context.Context, m *contact.Message) error {
	query := `
		INSERT INTO contact_messages (id, name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := r.db.Exec(ctx, query, m.ID, m.Name, m.Email, m.Subject, m.Message, m.CreatedAt); err != nil {
		return apperror.NewInternal("failed to save contact message", err)
	}
	return nil
}

func (r *postgresContactRepo) List(ctx context.Context, limit, offset int) ([]*contact.Message, error) {
	ulimit, err := safecast.ToUint64(limit)
	if err != nil {
		return nil, apperror.NewInvalidInput("invalid limit", err)
	}
	uoffset, err := safecast.ToUint64(offset)
	if err != nil {
		return nil, apperror.NewInvalidInput("invalid offset", err)
	}

	sql, args, err := psql.Select("id, name, email, subject, message, created_at").
		From("contact_messages").
		OrderBy("created_at DESC").
		Limit(ulimit).
		Offset(uoffset).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list contact messages query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query contact messages", err)
	}
	defer rows.Close()

	messages := make([]*contact.Message, 0)
	for rows.Next() {
		m := &contact.Message{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, apperror.NewInternal("failed to scan contact message row", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating contact message rows", err)
	}
	return messages, nil
}
