package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/youthbridge/portal-service/internal/domain"
)

// ContactRepository manages contact message persistence.
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	GetByID(ctx context.Context, id string) (*domain.ContactMessage, error)
	MarkRead(ctx context.Context, id string, readAt time.Time) error
	List(ctx context.Context, unreadOnly bool, limit, offset int) ([]domain.ContactMessage, error)
	Delete(ctx context.Context, id string) error
}

type contactRepository struct {
	db Querier
}

// NewContactRepository builds the repository.
func NewContactRepository(db Querier) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	const query = `
        INSERT INTO contact_messages (name, email, subject, body)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		msg.Name,
		msg.Email,
		msg.Subject,
		msg.Body,
	).Scan(&msg.ID, &msg.CreatedAt)
}

func (r *contactRepository) GetByID(ctx context.Context, id string) (*domain.ContactMessage, error) {
	const query = `
        SELECT id, name, email, subject, body, read_at, created_at
        FROM contact_messages WHERE id=$1`
	var msg domain.ContactMessage
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&msg.ID,
		&msg.Name,
		&msg.Email,
		&msg.Subject,
		&msg.Body,
		&msg.ReadAt,
		&msg.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *contactRepository) MarkRead(ctx context.Context, id string, readAt time.Time) error {
	cmd, err := r.db.Exec(ctx, `UPDATE contact_messages SET read_at=$1 WHERE id=$2`, readAt, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *contactRepository) List(ctx context.Context, unreadOnly bool, limit, offset int) ([]domain.ContactMessage, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT id, name, email, subject, body, read_at, created_at
        FROM contact_messages`
	if unreadOnly {
		query += ` WHERE read_at IS NULL`
	}
	query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ContactMessage
	for rows.Next() {
		var msg domain.ContactMessage
		if err := rows.Scan(
			&msg.ID,
			&msg.Name,
			&msg.Email,
			&msg.Subject,
			&msg.Body,
			&msg.ReadAt,
			&msg.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, msg)
	}
	return result, rows.Err()
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM contact_messages WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
