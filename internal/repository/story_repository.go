package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/youthbridge/portal-service/internal/domain"
)

// StoryFilter captures listing parameters for voice-of-change stories.
type StoryFilter struct {
	Statuses []domain.StoryStatus
	Limit    int
	Offset   int
}

// StoryRepository encapsulates story persistence.
type StoryRepository interface {
	Create(ctx context.Context, story *domain.Story) error
	Update(ctx context.Context, story *domain.Story) error
	GetByID(ctx context.Context, id string) (*domain.Story, error)
	ListWithFilter(ctx context.Context, filter StoryFilter) ([]domain.Story, error)
	Delete(ctx context.Context, id string) error
}

type storyRepository struct {
	db Querier
}

// NewStoryRepository instantiates repository.
func NewStoryRepository(db Querier) StoryRepository {
	return &storyRepository{db: db}
}

const storyColumns = `id, title, author_name, body, status, submitted_by, admin_notes,
               reviewed_by, published_at, created_at, updated_at`

func (r *storyRepository) Create(ctx context.Context, story *domain.Story) error {
	const query = `
        INSERT INTO stories (title, author_name, body, status, submitted_by)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		story.Title,
		story.AuthorName,
		story.Body,
		story.Status,
		story.SubmittedBy,
	).Scan(&story.ID, &story.CreatedAt, &story.UpdatedAt)
}

func (r *storyRepository) Update(ctx context.Context, story *domain.Story) error {
	const query = `
        UPDATE stories SET title=$1, author_name=$2, body=$3, status=$4, admin_notes=$5,
            reviewed_by=$6, published_at=$7, updated_at=NOW()
        WHERE id=$8`
	cmd, err := r.db.Exec(ctx, query,
		story.Title,
		story.AuthorName,
		story.Body,
		story.Status,
		story.AdminNotes,
		story.ReviewedBy,
		story.PublishedAt,
		story.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *storyRepository) GetByID(ctx context.Context, id string) (*domain.Story, error) {
	query := fmt.Sprintf(`SELECT %s FROM stories WHERE id=$1`, storyColumns)
	var story domain.Story
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&story.ID,
		&story.Title,
		&story.AuthorName,
		&story.Body,
		&story.Status,
		&story.SubmittedBy,
		&story.AdminNotes,
		&story.ReviewedBy,
		&story.PublishedAt,
		&story.CreatedAt,
		&story.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &story, nil
}

func (r *storyRepository) ListWithFilter(ctx context.Context, filter StoryFilter) ([]domain.Story, error) {
	base := fmt.Sprintf(`SELECT %s FROM stories`, storyColumns)
	clauses := []string{"1=1"}
	args := []any{}

	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		base, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Story
	for rows.Next() {
		var story domain.Story
		if err := rows.Scan(
			&story.ID,
			&story.Title,
			&story.AuthorName,
			&story.Body,
			&story.Status,
			&story.SubmittedBy,
			&story.AdminNotes,
			&story.ReviewedBy,
			&story.PublishedAt,
			&story.CreatedAt,
			&story.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, story)
	}
	return result, rows.Err()
}

func (r *storyRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM stories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
