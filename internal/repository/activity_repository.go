package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/youthbridge/portal-service/internal/domain"
)

// ActivityRepository encapsulates activity persistence.
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
	Update(ctx context.Context, activity *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Activity, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.Activity, error)
	Delete(ctx context.Context, id string) error
}

type activityRepository struct {
	db Querier
}

// NewActivityRepository instantiates repository.
func NewActivityRepository(db Querier) ActivityRepository {
	return &activityRepository{db: db}
}

const activityColumns = `id, title, slug, description, body, cover_image, starts_at, published, created_at, updated_at`

func (r *activityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	const query = `
        INSERT INTO activities (title, slug, description, body, cover_image, starts_at, published)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		activity.Title,
		activity.Slug,
		activity.Description,
		activity.Body,
		activity.CoverImage,
		activity.StartsAt,
		activity.Published,
	).Scan(&activity.ID, &activity.CreatedAt, &activity.UpdatedAt)
}

func (r *activityRepository) Update(ctx context.Context, activity *domain.Activity) error {
	const query = `
        UPDATE activities SET title=$1, slug=$2, description=$3, body=$4, cover_image=$5,
            starts_at=$6, published=$7, updated_at=NOW()
        WHERE id=$8`
	cmd, err := r.db.Exec(ctx, query,
		activity.Title,
		activity.Slug,
		activity.Description,
		activity.Body,
		activity.CoverImage,
		activity.StartsAt,
		activity.Published,
		activity.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *activityRepository) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	query := fmt.Sprintf(`SELECT %s FROM activities WHERE id=$1`, activityColumns)
	return r.fetchSingle(ctx, query, id)
}

func (r *activityRepository) GetBySlug(ctx context.Context, slug string) (*domain.Activity, error) {
	query := fmt.Sprintf(`SELECT %s FROM activities WHERE slug=$1`, activityColumns)
	return r.fetchSingle(ctx, query, slug)
}

func (r *activityRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Activity, error) {
	var activity domain.Activity
	if err := r.db.QueryRow(ctx, query, arg).Scan(
		&activity.ID,
		&activity.Title,
		&activity.Slug,
		&activity.Description,
		&activity.Body,
		&activity.CoverImage,
		&activity.StartsAt,
		&activity.Published,
		&activity.CreatedAt,
		&activity.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM activities WHERE slug=$1)`, slug).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *activityRepository) List(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.Activity, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	where := "1=1"
	if publishedOnly {
		where = "published=TRUE"
	}
	query := fmt.Sprintf(`SELECT %s FROM activities WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		activityColumns, where, limit, offset)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Activity
	for rows.Next() {
		var activity domain.Activity
		if err := rows.Scan(
			&activity.ID,
			&activity.Title,
			&activity.Slug,
			&activity.Description,
			&activity.Body,
			&activity.CoverImage,
			&activity.StartsAt,
			&activity.Published,
			&activity.CreatedAt,
			&activity.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, activity)
	}
	return result, rows.Err()
}

func (r *activityRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM activities WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
