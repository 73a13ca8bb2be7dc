package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/youthbridge/portal-service/internal/domain"
)

// ResourceRepository encapsulates resource persistence.
type ResourceRepository interface {
	Create(ctx context.Context, resource *domain.Resource) error
	Update(ctx context.Context, resource *domain.Resource) error
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Resource, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, category *domain.ResourceCategory) ([]domain.Resource, error)
	Delete(ctx context.Context, id string) error
}

type resourceRepository struct {
	db Querier
}

// NewResourceRepository instantiates repository.
func NewResourceRepository(db Querier) ResourceRepository {
	return &resourceRepository{db: db}
}

const resourceColumns = `id, title, slug, description, file_path, external_url, category, created_at, updated_at`

func (r *resourceRepository) Create(ctx context.Context, resource *domain.Resource) error {
	const query = `
        INSERT INTO resources (title, slug, description, file_path, external_url, category)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		resource.Title,
		resource.Slug,
		resource.Description,
		resource.FilePath,
		resource.ExternalURL,
		resource.Category,
	).Scan(&resource.ID, &resource.CreatedAt, &resource.UpdatedAt)
}

func (r *resourceRepository) Update(ctx context.Context, resource *domain.Resource) error {
	const query = `
        UPDATE resources SET title=$1, slug=$2, description=$3, file_path=$4, external_url=$5,
            category=$6, updated_at=NOW()
        WHERE id=$7`
	cmd, err := r.db.Exec(ctx, query,
		resource.Title,
		resource.Slug,
		resource.Description,
		resource.FilePath,
		resource.ExternalURL,
		resource.Category,
		resource.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *resourceRepository) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	query := fmt.Sprintf(`SELECT %s FROM resources WHERE id=$1`, resourceColumns)
	return r.fetchSingle(ctx, query, id)
}

func (r *resourceRepository) GetBySlug(ctx context.Context, slug string) (*domain.Resource, error) {
	query := fmt.Sprintf(`SELECT %s FROM resources WHERE slug=$1`, resourceColumns)
	return r.fetchSingle(ctx, query, slug)
}

func (r *resourceRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Resource, error) {
	var resource domain.Resource
	if err := r.db.QueryRow(ctx, query, arg).Scan(
		&resource.ID,
		&resource.Title,
		&resource.Slug,
		&resource.Description,
		&resource.FilePath,
		&resource.ExternalURL,
		&resource.Category,
		&resource.CreatedAt,
		&resource.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *resourceRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM resources WHERE slug=$1)`, slug).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *resourceRepository) List(ctx context.Context, category *domain.ResourceCategory) ([]domain.Resource, error) {
	query := fmt.Sprintf(`SELECT %s FROM resources ORDER BY created_at DESC`, resourceColumns)
	args := []any{}
	if category != nil {
		query = fmt.Sprintf(`SELECT %s FROM resources WHERE category=$1 ORDER BY created_at DESC`, resourceColumns)
		args = append(args, *category)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Resource
	for rows.Next() {
		var resource domain.Resource
		if err := rows.Scan(
			&resource.ID,
			&resource.Title,
			&resource.Slug,
			&resource.Description,
			&resource.FilePath,
			&resource.ExternalURL,
			&resource.Category,
			&resource.CreatedAt,
			&resource.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, resource)
	}
	return result, rows.Err()
}

func (r *resourceRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM resources WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
