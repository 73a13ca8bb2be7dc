package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/youthbridge/portal-service/internal/domain"
)

// GalleryRepository encapsulates gallery image persistence.
type GalleryRepository interface {
	Create(ctx context.Context, image *domain.GalleryImage) error
	Update(ctx context.Context, image *domain.GalleryImage) error
	GetByID(ctx context.Context, id string) (*domain.GalleryImage, error)
	List(ctx context.Context) ([]domain.GalleryImage, error)
	Delete(ctx context.Context, id string) error
}

type galleryRepository struct {
	db Querier
}

// NewGalleryRepository instantiates repository.
func NewGalleryRepository(db Querier) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) Create(ctx context.Context, image *domain.GalleryImage) error {
	const query = `
        INSERT INTO gallery_images (title, file_path, sort_order)
        VALUES ($1,$2,$3)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		image.Title,
		image.FilePath,
		image.SortOrder,
	).Scan(&image.ID, &image.CreatedAt, &image.UpdatedAt)
}

func (r *galleryRepository) Update(ctx context.Context, image *domain.GalleryImage) error {
	const query = `
        UPDATE gallery_images SET title=$1, file_path=$2, sort_order=$3, updated_at=NOW()
        WHERE id=$4`
	cmd, err := r.db.Exec(ctx, query,
		image.Title,
		image.FilePath,
		image.SortOrder,
		image.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *galleryRepository) GetByID(ctx context.Context, id string) (*domain.GalleryImage, error) {
	const query = `
        SELECT id, title, file_path, sort_order, created_at, updated_at
        FROM gallery_images WHERE id=$1`
	var image domain.GalleryImage
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&image.ID,
		&image.Title,
		&image.FilePath,
		&image.SortOrder,
		&image.CreatedAt,
		&image.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *galleryRepository) List(ctx context.Context) ([]domain.GalleryImage, error) {
	const query = `
        SELECT id, title, file_path, sort_order, created_at, updated_at
        FROM gallery_images ORDER BY sort_order ASC, created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.GalleryImage
	for rows.Next() {
		var image domain.GalleryImage
		if err := rows.Scan(
			&image.ID,
			&image.Title,
			&image.FilePath,
			&image.SortOrder,
			&image.CreatedAt,
			&image.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, image)
	}
	return result, rows.Err()
}

func (r *galleryRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM gallery_images WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
