package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/youthbridge/portal-service/internal/domain"
)

// SupporterRepository manages supporter persistence.
type SupporterRepository interface {
	Create(ctx context.Context, supporter *domain.Supporter) error
	Update(ctx context.Context, supporter *domain.Supporter) error
	GetByID(ctx context.Context, id string) (*domain.Supporter, error)
	List(ctx context.Context) ([]domain.Supporter, error)
	Delete(ctx context.Context, id string) error
}

type supporterRepository struct {
	db Querier
}

// NewSupporterRepository builds the repository.
func NewSupporterRepository(db Querier) SupporterRepository {
	return &supporterRepository{db: db}
}

func (r *supporterRepository) Create(ctx context.Context, supporter *domain.Supporter) error {
	const query = `
        INSERT INTO supporters (name, logo_path, website_url, sort_order)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		supporter.Name,
		supporter.LogoPath,
		supporter.WebsiteURL,
		supporter.SortOrder,
	).Scan(&supporter.ID, &supporter.CreatedAt, &supporter.UpdatedAt)
}

func (r *supporterRepository) Update(ctx context.Context, supporter *domain.Supporter) error {
	const query = `
        UPDATE supporters SET name=$1, logo_path=$2, website_url=$3, sort_order=$4, updated_at=NOW()
        WHERE id=$5`
	cmd, err := r.db.Exec(ctx, query,
		supporter.Name,
		supporter.LogoPath,
		supporter.WebsiteURL,
		supporter.SortOrder,
		supporter.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *supporterRepository) GetByID(ctx context.Context, id string) (*domain.Supporter, error) {
	const query = `
        SELECT id, name, logo_path, website_url, sort_order, created_at, updated_at
        FROM supporters WHERE id=$1`
	var supporter domain.Supporter
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&supporter.ID,
		&supporter.Name,
		&supporter.LogoPath,
		&supporter.WebsiteURL,
		&supporter.SortOrder,
		&supporter.CreatedAt,
		&supporter.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &supporter, nil
}

func (r *supporterRepository) List(ctx context.Context) ([]domain.Supporter, error) {
	const query = `
        SELECT id, name, logo_path, website_url, sort_order, created_at, updated_at
        FROM supporters ORDER BY sort_order ASC, name ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Supporter
	for rows.Next() {
		var supporter domain.Supporter
		if err := rows.Scan(
			&supporter.ID,
			&supporter.Name,
			&supporter.LogoPath,
			&supporter.WebsiteURL,
			&supporter.SortOrder,
			&supporter.CreatedAt,
			&supporter.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, supporter)
	}
	return result, rows.Err()
}

func (r *supporterRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM supporters WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
