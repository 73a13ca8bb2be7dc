package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/youthbridge/portal-service/internal/domain"
)

// ApplicationFilter captures admin listing parameters.
type ApplicationFilter struct {
	Kind        *domain.ApplicationKind
	Statuses    []domain.ApplicationStatus
	SubmittedBy *string
	Limit       int
	Offset      int
}

// ApplicationRepository encapsulates application persistence.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	// GetByIDForUpdate locks the row for the duration of the surrounding
	// transaction. Only meaningful on a repository bound to a transaction.
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Application, error)
	MarkDecided(ctx context.Context, app *domain.Application) error
	ListWithFilter(ctx context.Context, filter ApplicationFilter) ([]domain.Application, error)
	CountPending(ctx context.Context, kind domain.ApplicationKind) (int64, error)
	Delete(ctx context.Context, id string) error
	WithTx(tx pgx.Tx) ApplicationRepository
}

type applicationRepository struct {
	db Querier
}

// NewApplicationRepository instantiates repository.
func NewApplicationRepository(db Querier) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) WithTx(tx pgx.Tx) ApplicationRepository {
	if tx == nil {
		return r
	}
	return &applicationRepository{db: tx}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	const query = `
        INSERT INTO applications (kind, status, submitted_by, requested_user_type, payload)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		app.Kind,
		app.Status,
		app.SubmittedBy,
		app.RequestedUserType,
		app.Payload,
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
}

const applicationColumns = `id, kind, status, submitted_by, requested_user_type, payload,
               admin_notes, reviewed_by, processed_at, created_at, updated_at`

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications WHERE id=$1`, applicationColumns)
	return r.fetchSingle(ctx, query, id)
}

func (r *applicationRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications WHERE id=$1 FOR UPDATE`, applicationColumns)
	return r.fetchSingle(ctx, query, id)
}

func (r *applicationRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Application, error) {
	var app domain.Application
	if err := r.db.QueryRow(ctx, query, arg).Scan(
		&app.ID,
		&app.Kind,
		&app.Status,
		&app.SubmittedBy,
		&app.RequestedUserType,
		&app.Payload,
		&app.AdminNotes,
		&app.ReviewedBy,
		&app.ProcessedAt,
		&app.CreatedAt,
		&app.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &app, nil
}

// MarkDecided persists the review outcome fields of a decided application.
func (r *applicationRepository) MarkDecided(ctx context.Context, app *domain.Application) error {
	const query = `
        UPDATE applications SET status=$1, admin_notes=$2, reviewed_by=$3, processed_at=$4, updated_at=NOW()
        WHERE id=$5`
	cmd, err := r.db.Exec(ctx, query,
		app.Status,
		app.AdminNotes,
		app.ReviewedBy,
		app.ProcessedAt,
		app.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *applicationRepository) ListWithFilter(ctx context.Context, filter ApplicationFilter) ([]domain.Application, error) {
	base := fmt.Sprintf(`SELECT %s FROM applications`, applicationColumns)
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Kind != nil {
		args = append(args, *filter.Kind)
		clauses = append(clauses, fmt.Sprintf("kind=$%d", len(args)))
	}
	if filter.SubmittedBy != nil {
		args = append(args, *filter.SubmittedBy)
		clauses = append(clauses, fmt.Sprintf("submitted_by=$%d", len(args)))
	}
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

	var result []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID,
			&app.Kind,
			&app.Status,
			&app.SubmittedBy,
			&app.RequestedUserType,
			&app.Payload,
			&app.AdminNotes,
			&app.ReviewedBy,
			&app.ProcessedAt,
			&app.CreatedAt,
			&app.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, app)
	}
	return result, rows.Err()
}

func (r *applicationRepository) CountPending(ctx context.Context, kind domain.ApplicationKind) (int64, error) {
	const query = `SELECT COUNT(*) FROM applications WHERE kind=$1 AND status=$2`
	var count int64
	if err := r.db.QueryRow(ctx, query, kind, domain.ApplicationStatusPending).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *applicationRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
