package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/youthbridge/portal-service/internal/domain"
)

// MemberFilter captures registry listing parameters.
type MemberFilter struct {
	ActiveOnly bool
	SearchTerm *string
	Limit      int
	Offset     int
}

// MemberRepository manages the membership registry.
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	Update(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	ListWithFilter(ctx context.Context, filter MemberFilter) ([]domain.Member, error)
	// ListMembershipIDs returns all registry membership IDs starting with
	// the given prefix. Feeds the identifier generator's max scan.
	ListMembershipIDs(ctx context.Context, prefix string) ([]string, error)
	Delete(ctx context.Context, id string) error
}

type memberRepository struct {
	db Querier
}

// NewMemberRepository builds the repository.
func NewMemberRepository(db Querier) MemberRepository {
	return &memberRepository{db: db}
}

const memberColumns = `id, membership_id, name, email, phone, joined_at, active, created_at, updated_at`

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	const query = `
        INSERT INTO members (membership_id, name, email, phone, joined_at, active)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		member.MembershipID,
		member.Name,
		member.Email,
		member.Phone,
		member.JoinedAt,
		member.Active,
	).Scan(&member.ID, &member.CreatedAt, &member.UpdatedAt)
}

func (r *memberRepository) Update(ctx context.Context, member *domain.Member) error {
	const query = `
        UPDATE members SET name=$1, email=$2, phone=$3, joined_at=$4, active=$5, updated_at=NOW()
        WHERE id=$6`
	cmd, err := r.db.Exec(ctx, query,
		member.Name,
		member.Email,
		member.Phone,
		member.JoinedAt,
		member.Active,
		member.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	query := fmt.Sprintf(`SELECT %s FROM members WHERE id=$1`, memberColumns)
	var member domain.Member
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&member.ID,
		&member.MembershipID,
		&member.Name,
		&member.Email,
		&member.Phone,
		&member.JoinedAt,
		&member.Active,
		&member.CreatedAt,
		&member.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) ListWithFilter(ctx context.Context, filter MemberFilter) ([]domain.Member, error) {
	base := fmt.Sprintf(`SELECT %s FROM members`, memberColumns)
	clauses := []string{"1=1"}
	args := []any{}

	if filter.ActiveOnly {
		clauses = append(clauses, "active=TRUE")
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf("(LOWER(name) LIKE %s OR membership_id LIKE %s)", placeholder, placeholder))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY membership_id ASC LIMIT %d OFFSET %d`,
		base, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Member
	for rows.Next() {
		var member domain.Member
		if err := rows.Scan(
			&member.ID,
			&member.MembershipID,
			&member.Name,
			&member.Email,
			&member.Phone,
			&member.JoinedAt,
			&member.Active,
			&member.CreatedAt,
			&member.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, member)
	}
	return result, rows.Err()
}

func (r *memberRepository) ListMembershipIDs(ctx context.Context, prefix string) ([]string, error) {
	const query = `SELECT membership_id FROM members WHERE membership_id LIKE $1`
	rows, err := r.db.Query(ctx, query, prefix+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *memberRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM members WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
