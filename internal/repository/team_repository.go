package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/youthbridge/portal-service/internal/domain"
)

// TeamRepository manages team and team member persistence.
type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	Update(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	List(ctx context.Context) ([]domain.Team, error)
	Delete(ctx context.Context, id string) error

	CreateMember(ctx context.Context, member *domain.TeamMember) error
	UpdateMember(ctx context.Context, member *domain.TeamMember) error
	GetMemberByID(ctx context.Context, id string) (*domain.TeamMember, error)
	ListMembersByTeam(ctx context.Context, teamID string) ([]domain.TeamMember, error)
	DeleteMember(ctx context.Context, id string) error
}

type teamRepository struct {
	db Querier
}

// NewTeamRepository builds the repository.
func NewTeamRepository(db Querier) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	const query = `
        INSERT INTO teams (name, description, sort_order)
        VALUES ($1,$2,$3)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		team.Name,
		team.Description,
		team.SortOrder,
	).Scan(&team.ID, &team.CreatedAt, &team.UpdatedAt)
}

func (r *teamRepository) Update(ctx context.Context, team *domain.Team) error {
	const query = `
        UPDATE teams SET name=$1, description=$2, sort_order=$3, updated_at=NOW()
        WHERE id=$4`
	cmd, err := r.db.Exec(ctx, query,
		team.Name,
		team.Description,
		team.SortOrder,
		team.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	const query = `
        SELECT id, name, description, sort_order, created_at, updated_at
        FROM teams WHERE id=$1`
	var team domain.Team
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&team.ID,
		&team.Name,
		&team.Description,
		&team.SortOrder,
		&team.CreatedAt,
		&team.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) List(ctx context.Context) ([]domain.Team, error) {
	const query = `
        SELECT id, name, description, sort_order, created_at, updated_at
        FROM teams ORDER BY sort_order ASC, name ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Team
	for rows.Next() {
		var team domain.Team
		if err := rows.Scan(
			&team.ID,
			&team.Name,
			&team.Description,
			&team.SortOrder,
			&team.CreatedAt,
			&team.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, team)
	}
	return result, rows.Err()
}

func (r *teamRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM teams WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *teamRepository) CreateMember(ctx context.Context, member *domain.TeamMember) error {
	const query = `
        INSERT INTO team_members (team_id, name, role_title, photo, sort_order)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		member.TeamID,
		member.Name,
		member.RoleTitle,
		member.Photo,
		member.SortOrder,
	).Scan(&member.ID, &member.CreatedAt, &member.UpdatedAt)
}

func (r *teamRepository) UpdateMember(ctx context.Context, member *domain.TeamMember) error {
	const query = `
        UPDATE team_members SET team_id=$1, name=$2, role_title=$3, photo=$4, sort_order=$5, updated_at=NOW()
        WHERE id=$6`
	cmd, err := r.db.Exec(ctx, query,
		member.TeamID,
		member.Name,
		member.RoleTitle,
		member.Photo,
		member.SortOrder,
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

func (r *teamRepository) GetMemberByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	const query = `
        SELECT id, team_id, name, role_title, photo, sort_order, created_at, updated_at
        FROM team_members WHERE id=$1`
	var member domain.TeamMember
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&member.ID,
		&member.TeamID,
		&member.Name,
		&member.RoleTitle,
		&member.Photo,
		&member.SortOrder,
		&member.CreatedAt,
		&member.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *teamRepository) ListMembersByTeam(ctx context.Context, teamID string) ([]domain.TeamMember, error) {
	const query = `
        SELECT id, team_id, name, role_title, photo, sort_order, created_at, updated_at
        FROM team_members WHERE team_id=$1 ORDER BY sort_order ASC, name ASC`
	rows, err := r.db.Query(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TeamMember
	for rows.Next() {
		var member domain.TeamMember
		if err := rows.Scan(
			&member.ID,
			&member.TeamID,
			&member.Name,
			&member.RoleTitle,
			&member.Photo,
			&member.SortOrder,
			&member.CreatedAt,
			&member.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, member)
	}
	return result, rows.Err()
}

func (r *teamRepository) DeleteMember(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM team_members WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
