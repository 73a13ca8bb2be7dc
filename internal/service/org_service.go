package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/youthbridge/portal-service/internal/domain"
	"github.com/youthbridge/portal-service/internal/repository"
	apperrors "github.com/youthbridge/portal-service/pkg/util"
)

// OrgService manages the organization's presentation pages: teams, their
// members and supporter logos.
type OrgService struct {
	teams      repository.TeamRepository
	supporters repository.SupporterRepository
}

// OrgDependencies bundles collaborators.
type OrgDependencies struct {
	TeamRepo      repository.TeamRepository
	SupporterRepo repository.SupporterRepository
}

// TeamInput carries team fields.
type TeamInput struct {
	Name        string
	Description string
	SortOrder   int
}

// TeamMemberInput carries team member fields.
type TeamMemberInput struct {
	Name      string
	RoleTitle string
	Photo     *string
	SortOrder int
}

// SupporterInput carries supporter fields.
type SupporterInput struct {
	Name       string
	LogoPath   *string
	WebsiteURL *string
	SortOrder  int
}

// TeamWithMembers is the public team-page projection.
type TeamWithMembers struct {
	Team    domain.Team         `json:"team"`
	Members []domain.TeamMember `json:"members"`
}

// NewOrgService constructs the service.
func NewOrgService(deps OrgDependencies) *OrgService {
	return &OrgService{teams: deps.TeamRepo, supporters: deps.SupporterRepo}
}

// CreateTeam stores a new team.
func (s *OrgService) CreateTeam(ctx context.Context, input TeamInput) (*domain.Team, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("missing required fields", map[string]any{"name": "required"})
	}
	team := &domain.Team{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		SortOrder:   input.SortOrder,
	}
	if err := s.teams.Create(ctx, team); err != nil {
		return nil, apperrors.MapError(err)
	}
	return team, nil
}

// UpdateTeam edits a team.
func (s *OrgService) UpdateTeam(ctx context.Context, id string, input TeamInput) (*domain.Team, error) {
	team, err := s.getTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("missing required fields", map[string]any{"name": "required"})
	}
	team.Name = strings.TrimSpace(input.Name)
	team.Description = input.Description
	team.SortOrder = input.SortOrder
	if err := s.teams.Update(ctx, team); err != nil {
		return nil, apperrors.MapError(err)
	}
	return team, nil
}

// DeleteTeam removes a team and, via the schema's cascade, its members.
func (s *OrgService) DeleteTeam(ctx context.Context, id string) error {
	if err := s.teams.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("team", map[string]any{"team_id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}

// ListTeams returns all teams with their members, in display order.
func (s *OrgService) ListTeams(ctx context.Context) ([]TeamWithMembers, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	result := make([]TeamWithMembers, 0, len(teams))
	for _, team := range teams {
		members, err := s.teams.ListMembersByTeam(ctx, team.ID)
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		result = append(result, TeamWithMembers{Team: team, Members: members})
	}
	return result, nil
}

// AddTeamMember stores a person under a team.
func (s *OrgService) AddTeamMember(ctx context.Context, teamID string, input TeamMemberInput) (*domain.TeamMember, error) {
	if _, err := s.getTeam(ctx, teamID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("missing required fields", map[string]any{"name": "required"})
	}
	member := &domain.TeamMember{
		TeamID:    teamID,
		Name:      strings.TrimSpace(input.Name),
		RoleTitle: input.RoleTitle,
		Photo:     input.Photo,
		SortOrder: input.SortOrder,
	}
	if err := s.teams.CreateMember(ctx, member); err != nil {
		return nil, apperrors.MapError(err)
	}
	return member, nil
}

// UpdateTeamMember edits a person's listing.
func (s *OrgService) UpdateTeamMember(ctx context.Context, id string, input TeamMemberInput) (*domain.TeamMember, error) {
	member, err := s.teams.GetMemberByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("team member", map[string]any{"member_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("missing required fields", map[string]any{"name": "required"})
	}
	member.Name = strings.TrimSpace(input.Name)
	member.RoleTitle = input.RoleTitle
	member.Photo = input.Photo
	member.SortOrder = input.SortOrder
	if err := s.teams.UpdateMember(ctx, member); err != nil {
		return nil, apperrors.MapError(err)
	}
	return member, nil
}

// RemoveTeamMember deletes a person's listing.
func (s *OrgService) RemoveTeamMember(ctx context.Context, id string) error {
	if err := s.teams.DeleteMember(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("team member", map[string]any{"member_id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}

// CreateSupporter stores a supporter logo entry.
func (s *OrgService) CreateSupporter(ctx context.Context, input SupporterInput) (*domain.Supporter, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("missing required fields", map[string]any{"name": "required"})
	}
	supporter := &domain.Supporter{
		Name:       strings.TrimSpace(input.Name),
		LogoPath:   input.LogoPath,
		WebsiteURL: input.WebsiteURL,
		SortOrder:  input.SortOrder,
	}
	if err := s.supporters.Create(ctx, supporter); err != nil {
		return nil, apperrors.MapError(err)
	}
	return supporter, nil
}

// UpdateSupporter edits a supporter entry.
func (s *OrgService) UpdateSupporter(ctx context.Context, id string, input SupporterInput) (*domain.Supporter, error) {
	supporter, err := s.supporters.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("supporter", map[string]any{"supporter_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("missing required fields", map[string]any{"name": "required"})
	}
	supporter.Name = strings.TrimSpace(input.Name)
	supporter.LogoPath = input.LogoPath
	supporter.WebsiteURL = input.WebsiteURL
	supporter.SortOrder = input.SortOrder
	if err := s.supporters.Update(ctx, supporter); err != nil {
		return nil, apperrors.MapError(err)
	}
	return supporter, nil
}

// ListSupporters returns all supporters in display order.
func (s *OrgService) ListSupporters(ctx context.Context) ([]domain.Supporter, error) {
	supporters, err := s.supporters.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return supporters, nil
}

// DeleteSupporter removes a supporter entry.
func (s *OrgService) DeleteSupporter(ctx context.Context, id string) error {
	if err := s.supporters.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("supporter", map[string]any{"supporter_id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}

func (s *OrgService) getTeam(ctx context.Context, id string) (*domain.Team, error) {
	team, err := s.teams.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("team", map[string]any{"team_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return team, nil
}
