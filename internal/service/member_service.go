package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/youthbridge/portal-service/internal/domain"
	"github.com/youthbridge/portal-service/internal/repository"
	apperrors "github.com/youthbridge/portal-service/pkg/util"
)

// MemberService manages the admin membership registry. Registry entries
// are independent of site accounts and receive a sequential "MB" ID when
// created.
type MemberService struct {
	members repository.MemberRepository
	ids     *MembershipNumberGenerator
	now     func() time.Time
}

// MemberDependencies bundles collaborators.
type MemberDependencies struct {
	MemberRepo repository.MemberRepository
}

// MemberInput carries registry entry fields.
type MemberInput struct {
	Name     string
	Email    *string
	Phone    *string
	JoinedAt *time.Time
	Active   bool
}

// NewMemberService constructs the service.
func NewMemberService(deps MemberDependencies) *MemberService {
	return &MemberService{
		members: deps.MemberRepo,
		ids:     NewMembershipNumberGenerator(deps.MemberRepo.ListMembershipIDs, MembershipIDWidth),
		now:     time.Now,
	}
}

// Create registers a new member and issues the next membership ID.
func (s *MemberService) Create(ctx context.Context, input MemberInput) (*domain.Member, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("missing required fields", map[string]any{"name": "required"})
	}

	membershipID, err := s.ids.Next(ctx, MembershipIDPrefix)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	joinedAt := s.now()
	if input.JoinedAt != nil {
		joinedAt = *input.JoinedAt
	}

	member := &domain.Member{
		MembershipID: membershipID,
		Name:         strings.TrimSpace(input.Name),
		Email:        input.Email,
		Phone:        input.Phone,
		JoinedAt:     joinedAt,
		Active:       input.Active,
	}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, apperrors.MapError(err)
	}
	return member, nil
}

// Update edits a registry entry. The membership ID never changes.
func (s *MemberService) Update(ctx context.Context, id string, input MemberInput) (*domain.Member, error) {
	member, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("missing required fields", map[string]any{"name": "required"})
	}
	member.Name = strings.TrimSpace(input.Name)
	member.Email = input.Email
	member.Phone = input.Phone
	if input.JoinedAt != nil {
		member.JoinedAt = *input.JoinedAt
	}
	member.Active = input.Active
	if err := s.members.Update(ctx, member); err != nil {
		return nil, apperrors.MapError(err)
	}
	return member, nil
}

// Get returns one registry entry.
func (s *MemberService) Get(ctx context.Context, id string) (*domain.Member, error) {
	member, err := s.members.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("member", map[string]any{"member_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return member, nil
}

// List returns registry entries matching the filter.
func (s *MemberService) List(ctx context.Context, filter repository.MemberFilter) ([]domain.Member, error) {
	members, err := s.members.ListWithFilter(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return members, nil
}

// Delete removes a registry entry.
func (s *MemberService) Delete(ctx context.Context, id string) error {
	if err := s.members.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("member", map[string]any{"member_id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}
