package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/youthbridge/portal-service/internal/domain"
	apperrors "github.com/youthbridge/portal-service/pkg/util"
)

func TestMemberService_CreateAssignsMembershipID(t *testing.T) {
	members := new(MockMemberRepo)
	svc := NewMemberService(MemberDependencies{MemberRepo: members})

	members.On("ListMembershipIDs", mock.Anything, "MB").Return([]string{"MB00001", "MB00005"}, nil)
	members.On("Create", mock.Anything, mock.Anything).Return(nil)

	member, err := svc.Create(context.Background(), MemberInput{Name: "Alex Kim", Active: true})
	require.NoError(t, err)
	assert.Equal(t, "MB00006", member.MembershipID)
	assert.Equal(t, "Alex Kim", member.Name)
	assert.True(t, member.Active)
	assert.False(t, member.JoinedAt.IsZero())
}

func TestMemberService_CreateRequiresName(t *testing.T) {
	members := new(MockMemberRepo)
	svc := NewMemberService(MemberDependencies{MemberRepo: members})

	_, err := svc.Create(context.Background(), MemberInput{Name: "  "})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))
	members.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMemberService_UpdateKeepsMembershipID(t *testing.T) {
	members := new(MockMemberRepo)
	svc := NewMemberService(MemberDependencies{MemberRepo: members})

	existing := &domain.Member{ID: "m-1", MembershipID: "MB00002", Name: "Old Name"}
	members.On("GetByID", mock.Anything, "m-1").Return(existing, nil)
	members.On("Update", mock.Anything, existing).Return(nil)

	updated, err := svc.Update(context.Background(), "m-1", MemberInput{Name: "New Name", Active: true})
	require.NoError(t, err)
	assert.Equal(t, "MB00002", updated.MembershipID)
	assert.Equal(t, "New Name", updated.Name)
}
