package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusfest/fest-api/internal/domain"
	"github.com/campusfest/fest-api/internal/repository"
)

func TestUpdateMember(t *testing.T) {
	t.Run("excludes the edited member from the head count", func(t *testing.T) {
		var gotExclude string
		repo := &stubMemberRepo{
			countTeamRoleFn: func(ctx context.Context, teamID uint, role domain.Role, excludeStudentID string) (int64, error) {
				gotExclude = excludeStudentID

				return 0, nil
			},
			updateFn: func(ctx context.Context, member domain.Member) (domain.Member, error) {
				return member, nil
			},
		}
		svc := NewMemberService(repo)

		updated, err := svc.UpdateMember(context.Background(), domain.Member{
			StudentID: "S100",
			Name:      "New Name",
			Role:      domain.RoleHead,
			TeamID:    uintPtr(2),
		})
		require.NoError(t, err)
		assert.Equal(t, "S100", gotExclude)
		assert.Equal(t, "New Name", updated.Name)
	})

	t.Run("another head blocks the update", func(t *testing.T) {
		repo := &stubMemberRepo{
			countTeamRoleFn: func(ctx context.Context, teamID uint, role domain.Role, excludeStudentID string) (int64, error) {
				return 1, nil
			},
		}
		svc := NewMemberService(repo)

		_, err := svc.UpdateMember(context.Background(), domain.Member{
			StudentID: "S100",
			Role:      domain.RoleHead,
			TeamID:    uintPtr(2),
		})
		assert.ErrorIs(t, err, ErrTeamHeadExists)
	})

	t.Run("promotion to superadmin clears the team", func(t *testing.T) {
		var stored domain.Member
		repo := &stubMemberRepo{
			updateFn: func(ctx context.Context, member domain.Member) (domain.Member, error) {
				stored = member

				return member, nil
			},
		}
		svc := NewMemberService(repo)

		_, err := svc.UpdateMember(context.Background(), domain.Member{
			StudentID: "S100",
			Role:      domain.RoleSuperAdmin,
			TeamID:    uintPtr(2),
		})
		require.NoError(t, err)
		assert.Nil(t, stored.TeamID)
	})

	t.Run("unknown member", func(t *testing.T) {
		repo := &stubMemberRepo{
			updateFn: func(ctx context.Context, member domain.Member) (domain.Member, error) {
				return domain.Member{}, repository.ErrMemberNotFound
			},
		}
		svc := NewMemberService(repo)

		_, err := svc.UpdateMember(context.Background(), domain.Member{
			StudentID: "S404",
			Role:      domain.RoleSuperAdmin,
		})
		assert.ErrorIs(t, err, ErrMemberNotFound)
	})
}

func TestDeleteMember(t *testing.T) {
	t.Run("maps not found", func(t *testing.T) {
		repo := &stubMemberRepo{
			deleteFn: func(ctx context.Context, studentID string) error {
				return repository.ErrMemberNotFound
			},
		}
		svc := NewMemberService(repo)

		assert.ErrorIs(t, svc.DeleteMember(context.Background(), "S404"), ErrMemberNotFound)
	})

	t.Run("maps referenced rows", func(t *testing.T) {
		repo := &stubMemberRepo{
			deleteFn: func(ctx context.Context, studentID string) error {
				return repository.ErrRowReferenced
			},
		}
		svc := NewMemberService(repo)

		assert.ErrorIs(t, svc.DeleteMember(context.Background(), "S100"), ErrRowReferenced)
	})
}
