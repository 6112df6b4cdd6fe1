package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusfest/fest-api/internal/domain"
	"github.com/campusfest/fest-api/internal/repository"
)

type stubMemberRepo struct {
	createFn        func(ctx context.Context, member domain.Member) (domain.Member, error)
	findByIDFn      func(ctx context.Context, studentID string) (domain.Member, error)
	findAllFn       func(ctx context.Context) ([]domain.Member, error)
	updateFn        func(ctx context.Context, member domain.Member) (domain.Member, error)
	deleteFn        func(ctx context.Context, studentID string) error
	countTeamRoleFn func(ctx context.Context, teamID uint, role domain.Role, excludeStudentID string) (int64, error)
}

func (s *stubMemberRepo) Create(ctx context.Context, member domain.Member) (domain.Member, error) {
	return s.createFn(ctx, member)
}

func (s *stubMemberRepo) FindByID(ctx context.Context, studentID string) (domain.Member, error) {
	return s.findByIDFn(ctx, studentID)
}

func (s *stubMemberRepo) FindAll(ctx context.Context) ([]domain.Member, error) {
	return s.findAllFn(ctx)
}

func (s *stubMemberRepo) Update(ctx context.Context, member domain.Member) (domain.Member, error) {
	return s.updateFn(ctx, member)
}

func (s *stubMemberRepo) Delete(ctx context.Context, studentID string) error {
	return s.deleteFn(ctx, studentID)
}

func (s *stubMemberRepo) CountTeamRole(ctx context.Context, teamID uint, role domain.Role, excludeStudentID string) (int64, error) {
	return s.countTeamRoleFn(ctx, teamID, role, excludeStudentID)
}

type stubParticipantRepo struct {
	createFn      func(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	findByEmailFn func(ctx context.Context, email string) (domain.Participant, error)
}

func (s *stubParticipantRepo) Create(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	return s.createFn(ctx, participant)
}

func (s *stubParticipantRepo) FindByEmail(ctx context.Context, email string) (domain.Participant, error) {
	return s.findByEmailFn(ctx, email)
}

func mustHash(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hash)
}

func uintPtr(v uint) *uint {
	return &v
}

func TestLoginMember(t *testing.T) {
	hash := mustHash(t, "secret123")

	members := &stubMemberRepo{
		findByIDFn: func(ctx context.Context, studentID string) (domain.Member, error) {
			if studentID != "S100" {
				return domain.Member{}, repository.ErrMemberNotFound
			}

			return domain.Member{StudentID: "S100", Role: domain.RoleHead, Password: hash}, nil
		},
	}
	svc := NewAuthService(members, &stubParticipantRepo{})

	t.Run("valid credentials", func(t *testing.T) {
		member, err := svc.LoginMember(context.Background(), "S100", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "S100", member.StudentID)
		assert.Equal(t, domain.RoleHead, member.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.LoginMember(context.Background(), "S100", "nope")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown member", func(t *testing.T) {
		_, err := svc.LoginMember(context.Background(), "S999", "secret123")
		assert.ErrorIs(t, err, ErrMemberNotFound)
	})
}

func TestLoginParticipant(t *testing.T) {
	hash := mustHash(t, "pass1234")

	participants := &stubParticipantRepo{
		findByEmailFn: func(ctx context.Context, email string) (domain.Participant, error) {
			if email != "ana@example.com" {
				return domain.Participant{}, repository.ErrParticipantNotFound
			}

			return domain.Participant{ID: 7, Email: email, Password: hash}, nil
		},
	}
	svc := NewAuthService(&stubMemberRepo{}, participants)

	t.Run("valid credentials", func(t *testing.T) {
		participant, err := svc.LoginParticipant(context.Background(), "ana@example.com", "pass1234")
		require.NoError(t, err)
		assert.Equal(t, uint(7), participant.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.LoginParticipant(context.Background(), "ana@example.com", "bad")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.LoginParticipant(context.Background(), "ghost@example.com", "pass1234")
		assert.ErrorIs(t, err, ErrParticipantNotFound)
	})
}

func TestSignupParticipant(t *testing.T) {
	t.Run("hashes the password before storing", func(t *testing.T) {
		var stored domain.Participant
		participants := &stubParticipantRepo{
			createFn: func(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
				stored = participant
				participant.ID = 1

				return participant, nil
			},
		}
		svc := NewAuthService(&stubMemberRepo{}, participants)

		created, err := svc.SignupParticipant(context.Background(), domain.Participant{
			Name:     "Ana",
			Email:    "ana@example.com",
			Password: "plaintext1",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(1), created.ID)
		assert.NotEqual(t, "plaintext1", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("plaintext1")))
	})

	t.Run("duplicate email", func(t *testing.T) {
		participants := &stubParticipantRepo{
			createFn: func(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
				return domain.Participant{}, repository.ErrParticipantEmailExists
			},
		}
		svc := NewAuthService(&stubMemberRepo{}, participants)

		_, err := svc.SignupParticipant(context.Background(), domain.Participant{
			Email:    "taken@example.com",
			Password: "plaintext1",
		})
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestRegisterMember(t *testing.T) {
	t.Run("superadmin team is cleared", func(t *testing.T) {
		var stored domain.Member
		members := &stubMemberRepo{
			createFn: func(ctx context.Context, member domain.Member) (domain.Member, error) {
				stored = member

				return member, nil
			},
			countTeamRoleFn: func(ctx context.Context, teamID uint, role domain.Role, excludeStudentID string) (int64, error) {
				t.Fatal("no team role check expected for a SuperAdmin")

				return 0, nil
			},
		}
		svc := NewAuthService(members, &stubParticipantRepo{})

		_, err := svc.RegisterMember(context.Background(), domain.Member{
			StudentID: "S1",
			Role:      domain.RoleSuperAdmin,
			TeamID:    uintPtr(3),
			Password:  "secret123",
		})
		require.NoError(t, err)
		assert.Nil(t, stored.TeamID)
	})

	t.Run("team required for staff roles", func(t *testing.T) {
		svc := NewAuthService(&stubMemberRepo{}, &stubParticipantRepo{})

		_, err := svc.RegisterMember(context.Background(), domain.Member{
			StudentID: "S2",
			Role:      domain.RoleHead,
			Password:  "secret123",
		})
		assert.ErrorIs(t, err, ErrTeamRequired)
	})

	t.Run("one head per team", func(t *testing.T) {
		members := &stubMemberRepo{
			countTeamRoleFn: func(ctx context.Context, teamID uint, role domain.Role, excludeStudentID string) (int64, error) {
				assert.Equal(t, uint(3), teamID)
				assert.Equal(t, domain.RoleHead, role)
				assert.Empty(t, excludeStudentID)

				return 1, nil
			},
		}
		svc := NewAuthService(members, &stubParticipantRepo{})

		_, err := svc.RegisterMember(context.Background(), domain.Member{
			StudentID: "S3",
			Role:      domain.RoleHead,
			TeamID:    uintPtr(3),
			Password:  "secret123",
		})
		assert.ErrorIs(t, err, ErrTeamHeadExists)
	})

	t.Run("one co-head per team", func(t *testing.T) {
		members := &stubMemberRepo{
			countTeamRoleFn: func(ctx context.Context, teamID uint, role domain.Role, excludeStudentID string) (int64, error) {
				return 1, nil
			},
		}
		svc := NewAuthService(members, &stubParticipantRepo{})

		_, err := svc.RegisterMember(context.Background(), domain.Member{
			StudentID: "S4",
			Role:      domain.RoleCoHead,
			TeamID:    uintPtr(3),
			Password:  "secret123",
		})
		assert.ErrorIs(t, err, ErrTeamCoHeadExists)
	})

	t.Run("plain member joins a team with existing head", func(t *testing.T) {
		members := &stubMemberRepo{
			createFn: func(ctx context.Context, member domain.Member) (domain.Member, error) {
				return member, nil
			},
			countTeamRoleFn: func(ctx context.Context, teamID uint, role domain.Role, excludeStudentID string) (int64, error) {
				t.Fatal("no team role check expected for a plain member")

				return 0, nil
			},
		}
		svc := NewAuthService(members, &stubParticipantRepo{})

		created, err := svc.RegisterMember(context.Background(), domain.Member{
			StudentID: "S5",
			Role:      domain.RoleMember,
			TeamID:    uintPtr(3),
			Password:  "secret123",
		})
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret123")))
	})

	t.Run("duplicate student ID", func(t *testing.T) {
		members := &stubMemberRepo{
			createFn: func(ctx context.Context, member domain.Member) (domain.Member, error) {
				return domain.Member{}, repository.ErrMemberExists
			},
		}
		svc := NewAuthService(members, &stubParticipantRepo{})

		_, err := svc.RegisterMember(context.Background(), domain.Member{
			StudentID: "S1",
			Role:      domain.RoleSuperAdmin,
			Password:  "secret123",
		})
		assert.ErrorIs(t, err, ErrMemberExists)
	})
}
