package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusfest/fest-api/internal/domain"
	"github.com/campusfest/fest-api/internal/repository"
)

var ErrRowReferenced = repository.ErrRowReferenced

type MemberRepository interface {
	AuthMemberRepository
	FindAll(ctx context.Context) ([]domain.Member, error)
	Update(ctx context.Context, member domain.Member) (domain.Member, error)
	Delete(ctx context.Context, studentID string) error
}

type MemberService struct {
	repo MemberRepository
}

func NewMemberService(repo MemberRepository) *MemberService {
	return &MemberService{
		repo: repo,
	}
}

func (s *MemberService) GetMembers(ctx context.Context) ([]domain.Member, error) {
	members, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return members, nil
}

func (s *MemberService) GetMember(ctx context.Context, studentID string) (domain.Member, error) {
	member, err := s.repo.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return domain.Member{}, ErrMemberNotFound
		}

		return domain.Member{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return member, nil
}

// UpdateMember replaces name, role and team. The team/role invariants are
// re-validated excluding the member being edited, so a Head keeps their own
// seat when other fields change.
func (s *MemberService) UpdateMember(ctx context.Context, member domain.Member) (domain.Member, error) {
	if member.Role == domain.RoleSuperAdmin {
		member.TeamID = nil
	}

	if err := checkTeamRoles(ctx, s.repo, member, member.StudentID); err != nil {
		return domain.Member{}, err
	}

	updated, err := s.repo.Update(ctx, member)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return domain.Member{}, ErrMemberNotFound
		}
		if errors.Is(err, repository.ErrInvalidReference) {
			return domain.Member{}, ErrInvalidReference
		}

		return domain.Member{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *MemberService) DeleteMember(ctx context.Context, studentID string) error {
	err := s.repo.Delete(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return ErrMemberNotFound
		}
		if errors.Is(err, repository.ErrRowReferenced) {
			return ErrRowReferenced
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
