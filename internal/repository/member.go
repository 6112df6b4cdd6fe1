package repository

import (
	"context"
	"fmt"

	"github.com/campusfest/fest-api/internal/domain"
	"github.com/campusfest/fest-api/internal/repository/dao"
)

var (
	ErrMemberExists     = dao.ErrMemberExists
	ErrMemberNotFound   = dao.ErrMemberNotFound
	ErrInvalidReference = dao.ErrInvalidReference
	ErrRowReferenced    = dao.ErrRowReferenced
)

type MemberDAO interface {
	Insert(ctx context.Context, member dao.Member) (dao.Member, error)
	FindAll(ctx context.Context) ([]dao.Member, error)
	FindByID(ctx context.Context, studentID string) (dao.Member, error)
	Update(ctx context.Context, member dao.Member) (dao.Member, error)
	Delete(ctx context.Context, studentID string) error
	CountTeamRole(ctx context.Context, teamID uint, role string, excludeStudentID string) (int64, error)
}

type MemberRepository struct {
	dao MemberDAO
}

func NewMemberRepository(dao MemberDAO) *MemberRepository {
	return &MemberRepository{
		dao: dao,
	}
}

func (r *MemberRepository) Create(ctx context.Context, member domain.Member) (domain.Member, error) {
	created, err := r.dao.Insert(ctx, dao.Member{
		StudentID: member.StudentID,
		Name:      member.Name,
		Role:      string(member.Role),
		TeamID:    member.TeamID,
		Password:  member.Password,
	})
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *MemberRepository) FindAll(ctx context.Context) ([]domain.Member, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	members := make([]domain.Member, 0, len(found))
	for _, m := range found {
		members = append(members, r.daoToDomain(m))
	}

	return members, nil
}

func (r *MemberRepository) FindByID(ctx context.Context, studentID string) (domain.Member, error) {
	found, err := r.dao.FindByID(ctx, studentID)
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *MemberRepository) Update(ctx context.Context, member domain.Member) (domain.Member, error) {
	updated, err := r.dao.Update(ctx, dao.Member{
		StudentID: member.StudentID,
		Name:      member.Name,
		Role:      string(member.Role),
		TeamID:    member.TeamID,
	})
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *MemberRepository) Delete(ctx context.Context, studentID string) error {
	if err := r.dao.Delete(ctx, studentID); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *MemberRepository) CountTeamRole(ctx context.Context, teamID uint, role domain.Role, excludeStudentID string) (int64, error) {
	count, err := r.dao.CountTeamRole(ctx, teamID, string(role), excludeStudentID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountTeamRole -> %w", err)
	}

	return count, nil
}

func (r *MemberRepository) daoToDomain(m dao.Member) domain.Member {
	return domain.Member{
		StudentID: m.StudentID,
		Name:      m.Name,
		Role:      domain.Role(m.Role),
		TeamID:    m.TeamID,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
