package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/campusfest/fest-api/internal/domain"
	"github.com/campusfest/fest-api/internal/repository"
)

var (
	ErrMemberExists        = repository.ErrMemberExists
	ErrMemberNotFound      = repository.ErrMemberNotFound
	ErrParticipantNotFound = repository.ErrParticipantNotFound
	ErrEmailExists         = repository.ErrParticipantEmailExists
	ErrInvalidReference    = repository.ErrInvalidReference

	ErrWrongPassword    = errors.New("wrong password")
	ErrTeamRequired     = errors.New("a team is required for this role")
	ErrTeamHeadExists   = errors.New("this team already has a Head")
	ErrTeamCoHeadExists = errors.New("this team already has a Co-head")
)

type AuthMemberRepository interface {
	Create(ctx context.Context, member domain.Member) (domain.Member, error)
	FindByID(ctx context.Context, studentID string) (domain.Member, error)
	CountTeamRole(ctx context.Context, teamID uint, role domain.Role, excludeStudentID string) (int64, error)
}

type AuthParticipantRepository interface {
	Create(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	FindByEmail(ctx context.Context, email string) (domain.Participant, error)
}

type AuthService struct {
	members      AuthMemberRepository
	participants AuthParticipantRepository
}

func NewAuthService(members AuthMemberRepository, participants AuthParticipantRepository) *AuthService {
	return &AuthService{
		members:      members,
		participants: participants,
	}
}

// LoginMember verifies a committee member's credentials.
func (s *AuthService) LoginMember(ctx context.Context, studentID, password string) (domain.Member, error) {
	member, err := s.members.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return domain.Member{}, ErrMemberNotFound
		}

		return domain.Member{}, fmt.Errorf("s.members.FindByID -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(password)); err != nil {
		return domain.Member{}, ErrWrongPassword
	}

	return member, nil
}

// LoginParticipant verifies a participant's credentials.
func (s *AuthService) LoginParticipant(ctx context.Context, email, password string) (domain.Participant, error) {
	participant, err := s.participants.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrParticipantNotFound) {
			return domain.Participant{}, ErrParticipantNotFound
		}

		return domain.Participant{}, fmt.Errorf("s.participants.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(participant.Password), []byte(password)); err != nil {
		return domain.Participant{}, ErrWrongPassword
	}

	return participant, nil
}

// SignupParticipant creates a participant account. Self-service: callers
// log the new participant in with the returned record, no separate login
// round-trip needed.
func (s *AuthService) SignupParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	hashed, err := hashPassword(participant.Password)
	if err != nil {
		return domain.Participant{}, err
	}
	participant.Password = hashed

	created, err := s.participants.Create(ctx, participant)
	if err != nil {
		if errors.Is(err, repository.ErrParticipantEmailExists) {
			return domain.Participant{}, ErrEmailExists
		}

		return domain.Participant{}, fmt.Errorf("s.participants.Create -> %w", err)
	}

	return created, nil
}

// RegisterMember creates a committee member. SuperAdmins never carry a team
// reference; every other role requires one, and a team may hold at most one
// Head and one Co-head.
func (s *AuthService) RegisterMember(ctx context.Context, member domain.Member) (domain.Member, error) {
	if member.Role == domain.RoleSuperAdmin {
		member.TeamID = nil
	}

	if err := checkTeamRoles(ctx, s.members, member, ""); err != nil {
		return domain.Member{}, err
	}

	hashed, err := hashPassword(member.Password)
	if err != nil {
		return domain.Member{}, err
	}
	member.Password = hashed

	created, err := s.members.Create(ctx, member)
	if err != nil {
		if errors.Is(err, repository.ErrMemberExists) {
			return domain.Member{}, ErrMemberExists
		}
		if errors.Is(err, repository.ErrInvalidReference) {
			return domain.Member{}, ErrInvalidReference
		}

		return domain.Member{}, fmt.Errorf("s.members.Create -> %w", err)
	}

	return created, nil
}

// checkTeamRoles enforces the team/role invariants shared by member
// registration and member update. excludeStudentID skips the member being
// edited when counting existing Heads/Co-heads.
func checkTeamRoles(ctx context.Context, repo AuthMemberRepository, member domain.Member, excludeStudentID string) error {
	if member.Role.RequiresTeam() && member.TeamID == nil {
		return ErrTeamRequired
	}

	if member.TeamID == nil {
		return nil
	}

	switch member.Role {
	case domain.RoleHead:
		count, err := repo.CountTeamRole(ctx, *member.TeamID, domain.RoleHead, excludeStudentID)
		if err != nil {
			return fmt.Errorf("repo.CountTeamRole -> %w", err)
		}
		if count > 0 {
			return ErrTeamHeadExists
		}
	case domain.RoleCoHead:
		count, err := repo.CountTeamRole(ctx, *member.TeamID, domain.RoleCoHead, excludeStudentID)
		if err != nil {
			return fmt.Errorf("repo.CountTeamRole -> %w", err)
		}
		if count > 0 {
			return ErrTeamCoHeadExists
		}
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}
