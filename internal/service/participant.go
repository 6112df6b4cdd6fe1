package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusfest/fest-api/internal/domain"
	"github.com/campusfest/fest-api/internal/repository"
)

type ParticipantRepository interface {
	AuthParticipantRepository
	FindAll(ctx context.Context) ([]domain.Participant, error)
	FindByID(ctx context.Context, id uint) (domain.Participant, error)
	Update(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	Delete(ctx context.Context, id uint) error
}

type ParticipantService struct {
	repo ParticipantRepository
}

func NewParticipantService(repo ParticipantRepository) *ParticipantService {
	return &ParticipantService{
		repo: repo,
	}
}

func (s *ParticipantService) GetParticipants(ctx context.Context) ([]domain.Participant, error) {
	participants, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return participants, nil
}

func (s *ParticipantService) GetParticipant(ctx context.Context, id uint) (domain.Participant, error) {
	participant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrParticipantNotFound) {
			return domain.Participant{}, ErrParticipantNotFound
		}

		return domain.Participant{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return participant, nil
}

func (s *ParticipantService) UpdateParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	updated, err := s.repo.Update(ctx, participant)
	if err != nil {
		if errors.Is(err, repository.ErrParticipantNotFound) {
			return domain.Participant{}, ErrParticipantNotFound
		}
		if errors.Is(err, repository.ErrParticipantEmailExists) {
			return domain.Participant{}, ErrEmailExists
		}

		return domain.Participant{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ParticipantService) DeleteParticipant(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrParticipantNotFound) {
			return ErrParticipantNotFound
		}
		if errors.Is(err, repository.ErrRowReferenced) {
			return ErrRowReferenced
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
