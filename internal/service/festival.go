package service

import (
	"context"
	"fmt"

	"github.com/campusfest/fest-api/internal/domain"
	"github.com/campusfest/fest-api/internal/repository"
)

var (
	ErrTeamNotFound      = repository.ErrTeamNotFound
	ErrVenueNotFound     = repository.ErrVenueNotFound
	ErrPerformerNotFound = repository.ErrPerformerNotFound
	ErrSponsorNotFound   = repository.ErrSponsorNotFound
	ErrDayNotFound       = repository.ErrDayNotFound
	ErrExpenseNotFound   = repository.ErrExpenseNotFound
)

type FestivalRepository interface {
	CreateTeam(ctx context.Context, team domain.Team) (domain.Team, error)
	FindAllTeams(ctx context.Context) ([]domain.Team, error)
	FindTeamByID(ctx context.Context, id uint) (domain.Team, error)
	UpdateTeam(ctx context.Context, team domain.Team) (domain.Team, error)
	DeleteTeam(ctx context.Context, id uint) error

	CreateVenue(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	FindAllVenues(ctx context.Context) ([]domain.Venue, error)
	FindVenueByID(ctx context.Context, id uint) (domain.Venue, error)
	UpdateVenue(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	DeleteVenue(ctx context.Context, id uint) error

	CreatePerformer(ctx context.Context, performer domain.Performer) (domain.Performer, error)
	FindAllPerformers(ctx context.Context) ([]domain.Performer, error)
	FindPerformerByID(ctx context.Context, id uint) (domain.Performer, error)
	UpdatePerformer(ctx context.Context, performer domain.Performer) (domain.Performer, error)
	DeletePerformer(ctx context.Context, id uint) error

	CreateSponsor(ctx context.Context, sponsor domain.Sponsor) (domain.Sponsor, error)
	FindAllSponsors(ctx context.Context) ([]domain.Sponsor, error)
	FindSponsorByID(ctx context.Context, id uint) (domain.Sponsor, error)
	UpdateSponsor(ctx context.Context, sponsor domain.Sponsor) (domain.Sponsor, error)
	DeleteSponsor(ctx context.Context, id uint) error

	CreateDay(ctx context.Context, day domain.DaySchedule) (domain.DaySchedule, error)
	FindAllDays(ctx context.Context) ([]domain.DaySchedule, error)
	FindDayByID(ctx context.Context, id uint) (domain.DaySchedule, error)
	UpdateDay(ctx context.Context, day domain.DaySchedule) (domain.DaySchedule, error)
	DeleteDay(ctx context.Context, id uint) error

	CreateExpense(ctx context.Context, expense domain.BudgetExpense) (domain.BudgetExpense, error)
	FindAllExpenses(ctx context.Context) ([]domain.BudgetExpense, error)
	FindExpenseByID(ctx context.Context, id uint) (domain.BudgetExpense, error)
	UpdateExpense(ctx context.Context, expense domain.BudgetExpense) (domain.BudgetExpense, error)
	DeleteExpense(ctx context.Context, id uint) error
}

// FestivalService fronts the catalog entities. The repository already maps
// store faults to typed errors, so these methods forward them untouched.
type FestivalService struct {
	repo FestivalRepository
}

func NewFestivalService(repo FestivalRepository) *FestivalService {
	return &FestivalService{
		repo: repo,
	}
}

func (s *FestivalService) CreateTeam(ctx context.Context, team domain.Team) (domain.Team, error) {
	created, err := s.repo.CreateTeam(ctx, team)
	if err != nil {
		return domain.Team{}, fmt.Errorf("s.repo.CreateTeam -> %w", err)
	}

	return created, nil
}

func (s *FestivalService) GetTeams(ctx context.Context) ([]domain.Team, error) {
	return s.repo.FindAllTeams(ctx)
}

func (s *FestivalService) GetTeam(ctx context.Context, id uint) (domain.Team, error) {
	return s.repo.FindTeamByID(ctx, id)
}

func (s *FestivalService) UpdateTeam(ctx context.Context, team domain.Team) (domain.Team, error) {
	return s.repo.UpdateTeam(ctx, team)
}

func (s *FestivalService) DeleteTeam(ctx context.Context, id uint) error {
	return s.repo.DeleteTeam(ctx, id)
}

func (s *FestivalService) CreateVenue(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	created, err := s.repo.CreateVenue(ctx, venue)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("s.repo.CreateVenue -> %w", err)
	}

	return created, nil
}

func (s *FestivalService) GetVenues(ctx context.Context) ([]domain.Venue, error) {
	return s.repo.FindAllVenues(ctx)
}

func (s *FestivalService) GetVenue(ctx context.Context, id uint) (domain.Venue, error) {
	return s.repo.FindVenueByID(ctx, id)
}

func (s *FestivalService) UpdateVenue(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	return s.repo.UpdateVenue(ctx, venue)
}

func (s *FestivalService) DeleteVenue(ctx context.Context, id uint) error {
	return s.repo.DeleteVenue(ctx, id)
}

func (s *FestivalService) CreatePerformer(ctx context.Context, performer domain.Performer) (domain.Performer, error) {
	created, err := s.repo.CreatePerformer(ctx, performer)
	if err != nil {
		return domain.Performer{}, fmt.Errorf("s.repo.CreatePerformer -> %w", err)
	}

	return created, nil
}

func (s *FestivalService) GetPerformers(ctx context.Context) ([]domain.Performer, error) {
	return s.repo.FindAllPerformers(ctx)
}

func (s *FestivalService) GetPerformer(ctx context.Context, id uint) (domain.Performer, error) {
	return s.repo.FindPerformerByID(ctx, id)
}

func (s *FestivalService) UpdatePerformer(ctx context.Context, performer domain.Performer) (domain.Performer, error) {
	return s.repo.UpdatePerformer(ctx, performer)
}

func (s *FestivalService) DeletePerformer(ctx context.Context, id uint) error {
	return s.repo.DeletePerformer(ctx, id)
}

func (s *FestivalService) CreateSponsor(ctx context.Context, sponsor domain.Sponsor) (domain.Sponsor, error) {
	created, err := s.repo.CreateSponsor(ctx, sponsor)
	if err != nil {
		return domain.Sponsor{}, fmt.Errorf("s.repo.CreateSponsor -> %w", err)
	}

	return created, nil
}

func (s *FestivalService) GetSponsors(ctx context.Context) ([]domain.Sponsor, error) {
	return s.repo.FindAllSponsors(ctx)
}

func (s *FestivalService) GetSponsor(ctx context.Context, id uint) (domain.Sponsor, error) {
	return s.repo.FindSponsorByID(ctx, id)
}

func (s *FestivalService) UpdateSponsor(ctx context.Context, sponsor domain.Sponsor) (domain.Sponsor, error) {
	return s.repo.UpdateSponsor(ctx, sponsor)
}

func (s *FestivalService) DeleteSponsor(ctx context.Context, id uint) error {
	return s.repo.DeleteSponsor(ctx, id)
}

func (s *FestivalService) CreateDay(ctx context.Context, day domain.DaySchedule) (domain.DaySchedule, error) {
	created, err := s.repo.CreateDay(ctx, day)
	if err != nil {
		return domain.DaySchedule{}, fmt.Errorf("s.repo.CreateDay -> %w", err)
	}

	return created, nil
}

func (s *FestivalService) GetDays(ctx context.Context) ([]domain.DaySchedule, error) {
	return s.repo.FindAllDays(ctx)
}

func (s *FestivalService) GetDay(ctx context.Context, id uint) (domain.DaySchedule, error) {
	return s.repo.FindDayByID(ctx, id)
}

func (s *FestivalService) UpdateDay(ctx context.Context, day domain.DaySchedule) (domain.DaySchedule, error) {
	return s.repo.UpdateDay(ctx, day)
}

func (s *FestivalService) DeleteDay(ctx context.Context, id uint) error {
	return s.repo.DeleteDay(ctx, id)
}

func (s *FestivalService) CreateExpense(ctx context.Context, expense domain.BudgetExpense) (domain.BudgetExpense, error) {
	created, err := s.repo.CreateExpense(ctx, expense)
	if err != nil {
		return domain.BudgetExpense{}, fmt.Errorf("s.repo.CreateExpense -> %w", err)
	}

	return created, nil
}

func (s *FestivalService) GetExpenses(ctx context.Context) ([]domain.BudgetExpense, error) {
	return s.repo.FindAllExpenses(ctx)
}

func (s *FestivalService) GetExpense(ctx context.Context, id uint) (domain.BudgetExpense, error) {
	return s.repo.FindExpenseByID(ctx, id)
}

func (s *FestivalService) UpdateExpense(ctx context.Context, expense domain.BudgetExpense) (domain.BudgetExpense, error) {
	return s.repo.UpdateExpense(ctx, expense)
}

func (s *FestivalService) DeleteExpense(ctx context.Context, id uint) error {
	return s.repo.DeleteExpense(ctx, id)
}
