package repository

import (
	"context"
	"fmt"

	"github.com/campusfest/fest-api/internal/domain"
	"github.com/campusfest/fest-api/internal/repository/dao"
)

var (
	ErrTeamNotFound      = dao.ErrTeamNotFound
	ErrVenueNotFound     = dao.ErrVenueNotFound
	ErrPerformerNotFound = dao.ErrPerformerNotFound
	ErrSponsorNotFound   = dao.ErrSponsorNotFound
	ErrDayNotFound       = dao.ErrDayNotFound
	ErrExpenseNotFound   = dao.ErrExpenseNotFound
)

type FestivalDAO interface {
	InsertTeam(ctx context.Context, team dao.Team) (dao.Team, error)
	FindAllTeams(ctx context.Context) ([]dao.Team, error)
	FindTeamByID(ctx context.Context, id uint) (dao.Team, error)
	UpdateTeam(ctx context.Context, team dao.Team) (dao.Team, error)
	DeleteTeam(ctx context.Context, id uint) error

	InsertVenue(ctx context.Context, venue dao.Venue) (dao.Venue, error)
	FindAllVenues(ctx context.Context) ([]dao.Venue, error)
	FindVenueByID(ctx context.Context, id uint) (dao.Venue, error)
	UpdateVenue(ctx context.Context, venue dao.Venue) (dao.Venue, error)
	DeleteVenue(ctx context.Context, id uint) error

	InsertPerformer(ctx context.Context, performer dao.Performer) (dao.Performer, error)
	FindAllPerformers(ctx context.Context) ([]dao.Performer, error)
	FindPerformerByID(ctx context.Context, id uint) (dao.Performer, error)
	UpdatePerformer(ctx context.Context, performer dao.Performer) (dao.Performer, error)
	DeletePerformer(ctx context.Context, id uint) error

	InsertSponsor(ctx context.Context, sponsor dao.Sponsor) (dao.Sponsor, error)
	FindAllSponsors(ctx context.Context) ([]dao.Sponsor, error)
	FindSponsorByID(ctx context.Context, id uint) (dao.Sponsor, error)
	UpdateSponsor(ctx context.Context, sponsor dao.Sponsor) (dao.Sponsor, error)
	DeleteSponsor(ctx context.Context, id uint) error

	InsertDay(ctx context.Context, day dao.DaySchedule) (dao.DaySchedule, error)
	FindAllDays(ctx context.Context) ([]dao.DaySchedule, error)
	FindDayByID(ctx context.Context, id uint) (dao.DaySchedule, error)
	UpdateDay(ctx context.Context, day dao.DaySchedule) (dao.DaySchedule, error)
	DeleteDay(ctx context.Context, id uint) error

	InsertExpense(ctx context.Context, expense dao.BudgetExpense) (dao.BudgetExpense, error)
	FindAllExpenses(ctx context.Context) ([]dao.BudgetExpense, error)
	FindExpenseByID(ctx context.Context, id uint) (dao.BudgetExpense, error)
	UpdateExpense(ctx context.Context, expense dao.BudgetExpense) (dao.BudgetExpense, error)
	DeleteExpense(ctx context.Context, id uint) error
}

type FestivalRepository struct {
	dao FestivalDAO
}

func NewFestivalRepository(dao FestivalDAO) *FestivalRepository {
	return &FestivalRepository{
		dao: dao,
	}
}

func (r *FestivalRepository) CreateTeam(ctx context.Context, team domain.Team) (domain.Team, error) {
	created, err := r.dao.InsertTeam(ctx, dao.Team{Name: team.Name})
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.InsertTeam -> %w", err)
	}

	return teamToDomain(created), nil
}

func (r *FestivalRepository) FindAllTeams(ctx context.Context) ([]domain.Team, error) {
	found, err := r.dao.FindAllTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllTeams -> %w", err)
	}

	teams := make([]domain.Team, 0, len(found))
	for _, t := range found {
		teams = append(teams, teamToDomain(t))
	}

	return teams, nil
}

func (r *FestivalRepository) FindTeamByID(ctx context.Context, id uint) (domain.Team, error) {
	found, err := r.dao.FindTeamByID(ctx, id)
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.FindTeamByID -> %w", err)
	}

	return teamToDomain(found), nil
}

func (r *FestivalRepository) UpdateTeam(ctx context.Context, team domain.Team) (domain.Team, error) {
	updated, err := r.dao.UpdateTeam(ctx, dao.Team{ID: team.ID, Name: team.Name})
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.UpdateTeam -> %w", err)
	}

	return teamToDomain(updated), nil
}

func (r *FestivalRepository) DeleteTeam(ctx context.Context, id uint) error {
	if err := r.dao.DeleteTeam(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteTeam -> %w", err)
	}

	return nil
}

func (r *FestivalRepository) CreateVenue(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	created, err := r.dao.InsertVenue(ctx, venueToDAO(venue))
	if err != nil {
		return domain.Venue{}, fmt.Errorf("r.dao.InsertVenue -> %w", err)
	}

	return venueToDomain(created), nil
}

func (r *FestivalRepository) FindAllVenues(ctx context.Context) ([]domain.Venue, error) {
	found, err := r.dao.FindAllVenues(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllVenues -> %w", err)
	}

	venues := make([]domain.Venue, 0, len(found))
	for _, v := range found {
		venues = append(venues, venueToDomain(v))
	}

	return venues, nil
}

func (r *FestivalRepository) FindVenueByID(ctx context.Context, id uint) (domain.Venue, error) {
	found, err := r.dao.FindVenueByID(ctx, id)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("r.dao.FindVenueByID -> %w", err)
	}

	return venueToDomain(found), nil
}

func (r *FestivalRepository) UpdateVenue(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	updated, err := r.dao.UpdateVenue(ctx, venueToDAO(venue))
	if err != nil {
		return domain.Venue{}, fmt.Errorf("r.dao.UpdateVenue -> %w", err)
	}

	return venueToDomain(updated), nil
}

func (r *FestivalRepository) DeleteVenue(ctx context.Context, id uint) error {
	if err := r.dao.DeleteVenue(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteVenue -> %w", err)
	}

	return nil
}

func (r *FestivalRepository) CreatePerformer(ctx context.Context, performer domain.Performer) (domain.Performer, error) {
	created, err := r.dao.InsertPerformer(ctx, dao.Performer{Name: performer.Name, Type: string(performer.Type)})
	if err != nil {
		return domain.Performer{}, fmt.Errorf("r.dao.InsertPerformer -> %w", err)
	}

	return performerToDomain(created), nil
}

func (r *FestivalRepository) FindAllPerformers(ctx context.Context) ([]domain.Performer, error) {
	found, err := r.dao.FindAllPerformers(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllPerformers -> %w", err)
	}

	performers := make([]domain.Performer, 0, len(found))
	for _, p := range found {
		performers = append(performers, performerToDomain(p))
	}

	return performers, nil
}

func (r *FestivalRepository) FindPerformerByID(ctx context.Context, id uint) (domain.Performer, error) {
	found, err := r.dao.FindPerformerByID(ctx, id)
	if err != nil {
		return domain.Performer{}, fmt.Errorf("r.dao.FindPerformerByID -> %w", err)
	}

	return performerToDomain(found), nil
}

func (r *FestivalRepository) UpdatePerformer(ctx context.Context, performer domain.Performer) (domain.Performer, error) {
	updated, err := r.dao.UpdatePerformer(ctx, dao.Performer{ID: performer.ID, Name: performer.Name, Type: string(performer.Type)})
	if err != nil {
		return domain.Performer{}, fmt.Errorf("r.dao.UpdatePerformer -> %w", err)
	}

	return performerToDomain(updated), nil
}

func (r *FestivalRepository) DeletePerformer(ctx context.Context, id uint) error {
	if err := r.dao.DeletePerformer(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeletePerformer -> %w", err)
	}

	return nil
}

func (r *FestivalRepository) CreateSponsor(ctx context.Context, sponsor domain.Sponsor) (domain.Sponsor, error) {
	created, err := r.dao.InsertSponsor(ctx, sponsorToDAO(sponsor))
	if err != nil {
		return domain.Sponsor{}, fmt.Errorf("r.dao.InsertSponsor -> %w", err)
	}

	return sponsorToDomain(created), nil
}

func (r *FestivalRepository) FindAllSponsors(ctx context.Context) ([]domain.Sponsor, error) {
	found, err := r.dao.FindAllSponsors(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllSponsors -> %w", err)
	}

	sponsors := make([]domain.Sponsor, 0, len(found))
	for _, s := range found {
		sponsors = append(sponsors, sponsorToDomain(s))
	}

	return sponsors, nil
}

func (r *FestivalRepository) FindSponsorByID(ctx context.Context, id uint) (domain.Sponsor, error) {
	found, err := r.dao.FindSponsorByID(ctx, id)
	if err != nil {
		return domain.Sponsor{}, fmt.Errorf("r.dao.FindSponsorByID -> %w", err)
	}

	return sponsorToDomain(found), nil
}

func (r *FestivalRepository) UpdateSponsor(ctx context.Context, sponsor domain.Sponsor) (domain.Sponsor, error) {
	updated, err := r.dao.UpdateSponsor(ctx, sponsorToDAO(sponsor))
	if err != nil {
		return domain.Sponsor{}, fmt.Errorf("r.dao.UpdateSponsor -> %w", err)
	}

	return sponsorToDomain(updated), nil
}

func (r *FestivalRepository) DeleteSponsor(ctx context.Context, id uint) error {
	if err := r.dao.DeleteSponsor(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteSponsor -> %w", err)
	}

	return nil
}

func (r *FestivalRepository) CreateDay(ctx context.Context, day domain.DaySchedule) (domain.DaySchedule, error) {
	created, err := r.dao.InsertDay(ctx, dayToDAO(day))
	if err != nil {
		return domain.DaySchedule{}, fmt.Errorf("r.dao.InsertDay -> %w", err)
	}

	return dayToDomain(created), nil
}

func (r *FestivalRepository) FindAllDays(ctx context.Context) ([]domain.DaySchedule, error) {
	found, err := r.dao.FindAllDays(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllDays -> %w", err)
	}

	days := make([]domain.DaySchedule, 0, len(found))
	for _, d := range found {
		days = append(days, dayToDomain(d))
	}

	return days, nil
}

func (r *FestivalRepository) FindDayByID(ctx context.Context, id uint) (domain.DaySchedule, error) {
	found, err := r.dao.FindDayByID(ctx, id)
	if err != nil {
		return domain.DaySchedule{}, fmt.Errorf("r.dao.FindDayByID -> %w", err)
	}

	return dayToDomain(found), nil
}

func (r *FestivalRepository) UpdateDay(ctx context.Context, day domain.DaySchedule) (domain.DaySchedule, error) {
	updated, err := r.dao.UpdateDay(ctx, dayToDAO(day))
	if err != nil {
		return domain.DaySchedule{}, fmt.Errorf("r.dao.UpdateDay -> %w", err)
	}

	return dayToDomain(updated), nil
}

func (r *FestivalRepository) DeleteDay(ctx context.Context, id uint) error {
	if err := r.dao.DeleteDay(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteDay -> %w", err)
	}

	return nil
}

func (r *FestivalRepository) CreateExpense(ctx context.Context, expense domain.BudgetExpense) (domain.BudgetExpense, error) {
	created, err := r.dao.InsertExpense(ctx, expenseToDAO(expense))
	if err != nil {
		return domain.BudgetExpense{}, fmt.Errorf("r.dao.InsertExpense -> %w", err)
	}

	return expenseToDomain(created), nil
}

func (r *FestivalRepository) FindAllExpenses(ctx context.Context) ([]domain.BudgetExpense, error) {
	found, err := r.dao.FindAllExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllExpenses -> %w", err)
	}

	expenses := make([]domain.BudgetExpense, 0, len(found))
	for _, e := range found {
		expenses = append(expenses, expenseToDomain(e))
	}

	return expenses, nil
}

func (r *FestivalRepository) FindExpenseByID(ctx context.Context, id uint) (domain.BudgetExpense, error) {
	found, err := r.dao.FindExpenseByID(ctx, id)
	if err != nil {
		return domain.BudgetExpense{}, fmt.Errorf("r.dao.FindExpenseByID -> %w", err)
	}

	return expenseToDomain(found), nil
}

func (r *FestivalRepository) UpdateExpense(ctx context.Context, expense domain.BudgetExpense) (domain.BudgetExpense, error) {
	updated, err := r.dao.UpdateExpense(ctx, expenseToDAO(expense))
	if err != nil {
		return domain.BudgetExpense{}, fmt.Errorf("r.dao.UpdateExpense -> %w", err)
	}

	return expenseToDomain(updated), nil
}

func (r *FestivalRepository) DeleteExpense(ctx context.Context, id uint) error {
	if err := r.dao.DeleteExpense(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteExpense -> %w", err)
	}

	return nil
}

func teamToDomain(t dao.Team) domain.Team {
	return domain.Team{ID: t.ID, Name: t.Name}
}

func venueToDAO(v domain.Venue) dao.Venue {
	return dao.Venue{ID: v.ID, Name: v.Name, Capacity: v.Capacity, Location: v.Location}
}

func venueToDomain(v dao.Venue) domain.Venue {
	return domain.Venue{ID: v.ID, Name: v.Name, Capacity: v.Capacity, Location: v.Location}
}

func performerToDomain(p dao.Performer) domain.Performer {
	return domain.Performer{ID: p.ID, Name: p.Name, Type: domain.PerformerType(p.Type)}
}

func sponsorToDAO(s domain.Sponsor) dao.Sponsor {
	return dao.Sponsor{ID: s.ID, Name: s.Name, Amount: s.Amount, Type: s.Type}
}

func sponsorToDomain(s dao.Sponsor) domain.Sponsor {
	return domain.Sponsor{ID: s.ID, Name: s.Name, Amount: s.Amount, Type: s.Type}
}

func dayToDAO(d domain.DaySchedule) dao.DaySchedule {
	return dao.DaySchedule{ID: d.ID, DayNumber: d.DayNumber, Date: d.Date, Description: d.Description}
}

func dayToDomain(d dao.DaySchedule) domain.DaySchedule {
	return domain.DaySchedule{ID: d.ID, DayNumber: d.DayNumber, Date: d.Date, Description: d.Description}
}

func expenseToDAO(e domain.BudgetExpense) dao.BudgetExpense {
	return dao.BudgetExpense{ID: e.ID, Description: e.Description, AllocatedAmount: e.AllocatedAmount}
}

func expenseToDomain(e dao.BudgetExpense) domain.BudgetExpense {
	return domain.BudgetExpense{ID: e.ID, Description: e.Description, AllocatedAmount: e.AllocatedAmount}
}
