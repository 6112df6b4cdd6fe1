package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrTeamNotFound      = errors.New("team not found")
	ErrVenueNotFound     = errors.New("venue not found")
	ErrPerformerNotFound = errors.New("performer not found")
	ErrSponsorNotFound   = errors.New("sponsor not found")
	ErrDayNotFound       = errors.New("day schedule not found")
	ErrExpenseNotFound   = errors.New("budget expense not found")
)

type Team struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

type Venue struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"not null"`
	Capacity *int
	Location *string
}

type Performer struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`
	Type string `gorm:"not null"` // "Singer", "DJ", "Standup", or "Band"
}

type Sponsor struct {
	ID     uint    `gorm:"primaryKey"`
	Name   string  `gorm:"not null"`
	Amount float64 `gorm:"not null"`
	Type   *string
}

type DaySchedule struct {
	ID          uint      `gorm:"primaryKey"`
	DayNumber   int       `gorm:"not null"`
	Date        time.Time `gorm:"not null"`
	Description *string
}

func (DaySchedule) TableName() string {
	return "day_schedules"
}

type BudgetExpense struct {
	ID              uint    `gorm:"primaryKey"`
	Description     string  `gorm:"not null"`
	AllocatedAmount float64 `gorm:"not null"`
}

func (BudgetExpense) TableName() string {
	return "budget_expenses"
}

// FestivalDAO covers the flat catalog entities: teams, venues, performers,
// sponsors, day schedules and budget expenses. Each delete maps a foreign
// key violation to ErrRowReferenced so controllers can answer with a typed
// referential error instead of a raw store failure.
type FestivalDAO struct {
	db *gorm.DB
}

func NewFestivalDAO(db *gorm.DB) *FestivalDAO {
	return &FestivalDAO{
		db: db,
	}
}

func (d *FestivalDAO) insert(ctx context.Context, record interface{}) error {
	result := d.db.WithContext(ctx).Create(record)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return ErrInvalidReference
		}

		return result.Error
	}

	return nil
}

func (d *FestivalDAO) first(ctx context.Context, dest interface{}, id uint, notFound error) error {
	result := d.db.WithContext(ctx).First(dest, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return notFound
		}

		return result.Error
	}

	return nil
}

func (d *FestivalDAO) save(ctx context.Context, record interface{}, id uint, notFound error) error {
	result := d.db.WithContext(ctx).
		Model(record).
		Where("id = ?", id).
		Select("*").
		Omit("id").
		Updates(record)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return ErrInvalidReference
		}

		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound
	}

	return nil
}

func (d *FestivalDAO) remove(ctx context.Context, model interface{}, id uint, notFound error) error {
	result := d.db.WithContext(ctx).Delete(model, id)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return ErrRowReferenced
		}

		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound
	}

	return nil
}

func (d *FestivalDAO) InsertTeam(ctx context.Context, team Team) (Team, error) {
	if err := d.insert(ctx, &team); err != nil {
		return Team{}, err
	}

	return team, nil
}

func (d *FestivalDAO) FindAllTeams(ctx context.Context) ([]Team, error) {
	var teams []Team
	if err := d.db.WithContext(ctx).Find(&teams).Error; err != nil {
		return nil, err
	}

	return teams, nil
}

func (d *FestivalDAO) FindTeamByID(ctx context.Context, id uint) (Team, error) {
	var team Team
	if err := d.first(ctx, &team, id, ErrTeamNotFound); err != nil {
		return Team{}, err
	}

	return team, nil
}

func (d *FestivalDAO) UpdateTeam(ctx context.Context, team Team) (Team, error) {
	if err := d.save(ctx, &team, team.ID, ErrTeamNotFound); err != nil {
		return Team{}, err
	}

	return d.FindTeamByID(ctx, team.ID)
}

func (d *FestivalDAO) DeleteTeam(ctx context.Context, id uint) error {
	return d.remove(ctx, &Team{}, id, ErrTeamNotFound)
}

func (d *FestivalDAO) InsertVenue(ctx context.Context, venue Venue) (Venue, error) {
	if err := d.insert(ctx, &venue); err != nil {
		return Venue{}, err
	}

	return venue, nil
}

func (d *FestivalDAO) FindAllVenues(ctx context.Context) ([]Venue, error) {
	var venues []Venue
	if err := d.db.WithContext(ctx).Find(&venues).Error; err != nil {
		return nil, err
	}

	return venues, nil
}

func (d *FestivalDAO) FindVenueByID(ctx context.Context, id uint) (Venue, error) {
	var venue Venue
	if err := d.first(ctx, &venue, id, ErrVenueNotFound); err != nil {
		return Venue{}, err
	}

	return venue, nil
}

func (d *FestivalDAO) UpdateVenue(ctx context.Context, venue Venue) (Venue, error) {
	if err := d.save(ctx, &venue, venue.ID, ErrVenueNotFound); err != nil {
		return Venue{}, err
	}

	return d.FindVenueByID(ctx, venue.ID)
}

func (d *FestivalDAO) DeleteVenue(ctx context.Context, id uint) error {
	return d.remove(ctx, &Venue{}, id, ErrVenueNotFound)
}

func (d *FestivalDAO) InsertPerformer(ctx context.Context, performer Performer) (Performer, error) {
	if err := d.insert(ctx, &performer); err != nil {
		return Performer{}, err
	}

	return performer, nil
}

func (d *FestivalDAO) FindAllPerformers(ctx context.Context) ([]Performer, error) {
	var performers []Performer
	if err := d.db.WithContext(ctx).Find(&performers).Error; err != nil {
		return nil, err
	}

	return performers, nil
}

func (d *FestivalDAO) FindPerformerByID(ctx context.Context, id uint) (Performer, error) {
	var performer Performer
	if err := d.first(ctx, &performer, id, ErrPerformerNotFound); err != nil {
		return Performer{}, err
	}

	return performer, nil
}

func (d *FestivalDAO) UpdatePerformer(ctx context.Context, performer Performer) (Performer, error) {
	if err := d.save(ctx, &performer, performer.ID, ErrPerformerNotFound); err != nil {
		return Performer{}, err
	}

	return d.FindPerformerByID(ctx, performer.ID)
}

func (d *FestivalDAO) DeletePerformer(ctx context.Context, id uint) error {
	return d.remove(ctx, &Performer{}, id, ErrPerformerNotFound)
}

func (d *FestivalDAO) InsertSponsor(ctx context.Context, sponsor Sponsor) (Sponsor, error) {
	if err := d.insert(ctx, &sponsor); err != nil {
		return Sponsor{}, err
	}

	return sponsor, nil
}

func (d *FestivalDAO) FindAllSponsors(ctx context.Context) ([]Sponsor, error) {
	var sponsors []Sponsor
	if err := d.db.WithContext(ctx).Find(&sponsors).Error; err != nil {
		return nil, err
	}

	return sponsors, nil
}

func (d *FestivalDAO) FindSponsorByID(ctx context.Context, id uint) (Sponsor, error) {
	var sponsor Sponsor
	if err := d.first(ctx, &sponsor, id, ErrSponsorNotFound); err != nil {
		return Sponsor{}, err
	}

	return sponsor, nil
}

func (d *FestivalDAO) UpdateSponsor(ctx context.Context, sponsor Sponsor) (Sponsor, error) {
	if err := d.save(ctx, &sponsor, sponsor.ID, ErrSponsorNotFound); err != nil {
		return Sponsor{}, err
	}

	return d.FindSponsorByID(ctx, sponsor.ID)
}

func (d *FestivalDAO) DeleteSponsor(ctx context.Context, id uint) error {
	return d.remove(ctx, &Sponsor{}, id, ErrSponsorNotFound)
}

func (d *FestivalDAO) InsertDay(ctx context.Context, day DaySchedule) (DaySchedule, error) {
	if err := d.insert(ctx, &day); err != nil {
		return DaySchedule{}, err
	}

	return day, nil
}

func (d *FestivalDAO) FindAllDays(ctx context.Context) ([]DaySchedule, error) {
	var days []DaySchedule
	if err := d.db.WithContext(ctx).Find(&days).Error; err != nil {
		return nil, err
	}

	return days, nil
}

func (d *FestivalDAO) FindDayByID(ctx context.Context, id uint) (DaySchedule, error) {
	var day DaySchedule
	if err := d.first(ctx, &day, id, ErrDayNotFound); err != nil {
		return DaySchedule{}, err
	}

	return day, nil
}

func (d *FestivalDAO) UpdateDay(ctx context.Context, day DaySchedule) (DaySchedule, error) {
	if err := d.save(ctx, &day, day.ID, ErrDayNotFound); err != nil {
		return DaySchedule{}, err
	}

	return d.FindDayByID(ctx, day.ID)
}

func (d *FestivalDAO) DeleteDay(ctx context.Context, id uint) error {
	return d.remove(ctx, &DaySchedule{}, id, ErrDayNotFound)
}

func (d *FestivalDAO) InsertExpense(ctx context.Context, expense BudgetExpense) (BudgetExpense, error) {
	if err := d.insert(ctx, &expense); err != nil {
		return BudgetExpense{}, err
	}

	return expense, nil
}

func (d *FestivalDAO) FindAllExpenses(ctx context.Context) ([]BudgetExpense, error) {
	var expenses []BudgetExpense
	if err := d.db.WithContext(ctx).Find(&expenses).Error; err != nil {
		return nil, err
	}

	return expenses, nil
}

func (d *FestivalDAO) FindExpenseByID(ctx context.Context, id uint) (BudgetExpense, error) {
	var expense BudgetExpense
	if err := d.first(ctx, &expense, id, ErrExpenseNotFound); err != nil {
		return BudgetExpense{}, err
	}

	return expense, nil
}

func (d *FestivalDAO) UpdateExpense(ctx context.Context, expense BudgetExpense) (BudgetExpense, error) {
	if err := d.save(ctx, &expense, expense.ID, ErrExpenseNotFound); err != nil {
		return BudgetExpense{}, err
	}

	return d.FindExpenseByID(ctx, expense.ID)
}

func (d *FestivalDAO) DeleteExpense(ctx context.Context, id uint) error {
	return d.remove(ctx, &BudgetExpense{}, id, ErrExpenseNotFound)
}
