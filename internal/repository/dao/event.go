package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrManagementNotFound   = errors.New("management assignment not found")
	ErrSponsorshipNotFound  = errors.New("sponsorship not found")
	ErrTicketNotFound       = errors.New("ticket not found")

	ErrDuplicateRegistration = errors.New("participant is already registered for this event")
	ErrDuplicateManagement   = errors.New("team is already assigned to this event")
	ErrDuplicateSponsorship  = errors.New("sponsor is already linked to this event")
)

type Event struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"not null"`
	Type            string `gorm:"not null"` // "Cultural" or "Performance"
	PrizeMoney      *float64
	MaxParticipants *int
	DayID           *uint        `gorm:"index"`
	Day             *DaySchedule `gorm:"foreignKey:DayID"`
	VenueID         *uint        `gorm:"index"`
	Venue           *Venue       `gorm:"foreignKey:VenueID"`
	PerformerID     *uint        `gorm:"index"`
	Performer       *Performer   `gorm:"foreignKey:PerformerID"`
}

type Registration struct {
	ID            uint        `gorm:"primaryKey"`
	EventID       uint        `gorm:"not null;uniqueIndex:idx_event_participant"`
	Event         Event       `gorm:"foreignKey:EventID"`
	ParticipantID uint        `gorm:"not null;uniqueIndex:idx_event_participant"`
	Participant   Participant `gorm:"foreignKey:ParticipantID"`
	RegisteredAt  time.Time   `gorm:"not null"`
}

func (Registration) TableName() string {
	return "event_registrations"
}

type Management struct {
	ID      uint  `gorm:"primaryKey"`
	EventID uint  `gorm:"not null;uniqueIndex:idx_event_team"`
	Event   Event `gorm:"foreignKey:EventID"`
	TeamID  uint  `gorm:"not null;uniqueIndex:idx_event_team"`
	Team    Team  `gorm:"foreignKey:TeamID"`
}

func (Management) TableName() string {
	return "event_management"
}

type Sponsorship struct {
	ID                 uint    `gorm:"primaryKey"`
	EventID            uint    `gorm:"not null;uniqueIndex:idx_event_sponsor"`
	Event              Event   `gorm:"foreignKey:EventID"`
	SponsorID          uint    `gorm:"not null;uniqueIndex:idx_event_sponsor"`
	Sponsor            Sponsor `gorm:"foreignKey:SponsorID"`
	ContributionAmount float64 `gorm:"not null"`
}

func (Sponsorship) TableName() string {
	return "event_sponsorships"
}

// Ticket rows accumulate: the same participant may hold several tickets for
// one event, so there is no unique index on (event_id, participant_id).
type Ticket struct {
	ID            uint        `gorm:"primaryKey"`
	EventID       uint        `gorm:"not null;index"`
	Event         Event       `gorm:"foreignKey:EventID"`
	ParticipantID uint        `gorm:"not null;index"`
	Participant   Participant `gorm:"foreignKey:ParticipantID"`
	Quantity      int         `gorm:"not null"`
	PurchasedAt   time.Time   `gorm:"not null"`
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return Event{}, ErrInvalidReference
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindAll(ctx context.Context) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) Update(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).
		Model(&Event{}).
		Where("id = ?", event.ID).
		Select("name", "type", "prize_money", "max_participants", "day_id", "venue_id", "performer_id").
		Updates(map[string]interface{}{
			"name":             event.Name,
			"type":             event.Type,
			"prize_money":      event.PrizeMoney,
			"max_participants": event.MaxParticipants,
			"day_id":           event.DayID,
			"venue_id":         event.VenueID,
			"performer_id":     event.PerformerID,
		})
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return Event{}, ErrInvalidReference
		}

		return Event{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Event{}, ErrEventNotFound
	}

	return d.FindByID(ctx, event.ID)
}

func (d *EventDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Event{}, id)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return ErrRowReferenced
		}

		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

func (d *EventDAO) InsertRegistration(ctx context.Context, registration Registration) (Registration, error) {
	result := d.db.WithContext(ctx).Create(&registration)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Registration{}, ErrDuplicateRegistration
		}
		if isForeignKeyViolation(result.Error) {
			return Registration{}, ErrInvalidReference
		}

		return Registration{}, result.Error
	}

	return registration, nil
}

// InsertRegistrationWithTicket writes the registration and its ticket in a
// single transaction. A duplicate registration aborts the whole operation,
// so a ticket can never outlive a failed registration.
func (d *EventDAO) InsertRegistrationWithTicket(ctx context.Context, registration Registration, ticket Ticket) (Registration, Ticket, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&registration).Error; err != nil {
			return err
		}

		ticket.EventID = registration.EventID
		ticket.ParticipantID = registration.ParticipantID

		return tx.Create(&ticket).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return Registration{}, Ticket{}, ErrDuplicateRegistration
		}
		if isForeignKeyViolation(err) {
			return Registration{}, Ticket{}, ErrInvalidReference
		}

		return Registration{}, Ticket{}, err
	}

	return registration, ticket, nil
}

func (d *EventDAO) FindRegistrationsByEvent(ctx context.Context, eventID uint) ([]Registration, error) {
	var registrations []Registration
	if err := d.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&registrations).Error; err != nil {
		return nil, err
	}

	return registrations, nil
}

func (d *EventDAO) FindRegistrationsByParticipant(ctx context.Context, participantID uint) ([]Registration, error) {
	var registrations []Registration
	if err := d.db.WithContext(ctx).Where("participant_id = ?", participantID).Find(&registrations).Error; err != nil {
		return nil, err
	}

	return registrations, nil
}

func (d *EventDAO) DeleteRegistration(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Registration{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRegistrationNotFound
	}

	return nil
}

func (d *EventDAO) InsertManagement(ctx context.Context, management Management) (Management, error) {
	result := d.db.WithContext(ctx).Create(&management)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Management{}, ErrDuplicateManagement
		}
		if isForeignKeyViolation(result.Error) {
			return Management{}, ErrInvalidReference
		}

		return Management{}, result.Error
	}

	return management, nil
}

func (d *EventDAO) FindManagementByEvent(ctx context.Context, eventID uint) ([]Management, error) {
	var assignments []Management
	if err := d.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&assignments).Error; err != nil {
		return nil, err
	}

	return assignments, nil
}

func (d *EventDAO) FindManagementByTeam(ctx context.Context, teamID uint) ([]Management, error) {
	var assignments []Management
	if err := d.db.WithContext(ctx).Where("team_id = ?", teamID).Find(&assignments).Error; err != nil {
		return nil, err
	}

	return assignments, nil
}

func (d *EventDAO) DeleteManagement(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Management{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrManagementNotFound
	}

	return nil
}

func (d *EventDAO) InsertSponsorship(ctx context.Context, sponsorship Sponsorship) (Sponsorship, error) {
	result := d.db.WithContext(ctx).Create(&sponsorship)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Sponsorship{}, ErrDuplicateSponsorship
		}
		if isForeignKeyViolation(result.Error) {
			return Sponsorship{}, ErrInvalidReference
		}

		return Sponsorship{}, result.Error
	}

	return sponsorship, nil
}

func (d *EventDAO) FindSponsorshipsByEvent(ctx context.Context, eventID uint) ([]Sponsorship, error) {
	var sponsorships []Sponsorship
	if err := d.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&sponsorships).Error; err != nil {
		return nil, err
	}

	return sponsorships, nil
}

func (d *EventDAO) FindSponsorshipsBySponsor(ctx context.Context, sponsorID uint) ([]Sponsorship, error) {
	var sponsorships []Sponsorship
	if err := d.db.WithContext(ctx).Where("sponsor_id = ?", sponsorID).Find(&sponsorships).Error; err != nil {
		return nil, err
	}

	return sponsorships, nil
}

// UpdateSponsorship changes the contribution amount only; relinking a
// sponsorship to another event or sponsor is done by delete + create.
func (d *EventDAO) UpdateSponsorship(ctx context.Context, id uint, contributionAmount float64) (Sponsorship, error) {
	result := d.db.WithContext(ctx).
		Model(&Sponsorship{}).
		Where("id = ?", id).
		Update("contribution_amount", contributionAmount)
	if result.Error != nil {
		return Sponsorship{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Sponsorship{}, ErrSponsorshipNotFound
	}

	var sponsorship Sponsorship
	if err := d.db.WithContext(ctx).First(&sponsorship, id).Error; err != nil {
		return Sponsorship{}, err
	}

	return sponsorship, nil
}

func (d *EventDAO) DeleteSponsorship(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Sponsorship{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSponsorshipNotFound
	}

	return nil
}

func (d *EventDAO) InsertTicket(ctx context.Context, ticket Ticket) (Ticket, error) {
	result := d.db.WithContext(ctx).Create(&ticket)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return Ticket{}, ErrInvalidReference
		}

		return Ticket{}, result.Error
	}

	return ticket, nil
}

func (d *EventDAO) FindTicketsByEvent(ctx context.Context, eventID uint) ([]Ticket, error) {
	var tickets []Ticket
	if err := d.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&tickets).Error; err != nil {
		return nil, err
	}

	return tickets, nil
}

func (d *EventDAO) FindTicketsByParticipant(ctx context.Context, participantID uint) ([]Ticket, error) {
	var tickets []Ticket
	if err := d.db.WithContext(ctx).Where("participant_id = ?", participantID).Find(&tickets).Error; err != nil {
		return nil, err
	}

	return tickets, nil
}

func (d *EventDAO) UpdateTicketQuantity(ctx context.Context, id uint, quantity int) (Ticket, error) {
	result := d.db.WithContext(ctx).
		Model(&Ticket{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if result.Error != nil {
		return Ticket{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Ticket{}, ErrTicketNotFound
	}

	var ticket Ticket
	if err := d.db.WithContext(ctx).First(&ticket, id).Error; err != nil {
		return Ticket{}, err
	}

	return ticket, nil
}

func (d *EventDAO) DeleteTicket(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Ticket{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTicketNotFound
	}

	return nil
}

// Stats aggregates the dashboard counters in one round of queries.
func (d *EventDAO) Stats(ctx context.Context) (totalEvents, totalParticipants, totalSponsors int64, totalBudget, totalRevenue float64, err error) {
	tx := d.db.WithContext(ctx)

	if err = tx.Model(&Event{}).Count(&totalEvents).Error; err != nil {
		return
	}
	if err = tx.Model(&Participant{}).Count(&totalParticipants).Error; err != nil {
		return
	}
	if err = tx.Model(&Sponsor{}).Count(&totalSponsors).Error; err != nil {
		return
	}
	if err = tx.Model(&BudgetExpense{}).
		Select("COALESCE(SUM(allocated_amount), 0)").
		Scan(&totalBudget).Error; err != nil {
		return
	}
	err = tx.Model(&Sponsor{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalRevenue).Error

	return
}
