package repository

import (
	"context"
	"fmt"

	"github.com/campusfest/fest-api/internal/domain"
	"github.com/campusfest/fest-api/internal/repository/dao"
)

var (
	ErrEventNotFound        = dao.ErrEventNotFound
	ErrRegistrationNotFound = dao.ErrRegistrationNotFound
	ErrManagementNotFound   = dao.ErrManagementNotFound
	ErrSponsorshipNotFound  = dao.ErrSponsorshipNotFound
	ErrTicketNotFound       = dao.ErrTicketNotFound

	ErrDuplicateRegistration = dao.ErrDuplicateRegistration
	ErrDuplicateManagement   = dao.ErrDuplicateManagement
	ErrDuplicateSponsorship  = dao.ErrDuplicateSponsorship
)

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindAll(ctx context.Context) ([]dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	Update(ctx context.Context, event dao.Event) (dao.Event, error)
	Delete(ctx context.Context, id uint) error

	InsertRegistration(ctx context.Context, registration dao.Registration) (dao.Registration, error)
	InsertRegistrationWithTicket(ctx context.Context, registration dao.Registration, ticket dao.Ticket) (dao.Registration, dao.Ticket, error)
	FindRegistrationsByEvent(ctx context.Context, eventID uint) ([]dao.Registration, error)
	FindRegistrationsByParticipant(ctx context.Context, participantID uint) ([]dao.Registration, error)
	DeleteRegistration(ctx context.Context, id uint) error

	InsertManagement(ctx context.Context, management dao.Management) (dao.Management, error)
	FindManagementByEvent(ctx context.Context, eventID uint) ([]dao.Management, error)
	FindManagementByTeam(ctx context.Context, teamID uint) ([]dao.Management, error)
	DeleteManagement(ctx context.Context, id uint) error

	InsertSponsorship(ctx context.Context, sponsorship dao.Sponsorship) (dao.Sponsorship, error)
	FindSponsorshipsByEvent(ctx context.Context, eventID uint) ([]dao.Sponsorship, error)
	FindSponsorshipsBySponsor(ctx context.Context, sponsorID uint) ([]dao.Sponsorship, error)
	UpdateSponsorship(ctx context.Context, id uint, contributionAmount float64) (dao.Sponsorship, error)
	DeleteSponsorship(ctx context.Context, id uint) error

	InsertTicket(ctx context.Context, ticket dao.Ticket) (dao.Ticket, error)
	FindTicketsByEvent(ctx context.Context, eventID uint) ([]dao.Ticket, error)
	FindTicketsByParticipant(ctx context.Context, participantID uint) ([]dao.Ticket, error)
	UpdateTicketQuantity(ctx context.Context, id uint, quantity int) (dao.Ticket, error)
	DeleteTicket(ctx context.Context, id uint) error

	Stats(ctx context.Context) (totalEvents, totalParticipants, totalSponsors int64, totalBudget, totalRevenue float64, err error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, eventToDAO(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return eventToDomain(created), nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, e := range found {
		events = append(events, eventToDomain(e))
	}

	return events, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return eventToDomain(found), nil
}

func (r *EventRepository) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	updated, err := r.dao.Update(ctx, eventToDAO(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return eventToDomain(updated), nil
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *EventRepository) CreateRegistration(ctx context.Context, registration domain.Registration) (domain.Registration, error) {
	created, err := r.dao.InsertRegistration(ctx, registrationToDAO(registration))
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.InsertRegistration -> %w", err)
	}

	return registrationToDomain(created), nil
}

func (r *EventRepository) CreateRegistrationWithTicket(ctx context.Context, registration domain.Registration, ticket domain.Ticket) (domain.Registration, domain.Ticket, error) {
	createdReg, createdTicket, err := r.dao.InsertRegistrationWithTicket(ctx, registrationToDAO(registration), ticketToDAO(ticket))
	if err != nil {
		return domain.Registration{}, domain.Ticket{}, fmt.Errorf("r.dao.InsertRegistrationWithTicket -> %w", err)
	}

	return registrationToDomain(createdReg), ticketToDomain(createdTicket), nil
}

func (r *EventRepository) FindRegistrationsByEvent(ctx context.Context, eventID uint) ([]domain.Registration, error) {
	found, err := r.dao.FindRegistrationsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRegistrationsByEvent -> %w", err)
	}

	return registrationsToDomain(found), nil
}

func (r *EventRepository) FindRegistrationsByParticipant(ctx context.Context, participantID uint) ([]domain.Registration, error) {
	found, err := r.dao.FindRegistrationsByParticipant(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRegistrationsByParticipant -> %w", err)
	}

	return registrationsToDomain(found), nil
}

func (r *EventRepository) DeleteRegistration(ctx context.Context, id uint) error {
	if err := r.dao.DeleteRegistration(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteRegistration -> %w", err)
	}

	return nil
}

func (r *EventRepository) CreateManagement(ctx context.Context, management domain.Management) (domain.Management, error) {
	created, err := r.dao.InsertManagement(ctx, dao.Management{
		EventID: management.EventID,
		TeamID:  management.TeamID,
	})
	if err != nil {
		return domain.Management{}, fmt.Errorf("r.dao.InsertManagement -> %w", err)
	}

	return managementToDomain(created), nil
}

func (r *EventRepository) FindManagementByEvent(ctx context.Context, eventID uint) ([]domain.Management, error) {
	found, err := r.dao.FindManagementByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindManagementByEvent -> %w", err)
	}

	return managementsToDomain(found), nil
}

func (r *EventRepository) FindManagementByTeam(ctx context.Context, teamID uint) ([]domain.Management, error) {
	found, err := r.dao.FindManagementByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindManagementByTeam -> %w", err)
	}

	return managementsToDomain(found), nil
}

func (r *EventRepository) DeleteManagement(ctx context.Context, id uint) error {
	if err := r.dao.DeleteManagement(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteManagement -> %w", err)
	}

	return nil
}

func (r *EventRepository) CreateSponsorship(ctx context.Context, sponsorship domain.Sponsorship) (domain.Sponsorship, error) {
	created, err := r.dao.InsertSponsorship(ctx, dao.Sponsorship{
		EventID:            sponsorship.EventID,
		SponsorID:          sponsorship.SponsorID,
		ContributionAmount: sponsorship.ContributionAmount,
	})
	if err != nil {
		return domain.Sponsorship{}, fmt.Errorf("r.dao.InsertSponsorship -> %w", err)
	}

	return sponsorshipToDomain(created), nil
}

func (r *EventRepository) FindSponsorshipsByEvent(ctx context.Context, eventID uint) ([]domain.Sponsorship, error) {
	found, err := r.dao.FindSponsorshipsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindSponsorshipsByEvent -> %w", err)
	}

	return sponsorshipsToDomain(found), nil
}

func (r *EventRepository) FindSponsorshipsBySponsor(ctx context.Context, sponsorID uint) ([]domain.Sponsorship, error) {
	found, err := r.dao.FindSponsorshipsBySponsor(ctx, sponsorID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindSponsorshipsBySponsor -> %w", err)
	}

	return sponsorshipsToDomain(found), nil
}

func (r *EventRepository) UpdateSponsorship(ctx context.Context, id uint, contributionAmount float64) (domain.Sponsorship, error) {
	updated, err := r.dao.UpdateSponsorship(ctx, id, contributionAmount)
	if err != nil {
		return domain.Sponsorship{}, fmt.Errorf("r.dao.UpdateSponsorship -> %w", err)
	}

	return sponsorshipToDomain(updated), nil
}

func (r *EventRepository) DeleteSponsorship(ctx context.Context, id uint) error {
	if err := r.dao.DeleteSponsorship(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteSponsorship -> %w", err)
	}

	return nil
}

func (r *EventRepository) CreateTicket(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	created, err := r.dao.InsertTicket(ctx, ticketToDAO(ticket))
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("r.dao.InsertTicket -> %w", err)
	}

	return ticketToDomain(created), nil
}

func (r *EventRepository) FindTicketsByEvent(ctx context.Context, eventID uint) ([]domain.Ticket, error) {
	found, err := r.dao.FindTicketsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindTicketsByEvent -> %w", err)
	}

	return ticketsToDomain(found), nil
}

func (r *EventRepository) FindTicketsByParticipant(ctx context.Context, participantID uint) ([]domain.Ticket, error) {
	found, err := r.dao.FindTicketsByParticipant(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindTicketsByParticipant -> %w", err)
	}

	return ticketsToDomain(found), nil
}

func (r *EventRepository) UpdateTicketQuantity(ctx context.Context, id uint, quantity int) (domain.Ticket, error) {
	updated, err := r.dao.UpdateTicketQuantity(ctx, id, quantity)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("r.dao.UpdateTicketQuantity -> %w", err)
	}

	return ticketToDomain(updated), nil
}

func (r *EventRepository) DeleteTicket(ctx context.Context, id uint) error {
	if err := r.dao.DeleteTicket(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteTicket -> %w", err)
	}

	return nil
}

func (r *EventRepository) Stats(ctx context.Context) (domain.DashboardStats, error) {
	totalEvents, totalParticipants, totalSponsors, totalBudget, totalRevenue, err := r.dao.Stats(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("r.dao.Stats -> %w", err)
	}

	return domain.DashboardStats{
		TotalEvents:       totalEvents,
		TotalParticipants: totalParticipants,
		TotalSponsors:     totalSponsors,
		TotalBudget:       totalBudget,
		TotalRevenue:      totalRevenue,
	}, nil
}

func eventToDAO(e domain.Event) dao.Event {
	return dao.Event{
		ID:              e.ID,
		Name:            e.Name,
		Type:            string(e.Type),
		PrizeMoney:      e.PrizeMoney,
		MaxParticipants: e.MaxParticipants,
		DayID:           e.DayID,
		VenueID:         e.VenueID,
		PerformerID:     e.PerformerID,
	}
}

func eventToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:              e.ID,
		Name:            e.Name,
		Type:            domain.EventType(e.Type),
		PrizeMoney:      e.PrizeMoney,
		MaxParticipants: e.MaxParticipants,
		DayID:           e.DayID,
		VenueID:         e.VenueID,
		PerformerID:     e.PerformerID,
	}
}

func registrationToDAO(r domain.Registration) dao.Registration {
	return dao.Registration{
		EventID:       r.EventID,
		ParticipantID: r.ParticipantID,
		RegisteredAt:  r.RegisteredAt,
	}
}

func registrationToDomain(r dao.Registration) domain.Registration {
	return domain.Registration{
		ID:            r.ID,
		EventID:       r.EventID,
		ParticipantID: r.ParticipantID,
		RegisteredAt:  r.RegisteredAt,
	}
}

func registrationsToDomain(rows []dao.Registration) []domain.Registration {
	out := make([]domain.Registration, 0, len(rows))
	for _, r := range rows {
		out = append(out, registrationToDomain(r))
	}

	return out
}

func managementToDomain(m dao.Management) domain.Management {
	return domain.Management{ID: m.ID, EventID: m.EventID, TeamID: m.TeamID}
}

func managementsToDomain(rows []dao.Management) []domain.Management {
	out := make([]domain.Management, 0, len(rows))
	for _, m := range rows {
		out = append(out, managementToDomain(m))
	}

	return out
}

func sponsorshipToDomain(s dao.Sponsorship) domain.Sponsorship {
	return domain.Sponsorship{
		ID:                 s.ID,
		EventID:            s.EventID,
		SponsorID:          s.SponsorID,
		ContributionAmount: s.ContributionAmount,
	}
}

func sponsorshipsToDomain(rows []dao.Sponsorship) []domain.Sponsorship {
	out := make([]domain.Sponsorship, 0, len(rows))
	for _, s := range rows {
		out = append(out, sponsorshipToDomain(s))
	}

	return out
}

func ticketToDAO(t domain.Ticket) dao.Ticket {
	return dao.Ticket{
		ID:            t.ID,
		EventID:       t.EventID,
		ParticipantID: t.ParticipantID,
		Quantity:      t.Quantity,
		PurchasedAt:   t.PurchasedAt,
	}
}

func ticketToDomain(t dao.Ticket) domain.Ticket {
	return domain.Ticket{
		ID:            t.ID,
		EventID:       t.EventID,
		ParticipantID: t.ParticipantID,
		Quantity:      t.Quantity,
		PurchasedAt:   t.PurchasedAt,
	}
}

func ticketsToDomain(rows []dao.Ticket) []domain.Ticket {
	out := make([]domain.Ticket, 0, len(rows))
	for _, t := range rows {
		out = append(out, ticketToDomain(t))
	}

	return out
}
