package service

import (
	"context"
	"fmt"
	"time"

	"github.com/campusfest/fest-api/internal/domain"
	"github.com/campusfest/fest-api/internal/repository"
)

var (
	ErrEventNotFound        = repository.ErrEventNotFound
	ErrRegistrationNotFound = repository.ErrRegistrationNotFound
	ErrManagementNotFound   = repository.ErrManagementNotFound
	ErrSponsorshipNotFound  = repository.ErrSponsorshipNotFound
	ErrTicketNotFound       = repository.ErrTicketNotFound
	ErrDuplicateSignup      = repository.ErrDuplicateRegistration
	ErrDuplicateManagement  = repository.ErrDuplicateManagement
	ErrDuplicateSponsorship = repository.ErrDuplicateSponsorship
)

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindAll(ctx context.Context) ([]domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	Update(ctx context.Context, event domain.Event) (domain.Event, error)
	Delete(ctx context.Context, id uint) error

	CreateRegistration(ctx context.Context, reg domain.Registration) (domain.Registration, error)
	CreateRegistrationWithTicket(ctx context.Context, reg domain.Registration, ticket domain.Ticket) (domain.Registration, domain.Ticket, error)
	FindRegistrationsByEvent(ctx context.Context, eventID uint) ([]domain.Registration, error)
	FindRegistrationsByParticipant(ctx context.Context, participantID uint) ([]domain.Registration, error)
	DeleteRegistration(ctx context.Context, id uint) error

	CreateManagement(ctx context.Context, mgmt domain.Management) (domain.Management, error)
	FindManagementByEvent(ctx context.Context, eventID uint) ([]domain.Management, error)
	FindManagementByTeam(ctx context.Context, teamID uint) ([]domain.Management, error)
	DeleteManagement(ctx context.Context, id uint) error

	CreateSponsorship(ctx context.Context, sp domain.Sponsorship) (domain.Sponsorship, error)
	FindSponsorshipsByEvent(ctx context.Context, eventID uint) ([]domain.Sponsorship, error)
	FindSponsorshipsBySponsor(ctx context.Context, sponsorID uint) ([]domain.Sponsorship, error)
	UpdateSponsorship(ctx context.Context, id uint, amount float64) (domain.Sponsorship, error)
	DeleteSponsorship(ctx context.Context, id uint) error

	CreateTicket(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error)
	FindTicketsByEvent(ctx context.Context, eventID uint) ([]domain.Ticket, error)
	FindTicketsByParticipant(ctx context.Context, participantID uint) ([]domain.Ticket, error)
	UpdateTicketQuantity(ctx context.Context, id uint, quantity int) (domain.Ticket, error)
	DeleteTicket(ctx context.Context, id uint) error

	Stats(ctx context.Context) (domain.DashboardStats, error)
}

type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{
		repo: repo,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EventService) GetEvents(ctx context.Context) ([]domain.Event, error) {
	return s.repo.FindAll(ctx)
}

func (s *EventService) GetEvent(ctx context.Context, id uint) (domain.Event, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EventService) UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	return s.repo.Update(ctx, event)
}

func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// SignupForEvent registers a participant for an event and issues their entry
// ticket in the same transaction. A duplicate registration leaves no ticket
// behind.
func (s *EventService) SignupForEvent(ctx context.Context, eventID, participantID uint) (domain.EventSignup, error) {
	now := time.Now()

	reg := domain.Registration{
		EventID:       eventID,
		ParticipantID: participantID,
		RegisteredAt:  now,
	}
	ticket := domain.Ticket{
		Quantity:    1,
		PurchasedAt: now,
	}

	createdReg, createdTicket, err := s.repo.CreateRegistrationWithTicket(ctx, reg, ticket)
	if err != nil {
		return domain.EventSignup{}, fmt.Errorf("s.repo.CreateRegistrationWithTicket -> %w", err)
	}

	return domain.EventSignup{
		Registration: createdReg,
		Ticket:       createdTicket,
	}, nil
}

func (s *EventService) CreateRegistration(ctx context.Context, reg domain.Registration) (domain.Registration, error) {
	if reg.RegisteredAt.IsZero() {
		reg.RegisteredAt = time.Now()
	}

	created, err := s.repo.CreateRegistration(ctx, reg)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.repo.CreateRegistration -> %w", err)
	}

	return created, nil
}

func (s *EventService) GetRegistrationsByEvent(ctx context.Context, eventID uint) ([]domain.Registration, error) {
	return s.repo.FindRegistrationsByEvent(ctx, eventID)
}

func (s *EventService) GetRegistrationsByParticipant(ctx context.Context, participantID uint) ([]domain.Registration, error) {
	return s.repo.FindRegistrationsByParticipant(ctx, participantID)
}

func (s *EventService) DeleteRegistration(ctx context.Context, id uint) error {
	return s.repo.DeleteRegistration(ctx, id)
}

func (s *EventService) CreateManagement(ctx context.Context, mgmt domain.Management) (domain.Management, error) {
	created, err := s.repo.CreateManagement(ctx, mgmt)
	if err != nil {
		return domain.Management{}, fmt.Errorf("s.repo.CreateManagement -> %w", err)
	}

	return created, nil
}

func (s *EventService) GetManagementByEvent(ctx context.Context, eventID uint) ([]domain.Management, error) {
	return s.repo.FindManagementByEvent(ctx, eventID)
}

func (s *EventService) GetManagementByTeam(ctx context.Context, teamID uint) ([]domain.Management, error) {
	return s.repo.FindManagementByTeam(ctx, teamID)
}

func (s *EventService) DeleteManagement(ctx context.Context, id uint) error {
	return s.repo.DeleteManagement(ctx, id)
}

func (s *EventService) CreateSponsorship(ctx context.Context, sp domain.Sponsorship) (domain.Sponsorship, error) {
	created, err := s.repo.CreateSponsorship(ctx, sp)
	if err != nil {
		return domain.Sponsorship{}, fmt.Errorf("s.repo.CreateSponsorship -> %w", err)
	}

	return created, nil
}

func (s *EventService) GetSponsorshipsByEvent(ctx context.Context, eventID uint) ([]domain.Sponsorship, error) {
	return s.repo.FindSponsorshipsByEvent(ctx, eventID)
}

func (s *EventService) GetSponsorshipsBySponsor(ctx context.Context, sponsorID uint) ([]domain.Sponsorship, error) {
	return s.repo.FindSponsorshipsBySponsor(ctx, sponsorID)
}

func (s *EventService) UpdateSponsorship(ctx context.Context, id uint, amount float64) (domain.Sponsorship, error) {
	return s.repo.UpdateSponsorship(ctx, id, amount)
}

func (s *EventService) DeleteSponsorship(ctx context.Context, id uint) error {
	return s.repo.DeleteSponsorship(ctx, id)
}

func (s *EventService) CreateTicket(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	if ticket.Quantity <= 0 {
		ticket.Quantity = 1
	}
	if ticket.PurchasedAt.IsZero() {
		ticket.PurchasedAt = time.Now()
	}

	created, err := s.repo.CreateTicket(ctx, ticket)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.repo.CreateTicket -> %w", err)
	}

	return created, nil
}

func (s *EventService) GetTicketsByEvent(ctx context.Context, eventID uint) ([]domain.Ticket, error) {
	return s.repo.FindTicketsByEvent(ctx, eventID)
}

func (s *EventService) GetTicketsByParticipant(ctx context.Context, participantID uint) ([]domain.Ticket, error) {
	return s.repo.FindTicketsByParticipant(ctx, participantID)
}

func (s *EventService) UpdateTicketQuantity(ctx context.Context, id uint, quantity int) (domain.Ticket, error) {
	return s.repo.UpdateTicketQuantity(ctx, id, quantity)
}

func (s *EventService) DeleteTicket(ctx context.Context, id uint) error {
	return s.repo.DeleteTicket(ctx, id)
}

func (s *EventService) GetDashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("s.repo.Stats -> %w", err)
	}

	return stats, nil
}
