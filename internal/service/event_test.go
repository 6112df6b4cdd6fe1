package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusfest/fest-api/internal/domain"
	"github.com/campusfest/fest-api/internal/repository"
)

// stubEventRepo implements EventRepository with overridable hooks for the
// methods a test cares about.
type stubEventRepo struct {
	createRegistrationWithTicketFn func(ctx context.Context, reg domain.Registration, ticket domain.Ticket) (domain.Registration, domain.Ticket, error)
	createRegistrationFn           func(ctx context.Context, reg domain.Registration) (domain.Registration, error)
	createTicketFn                 func(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error)
	statsFn                        func(ctx context.Context) (domain.DashboardStats, error)
}

func (s *stubEventRepo) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	return event, nil
}

func (s *stubEventRepo) FindAll(ctx context.Context) ([]domain.Event, error) {
	return nil, nil
}

func (s *stubEventRepo) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	return domain.Event{}, nil
}

func (s *stubEventRepo) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	return event, nil
}

func (s *stubEventRepo) Delete(ctx context.Context, id uint) error {
	return nil
}

func (s *stubEventRepo) CreateRegistration(ctx context.Context, reg domain.Registration) (domain.Registration, error) {
	return s.createRegistrationFn(ctx, reg)
}

func (s *stubEventRepo) CreateRegistrationWithTicket(ctx context.Context, reg domain.Registration, ticket domain.Ticket) (domain.Registration, domain.Ticket, error) {
	return s.createRegistrationWithTicketFn(ctx, reg, ticket)
}

func (s *stubEventRepo) FindRegistrationsByEvent(ctx context.Context, eventID uint) ([]domain.Registration, error) {
	return nil, nil
}

func (s *stubEventRepo) FindRegistrationsByParticipant(ctx context.Context, participantID uint) ([]domain.Registration, error) {
	return nil, nil
}

func (s *stubEventRepo) DeleteRegistration(ctx context.Context, id uint) error {
	return nil
}

func (s *stubEventRepo) CreateManagement(ctx context.Context, mgmt domain.Management) (domain.Management, error) {
	return mgmt, nil
}

func (s *stubEventRepo) FindManagementByEvent(ctx context.Context, eventID uint) ([]domain.Management, error) {
	return nil, nil
}

func (s *stubEventRepo) FindManagementByTeam(ctx context.Context, teamID uint) ([]domain.Management, error) {
	return nil, nil
}

func (s *stubEventRepo) DeleteManagement(ctx context.Context, id uint) error {
	return nil
}

func (s *stubEventRepo) CreateSponsorship(ctx context.Context, sp domain.Sponsorship) (domain.Sponsorship, error) {
	return sp, nil
}

func (s *stubEventRepo) FindSponsorshipsByEvent(ctx context.Context, eventID uint) ([]domain.Sponsorship, error) {
	return nil, nil
}

func (s *stubEventRepo) FindSponsorshipsBySponsor(ctx context.Context, sponsorID uint) ([]domain.Sponsorship, error) {
	return nil, nil
}

func (s *stubEventRepo) UpdateSponsorship(ctx context.Context, id uint, amount float64) (domain.Sponsorship, error) {
	return domain.Sponsorship{ID: id, ContributionAmount: amount}, nil
}

func (s *stubEventRepo) DeleteSponsorship(ctx context.Context, id uint) error {
	return nil
}

func (s *stubEventRepo) CreateTicket(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	return s.createTicketFn(ctx, ticket)
}

func (s *stubEventRepo) FindTicketsByEvent(ctx context.Context, eventID uint) ([]domain.Ticket, error) {
	return nil, nil
}

func (s *stubEventRepo) FindTicketsByParticipant(ctx context.Context, participantID uint) ([]domain.Ticket, error) {
	return nil, nil
}

func (s *stubEventRepo) UpdateTicketQuantity(ctx context.Context, id uint, quantity int) (domain.Ticket, error) {
	return domain.Ticket{ID: id, Quantity: quantity}, nil
}

func (s *stubEventRepo) DeleteTicket(ctx context.Context, id uint) error {
	return nil
}

func (s *stubEventRepo) Stats(ctx context.Context) (domain.DashboardStats, error) {
	return s.statsFn(ctx)
}

func TestSignupForEvent(t *testing.T) {
	t.Run("builds the registration and a single ticket", func(t *testing.T) {
		var gotReg domain.Registration
		var gotTicket domain.Ticket
		repo := &stubEventRepo{
			createRegistrationWithTicketFn: func(ctx context.Context, reg domain.Registration, ticket domain.Ticket) (domain.Registration, domain.Ticket, error) {
				gotReg = reg
				gotTicket = ticket
				reg.ID = 11
				ticket.ID = 22
				ticket.EventID = reg.EventID
				ticket.ParticipantID = reg.ParticipantID

				return reg, ticket, nil
			},
		}
		svc := NewEventService(repo)

		signup, err := svc.SignupForEvent(context.Background(), 5, 9)
		require.NoError(t, err)

		assert.Equal(t, uint(5), gotReg.EventID)
		assert.Equal(t, uint(9), gotReg.ParticipantID)
		assert.WithinDuration(t, time.Now(), gotReg.RegisteredAt, time.Minute)
		assert.Equal(t, 1, gotTicket.Quantity)
		assert.Equal(t, gotReg.RegisteredAt, gotTicket.PurchasedAt)

		assert.Equal(t, uint(11), signup.Registration.ID)
		assert.Equal(t, uint(22), signup.Ticket.ID)
		assert.Equal(t, uint(5), signup.Ticket.EventID)
		assert.Equal(t, uint(9), signup.Ticket.ParticipantID)
	})

	t.Run("duplicate registration surfaces as a conflict", func(t *testing.T) {
		repo := &stubEventRepo{
			createRegistrationWithTicketFn: func(ctx context.Context, reg domain.Registration, ticket domain.Ticket) (domain.Registration, domain.Ticket, error) {
				return domain.Registration{}, domain.Ticket{}, repository.ErrDuplicateRegistration
			},
		}
		svc := NewEventService(repo)

		_, err := svc.SignupForEvent(context.Background(), 5, 9)
		assert.ErrorIs(t, err, ErrDuplicateSignup)
	})

	t.Run("unknown event surfaces the referential error", func(t *testing.T) {
		repo := &stubEventRepo{
			createRegistrationWithTicketFn: func(ctx context.Context, reg domain.Registration, ticket domain.Ticket) (domain.Registration, domain.Ticket, error) {
				return domain.Registration{}, domain.Ticket{}, repository.ErrInvalidReference
			},
		}
		svc := NewEventService(repo)

		_, err := svc.SignupForEvent(context.Background(), 404, 9)
		assert.ErrorIs(t, err, ErrInvalidReference)
	})
}

func TestCreateRegistration_DefaultsDate(t *testing.T) {
	var got domain.Registration
	repo := &stubEventRepo{
		createRegistrationFn: func(ctx context.Context, reg domain.Registration) (domain.Registration, error) {
			got = reg

			return reg, nil
		},
	}
	svc := NewEventService(repo)

	_, err := svc.CreateRegistration(context.Background(), domain.Registration{EventID: 1, ParticipantID: 2})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), got.RegisteredAt, time.Minute)
}

func TestCreateTicket_Defaults(t *testing.T) {
	var got domain.Ticket
	repo := &stubEventRepo{
		createTicketFn: func(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
			got = ticket

			return ticket, nil
		},
	}
	svc := NewEventService(repo)

	_, err := svc.CreateTicket(context.Background(), domain.Ticket{EventID: 1, ParticipantID: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, got.Quantity)
	assert.WithinDuration(t, time.Now(), got.PurchasedAt, time.Minute)
}

func TestGetDashboardStats(t *testing.T) {
	repo := &stubEventRepo{
		statsFn: func(ctx context.Context) (domain.DashboardStats, error) {
			return domain.DashboardStats{
				TotalEvents:       4,
				TotalParticipants: 120,
				TotalSponsors:     3,
				TotalBudget:       5600.50,
				TotalRevenue:      910,
			}, nil
		},
	}
	svc := NewEventService(repo)

	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalEvents)
	assert.Equal(t, int64(120), stats.TotalParticipants)
	assert.Equal(t, 5600.50, stats.TotalBudget)
}
