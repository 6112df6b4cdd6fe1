package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusfest/fest-api/internal/api/middleware"
	"github.com/campusfest/fest-api/internal/domain"
	"github.com/campusfest/fest-api/internal/pkg/jwthelper"
	"github.com/campusfest/fest-api/internal/service"
)

const testSigningKey = "test-signing-key"

type stubEventService struct {
	signupForEventFn                func(ctx context.Context, eventID, participantID uint) (domain.EventSignup, error)
	getRegistrationsByParticipantFn func(ctx context.Context, participantID uint) ([]domain.Registration, error)
}

func (s *stubEventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	return event, nil
}

func (s *stubEventService) GetEvents(ctx context.Context) ([]domain.Event, error) { return nil, nil }

func (s *stubEventService) GetEvent(ctx context.Context, id uint) (domain.Event, error) {
	return domain.Event{}, nil
}

func (s *stubEventService) UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	return event, nil
}

func (s *stubEventService) DeleteEvent(ctx context.Context, id uint) error { return nil }

func (s *stubEventService) SignupForEvent(ctx context.Context, eventID, participantID uint) (domain.EventSignup, error) {
	return s.signupForEventFn(ctx, eventID, participantID)
}

func (s *stubEventService) CreateRegistration(ctx context.Context, reg domain.Registration) (domain.Registration, error) {
	return reg, nil
}

func (s *stubEventService) GetRegistrationsByEvent(ctx context.Context, eventID uint) ([]domain.Registration, error) {
	return nil, nil
}

func (s *stubEventService) GetRegistrationsByParticipant(ctx context.Context, participantID uint) ([]domain.Registration, error) {
	return s.getRegistrationsByParticipantFn(ctx, participantID)
}

func (s *stubEventService) DeleteRegistration(ctx context.Context, id uint) error { return nil }

func (s *stubEventService) CreateManagement(ctx context.Context, mgmt domain.Management) (domain.Management, error) {
	return mgmt, nil
}

func (s *stubEventService) GetManagementByEvent(ctx context.Context, eventID uint) ([]domain.Management, error) {
	return nil, nil
}

func (s *stubEventService) GetManagementByTeam(ctx context.Context, teamID uint) ([]domain.Management, error) {
	return nil, nil
}

func (s *stubEventService) DeleteManagement(ctx context.Context, id uint) error { return nil }

func (s *stubEventService) CreateSponsorship(ctx context.Context, sp domain.Sponsorship) (domain.Sponsorship, error) {
	return sp, nil
}

func (s *stubEventService) GetSponsorshipsByEvent(ctx context.Context, eventID uint) ([]domain.Sponsorship, error) {
	return nil, nil
}

func (s *stubEventService) GetSponsorshipsBySponsor(ctx context.Context, sponsorID uint) ([]domain.Sponsorship, error) {
	return nil, nil
}

func (s *stubEventService) UpdateSponsorship(ctx context.Context, id uint, amount float64) (domain.Sponsorship, error) {
	return domain.Sponsorship{}, nil
}

func (s *stubEventService) DeleteSponsorship(ctx context.Context, id uint) error { return nil }

func (s *stubEventService) CreateTicket(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	return ticket, nil
}

func (s *stubEventService) GetTicketsByEvent(ctx context.Context, eventID uint) ([]domain.Ticket, error) {
	return nil, nil
}

func (s *stubEventService) GetTicketsByParticipant(ctx context.Context, participantID uint) ([]domain.Ticket, error) {
	return nil, nil
}

func (s *stubEventService) UpdateTicketQuantity(ctx context.Context, id uint, quantity int) (domain.Ticket, error) {
	return domain.Ticket{}, nil
}

func (s *stubEventService) DeleteTicket(ctx context.Context, id uint) error { return nil }

func (s *stubEventService) GetDashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	return domain.DashboardStats{}, nil
}

func newEventTestRouter(svc EventService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewEventHandler(svc)
	auth := middleware.NewAuthenticator(testSigningKey)

	router := gin.New()
	router.POST("/events/:eventID/register", auth.VerifyJWT(), handler.HandleEventSignup)
	router.GET("/registrations/participant/:participantID", auth.VerifyJWT(), handler.HandleGetRegistrationsByParticipant)

	return router
}

func participantBearer(t *testing.T, participantID string) string {
	t.Helper()

	token, err := jwthelper.GenerateToken([]byte(testSigningKey), participantID, domain.RoleParticipant, "test")
	require.NoError(t, err)

	return "Bearer " + token
}

func staffBearer(t *testing.T, studentID string, role domain.Role) string {
	t.Helper()

	token, err := jwthelper.GenerateToken([]byte(testSigningKey), studentID, role, "test")
	require.NoError(t, err)

	return "Bearer " + token
}

func TestHandleEventSignup(t *testing.T) {
	t.Run("participant session drives the signup", func(t *testing.T) {
		svc := &stubEventService{
			signupForEventFn: func(ctx context.Context, eventID, participantID uint) (domain.EventSignup, error) {
				assert.Equal(t, uint(5), eventID)
				assert.Equal(t, uint(9), participantID)

				now := time.Now()

				return domain.EventSignup{
					Registration: domain.Registration{ID: 11, EventID: eventID, ParticipantID: participantID, RegisteredAt: now},
					Ticket:       domain.Ticket{ID: 22, EventID: eventID, ParticipantID: participantID, Quantity: 1, PurchasedAt: now},
				}, nil
			},
		}
		router := newEventTestRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/events/5/register", nil)
		req.Header.Set("Authorization", participantBearer(t, "9"))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var signup domain.EventSignup
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &signup))
		assert.Equal(t, uint(11), signup.Registration.ID)
		assert.Equal(t, uint(22), signup.Ticket.ID)
		assert.Equal(t, 1, signup.Ticket.Quantity)
	})

	t.Run("duplicate signup returns 400", func(t *testing.T) {
		svc := &stubEventService{
			signupForEventFn: func(ctx context.Context, eventID, participantID uint) (domain.EventSignup, error) {
				return domain.EventSignup{}, service.ErrDuplicateSignup
			},
		}
		router := newEventTestRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/events/5/register", nil)
		req.Header.Set("Authorization", participantBearer(t, "9"))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown event returns 404", func(t *testing.T) {
		svc := &stubEventService{
			signupForEventFn: func(ctx context.Context, eventID, participantID uint) (domain.EventSignup, error) {
				return domain.EventSignup{}, service.ErrInvalidReference
			},
		}
		router := newEventTestRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/events/404/register", nil)
		req.Header.Set("Authorization", participantBearer(t, "9"))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("staff session is rejected", func(t *testing.T) {
		router := newEventTestRouter(&stubEventService{})

		req := httptest.NewRequest(http.MethodPost, "/events/5/register", nil)
		req.Header.Set("Authorization", staffBearer(t, "S1", domain.RoleHead))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHandleGetRegistrationsByParticipant(t *testing.T) {
	svc := &stubEventService{
		getRegistrationsByParticipantFn: func(ctx context.Context, participantID uint) ([]domain.Registration, error) {
			return []domain.Registration{{ID: 1, EventID: 5, ParticipantID: participantID}}, nil
		},
	}
	router := newEventTestRouter(svc)

	t.Run("participant reads their own registrations", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/registrations/participant/9", nil)
		req.Header.Set("Authorization", participantBearer(t, "9"))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var regs []domain.Registration
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &regs))
		require.Len(t, regs, 1)
		assert.Equal(t, uint(9), regs[0].ParticipantID)
	})

	t.Run("participant cannot read another participant's registrations", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/registrations/participant/10", nil)
		req.Header.Set("Authorization", participantBearer(t, "9"))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("staff reads any participant's registrations", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/registrations/participant/10", nil)
		req.Header.Set("Authorization", staffBearer(t, "S1", domain.RoleMember))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
