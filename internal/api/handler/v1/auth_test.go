package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusfest/fest-api/internal/api/handler/v1/response"
	"github.com/campusfest/fest-api/internal/config"
	"github.com/campusfest/fest-api/internal/domain"
	"github.com/campusfest/fest-api/internal/service"
)

type stubAuthService struct {
	loginMemberFn       func(ctx context.Context, studentID, password string) (domain.Member, error)
	loginParticipantFn  func(ctx context.Context, email, password string) (domain.Participant, error)
	signupParticipantFn func(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	registerMemberFn    func(ctx context.Context, member domain.Member) (domain.Member, error)
}

func (s *stubAuthService) LoginMember(ctx context.Context, studentID, password string) (domain.Member, error) {
	return s.loginMemberFn(ctx, studentID, password)
}

func (s *stubAuthService) LoginParticipant(ctx context.Context, email, password string) (domain.Participant, error) {
	return s.loginParticipantFn(ctx, email, password)
}

func (s *stubAuthService) SignupParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	return s.signupParticipantFn(ctx, participant)
}

func (s *stubAuthService) RegisterMember(ctx context.Context, member domain.Member) (domain.Member, error) {
	return s.registerMemberFn(ctx, member)
}

func newAuthTestRouter(svc AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	conf := &config.APIConfig{JWTSigningKey: "test-key"}
	handler := NewAuthHandler(conf, svc)

	router := gin.New()
	router.POST("/auth/members/login", handler.HandleMemberLogin)
	router.POST("/auth/participants/signup", handler.HandleParticipantSignup)
	router.POST("/members", handler.HandleRegisterMember)

	return router
}

func TestHandleMemberLogin(t *testing.T) {
	svc := &stubAuthService{
		loginMemberFn: func(ctx context.Context, studentID, password string) (domain.Member, error) {
			if studentID == "S100" && password == "secret123" {
				return domain.Member{StudentID: "S100", Name: "Alex", Role: domain.RoleHead}, nil
			}

			return domain.Member{}, service.ErrWrongPassword
		},
	}
	router := newAuthTestRouter(svc)

	t.Run("valid credentials return a token", func(t *testing.T) {
		body := `{"Student_ID":"S100","Password":"secret123"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/members/login", strings.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp response.MemberLoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "S100", resp.StudentID)
		assert.Equal(t, domain.RoleHead, resp.Role)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password returns 401", func(t *testing.T) {
		body := `{"Student_ID":"S100","Password":"bad"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/members/login", strings.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/members/login", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleParticipantSignup(t *testing.T) {
	svc := &stubAuthService{
		signupParticipantFn: func(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
			if participant.Email == "taken@example.com" {
				return domain.Participant{}, service.ErrEmailExists
			}
			participant.ID = 7

			return participant, nil
		},
	}
	router := newAuthTestRouter(svc)

	t.Run("creates the account and logs in", func(t *testing.T) {
		body := `{"Name":"Ana","Email":"ana@example.com","Password":"passw0rd1"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/participants/signup", strings.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp response.ParticipantAuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, uint(7), resp.ParticipantID)
		assert.Equal(t, domain.RoleParticipant, resp.Role)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("weak password returns 400", func(t *testing.T) {
		body := `{"Name":"Ana","Email":"ana@example.com","Password":"letters"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/participants/signup", strings.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate email returns 400", func(t *testing.T) {
		body := `{"Name":"Ana","Email":"taken@example.com","Password":"passw0rd1"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/participants/signup", strings.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleRegisterMember(t *testing.T) {
	svc := &stubAuthService{
		registerMemberFn: func(ctx context.Context, member domain.Member) (domain.Member, error) {
			switch member.StudentID {
			case "DUP":
				return domain.Member{}, service.ErrMemberExists
			case "NOTEAM":
				return domain.Member{}, service.ErrTeamRequired
			}
			member.Password = ""

			return member, nil
		},
	}
	router := newAuthTestRouter(svc)

	t.Run("creates a member", func(t *testing.T) {
		body := `{"Student_ID":"S200","Name":"Kim","Role":"Member","Team_ID":2,"Password":"passw0rd1"}`
		req := httptest.NewRequest(http.MethodPost, "/members", strings.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var member domain.Member
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &member))
		assert.Equal(t, "S200", member.StudentID)
		assert.Equal(t, domain.RoleMember, member.Role)
	})

	t.Run("participant is not a committee role", func(t *testing.T) {
		body := `{"Student_ID":"S201","Name":"Kim","Role":"Participant","Password":"passw0rd1"}`
		req := httptest.NewRequest(http.MethodPost, "/members", strings.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate returns 400", func(t *testing.T) {
		body := `{"Student_ID":"DUP","Name":"Kim","Role":"Member","Team_ID":2,"Password":"passw0rd1"}`
		req := httptest.NewRequest(http.MethodPost, "/members", strings.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing team returns 400", func(t *testing.T) {
		body := `{"Student_ID":"NOTEAM","Name":"Kim","Role":"Head","Password":"passw0rd1"}`
		req := httptest.NewRequest(http.MethodPost, "/members", strings.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
