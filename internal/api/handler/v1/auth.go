package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusfest/fest-api/internal/api/handler/v1/request"
	"github.com/campusfest/fest-api/internal/api/handler/v1/response"
	"github.com/campusfest/fest-api/internal/config"
	"github.com/campusfest/fest-api/internal/domain"
	"github.com/campusfest/fest-api/internal/pkg/jwthelper"
	"github.com/campusfest/fest-api/internal/service"
)

type AuthService interface {
	LoginMember(ctx context.Context, studentID, password string) (domain.Member, error)
	LoginParticipant(ctx context.Context, email, password string) (domain.Participant, error)
	SignupParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	RegisterMember(ctx context.Context, member domain.Member) (domain.Member, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleMemberLogin godoc
// @Summary      Login a committee member
// @Tags         auth
// @Produce      json
// @Param        request   body      request.MemberLoginRequest true "request body"
// @Success      200      {object}   response.MemberLoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/members/login [post]
func (h *AuthHandler) HandleMemberLogin(ctx *gin.Context) {
	req := request.MemberLoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	member, err := h.svc.LoginMember(ctx.Request.Context(), req.StudentID, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))

			return
		}

		err = fmt.Errorf("v1.HandleMemberLogin -> h.svc.LoginMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), member.StudentID, member.Role, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleMemberLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewMemberLoginResponse(member, token))
}

// HandleParticipantLogin godoc
// @Summary      Login a participant
// @Tags         auth
// @Produce      json
// @Param        request   body      request.ParticipantLoginRequest true "request body"
// @Success      200      {object}   response.ParticipantAuthResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/participants/login [post]
func (h *AuthHandler) HandleParticipantLogin(ctx *gin.Context) {
	req := request.ParticipantLoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	participant, err := h.svc.LoginParticipant(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))

			return
		}

		err = fmt.Errorf("v1.HandleParticipantLogin -> h.svc.LoginParticipant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := h.participantToken(ctx, participant)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewParticipantAuthResponse(participant, token))
}

// HandleParticipantSignup godoc
// @Summary      Signup a new participant
// @Description  Creates the participant account and logs it in.
// @Tags         auth
// @Produce      json
// @Param        request   body      request.ParticipantSignupRequest true "request body"
// @Success      201      {object}   response.ParticipantAuthResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/participants/signup [post]
func (h *AuthHandler) HandleParticipantSignup(ctx *gin.Context) {
	req := request.ParticipantSignupRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	participant, err := h.svc.SignupParticipant(ctx.Request.Context(), domain.Participant{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		College:  req.College,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrEmailExists))

			return
		}

		err = fmt.Errorf("v1.HandleParticipantSignup -> h.svc.SignupParticipant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := h.participantToken(ctx, participant)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.NewParticipantAuthResponse(participant, token))
}

// HandleRegisterMember godoc
// @Summary      Register a new committee member
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        request   body      request.RegisterMemberRequest true "request body"
// @Success      201      {object}   domain.Member
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /members [post]
func (h *AuthHandler) HandleRegisterMember(ctx *gin.Context) {
	req := request.RegisterMemberRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	role, ok := domain.ParseRole(req.Role)
	if !ok || !role.IsStaff() {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid role")))

		return
	}

	member, err := h.svc.RegisterMember(ctx.Request.Context(), domain.Member{
		StudentID: req.StudentID,
		Name:      req.Name,
		Role:      role,
		TeamID:    req.TeamID,
		Password:  req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMemberExists),
			errors.Is(err, service.ErrTeamRequired),
			errors.Is(err, service.ErrTeamHeadExists),
			errors.Is(err, service.ErrTeamCoHeadExists),
			errors.Is(err, service.ErrInvalidReference):
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleRegisterMember -> h.svc.RegisterMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, member)
}

func (h *AuthHandler) participantToken(ctx *gin.Context, participant domain.Participant) (string, error) {
	subject := fmt.Sprintf("%d", participant.ID)

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), subject, domain.RoleParticipant, ctx.Request.UserAgent())
	if err != nil {
		return "", fmt.Errorf("jwthelper.GenerateToken -> %w", err)
	}

	return token, nil
}
