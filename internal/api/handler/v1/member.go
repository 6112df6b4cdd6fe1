package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusfest/fest-api/internal/api/handler/v1/request"
	"github.com/campusfest/fest-api/internal/api/handler/v1/response"
	"github.com/campusfest/fest-api/internal/domain"
	"github.com/campusfest/fest-api/internal/service"
)

type MemberService interface {
	GetMembers(ctx context.Context) ([]domain.Member, error)
	GetMember(ctx context.Context, studentID string) (domain.Member, error)
	UpdateMember(ctx context.Context, member domain.Member) (domain.Member, error)
	DeleteMember(ctx context.Context, studentID string) error
}

type MemberHandler struct {
	svc MemberService
}

func NewMemberHandler(svc MemberService) *MemberHandler {
	return &MemberHandler{
		svc: svc,
	}
}

// HandleGetMembers godoc
// @Summary      List all committee members
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  []domain.Member
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /members [get]
func (h *MemberHandler) HandleGetMembers(ctx *gin.Context) {
	members, err := h.svc.GetMembers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMembers -> h.svc.GetMembers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, members)
}

// HandleGetMember godoc
// @Summary      Get a committee member
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        studentID   path      string true "student ID"
// @Success      200  {object}  domain.Member
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /members/{studentID} [get]
func (h *MemberHandler) HandleGetMember(ctx *gin.Context) {
	studentID := ctx.Param("studentID")

	member, err := h.svc.GetMember(ctx.Request.Context(), studentID)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("member", "studentID", studentID))

			return
		}

		err = fmt.Errorf("v1.HandleGetMember -> h.svc.GetMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, member)
}

// HandleUpdateMember godoc
// @Summary      Update a committee member
// @Description  Replaces name, role and team assignment. Passwords are not
// @Description  touched by this endpoint.
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        studentID   path      string true "student ID"
// @Param        request     body      request.UpdateMemberRequest true "request body"
// @Success      200  {object}  domain.Member
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /members/{studentID} [put]
func (h *MemberHandler) HandleUpdateMember(ctx *gin.Context) {
	studentID := ctx.Param("studentID")

	req := request.UpdateMemberRequest{}
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

	member, err := h.svc.UpdateMember(ctx.Request.Context(), domain.Member{
		StudentID: studentID,
		Name:      req.Name,
		Role:      role,
		TeamID:    req.TeamID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMemberNotFound):
			response.RenderErr(ctx, response.ErrNotFound("member", "studentID", studentID))

			return
		case errors.Is(err, service.ErrTeamRequired),
			errors.Is(err, service.ErrTeamHeadExists),
			errors.Is(err, service.ErrTeamCoHeadExists),
			errors.Is(err, service.ErrInvalidReference):
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateMember -> h.svc.UpdateMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, member)
}

// HandleDeleteMember godoc
// @Summary      Delete a committee member
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        studentID   path      string true "student ID"
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /members/{studentID} [delete]
func (h *MemberHandler) HandleDeleteMember(ctx *gin.Context) {
	studentID := ctx.Param("studentID")

	if err := h.svc.DeleteMember(ctx.Request.Context(), studentID); err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("member", "studentID", studentID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteMember -> h.svc.DeleteMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
