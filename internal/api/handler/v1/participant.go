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

type ParticipantService interface {
	GetParticipants(ctx context.Context) ([]domain.Participant, error)
	GetParticipant(ctx context.Context, id uint) (domain.Participant, error)
	UpdateParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	DeleteParticipant(ctx context.Context, id uint) error
}

type ParticipantHandler struct {
	svc ParticipantService
}

func NewParticipantHandler(svc ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{
		svc: svc,
	}
}

// HandleGetParticipants godoc
// @Summary      List all participants
// @Tags         participants
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  []domain.Participant
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants [get]
func (h *ParticipantHandler) HandleGetParticipants(ctx *gin.Context) {
	participants, err := h.svc.GetParticipants(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetParticipants -> h.svc.GetParticipants -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, participants)
}

// HandleGetParticipant godoc
// @Summary      Get a participant
// @Tags         participants
// @Produce      json
// @Security     BearerAuth
// @Param        participantID   path      int true "participant ID"
// @Success      200  {object}  domain.Participant
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants/{participantID} [get]
func (h *ParticipantHandler) HandleGetParticipant(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "participantID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	participant, err := h.svc.GetParticipant(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("participant", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetParticipant -> h.svc.GetParticipant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, participant)
}

// HandleUpdateParticipant godoc
// @Summary      Update a participant
// @Tags         participants
// @Produce      json
// @Security     BearerAuth
// @Param        participantID   path      int true "participant ID"
// @Param        request         body      request.UpdateParticipantRequest true "request body"
// @Success      200  {object}  domain.Participant
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants/{participantID} [put]
func (h *ParticipantHandler) HandleUpdateParticipant(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "participantID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.UpdateParticipantRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	participant, err := h.svc.UpdateParticipant(ctx.Request.Context(), domain.Participant{
		ID:      id,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		College: req.College,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrParticipantNotFound):
			response.RenderErr(ctx, response.ErrNotFound("participant", "ID", id))

			return
		case errors.Is(err, service.ErrEmailExists):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrEmailExists))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateParticipant -> h.svc.UpdateParticipant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, participant)
}

// HandleDeleteParticipant godoc
// @Summary      Delete a participant
// @Tags         participants
// @Produce      json
// @Security     BearerAuth
// @Param        participantID   path      int true "participant ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants/{participantID} [delete]
func (h *ParticipantHandler) HandleDeleteParticipant(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "participantID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteParticipant(ctx.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrParticipantNotFound):
			response.RenderErr(ctx, response.ErrNotFound("participant", "ID", id))

			return
		case errors.Is(err, service.ErrRowReferenced):
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteParticipant -> h.svc.DeleteParticipant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
