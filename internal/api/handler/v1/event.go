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

type EventService interface {
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	GetEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id uint) (domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	DeleteEvent(ctx context.Context, id uint) error

	SignupForEvent(ctx context.Context, eventID, participantID uint) (domain.EventSignup, error)

	CreateRegistration(ctx context.Context, reg domain.Registration) (domain.Registration, error)
	GetRegistrationsByEvent(ctx context.Context, eventID uint) ([]domain.Registration, error)
	GetRegistrationsByParticipant(ctx context.Context, participantID uint) ([]domain.Registration, error)
	DeleteRegistration(ctx context.Context, id uint) error

	CreateManagement(ctx context.Context, mgmt domain.Management) (domain.Management, error)
	GetManagementByEvent(ctx context.Context, eventID uint) ([]domain.Management, error)
	GetManagementByTeam(ctx context.Context, teamID uint) ([]domain.Management, error)
	DeleteManagement(ctx context.Context, id uint) error

	CreateSponsorship(ctx context.Context, sp domain.Sponsorship) (domain.Sponsorship, error)
	GetSponsorshipsByEvent(ctx context.Context, eventID uint) ([]domain.Sponsorship, error)
	GetSponsorshipsBySponsor(ctx context.Context, sponsorID uint) ([]domain.Sponsorship, error)
	UpdateSponsorship(ctx context.Context, id uint, amount float64) (domain.Sponsorship, error)
	DeleteSponsorship(ctx context.Context, id uint) error

	CreateTicket(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error)
	GetTicketsByEvent(ctx context.Context, eventID uint) ([]domain.Ticket, error)
	GetTicketsByParticipant(ctx context.Context, participantID uint) ([]domain.Ticket, error)
	UpdateTicketQuantity(ctx context.Context, id uint, quantity int) (domain.Ticket, error)
	DeleteTicket(ctx context.Context, id uint) error

	GetDashboardStats(ctx context.Context) (domain.DashboardStats, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        request   body      request.CreateEventRequest true "request body"
// @Success      201  {object}  domain.Event
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events [post]
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	req := request.CreateEventRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	eventType, ok := domain.ParseEventType(req.Type)
	if !ok {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid event type")))

		return
	}

	event, err := h.svc.CreateEvent(ctx.Request.Context(), domain.Event{
		Name:            req.Name,
		Type:            eventType,
		PrizeMoney:      req.PrizeMoney,
		MaxParticipants: req.MaxParticipants,
		DayID:           req.DayID,
		VenueID:         req.VenueID,
		PerformerID:     req.PerformerID,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidReference) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// HandleGetEvents godoc
// @Summary      List all events
// @Tags         events
// @Produce      json
// @Success      200  {object}  []domain.Event
// @Failure      500  {object}  response.Err
// @Router       /events [get]
func (h *EventHandler) HandleGetEvents(ctx *gin.Context) {
	events, err := h.svc.GetEvents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetEvents -> h.svc.GetEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetEvent godoc
// @Summary      Get an event
// @Tags         events
// @Produce      json
// @Param        eventID   path      int true "event ID"
// @Success      200  {object}  domain.Event
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID} [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event, err := h.svc.GetEvent(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetEvent -> h.svc.GetEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleUpdateEvent godoc
// @Summary      Update an event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        eventID   path      int true "event ID"
// @Param        request   body      request.CreateEventRequest true "request body"
// @Success      200  {object}  domain.Event
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID} [put]
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.CreateEventRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	eventType, ok := domain.ParseEventType(req.Type)
	if !ok {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid event type")))

		return
	}

	event, err := h.svc.UpdateEvent(ctx.Request.Context(), domain.Event{
		ID:              id,
		Name:            req.Name,
		Type:            eventType,
		PrizeMoney:      req.PrizeMoney,
		MaxParticipants: req.MaxParticipants,
		DayID:           req.DayID,
		VenueID:         req.VenueID,
		PerformerID:     req.PerformerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", id))

			return
		case errors.Is(err, service.ErrInvalidReference):
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateEvent -> h.svc.UpdateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleDeleteEvent godoc
// @Summary      Delete an event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        eventID   path      int true "event ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID} [delete]
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteEvent(ctx.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", id))

			return
		case errors.Is(err, service.ErrRowReferenced):
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteEvent -> h.svc.DeleteEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleEventSignup godoc
// @Summary      Register the logged-in participant for an event
// @Description  Creates the registration and the entry ticket atomically.
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        eventID   path      int true "event ID"
// @Success      201  {object}  domain.EventSignup
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID}/register [post]
func (h *EventHandler) HandleEventSignup(ctx *gin.Context) {
	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	participantID, ok := sessionParticipantID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized("participant session required"))

		return
	}

	signup, err := h.svc.SignupForEvent(ctx.Request.Context(), eventID, participantID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateSignup):
			response.RenderErr(ctx, response.ErrBadRequest(errors.New("already registered for this event")))

			return
		case errors.Is(err, service.ErrInvalidReference):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))

			return
		}

		err = fmt.Errorf("v1.HandleEventSignup -> h.svc.SignupForEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, signup)
}

// HandleCreateRegistration godoc
// @Summary      Register a participant for an event on their behalf
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Param        request   body      request.CreateRegistrationRequest true "request body"
// @Success      201  {object}  domain.Registration
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /registrations [post]
func (h *EventHandler) HandleCreateRegistration(ctx *gin.Context) {
	req := request.CreateRegistrationRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	reg, err := h.svc.CreateRegistration(ctx.Request.Context(), domain.Registration{
		EventID:       req.EventID,
		ParticipantID: req.ParticipantID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateSignup), errors.Is(err, service.ErrInvalidReference):
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateRegistration -> h.svc.CreateRegistration -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, reg)
}

// HandleGetRegistrationsByEvent godoc
// @Summary      List registrations for an event
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Param        eventID   path      int true "event ID"
// @Success      200  {object}  []domain.Registration
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /registrations/event/{eventID} [get]
func (h *EventHandler) HandleGetRegistrationsByEvent(ctx *gin.Context) {
	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	// Participants may only read their own registrations, not per-event lists.
	if _, isParticipant := sessionParticipantID(ctx); isParticipant {
		response.RenderErr(ctx, response.ErrPermissionDenied(errors.New("participants may only list their own registrations")))

		return
	}

	regs, err := h.svc.GetRegistrationsByEvent(ctx.Request.Context(), eventID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetRegistrationsByEvent -> h.svc.GetRegistrationsByEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, regs)
}

// HandleGetRegistrationsByParticipant godoc
// @Summary      List registrations of a participant
// @Description  Staff may read any participant's registrations; a participant
// @Description  may only read their own.
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Param        participantID   path      int true "participant ID"
// @Success      200  {object}  []domain.Registration
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /registrations/participant/{participantID} [get]
func (h *EventHandler) HandleGetRegistrationsByParticipant(ctx *gin.Context) {
	participantID, err := parseUintParam(ctx, "participantID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if sessionID, isParticipant := sessionParticipantID(ctx); isParticipant && sessionID != participantID {
		response.RenderErr(ctx, response.ErrPermissionDenied(errors.New("participants may only list their own registrations")))

		return
	}

	regs, err := h.svc.GetRegistrationsByParticipant(ctx.Request.Context(), participantID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetRegistrationsByParticipant -> h.svc.GetRegistrationsByParticipant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, regs)
}

// HandleDeleteRegistration godoc
// @Summary      Delete a registration
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Param        registrationID   path      int true "registration ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /registrations/{registrationID} [delete]
func (h *EventHandler) HandleDeleteRegistration(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "registrationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteRegistration(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrRegistrationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("registration", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteRegistration -> h.svc.DeleteRegistration -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCreateManagement godoc
// @Summary      Assign a team to manage an event
// @Tags         management
// @Produce      json
// @Security     BearerAuth
// @Param        request   body      request.CreateManagementRequest true "request body"
// @Success      201  {object}  domain.Management
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /management [post]
func (h *EventHandler) HandleCreateManagement(ctx *gin.Context) {
	req := request.CreateManagementRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	mgmt, err := h.svc.CreateManagement(ctx.Request.Context(), domain.Management{
		EventID: req.EventID,
		TeamID:  req.TeamID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateManagement), errors.Is(err, service.ErrInvalidReference):
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateManagement -> h.svc.CreateManagement -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, mgmt)
}

// HandleGetManagementByEvent godoc
// @Summary      List managing teams of an event
// @Tags         management
// @Produce      json
// @Security     BearerAuth
// @Param        eventID   path      int true "event ID"
// @Success      200  {object}  []domain.Management
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /management/event/{eventID} [get]
func (h *EventHandler) HandleGetManagementByEvent(ctx *gin.Context) {
	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	mgmt, err := h.svc.GetManagementByEvent(ctx.Request.Context(), eventID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetManagementByEvent -> h.svc.GetManagementByEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, mgmt)
}

// HandleGetManagementByTeam godoc
// @Summary      List events managed by a team
// @Tags         management
// @Produce      json
// @Security     BearerAuth
// @Param        teamID   path      int true "team ID"
// @Success      200  {object}  []domain.Management
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /management/team/{teamID} [get]
func (h *EventHandler) HandleGetManagementByTeam(ctx *gin.Context) {
	teamID, err := parseUintParam(ctx, "teamID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	mgmt, err := h.svc.GetManagementByTeam(ctx.Request.Context(), teamID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetManagementByTeam -> h.svc.GetManagementByTeam -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, mgmt)
}

// HandleDeleteManagement godoc
// @Summary      Remove a team from managing an event
// @Tags         management
// @Produce      json
// @Security     BearerAuth
// @Param        managementID   path      int true "management ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /management/{managementID} [delete]
func (h *EventHandler) HandleDeleteManagement(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "managementID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteManagement(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrManagementNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("management", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteManagement -> h.svc.DeleteManagement -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCreateSponsorship godoc
// @Summary      Link a sponsor to an event
// @Tags         sponsorships
// @Produce      json
// @Security     BearerAuth
// @Param        request   body      request.CreateSponsorshipRequest true "request body"
// @Success      201  {object}  domain.Sponsorship
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sponsorships [post]
func (h *EventHandler) HandleCreateSponsorship(ctx *gin.Context) {
	req := request.CreateSponsorshipRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	sp, err := h.svc.CreateSponsorship(ctx.Request.Context(), domain.Sponsorship{
		EventID:            req.EventID,
		SponsorID:          req.SponsorID,
		ContributionAmount: req.ContributionAmount,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateSponsorship), errors.Is(err, service.ErrInvalidReference):
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateSponsorship -> h.svc.CreateSponsorship -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, sp)
}

// HandleGetSponsorshipsByEvent godoc
// @Summary      List sponsorships of an event
// @Tags         sponsorships
// @Produce      json
// @Security     BearerAuth
// @Param        eventID   path      int true "event ID"
// @Success      200  {object}  []domain.Sponsorship
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sponsorships/event/{eventID} [get]
func (h *EventHandler) HandleGetSponsorshipsByEvent(ctx *gin.Context) {
	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	sps, err := h.svc.GetSponsorshipsByEvent(ctx.Request.Context(), eventID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetSponsorshipsByEvent -> h.svc.GetSponsorshipsByEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, sps)
}

// HandleGetSponsorshipsBySponsor godoc
// @Summary      List sponsorships of a sponsor
// @Tags         sponsorships
// @Produce      json
// @Security     BearerAuth
// @Param        sponsorID   path      int true "sponsor ID"
// @Success      200  {object}  []domain.Sponsorship
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sponsorships/sponsor/{sponsorID} [get]
func (h *EventHandler) HandleGetSponsorshipsBySponsor(ctx *gin.Context) {
	sponsorID, err := parseUintParam(ctx, "sponsorID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	sps, err := h.svc.GetSponsorshipsBySponsor(ctx.Request.Context(), sponsorID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetSponsorshipsBySponsor -> h.svc.GetSponsorshipsBySponsor -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, sps)
}

// HandleUpdateSponsorship godoc
// @Summary      Update a sponsorship's contribution amount
// @Tags         sponsorships
// @Produce      json
// @Security     BearerAuth
// @Param        sponsorshipID   path      int true "sponsorship ID"
// @Param        request         body      request.UpdateSponsorshipRequest true "request body"
// @Success      200  {object}  domain.Sponsorship
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sponsorships/{sponsorshipID} [put]
func (h *EventHandler) HandleUpdateSponsorship(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "sponsorshipID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.UpdateSponsorshipRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	sp, err := h.svc.UpdateSponsorship(ctx.Request.Context(), id, req.ContributionAmount)
	if err != nil {
		if errors.Is(err, service.ErrSponsorshipNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("sponsorship", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateSponsorship -> h.svc.UpdateSponsorship -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, sp)
}

// HandleDeleteSponsorship godoc
// @Summary      Delete a sponsorship
// @Tags         sponsorships
// @Produce      json
// @Security     BearerAuth
// @Param        sponsorshipID   path      int true "sponsorship ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sponsorships/{sponsorshipID} [delete]
func (h *EventHandler) HandleDeleteSponsorship(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "sponsorshipID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteSponsorship(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrSponsorshipNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("sponsorship", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteSponsorship -> h.svc.DeleteSponsorship -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCreateTicket godoc
// @Summary      Record a ticket purchase
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Param        request   body      request.CreateTicketRequest true "request body"
// @Success      201  {object}  domain.Ticket
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets [post]
func (h *EventHandler) HandleCreateTicket(ctx *gin.Context) {
	req := request.CreateTicketRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	ticket, err := h.svc.CreateTicket(ctx.Request.Context(), domain.Ticket{
		EventID:       req.EventID,
		ParticipantID: req.ParticipantID,
		Quantity:      req.Quantity,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidReference) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateTicket -> h.svc.CreateTicket -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, ticket)
}

// HandleGetTicketsByEvent godoc
// @Summary      List tickets sold for an event
// @Tags         tickets
// @Produce      json
// @Param        eventID   path      int true "event ID"
// @Success      200  {object}  []domain.Ticket
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/event/{eventID} [get]
func (h *EventHandler) HandleGetTicketsByEvent(ctx *gin.Context) {
	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	tickets, err := h.svc.GetTicketsByEvent(ctx.Request.Context(), eventID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetTicketsByEvent -> h.svc.GetTicketsByEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, tickets)
}

// HandleGetTicketsByParticipant godoc
// @Summary      List tickets bought by a participant
// @Tags         tickets
// @Produce      json
// @Param        participantID   path      int true "participant ID"
// @Success      200  {object}  []domain.Ticket
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/participant/{participantID} [get]
func (h *EventHandler) HandleGetTicketsByParticipant(ctx *gin.Context) {
	participantID, err := parseUintParam(ctx, "participantID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	tickets, err := h.svc.GetTicketsByParticipant(ctx.Request.Context(), participantID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetTicketsByParticipant -> h.svc.GetTicketsByParticipant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, tickets)
}

// HandleUpdateTicket godoc
// @Summary      Update a ticket's quantity
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Param        ticketID   path      int true "ticket ID"
// @Param        request    body      request.UpdateTicketRequest true "request body"
// @Success      200  {object}  domain.Ticket
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/{ticketID} [put]
func (h *EventHandler) HandleUpdateTicket(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "ticketID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.UpdateTicketRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	ticket, err := h.svc.UpdateTicketQuantity(ctx.Request.Context(), id, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("ticket", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateTicket -> h.svc.UpdateTicketQuantity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, ticket)
}

// HandleDeleteTicket godoc
// @Summary      Delete a ticket
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Param        ticketID   path      int true "ticket ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/{ticketID} [delete]
func (h *EventHandler) HandleDeleteTicket(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "ticketID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteTicket(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("ticket", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteTicket -> h.svc.DeleteTicket -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetDashboardStats godoc
// @Summary      Festival-wide dashboard counters
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.DashboardStats
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /dashboard/stats [get]
func (h *EventHandler) HandleGetDashboardStats(ctx *gin.Context) {
	stats, err := h.svc.GetDashboardStats(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetDashboardStats -> h.svc.GetDashboardStats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stats)
}
