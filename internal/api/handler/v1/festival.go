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

type FestivalService interface {
	CreateTeam(ctx context.Context, team domain.Team) (domain.Team, error)
	GetTeams(ctx context.Context) ([]domain.Team, error)
	GetTeam(ctx context.Context, id uint) (domain.Team, error)
	UpdateTeam(ctx context.Context, team domain.Team) (domain.Team, error)
	DeleteTeam(ctx context.Context, id uint) error

	CreateVenue(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	GetVenues(ctx context.Context) ([]domain.Venue, error)
	GetVenue(ctx context.Context, id uint) (domain.Venue, error)
	UpdateVenue(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	DeleteVenue(ctx context.Context, id uint) error

	CreatePerformer(ctx context.Context, performer domain.Performer) (domain.Performer, error)
	GetPerformers(ctx context.Context) ([]domain.Performer, error)
	GetPerformer(ctx context.Context, id uint) (domain.Performer, error)
	UpdatePerformer(ctx context.Context, performer domain.Performer) (domain.Performer, error)
	DeletePerformer(ctx context.Context, id uint) error

	CreateSponsor(ctx context.Context, sponsor domain.Sponsor) (domain.Sponsor, error)
	GetSponsors(ctx context.Context) ([]domain.Sponsor, error)
	GetSponsor(ctx context.Context, id uint) (domain.Sponsor, error)
	UpdateSponsor(ctx context.Context, sponsor domain.Sponsor) (domain.Sponsor, error)
	DeleteSponsor(ctx context.Context, id uint) error

	CreateDay(ctx context.Context, day domain.DaySchedule) (domain.DaySchedule, error)
	GetDays(ctx context.Context) ([]domain.DaySchedule, error)
	GetDay(ctx context.Context, id uint) (domain.DaySchedule, error)
	UpdateDay(ctx context.Context, day domain.DaySchedule) (domain.DaySchedule, error)
	DeleteDay(ctx context.Context, id uint) error

	CreateExpense(ctx context.Context, expense domain.BudgetExpense) (domain.BudgetExpense, error)
	GetExpenses(ctx context.Context) ([]domain.BudgetExpense, error)
	GetExpense(ctx context.Context, id uint) (domain.BudgetExpense, error)
	UpdateExpense(ctx context.Context, expense domain.BudgetExpense) (domain.BudgetExpense, error)
	DeleteExpense(ctx context.Context, id uint) error
}

// FestivalHandler serves the catalog entities: teams, venues, performers,
// sponsors, day schedules and budget expenses.
type FestivalHandler struct {
	svc FestivalService
}

func NewFestivalHandler(svc FestivalService) *FestivalHandler {
	return &FestivalHandler{
		svc: svc,
	}
}

// renderCatalogErr maps the common catalog error outcomes. notFound names
// the entity for the 404 message.
func (h *FestivalHandler) renderCatalogErr(ctx *gin.Context, err error, notFound string, id any, notFoundSentinel error) {
	switch {
	case errors.Is(err, notFoundSentinel):
		response.RenderErr(ctx, response.ErrNotFound(notFound, "ID", id))
	case errors.Is(err, service.ErrRowReferenced), errors.Is(err, service.ErrInvalidReference):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

// HandleCreateTeam godoc
// @Summary      Create a team
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Param        request   body      request.CreateTeamRequest true "request body"
// @Success      201  {object}  domain.Team
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /teams [post]
func (h *FestivalHandler) HandleCreateTeam(ctx *gin.Context) {
	req := request.CreateTeamRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	team, err := h.svc.CreateTeam(ctx.Request.Context(), domain.Team{Name: req.Name})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateTeam -> h.svc.CreateTeam -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, team)
}

// HandleGetTeams godoc
// @Summary      List all teams
// @Tags         teams
// @Produce      json
// @Success      200  {object}  []domain.Team
// @Failure      500  {object}  response.Err
// @Router       /teams [get]
func (h *FestivalHandler) HandleGetTeams(ctx *gin.Context) {
	teams, err := h.svc.GetTeams(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetTeams -> h.svc.GetTeams -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, teams)
}

// HandleGetTeam godoc
// @Summary      Get a team
// @Tags         teams
// @Produce      json
// @Param        teamID   path      int true "team ID"
// @Success      200  {object}  domain.Team
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /teams/{teamID} [get]
func (h *FestivalHandler) HandleGetTeam(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "teamID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	team, err := h.svc.GetTeam(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetTeam -> h.svc.GetTeam -> %w", err)
		h.renderCatalogErr(ctx, err, "team", id, service.ErrTeamNotFound)

		return
	}

	ctx.JSON(http.StatusOK, team)
}

// HandleUpdateTeam godoc
// @Summary      Update a team
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Param        teamID   path      int true "team ID"
// @Param        request  body      request.CreateTeamRequest true "request body"
// @Success      200  {object}  domain.Team
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /teams/{teamID} [put]
func (h *FestivalHandler) HandleUpdateTeam(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "teamID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.CreateTeamRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	team, err := h.svc.UpdateTeam(ctx.Request.Context(), domain.Team{ID: id, Name: req.Name})
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateTeam -> h.svc.UpdateTeam -> %w", err)
		h.renderCatalogErr(ctx, err, "team", id, service.ErrTeamNotFound)

		return
	}

	ctx.JSON(http.StatusOK, team)
}

// HandleDeleteTeam godoc
// @Summary      Delete a team
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Param        teamID   path      int true "team ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /teams/{teamID} [delete]
func (h *FestivalHandler) HandleDeleteTeam(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "teamID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteTeam(ctx.Request.Context(), id); err != nil {
		err = fmt.Errorf("v1.HandleDeleteTeam -> h.svc.DeleteTeam -> %w", err)
		h.renderCatalogErr(ctx, err, "team", id, service.ErrTeamNotFound)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCreateVenue godoc
// @Summary      Create a venue
// @Tags         venues
// @Produce      json
// @Security     BearerAuth
// @Param        request   body      request.CreateVenueRequest true "request body"
// @Success      201  {object}  domain.Venue
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /venues [post]
func (h *FestivalHandler) HandleCreateVenue(ctx *gin.Context) {
	req := request.CreateVenueRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	venue, err := h.svc.CreateVenue(ctx.Request.Context(), domain.Venue{
		Name:     req.Name,
		Capacity: req.Capacity,
		Location: req.Location,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateVenue -> h.svc.CreateVenue -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, venue)
}

// HandleGetVenues godoc
// @Summary      List all venues
// @Tags         venues
// @Produce      json
// @Success      200  {object}  []domain.Venue
// @Failure      500  {object}  response.Err
// @Router       /venues [get]
func (h *FestivalHandler) HandleGetVenues(ctx *gin.Context) {
	venues, err := h.svc.GetVenues(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetVenues -> h.svc.GetVenues -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, venues)
}

// HandleGetVenue godoc
// @Summary      Get a venue
// @Tags         venues
// @Produce      json
// @Param        venueID   path      int true "venue ID"
// @Success      200  {object}  domain.Venue
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /venues/{venueID} [get]
func (h *FestivalHandler) HandleGetVenue(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "venueID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	venue, err := h.svc.GetVenue(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetVenue -> h.svc.GetVenue -> %w", err)
		h.renderCatalogErr(ctx, err, "venue", id, service.ErrVenueNotFound)

		return
	}

	ctx.JSON(http.StatusOK, venue)
}

// HandleUpdateVenue godoc
// @Summary      Update a venue
// @Tags         venues
// @Produce      json
// @Security     BearerAuth
// @Param        venueID   path      int true "venue ID"
// @Param        request   body      request.CreateVenueRequest true "request body"
// @Success      200  {object}  domain.Venue
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /venues/{venueID} [put]
func (h *FestivalHandler) HandleUpdateVenue(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "venueID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.CreateVenueRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	venue, err := h.svc.UpdateVenue(ctx.Request.Context(), domain.Venue{
		ID:       id,
		Name:     req.Name,
		Capacity: req.Capacity,
		Location: req.Location,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateVenue -> h.svc.UpdateVenue -> %w", err)
		h.renderCatalogErr(ctx, err, "venue", id, service.ErrVenueNotFound)

		return
	}

	ctx.JSON(http.StatusOK, venue)
}

// HandleDeleteVenue godoc
// @Summary      Delete a venue
// @Tags         venues
// @Produce      json
// @Security     BearerAuth
// @Param        venueID   path      int true "venue ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /venues/{venueID} [delete]
func (h *FestivalHandler) HandleDeleteVenue(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "venueID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteVenue(ctx.Request.Context(), id); err != nil {
		err = fmt.Errorf("v1.HandleDeleteVenue -> h.svc.DeleteVenue -> %w", err)
		h.renderCatalogErr(ctx, err, "venue", id, service.ErrVenueNotFound)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCreatePerformer godoc
// @Summary      Create a performer
// @Tags         performers
// @Produce      json
// @Security     BearerAuth
// @Param        request   body      request.CreatePerformerRequest true "request body"
// @Success      201  {object}  domain.Performer
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /performers [post]
func (h *FestivalHandler) HandleCreatePerformer(ctx *gin.Context) {
	req := request.CreatePerformerRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	performerType, ok := domain.ParsePerformerType(req.Type)
	if !ok {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid performer type")))

		return
	}

	performer, err := h.svc.CreatePerformer(ctx.Request.Context(), domain.Performer{
		Name: req.Name,
		Type: performerType,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreatePerformer -> h.svc.CreatePerformer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, performer)
}

// HandleGetPerformers godoc
// @Summary      List all performers
// @Tags         performers
// @Produce      json
// @Success      200  {object}  []domain.Performer
// @Failure      500  {object}  response.Err
// @Router       /performers [get]
func (h *FestivalHandler) HandleGetPerformers(ctx *gin.Context) {
	performers, err := h.svc.GetPerformers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetPerformers -> h.svc.GetPerformers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, performers)
}

// HandleGetPerformer godoc
// @Summary      Get a performer
// @Tags         performers
// @Produce      json
// @Param        performerID   path      int true "performer ID"
// @Success      200  {object}  domain.Performer
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /performers/{performerID} [get]
func (h *FestivalHandler) HandleGetPerformer(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "performerID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	performer, err := h.svc.GetPerformer(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetPerformer -> h.svc.GetPerformer -> %w", err)
		h.renderCatalogErr(ctx, err, "performer", id, service.ErrPerformerNotFound)

		return
	}

	ctx.JSON(http.StatusOK, performer)
}

// HandleUpdatePerformer godoc
// @Summary      Update a performer
// @Tags         performers
// @Produce      json
// @Security     BearerAuth
// @Param        performerID   path      int true "performer ID"
// @Param        request       body      request.CreatePerformerRequest true "request body"
// @Success      200  {object}  domain.Performer
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /performers/{performerID} [put]
func (h *FestivalHandler) HandleUpdatePerformer(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "performerID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.CreatePerformerRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	performerType, ok := domain.ParsePerformerType(req.Type)
	if !ok {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid performer type")))

		return
	}

	performer, err := h.svc.UpdatePerformer(ctx.Request.Context(), domain.Performer{
		ID:   id,
		Name: req.Name,
		Type: performerType,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdatePerformer -> h.svc.UpdatePerformer -> %w", err)
		h.renderCatalogErr(ctx, err, "performer", id, service.ErrPerformerNotFound)

		return
	}

	ctx.JSON(http.StatusOK, performer)
}

// HandleDeletePerformer godoc
// @Summary      Delete a performer
// @Tags         performers
// @Produce      json
// @Security     BearerAuth
// @Param        performerID   path      int true "performer ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /performers/{performerID} [delete]
func (h *FestivalHandler) HandleDeletePerformer(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "performerID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeletePerformer(ctx.Request.Context(), id); err != nil {
		err = fmt.Errorf("v1.HandleDeletePerformer -> h.svc.DeletePerformer -> %w", err)
		h.renderCatalogErr(ctx, err, "performer", id, service.ErrPerformerNotFound)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCreateSponsor godoc
// @Summary      Create a sponsor
// @Tags         sponsors
// @Produce      json
// @Security     BearerAuth
// @Param        request   body      request.CreateSponsorRequest true "request body"
// @Success      201  {object}  domain.Sponsor
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sponsors [post]
func (h *FestivalHandler) HandleCreateSponsor(ctx *gin.Context) {
	req := request.CreateSponsorRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	sponsor, err := h.svc.CreateSponsor(ctx.Request.Context(), domain.Sponsor{
		Name:   req.Name,
		Amount: req.Amount,
		Type:   req.Type,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateSponsor -> h.svc.CreateSponsor -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, sponsor)
}

// HandleGetSponsors godoc
// @Summary      List all sponsors
// @Tags         sponsors
// @Produce      json
// @Success      200  {object}  []domain.Sponsor
// @Failure      500  {object}  response.Err
// @Router       /sponsors [get]
func (h *FestivalHandler) HandleGetSponsors(ctx *gin.Context) {
	sponsors, err := h.svc.GetSponsors(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetSponsors -> h.svc.GetSponsors -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, sponsors)
}

// HandleGetSponsor godoc
// @Summary      Get a sponsor
// @Tags         sponsors
// @Produce      json
// @Param        sponsorID   path      int true "sponsor ID"
// @Success      200  {object}  domain.Sponsor
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sponsors/{sponsorID} [get]
func (h *FestivalHandler) HandleGetSponsor(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "sponsorID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	sponsor, err := h.svc.GetSponsor(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetSponsor -> h.svc.GetSponsor -> %w", err)
		h.renderCatalogErr(ctx, err, "sponsor", id, service.ErrSponsorNotFound)

		return
	}

	ctx.JSON(http.StatusOK, sponsor)
}

// HandleUpdateSponsor godoc
// @Summary      Update a sponsor
// @Tags         sponsors
// @Produce      json
// @Security     BearerAuth
// @Param        sponsorID   path      int true "sponsor ID"
// @Param        request     body      request.CreateSponsorRequest true "request body"
// @Success      200  {object}  domain.Sponsor
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sponsors/{sponsorID} [put]
func (h *FestivalHandler) HandleUpdateSponsor(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "sponsorID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.CreateSponsorRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	sponsor, err := h.svc.UpdateSponsor(ctx.Request.Context(), domain.Sponsor{
		ID:     id,
		Name:   req.Name,
		Amount: req.Amount,
		Type:   req.Type,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateSponsor -> h.svc.UpdateSponsor -> %w", err)
		h.renderCatalogErr(ctx, err, "sponsor", id, service.ErrSponsorNotFound)

		return
	}

	ctx.JSON(http.StatusOK, sponsor)
}

// HandleDeleteSponsor godoc
// @Summary      Delete a sponsor
// @Tags         sponsors
// @Produce      json
// @Security     BearerAuth
// @Param        sponsorID   path      int true "sponsor ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sponsors/{sponsorID} [delete]
func (h *FestivalHandler) HandleDeleteSponsor(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "sponsorID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteSponsor(ctx.Request.Context(), id); err != nil {
		err = fmt.Errorf("v1.HandleDeleteSponsor -> h.svc.DeleteSponsor -> %w", err)
		h.renderCatalogErr(ctx, err, "sponsor", id, service.ErrSponsorNotFound)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCreateDay godoc
// @Summary      Create a festival day
// @Tags         days
// @Produce      json
// @Security     BearerAuth
// @Param        request   body      request.CreateDayRequest true "request body"
// @Success      201  {object}  domain.DaySchedule
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /days [post]
func (h *FestivalHandler) HandleCreateDay(ctx *gin.Context) {
	req := request.CreateDayRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	day, err := h.svc.CreateDay(ctx.Request.Context(), domain.DaySchedule{
		DayNumber:   req.DayNumber,
		Date:        req.Date(),
		Description: req.Description,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateDay -> h.svc.CreateDay -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, day)
}

// HandleGetDays godoc
// @Summary      List the festival day schedule
// @Tags         days
// @Produce      json
// @Success      200  {object}  []domain.DaySchedule
// @Failure      500  {object}  response.Err
// @Router       /days [get]
func (h *FestivalHandler) HandleGetDays(ctx *gin.Context) {
	days, err := h.svc.GetDays(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetDays -> h.svc.GetDays -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, days)
}

// HandleGetDay godoc
// @Summary      Get a festival day
// @Tags         days
// @Produce      json
// @Param        dayID   path      int true "day ID"
// @Success      200  {object}  domain.DaySchedule
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /days/{dayID} [get]
func (h *FestivalHandler) HandleGetDay(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "dayID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	day, err := h.svc.GetDay(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetDay -> h.svc.GetDay -> %w", err)
		h.renderCatalogErr(ctx, err, "day", id, service.ErrDayNotFound)

		return
	}

	ctx.JSON(http.StatusOK, day)
}

// HandleUpdateDay godoc
// @Summary      Update a festival day
// @Tags         days
// @Produce      json
// @Security     BearerAuth
// @Param        dayID    path      int true "day ID"
// @Param        request  body      request.CreateDayRequest true "request body"
// @Success      200  {object}  domain.DaySchedule
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /days/{dayID} [put]
func (h *FestivalHandler) HandleUpdateDay(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "dayID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.CreateDayRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	day, err := h.svc.UpdateDay(ctx.Request.Context(), domain.DaySchedule{
		ID:          id,
		DayNumber:   req.DayNumber,
		Date:        req.Date(),
		Description: req.Description,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateDay -> h.svc.UpdateDay -> %w", err)
		h.renderCatalogErr(ctx, err, "day", id, service.ErrDayNotFound)

		return
	}

	ctx.JSON(http.StatusOK, day)
}

// HandleDeleteDay godoc
// @Summary      Delete a festival day
// @Tags         days
// @Produce      json
// @Security     BearerAuth
// @Param        dayID   path      int true "day ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /days/{dayID} [delete]
func (h *FestivalHandler) HandleDeleteDay(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "dayID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteDay(ctx.Request.Context(), id); err != nil {
		err = fmt.Errorf("v1.HandleDeleteDay -> h.svc.DeleteDay -> %w", err)
		h.renderCatalogErr(ctx, err, "day", id, service.ErrDayNotFound)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCreateExpense godoc
// @Summary      Create a budget expense
// @Tags         budget
// @Produce      json
// @Security     BearerAuth
// @Param        request   body      request.CreateExpenseRequest true "request body"
// @Success      201  {object}  domain.BudgetExpense
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /budget [post]
func (h *FestivalHandler) HandleCreateExpense(ctx *gin.Context) {
	req := request.CreateExpenseRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	expense, err := h.svc.CreateExpense(ctx.Request.Context(), domain.BudgetExpense{
		Description:     req.Description,
		AllocatedAmount: req.AllocatedAmount,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateExpense -> h.svc.CreateExpense -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, expense)
}

// HandleGetExpenses godoc
// @Summary      List all budget expenses
// @Tags         budget
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  []domain.BudgetExpense
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /budget [get]
func (h *FestivalHandler) HandleGetExpenses(ctx *gin.Context) {
	expenses, err := h.svc.GetExpenses(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetExpenses -> h.svc.GetExpenses -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, expenses)
}

// HandleGetExpense godoc
// @Summary      Get a budget expense
// @Tags         budget
// @Produce      json
// @Security     BearerAuth
// @Param        expenseID   path      int true "expense ID"
// @Success      200  {object}  domain.BudgetExpense
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /budget/{expenseID} [get]
func (h *FestivalHandler) HandleGetExpense(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "expenseID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	expense, err := h.svc.GetExpense(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetExpense -> h.svc.GetExpense -> %w", err)
		h.renderCatalogErr(ctx, err, "expense", id, service.ErrExpenseNotFound)

		return
	}

	ctx.JSON(http.StatusOK, expense)
}

// HandleUpdateExpense godoc
// @Summary      Update a budget expense
// @Tags         budget
// @Produce      json
// @Security     BearerAuth
// @Param        expenseID   path      int true "expense ID"
// @Param        request     body      request.CreateExpenseRequest true "request body"
// @Success      200  {object}  domain.BudgetExpense
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /budget/{expenseID} [put]
func (h *FestivalHandler) HandleUpdateExpense(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "expenseID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.CreateExpenseRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	expense, err := h.svc.UpdateExpense(ctx.Request.Context(), domain.BudgetExpense{
		ID:              id,
		Description:     req.Description,
		AllocatedAmount: req.AllocatedAmount,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateExpense -> h.svc.UpdateExpense -> %w", err)
		h.renderCatalogErr(ctx, err, "expense", id, service.ErrExpenseNotFound)

		return
	}

	ctx.JSON(http.StatusOK, expense)
}

// HandleDeleteExpense godoc
// @Summary      Delete a budget expense
// @Tags         budget
// @Produce      json
// @Security     BearerAuth
// @Param        expenseID   path      int true "expense ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /budget/{expenseID} [delete]
func (h *FestivalHandler) HandleDeleteExpense(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "expenseID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteExpense(ctx.Request.Context(), id); err != nil {
		err = fmt.Errorf("v1.HandleDeleteExpense -> h.svc.DeleteExpense -> %w", err)
		h.renderCatalogErr(ctx, err, "expense", id, service.ErrExpenseNotFound)

		return
	}

	ctx.Status(http.StatusNoContent)
}
