package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/campusfest/fest-api/docs"
	v1 "github.com/campusfest/fest-api/internal/api/handler/v1"
	"github.com/campusfest/fest-api/internal/api/middleware"
	"github.com/campusfest/fest-api/internal/authz"
	"github.com/campusfest/fest-api/internal/config"
	"github.com/campusfest/fest-api/internal/repository"
	"github.com/campusfest/fest-api/internal/repository/dao"
	"github.com/campusfest/fest-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	memberHandler := s.initMemberHandler(db)
	participantHandler := s.initParticipantHandler(db)
	festivalHandler := s.initFestivalHandler(db)
	eventHandler := s.initEventHandler(db)
	s.MountHandlers(authHandler, memberHandler, participantHandler, festivalHandler, eventHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	memberRepo := repository.NewMemberRepository(dao.NewMemberDAO(db))
	participantRepo := repository.NewParticipantRepository(dao.NewParticipantDAO(db))
	svc := service.NewAuthService(memberRepo, participantRepo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initMemberHandler(db *gorm.DB) *v1.MemberHandler {
	repo := repository.NewMemberRepository(dao.NewMemberDAO(db))
	svc := service.NewMemberService(repo)
	handler := v1.NewMemberHandler(svc)

	return handler
}

func (s *Server) initParticipantHandler(db *gorm.DB) *v1.ParticipantHandler {
	repo := repository.NewParticipantRepository(dao.NewParticipantDAO(db))
	svc := service.NewParticipantService(repo)
	handler := v1.NewParticipantHandler(svc)

	return handler
}

func (s *Server) initFestivalHandler(db *gorm.DB) *v1.FestivalHandler {
	repo := repository.NewFestivalRepository(dao.NewFestivalDAO(db))
	svc := service.NewFestivalService(repo)
	handler := v1.NewFestivalHandler(svc)

	return handler
}

func (s *Server) initEventHandler(db *gorm.DB) *v1.EventHandler {
	repo := repository.NewEventRepository(dao.NewEventDAO(db))
	svc := service.NewEventService(repo)
	handler := v1.NewEventHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, memberHandler *v1.MemberHandler, participantHandler *v1.ParticipantHandler, festivalHandler *v1.FestivalHandler, eventHandler *v1.EventHandler) {
	const basePath = "/api/v1"

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	// Public routes still run the authenticator so an attached session can
	// shape ownership checks, but a missing token is fine.
	public := s.Router.Group(basePath, authenticator.VerifyJWTOptional())
	{
		public.POST("/auth/members/login", authHandler.HandleMemberLogin)
		public.POST("/auth/participants/login", authHandler.HandleParticipantLogin)
		public.POST("/auth/participants/signup",
			middleware.Authorize(authz.ResourceParticipants, authz.ActionCreate), authHandler.HandleParticipantSignup)

		public.GET("/teams", middleware.Authorize(authz.ResourceTeams, authz.ActionRead), festivalHandler.HandleGetTeams)
		public.GET("/teams/:teamID", middleware.Authorize(authz.ResourceTeams, authz.ActionRead), festivalHandler.HandleGetTeam)
		public.GET("/venues", middleware.Authorize(authz.ResourceVenues, authz.ActionRead), festivalHandler.HandleGetVenues)
		public.GET("/venues/:venueID", middleware.Authorize(authz.ResourceVenues, authz.ActionRead), festivalHandler.HandleGetVenue)
		public.GET("/performers", middleware.Authorize(authz.ResourcePerformers, authz.ActionRead), festivalHandler.HandleGetPerformers)
		public.GET("/performers/:performerID", middleware.Authorize(authz.ResourcePerformers, authz.ActionRead), festivalHandler.HandleGetPerformer)
		public.GET("/sponsors", middleware.Authorize(authz.ResourceSponsors, authz.ActionRead), festivalHandler.HandleGetSponsors)
		public.GET("/sponsors/:sponsorID", middleware.Authorize(authz.ResourceSponsors, authz.ActionRead), festivalHandler.HandleGetSponsor)
		public.GET("/days", middleware.Authorize(authz.ResourceDays, authz.ActionRead), festivalHandler.HandleGetDays)
		public.GET("/days/:dayID", middleware.Authorize(authz.ResourceDays, authz.ActionRead), festivalHandler.HandleGetDay)

		public.GET("/events", middleware.Authorize(authz.ResourceEvents, authz.ActionRead), eventHandler.HandleGetEvents)
		public.GET("/events/:eventID", middleware.Authorize(authz.ResourceEvents, authz.ActionRead), eventHandler.HandleGetEvent)

		public.GET("/tickets/event/:eventID", middleware.Authorize(authz.ResourceTickets, authz.ActionRead), eventHandler.HandleGetTicketsByEvent)
		public.GET("/tickets/participant/:participantID", middleware.Authorize(authz.ResourceTickets, authz.ActionRead), eventHandler.HandleGetTicketsByParticipant)
	}

	protected := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		protected.GET("/members", middleware.Authorize(authz.ResourceMembers, authz.ActionRead), memberHandler.HandleGetMembers)
		protected.GET("/members/:studentID", middleware.Authorize(authz.ResourceMembers, authz.ActionRead), memberHandler.HandleGetMember)
		protected.POST("/members", middleware.Authorize(authz.ResourceMembers, authz.ActionCreate), authHandler.HandleRegisterMember)
		protected.PUT("/members/:studentID", middleware.Authorize(authz.ResourceMembers, authz.ActionUpdate), memberHandler.HandleUpdateMember)
		protected.DELETE("/members/:studentID", middleware.Authorize(authz.ResourceMembers, authz.ActionDelete), memberHandler.HandleDeleteMember)

		protected.GET("/participants", middleware.Authorize(authz.ResourceParticipants, authz.ActionRead), participantHandler.HandleGetParticipants)
		protected.GET("/participants/:participantID", middleware.Authorize(authz.ResourceParticipants, authz.ActionRead), participantHandler.HandleGetParticipant)
		protected.PUT("/participants/:participantID", middleware.Authorize(authz.ResourceParticipants, authz.ActionUpdate), participantHandler.HandleUpdateParticipant)
		protected.DELETE("/participants/:participantID", middleware.Authorize(authz.ResourceParticipants, authz.ActionDelete), participantHandler.HandleDeleteParticipant)

		protected.POST("/teams", middleware.Authorize(authz.ResourceTeams, authz.ActionCreate), festivalHandler.HandleCreateTeam)
		protected.PUT("/teams/:teamID", middleware.Authorize(authz.ResourceTeams, authz.ActionUpdate), festivalHandler.HandleUpdateTeam)
		protected.DELETE("/teams/:teamID", middleware.Authorize(authz.ResourceTeams, authz.ActionDelete), festivalHandler.HandleDeleteTeam)

		protected.POST("/venues", middleware.Authorize(authz.ResourceVenues, authz.ActionCreate), festivalHandler.HandleCreateVenue)
		protected.PUT("/venues/:venueID", middleware.Authorize(authz.ResourceVenues, authz.ActionUpdate), festivalHandler.HandleUpdateVenue)
		protected.DELETE("/venues/:venueID", middleware.Authorize(authz.ResourceVenues, authz.ActionDelete), festivalHandler.HandleDeleteVenue)

		protected.POST("/performers", middleware.Authorize(authz.ResourcePerformers, authz.ActionCreate), festivalHandler.HandleCreatePerformer)
		protected.PUT("/performers/:performerID", middleware.Authorize(authz.ResourcePerformers, authz.ActionUpdate), festivalHandler.HandleUpdatePerformer)
		protected.DELETE("/performers/:performerID", middleware.Authorize(authz.ResourcePerformers, authz.ActionDelete), festivalHandler.HandleDeletePerformer)

		protected.POST("/sponsors", middleware.Authorize(authz.ResourceSponsors, authz.ActionCreate), festivalHandler.HandleCreateSponsor)
		protected.PUT("/sponsors/:sponsorID", middleware.Authorize(authz.ResourceSponsors, authz.ActionUpdate), festivalHandler.HandleUpdateSponsor)
		protected.DELETE("/sponsors/:sponsorID", middleware.Authorize(authz.ResourceSponsors, authz.ActionDelete), festivalHandler.HandleDeleteSponsor)

		protected.POST("/days", middleware.Authorize(authz.ResourceDays, authz.ActionCreate), festivalHandler.HandleCreateDay)
		protected.PUT("/days/:dayID", middleware.Authorize(authz.ResourceDays, authz.ActionUpdate), festivalHandler.HandleUpdateDay)
		protected.DELETE("/days/:dayID", middleware.Authorize(authz.ResourceDays, authz.ActionDelete), festivalHandler.HandleDeleteDay)

		protected.GET("/budget", middleware.Authorize(authz.ResourceBudget, authz.ActionRead), festivalHandler.HandleGetExpenses)
		protected.GET("/budget/:expenseID", middleware.Authorize(authz.ResourceBudget, authz.ActionRead), festivalHandler.HandleGetExpense)
		protected.POST("/budget", middleware.Authorize(authz.ResourceBudget, authz.ActionCreate), festivalHandler.HandleCreateExpense)
		protected.PUT("/budget/:expenseID", middleware.Authorize(authz.ResourceBudget, authz.ActionUpdate), festivalHandler.HandleUpdateExpense)
		protected.DELETE("/budget/:expenseID", middleware.Authorize(authz.ResourceBudget, authz.ActionDelete), festivalHandler.HandleDeleteExpense)

		protected.POST("/events", middleware.Authorize(authz.ResourceEvents, authz.ActionCreate), eventHandler.HandleCreateEvent)
		protected.PUT("/events/:eventID", middleware.Authorize(authz.ResourceEvents, authz.ActionUpdate), eventHandler.HandleUpdateEvent)
		protected.DELETE("/events/:eventID", middleware.Authorize(authz.ResourceEvents, authz.ActionDelete), eventHandler.HandleDeleteEvent)
		protected.POST("/events/:eventID/register", middleware.Authorize(authz.ResourceEventSignup, authz.ActionCreate), eventHandler.HandleEventSignup)

		protected.POST("/registrations", middleware.Authorize(authz.ResourceRegistrations, authz.ActionCreate), eventHandler.HandleCreateRegistration)
		protected.GET("/registrations/event/:eventID", middleware.Authorize(authz.ResourceRegistrations, authz.ActionRead), eventHandler.HandleGetRegistrationsByEvent)
		protected.GET("/registrations/participant/:participantID", middleware.Authorize(authz.ResourceRegistrations, authz.ActionRead), eventHandler.HandleGetRegistrationsByParticipant)
		protected.DELETE("/registrations/:registrationID", middleware.Authorize(authz.ResourceRegistrations, authz.ActionDelete), eventHandler.HandleDeleteRegistration)

		protected.POST("/management", middleware.Authorize(authz.ResourceManagement, authz.ActionCreate), eventHandler.HandleCreateManagement)
		protected.GET("/management/event/:eventID", middleware.Authorize(authz.ResourceManagement, authz.ActionRead), eventHandler.HandleGetManagementByEvent)
		protected.GET("/management/team/:teamID", middleware.Authorize(authz.ResourceManagement, authz.ActionRead), eventHandler.HandleGetManagementByTeam)
		protected.DELETE("/management/:managementID", middleware.Authorize(authz.ResourceManagement, authz.ActionDelete), eventHandler.HandleDeleteManagement)

		protected.POST("/sponsorships", middleware.Authorize(authz.ResourceSponsorships, authz.ActionCreate), eventHandler.HandleCreateSponsorship)
		protected.GET("/sponsorships/event/:eventID", middleware.Authorize(authz.ResourceSponsorships, authz.ActionRead), eventHandler.HandleGetSponsorshipsByEvent)
		protected.GET("/sponsorships/sponsor/:sponsorID", middleware.Authorize(authz.ResourceSponsorships, authz.ActionRead), eventHandler.HandleGetSponsorshipsBySponsor)
		protected.PUT("/sponsorships/:sponsorshipID", middleware.Authorize(authz.ResourceSponsorships, authz.ActionUpdate), eventHandler.HandleUpdateSponsorship)
		protected.DELETE("/sponsorships/:sponsorshipID", middleware.Authorize(authz.ResourceSponsorships, authz.ActionDelete), eventHandler.HandleDeleteSponsorship)

		protected.POST("/tickets", middleware.Authorize(authz.ResourceTickets, authz.ActionCreate), eventHandler.HandleCreateTicket)
		protected.PUT("/tickets/:ticketID", middleware.Authorize(authz.ResourceTickets, authz.ActionUpdate), eventHandler.HandleUpdateTicket)
		protected.DELETE("/tickets/:ticketID", middleware.Authorize(authz.ResourceTickets, authz.ActionDelete), eventHandler.HandleDeleteTicket)

		protected.GET("/dashboard/stats", middleware.Authorize(authz.ResourceDashboard, authz.ActionRead), eventHandler.HandleGetDashboardStats)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Campus Fest API"
	docs.SwaggerInfo.Description = "REST API for campus festival management."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
