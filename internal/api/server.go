package api

import (
	"context"
	"fmt"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/magscene/magsav-api/docs"
	v1 "github.com/magscene/magsav-api/internal/api/handler/v1"
	"github.com/magscene/magsav-api/internal/api/middleware"
	"github.com/magscene/magsav-api/internal/config"
	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/events"
	"github.com/magscene/magsav-api/internal/google"
	"github.com/magscene/magsav-api/internal/metrics"
	"github.com/magscene/magsav-api/internal/repository"
	"github.com/magscene/magsav-api/internal/repository/dao"
	"github.com/magscene/magsav-api/internal/service"
)

// Deps are the long lived components shared by the HTTP server, the CLI and
// the shutdown sequence.
type Deps struct {
	Google       *google.Integration
	GoogleConfig *service.GoogleConfigService
	Events       *events.Bus
	Hub          *events.Hub
	Background   *service.Background
	Metrics      *metrics.Metrics
	Gatherer     prometheus.Gatherer
}

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	deps Deps
}

type handlers struct {
	auth          *v1.AuthHandler
	user          *v1.UserHandler
	readiness     *v1.ReadinessHandler
	societe       *v1.SocieteHandler
	commande      *v1.CommandeHandler
	planification *v1.PlanificationHandler
	vehicule      *v1.VehiculeHandler
	technicien    *v1.TechnicienHandler
	category      *v1.CategoryHandler
	googleConfig  *v1.GoogleConfigHandler
	google        *v1.GoogleHandler
	settings      *v1.SettingsHandler
	transfer      *v1.TransferHandler
	events        *v1.EventsHandler
}

// NewServer builds the router. ctx bounds the background work of the
// middlewares.
func NewServer(ctx context.Context, conf *config.AppConfig, db *gorm.DB, deps Deps) (*Server, error) {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
		deps:   deps,
	}

	s.MountMiddlewares(ctx)

	h, err := s.initHandlers(db)
	if err != nil {
		return nil, err
	}
	s.MountHandlers(h)

	return s, nil
}

func (s *Server) initHandlers(db *gorm.DB) (handlers, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return handlers{}, fmt.Errorf("db.DB -> %w", err)
	}

	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	societeRepo := repository.NewSocieteRepository(dao.NewSocieteDAO(db))
	commandeRepo := repository.NewCommandeRepository(dao.NewCommandeDAO(db))
	planificationRepo := repository.NewPlanificationRepository(dao.NewPlanificationDAO(db))
	technicienRepo := repository.NewTechnicienRepository(dao.NewTechnicienDAO(db))
	vehiculeRepo := repository.NewVehiculeRepository(dao.NewVehiculeDAO(db))
	preferenceRepo := repository.NewPreferenceRepository(dao.NewPreferenceDAO(db))
	categoryRepo := repository.NewCategoryRepository(dao.NewCategoryDAO(db))

	integration := s.deps.Google
	bus := s.deps.Events
	bg := s.deps.Background

	societes := service.NewSocieteService(societeRepo, integration, bus, bg)
	commandes := service.NewCommandeService(commandeRepo, societeRepo, integration, bus, bg)
	planifications := service.NewPlanificationService(planificationRepo, technicienRepo, vehiculeRepo, integration, integration, bus, bg)
	techniciens := service.NewTechnicienService(technicienRepo, bus)
	vehicules := service.NewVehiculeService(vehiculeRepo, bus)
	categories := service.NewCategoryService(categoryRepo, bus)
	specialites := service.NewSpecialiteService(preferenceRepo)

	return handlers{
		auth:          v1.NewAuthHandler(s.Config.API, service.NewAuthService(userRepo)),
		user:          v1.NewUserHandler(service.NewUserService(userRepo)),
		readiness:     v1.NewReadinessHandler(sqlDB),
		societe:       v1.NewSocieteHandler(societes),
		commande:      v1.NewCommandeHandler(commandes),
		planification: v1.NewPlanificationHandler(planifications),
		vehicule:      v1.NewVehiculeHandler(vehicules),
		technicien:    v1.NewTechnicienHandler(techniciens),
		category:      v1.NewCategoryHandler(categories, specialites),
		googleConfig:  v1.NewGoogleConfigHandler(s.deps.GoogleConfig, integration),
		google:        v1.NewGoogleHandler(integration),
		settings: v1.NewSettingsHandler(
			service.NewThemeService(preferenceRepo),
			service.NewPreferenceService(preferenceRepo),
			service.NewNavigationService(),
		),
		transfer: v1.NewTransferHandler(
			service.NewImportService(service.ImportStores{
				Societes:    societes,
				Vehicules:   vehicules,
				Categories:  categories,
				Specialites: specialites,
			}, s.deps.Metrics),
			service.NewExportService(service.ExportSources{
				Societes:       societes,
				Commandes:      commandes,
				Planifications: planifications,
				Techniciens:    techniciens,
				Vehicules:      vehicules,
				Categories:     categories,
				Specialites:    specialites,
			}),
			s.Config.Import.MaxUploadBytes,
		),
		events: v1.NewEventsHandler(s.deps.Hub),
	}, nil
}

func (s *Server) MountMiddlewares(ctx context.Context) {
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.Logger())
	s.Router.Use(middleware.Metrics(s.deps.Metrics))
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))

	if rl := s.Config.API.RateLimit; rl.Enabled {
		s.Router.Use(middleware.NewRateLimiter(ctx, rl.RPS, rl.Burst, s.deps.Metrics).Handler())
	}
}

func (s *Server) MountHandlers(h handlers) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", h.auth.HandleSignup)
		auth.POST("/auth/login", h.auth.HandleLogin)
		// Google redirects the browser here, without our JWT.
		auth.GET("/google/oauth/callback", h.google.HandleOAuthCallback)
	}

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)
	api := s.Router.Group(basePath, authenticator.VerifyJWT())
	admin := middleware.RequireRole(domain.RoleAdmin)

	users := api.Group("/users")
	{
		users.GET("/me", h.user.HandleGetMe)
		users.GET("/:userID", h.user.HandleGetUser)
	}

	societes := api.Group("/societes")
	{
		societes.GET("", h.societe.HandleListSocietes)
		societes.POST("", h.societe.HandleCreateSociete)
		societes.GET("/clients", h.societe.HandleListClients)
		societes.GET("/fournisseurs", h.societe.HandleListFournisseurs)
		societes.GET("/search", h.societe.HandleSearchSocietes)
		societes.GET("/stats", h.societe.HandleSocieteStats)
		societes.GET("/type/:type", h.societe.HandleListByType)
		societes.POST("/sync-google-contacts", h.societe.HandleSyncGoogleContacts)
		societes.GET("/:id", h.societe.HandleGetSociete)
		societes.PUT("/:id", h.societe.HandleUpdateSociete)
		societes.DELETE("/:id", h.societe.HandleDeleteSociete)
		societes.POST("/:id/add-to-google-contacts", h.societe.HandleAddToGoogleContacts)
	}

	commandes := api.Group("/commandes")
	{
		commandes.GET("", h.commande.HandleListCommandes)
		commandes.POST("", h.commande.HandleCreateCommande)
		commandes.GET("/stats", h.commande.HandleCommandeStats)
		commandes.GET("/statut/:statut", h.commande.HandleListByStatut)
		commandes.GET("/fournisseur/:id", h.commande.HandleListByFournisseur)
		commandes.GET("/:id", h.commande.HandleGetCommande)
		commandes.PUT("/:id", h.commande.HandleUpdateCommande)
		commandes.DELETE("/:id", h.commande.HandleDeleteCommande)
		commandes.PUT("/:id/statut", h.commande.HandleUpdateStatut)
		commandes.POST("/:id/send-confirmation", h.commande.HandleSendConfirmation)
	}

	planifications := api.Group("/planifications")
	{
		planifications.GET("", h.planification.HandleListPlanifications)
		planifications.POST("", h.planification.HandleCreatePlanification)
		planifications.GET("/technicien/:id", h.planification.HandleListByTechnicien)
		planifications.GET("/statut/:statut", h.planification.HandleListByStatut)
		planifications.POST("/sync-google-calendar", h.planification.HandleSyncGoogleCalendar)
		planifications.POST("/send-reminders", h.planification.HandleSendReminders)
		planifications.GET("/:id", h.planification.HandleGetPlanification)
		planifications.PUT("/:id", h.planification.HandleUpdatePlanification)
		planifications.DELETE("/:id", h.planification.HandleDeletePlanification)
		planifications.PUT("/:id/terminer", h.planification.HandleTerminer)
	}

	techniciens := api.Group("/techniciens")
	{
		techniciens.GET("", h.technicien.HandleListTechniciens)
		techniciens.POST("", h.technicien.HandleCreateTechnicien)
		techniciens.GET("/actifs", h.technicien.HandleListActifs)
		techniciens.GET("/:id", h.technicien.HandleGetTechnicien)
		techniciens.PUT("/:id", h.technicien.HandleUpdateTechnicien)
		techniciens.DELETE("/:id", h.technicien.HandleDeleteTechnicien)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", h.category.HandleListCategories)
		categories.POST("", h.category.HandleCreateCategory)
		categories.GET("/root", h.category.HandleListRoots)
		categories.GET("/active", h.category.HandleListActive)
		categories.GET("/search", h.category.HandleSearchCategories)
		categories.GET("/with-counts", h.category.HandleListWithCounts)
		categories.GET("/:id", h.category.HandleGetCategory)
		categories.PUT("/:id", h.category.HandleUpdateCategory)
		categories.DELETE("/:id", h.category.HandleDeleteCategory)
		categories.GET("/:id/children", h.category.HandleListChildren)
		categories.GET("/:id/path", h.category.HandleCategoryPath)
		categories.GET("/:id/stats", h.category.HandleCategoryStats)
		categories.PUT("/:id/move", h.category.HandleMoveCategory)
		categories.PUT("/:id/toggle-status", h.category.HandleToggleCategory)
	}
	api.GET("/specialites", h.category.HandleListSpecialites)
	api.PUT("/specialites", h.category.HandleSetSpecialites)

	googleConfig := api.Group("/google/config")
	{
		googleConfig.GET("", h.googleConfig.HandleGetConfig)
		googleConfig.GET("/stats", h.googleConfig.HandleConfigStats)
		googleConfig.POST("/validate", h.googleConfig.HandleValidateConfig)
		googleConfig.POST("/test-oauth", h.googleConfig.HandleTestOAuth)
		googleConfig.POST("/reset", h.googleConfig.HandleResetConfig)
		googleConfig.PUT("", admin, h.googleConfig.HandleUpdateConfig)
		googleConfig.POST("/reload", admin, h.google.HandleReload)
	}

	googleAPI := api.Group("/google")
	{
		googleAPI.GET("/status", h.google.HandleStatus)
		googleAPI.POST("/initialize", admin, h.google.HandleInitialize)
		googleAPI.GET("/test-connection", h.google.HandleTestConnection)
		googleAPI.POST("/calendar/sync-planification", h.google.HandleSyncPlanification)
		googleAPI.POST("/gmail/send-intervention-notification", h.google.HandleSendInterventionNotification)
		googleAPI.POST("/gmail/send-intervention-reminder", h.google.HandleSendInterventionReminder)
		googleAPI.POST("/gmail/send-order-confirmation", h.google.HandleSendOrderConfirmation)
		googleAPI.POST("/contacts/sync", h.google.HandleSyncContacts)
		googleAPI.POST("/contacts/add-client", h.google.HandleAddClient)
		googleAPI.POST("/sync/start-auto", admin, h.google.HandleStartAutoSync)
		googleAPI.POST("/sync/stop-auto", admin, h.google.HandleStopAutoSync)
		googleAPI.GET("/oauth/url", admin, h.google.HandleAuthorizationURL)
	}

	settings := api.Group("")
	{
		settings.GET("/themes", h.settings.HandleListThemes)
		settings.GET("/themes/current", h.settings.HandleCurrentTheme)
		settings.PUT("/themes/current", h.settings.HandleSetCurrentTheme)
		settings.GET("/preferences/:key", h.settings.HandleGetPreference)
		settings.PUT("/preferences/:key", h.settings.HandleSetPreference)
		settings.DELETE("/preferences/:key", h.settings.HandleDeletePreference)
		settings.GET("/navigation", h.settings.HandleNavigation)
		settings.DELETE("/navigation/cache", admin, h.settings.HandleClearCache)
	}

	transfer := api.Group("")
	{
		transfer.POST("/import/:entity", h.transfer.HandleImport)
		transfer.GET("/export/:entity", h.transfer.HandleExport)
	}

	api.GET("/events/ws", h.events.HandleEvents)

	vehicules := s.Router.Group("/api/vehicules", authenticator.VerifyJWT())
	{
		vehicules.GET("", h.vehicule.HandleListVehicules)
		vehicules.POST("", h.vehicule.HandleCreateVehicule)
		vehicules.GET("/stats", h.vehicule.HandleVehiculeStats)
		vehicules.GET("/statut/:statut", h.vehicule.HandleListByStatut)
		vehicules.GET("/type/:type", h.vehicule.HandleListByType)
		vehicules.GET("/:id", h.vehicule.HandleGetVehicule)
		vehicules.PUT("/:id", h.vehicule.HandleUpdateVehicule)
		vehicules.DELETE("/:id", h.vehicule.HandleDeleteVehicule)
		vehicules.PATCH("/:id/kilometrage", h.vehicule.HandleUpdateKilometrage)
		vehicules.PATCH("/:id/statut", h.vehicule.HandleUpdateStatut)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/readiness", h.readiness.HandleReadiness)
	s.Router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.deps.Gatherer, promhttp.HandlerOpts{})))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "MAGSAV API"
	docs.SwaggerInfo.Description = "Back office of the MAGSAV after-sales service: sociétés, commandes, planifications, vehicules and Google Workspace."
	docs.SwaggerInfo.Version = "1.3"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
