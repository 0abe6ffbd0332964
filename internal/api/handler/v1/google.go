package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/magscene/magsav-api/internal/api/handler/v1/request"
	"github.com/magscene/magsav-api/internal/api/handler/v1/response"
	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/google"
)

const errNotInitialized = "Services Google non initialisés"

type GoogleIntegration interface {
	Initialize(ctx context.Context) bool
	Reload(ctx context.Context) bool
	CalendarAvailable() bool
	Status() domain.GoogleStatus
	SyncPlanification(ctx context.Context, p domain.Planification) (string, bool)
	SendInterventionNotification(ctx context.Context, m google.InterventionMail) bool
	SendInterventionReminder(ctx context.Context, m google.ReminderMail) bool
	SendOrderConfirmation(ctx context.Context, m google.OrderMail) bool
	SyncContacts(ctx context.Context) []google.Contact
	AddContact(ctx context.Context, c google.Contact) string
	TestConnection(ctx context.Context) map[string]bool
	AuthorizationURL(ctx context.Context) (string, error)
	ExchangeCode(ctx context.Context, code, state string) error
	StartAutoSync() bool
	StopAutoSync()
}

type GoogleHandler struct {
	integration GoogleIntegration
}

func NewGoogleHandler(integration GoogleIntegration) *GoogleHandler {
	return &GoogleHandler{
		integration: integration,
	}
}

// HandleStatus godoc
// @Summary      Google services status
// @Tags         google
// @Produce      json
// @Success      200  {object}  domain.GoogleStatus
// @Router       /api/v1/google/status [get]
// @Security BearerAuth
func (h *GoogleHandler) HandleStatus(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.integration.Status())
}

// HandleInitialize godoc
// @Summary      Connect the Google services
// @Tags         google
// @Produce      json
// @Success      200  {object}  response.Status
// @Router       /api/v1/google/initialize [post]
// @Security BearerAuth
func (h *GoogleHandler) HandleInitialize(ctx *gin.Context) {
	ok := h.integration.Initialize(ctx.Request.Context())

	res := response.Status{Success: ok, Message: "Échec de l'initialisation"}
	if ok {
		res.Message = "Services Google initialisés"
	}
	res.GoogleStatus = h.integration.Status()

	ctx.JSON(http.StatusOK, res)
}

// HandleSyncPlanification godoc
// @Summary      Push one planification to Google Calendar
// @Tags         google
// @Accept       json
// @Produce      json
// @Param        request  body      request.PlanificationRequest  true  "request body"
// @Success      200      {object}  response.SyncPlanification
// @Failure      400      {object}  response.Err
// @Router       /api/v1/google/calendar/sync-planification [post]
// @Security BearerAuth
func (h *GoogleHandler) HandleSyncPlanification(ctx *gin.Context) {
	var req request.PlanificationRequest
	if !bindJSON(ctx, &req) {
		return
	}
	if !h.integration.CalendarAvailable() {
		response.RenderErr(ctx, response.ErrServiceUnavailable("Google Calendar non disponible"))
		return
	}

	eventID, ok := h.integration.SyncPlanification(ctx.Request.Context(), req.ToDomain())
	if !ok {
		ctx.JSON(http.StatusOK, response.SyncPlanification{Message: "Échec de la synchronisation avec Google Calendar"})
		return
	}

	ctx.JSON(http.StatusOK, response.SyncPlanification{
		Success: true,
		Message: "Planification synchronisée avec Google Calendar",
		EventID: eventID,
	})
}

// HandleSendInterventionNotification godoc
// @Summary      Email an intervention confirmation
// @Tags         google
// @Accept       json
// @Produce      json
// @Param        request  body      request.InterventionMailRequest  true  "request body"
// @Success      200      {object}  response.Mutation
// @Failure      400      {object}  response.Err
// @Router       /api/v1/google/gmail/send-intervention-notification [post]
// @Security BearerAuth
func (h *GoogleHandler) HandleSendInterventionNotification(ctx *gin.Context) {
	var req request.InterventionMailRequest
	if !bindJSON(ctx, &req) {
		return
	}

	sent := h.integration.SendInterventionNotification(ctx.Request.Context(), req.InterventionMail)
	renderSent(ctx, sent, "Notification d'intervention envoyée", "Échec de l'envoi de la notification")
}

// HandleSendInterventionReminder godoc
// @Summary      Email an intervention reminder
// @Tags         google
// @Accept       json
// @Produce      json
// @Param        request  body      request.ReminderMailRequest  true  "request body"
// @Success      200      {object}  response.Mutation
// @Failure      400      {object}  response.Err
// @Router       /api/v1/google/gmail/send-intervention-reminder [post]
// @Security BearerAuth
func (h *GoogleHandler) HandleSendInterventionReminder(ctx *gin.Context) {
	var req request.ReminderMailRequest
	if !bindJSON(ctx, &req) {
		return
	}

	sent := h.integration.SendInterventionReminder(ctx.Request.Context(), req.ReminderMail)
	renderSent(ctx, sent, "Rappel d'intervention envoyé", "Échec de l'envoi du rappel")
}

// HandleSendOrderConfirmation godoc
// @Summary      Email an order confirmation
// @Tags         google
// @Accept       json
// @Produce      json
// @Param        request  body      request.OrderMailRequest  true  "request body"
// @Success      200      {object}  response.Mutation
// @Failure      400      {object}  response.Err
// @Router       /api/v1/google/gmail/send-order-confirmation [post]
// @Security BearerAuth
func (h *GoogleHandler) HandleSendOrderConfirmation(ctx *gin.Context) {
	var req request.OrderMailRequest
	if !bindJSON(ctx, &req) {
		return
	}

	sent := h.integration.SendOrderConfirmation(ctx.Request.Context(), req.OrderMail)
	renderSent(ctx, sent, "Confirmation de commande envoyée", "Échec de l'envoi de la confirmation")
}

func renderSent(ctx *gin.Context, sent bool, ok, failed string) {
	if !sent {
		ctx.JSON(http.StatusOK, response.Failed(failed))
		return
	}

	ctx.JSON(http.StatusOK, response.OK(ok))
}

// HandleSyncContacts godoc
// @Summary      Pull the Google contacts
// @Tags         google
// @Produce      json
// @Success      200  {object}  response.Contacts
// @Router       /api/v1/google/contacts/sync [post]
// @Security BearerAuth
func (h *GoogleHandler) HandleSyncContacts(ctx *gin.Context) {
	contacts := h.integration.SyncContacts(ctx.Request.Context())
	if contacts == nil {
		contacts = []google.Contact{}
	}

	ctx.JSON(http.StatusOK, response.Contacts{
		Success:  true,
		Message:  fmt.Sprintf("%d contacts synchronisés", len(contacts)),
		Count:    len(contacts),
		Contacts: contacts,
	})
}

// HandleAddClient godoc
// @Summary      Create a Google contact
// @Tags         google
// @Accept       json
// @Produce      json
// @Param        request  body      request.ContactRequest  true  "request body"
// @Success      200      {object}  response.ContactAdded
// @Failure      400      {object}  response.Err
// @Router       /api/v1/google/contacts/add-client [post]
// @Security BearerAuth
func (h *GoogleHandler) HandleAddClient(ctx *gin.Context) {
	var req request.ContactRequest
	if !bindJSON(ctx, &req) {
		return
	}

	id := h.integration.AddContact(ctx.Request.Context(), req.ToContact())
	if id == "" {
		ctx.JSON(http.StatusOK, response.ContactAdded{Message: "Échec de l'ajout du client"})
		return
	}

	ctx.JSON(http.StatusOK, response.ContactAdded{
		Success:   true,
		Message:   "Client ajouté aux contacts Google",
		ContactID: id,
	})
}

// HandleReload godoc
// @Summary      Reload the stored configuration
// @Tags         google
// @Produce      json
// @Success      200  {object}  response.Mutation
// @Router       /api/v1/google/config/reload [post]
// @Security BearerAuth
func (h *GoogleHandler) HandleReload(ctx *gin.Context) {
	ok := h.integration.Reload(ctx.Request.Context())
	renderSent(ctx, ok, "Configuration rechargée", "Échec du rechargement de la configuration")
}

// HandleStartAutoSync godoc
// @Summary      Start the periodic Google pulls
// @Tags         google
// @Produce      json
// @Success      200  {object}  response.Mutation
// @Failure      400  {object}  response.Err
// @Router       /api/v1/google/sync/start-auto [post]
// @Security BearerAuth
func (h *GoogleHandler) HandleStartAutoSync(ctx *gin.Context) {
	if !h.integration.StartAutoSync() {
		response.RenderErr(ctx, response.ErrServiceUnavailable(errNotInitialized))
		return
	}

	ctx.JSON(http.StatusOK, response.OK("Synchronisation automatique démarrée"))
}

// HandleStopAutoSync godoc
// @Summary      Stop the periodic Google pulls
// @Tags         google
// @Produce      json
// @Success      200  {object}  response.Mutation
// @Router       /api/v1/google/sync/stop-auto [post]
// @Security BearerAuth
func (h *GoogleHandler) HandleStopAutoSync(ctx *gin.Context) {
	h.integration.StopAutoSync()

	ctx.JSON(http.StatusOK, response.OK("Synchronisation automatique arrêtée"))
}

// HandleTestConnection godoc
// @Summary      Ping each Google API
// @Tags         google
// @Produce      json
// @Success      200  {object}  response.Connection
// @Failure      400  {object}  response.Err
// @Router       /api/v1/google/test-connection [get]
// @Security BearerAuth
func (h *GoogleHandler) HandleTestConnection(ctx *gin.Context) {
	if !h.integration.Initialize(ctx.Request.Context()) {
		response.RenderErr(ctx, response.ErrServiceUnavailable(errNotInitialized))
		return
	}

	ctx.JSON(http.StatusOK, response.Connection{
		Success: true,
		Message: "Tests de connectivité terminés",
		Tests:   h.integration.TestConnection(ctx.Request.Context()),
	})
}

// HandleAuthorizationURL godoc
// @Summary      Consent URL for the stored client
// @Tags         google
// @Produce      json
// @Success      200  {object}  response.AuthURL
// @Failure      400  {object}  response.Err
// @Router       /api/v1/google/oauth/url [get]
// @Security BearerAuth
func (h *GoogleHandler) HandleAuthorizationURL(ctx *gin.Context) {
	url, err := h.integration.AuthorizationURL(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, google.ErrNotConfigured) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleAuthorizationURL -> h.integration.AuthorizationURL -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.AuthURL{Success: true, Message: "URL d'autorisation générée", AuthURL: url})
}

// HandleOAuthCallback godoc
// @Summary      OAuth2 redirect target
// @Description  Trades the code for tokens and stores them on the configuration.
// @Tags         google
// @Produce      json
// @Param        code   query     string  true   "authorization code"
// @Param        state  query     string  false  "state issued with the consent URL"
// @Success      200    {object}  response.Mutation
// @Failure      400    {object}  response.Err
// @Router       /api/v1/google/oauth/callback [get]
func (h *GoogleHandler) HandleOAuthCallback(ctx *gin.Context) {
	code := ctx.Query("code")
	if code == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("le paramètre code est requis")))
		return
	}

	err := h.integration.ExchangeCode(ctx.Request.Context(), code, ctx.Query("state"))
	if err != nil {
		if errors.Is(err, google.ErrNotConfigured) || errors.Is(err, google.ErrInvalidState) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleOAuthCallback -> h.integration.ExchangeCode -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.integration.Reload(ctx.Request.Context())

	ctx.JSON(http.StatusOK, response.OK("Autorisation Google enregistrée"))
}
