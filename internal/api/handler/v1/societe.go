package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/magscene/magsav-api/internal/api/handler/v1/request"
	"github.com/magscene/magsav-api/internal/api/handler/v1/response"
	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/service"
)

type SocieteService interface {
	List(ctx context.Context) ([]domain.Societe, error)
	Get(ctx context.Context, id uint) (domain.Societe, error)
	ListByType(ctx context.Context, societeType domain.SocieteType) ([]domain.Societe, error)
	SearchByNom(ctx context.Context, nom string) ([]domain.Societe, error)
	Create(ctx context.Context, societe domain.Societe) (domain.Societe, error)
	Update(ctx context.Context, id uint, societe domain.Societe) (domain.Societe, error)
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (domain.SocieteStats, error)
	SyncGoogleContacts(ctx context.Context) (int, error)
	AddToGoogleContacts(ctx context.Context, id uint) error
}

type SocieteHandler struct {
	svc SocieteService
}

func NewSocieteHandler(svc SocieteService) *SocieteHandler {
	return &SocieteHandler{
		svc: svc,
	}
}

// HandleListSocietes godoc
// @Summary      List sociétés
// @Tags         societes
// @Produce      json
// @Success      200  {array}   domain.Societe
// @Failure      500  {object}  response.Err
// @Router       /api/v1/societes [get]
// @Security BearerAuth
func (h *SocieteHandler) HandleListSocietes(ctx *gin.Context) {
	societes, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListSocietes -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, societes)
}

// HandleGetSociete godoc
// @Summary      Get a société
// @Tags         societes
// @Produce      json
// @Param        id   path      int  true  "société ID"
// @Success      200  {object}  domain.Societe
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /api/v1/societes/{id} [get]
// @Security BearerAuth
func (h *SocieteHandler) HandleGetSociete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	societe, ok := h.find(ctx, id)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, societe)
}

// HandleListByType godoc
// @Summary      List sociétés of one type
// @Tags         societes
// @Produce      json
// @Param        type  path      string  true  "client, fournisseur or manufacturier"
// @Success      200   {array}   domain.Societe
// @Failure      400   {object}  response.Err
// @Router       /api/v1/societes/type/{type} [get]
// @Security BearerAuth
func (h *SocieteHandler) HandleListByType(ctx *gin.Context) {
	t, ok := domain.ParseSocieteType(ctx.Param("type"))
	if !ok {
		err := fmt.Errorf("type de société invalide: %q", ctx.Param("type"))
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	h.renderByType(ctx, t)
}

// HandleListClients godoc
// @Summary      List clients
// @Tags         societes
// @Produce      json
// @Success      200  {array}   domain.Societe
// @Router       /api/v1/societes/clients [get]
// @Security BearerAuth
func (h *SocieteHandler) HandleListClients(ctx *gin.Context) {
	h.renderByType(ctx, domain.SocieteClient)
}

// HandleListFournisseurs godoc
// @Summary      List fournisseurs
// @Tags         societes
// @Produce      json
// @Success      200  {array}   domain.Societe
// @Router       /api/v1/societes/fournisseurs [get]
// @Security BearerAuth
func (h *SocieteHandler) HandleListFournisseurs(ctx *gin.Context) {
	h.renderByType(ctx, domain.SocieteFournisseur)
}

func (h *SocieteHandler) renderByType(ctx *gin.Context, t domain.SocieteType) {
	societes, err := h.svc.ListByType(ctx.Request.Context(), t)
	if err != nil {
		err = fmt.Errorf("v1.renderByType -> h.svc.ListByType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, societes)
}

// HandleSearchSocietes godoc
// @Summary      Search sociétés by name
// @Tags         societes
// @Produce      json
// @Param        nom  query     string  true  "part of the name"
// @Success      200  {array}   domain.Societe
// @Failure      400  {object}  response.Err
// @Router       /api/v1/societes/search [get]
// @Security BearerAuth
func (h *SocieteHandler) HandleSearchSocietes(ctx *gin.Context) {
	nom := strings.TrimSpace(ctx.Query("nom"))
	if nom == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("le paramètre nom est requis")))
		return
	}

	societes, err := h.svc.SearchByNom(ctx.Request.Context(), nom)
	if err != nil {
		err = fmt.Errorf("v1.HandleSearchSocietes -> h.svc.SearchByNom -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, societes)
}

// HandleCreateSociete godoc
// @Summary      Create a société
// @Description  Pushed to Google Contacts in the background when it has an email.
// @Tags         societes
// @Accept       json
// @Produce      json
// @Param        request  body      request.SocieteRequest  true  "request body"
// @Success      201      {object}  response.Mutation
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /api/v1/societes [post]
// @Security BearerAuth
func (h *SocieteHandler) HandleCreateSociete(ctx *gin.Context) {
	var req request.SocieteRequest
	if !bindJSON(ctx, &req) {
		return
	}

	societe, err := h.svc.Create(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateSociete -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.Created("Société créée avec succès", societe.ID))
}

// HandleUpdateSociete godoc
// @Summary      Update a société
// @Tags         societes
// @Accept       json
// @Produce      json
// @Param        id       path      int                     true  "société ID"
// @Param        request  body      request.SocieteRequest  true  "request body"
// @Success      200      {object}  response.Mutation
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /api/v1/societes/{id} [put]
// @Security BearerAuth
func (h *SocieteHandler) HandleUpdateSociete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if _, ok = h.find(ctx, id); !ok {
		return
	}

	var req request.SocieteRequest
	if !bindJSON(ctx, &req) {
		return
	}

	societe, err := h.svc.Update(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		if errors.Is(err, service.ErrSocieteNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("societe", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateSociete -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Created("Société mise à jour avec succès", societe.ID))
}

// HandleDeleteSociete godoc
// @Summary      Delete a société
// @Tags         societes
// @Produce      json
// @Param        id   path      int  true  "société ID"
// @Success      200  {object}  response.Mutation
// @Failure      404  {object}  response.Err
// @Router       /api/v1/societes/{id} [delete]
// @Security BearerAuth
func (h *SocieteHandler) HandleDeleteSociete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrSocieteNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("societe", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteSociete -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.OK("Société supprimée avec succès"))
}

// HandleSocieteStats godoc
// @Summary      Société counters
// @Tags         societes
// @Produce      json
// @Success      200  {object}  domain.SocieteStats
// @Router       /api/v1/societes/stats [get]
// @Security BearerAuth
func (h *SocieteHandler) HandleSocieteStats(ctx *gin.Context) {
	stats, err := h.svc.Stats(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleSocieteStats -> h.svc.Stats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleSyncGoogleContacts godoc
// @Summary      Push every société with an email to Google Contacts
// @Tags         societes
// @Produce      json
// @Success      200  {object}  response.Synced
// @Failure      400  {object}  response.Err
// @Router       /api/v1/societes/sync-google-contacts [post]
// @Security BearerAuth
func (h *SocieteHandler) HandleSyncGoogleContacts(ctx *gin.Context) {
	synced, err := h.svc.SyncGoogleContacts(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrGoogleUnavailable) {
			response.RenderErr(ctx, response.ErrServiceUnavailable("Google Contacts non disponible"))
			return
		}

		err = fmt.Errorf("v1.HandleSyncGoogleContacts -> h.svc.SyncGoogleContacts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Synced{
		Success: true,
		Message: fmt.Sprintf("%d contacts synchronisés avec Google", synced),
		Count:   synced,
	})
}

// HandleAddToGoogleContacts godoc
// @Summary      Push one société to Google Contacts
// @Tags         societes
// @Produce      json
// @Param        id   path      int  true  "société ID"
// @Success      200  {object}  response.Mutation
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /api/v1/societes/{id}/add-to-google-contacts [post]
// @Security BearerAuth
func (h *SocieteHandler) HandleAddToGoogleContacts(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	err := h.svc.AddToGoogleContacts(ctx.Request.Context(), id)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, response.Created("Société ajoutée aux contacts Google", id))
	case errors.Is(err, service.ErrSocieteNotFound):
		response.RenderErr(ctx, response.ErrNotFound("societe", "id", id))
	case errors.Is(err, service.ErrGoogleUnavailable):
		response.RenderErr(ctx, response.ErrServiceUnavailable("Google Contacts non disponible"))
	case errors.Is(err, service.ErrEmailMissing):
		response.RenderErr(ctx, response.ErrServiceUnavailable("Email manquant pour la société"))
	case errors.Is(err, service.ErrGoogleOperationFailed):
		ctx.JSON(http.StatusOK, response.Failed("Erreur lors de l'ajout aux contacts Google"))
	default:
		err = fmt.Errorf("v1.HandleAddToGoogleContacts -> h.svc.AddToGoogleContacts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

func (h *SocieteHandler) find(ctx *gin.Context, id uint) (domain.Societe, bool) {
	societe, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSocieteNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("societe", "id", id))
			return domain.Societe{}, false
		}

		err = fmt.Errorf("v1.find -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return domain.Societe{}, false
	}

	return societe, true
}
