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
	"github.com/magscene/magsav-api/internal/service"
)

type CommandeService interface {
	List(ctx context.Context) ([]domain.Commande, error)
	Get(ctx context.Context, id uint) (domain.Commande, error)
	ListByStatut(ctx context.Context, statut domain.StatutCommande) ([]domain.Commande, error)
	ListByFournisseur(ctx context.Context, fournisseurID uint) ([]domain.Commande, error)
	Create(ctx context.Context, commande domain.Commande) (domain.Commande, error)
	Update(ctx context.Context, id uint, commande domain.Commande) (domain.Commande, error)
	UpdateStatut(ctx context.Context, id uint, statut domain.StatutCommande) (domain.Commande, error)
	Delete(ctx context.Context, id uint) error
	SendConfirmation(ctx context.Context, id uint) error
	Stats(ctx context.Context) (domain.CommandeStats, error)
}

type CommandeHandler struct {
	svc CommandeService
}

func NewCommandeHandler(svc CommandeService) *CommandeHandler {
	return &CommandeHandler{
		svc: svc,
	}
}

// HandleListCommandes godoc
// @Summary      List commandes
// @Tags         commandes
// @Produce      json
// @Success      200  {array}   domain.Commande
// @Failure      500  {object}  response.Err
// @Router       /api/v1/commandes [get]
// @Security BearerAuth
func (h *CommandeHandler) HandleListCommandes(ctx *gin.Context) {
	commandes, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListCommandes -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, commandes)
}

// HandleGetCommande godoc
// @Summary      Get a commande with its lignes
// @Tags         commandes
// @Produce      json
// @Param        id   path      int  true  "commande ID"
// @Success      200  {object}  domain.Commande
// @Failure      404  {object}  response.Err
// @Router       /api/v1/commandes/{id} [get]
// @Security BearerAuth
func (h *CommandeHandler) HandleGetCommande(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	commande, ok := h.find(ctx, id)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, commande)
}

// HandleListByStatut godoc
// @Summary      List commandes with one statut
// @Tags         commandes
// @Produce      json
// @Param        statut  path      string  true  "statut"
// @Success      200     {array}   domain.Commande
// @Failure      400     {object}  response.Err
// @Router       /api/v1/commandes/statut/{statut} [get]
// @Security BearerAuth
func (h *CommandeHandler) HandleListByStatut(ctx *gin.Context) {
	statut, ok := domain.ParseStatutCommande(ctx.Param("statut"))
	if !ok {
		err := fmt.Errorf("statut de commande invalide: %q", ctx.Param("statut"))
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	commandes, err := h.svc.ListByStatut(ctx.Request.Context(), statut)
	if err != nil {
		err = fmt.Errorf("v1.HandleListByStatut -> h.svc.ListByStatut -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, commandes)
}

// HandleListByFournisseur godoc
// @Summary      List the commandes of a fournisseur
// @Tags         commandes
// @Produce      json
// @Param        id   path      int  true  "fournisseur ID"
// @Success      200  {array}   domain.Commande
// @Router       /api/v1/commandes/fournisseur/{id} [get]
// @Security BearerAuth
func (h *CommandeHandler) HandleListByFournisseur(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	commandes, err := h.svc.ListByFournisseur(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("v1.HandleListByFournisseur -> h.svc.ListByFournisseur -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, commandes)
}

// HandleCreateCommande godoc
// @Summary      Create a commande
// @Description  numero_commande is generated when blank. Totals are computed from the lignes.
// @Tags         commandes
// @Accept       json
// @Produce      json
// @Param        request  body      request.CommandeRequest  true  "request body"
// @Success      201      {object}  response.Mutation
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /api/v1/commandes [post]
// @Security BearerAuth
func (h *CommandeHandler) HandleCreateCommande(ctx *gin.Context) {
	var req request.CommandeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	commande, err := h.svc.Create(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		h.renderSaveErr(ctx, fmt.Errorf("v1.HandleCreateCommande -> h.svc.Create -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, response.Created("Commande créée avec succès", commande.ID))
}

// HandleUpdateCommande godoc
// @Summary      Update a commande
// @Tags         commandes
// @Accept       json
// @Produce      json
// @Param        id       path      int                      true  "commande ID"
// @Param        request  body      request.CommandeRequest  true  "request body"
// @Success      200      {object}  response.Mutation
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /api/v1/commandes/{id} [put]
// @Security BearerAuth
func (h *CommandeHandler) HandleUpdateCommande(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if _, ok = h.find(ctx, id); !ok {
		return
	}

	var req request.CommandeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	commande, err := h.svc.Update(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		if errors.Is(err, service.ErrCommandeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("commande", "id", id))
			return
		}

		h.renderSaveErr(ctx, fmt.Errorf("v1.HandleUpdateCommande -> h.svc.Update -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.Created("Commande mise à jour avec succès", commande.ID))
}

func (h *CommandeHandler) renderSaveErr(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFournisseurNotFound):
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("fournisseur introuvable")))
	case errors.Is(err, service.ErrNumeroCommandeExists):
		response.RenderErr(ctx, response.ErrConflict(errors.New("ce numéro de commande existe déjà")))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

// HandleUpdateStatut godoc
// @Summary      Change the statut of a commande
// @Tags         commandes
// @Accept       json
// @Produce      json
// @Param        id       path      int                    true  "commande ID"
// @Param        request  body      request.StatutRequest  true  "request body"
// @Success      200      {object}  response.StatutCommande
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /api/v1/commandes/{id}/statut [put]
// @Security BearerAuth
func (h *CommandeHandler) HandleUpdateStatut(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req request.StatutRequest
	if !bindJSON(ctx, &req) {
		return
	}
	statut, _ := domain.ParseStatutCommande(req.Statut)

	commande, err := h.svc.UpdateStatut(ctx.Request.Context(), id, statut)
	if err != nil {
		if errors.Is(err, service.ErrCommandeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("commande", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateStatut -> h.svc.UpdateStatut -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.StatutCommande{
		Success:       true,
		Message:       "Statut mis à jour avec succès",
		NouveauStatut: commande.Statut,
	})
}

// HandleDeleteCommande godoc
// @Summary      Delete a commande and its lignes
// @Tags         commandes
// @Produce      json
// @Param        id   path      int  true  "commande ID"
// @Success      200  {object}  response.Mutation
// @Failure      404  {object}  response.Err
// @Router       /api/v1/commandes/{id} [delete]
// @Security BearerAuth
func (h *CommandeHandler) HandleDeleteCommande(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrCommandeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("commande", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteCommande -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.OK("Commande supprimée avec succès"))
}

// HandleSendConfirmation godoc
// @Summary      Email the order confirmation to the fournisseur
// @Tags         commandes
// @Produce      json
// @Param        id   path      int  true  "commande ID"
// @Success      200  {object}  response.Mutation
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /api/v1/commandes/{id}/send-confirmation [post]
// @Security BearerAuth
func (h *CommandeHandler) HandleSendConfirmation(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	err := h.svc.SendConfirmation(ctx.Request.Context(), id)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, response.OK("Confirmation de commande envoyée"))
	case errors.Is(err, service.ErrCommandeNotFound):
		response.RenderErr(ctx, response.ErrNotFound("commande", "id", id))
	case errors.Is(err, service.ErrGoogleUnavailable):
		response.RenderErr(ctx, response.ErrServiceUnavailable("Gmail non disponible"))
	case errors.Is(err, service.ErrEmailMissing):
		response.RenderErr(ctx, response.ErrServiceUnavailable("Email du fournisseur manquant"))
	case errors.Is(err, service.ErrGoogleOperationFailed):
		ctx.JSON(http.StatusOK, response.Failed("Erreur lors de l'envoi de la confirmation"))
	default:
		err = fmt.Errorf("v1.HandleSendConfirmation -> h.svc.SendConfirmation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

// HandleCommandeStats godoc
// @Summary      Commande counters
// @Tags         commandes
// @Produce      json
// @Success      200  {object}  domain.CommandeStats
// @Router       /api/v1/commandes/stats [get]
// @Security BearerAuth
func (h *CommandeHandler) HandleCommandeStats(ctx *gin.Context) {
	stats, err := h.svc.Stats(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleCommandeStats -> h.svc.Stats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

func (h *CommandeHandler) find(ctx *gin.Context, id uint) (domain.Commande, bool) {
	commande, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCommandeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("commande", "id", id))
			return domain.Commande{}, false
		}

		err = fmt.Errorf("v1.find -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return domain.Commande{}, false
	}

	return commande, true
}
