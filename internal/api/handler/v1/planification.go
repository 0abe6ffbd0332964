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

type PlanificationService interface {
	List(ctx context.Context) ([]domain.Planification, error)
	Get(ctx context.Context, id uint) (domain.Planification, error)
	ListByTechnicien(ctx context.Context, technicienID uint) ([]domain.Planification, error)
	ListByStatut(ctx context.Context, statut domain.StatutPlanification) ([]domain.Planification, error)
	Create(ctx context.Context, p domain.Planification) (domain.Planification, error)
	Update(ctx context.Context, id uint, p domain.Planification) (domain.Planification, error)
	Delete(ctx context.Context, id uint) error
	Terminer(ctx context.Context, id uint) (domain.Planification, error)
	SyncAllToCalendar(ctx context.Context) (int, error)
	SendReminders(ctx context.Context) (int, error)
}

type PlanificationHandler struct {
	svc PlanificationService
}

func NewPlanificationHandler(svc PlanificationService) *PlanificationHandler {
	return &PlanificationHandler{
		svc: svc,
	}
}

// HandleListPlanifications godoc
// @Summary      List planifications
// @Tags         planifications
// @Produce      json
// @Success      200  {array}   domain.Planification
// @Router       /api/v1/planifications [get]
// @Security BearerAuth
func (h *PlanificationHandler) HandleListPlanifications(ctx *gin.Context) {
	planifications, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListPlanifications -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, planifications)
}

// HandleGetPlanification godoc
// @Summary      Get a planification
// @Tags         planifications
// @Produce      json
// @Param        id   path      int  true  "planification ID"
// @Success      200  {object}  domain.Planification
// @Failure      404  {object}  response.Err
// @Router       /api/v1/planifications/{id} [get]
// @Security BearerAuth
func (h *PlanificationHandler) HandleGetPlanification(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	p, ok := h.find(ctx, id)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// HandleListByTechnicien godoc
// @Summary      List the planifications of a technicien
// @Tags         planifications
// @Produce      json
// @Param        id   path      int  true  "technicien ID"
// @Success      200  {array}   domain.Planification
// @Router       /api/v1/planifications/technicien/{id} [get]
// @Security BearerAuth
func (h *PlanificationHandler) HandleListByTechnicien(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	planifications, err := h.svc.ListByTechnicien(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("v1.HandleListByTechnicien -> h.svc.ListByTechnicien -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, planifications)
}

// HandleListByStatut godoc
// @Summary      List planifications with one statut
// @Tags         planifications
// @Produce      json
// @Param        statut  path      string  true  "statut"
// @Success      200     {array}   domain.Planification
// @Failure      400     {object}  response.Err
// @Router       /api/v1/planifications/statut/{statut} [get]
// @Security BearerAuth
func (h *PlanificationHandler) HandleListByStatut(ctx *gin.Context) {
	statut, ok := domain.ParseStatutPlanification(ctx.Param("statut"))
	if !ok {
		err := fmt.Errorf("statut de planification invalide: %q", ctx.Param("statut"))
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	planifications, err := h.svc.ListByStatut(ctx.Request.Context(), statut)
	if err != nil {
		err = fmt.Errorf("v1.HandleListByStatut -> h.svc.ListByStatut -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, planifications)
}

// HandleCreatePlanification godoc
// @Summary      Create a planification
// @Description  Synced to Google Calendar in the background when available.
// @Tags         planifications
// @Accept       json
// @Produce      json
// @Param        request  body      request.PlanificationRequest  true  "request body"
// @Success      201      {object}  response.Mutation
// @Failure      400      {object}  response.Err
// @Router       /api/v1/planifications [post]
// @Security BearerAuth
func (h *PlanificationHandler) HandleCreatePlanification(ctx *gin.Context) {
	var req request.PlanificationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	p, err := h.svc.Create(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		renderReferenceErr(ctx, fmt.Errorf("v1.HandleCreatePlanification -> h.svc.Create -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, response.Created("Planification créée avec succès", p.ID))
}

// HandleUpdatePlanification godoc
// @Summary      Update a planification
// @Tags         planifications
// @Accept       json
// @Produce      json
// @Param        id       path      int                           true  "planification ID"
// @Param        request  body      request.PlanificationRequest  true  "request body"
// @Success      200      {object}  response.Mutation
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /api/v1/planifications/{id} [put]
// @Security BearerAuth
func (h *PlanificationHandler) HandleUpdatePlanification(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if _, ok = h.find(ctx, id); !ok {
		return
	}

	var req request.PlanificationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	p, err := h.svc.Update(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		if errors.Is(err, service.ErrPlanificationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("planification", "id", id))
			return
		}

		renderReferenceErr(ctx, fmt.Errorf("v1.HandleUpdatePlanification -> h.svc.Update -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.Created("Planification mise à jour avec succès", p.ID))
}

// renderReferenceErr maps unknown technicien or vehicule references to 400.
func renderReferenceErr(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTechnicienNotFound):
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("technicien introuvable")))
	case errors.Is(err, service.ErrVehiculeInconnu):
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("véhicule introuvable")))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

// HandleDeletePlanification godoc
// @Summary      Delete a planification
// @Tags         planifications
// @Produce      json
// @Param        id   path      int  true  "planification ID"
// @Success      200  {object}  response.Mutation
// @Failure      404  {object}  response.Err
// @Router       /api/v1/planifications/{id} [delete]
// @Security BearerAuth
func (h *PlanificationHandler) HandleDeletePlanification(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPlanificationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("planification", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeletePlanification -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.OK("Planification supprimée avec succès"))
}

// HandleTerminer godoc
// @Summary      Close a planification
// @Tags         planifications
// @Produce      json
// @Param        id   path      int  true  "planification ID"
// @Success      200  {object}  domain.Planification
// @Failure      404  {object}  response.Err
// @Router       /api/v1/planifications/{id}/terminer [put]
// @Security BearerAuth
func (h *PlanificationHandler) HandleTerminer(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	p, err := h.svc.Terminer(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPlanificationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("planification", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleTerminer -> h.svc.Terminer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// HandleSyncGoogleCalendar godoc
// @Summary      Push every planification to Google Calendar
// @Tags         planifications
// @Produce      json
// @Success      200  {object}  response.Synced
// @Failure      400  {object}  response.Err
// @Router       /api/v1/planifications/sync-google-calendar [post]
// @Security BearerAuth
func (h *PlanificationHandler) HandleSyncGoogleCalendar(ctx *gin.Context) {
	synced, err := h.svc.SyncAllToCalendar(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrGoogleUnavailable) {
			response.RenderErr(ctx, response.ErrServiceUnavailable("Google Calendar non disponible"))
			return
		}

		err = fmt.Errorf("v1.HandleSyncGoogleCalendar -> h.svc.SyncAllToCalendar -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Synced{
		Success: true,
		Message: fmt.Sprintf("%d planifications synchronisées avec Google Calendar", synced),
		Count:   synced,
	})
}

// HandleSendReminders godoc
// @Summary      Email tomorrow's clients
// @Tags         planifications
// @Produce      json
// @Success      200  {object}  response.Synced
// @Failure      400  {object}  response.Err
// @Router       /api/v1/planifications/send-reminders [post]
// @Security BearerAuth
func (h *PlanificationHandler) HandleSendReminders(ctx *gin.Context) {
	sent, err := h.svc.SendReminders(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrGoogleUnavailable) {
			response.RenderErr(ctx, response.ErrServiceUnavailable("Gmail non disponible"))
			return
		}

		err = fmt.Errorf("v1.HandleSendReminders -> h.svc.SendReminders -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Synced{
		Success: true,
		Message: fmt.Sprintf("%d rappels envoyés", sent),
		Count:   sent,
	})
}

func (h *PlanificationHandler) find(ctx *gin.Context, id uint) (domain.Planification, bool) {
	p, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPlanificationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("planification", "id", id))
			return domain.Planification{}, false
		}

		err = fmt.Errorf("v1.find -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return domain.Planification{}, false
	}

	return p, true
}
