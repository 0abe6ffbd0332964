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

type VehiculeService interface {
	List(ctx context.Context, filter service.VehiculeFilter, number, size int) (domain.Page[domain.Vehicule], error)
	Get(ctx context.Context, id uint) (domain.Vehicule, error)
	Create(ctx context.Context, v domain.Vehicule) (domain.Vehicule, error)
	Update(ctx context.Context, id uint, v domain.Vehicule) (domain.Vehicule, error)
	UpdateKilometrage(ctx context.Context, id uint, kilometrage int) (domain.Vehicule, error)
	UpdateStatut(ctx context.Context, id uint, statut domain.StatutVehicule) (domain.Vehicule, error)
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (domain.VehiculeStats, error)
}

type VehiculeHandler struct {
	svc VehiculeService
}

func NewVehiculeHandler(svc VehiculeService) *VehiculeHandler {
	return &VehiculeHandler{
		svc: svc,
	}
}

// HandleListVehicules godoc
// @Summary      List vehicules, one page at a time
// @Tags         vehicules
// @Produce      json
// @Param        page    query     int     false  "zero-based page"  default(0)
// @Param        size    query     int     false  "page size"        default(20)
// @Param        search  query     string  false  "matches immatriculation, marque or modele"
// @Success      200     {object}  domain.Page[domain.Vehicule]
// @Failure      400     {object}  response.Err
// @Router       /api/vehicules [get]
// @Security BearerAuth
func (h *VehiculeHandler) HandleListVehicules(ctx *gin.Context) {
	h.renderPage(ctx, service.VehiculeFilter{Search: ctx.Query("search")})
}

// HandleListByStatut godoc
// @Summary      List vehicules with one statut
// @Tags         vehicules
// @Produce      json
// @Param        statut  path      string  true   "DISPONIBLE, EN_SERVICE, MAINTENANCE or HORS_SERVICE"
// @Param        page    query     int     false  "zero-based page"
// @Param        size    query     int     false  "page size"
// @Success      200     {object}  domain.Page[domain.Vehicule]
// @Failure      400     {object}  response.Err
// @Router       /api/vehicules/statut/{statut} [get]
// @Security BearerAuth
func (h *VehiculeHandler) HandleListByStatut(ctx *gin.Context) {
	statut, ok := domain.ParseStatutVehicule(ctx.Param("statut"))
	if !ok {
		err := fmt.Errorf("statut de véhicule invalide: %q", ctx.Param("statut"))
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	h.renderPage(ctx, service.VehiculeFilter{Statut: string(statut)})
}

// HandleListByType godoc
// @Summary      List vehicules of one type
// @Tags         vehicules
// @Produce      json
// @Param        type  path      string  true   "VL, PL, SPL, REMORQUE or SCENE_MOBILE"
// @Param        page  query     int     false  "zero-based page"
// @Param        size  query     int     false  "page size"
// @Success      200   {object}  domain.Page[domain.Vehicule]
// @Failure      400   {object}  response.Err
// @Router       /api/vehicules/type/{type} [get]
// @Security BearerAuth
func (h *VehiculeHandler) HandleListByType(ctx *gin.Context) {
	t, ok := domain.ParseTypeVehicule(ctx.Param("type"))
	if !ok {
		err := fmt.Errorf("type de véhicule invalide: %q", ctx.Param("type"))
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	h.renderPage(ctx, service.VehiculeFilter{TypeVehicule: string(t)})
}

func (h *VehiculeHandler) renderPage(ctx *gin.Context, filter service.VehiculeFilter) {
	number, err := queryInt(ctx, "page", 0)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	size, err := queryInt(ctx, "size", service.DefaultPageSize)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	page, err := h.svc.List(ctx.Request.Context(), filter, number, size)
	if err != nil {
		err = fmt.Errorf("v1.renderPage -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, page)
}

// HandleGetVehicule godoc
// @Summary      Get a vehicule
// @Tags         vehicules
// @Produce      json
// @Param        id   path      int  true  "vehicule ID"
// @Success      200  {object}  domain.Vehicule
// @Failure      404  {object}  response.Err
// @Router       /api/vehicules/{id} [get]
// @Security BearerAuth
func (h *VehiculeHandler) HandleGetVehicule(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	v, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		h.renderErr(ctx, id, fmt.Errorf("v1.HandleGetVehicule -> h.svc.Get -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, v)
}

// HandleCreateVehicule godoc
// @Summary      Create a vehicule
// @Tags         vehicules
// @Accept       json
// @Produce      json
// @Param        request  body      request.VehiculeRequest  true  "request body"
// @Success      201      {object}  domain.Vehicule
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /api/vehicules [post]
// @Security BearerAuth
func (h *VehiculeHandler) HandleCreateVehicule(ctx *gin.Context) {
	var req request.VehiculeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	v, err := h.svc.Create(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		h.renderErr(ctx, 0, fmt.Errorf("v1.HandleCreateVehicule -> h.svc.Create -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, v)
}

// HandleUpdateVehicule godoc
// @Summary      Update a vehicule
// @Tags         vehicules
// @Accept       json
// @Produce      json
// @Param        id       path      int                      true  "vehicule ID"
// @Param        request  body      request.VehiculeRequest  true  "request body"
// @Success      200      {object}  domain.Vehicule
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /api/vehicules/{id} [put]
// @Security BearerAuth
func (h *VehiculeHandler) HandleUpdateVehicule(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if _, err := h.svc.Get(ctx.Request.Context(), id); err != nil {
		h.renderErr(ctx, id, fmt.Errorf("v1.HandleUpdateVehicule -> h.svc.Get -> %w", err))
		return
	}

	var req request.VehiculeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	v, err := h.svc.Update(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		h.renderErr(ctx, id, fmt.Errorf("v1.HandleUpdateVehicule -> h.svc.Update -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, v)
}

// HandleUpdateKilometrage godoc
// @Summary      Set the odometer of a vehicule
// @Tags         vehicules
// @Produce      json
// @Param        id           path      int  true  "vehicule ID"
// @Param        kilometrage  query     int  true  "new reading"
// @Success      200          {object}  domain.Vehicule
// @Failure      400          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Router       /api/vehicules/{id}/kilometrage [patch]
// @Security BearerAuth
func (h *VehiculeHandler) HandleUpdateKilometrage(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	km, err := queryInt(ctx, "kilometrage", -1)
	if err != nil || km < 0 {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("le kilométrage doit être un entier positif")))
		return
	}

	v, err := h.svc.UpdateKilometrage(ctx.Request.Context(), id, km)
	if err != nil {
		h.renderErr(ctx, id, fmt.Errorf("v1.HandleUpdateKilometrage -> h.svc.UpdateKilometrage -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, v)
}

// HandleUpdateStatut godoc
// @Summary      Set the statut of a vehicule
// @Tags         vehicules
// @Produce      json
// @Param        id      path      int     true  "vehicule ID"
// @Param        statut  query     string  true  "new statut"
// @Success      200     {object}  domain.Vehicule
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Router       /api/vehicules/{id}/statut [patch]
// @Security BearerAuth
func (h *VehiculeHandler) HandleUpdateStatut(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	statut, ok := domain.ParseStatutVehicule(ctx.Query("statut"))
	if !ok {
		err := fmt.Errorf("statut de véhicule invalide: %q", ctx.Query("statut"))
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	v, err := h.svc.UpdateStatut(ctx.Request.Context(), id, statut)
	if err != nil {
		h.renderErr(ctx, id, fmt.Errorf("v1.HandleUpdateStatut -> h.svc.UpdateStatut -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, v)
}

// HandleDeleteVehicule godoc
// @Summary      Delete a vehicule
// @Tags         vehicules
// @Param        id   path      int  true  "vehicule ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Router       /api/vehicules/{id} [delete]
// @Security BearerAuth
func (h *VehiculeHandler) HandleDeleteVehicule(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		h.renderErr(ctx, id, fmt.Errorf("v1.HandleDeleteVehicule -> h.svc.Delete -> %w", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleVehiculeStats godoc
// @Summary      Vehicule counters
// @Tags         vehicules
// @Produce      json
// @Success      200  {object}  domain.VehiculeStats
// @Router       /api/vehicules/stats [get]
// @Security BearerAuth
func (h *VehiculeHandler) HandleVehiculeStats(ctx *gin.Context) {
	stats, err := h.svc.Stats(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleVehiculeStats -> h.svc.Stats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

func (h *VehiculeHandler) renderErr(ctx *gin.Context, id uint, err error) {
	switch {
	case errors.Is(err, service.ErrVehiculeNotFound):
		response.RenderErr(ctx, response.ErrNotFound("vehicule", "id", id))
	case errors.Is(err, service.ErrImmatriculationExists):
		response.RenderErr(ctx, response.ErrConflict(errors.New("cette immatriculation existe déjà")))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
