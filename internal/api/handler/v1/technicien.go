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

type TechnicienService interface {
	List(ctx context.Context) ([]domain.Technicien, error)
	Actifs(ctx context.Context) ([]domain.Technicien, error)
	Get(ctx context.Context, id uint) (domain.Technicien, error)
	Create(ctx context.Context, t domain.Technicien) (domain.Technicien, error)
	Update(ctx context.Context, id uint, t domain.Technicien) (domain.Technicien, error)
	Delete(ctx context.Context, id uint) error
}

type TechnicienHandler struct {
	svc TechnicienService
}

func NewTechnicienHandler(svc TechnicienService) *TechnicienHandler {
	return &TechnicienHandler{
		svc: svc,
	}
}

// HandleListTechniciens godoc
// @Summary      List techniciens
// @Tags         techniciens
// @Produce      json
// @Success      200  {array}  domain.Technicien
// @Router       /api/v1/techniciens [get]
// @Security BearerAuth
func (h *TechnicienHandler) HandleListTechniciens(ctx *gin.Context) {
	techniciens, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListTechniciens -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, techniciens)
}

// HandleListActifs godoc
// @Summary      List the techniciens available for planning
// @Tags         techniciens
// @Produce      json
// @Success      200  {array}  domain.Technicien
// @Router       /api/v1/techniciens/actifs [get]
// @Security BearerAuth
func (h *TechnicienHandler) HandleListActifs(ctx *gin.Context) {
	techniciens, err := h.svc.Actifs(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListActifs -> h.svc.Actifs -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, techniciens)
}

// HandleGetTechnicien godoc
// @Summary      Get a technicien
// @Tags         techniciens
// @Produce      json
// @Param        id   path      int  true  "technicien ID"
// @Success      200  {object}  domain.Technicien
// @Failure      404  {object}  response.Err
// @Router       /api/v1/techniciens/{id} [get]
// @Security BearerAuth
func (h *TechnicienHandler) HandleGetTechnicien(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	t, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		h.renderErr(ctx, id, fmt.Errorf("v1.HandleGetTechnicien -> h.svc.Get -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, t)
}

// HandleCreateTechnicien godoc
// @Summary      Create a technicien
// @Tags         techniciens
// @Accept       json
// @Produce      json
// @Param        request  body      request.TechnicienRequest  true  "request body"
// @Success      201      {object}  response.Mutation
// @Failure      400      {object}  response.Err
// @Router       /api/v1/techniciens [post]
// @Security BearerAuth
func (h *TechnicienHandler) HandleCreateTechnicien(ctx *gin.Context) {
	var req request.TechnicienRequest
	if !bindJSON(ctx, &req) {
		return
	}

	t, err := h.svc.Create(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateTechnicien -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.Created("Technicien créé avec succès", t.ID))
}

// HandleUpdateTechnicien godoc
// @Summary      Update a technicien
// @Tags         techniciens
// @Accept       json
// @Produce      json
// @Param        id       path      int                        true  "technicien ID"
// @Param        request  body      request.TechnicienRequest  true  "request body"
// @Success      200      {object}  response.Mutation
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /api/v1/techniciens/{id} [put]
// @Security BearerAuth
func (h *TechnicienHandler) HandleUpdateTechnicien(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if _, err := h.svc.Get(ctx.Request.Context(), id); err != nil {
		h.renderErr(ctx, id, fmt.Errorf("v1.HandleUpdateTechnicien -> h.svc.Get -> %w", err))
		return
	}

	var req request.TechnicienRequest
	if !bindJSON(ctx, &req) {
		return
	}

	t, err := h.svc.Update(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		h.renderErr(ctx, id, fmt.Errorf("v1.HandleUpdateTechnicien -> h.svc.Update -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.Created("Technicien mis à jour avec succès", t.ID))
}

// HandleDeleteTechnicien godoc
// @Summary      Delete a technicien
// @Description  Refused while planifications still reference the technicien.
// @Tags         techniciens
// @Produce      json
// @Param        id   path      int  true  "technicien ID"
// @Success      200  {object}  response.Mutation
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Router       /api/v1/techniciens/{id} [delete]
// @Security BearerAuth
func (h *TechnicienHandler) HandleDeleteTechnicien(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		h.renderErr(ctx, id, fmt.Errorf("v1.HandleDeleteTechnicien -> h.svc.Delete -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.OK("Technicien supprimé avec succès"))
}

func (h *TechnicienHandler) renderErr(ctx *gin.Context, id uint, err error) {
	switch {
	case errors.Is(err, service.ErrTechnicienNotFound):
		response.RenderErr(ctx, response.ErrNotFound("technicien", "id", id))
	case errors.Is(err, service.ErrTechnicienInUse):
		response.RenderErr(ctx, response.ErrConflict(errors.New("ce technicien a encore des planifications")))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
