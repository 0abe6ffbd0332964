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

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Roots(ctx context.Context) ([]domain.Category, error)
	Active(ctx context.Context) ([]domain.Category, error)
	Search(ctx context.Context, q string) ([]domain.Category, error)
	WithCounts(ctx context.Context) ([]domain.CategoryWithCount, error)
	Get(ctx context.Context, id uint) (domain.Category, error)
	Children(ctx context.Context, id uint) ([]domain.Category, error)
	Path(ctx context.Context, id uint) (string, error)
	Stats(ctx context.Context, id uint) (domain.CategoryStats, error)
	Create(ctx context.Context, c domain.Category) (domain.Category, error)
	Update(ctx context.Context, id uint, c domain.Category) (domain.Category, error)
	Move(ctx context.Context, id uint, parentID *uint) (domain.Category, error)
	ToggleStatus(ctx context.Context, id uint) (domain.Category, error)
	Delete(ctx context.Context, id uint) error
}

type SpecialiteService interface {
	List(ctx context.Context) ([]string, error)
	Set(ctx context.Context, specialites []string) ([]string, error)
}

// CategoryHandler serves the equipment category tree and the technicien
// specialties list.
type CategoryHandler struct {
	svc         CategoryService
	specialites SpecialiteService
}

func NewCategoryHandler(svc CategoryService, specialites SpecialiteService) *CategoryHandler {
	return &CategoryHandler{
		svc:         svc,
		specialites: specialites,
	}
}

// HandleListCategories godoc
// @Summary      List every category
// @Tags         categories
// @Produce      json
// @Success      200  {array}  domain.Category
// @Router       /api/v1/categories [get]
// @Security BearerAuth
func (h *CategoryHandler) HandleListCategories(ctx *gin.Context) {
	h.renderList(ctx, "v1.HandleListCategories -> h.svc.List", h.svc.List)
}

// HandleListRoots godoc
// @Summary      List the root categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  domain.Category
// @Router       /api/v1/categories/root [get]
// @Security BearerAuth
func (h *CategoryHandler) HandleListRoots(ctx *gin.Context) {
	h.renderList(ctx, "v1.HandleListRoots -> h.svc.Roots", h.svc.Roots)
}

// HandleListActive godoc
// @Summary      List the active categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  domain.Category
// @Router       /api/v1/categories/active [get]
// @Security BearerAuth
func (h *CategoryHandler) HandleListActive(ctx *gin.Context) {
	h.renderList(ctx, "v1.HandleListActive -> h.svc.Active", h.svc.Active)
}

// HandleSearchCategories godoc
// @Summary      Search categories by name or description
// @Tags         categories
// @Produce      json
// @Param        q    query     string  true  "searched text"
// @Success      200  {array}   domain.Category
// @Failure      400  {object}  response.Err
// @Router       /api/v1/categories/search [get]
// @Security BearerAuth
func (h *CategoryHandler) HandleSearchCategories(ctx *gin.Context) {
	q := strings.TrimSpace(ctx.Query("q"))
	if q == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("le paramètre q est requis")))
		return
	}

	categories, err := h.svc.Search(ctx.Request.Context(), q)
	if err != nil {
		err = fmt.Errorf("v1.HandleSearchCategories -> h.svc.Search -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// HandleListWithCounts godoc
// @Summary      List categories with their number of sub-categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  domain.CategoryWithCount
// @Router       /api/v1/categories/with-counts [get]
// @Security BearerAuth
func (h *CategoryHandler) HandleListWithCounts(ctx *gin.Context) {
	counts, err := h.svc.WithCounts(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListWithCounts -> h.svc.WithCounts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, counts)
}

// HandleGetCategory godoc
// @Summary      Get a category
// @Tags         categories
// @Produce      json
// @Param        id   path      int  true  "category ID"
// @Success      200  {object}  domain.Category
// @Failure      404  {object}  response.Err
// @Router       /api/v1/categories/{id} [get]
// @Security BearerAuth
func (h *CategoryHandler) HandleGetCategory(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	c, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		h.renderErr(ctx, id, fmt.Errorf("v1.HandleGetCategory -> h.svc.Get -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, c)
}

// HandleListChildren godoc
// @Summary      List the direct sub-categories
// @Tags         categories
// @Produce      json
// @Param        id   path      int  true  "category ID"
// @Success      200  {array}   domain.Category
// @Failure      404  {object}  response.Err
// @Router       /api/v1/categories/{id}/children [get]
// @Security BearerAuth
func (h *CategoryHandler) HandleListChildren(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	children, err := h.svc.Children(ctx.Request.Context(), id)
	if err != nil {
		h.renderErr(ctx, id, fmt.Errorf("v1.HandleListChildren -> h.svc.Children -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, children)
}

// HandleCategoryPath godoc
// @Summary      Get the full path of a category
// @Tags         categories
// @Produce      json
// @Param        id   path      int  true  "category ID"
// @Success      200  {object}  response.CategoryPath
// @Failure      404  {object}  response.Err
// @Router       /api/v1/categories/{id}/path [get]
// @Security BearerAuth
func (h *CategoryHandler) HandleCategoryPath(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	path, err := h.svc.Path(ctx.Request.Context(), id)
	if err != nil {
		h.renderErr(ctx, id, fmt.Errorf("v1.HandleCategoryPath -> h.svc.Path -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.CategoryPath{ID: id, Path: path})
}

// HandleCategoryStats godoc
// @Summary      Get the sub-tree statistics of a category
// @Tags         categories
// @Produce      json
// @Param        id   path      int  true  "category ID"
// @Success      200  {object}  domain.CategoryStats
// @Failure      404  {object}  response.Err
// @Router       /api/v1/categories/{id}/stats [get]
// @Security BearerAuth
func (h *CategoryHandler) HandleCategoryStats(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	stats, err := h.svc.Stats(ctx.Request.Context(), id)
	if err != nil {
		h.renderErr(ctx, id, fmt.Errorf("v1.HandleCategoryStats -> h.svc.Stats -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleCreateCategory godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        request  body      request.CategoryRequest  true  "request body"
// @Success      201      {object}  response.Mutation
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /api/v1/categories [post]
// @Security BearerAuth
func (h *CategoryHandler) HandleCreateCategory(ctx *gin.Context) {
	var req request.CategoryRequest
	if !bindJSON(ctx, &req) {
		return
	}

	c, err := h.svc.Create(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		h.renderErr(ctx, 0, fmt.Errorf("v1.HandleCreateCategory -> h.svc.Create -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, response.Created("Catégorie créée avec succès", c.ID))
}

// HandleUpdateCategory godoc
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id       path      int                      true  "category ID"
// @Param        request  body      request.CategoryRequest  true  "request body"
// @Success      200      {object}  response.Mutation
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /api/v1/categories/{id} [put]
// @Security BearerAuth
func (h *CategoryHandler) HandleUpdateCategory(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if _, err := h.svc.Get(ctx.Request.Context(), id); err != nil {
		h.renderErr(ctx, id, fmt.Errorf("v1.HandleUpdateCategory -> h.svc.Get -> %w", err))
		return
	}

	var req request.CategoryRequest
	if !bindJSON(ctx, &req) {
		return
	}

	c, err := h.svc.Update(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		h.renderErr(ctx, id, fmt.Errorf("v1.HandleUpdateCategory -> h.svc.Update -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.Created("Catégorie mise à jour avec succès", c.ID))
}

// HandleMoveCategory godoc
// @Summary      Move a category under another parent
// @Description  Without parent_id the category becomes a root.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id       path      int                          true  "category ID"
// @Param        request  body      request.MoveCategoryRequest  true  "request body"
// @Success      200      {object}  domain.Category
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /api/v1/categories/{id}/move [put]
// @Security BearerAuth
func (h *CategoryHandler) HandleMoveCategory(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req request.MoveCategoryRequest
	if !bindJSON(ctx, &req) {
		return
	}

	c, err := h.svc.Move(ctx.Request.Context(), id, req.ParentID)
	if err != nil {
		h.renderErr(ctx, id, fmt.Errorf("v1.HandleMoveCategory -> h.svc.Move -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, c)
}

// HandleToggleCategory godoc
// @Summary      Switch a category between active and inactive
// @Tags         categories
// @Produce      json
// @Param        id   path      int  true  "category ID"
// @Success      200  {object}  domain.Category
// @Failure      404  {object}  response.Err
// @Router       /api/v1/categories/{id}/toggle-status [put]
// @Security BearerAuth
func (h *CategoryHandler) HandleToggleCategory(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	c, err := h.svc.ToggleStatus(ctx.Request.Context(), id)
	if err != nil {
		h.renderErr(ctx, id, fmt.Errorf("v1.HandleToggleCategory -> h.svc.ToggleStatus -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, c)
}

// HandleDeleteCategory godoc
// @Summary      Delete a category
// @Description  Refused while the category has sub-categories.
// @Tags         categories
// @Produce      json
// @Param        id   path      int  true  "category ID"
// @Success      200  {object}  response.Mutation
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Router       /api/v1/categories/{id} [delete]
// @Security BearerAuth
func (h *CategoryHandler) HandleDeleteCategory(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		h.renderErr(ctx, id, fmt.Errorf("v1.HandleDeleteCategory -> h.svc.Delete -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.OK("Catégorie supprimée avec succès"))
}

// HandleListSpecialites godoc
// @Summary      List the technicien specialties
// @Tags         categories
// @Produce      json
// @Success      200  {object}  response.Specialites
// @Router       /api/v1/specialites [get]
// @Security BearerAuth
func (h *CategoryHandler) HandleListSpecialites(ctx *gin.Context) {
	specialites, err := h.specialites.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListSpecialites -> h.specialites.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Specialites{Specialites: specialites})
}

// HandleSetSpecialites godoc
// @Summary      Replace the technicien specialties
// @Description  Values are trimmed and duplicates dropped, ignoring case.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        request  body      request.SpecialitesRequest  true  "request body"
// @Success      200      {object}  response.Specialites
// @Failure      400      {object}  response.Err
// @Router       /api/v1/specialites [put]
// @Security BearerAuth
func (h *CategoryHandler) HandleSetSpecialites(ctx *gin.Context) {
	var req request.SpecialitesRequest
	if !bindJSON(ctx, &req) {
		return
	}

	specialites, err := h.specialites.Set(ctx.Request.Context(), req.Specialites)
	if err != nil {
		err = fmt.Errorf("v1.HandleSetSpecialites -> h.specialites.Set -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Specialites{Specialites: specialites})
}

func (h *CategoryHandler) renderList(ctx *gin.Context, op string, list func(context.Context) ([]domain.Category, error)) {
	categories, err := list(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) renderErr(ctx *gin.Context, id uint, err error) {
	switch {
	case errors.Is(err, service.ErrCategoryNotFound):
		response.RenderErr(ctx, response.ErrNotFound("category", "id", id))
	case errors.Is(err, service.ErrCategoryExists):
		response.RenderErr(ctx, response.ErrConflict(errors.New("une catégorie de ce nom existe déjà à cet emplacement")))
	case errors.Is(err, service.ErrCategoryInUse):
		response.RenderErr(ctx, response.ErrConflict(errors.New("cette catégorie a encore des sous-catégories")))
	case errors.Is(err, service.ErrCategoryParent):
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("catégorie parente introuvable")))
	case errors.Is(err, service.ErrCategoryCycle):
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("une catégorie ne peut pas être déplacée sous elle-même")))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
