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

type ThemeService interface {
	List() []domain.Theme
	Current(ctx context.Context) (domain.Theme, error)
	SetCurrent(ctx context.Context, id string) (domain.Theme, error)
	ClearCache()
}

type PreferenceService interface {
	Get(ctx context.Context, key string) (domain.Preference, error)
	Set(ctx context.Context, key, value string) (domain.Preference, error)
	Delete(ctx context.Context, key string) error
}

type NavigationService interface {
	Menu() []domain.View
	View(route string) (domain.View, error)
	Clear()
}

// SettingsHandler serves the desktop client settings: themes, preferences
// and the navigation menu.
type SettingsHandler struct {
	themes      ThemeService
	preferences PreferenceService
	navigation  NavigationService
}

func NewSettingsHandler(themes ThemeService, preferences PreferenceService, navigation NavigationService) *SettingsHandler {
	return &SettingsHandler{
		themes:      themes,
		preferences: preferences,
		navigation:  navigation,
	}
}

// HandleListThemes godoc
// @Summary      List the available themes
// @Tags         settings
// @Produce      json
// @Success      200  {array}  domain.Theme
// @Router       /api/v1/themes [get]
// @Security BearerAuth
func (h *SettingsHandler) HandleListThemes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.themes.List())
}

// HandleCurrentTheme godoc
// @Summary      Get the selected theme
// @Tags         settings
// @Produce      json
// @Success      200  {object}  domain.Theme
// @Router       /api/v1/themes/current [get]
// @Security BearerAuth
func (h *SettingsHandler) HandleCurrentTheme(ctx *gin.Context) {
	theme, err := h.themes.Current(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleCurrentTheme -> h.themes.Current -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, theme)
}

// HandleSetCurrentTheme godoc
// @Summary      Select a theme
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        request  body      request.ThemeRequest  true  "request body"
// @Success      200      {object}  domain.Theme
// @Failure      400      {object}  response.Err
// @Router       /api/v1/themes/current [put]
// @Security BearerAuth
func (h *SettingsHandler) HandleSetCurrentTheme(ctx *gin.Context) {
	var req request.ThemeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	theme, err := h.themes.SetCurrent(ctx.Request.Context(), req.ThemeID)
	if err != nil {
		if errors.Is(err, service.ErrThemeNotFound) {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("thème inconnu: %q", req.ThemeID)))
			return
		}

		err = fmt.Errorf("v1.HandleSetCurrentTheme -> h.themes.SetCurrent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, theme)
}

// HandleGetPreference godoc
// @Summary      Get a preference
// @Tags         settings
// @Produce      json
// @Param        key  path      string  true  "preference key"
// @Success      200  {object}  domain.Preference
// @Failure      404  {object}  response.Err
// @Router       /api/v1/preferences/{key} [get]
// @Security BearerAuth
func (h *SettingsHandler) HandleGetPreference(ctx *gin.Context) {
	key := ctx.Param("key")

	p, err := h.preferences.Get(ctx.Request.Context(), key)
	if err != nil {
		if errors.Is(err, service.ErrPreferenceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("preference", "key", key))
			return
		}

		err = fmt.Errorf("v1.HandleGetPreference -> h.preferences.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// HandleSetPreference godoc
// @Summary      Store a preference
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        key      path      string                     true  "preference key"
// @Param        request  body      request.PreferenceRequest  true  "request body"
// @Success      200      {object}  domain.Preference
// @Failure      400      {object}  response.Err
// @Router       /api/v1/preferences/{key} [put]
// @Security BearerAuth
func (h *SettingsHandler) HandleSetPreference(ctx *gin.Context) {
	var req request.PreferenceRequest
	if !bindJSON(ctx, &req) {
		return
	}

	p, err := h.preferences.Set(ctx.Request.Context(), ctx.Param("key"), req.Value)
	if err != nil {
		err = fmt.Errorf("v1.HandleSetPreference -> h.preferences.Set -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// HandleDeletePreference godoc
// @Summary      Delete a preference
// @Tags         settings
// @Param        key  path  string  true  "preference key"
// @Success      204
// @Failure      404  {object}  response.Err
// @Router       /api/v1/preferences/{key} [delete]
// @Security BearerAuth
func (h *SettingsHandler) HandleDeletePreference(ctx *gin.Context) {
	key := ctx.Param("key")

	if err := h.preferences.Delete(ctx.Request.Context(), key); err != nil {
		if errors.Is(err, service.ErrPreferenceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("preference", "key", key))
			return
		}

		err = fmt.Errorf("v1.HandleDeletePreference -> h.preferences.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleNavigation godoc
// @Summary      Desktop client menu
// @Description  The whole menu, or the descriptor of one view when route is given.
// @Tags         settings
// @Produce      json
// @Param        route  query     string  false  "view route"
// @Success      200    {array}   domain.View
// @Failure      404    {object}  response.Err
// @Router       /api/v1/navigation [get]
// @Security BearerAuth
func (h *SettingsHandler) HandleNavigation(ctx *gin.Context) {
	route := ctx.Query("route")
	if route == "" {
		ctx.JSON(http.StatusOK, h.navigation.Menu())
		return
	}

	view, err := h.navigation.View(route)
	if err != nil {
		if errors.Is(err, service.ErrViewNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("view", "route", route))
			return
		}

		err = fmt.Errorf("v1.HandleNavigation -> h.navigation.View -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// HandleClearCache godoc
// @Summary      Drop the cached views and themes
// @Tags         settings
// @Success      204
// @Failure      403  {object}  response.Err
// @Router       /api/v1/navigation/cache [delete]
// @Security BearerAuth
func (h *SettingsHandler) HandleClearCache(ctx *gin.Context) {
	h.navigation.Clear()
	h.themes.ClearCache()

	ctx.Status(http.StatusNoContent)
}
