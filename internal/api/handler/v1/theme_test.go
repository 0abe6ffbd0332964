package v1

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/service"
)

type fakeThemes struct {
	current string
	clears  int
}

var testThemes = []domain.Theme{
	{ID: "light", Name: "Clair"},
	{ID: "dark", Name: "Sombre", Dark: true},
}

func (f *fakeThemes) List() []domain.Theme { return testThemes }

func (f *fakeThemes) Current(context.Context) (domain.Theme, error) {
	for _, th := range testThemes {
		if th.ID == f.current {
			return th, nil
		}
	}
	return testThemes[0], nil
}

func (f *fakeThemes) ClearCache() { f.clears++ }

func (f *fakeThemes) SetCurrent(_ context.Context, id string) (domain.Theme, error) {
	for _, th := range testThemes {
		if th.ID == id {
			f.current = id
			return th, nil
		}
	}
	return domain.Theme{}, service.ErrThemeNotFound
}

type fakePreferences map[string]string

func (f fakePreferences) Get(_ context.Context, key string) (domain.Preference, error) {
	v, ok := f[key]
	if !ok {
		return domain.Preference{}, service.ErrPreferenceNotFound
	}
	return domain.Preference{Key: key, Value: v}, nil
}

func (f fakePreferences) Set(_ context.Context, key, value string) (domain.Preference, error) {
	f[key] = value
	return domain.Preference{Key: key, Value: value}, nil
}

func (f fakePreferences) Delete(_ context.Context, key string) error {
	if _, ok := f[key]; !ok {
		return service.ErrPreferenceNotFound
	}
	delete(f, key)
	return nil
}

func settingsRouter(themes ThemeService, prefs PreferenceService) *gin.Engine {
	return settingsRouterWith(themes, prefs, service.NewNavigationService())
}

func settingsRouterWith(themes ThemeService, prefs PreferenceService, nav NavigationService) *gin.Engine {
	h := NewSettingsHandler(themes, prefs, nav)
	r := gin.New()
	r.GET("/themes", h.HandleListThemes)
	r.GET("/themes/current", h.HandleCurrentTheme)
	r.PUT("/themes/current", h.HandleSetCurrentTheme)
	r.GET("/preferences/:key", h.HandleGetPreference)
	r.PUT("/preferences/:key", h.HandleSetPreference)
	r.DELETE("/preferences/:key", h.HandleDeletePreference)
	r.GET("/navigation", h.HandleNavigation)
	r.DELETE("/navigation/cache", h.HandleClearCache)

	return r
}

func TestSettingsHandler_Themes(t *testing.T) {
	themes := &fakeThemes{}
	r := settingsRouter(themes, fakePreferences{})

	w := perform(r, http.MethodGet, "/themes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.Theme](t, w), 2)

	w = perform(r, http.MethodPut, "/themes/current", `{"theme_id":"dark"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "dark", themes.current)

	w = perform(r, http.MethodGet, "/themes/current", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[domain.Theme](t, w).Dark)

	w = perform(r, http.MethodPut, "/themes/current", `{"theme_id":"fluo"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettingsHandler_Preferences(t *testing.T) {
	prefs := fakePreferences{}
	r := settingsRouter(&fakeThemes{}, prefs)

	assert.Equal(t, http.StatusNotFound, perform(r, http.MethodGet, "/preferences/last_view", nil).Code)

	w := perform(r, http.MethodPut, "/preferences/last_view", `{"value":"/planifications"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = perform(r, http.MethodGet, "/preferences/last_view", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/planifications", decode[domain.Preference](t, w).Value)

	assert.Equal(t, http.StatusNoContent, perform(r, http.MethodDelete, "/preferences/last_view", nil).Code)
	assert.Equal(t, http.StatusNotFound, perform(r, http.MethodDelete, "/preferences/last_view", nil).Code)
}

func TestSettingsHandler_Navigation(t *testing.T) {
	r := settingsRouter(&fakeThemes{}, fakePreferences{})

	w := perform(r, http.MethodGet, "/navigation", nil)
	require.Equal(t, http.StatusOK, w.Code)
	menu := decode[[]domain.View](t, w)
	require.NotEmpty(t, menu)

	w = perform(r, http.MethodGet, "/navigation?route="+menu[0].Route, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, menu[0].Title, decode[domain.View](t, w).Title)

	assert.Equal(t, http.StatusNotFound, perform(r, http.MethodGet, "/navigation?route=/nulle-part", nil).Code)
}

func TestSettingsHandler_ClearCache(t *testing.T) {
	themes := &fakeThemes{}
	nav := service.NewNavigationService()
	r := settingsRouterWith(themes, fakePreferences{}, nav)

	require.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/navigation", nil).Code)
	require.NotZero(t, nav.Cached())

	w := perform(r, http.MethodDelete, "/navigation/cache", nil)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, nav.Cached())
	assert.Equal(t, 1, themes.clears)
}
