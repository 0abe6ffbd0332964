package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/repository"
)

type memPreferenceRepo map[string]string

func (m memPreferenceRepo) Get(_ context.Context, key string) (domain.Preference, error) {
	v, ok := m[key]
	if !ok {
		return domain.Preference{}, repository.ErrPreferenceNotFound
	}
	return domain.Preference{Key: key, Value: v}, nil
}

func (m memPreferenceRepo) Set(_ context.Context, key, value string) (domain.Preference, error) {
	m[key] = value
	return domain.Preference{Key: key, Value: value}, nil
}

func (m memPreferenceRepo) Delete(_ context.Context, key string) error {
	if _, ok := m[key]; !ok {
		return repository.ErrPreferenceNotFound
	}
	delete(m, key)
	return nil
}

func TestThemeService_List(t *testing.T) {
	s := NewThemeService(memPreferenceRepo{})

	themes := s.List()

	ids := make([]string, 0, len(themes))
	for _, th := range themes {
		ids = append(ids, th.ID)
	}
	assert.Equal(t, []string{"light", "dark", "magsav", "high-contrast"}, ids)
	assert.Equal(t, 4, s.registry.Len())
}

func TestThemeService_Current(t *testing.T) {
	prefs := memPreferenceRepo{}
	s := NewThemeService(prefs)
	ctx := context.Background()

	current, err := s.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultThemeID, current.ID)

	selected, err := s.SetCurrent(ctx, " DARK ")
	require.NoError(t, err)
	assert.Equal(t, "dark", selected.ID)
	assert.Equal(t, "dark", prefs[domain.PreferenceCurrentTheme])

	current, err = s.Current(ctx)
	require.NoError(t, err)
	assert.True(t, current.Dark)

	_, err = s.SetCurrent(ctx, "neon")
	assert.ErrorIs(t, err, ErrThemeNotFound)

	prefs[domain.PreferenceCurrentTheme] = "removed-theme"
	current, err = s.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultThemeID, current.ID)
}

func TestPreferenceService(t *testing.T) {
	s := NewPreferenceService(memPreferenceRepo{})
	ctx := context.Background()

	_, err := s.Get(ctx, "langue")
	assert.ErrorIs(t, err, ErrPreferenceNotFound)

	_, err = s.Set(ctx, "langue", "fr")
	require.NoError(t, err)

	p, err := s.Get(ctx, "langue")
	require.NoError(t, err)
	assert.Equal(t, "fr", p.Value)

	require.NoError(t, s.Delete(ctx, "langue"))
	assert.ErrorIs(t, s.Delete(ctx, "langue"), ErrPreferenceNotFound)
}

func TestNavigationService(t *testing.T) {
	s := NewNavigationService()

	v, err := s.View("/Vehicules/")
	require.NoError(t, err)
	assert.Equal(t, "Véhicules", v.Title)
	assert.Equal(t, 1, s.Cached())

	_, err = s.View("unknown")
	assert.ErrorIs(t, err, ErrViewNotFound)

	menu := s.Menu()
	assert.Len(t, menu, len(viewCatalogue))
	assert.Equal(t, "dashboard", menu[0].Route)
	assert.Equal(t, len(viewCatalogue), s.Cached())

	s.Clear()
	assert.Equal(t, 0, s.Cached())
}
