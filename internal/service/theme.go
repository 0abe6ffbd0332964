package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/repository"
)

var (
	ErrThemeNotFound      = errors.New("theme not found")
	ErrPreferenceNotFound = repository.ErrPreferenceNotFound
)

var themeCatalogue = []domain.Theme{
	{ID: "light", Name: "Clair", Stylesheet: "/css/themes/light.css"},
	{ID: "dark", Name: "Sombre", Stylesheet: "/css/themes/dark.css", Dark: true},
	{ID: "magsav", Name: "MAGSAV Bleu", Stylesheet: "/css/themes/magsav-blue.css", Dark: true},
	{ID: "high-contrast", Name: "Contraste élevé", Stylesheet: "/css/themes/high-contrast.css", Dark: true},
}

type PreferenceRepository interface {
	Get(ctx context.Context, key string) (domain.Preference, error)
	Set(ctx context.Context, key, value string) (domain.Preference, error)
	Delete(ctx context.Context, key string) error
}

type PreferenceService struct {
	repo PreferenceRepository
}

func NewPreferenceService(repo PreferenceRepository) *PreferenceService {
	return &PreferenceService{
		repo: repo,
	}
}

func (s *PreferenceService) Get(ctx context.Context, key string) (domain.Preference, error) {
	p, err := s.repo.Get(ctx, key)
	if err != nil {
		return domain.Preference{}, fmt.Errorf("s.repo.Get -> %w", err)
	}

	return p, nil
}

func (s *PreferenceService) Set(ctx context.Context, key, value string) (domain.Preference, error) {
	p, err := s.repo.Set(ctx, strings.TrimSpace(key), value)
	if err != nil {
		return domain.Preference{}, fmt.Errorf("s.repo.Set -> %w", err)
	}

	return p, nil
}

func (s *PreferenceService) Delete(ctx context.Context, key string) error {
	if err := s.repo.Delete(ctx, key); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// ThemeService resolves themes through a registry and stores the selection
// as the current_theme preference.
type ThemeService struct {
	prefs    PreferenceRepository
	registry *Registry[string, domain.Theme]
}

func NewThemeService(prefs PreferenceRepository) *ThemeService {
	return &ThemeService{
		prefs:    prefs,
		registry: NewRegistry[string, domain.Theme](),
	}
}

func (s *ThemeService) List() []domain.Theme {
	themes := make([]domain.Theme, 0, len(themeCatalogue))
	for _, t := range themeCatalogue {
		theme, _ := s.Theme(t.ID)
		themes = append(themes, theme)
	}

	return themes
}

func (s *ThemeService) Theme(id string) (domain.Theme, error) {
	return s.registry.GetOrCreate(strings.ToLower(strings.TrimSpace(id)), lookupTheme)
}

// Current returns the selected theme. A missing or stale preference yields
// the default theme.
func (s *ThemeService) Current(ctx context.Context) (domain.Theme, error) {
	id := domain.DefaultThemeID

	p, err := s.prefs.Get(ctx, domain.PreferenceCurrentTheme)
	switch {
	case err == nil:
		id = p.Value
	case !errors.Is(err, repository.ErrPreferenceNotFound):
		return domain.Theme{}, fmt.Errorf("s.prefs.Get -> %w", err)
	}

	theme, err := s.Theme(id)
	if err != nil {
		return s.Theme(domain.DefaultThemeID)
	}

	return theme, nil
}

func (s *ThemeService) SetCurrent(ctx context.Context, id string) (domain.Theme, error) {
	theme, err := s.Theme(id)
	if err != nil {
		return domain.Theme{}, err
	}

	if _, err = s.prefs.Set(ctx, domain.PreferenceCurrentTheme, theme.ID); err != nil {
		return domain.Theme{}, fmt.Errorf("s.prefs.Set -> %w", err)
	}

	return theme, nil
}

// ClearCache drops the resolved themes.
func (s *ThemeService) ClearCache() {
	s.registry.Clear()
}

func lookupTheme(id string) (domain.Theme, error) {
	for _, t := range themeCatalogue {
		if t.ID == id {
			return t, nil
		}
	}

	return domain.Theme{}, ErrThemeNotFound
}
