package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/repository"
)

var ErrGoogleConfigInvalid = errors.New("google configuration invalid")

type GoogleConfigRepository interface {
	Find(ctx context.Context) (domain.GoogleServicesConfig, error)
	Save(ctx context.Context, c domain.GoogleServicesConfig) (domain.GoogleServicesConfig, error)
	UpdateTokens(ctx context.Context, id uint, accessToken, refreshToken, tokenType string, expiry time.Time) error
}

// GoogleConfigService owns the single Google configuration row. It also
// serves as the integration's google.ConfigStore.
type GoogleConfigService struct {
	repo     GoogleConfigRepository
	defaults domain.GoogleDefaults
}

func NewGoogleConfigService(repo GoogleConfigRepository, defaults domain.GoogleDefaults) *GoogleConfigService {
	return &GoogleConfigService{
		repo:     repo,
		defaults: defaults,
	}
}

// Get returns the stored configuration, or the unsaved defaults when none
// exists yet.
func (s *GoogleConfigService) Get(ctx context.Context) (domain.GoogleServicesConfig, error) {
	c, err := s.repo.Find(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrGoogleConfigNotFound) {
			return s.Reset(), nil
		}
		return domain.GoogleServicesConfig{}, fmt.Errorf("s.repo.Find -> %w", err)
	}

	return c, nil
}

// Save stores c over the existing configuration. A blank client secret keeps
// the stored one and OAuth tokens are never overwritten from the outside.
func (s *GoogleConfigService) Save(ctx context.Context, c domain.GoogleServicesConfig) (domain.GoogleServicesConfig, error) {
	existing, err := s.repo.Find(ctx)
	switch {
	case err == nil:
		c.ID = existing.ID
		c.CreatedAt = existing.CreatedAt
		c.AccessToken = existing.AccessToken
		c.RefreshToken = existing.RefreshToken
		c.TokenType = existing.TokenType
		c.TokenExpiry = existing.TokenExpiry
		if strings.TrimSpace(c.ClientSecret) == "" {
			c.ClientSecret = existing.ClientSecret
		}
	case errors.Is(err, repository.ErrGoogleConfigNotFound):
		c.ID = 0
		c.AccessToken = ""
		c.RefreshToken = ""
	default:
		return domain.GoogleServicesConfig{}, fmt.Errorf("s.repo.Find -> %w", err)
	}

	if c.Nom == "" {
		c.Nom = domain.DefaultGoogleConfigNom
	}
	if c.CalendrierPrincipal == "" {
		c.CalendrierPrincipal = domain.DefaultCalendrier
	}
	c.ClientID = strings.TrimSpace(c.ClientID)
	c.ClientSecret = strings.TrimSpace(c.ClientSecret)

	saved, err := s.repo.Save(ctx, c)
	if err != nil {
		return domain.GoogleServicesConfig{}, fmt.Errorf("s.repo.Save -> %w", err)
	}

	return saved, nil
}

// Reset returns the default configuration without storing it.
func (s *GoogleConfigService) Reset() domain.GoogleServicesConfig {
	return domain.DefaultGoogleConfig(s.defaults)
}

// Validate checks c, falling back to the stored secret when c has none.
func (s *GoogleConfigService) Validate(ctx context.Context, c domain.GoogleServicesConfig) (map[string]string, error) {
	if strings.TrimSpace(c.ClientSecret) == "" {
		stored, err := s.repo.Find(ctx)
		if err != nil && !errors.Is(err, repository.ErrGoogleConfigNotFound) {
			return nil, fmt.Errorf("s.repo.Find -> %w", err)
		}
		c.ClientSecret = stored.ClientSecret
	}

	return c.Validate(), nil
}

// Stats combines the live integration status with the stored toggles.
func (s *GoogleConfigService) Stats(ctx context.Context, status domain.GoogleStatus) (domain.GoogleConfigStats, error) {
	stats := domain.GoogleConfigStats{
		Initialized:       status.Initialized,
		CalendarAvailable: status.CalendarAvailable,
		GmailAvailable:    status.GmailAvailable,
		ContactsAvailable: status.ContactsAvailable,
	}

	c, err := s.repo.Find(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrGoogleConfigNotFound) {
			return stats, nil
		}
		return domain.GoogleConfigStats{}, fmt.Errorf("s.repo.Find -> %w", err)
	}

	stats.ServicesConfigured = c.IsConfigured()
	stats.CalendarSyncEnabled = c.SyncCalendarActif
	stats.GmailEnabled = c.GmailActif
	stats.ContactsEnabled = c.ContactsActif
	stats.SyncIntervalMinutes = c.IntervalleSync

	return stats, nil
}

func (s *GoogleConfigService) UpdateTokens(ctx context.Context, id uint, accessToken, refreshToken, tokenType string, expiry time.Time) error {
	if err := s.repo.UpdateTokens(ctx, id, accessToken, refreshToken, tokenType, expiry); err != nil {
		return fmt.Errorf("s.repo.UpdateTokens -> %w", err)
	}

	return nil
}
