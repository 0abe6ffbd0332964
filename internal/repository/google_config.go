package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/repository/dao"
)

var ErrGoogleConfigNotFound = dao.ErrGoogleConfigNotFound

type GoogleConfigDAO interface {
	FindFirst(ctx context.Context) (dao.GoogleConfig, error)
	Save(ctx context.Context, c dao.GoogleConfig) (dao.GoogleConfig, error)
	UpdateTokens(ctx context.Context, id uint, accessToken, refreshToken, tokenType string, expiry *time.Time) error
}

type GoogleConfigRepository struct {
	dao GoogleConfigDAO
}

func NewGoogleConfigRepository(dao GoogleConfigDAO) *GoogleConfigRepository {
	return &GoogleConfigRepository{
		dao: dao,
	}
}

func (r *GoogleConfigRepository) Find(ctx context.Context) (domain.GoogleServicesConfig, error) {
	found, err := r.dao.FindFirst(ctx)
	if err != nil {
		return domain.GoogleServicesConfig{}, fmt.Errorf("r.dao.FindFirst -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *GoogleConfigRepository) Save(ctx context.Context, c domain.GoogleServicesConfig) (domain.GoogleServicesConfig, error) {
	saved, err := r.dao.Save(ctx, r.domainToDao(c))
	if err != nil {
		return domain.GoogleServicesConfig{}, fmt.Errorf("r.dao.Save -> %w", err)
	}

	return r.daoToDomain(saved), nil
}

func (r *GoogleConfigRepository) UpdateTokens(ctx context.Context, id uint, accessToken, refreshToken, tokenType string, expiry time.Time) error {
	var exp *time.Time
	if !expiry.IsZero() {
		exp = &expiry
	}

	if err := r.dao.UpdateTokens(ctx, id, accessToken, refreshToken, tokenType, exp); err != nil {
		return fmt.Errorf("r.dao.UpdateTokens -> %w", err)
	}

	return nil
}

func (r *GoogleConfigRepository) domainToDao(c domain.GoogleServicesConfig) dao.GoogleConfig {
	var expiry *time.Time
	if !c.TokenExpiry.IsZero() {
		t := c.TokenExpiry
		expiry = &t
	}

	return dao.GoogleConfig{
		ID:                        c.ID,
		Nom:                       c.Nom,
		ClientID:                  c.ClientID,
		ClientSecret:              c.ClientSecret,
		RedirectURI:               c.RedirectURI,
		Scopes:                    c.Scopes,
		AccessToken:               c.AccessToken,
		RefreshToken:              c.RefreshToken,
		TokenType:                 c.TokenType,
		TokenExpiry:               expiry,
		CalendrierPrincipal:       c.CalendrierPrincipal,
		SyncCalendarActif:         c.SyncCalendarActif,
		IntervalleSync:            c.IntervalleSync,
		GmailActif:                c.GmailActif,
		EmailExpediteur:           c.EmailExpediteur,
		NomExpediteur:             c.NomExpediteur,
		SignatureEmail:            c.SignatureEmail,
		ContactsActif:             c.ContactsActif,
		SyncContactsAuto:          c.SyncContactsAuto,
		NotificationInterventions: c.NotificationInterventions,
		RappelsAutomatiques:       c.RappelsAutomatiques,
		Actif:                     c.Actif,
		CreatedAt:                 c.CreatedAt,
		UpdatedAt:                 c.UpdatedAt,
	}
}

func (r *GoogleConfigRepository) daoToDomain(c dao.GoogleConfig) domain.GoogleServicesConfig {
	var expiry time.Time
	if c.TokenExpiry != nil {
		expiry = *c.TokenExpiry
	}

	return domain.GoogleServicesConfig{
		ID:                        c.ID,
		Nom:                       c.Nom,
		ClientID:                  c.ClientID,
		ClientSecret:              c.ClientSecret,
		RedirectURI:               c.RedirectURI,
		Scopes:                    []string(c.Scopes),
		AccessToken:               c.AccessToken,
		RefreshToken:              c.RefreshToken,
		TokenType:                 c.TokenType,
		TokenExpiry:               expiry,
		CalendrierPrincipal:       c.CalendrierPrincipal,
		SyncCalendarActif:         c.SyncCalendarActif,
		IntervalleSync:            c.IntervalleSync,
		GmailActif:                c.GmailActif,
		EmailExpediteur:           c.EmailExpediteur,
		NomExpediteur:             c.NomExpediteur,
		SignatureEmail:            c.SignatureEmail,
		ContactsActif:             c.ContactsActif,
		SyncContactsAuto:          c.SyncContactsAuto,
		NotificationInterventions: c.NotificationInterventions,
		RappelsAutomatiques:       c.RappelsAutomatiques,
		Actif:                     c.Actif,
		CreatedAt:                 c.CreatedAt,
		UpdatedAt:                 c.UpdatedAt,
	}
}
