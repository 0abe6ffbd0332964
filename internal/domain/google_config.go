package domain

import (
	"strings"
	"time"
)

const (
	DefaultGoogleConfigNom   = "Configuration Google"
	DefaultCalendrier        = "primary"
	tokenRefreshMargin       = 5 * time.Minute
	MinIntervalleSync        = 1
	MaxIntervalleSync        = 1440
	DefaultIntervalleSync    = 30
	DefaultNomExpediteur     = "MAGSAV Service Client"
	DefaultEmailExpediteur   = "votre-email@gmail.com"
	DefaultGoogleRedirectURI = "http://localhost:8080/oauth/callback"
)

var DefaultGoogleScopes = []string{
	"https://www.googleapis.com/auth/calendar",
	"https://www.googleapis.com/auth/gmail.send",
	"https://www.googleapis.com/auth/contacts",
}

// GoogleServicesConfig is the persisted OAuth client, tokens and per-service
// toggles of the Google Workspace integration.
type GoogleServicesConfig struct {
	ID                        uint      `json:"id"`
	Nom                       string    `json:"nom"`
	ClientID                  string    `json:"client_id"`
	ClientSecret              string    `json:"-"`
	RedirectURI               string    `json:"redirect_uri"`
	Scopes                    []string  `json:"scopes"`
	AccessToken               string    `json:"-"`
	RefreshToken              string    `json:"-"`
	TokenType                 string    `json:"token_type,omitempty"`
	TokenExpiry               time.Time `json:"token_expiry,omitempty"`
	CalendrierPrincipal       string    `json:"calendrier_principal"`
	SyncCalendarActif         bool      `json:"sync_calendar_actif"`
	IntervalleSync            int       `json:"intervalle_sync"`
	GmailActif                bool      `json:"gmail_actif"`
	EmailExpediteur           string    `json:"email_expediteur"`
	NomExpediteur             string    `json:"nom_expediteur"`
	SignatureEmail            string    `json:"signature_email,omitempty"`
	ContactsActif             bool      `json:"contacts_actif"`
	SyncContactsAuto          bool      `json:"sync_contacts_auto"`
	NotificationInterventions bool      `json:"notification_interventions"`
	RappelsAutomatiques       bool      `json:"rappels_automatiques"`
	Actif                     bool      `json:"actif"`
	CreatedAt                 time.Time `json:"created_at"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

// GoogleDefaults seeds the configuration returned when nothing is stored yet.
type GoogleDefaults struct {
	RedirectURI     string
	Scopes          []string
	IntervalleSync  int
	EmailExpediteur string
	NomExpediteur   string
}

// DefaultGoogleConfig is the unsaved configuration served when the database
// holds none. Every service toggle is on, credentials are empty.
func DefaultGoogleConfig(d GoogleDefaults) GoogleServicesConfig {
	c := GoogleServicesConfig{
		Nom:                       DefaultGoogleConfigNom,
		RedirectURI:               d.RedirectURI,
		Scopes:                    d.Scopes,
		CalendrierPrincipal:       DefaultCalendrier,
		SyncCalendarActif:         true,
		IntervalleSync:            d.IntervalleSync,
		GmailActif:                true,
		EmailExpediteur:           d.EmailExpediteur,
		NomExpediteur:             d.NomExpediteur,
		ContactsActif:             true,
		SyncContactsAuto:          true,
		NotificationInterventions: true,
		RappelsAutomatiques:       true,
		Actif:                     true,
	}
	if c.RedirectURI == "" {
		c.RedirectURI = DefaultGoogleRedirectURI
	}
	if len(c.Scopes) == 0 {
		c.Scopes = append([]string(nil), DefaultGoogleScopes...)
	}
	if c.IntervalleSync == 0 {
		c.IntervalleSync = DefaultIntervalleSync
	}
	if c.EmailExpediteur == "" {
		c.EmailExpediteur = DefaultEmailExpediteur
	}
	if c.NomExpediteur == "" {
		c.NomExpediteur = DefaultNomExpediteur
	}
	return c
}

func (c GoogleServicesConfig) IsConfigured() bool {
	return strings.TrimSpace(c.ClientID) != "" && strings.TrimSpace(c.ClientSecret) != ""
}

func (c GoogleServicesConfig) HasValidTokens() bool {
	return c.AccessToken != "" && c.RefreshToken != ""
}

// NeedsTokenRefresh reports whether the access token expires within five minutes.
func (c GoogleServicesConfig) NeedsTokenRefresh(now time.Time) bool {
	if c.TokenExpiry.IsZero() {
		return false
	}
	return now.After(c.TokenExpiry.Add(-tokenRefreshMargin))
}

// Validate returns the field errors of the configuration keyed by JSON field.
// An empty map means the configuration is usable.
func (c GoogleServicesConfig) Validate() map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(c.ClientID) == "" {
		errs["client_id"] = "Client ID requis"
	}
	if strings.TrimSpace(c.ClientSecret) == "" {
		errs["client_secret"] = "Client Secret requis"
	}
	if !strings.HasPrefix(c.RedirectURI, "http") {
		errs["redirect_uri"] = "URI de redirection invalide"
	}
	if len(c.Scopes) == 0 {
		errs["scopes"] = "Au moins un scope est requis"
	}
	if c.GmailActif {
		if !strings.Contains(c.EmailExpediteur, "@") {
			errs["email_expediteur"] = "Email expéditeur invalide"
		}
		if strings.TrimSpace(c.NomExpediteur) == "" {
			errs["nom_expediteur"] = "Nom expéditeur requis"
		}
	}
	if c.SyncCalendarActif && (c.IntervalleSync < MinIntervalleSync || c.IntervalleSync > MaxIntervalleSync) {
		errs["intervalle_sync"] = "Intervalle de synchronisation entre 1 et 1440 minutes"
	}

	return errs
}

type GoogleConfigStats struct {
	Initialized         bool `json:"initialized"`
	CalendarAvailable   bool `json:"calendar_available"`
	GmailAvailable      bool `json:"gmail_available"`
	ContactsAvailable   bool `json:"contacts_available"`
	ServicesConfigured  bool `json:"services_configured"`
	CalendarSyncEnabled bool `json:"calendar_sync_enabled"`
	GmailEnabled        bool `json:"gmail_enabled"`
	ContactsEnabled     bool `json:"contacts_enabled"`
	SyncIntervalMinutes int  `json:"sync_interval_minutes,omitempty"`
}

// GoogleStatus is the live state of the integration.
type GoogleStatus struct {
	Initialized       bool       `json:"initialized"`
	CalendarAvailable bool       `json:"calendar_available"`
	GmailAvailable    bool       `json:"gmail_available"`
	ContactsAvailable bool       `json:"contacts_available"`
	AutoSyncRunning   bool       `json:"auto_sync_running"`
	LastCalendarSync  *time.Time `json:"last_calendar_sync,omitempty"`
	LastContactsSync  *time.Time `json:"last_contacts_sync,omitempty"`
}
