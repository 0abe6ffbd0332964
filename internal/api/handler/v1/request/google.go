package request

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/google"
)

// GoogleConfigRequest carries the editable configuration. A blank
// client_secret keeps the stored one.
type GoogleConfigRequest struct {
	Nom                       string   `json:"nom,omitempty"`
	ClientID                  string   `json:"client_id"`
	ClientSecret              string   `json:"client_secret,omitempty"`
	RedirectURI               string   `json:"redirect_uri"`
	Scopes                    []string `json:"scopes"`
	CalendrierPrincipal       string   `json:"calendrier_principal,omitempty"`
	SyncCalendarActif         bool     `json:"sync_calendar_actif"`
	IntervalleSync            int      `json:"intervalle_sync"`
	GmailActif                bool     `json:"gmail_actif"`
	EmailExpediteur           string   `json:"email_expediteur"`
	NomExpediteur             string   `json:"nom_expediteur"`
	SignatureEmail            string   `json:"signature_email,omitempty"`
	ContactsActif             bool     `json:"contacts_actif"`
	SyncContactsAuto          bool     `json:"sync_contacts_auto"`
	NotificationInterventions bool     `json:"notification_interventions"`
	RappelsAutomatiques       bool     `json:"rappels_automatiques"`
	Actif                     bool     `json:"actif"`
}

// Validate only checks the shape of the fields. Completeness is reported by
// the validate endpoint, so an incomplete configuration can still be saved.
func (req *GoogleConfigRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.RedirectURI, is.URL),
		validation.Field(&req.EmailExpediteur, validation.By(containsAt)),
		validation.Field(&req.IntervalleSync, validation.Min(0), validation.Max(domain.MaxIntervalleSync)),
	)
}

func (req *GoogleConfigRequest) ToDomain() domain.GoogleServicesConfig {
	return domain.GoogleServicesConfig{
		Nom:                       strings.TrimSpace(req.Nom),
		ClientID:                  strings.TrimSpace(req.ClientID),
		ClientSecret:              strings.TrimSpace(req.ClientSecret),
		RedirectURI:               strings.TrimSpace(req.RedirectURI),
		Scopes:                    req.Scopes,
		CalendrierPrincipal:       strings.TrimSpace(req.CalendrierPrincipal),
		SyncCalendarActif:         req.SyncCalendarActif,
		IntervalleSync:            req.IntervalleSync,
		GmailActif:                req.GmailActif,
		EmailExpediteur:           strings.TrimSpace(req.EmailExpediteur),
		NomExpediteur:             strings.TrimSpace(req.NomExpediteur),
		SignatureEmail:            req.SignatureEmail,
		ContactsActif:             req.ContactsActif,
		SyncContactsAuto:          req.SyncContactsAuto,
		NotificationInterventions: req.NotificationInterventions,
		RappelsAutomatiques:       req.RappelsAutomatiques,
		Actif:                     req.Actif,
	}
}

type InterventionMailRequest struct {
	google.InterventionMail
}

func (req *InterventionMailRequest) Validate() error {
	return validation.ValidateStruct(
		&req.InterventionMail,
		validation.Field(&req.ClientEmail, validation.Required, is.Email),
		validation.Field(&req.ClientNom, validation.Required),
		validation.Field(&req.Date, validation.Required),
	)
}

type ReminderMailRequest struct {
	google.ReminderMail
}

func (req *ReminderMailRequest) Validate() error {
	return validation.ValidateStruct(
		&req.ReminderMail,
		validation.Field(&req.ClientEmail, validation.Required, is.Email),
		validation.Field(&req.ClientNom, validation.Required),
		validation.Field(&req.Date, validation.Required),
	)
}

type OrderMailRequest struct {
	google.OrderMail
}

func (req *OrderMailRequest) Validate() error {
	return validation.ValidateStruct(
		&req.OrderMail,
		validation.Field(&req.FournisseurEmail, validation.Required, is.Email),
		validation.Field(&req.NumeroCommande, validation.Required),
	)
}

type ContactRequest struct {
	Nom        string `json:"nom"`
	Email      string `json:"email,omitempty"`
	Telephone  string `json:"telephone,omitempty"`
	Entreprise string `json:"entreprise,omitempty"`
}

func (req *ContactRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Nom, validation.Required),
		validation.Field(&req.Email, is.Email),
	)
}

func (req *ContactRequest) ToContact() google.Contact {
	c := google.Contact{
		Nom:        strings.TrimSpace(req.Nom),
		Entreprise: strings.TrimSpace(req.Entreprise),
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		c.Emails = []string{email}
	}
	if tel := strings.TrimSpace(req.Telephone); tel != "" {
		c.Telephones = []string{tel}
	}

	return c
}
