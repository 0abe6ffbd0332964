package response

import (
	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/google"
)

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Mutation acknowledges a create, update or delete.
type Mutation struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      uint   `json:"id,omitempty"`
}

func OK(message string) Mutation {
	return Mutation{Success: true, Message: message}
}

func Created(message string, id uint) Mutation {
	return Mutation{Success: true, Message: message, ID: id}
}

// Synced reports the outcome of a bulk Google operation.
type Synced struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"synchronized_count"`
}

// Failed is a soft Google failure: the request was fine, Google was not.
func Failed(message string) Mutation {
	return Mutation{Success: false, Message: message}
}

type StatutCommande struct {
	Success       bool                  `json:"success"`
	Message       string                `json:"message"`
	NouveauStatut domain.StatutCommande `json:"nouveau_statut"`
}

type CategoryPath struct {
	ID   uint   `json:"id"`
	Path string `json:"path"`
}

type Specialites struct {
	Specialites []string `json:"specialites"`
}

// GoogleConfig renders the stored configuration. The client secret and the
// tokens are never sent back.
type GoogleConfig struct {
	domain.GoogleServicesConfig
	Configured      bool `json:"configured"`
	HasClientSecret bool `json:"has_client_secret"`
	HasValidTokens  bool `json:"has_valid_tokens"`
}

func NewGoogleConfig(c domain.GoogleServicesConfig) GoogleConfig {
	return GoogleConfig{
		GoogleServicesConfig: c,
		Configured:           c.IsConfigured(),
		HasClientSecret:      c.ClientSecret != "",
		HasValidTokens:       c.HasValidTokens(),
	}
}

type GoogleValidation struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type AuthURL struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	AuthURL string `json:"auth_url"`
}

type Status struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	domain.GoogleStatus
}

type Connection struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Tests   map[string]bool `json:"tests"`
}

type Contacts struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Count    int              `json:"contacts_count"`
	Contacts []google.Contact `json:"contacts"`
}

type ContactAdded struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ContactID string `json:"contact_id,omitempty"`
}

type SyncPlanification struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	EventID string `json:"event_id,omitempty"`
}

type Health struct {
	Status string `json:"status"`
}

type Readiness struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
