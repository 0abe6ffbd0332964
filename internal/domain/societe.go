package domain

import (
	"strings"
	"time"
)

type SocieteType string

const (
	SocieteClient        SocieteType = "client"
	SocieteFournisseur   SocieteType = "fournisseur"
	SocieteManufacturier SocieteType = "manufacturier"
)

var SocieteTypes = []SocieteType{SocieteClient, SocieteFournisseur, SocieteManufacturier}

// ParseSocieteType is case-insensitive and returns the canonical lowercase type.
func ParseSocieteType(s string) (SocieteType, bool) {
	t := SocieteType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range SocieteTypes {
		if t == known {
			return t, true
		}
	}
	return "", false
}

type Societe struct {
	ID              uint        `json:"id"`
	Type            SocieteType `json:"type"`
	Nom             string      `json:"nom"`
	Email           string      `json:"email,omitempty"`
	Phone           string      `json:"phone,omitempty"`
	Adresse         string      `json:"adresse,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	GoogleContactID string      `json:"google_contact_id,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

func (s Societe) HasEmail() bool {
	return strings.TrimSpace(s.Email) != ""
}

type SocieteStats struct {
	Total          int64 `json:"total"`
	Clients        int64 `json:"clients"`
	Fournisseurs   int64 `json:"fournisseurs"`
	Manufacturiers int64 `json:"manufacturiers"`
	AvecEmail      int64 `json:"avec_email"`
}
