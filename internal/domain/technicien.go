package domain

import (
	"strings"
	"time"
)

type StatutTechnicien string

const (
	TechnicienActif        StatutTechnicien = "ACTIF"
	TechnicienConge        StatutTechnicien = "CONGE"
	TechnicienIndisponible StatutTechnicien = "INDISPONIBLE"
	TechnicienInactif      StatutTechnicien = "INACTIF"
)

var StatutsTechnicien = []StatutTechnicien{TechnicienActif, TechnicienConge, TechnicienIndisponible, TechnicienInactif}

type Technicien struct {
	ID              uint             `json:"id"`
	Nom             string           `json:"nom"`
	Prenom          string           `json:"prenom"`
	Email           string           `json:"email,omitempty"`
	Telephone       string           `json:"telephone,omitempty"`
	Fonction        string           `json:"fonction,omitempty"`
	Specialites     []string         `json:"specialites"`
	Statut          StatutTechnicien `json:"statut"`
	PermisConduire  string           `json:"permis_conduire,omitempty"`
	SocieteID       *uint            `json:"societe_id,omitempty"`
	GoogleContactID string           `json:"google_contact_id,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func (t Technicien) NomComplet() string {
	return strings.TrimSpace(t.Prenom + " " + t.Nom)
}
