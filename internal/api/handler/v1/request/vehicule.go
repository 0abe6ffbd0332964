package request

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/magscene/magsav-api/internal/domain"
)

var (
	errInvalidTypeVehicule   = errors.New("type de véhicule invalide")
	errInvalidStatutVehicule = errors.New("statut de véhicule invalide")
)

type VehiculeRequest struct {
	Immatriculation string `json:"immatriculation" example:"AB-123-CD"`
	TypeVehicule    string `json:"type_vehicule,omitempty" enums:"VL,PL,SPL,REMORQUE,SCENE_MOBILE"`
	Marque          string `json:"marque,omitempty"`
	Modele          string `json:"modele,omitempty"`
	Annee           int    `json:"annee,omitempty"`
	Kilometrage     int    `json:"kilometrage"`
	Statut          string `json:"statut,omitempty" enums:"DISPONIBLE,EN_SERVICE,MAINTENANCE,HORS_SERVICE"`
	LocationExterne bool   `json:"location_externe"`
	Notes           string `json:"notes,omitempty"`
}

func (req *VehiculeRequest) Validate() error {
	req.Immatriculation = strings.TrimSpace(req.Immatriculation)

	return validation.ValidateStruct(
		req,
		validation.Field(&req.Immatriculation, validation.Required.Error("l'immatriculation est requise"), validation.Length(1, 20)),
		validation.Field(&req.TypeVehicule, enum(domain.ParseTypeVehicule, errInvalidTypeVehicule)),
		validation.Field(&req.Statut, enum(domain.ParseStatutVehicule, errInvalidStatutVehicule)),
		validation.Field(&req.Annee, validation.Min(1900), validation.Max(time.Now().Year()+1)),
		validation.Field(&req.Kilometrage, validation.Min(0)),
	)
}

func (req *VehiculeRequest) ToDomain() domain.Vehicule {
	typ, _ := domain.ParseTypeVehicule(req.TypeVehicule)
	statut, _ := domain.ParseStatutVehicule(req.Statut)

	return domain.Vehicule{
		Immatriculation: req.Immatriculation,
		TypeVehicule:    typ,
		Marque:          strings.TrimSpace(req.Marque),
		Modele:          strings.TrimSpace(req.Modele),
		Annee:           req.Annee,
		Kilometrage:     req.Kilometrage,
		Statut:          statut,
		LocationExterne: req.LocationExterne,
		Notes:           req.Notes,
	}
}

type TechnicienRequest struct {
	Nom            string   `json:"nom"`
	Prenom         string   `json:"prenom"`
	Email          string   `json:"email,omitempty"`
	Telephone      string   `json:"telephone,omitempty"`
	Fonction       string   `json:"fonction,omitempty"`
	Specialites    []string `json:"specialites,omitempty"`
	Statut         string   `json:"statut,omitempty" enums:"ACTIF,CONGE,INDISPONIBLE,INACTIF"`
	PermisConduire string   `json:"permis_conduire,omitempty"`
	SocieteID      *uint    `json:"societe_id,omitempty"`
}

var errInvalidStatutTechnicien = errors.New("statut de technicien invalide")

func (req *TechnicienRequest) Validate() error {
	req.Nom = strings.TrimSpace(req.Nom)
	req.Prenom = strings.TrimSpace(req.Prenom)

	return validation.ValidateStruct(
		req,
		validation.Field(&req.Nom, validation.Required.Error("le nom est requis")),
		validation.Field(&req.Prenom, validation.Required.Error("le prénom est requis")),
		validation.Field(&req.Email, validation.By(containsAt)),
		validation.Field(&req.Statut, enum(parseStatutTechnicien, errInvalidStatutTechnicien)),
	)
}

func (req *TechnicienRequest) ToDomain() domain.Technicien {
	statut, _ := parseStatutTechnicien(req.Statut)

	return domain.Technicien{
		Nom:            req.Nom,
		Prenom:         req.Prenom,
		Email:          strings.TrimSpace(req.Email),
		Telephone:      req.Telephone,
		Fonction:       req.Fonction,
		Specialites:    req.Specialites,
		Statut:         statut,
		PermisConduire: req.PermisConduire,
		SocieteID:      req.SocieteID,
	}
}

func parseStatutTechnicien(s string) (domain.StatutTechnicien, bool) {
	st := domain.StatutTechnicien(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range domain.StatutsTechnicien {
		if st == known {
			return st, true
		}
	}
	return "", false
}
