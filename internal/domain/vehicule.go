package domain

import (
	"strings"
	"time"
)

type TypeVehicule string

const (
	VehiculeVL          TypeVehicule = "VL"
	VehiculePL          TypeVehicule = "PL"
	VehiculeSPL         TypeVehicule = "SPL"
	VehiculeRemorque    TypeVehicule = "REMORQUE"
	VehiculeSceneMobile TypeVehicule = "SCENE_MOBILE"
)

var TypesVehicule = []TypeVehicule{VehiculeVL, VehiculePL, VehiculeSPL, VehiculeRemorque, VehiculeSceneMobile}

func ParseTypeVehicule(s string) (TypeVehicule, bool) {
	t := TypeVehicule(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range TypesVehicule {
		if t == known {
			return t, true
		}
	}
	return "", false
}

type StatutVehicule string

const (
	VehiculeDisponible  StatutVehicule = "DISPONIBLE"
	VehiculeEnService   StatutVehicule = "EN_SERVICE"
	VehiculeMaintenance StatutVehicule = "MAINTENANCE"
	VehiculeHorsService StatutVehicule = "HORS_SERVICE"
)

var StatutsVehicule = []StatutVehicule{VehiculeDisponible, VehiculeEnService, VehiculeMaintenance, VehiculeHorsService}

func ParseStatutVehicule(s string) (StatutVehicule, bool) {
	st := StatutVehicule(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range StatutsVehicule {
		if st == known {
			return st, true
		}
	}
	return "", false
}

type Vehicule struct {
	ID              uint           `json:"id"`
	Immatriculation string         `json:"immatriculation"`
	TypeVehicule    TypeVehicule   `json:"type_vehicule"`
	Marque          string         `json:"marque,omitempty"`
	Modele          string         `json:"modele,omitempty"`
	Annee           int            `json:"annee,omitempty"`
	Kilometrage     int            `json:"kilometrage"`
	Statut          StatutVehicule `json:"statut"`
	LocationExterne bool           `json:"location_externe"`
	Notes           string         `json:"notes,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type VehiculeStats struct {
	TotalVehicules         int64 `json:"total_vehicules"`
	VehiculesDisponibles   int64 `json:"vehicules_disponibles"`
	VehiculesEnService     int64 `json:"vehicules_en_service"`
	VehiculesEnMaintenance int64 `json:"vehicules_en_maintenance"`
	VehiculesHorsService   int64 `json:"vehicules_hors_service"`
}
