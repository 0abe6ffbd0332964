package request

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/magscene/magsav-api/internal/domain"
)

var (
	errInvalidStatutPlanification = errors.New("statut de planification invalide")
	errInvalidPriorite            = errors.New("priorité invalide")
	errInvalidTypeIntervention    = errors.New("type d'intervention invalide")
)

type PlanificationRequest struct {
	InterventionID          *uint    `json:"intervention_id,omitempty"`
	InterventionNumero      string   `json:"intervention_numero,omitempty"`
	TechnicienID            uint     `json:"technicien_id"`
	VehiculeID              *uint    `json:"vehicule_id,omitempty"`
	ClientID                *uint    `json:"client_id,omitempty"`
	ClientNom               string   `json:"client_nom"`
	ClientEmail             string   `json:"client_email,omitempty"`
	DatePrevue              string   `json:"date_prevue" example:"2024-05-02"`
	HeurePrevue             string   `json:"heure_prevue" example:"09:30"`
	DureeEstimee            int      `json:"duree_estimee,omitempty"`
	Statut                  string   `json:"statut,omitempty"`
	Priorite                string   `json:"priorite,omitempty"`
	TypeIntervention        string   `json:"type_intervention,omitempty"`
	LieuIntervention        string   `json:"lieu_intervention,omitempty"`
	EquipementsRequis       []string `json:"equipements_requis,omitempty"`
	NotesPlanification      string   `json:"notes_planification,omitempty"`
	DateDebutReel           string   `json:"date_debut_reel,omitempty"`
	DateFinReel             string   `json:"date_fin_reel,omitempty"`
	CommentairesExecution   string   `json:"commentaires_execution,omitempty"`
	NotificationClientEmail bool     `json:"notification_client_email"`
}

func (req *PlanificationRequest) Validate() error {
	req.ClientNom = strings.TrimSpace(req.ClientNom)
	req.DatePrevue = strings.TrimSpace(req.DatePrevue)
	req.HeurePrevue = strings.TrimSpace(req.HeurePrevue)

	return validation.ValidateStruct(
		req,
		validation.Field(&req.ClientNom, validation.Required.Error("le nom du client est requis")),
		validation.Field(&req.TechnicienID, validation.Required.Error("l'ID du technicien est requis")),
		validation.Field(&req.DatePrevue, validation.Required.Error("la date prévue est requise"), isDate),
		validation.Field(&req.HeurePrevue, validation.Required.Error("l'heure prévue est requise"), isHeure),
		validation.Field(&req.ClientEmail, validation.By(containsAt)),
		validation.Field(&req.DureeEstimee, validation.Min(0)),
		validation.Field(&req.Statut, enum(domain.ParseStatutPlanification, errInvalidStatutPlanification)),
		validation.Field(&req.Priorite, enum(parsePriorite, errInvalidPriorite)),
		validation.Field(&req.TypeIntervention, enum(parseTypeIntervention, errInvalidTypeIntervention)),
	)
}

func (req *PlanificationRequest) ToDomain() domain.Planification {
	statut, _ := domain.ParseStatutPlanification(req.Statut)
	priorite, _ := parsePriorite(req.Priorite)
	typ, _ := parseTypeIntervention(req.TypeIntervention)

	return domain.Planification{
		InterventionID:          req.InterventionID,
		InterventionNumero:      req.InterventionNumero,
		TechnicienID:            req.TechnicienID,
		VehiculeID:              req.VehiculeID,
		ClientID:                req.ClientID,
		ClientNom:               req.ClientNom,
		ClientEmail:             strings.TrimSpace(req.ClientEmail),
		DatePrevue:              req.DatePrevue,
		HeurePrevue:             req.HeurePrevue,
		DureeEstimee:            req.DureeEstimee,
		Statut:                  statut,
		Priorite:                priorite,
		TypeIntervention:        typ,
		LieuIntervention:        req.LieuIntervention,
		EquipementsRequis:       req.EquipementsRequis,
		NotesPlanification:      req.NotesPlanification,
		DateDebutReel:           req.DateDebutReel,
		DateFinReel:             req.DateFinReel,
		CommentairesExecution:   req.CommentairesExecution,
		NotificationClientEmail: req.NotificationClientEmail,
	}
}

func parsePriorite(s string) (domain.Priorite, bool) {
	p := domain.Priorite(strings.ToUpper(strings.TrimSpace(s)))
	return p, p.Niveau() > 0
}

func parseTypeIntervention(s string) (domain.TypeIntervention, bool) {
	t := domain.TypeIntervention(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range domain.TypesIntervention {
		if t == known {
			return t, true
		}
	}
	return "", false
}
