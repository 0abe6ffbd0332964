package domain

import (
	"fmt"
	"strings"
	"time"
)

type StatutPlanification string

const (
	PlanificationPlanifiee StatutPlanification = "PLANIFIE"
	PlanificationEnCours   StatutPlanification = "EN_COURS"
	PlanificationTerminee  StatutPlanification = "TERMINE"
	PlanificationAnnulee   StatutPlanification = "ANNULE"
	PlanificationReportee  StatutPlanification = "REPORTE"
)

var StatutsPlanification = []StatutPlanification{
	PlanificationPlanifiee, PlanificationEnCours, PlanificationTerminee, PlanificationAnnulee, PlanificationReportee,
}

func ParseStatutPlanification(s string) (StatutPlanification, bool) {
	st := StatutPlanification(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range StatutsPlanification {
		if st == known {
			return st, true
		}
	}
	return "", false
}

type Priorite string

const (
	PrioriteUrgente Priorite = "URGENTE"
	PrioriteHaute   Priorite = "HAUTE"
	PrioriteNormale Priorite = "NORMALE"
	PrioriteBasse   Priorite = "BASSE"
)

var Priorites = []Priorite{PrioriteUrgente, PrioriteHaute, PrioriteNormale, PrioriteBasse}

// Niveau is 1 for the most urgent priority, 4 for the lowest.
func (p Priorite) Niveau() int {
	for i, known := range Priorites {
		if p == known {
			return i + 1
		}
	}
	return 0
}

type TypeIntervention string

const (
	InterventionMaintenance  TypeIntervention = "MAINTENANCE"
	InterventionDepannage    TypeIntervention = "DEPANNAGE"
	InterventionInstallation TypeIntervention = "INSTALLATION"
	InterventionControle     TypeIntervention = "CONTROLE"
	InterventionFormation    TypeIntervention = "FORMATION"
	InterventionConsultation TypeIntervention = "CONSULTATION"
)

var TypesIntervention = []TypeIntervention{
	InterventionMaintenance, InterventionDepannage, InterventionInstallation,
	InterventionControle, InterventionFormation, InterventionConsultation,
}

const (
	DefaultDureeEstimee = 60
	DateLayout          = "2006-01-02"
	HeureLayout         = "15:04"
	DateTimeLayout      = "2006-01-02 15:04:05"
)

type Planification struct {
	ID                      uint                `json:"id"`
	InterventionID          *uint               `json:"intervention_id,omitempty"`
	InterventionNumero      string              `json:"intervention_numero,omitempty"`
	TechnicienID            uint                `json:"technicien_id"`
	TechnicienNom           string              `json:"technicien_nom,omitempty"`
	TechnicienEmail         string              `json:"-"`
	VehiculeID              *uint               `json:"vehicule_id,omitempty"`
	VehiculeImmatriculation string              `json:"vehicule_immatriculation,omitempty"`
	ClientID                *uint               `json:"client_id,omitempty"`
	ClientNom               string              `json:"client_nom"`
	ClientEmail             string              `json:"client_email,omitempty"`
	DatePrevue              string              `json:"date_prevue"`
	HeurePrevue             string              `json:"heure_prevue"`
	DureeEstimee            int                 `json:"duree_estimee"`
	Statut                  StatutPlanification `json:"statut"`
	Priorite                Priorite            `json:"priorite"`
	TypeIntervention        TypeIntervention    `json:"type_intervention"`
	LieuIntervention        string              `json:"lieu_intervention,omitempty"`
	EquipementsRequis       []string            `json:"equipements_requis"`
	NotesPlanification      string              `json:"notes_planification,omitempty"`
	DateDebutReel           string              `json:"date_debut_reel,omitempty"`
	DateFinReel             string              `json:"date_fin_reel,omitempty"`
	CommentairesExecution   string              `json:"commentaires_execution,omitempty"`
	GoogleEventID           string              `json:"google_event_id,omitempty"`
	NotificationClientEmail bool                `json:"notification_client_email"`
	EmailReminderSent       bool                `json:"email_reminder_sent"`
	CreatedAt               time.Time           `json:"created_at"`
	UpdatedAt               time.Time           `json:"updated_at"`
}

// ApplyDefaults fills the fields a new planification may omit.
func (p *Planification) ApplyDefaults() {
	if p.DureeEstimee <= 0 {
		p.DureeEstimee = DefaultDureeEstimee
	}
	if p.Statut == "" {
		p.Statut = PlanificationPlanifiee
	}
	if p.Priorite == "" {
		p.Priorite = PrioriteNormale
	}
	if p.TypeIntervention == "" {
		p.TypeIntervention = InterventionMaintenance
	}
	if p.EquipementsRequis == nil {
		p.EquipementsRequis = []string{}
	}
}

// Debut is the scheduled start in loc.
func (p Planification) Debut(loc *time.Location) (time.Time, error) {
	start, err := time.ParseInLocation(DateLayout+" "+HeureLayout, p.DatePrevue+" "+p.HeurePrevue, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid schedule %q %q: %w", p.DatePrevue, p.HeurePrevue, err)
	}
	return start, nil
}

func (p Planification) Fin(loc *time.Location) (time.Time, error) {
	start, err := p.Debut(loc)
	if err != nil {
		return time.Time{}, err
	}
	duree := p.DureeEstimee
	if duree <= 0 {
		duree = DefaultDureeEstimee
	}
	return start.Add(time.Duration(duree) * time.Minute), nil
}

// EventTitle renders "[TYPE] client - numero", the numero part only when known.
func (p Planification) EventTitle() string {
	title := fmt.Sprintf("[%s] %s", p.TypeIntervention, p.ClientNom)
	if p.InterventionNumero != "" {
		title += " - " + p.InterventionNumero
	}
	return title
}

func (p Planification) EventDescription() string {
	var b strings.Builder
	b.WriteString("Intervention MAGSAV\n\n")
	fmt.Fprintf(&b, "Client: %s\n", p.ClientNom)
	fmt.Fprintf(&b, "Technicien: %s\n", p.TechnicienNom)
	fmt.Fprintf(&b, "Type: %s\n", p.TypeIntervention)
	fmt.Fprintf(&b, "Priorité: %s\n", p.Priorite)
	fmt.Fprintf(&b, "Durée estimée: %d min\n", p.DureeEstimee)

	if p.NotesPlanification != "" {
		b.WriteString("\nNotes:\n")
		b.WriteString(p.NotesPlanification)
		b.WriteString("\n")
	}
	if len(p.EquipementsRequis) > 0 {
		b.WriteString("\nÉquipements requis:\n")
		for _, e := range p.EquipementsRequis {
			b.WriteString("- ")
			b.WriteString(e)
			b.WriteString("\n")
		}
	}

	return b.String()
}
