package dao

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var ErrPlanificationNotFound = errors.New("planification not found")

type Planification struct {
	ID                      uint           `gorm:"primaryKey"`
	InterventionID          *uint          `gorm:"index"`
	InterventionNumero      string         `gorm:"size:50"`
	TechnicienID            uint           `gorm:"not null;index"`
	Technicien              *Technicien    `gorm:"foreignKey:TechnicienID;constraint:OnDelete:RESTRICT"`
	VehiculeID              *uint          `gorm:"index"`
	Vehicule                *Vehicule      `gorm:"foreignKey:VehiculeID;constraint:OnDelete:SET NULL"`
	ClientID                *uint          `gorm:"index"`
	ClientNom               string         `gorm:"size:255;not null"`
	ClientEmail             string         `gorm:"size:255"`
	DatePrevue              string         `gorm:"size:10;not null;index"`
	HeurePrevue             string         `gorm:"size:5;not null"`
	DureeEstimee            int            `gorm:"not null;default:60"`
	Statut                  string         `gorm:"size:20;not null;index"`
	Priorite                string         `gorm:"size:20;not null"`
	TypeIntervention        string         `gorm:"size:20;not null"`
	LieuIntervention        string         `gorm:"type:text"`
	EquipementsRequis       pq.StringArray `gorm:"type:text[]"`
	NotesPlanification      string         `gorm:"type:text"`
	DateDebutReel           string         `gorm:"size:19"`
	DateFinReel             string         `gorm:"size:19"`
	CommentairesExecution   string         `gorm:"type:text"`
	GoogleEventID           string         `gorm:"size:255"`
	NotificationClientEmail bool           `gorm:"not null;default:false"`
	EmailReminderSent       bool           `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type PlanificationDAO struct {
	db *gorm.DB
}

func NewPlanificationDAO(db *gorm.DB) *PlanificationDAO {
	return &PlanificationDAO{
		db: db,
	}
}

func (d *PlanificationDAO) Insert(ctx context.Context, p Planification) (Planification, error) {
	result := d.db.WithContext(ctx).Omit("Technicien", "Vehicule").Create(&p)
	if result.Error != nil {
		return Planification{}, result.Error
	}

	return d.FindByID(ctx, p.ID)
}

func (d *PlanificationDAO) FindAll(ctx context.Context) ([]Planification, error) {
	return d.find(ctx, d.preloaded(ctx))
}

func (d *PlanificationDAO) FindByID(ctx context.Context, id uint) (Planification, error) {
	var p Planification

	result := d.preloaded(ctx).First(&p, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Planification{}, ErrPlanificationNotFound
		}

		return Planification{}, result.Error
	}

	return p, nil
}

func (d *PlanificationDAO) FindByTechnicien(ctx context.Context, technicienID uint) ([]Planification, error) {
	return d.find(ctx, d.preloaded(ctx).Where("technicien_id = ?", technicienID))
}

func (d *PlanificationDAO) FindByStatut(ctx context.Context, statut string) ([]Planification, error) {
	return d.find(ctx, d.preloaded(ctx).Where("statut = ?", statut))
}

// FindDueForReminder lists the planned interventions of day whose client has
// an email and has not been reminded yet.
func (d *PlanificationDAO) FindDueForReminder(ctx context.Context, day string) ([]Planification, error) {
	return d.find(ctx, d.preloaded(ctx).
		Where("date_prevue = ? AND statut = ? AND email_reminder_sent = ? AND client_email <> ''", day, "PLANIFIE", false))
}

func (d *PlanificationDAO) Update(ctx context.Context, p Planification) (Planification, error) {
	result := d.db.WithContext(ctx).Omit("Technicien", "Vehicule", "created_at").Save(&p)
	if result.Error != nil {
		return Planification{}, result.Error
	}

	return d.FindByID(ctx, p.ID)
}

func (d *PlanificationDAO) UpdateGoogleEventID(ctx context.Context, id uint, eventID string) error {
	return d.updateColumn(ctx, id, "google_event_id", eventID)
}

func (d *PlanificationDAO) MarkReminderSent(ctx context.Context, id uint) error {
	return d.updateColumn(ctx, id, "email_reminder_sent", true)
}

func (d *PlanificationDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Planification{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlanificationNotFound
	}

	return nil
}

func (d *PlanificationDAO) updateColumn(ctx context.Context, id uint, column string, value any) error {
	result := d.db.WithContext(ctx).Model(&Planification{ID: id}).Update(column, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlanificationNotFound
	}

	return nil
}

func (d *PlanificationDAO) find(_ context.Context, tx *gorm.DB) ([]Planification, error) {
	var planifications []Planification

	result := tx.Order("date_prevue, heure_prevue, id").Find(&planifications)
	if result.Error != nil {
		return nil, result.Error
	}

	return planifications, nil
}

func (d *PlanificationDAO) preloaded(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx).Preload("Technicien").Preload("Vehicule")
}
