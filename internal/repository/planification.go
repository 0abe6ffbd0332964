package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/repository/dao"
)

var ErrPlanificationNotFound = dao.ErrPlanificationNotFound

type PlanificationDAO interface {
	Insert(ctx context.Context, p dao.Planification) (dao.Planification, error)
	FindAll(ctx context.Context) ([]dao.Planification, error)
	FindByID(ctx context.Context, id uint) (dao.Planification, error)
	FindByTechnicien(ctx context.Context, technicienID uint) ([]dao.Planification, error)
	FindByStatut(ctx context.Context, statut string) ([]dao.Planification, error)
	FindDueForReminder(ctx context.Context, day string) ([]dao.Planification, error)
	Update(ctx context.Context, p dao.Planification) (dao.Planification, error)
	UpdateGoogleEventID(ctx context.Context, id uint, eventID string) error
	MarkReminderSent(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

type PlanificationRepository struct {
	dao PlanificationDAO
}

func NewPlanificationRepository(dao PlanificationDAO) *PlanificationRepository {
	return &PlanificationRepository{
		dao: dao,
	}
}

func (r *PlanificationRepository) Create(ctx context.Context, p domain.Planification) (domain.Planification, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(p))
	if err != nil {
		return domain.Planification{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PlanificationRepository) FindAll(ctx context.Context) ([]domain.Planification, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *PlanificationRepository) FindByID(ctx context.Context, id uint) (domain.Planification, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Planification{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *PlanificationRepository) FindByTechnicien(ctx context.Context, technicienID uint) ([]domain.Planification, error) {
	found, err := r.dao.FindByTechnicien(ctx, technicienID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByTechnicien -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *PlanificationRepository) FindByStatut(ctx context.Context, statut domain.StatutPlanification) ([]domain.Planification, error) {
	found, err := r.dao.FindByStatut(ctx, string(statut))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByStatut -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *PlanificationRepository) FindDueForReminder(ctx context.Context, day string) ([]domain.Planification, error) {
	found, err := r.dao.FindDueForReminder(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindDueForReminder -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *PlanificationRepository) Update(ctx context.Context, p domain.Planification) (domain.Planification, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(p))
	if err != nil {
		return domain.Planification{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *PlanificationRepository) UpdateGoogleEventID(ctx context.Context, id uint, eventID string) error {
	if err := r.dao.UpdateGoogleEventID(ctx, id, eventID); err != nil {
		return fmt.Errorf("r.dao.UpdateGoogleEventID -> %w", err)
	}

	return nil
}

func (r *PlanificationRepository) MarkReminderSent(ctx context.Context, id uint) error {
	if err := r.dao.MarkReminderSent(ctx, id); err != nil {
		return fmt.Errorf("r.dao.MarkReminderSent -> %w", err)
	}

	return nil
}

func (r *PlanificationRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *PlanificationRepository) domainToDao(p domain.Planification) dao.Planification {
	return dao.Planification{
		ID:                      p.ID,
		InterventionID:          p.InterventionID,
		InterventionNumero:      p.InterventionNumero,
		TechnicienID:            p.TechnicienID,
		VehiculeID:              p.VehiculeID,
		ClientID:                p.ClientID,
		ClientNom:               p.ClientNom,
		ClientEmail:             p.ClientEmail,
		DatePrevue:              p.DatePrevue,
		HeurePrevue:             p.HeurePrevue,
		DureeEstimee:            p.DureeEstimee,
		Statut:                  string(p.Statut),
		Priorite:                string(p.Priorite),
		TypeIntervention:        string(p.TypeIntervention),
		LieuIntervention:        p.LieuIntervention,
		EquipementsRequis:       p.EquipementsRequis,
		NotesPlanification:      p.NotesPlanification,
		DateDebutReel:           p.DateDebutReel,
		DateFinReel:             p.DateFinReel,
		CommentairesExecution:   p.CommentairesExecution,
		GoogleEventID:           p.GoogleEventID,
		NotificationClientEmail: p.NotificationClientEmail,
		EmailReminderSent:       p.EmailReminderSent,
		CreatedAt:               p.CreatedAt,
		UpdatedAt:               p.UpdatedAt,
	}
}

func (r *PlanificationRepository) daoToDomain(p dao.Planification) domain.Planification {
	equipements := []string(p.EquipementsRequis)
	if equipements == nil {
		equipements = []string{}
	}

	planification := domain.Planification{
		ID:                      p.ID,
		InterventionID:          p.InterventionID,
		InterventionNumero:      p.InterventionNumero,
		TechnicienID:            p.TechnicienID,
		VehiculeID:              p.VehiculeID,
		ClientID:                p.ClientID,
		ClientNom:               p.ClientNom,
		ClientEmail:             p.ClientEmail,
		DatePrevue:              p.DatePrevue,
		HeurePrevue:             p.HeurePrevue,
		DureeEstimee:            p.DureeEstimee,
		Statut:                  domain.StatutPlanification(p.Statut),
		Priorite:                domain.Priorite(p.Priorite),
		TypeIntervention:        domain.TypeIntervention(p.TypeIntervention),
		LieuIntervention:        p.LieuIntervention,
		EquipementsRequis:       equipements,
		NotesPlanification:      p.NotesPlanification,
		DateDebutReel:           p.DateDebutReel,
		DateFinReel:             p.DateFinReel,
		CommentairesExecution:   p.CommentairesExecution,
		GoogleEventID:           p.GoogleEventID,
		NotificationClientEmail: p.NotificationClientEmail,
		EmailReminderSent:       p.EmailReminderSent,
		CreatedAt:               p.CreatedAt,
		UpdatedAt:               p.UpdatedAt,
	}
	if p.Technicien != nil {
		planification.TechnicienNom = strings.TrimSpace(p.Technicien.Prenom + " " + p.Technicien.Nom)
		planification.TechnicienEmail = p.Technicien.Email
	}
	if p.Vehicule != nil {
		planification.VehiculeImmatriculation = p.Vehicule.Immatriculation
	}

	return planification
}

func (r *PlanificationRepository) daosToDomain(planifications []dao.Planification) []domain.Planification {
	result := make([]domain.Planification, 0, len(planifications))
	for _, p := range planifications {
		result = append(result, r.daoToDomain(p))
	}

	return result
}
