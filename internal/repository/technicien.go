package repository

import (
	"context"
	"fmt"

	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/repository/dao"
)

var (
	ErrTechnicienNotFound = dao.ErrTechnicienNotFound
	ErrTechnicienInUse    = dao.ErrTechnicienInUse
)

type TechnicienDAO interface {
	Insert(ctx context.Context, t dao.Technicien) (dao.Technicien, error)
	FindAll(ctx context.Context) ([]dao.Technicien, error)
	FindByStatut(ctx context.Context, statut string) ([]dao.Technicien, error)
	FindByID(ctx context.Context, id uint) (dao.Technicien, error)
	Update(ctx context.Context, t dao.Technicien) (dao.Technicien, error)
	Delete(ctx context.Context, id uint) error
}

type TechnicienRepository struct {
	dao TechnicienDAO
}

func NewTechnicienRepository(dao TechnicienDAO) *TechnicienRepository {
	return &TechnicienRepository{
		dao: dao,
	}
}

func (r *TechnicienRepository) Create(ctx context.Context, t domain.Technicien) (domain.Technicien, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(t))
	if err != nil {
		return domain.Technicien{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TechnicienRepository) FindAll(ctx context.Context) ([]domain.Technicien, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *TechnicienRepository) FindByStatut(ctx context.Context, statut domain.StatutTechnicien) ([]domain.Technicien, error) {
	found, err := r.dao.FindByStatut(ctx, string(statut))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByStatut -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *TechnicienRepository) FindByID(ctx context.Context, id uint) (domain.Technicien, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Technicien{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TechnicienRepository) Update(ctx context.Context, t domain.Technicien) (domain.Technicien, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(t))
	if err != nil {
		return domain.Technicien{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *TechnicienRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *TechnicienRepository) domainToDao(t domain.Technicien) dao.Technicien {
	return dao.Technicien{
		ID:              t.ID,
		Nom:             t.Nom,
		Prenom:          t.Prenom,
		Email:           t.Email,
		Telephone:       t.Telephone,
		Fonction:        t.Fonction,
		Specialites:     t.Specialites,
		Statut:          string(t.Statut),
		PermisConduire:  t.PermisConduire,
		SocieteID:       t.SocieteID,
		GoogleContactID: t.GoogleContactID,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func (r *TechnicienRepository) daoToDomain(t dao.Technicien) domain.Technicien {
	specialites := []string(t.Specialites)
	if specialites == nil {
		specialites = []string{}
	}

	return domain.Technicien{
		ID:              t.ID,
		Nom:             t.Nom,
		Prenom:          t.Prenom,
		Email:           t.Email,
		Telephone:       t.Telephone,
		Fonction:        t.Fonction,
		Specialites:     specialites,
		Statut:          domain.StatutTechnicien(t.Statut),
		PermisConduire:  t.PermisConduire,
		SocieteID:       t.SocieteID,
		GoogleContactID: t.GoogleContactID,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func (r *TechnicienRepository) daosToDomain(techniciens []dao.Technicien) []domain.Technicien {
	result := make([]domain.Technicien, 0, len(techniciens))
	for _, t := range techniciens {
		result = append(result, r.daoToDomain(t))
	}

	return result
}
