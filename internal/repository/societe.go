package repository

import (
	"context"
	"fmt"

	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/repository/dao"
)

var ErrSocieteNotFound = dao.ErrSocieteNotFound

type SocieteDAO interface {
	Insert(ctx context.Context, societe dao.Societe) (dao.Societe, error)
	FindAll(ctx context.Context) ([]dao.Societe, error)
	FindByID(ctx context.Context, id uint) (dao.Societe, error)
	FindByType(ctx context.Context, societeType string) ([]dao.Societe, error)
	SearchByNom(ctx context.Context, nom string) ([]dao.Societe, error)
	FindWithEmail(ctx context.Context) ([]dao.Societe, error)
	FindByNomAndType(ctx context.Context, nom, societeType string) (dao.Societe, error)
	Update(ctx context.Context, societe dao.Societe) (dao.Societe, error)
	UpdateGoogleContactID(ctx context.Context, id uint, contactID string) error
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (dao.SocieteStats, error)
}

type SocieteRepository struct {
	dao SocieteDAO
}

func NewSocieteRepository(dao SocieteDAO) *SocieteRepository {
	return &SocieteRepository{
		dao: dao,
	}
}

func (r *SocieteRepository) Create(ctx context.Context, societe domain.Societe) (domain.Societe, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(societe))
	if err != nil {
		return domain.Societe{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *SocieteRepository) FindAll(ctx context.Context) ([]domain.Societe, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *SocieteRepository) FindByID(ctx context.Context, id uint) (domain.Societe, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Societe{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SocieteRepository) FindByType(ctx context.Context, societeType domain.SocieteType) ([]domain.Societe, error) {
	found, err := r.dao.FindByType(ctx, string(societeType))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByType -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *SocieteRepository) SearchByNom(ctx context.Context, nom string) ([]domain.Societe, error) {
	found, err := r.dao.SearchByNom(ctx, nom)
	if err != nil {
		return nil, fmt.Errorf("r.dao.SearchByNom -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *SocieteRepository) FindWithEmail(ctx context.Context) ([]domain.Societe, error) {
	found, err := r.dao.FindWithEmail(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindWithEmail -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *SocieteRepository) FindByNomAndType(ctx context.Context, nom string, societeType domain.SocieteType) (domain.Societe, error) {
	found, err := r.dao.FindByNomAndType(ctx, nom, string(societeType))
	if err != nil {
		return domain.Societe{}, fmt.Errorf("r.dao.FindByNomAndType -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SocieteRepository) Update(ctx context.Context, societe domain.Societe) (domain.Societe, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(societe))
	if err != nil {
		return domain.Societe{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *SocieteRepository) UpdateGoogleContactID(ctx context.Context, id uint, contactID string) error {
	if err := r.dao.UpdateGoogleContactID(ctx, id, contactID); err != nil {
		return fmt.Errorf("r.dao.UpdateGoogleContactID -> %w", err)
	}

	return nil
}

func (r *SocieteRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *SocieteRepository) Stats(ctx context.Context) (domain.SocieteStats, error) {
	stats, err := r.dao.Stats(ctx)
	if err != nil {
		return domain.SocieteStats{}, fmt.Errorf("r.dao.Stats -> %w", err)
	}

	return domain.SocieteStats{
		Total:          stats.Total,
		Clients:        stats.Clients,
		Fournisseurs:   stats.Fournisseurs,
		Manufacturiers: stats.Manufacturiers,
		AvecEmail:      stats.AvecEmail,
	}, nil
}

func (r *SocieteRepository) domainToDao(s domain.Societe) dao.Societe {
	return dao.Societe{
		ID:              s.ID,
		Type:            string(s.Type),
		Nom:             s.Nom,
		Email:           s.Email,
		Phone:           s.Phone,
		Adresse:         s.Adresse,
		Notes:           s.Notes,
		GoogleContactID: s.GoogleContactID,
		CreatedAt:       s.CreatedAt,
	}
}

func (r *SocieteRepository) daoToDomain(s dao.Societe) domain.Societe {
	return domain.Societe{
		ID:              s.ID,
		Type:            domain.SocieteType(s.Type),
		Nom:             s.Nom,
		Email:           s.Email,
		Phone:           s.Phone,
		Adresse:         s.Adresse,
		Notes:           s.Notes,
		GoogleContactID: s.GoogleContactID,
		CreatedAt:       s.CreatedAt,
	}
}

func (r *SocieteRepository) daosToDomain(societes []dao.Societe) []domain.Societe {
	result := make([]domain.Societe, 0, len(societes))
	for _, s := range societes {
		result = append(result, r.daoToDomain(s))
	}

	return result
}
