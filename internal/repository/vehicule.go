package repository

import (
	"context"
	"fmt"

	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/repository/dao"
)

var (
	ErrVehiculeNotFound      = dao.ErrVehiculeNotFound
	ErrImmatriculationExists = dao.ErrImmatriculationExists
)

type VehiculeFilter = dao.VehiculeFilter

type VehiculeDAO interface {
	Insert(ctx context.Context, v dao.Vehicule) (dao.Vehicule, error)
	FindPage(ctx context.Context, filter dao.VehiculeFilter, offset, limit int) ([]dao.Vehicule, int64, error)
	FindByID(ctx context.Context, id uint) (dao.Vehicule, error)
	FindByImmatriculation(ctx context.Context, immatriculation string) (dao.Vehicule, error)
	Update(ctx context.Context, v dao.Vehicule) (dao.Vehicule, error)
	UpdateKilometrage(ctx context.Context, id uint, kilometrage int) error
	UpdateStatut(ctx context.Context, id uint, statut string) error
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (dao.VehiculeStats, error)
}

type VehiculeRepository struct {
	dao VehiculeDAO
}

func NewVehiculeRepository(dao VehiculeDAO) *VehiculeRepository {
	return &VehiculeRepository{
		dao: dao,
	}
}

func (r *VehiculeRepository) Create(ctx context.Context, v domain.Vehicule) (domain.Vehicule, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(v))
	if err != nil {
		return domain.Vehicule{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

// FindPage returns page number (zero-based) of size elements matching filter.
func (r *VehiculeRepository) FindPage(ctx context.Context, filter VehiculeFilter, number, size int) (domain.Page[domain.Vehicule], error) {
	found, total, err := r.dao.FindPage(ctx, filter, number*size, size)
	if err != nil {
		return domain.Page[domain.Vehicule]{}, fmt.Errorf("r.dao.FindPage -> %w", err)
	}

	content := make([]domain.Vehicule, 0, len(found))
	for _, v := range found {
		content = append(content, r.daoToDomain(v))
	}

	return domain.NewPage(content, total, number, size), nil
}

func (r *VehiculeRepository) FindByID(ctx context.Context, id uint) (domain.Vehicule, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Vehicule{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *VehiculeRepository) FindByImmatriculation(ctx context.Context, immatriculation string) (domain.Vehicule, error) {
	found, err := r.dao.FindByImmatriculation(ctx, immatriculation)
	if err != nil {
		return domain.Vehicule{}, fmt.Errorf("r.dao.FindByImmatriculation -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *VehiculeRepository) Update(ctx context.Context, v domain.Vehicule) (domain.Vehicule, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(v))
	if err != nil {
		return domain.Vehicule{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *VehiculeRepository) UpdateKilometrage(ctx context.Context, id uint, kilometrage int) error {
	if err := r.dao.UpdateKilometrage(ctx, id, kilometrage); err != nil {
		return fmt.Errorf("r.dao.UpdateKilometrage -> %w", err)
	}

	return nil
}

func (r *VehiculeRepository) UpdateStatut(ctx context.Context, id uint, statut domain.StatutVehicule) error {
	if err := r.dao.UpdateStatut(ctx, id, string(statut)); err != nil {
		return fmt.Errorf("r.dao.UpdateStatut -> %w", err)
	}

	return nil
}

func (r *VehiculeRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *VehiculeRepository) Stats(ctx context.Context) (domain.VehiculeStats, error) {
	stats, err := r.dao.Stats(ctx)
	if err != nil {
		return domain.VehiculeStats{}, fmt.Errorf("r.dao.Stats -> %w", err)
	}

	return domain.VehiculeStats{
		TotalVehicules:         stats.Total,
		VehiculesDisponibles:   stats.Disponibles,
		VehiculesEnService:     stats.EnService,
		VehiculesEnMaintenance: stats.EnMaintenance,
		VehiculesHorsService:   stats.HorsService,
	}, nil
}

func (r *VehiculeRepository) domainToDao(v domain.Vehicule) dao.Vehicule {
	return dao.Vehicule{
		ID:              v.ID,
		Immatriculation: v.Immatriculation,
		TypeVehicule:    string(v.TypeVehicule),
		Marque:          v.Marque,
		Modele:          v.Modele,
		Annee:           v.Annee,
		Kilometrage:     v.Kilometrage,
		Statut:          string(v.Statut),
		LocationExterne: v.LocationExterne,
		Notes:           v.Notes,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func (r *VehiculeRepository) daoToDomain(v dao.Vehicule) domain.Vehicule {
	return domain.Vehicule{
		ID:              v.ID,
		Immatriculation: v.Immatriculation,
		TypeVehicule:    domain.TypeVehicule(v.TypeVehicule),
		Marque:          v.Marque,
		Modele:          v.Modele,
		Annee:           v.Annee,
		Kilometrage:     v.Kilometrage,
		Statut:          domain.StatutVehicule(v.Statut),
		LocationExterne: v.LocationExterne,
		Notes:           v.Notes,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}
