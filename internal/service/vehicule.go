package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/repository"
)

var (
	ErrVehiculeNotFound      = repository.ErrVehiculeNotFound
	ErrImmatriculationExists = repository.ErrImmatriculationExists
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)

type VehiculeFilter = repository.VehiculeFilter

type VehiculeRepository interface {
	Create(ctx context.Context, v domain.Vehicule) (domain.Vehicule, error)
	FindPage(ctx context.Context, filter repository.VehiculeFilter, number, size int) (domain.Page[domain.Vehicule], error)
	FindByID(ctx context.Context, id uint) (domain.Vehicule, error)
	FindByImmatriculation(ctx context.Context, immatriculation string) (domain.Vehicule, error)
	Update(ctx context.Context, v domain.Vehicule) (domain.Vehicule, error)
	UpdateKilometrage(ctx context.Context, id uint, kilometrage int) error
	UpdateStatut(ctx context.Context, id uint, statut domain.StatutVehicule) error
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (domain.VehiculeStats, error)
}

type VehiculeService struct {
	repo   VehiculeRepository
	events EventPublisher
}

func NewVehiculeService(repo VehiculeRepository, events EventPublisher) *VehiculeService {
	return &VehiculeService{
		repo:   repo,
		events: publisherOrNop(events),
	}
}

// List returns one page of vehicules. Out of range paging arguments fall back
// to the first page of DefaultPageSize elements.
func (s *VehiculeService) List(ctx context.Context, filter VehiculeFilter, number, size int) (domain.Page[domain.Vehicule], error) {
	if number < 0 {
		number = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	filter.Search = strings.TrimSpace(filter.Search)

	page, err := s.repo.FindPage(ctx, filter, number, size)
	if err != nil {
		return domain.Page[domain.Vehicule]{}, fmt.Errorf("s.repo.FindPage -> %w", err)
	}

	return page, nil
}

func (s *VehiculeService) Get(ctx context.Context, id uint) (domain.Vehicule, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Vehicule{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return v, nil
}

func (s *VehiculeService) FindByImmatriculation(ctx context.Context, immatriculation string) (domain.Vehicule, error) {
	v, err := s.repo.FindByImmatriculation(ctx, strings.ToUpper(strings.TrimSpace(immatriculation)))
	if err != nil {
		return domain.Vehicule{}, fmt.Errorf("s.repo.FindByImmatriculation -> %w", err)
	}

	return v, nil
}

func (s *VehiculeService) Create(ctx context.Context, v domain.Vehicule) (domain.Vehicule, error) {
	v.ID = 0
	applyVehiculeDefaults(&v)

	created, err := s.repo.Create(ctx, v)
	if err != nil {
		return domain.Vehicule{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent("vehicule", domain.EventCreated, created.ID, created))

	return created, nil
}

func (s *VehiculeService) Update(ctx context.Context, id uint, v domain.Vehicule) (domain.Vehicule, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Vehicule{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	v.ID = existing.ID
	v.CreatedAt = existing.CreatedAt
	applyVehiculeDefaults(&v)

	updated, err := s.repo.Update(ctx, v)
	if err != nil {
		return domain.Vehicule{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent("vehicule", domain.EventUpdated, updated.ID, updated))

	return updated, nil
}

func (s *VehiculeService) UpdateKilometrage(ctx context.Context, id uint, kilometrage int) (domain.Vehicule, error) {
	if err := s.repo.UpdateKilometrage(ctx, id, kilometrage); err != nil {
		return domain.Vehicule{}, fmt.Errorf("s.repo.UpdateKilometrage -> %w", err)
	}

	return s.reload(ctx, id)
}

func (s *VehiculeService) UpdateStatut(ctx context.Context, id uint, statut domain.StatutVehicule) (domain.Vehicule, error) {
	if err := s.repo.UpdateStatut(ctx, id, statut); err != nil {
		return domain.Vehicule{}, fmt.Errorf("s.repo.UpdateStatut -> %w", err)
	}

	return s.reload(ctx, id)
}

func (s *VehiculeService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent("vehicule", domain.EventDeleted, id, nil))

	return nil
}

func (s *VehiculeService) Stats(ctx context.Context) (domain.VehiculeStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return domain.VehiculeStats{}, fmt.Errorf("s.repo.Stats -> %w", err)
	}

	return stats, nil
}

func (s *VehiculeService) reload(ctx context.Context, id uint) (domain.Vehicule, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Vehicule{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent("vehicule", domain.EventUpdated, v.ID, v))

	return v, nil
}

func applyVehiculeDefaults(v *domain.Vehicule) {
	v.Immatriculation = strings.ToUpper(strings.TrimSpace(v.Immatriculation))
	if v.TypeVehicule == "" {
		v.TypeVehicule = domain.VehiculeVL
	}
	if v.Statut == "" {
		v.Statut = domain.VehiculeDisponible
	}
}
