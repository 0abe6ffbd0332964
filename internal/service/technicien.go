package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/repository"
)

var (
	ErrTechnicienNotFound = repository.ErrTechnicienNotFound
	ErrTechnicienInUse    = repository.ErrTechnicienInUse
)

type TechnicienRepository interface {
	Create(ctx context.Context, t domain.Technicien) (domain.Technicien, error)
	FindAll(ctx context.Context) ([]domain.Technicien, error)
	FindByStatut(ctx context.Context, statut domain.StatutTechnicien) ([]domain.Technicien, error)
	FindByID(ctx context.Context, id uint) (domain.Technicien, error)
	Update(ctx context.Context, t domain.Technicien) (domain.Technicien, error)
	Delete(ctx context.Context, id uint) error
}

type TechnicienService struct {
	repo   TechnicienRepository
	events EventPublisher
}

func NewTechnicienService(repo TechnicienRepository, events EventPublisher) *TechnicienService {
	return &TechnicienService{
		repo:   repo,
		events: publisherOrNop(events),
	}
}

func (s *TechnicienService) List(ctx context.Context) ([]domain.Technicien, error) {
	techniciens, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return techniciens, nil
}

func (s *TechnicienService) Actifs(ctx context.Context) ([]domain.Technicien, error) {
	techniciens, err := s.repo.FindByStatut(ctx, domain.TechnicienActif)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByStatut -> %w", err)
	}

	return techniciens, nil
}

func (s *TechnicienService) Get(ctx context.Context, id uint) (domain.Technicien, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Technicien{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return t, nil
}

func (s *TechnicienService) Create(ctx context.Context, t domain.Technicien) (domain.Technicien, error) {
	t.ID = 0
	applyTechnicienDefaults(&t)

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return domain.Technicien{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent("technicien", domain.EventCreated, created.ID, created))

	return created, nil
}

func (s *TechnicienService) Update(ctx context.Context, id uint, t domain.Technicien) (domain.Technicien, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Technicien{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	t.ID = existing.ID
	t.CreatedAt = existing.CreatedAt
	t.GoogleContactID = existing.GoogleContactID
	applyTechnicienDefaults(&t)

	updated, err := s.repo.Update(ctx, t)
	if err != nil {
		return domain.Technicien{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent("technicien", domain.EventUpdated, updated.ID, updated))

	return updated, nil
}

// Delete fails with ErrTechnicienInUse while planifications reference the technicien.
func (s *TechnicienService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent("technicien", domain.EventDeleted, id, nil))

	return nil
}

func applyTechnicienDefaults(t *domain.Technicien) {
	t.Email = strings.TrimSpace(t.Email)
	if t.Statut == "" {
		t.Statut = domain.TechnicienActif
	}
	if t.Specialites == nil {
		t.Specialites = []string{}
	}
}
