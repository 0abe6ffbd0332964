package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/google"
	"github.com/magscene/magsav-api/internal/repository"
)

var ErrSocieteNotFound = repository.ErrSocieteNotFound

type SocieteRepository interface {
	Create(ctx context.Context, societe domain.Societe) (domain.Societe, error)
	FindAll(ctx context.Context) ([]domain.Societe, error)
	FindByID(ctx context.Context, id uint) (domain.Societe, error)
	FindByType(ctx context.Context, societeType domain.SocieteType) ([]domain.Societe, error)
	SearchByNom(ctx context.Context, nom string) ([]domain.Societe, error)
	FindWithEmail(ctx context.Context) ([]domain.Societe, error)
	FindByNomAndType(ctx context.Context, nom string, societeType domain.SocieteType) (domain.Societe, error)
	Update(ctx context.Context, societe domain.Societe) (domain.Societe, error)
	UpdateGoogleContactID(ctx context.Context, id uint, contactID string) error
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (domain.SocieteStats, error)
}

// ContactsSyncer pushes sociétés to Google Contacts.
type ContactsSyncer interface {
	ContactsAvailable() bool
	AddContact(ctx context.Context, c google.Contact) string
}

type SocieteService struct {
	repo     SocieteRepository
	contacts ContactsSyncer
	events   EventPublisher
	bg       *Background
}

func NewSocieteService(repo SocieteRepository, contacts ContactsSyncer, events EventPublisher, bg *Background) *SocieteService {
	return &SocieteService{
		repo:     repo,
		contacts: contacts,
		events:   publisherOrNop(events),
		bg:       bg,
	}
}

func (s *SocieteService) List(ctx context.Context) ([]domain.Societe, error) {
	societes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return societes, nil
}

func (s *SocieteService) Get(ctx context.Context, id uint) (domain.Societe, error) {
	societe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Societe{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return societe, nil
}

func (s *SocieteService) ListByType(ctx context.Context, societeType domain.SocieteType) ([]domain.Societe, error) {
	societes, err := s.repo.FindByType(ctx, societeType)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByType -> %w", err)
	}

	return societes, nil
}

func (s *SocieteService) SearchByNom(ctx context.Context, nom string) ([]domain.Societe, error) {
	societes, err := s.repo.SearchByNom(ctx, strings.TrimSpace(nom))
	if err != nil {
		return nil, fmt.Errorf("s.repo.SearchByNom -> %w", err)
	}

	return societes, nil
}

func (s *SocieteService) FindByNomAndType(ctx context.Context, nom string, societeType domain.SocieteType) (domain.Societe, error) {
	societe, err := s.repo.FindByNomAndType(ctx, strings.TrimSpace(nom), societeType)
	if err != nil {
		return domain.Societe{}, fmt.Errorf("s.repo.FindByNomAndType -> %w", err)
	}

	return societe, nil
}

// Create stores the société and, when it has an email, adds it to Google
// Contacts in the background.
func (s *SocieteService) Create(ctx context.Context, societe domain.Societe) (domain.Societe, error) {
	societe.ID = 0
	societe.GoogleContactID = ""

	created, err := s.repo.Create(ctx, societe)
	if err != nil {
		return domain.Societe{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent("societe", domain.EventCreated, created.ID, created))
	s.pushContactAsync(created)

	return created, nil
}

// Update replaces the editable fields of the société with the given id.
// The creation date and Google contact id are kept.
func (s *SocieteService) Update(ctx context.Context, id uint, societe domain.Societe) (domain.Societe, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Societe{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	societe.ID = existing.ID
	societe.CreatedAt = existing.CreatedAt
	societe.GoogleContactID = existing.GoogleContactID

	updated, err := s.repo.Update(ctx, societe)
	if err != nil {
		return domain.Societe{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent("societe", domain.EventUpdated, updated.ID, updated))

	return updated, nil
}

func (s *SocieteService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent("societe", domain.EventDeleted, id, nil))

	return nil
}

func (s *SocieteService) Stats(ctx context.Context) (domain.SocieteStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return domain.SocieteStats{}, fmt.Errorf("s.repo.Stats -> %w", err)
	}

	return stats, nil
}

// SyncGoogleContacts pushes every société with an email and returns how many
// contacts were created.
func (s *SocieteService) SyncGoogleContacts(ctx context.Context) (int, error) {
	if !s.contacts.ContactsAvailable() {
		return 0, ErrGoogleUnavailable
	}

	societes, err := s.repo.FindWithEmail(ctx)
	if err != nil {
		return 0, fmt.Errorf("s.repo.FindWithEmail -> %w", err)
	}

	synced := 0
	for _, societe := range societes {
		if s.pushContact(ctx, societe) {
			synced++
		}
	}

	zap.L().Info("Sociétés pushed to Google Contacts", zap.Int("synced", synced), zap.Int("total", len(societes)))

	return synced, nil
}

func (s *SocieteService) AddToGoogleContacts(ctx context.Context, id uint) error {
	societe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if !s.contacts.ContactsAvailable() {
		return ErrGoogleUnavailable
	}
	if !societe.HasEmail() {
		return ErrEmailMissing
	}

	if !s.pushContact(ctx, societe) {
		return ErrGoogleOperationFailed
	}

	return nil
}

func (s *SocieteService) pushContactAsync(societe domain.Societe) {
	if !societe.HasEmail() || !s.contacts.ContactsAvailable() {
		return
	}

	s.bg.Go("societe.contact", func(ctx context.Context) {
		s.pushContact(ctx, societe)
	})
}

func (s *SocieteService) pushContact(ctx context.Context, societe domain.Societe) bool {
	contactID := s.contacts.AddContact(ctx, toContact(societe))
	if contactID == "" {
		return false
	}

	if err := s.repo.UpdateGoogleContactID(ctx, societe.ID, contactID); err != nil {
		zap.L().Warn("Failed to store Google contact id", zap.Uint("societe_id", societe.ID), zap.Error(err))
	}

	return true
}

func toContact(societe domain.Societe) google.Contact {
	contact := google.Contact{
		Nom:        societe.Nom,
		Entreprise: societe.Nom,
	}
	if societe.HasEmail() {
		contact.Emails = []string{strings.TrimSpace(societe.Email)}
	}
	if phone := strings.TrimSpace(societe.Phone); phone != "" {
		contact.Telephones = []string{phone}
	}

	return contact
}
