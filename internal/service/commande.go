package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/google"
	"github.com/magscene/magsav-api/internal/repository"
)

var (
	ErrCommandeNotFound     = repository.ErrCommandeNotFound
	ErrNumeroCommandeExists = repository.ErrNumeroCommandeExists
	ErrFournisseurNotFound  = errors.New("fournisseur not found")
)

const numeroAttempts = 5

type CommandeRepository interface {
	Create(ctx context.Context, commande domain.Commande) (domain.Commande, error)
	FindAll(ctx context.Context) ([]domain.Commande, error)
	FindByID(ctx context.Context, id uint) (domain.Commande, error)
	FindByStatut(ctx context.Context, statut domain.StatutCommande) ([]domain.Commande, error)
	FindByFournisseur(ctx context.Context, fournisseurID uint) ([]domain.Commande, error)
	CountByNumeroPrefix(ctx context.Context, prefix string) (int64, error)
	Update(ctx context.Context, commande domain.Commande) (domain.Commande, error)
	UpdateStatut(ctx context.Context, id uint, statut domain.StatutCommande) error
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (domain.CommandeStats, error)
}

type SocieteFinder interface {
	FindByID(ctx context.Context, id uint) (domain.Societe, error)
}

// OrderMailer sends order confirmations to suppliers.
type OrderMailer interface {
	GmailAvailable() bool
	SendOrderConfirmation(ctx context.Context, m google.OrderMail) bool
}

type CommandeService struct {
	repo         CommandeRepository
	fournisseurs SocieteFinder
	mailer       OrderMailer
	events       EventPublisher
	bg           *Background
	now          func() time.Time
}

func NewCommandeService(repo CommandeRepository, fournisseurs SocieteFinder, mailer OrderMailer, events EventPublisher, bg *Background) *CommandeService {
	return &CommandeService{
		repo:         repo,
		fournisseurs: fournisseurs,
		mailer:       mailer,
		events:       publisherOrNop(events),
		bg:           bg,
		now:          time.Now,
	}
}

func (s *CommandeService) List(ctx context.Context) ([]domain.Commande, error) {
	commandes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return commandes, nil
}

func (s *CommandeService) Get(ctx context.Context, id uint) (domain.Commande, error) {
	commande, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Commande{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return commande, nil
}

func (s *CommandeService) ListByStatut(ctx context.Context, statut domain.StatutCommande) ([]domain.Commande, error) {
	commandes, err := s.repo.FindByStatut(ctx, statut)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByStatut -> %w", err)
	}

	return commandes, nil
}

func (s *CommandeService) ListByFournisseur(ctx context.Context, fournisseurID uint) ([]domain.Commande, error) {
	commandes, err := s.repo.FindByFournisseur(ctx, fournisseurID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByFournisseur -> %w", err)
	}

	return commandes, nil
}

// Create numbers the order when no number is given, computes the totals and
// emails the confirmation to the supplier in the background.
func (s *CommandeService) Create(ctx context.Context, commande domain.Commande) (domain.Commande, error) {
	commande.ID = 0
	s.applyDefaults(&commande)
	commande.CalculerTotaux()

	if err := s.checkFournisseur(ctx, commande.FournisseurID); err != nil {
		return domain.Commande{}, err
	}

	created, err := s.create(ctx, commande)
	if err != nil {
		return domain.Commande{}, err
	}

	s.events.Publish(ctx, domain.NewEvent("commande", domain.EventCreated, created.ID, created))

	if created.FournisseurEmail != "" && s.mailer.GmailAvailable() {
		s.bg.Go("commande.confirmation", func(ctx context.Context) {
			s.mailer.SendOrderConfirmation(ctx, orderMail(created))
		})
	}

	return created, nil
}

func (s *CommandeService) create(ctx context.Context, commande domain.Commande) (domain.Commande, error) {
	if commande.NumeroCommande != "" {
		created, err := s.repo.Create(ctx, commande)
		if err != nil {
			return domain.Commande{}, fmt.Errorf("s.repo.Create -> %w", err)
		}
		return created, nil
	}

	day := s.now()
	prefix := domain.NumeroPrefix(day)
	count, err := s.repo.CountByNumeroPrefix(ctx, prefix)
	if err != nil {
		return domain.Commande{}, fmt.Errorf("s.repo.CountByNumeroPrefix -> %w", err)
	}

	// A number freed by a deletion makes count+1 collide; move on to the next.
	for i := 1; i <= numeroAttempts; i++ {
		commande.NumeroCommande = domain.GenerateNumeroCommande(day, int(count)+i)

		created, err := s.repo.Create(ctx, commande)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, repository.ErrNumeroCommandeExists) {
			return domain.Commande{}, fmt.Errorf("s.repo.Create -> %w", err)
		}
	}

	return domain.Commande{}, ErrNumeroCommandeExists
}

func (s *CommandeService) Update(ctx context.Context, id uint, commande domain.Commande) (domain.Commande, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Commande{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	commande.ID = existing.ID
	commande.CreatedAt = existing.CreatedAt
	if strings.TrimSpace(commande.NumeroCommande) == "" {
		commande.NumeroCommande = existing.NumeroCommande
	}
	s.applyDefaults(&commande)
	commande.CalculerTotaux()

	if err = s.checkFournisseur(ctx, commande.FournisseurID); err != nil {
		return domain.Commande{}, err
	}

	updated, err := s.repo.Update(ctx, commande)
	if err != nil {
		return domain.Commande{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent("commande", domain.EventUpdated, updated.ID, updated))

	return updated, nil
}

func (s *CommandeService) UpdateStatut(ctx context.Context, id uint, statut domain.StatutCommande) (domain.Commande, error) {
	if err := s.repo.UpdateStatut(ctx, id, statut); err != nil {
		return domain.Commande{}, fmt.Errorf("s.repo.UpdateStatut -> %w", err)
	}

	commande, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Commande{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent("commande", domain.EventUpdated, id, commande))

	return commande, nil
}

func (s *CommandeService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent("commande", domain.EventDeleted, id, nil))

	return nil
}

// SendConfirmation emails the order confirmation now and reports why it
// could not be sent.
func (s *CommandeService) SendConfirmation(ctx context.Context, id uint) error {
	commande, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if !s.mailer.GmailAvailable() {
		return ErrGoogleUnavailable
	}
	if commande.FournisseurEmail == "" {
		return ErrEmailMissing
	}

	if !s.mailer.SendOrderConfirmation(ctx, orderMail(commande)) {
		return ErrGoogleOperationFailed
	}

	return nil
}

func (s *CommandeService) Stats(ctx context.Context) (domain.CommandeStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return domain.CommandeStats{}, fmt.Errorf("s.repo.Stats -> %w", err)
	}

	return stats, nil
}

func (s *CommandeService) applyDefaults(c *domain.Commande) {
	c.NumeroCommande = strings.TrimSpace(c.NumeroCommande)
	if c.Statut == "" {
		c.Statut = domain.CommandeBrouillon
	}
	if c.Type == "" {
		c.Type = domain.CommandeStandard
	}
	if c.DateCommande == "" {
		c.DateCommande = s.now().Format(domain.DateLayout)
	}
	if c.Lignes == nil {
		c.Lignes = []domain.LigneCommande{}
	}
}

func (s *CommandeService) checkFournisseur(ctx context.Context, id *uint) error {
	if id == nil {
		return nil
	}

	if _, err := s.fournisseurs.FindByID(ctx, *id); err != nil {
		if errors.Is(err, repository.ErrSocieteNotFound) {
			return ErrFournisseurNotFound
		}
		return fmt.Errorf("s.fournisseurs.FindByID -> %w", err)
	}

	return nil
}

func orderMail(c domain.Commande) google.OrderMail {
	return google.OrderMail{
		FournisseurEmail: c.FournisseurEmail,
		FournisseurNom:   c.FournisseurNom,
		NumeroCommande:   c.NumeroCommande,
		MontantTTC:       c.MontantTTC,
		DateCommande:     c.DateCommande,
	}
}
