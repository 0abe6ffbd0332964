package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/google"
	"github.com/magscene/magsav-api/internal/repository"
)

var (
	ErrPlanificationNotFound = repository.ErrPlanificationNotFound
	ErrVehiculeInconnu       = errors.New("vehicule not found")
)

type PlanificationRepository interface {
	Create(ctx context.Context, p domain.Planification) (domain.Planification, error)
	FindAll(ctx context.Context) ([]domain.Planification, error)
	FindByID(ctx context.Context, id uint) (domain.Planification, error)
	FindByTechnicien(ctx context.Context, technicienID uint) ([]domain.Planification, error)
	FindByStatut(ctx context.Context, statut domain.StatutPlanification) ([]domain.Planification, error)
	FindDueForReminder(ctx context.Context, day string) ([]domain.Planification, error)
	Update(ctx context.Context, p domain.Planification) (domain.Planification, error)
	UpdateGoogleEventID(ctx context.Context, id uint, eventID string) error
	MarkReminderSent(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

type TechnicienFinder interface {
	FindByID(ctx context.Context, id uint) (domain.Technicien, error)
}

type VehiculeFinder interface {
	FindByID(ctx context.Context, id uint) (domain.Vehicule, error)
}

// CalendarSyncer mirrors planifications as Google Calendar events.
type CalendarSyncer interface {
	CalendarAvailable() bool
	SyncPlanification(ctx context.Context, p domain.Planification) (string, bool)
	DeletePlanification(ctx context.Context, eventID string) bool
}

// InterventionMailer emails clients about their interventions.
type InterventionMailer interface {
	GmailAvailable() bool
	SendInterventionNotification(ctx context.Context, m google.InterventionMail) bool
	SendInterventionReminder(ctx context.Context, m google.ReminderMail) bool
}

type PlanificationService struct {
	repo        PlanificationRepository
	techniciens TechnicienFinder
	vehicules   VehiculeFinder
	calendar    CalendarSyncer
	mailer      InterventionMailer
	events      EventPublisher
	bg          *Background
	now         func() time.Time
}

func NewPlanificationService(
	repo PlanificationRepository,
	techniciens TechnicienFinder,
	vehicules VehiculeFinder,
	calendar CalendarSyncer,
	mailer InterventionMailer,
	events EventPublisher,
	bg *Background,
) *PlanificationService {
	return &PlanificationService{
		repo:        repo,
		techniciens: techniciens,
		vehicules:   vehicules,
		calendar:    calendar,
		mailer:      mailer,
		events:      publisherOrNop(events),
		bg:          bg,
		now:         time.Now,
	}
}

func (s *PlanificationService) List(ctx context.Context) ([]domain.Planification, error) {
	planifications, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return planifications, nil
}

func (s *PlanificationService) Get(ctx context.Context, id uint) (domain.Planification, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Planification{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return p, nil
}

func (s *PlanificationService) ListByTechnicien(ctx context.Context, technicienID uint) ([]domain.Planification, error) {
	planifications, err := s.repo.FindByTechnicien(ctx, technicienID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByTechnicien -> %w", err)
	}

	return planifications, nil
}

func (s *PlanificationService) ListByStatut(ctx context.Context, statut domain.StatutPlanification) ([]domain.Planification, error) {
	planifications, err := s.repo.FindByStatut(ctx, statut)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByStatut -> %w", err)
	}

	return planifications, nil
}

// Create stores the planification, then mirrors it in Google Calendar and
// notifies the client in the background.
func (s *PlanificationService) Create(ctx context.Context, p domain.Planification) (domain.Planification, error) {
	p.ID = 0
	p.GoogleEventID = ""
	p.EmailReminderSent = false
	p.ApplyDefaults()

	if err := s.checkReferences(ctx, p); err != nil {
		return domain.Planification{}, err
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return domain.Planification{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent("planification", domain.EventCreated, created.ID, created))
	s.syncCalendarAsync(created)
	s.notifyClientAsync(created)

	return created, nil
}

func (s *PlanificationService) Update(ctx context.Context, id uint, p domain.Planification) (domain.Planification, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Planification{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.GoogleEventID = existing.GoogleEventID
	p.EmailReminderSent = existing.EmailReminderSent
	p.ApplyDefaults()

	if err = s.checkReferences(ctx, p); err != nil {
		return domain.Planification{}, err
	}

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return domain.Planification{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent("planification", domain.EventUpdated, updated.ID, updated))
	s.syncCalendarAsync(updated)

	return updated, nil
}

func (s *PlanificationService) Delete(ctx context.Context, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent("planification", domain.EventDeleted, id, nil))

	if existing.GoogleEventID != "" && s.calendar.CalendarAvailable() {
		eventID := existing.GoogleEventID
		s.bg.Go("planification.calendar.delete", func(ctx context.Context) {
			s.calendar.DeletePlanification(ctx, eventID)
		})
	}

	return nil
}

// Terminer closes the planification now and updates its Calendar event.
func (s *PlanificationService) Terminer(ctx context.Context, id uint) (domain.Planification, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Planification{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	p.Statut = domain.PlanificationTerminee
	p.DateFinReel = s.now().Format(domain.DateTimeLayout)

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return domain.Planification{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent("planification", domain.EventUpdated, updated.ID, updated))
	s.syncCalendarAsync(updated)

	return updated, nil
}

// SyncAllToCalendar pushes every planification to Google Calendar and returns
// the number of successful syncs.
func (s *PlanificationService) SyncAllToCalendar(ctx context.Context) (int, error) {
	if !s.calendar.CalendarAvailable() {
		return 0, ErrGoogleUnavailable
	}

	planifications, err := s.repo.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	synced := 0
	for _, p := range planifications {
		if s.syncCalendar(ctx, p) {
			synced++
		}
	}

	zap.L().Info("Planifications synced to Google Calendar", zap.Int("synced", synced), zap.Int("total", len(planifications)))

	return synced, nil
}

// SendReminders emails the clients of tomorrow's planifications that were
// not reminded yet and returns how many emails went out.
func (s *PlanificationService) SendReminders(ctx context.Context) (int, error) {
	if !s.mailer.GmailAvailable() {
		return 0, ErrGoogleUnavailable
	}

	tomorrow := s.now().AddDate(0, 0, 1).Format(domain.DateLayout)
	due, err := s.repo.FindDueForReminder(ctx, tomorrow)
	if err != nil {
		return 0, fmt.Errorf("s.repo.FindDueForReminder -> %w", err)
	}

	sent := 0
	for _, p := range due {
		ok := s.mailer.SendInterventionReminder(ctx, google.ReminderMail{
			ClientEmail:   p.ClientEmail,
			ClientNom:     p.ClientNom,
			TechnicienNom: p.TechnicienNom,
			Date:          p.DatePrevue,
			Heure:         p.HeurePrevue,
		})
		if !ok {
			continue
		}

		if err = s.repo.MarkReminderSent(ctx, p.ID); err != nil {
			zap.L().Warn("Failed to mark reminder as sent", zap.Uint("planification_id", p.ID), zap.Error(err))
			continue
		}
		sent++
	}

	return sent, nil
}

func (s *PlanificationService) checkReferences(ctx context.Context, p domain.Planification) error {
	if _, err := s.techniciens.FindByID(ctx, p.TechnicienID); err != nil {
		if errors.Is(err, repository.ErrTechnicienNotFound) {
			return ErrTechnicienNotFound
		}
		return fmt.Errorf("s.techniciens.FindByID -> %w", err)
	}

	if p.VehiculeID != nil {
		if _, err := s.vehicules.FindByID(ctx, *p.VehiculeID); err != nil {
			if errors.Is(err, repository.ErrVehiculeNotFound) {
				return ErrVehiculeInconnu
			}
			return fmt.Errorf("s.vehicules.FindByID -> %w", err)
		}
	}

	return nil
}

func (s *PlanificationService) syncCalendarAsync(p domain.Planification) {
	if !s.calendar.CalendarAvailable() {
		return
	}

	s.bg.Go("planification.calendar.sync", func(ctx context.Context) {
		s.syncCalendar(ctx, p)
	})
}

// syncCalendar pushes p and stores the event id Google returned.
func (s *PlanificationService) syncCalendar(ctx context.Context, p domain.Planification) bool {
	eventID, ok := s.calendar.SyncPlanification(ctx, p)
	if !ok {
		return false
	}

	if eventID != p.GoogleEventID {
		if err := s.repo.UpdateGoogleEventID(ctx, p.ID, eventID); err != nil {
			zap.L().Warn("Failed to store Google event id", zap.Uint("planification_id", p.ID), zap.Error(err))
		}
	}

	return true
}

func (s *PlanificationService) notifyClientAsync(p domain.Planification) {
	if !p.NotificationClientEmail || p.ClientEmail == "" || !s.mailer.GmailAvailable() {
		return
	}

	s.bg.Go("planification.notification", func(ctx context.Context) {
		s.mailer.SendInterventionNotification(ctx, google.InterventionMail{
			ClientEmail:      p.ClientEmail,
			ClientNom:        p.ClientNom,
			TechnicienNom:    p.TechnicienNom,
			Date:             p.DatePrevue + " " + p.HeurePrevue,
			TypeIntervention: string(p.TypeIntervention),
		})
	})
}
