package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/repository"
)

type memPlanificationRepo struct {
	PlanificationRepository

	mu       sync.Mutex
	items    map[uint]domain.Planification
	nextID   uint
	reminded []uint
}

func newMemPlanificationRepo(existing ...domain.Planification) *memPlanificationRepo {
	r := &memPlanificationRepo{items: map[uint]domain.Planification{}, nextID: 10}
	for _, p := range existing {
		r.items[p.ID] = p
	}
	return r
}

func (r *memPlanificationRepo) Create(_ context.Context, p domain.Planification) (domain.Planification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = r.nextID
	p.TechnicienNom = "Marie Curie"
	r.items[p.ID] = p
	return p, nil
}

func (r *memPlanificationRepo) FindAll(_ context.Context) ([]domain.Planification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]domain.Planification, 0, len(r.items))
	for _, p := range r.items {
		all = append(all, p)
	}
	return all, nil
}

func (r *memPlanificationRepo) FindByID(_ context.Context, id uint) (domain.Planification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return domain.Planification{}, fmt.Errorf("r.dao.FindByID -> %w", repository.ErrPlanificationNotFound)
	}
	return p, nil
}

func (r *memPlanificationRepo) FindDueForReminder(_ context.Context, day string) ([]domain.Planification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var due []domain.Planification
	for _, p := range r.items {
		if p.DatePrevue == day && p.ClientEmail != "" && !p.EmailReminderSent {
			due = append(due, p)
		}
	}
	return due, nil
}

func (r *memPlanificationRepo) Update(_ context.Context, p domain.Planification) (domain.Planification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[p.ID] = p
	return p, nil
}

func (r *memPlanificationRepo) UpdateGoogleEventID(_ context.Context, id uint, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return repository.ErrPlanificationNotFound
	}
	p.GoogleEventID = eventID
	r.items[id] = p
	return nil
}

func (r *memPlanificationRepo) MarkReminderSent(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.items[id]
	p.EmailReminderSent = true
	r.items[id] = p
	r.reminded = append(r.reminded, id)
	return nil
}

func (r *memPlanificationRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return repository.ErrPlanificationNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memPlanificationRepo) get(id uint) domain.Planification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[id]
}

type memTechnicienFinder map[uint]domain.Technicien

func (m memTechnicienFinder) FindByID(_ context.Context, id uint) (domain.Technicien, error) {
	t, ok := m[id]
	if !ok {
		return domain.Technicien{}, fmt.Errorf("r.dao.FindByID -> %w", repository.ErrTechnicienNotFound)
	}
	return t, nil
}

type memVehiculeFinder map[uint]domain.Vehicule

func (m memVehiculeFinder) FindByID(_ context.Context, id uint) (domain.Vehicule, error) {
	v, ok := m[id]
	if !ok {
		return domain.Vehicule{}, fmt.Errorf("r.dao.FindByID -> %w", repository.ErrVehiculeNotFound)
	}
	return v, nil
}

var planificationNow = time.Date(2024, 5, 1, 17, 30, 0, 0, time.UTC)

func newTestPlanificationService(repo *memPlanificationRepo, g *fakeGoogle) (*PlanificationService, *recordingPublisher, *Background) {
	events := &recordingPublisher{}
	bg := NewBackground(time.Second)
	s := NewPlanificationService(
		repo,
		memTechnicienFinder{1: {ID: 1, Nom: "Curie", Prenom: "Marie"}},
		memVehiculeFinder{2: {ID: 2, Immatriculation: "AB-123-CD"}},
		g, g, events, bg,
	)
	s.now = func() time.Time { return planificationNow }

	return s, events, bg
}

func validPlanification() domain.Planification {
	return domain.Planification{
		TechnicienID: 1,
		ClientNom:    "Festival Nord",
		ClientEmail:  "regie@festival-nord.fr",
		DatePrevue:   "2024-05-02",
		HeurePrevue:  "09:30",
	}
}

func TestPlanificationService_CreateSyncsCalendar(t *testing.T) {
	repo := newMemPlanificationRepo()
	g := newFakeGoogle()
	s, events, bg := newTestPlanificationService(repo, g)

	created, err := s.Create(context.Background(), validPlanification())
	require.NoError(t, err)
	bg.Wait()

	assert.Equal(t, domain.PlanificationPlanifiee, created.Statut)
	assert.Equal(t, domain.PrioriteNormale, created.Priorite)
	assert.Equal(t, domain.DefaultDureeEstimee, created.DureeEstimee)
	require.Len(t, g.synced, 1)
	assert.Equal(t, "evt-1", repo.get(created.ID).GoogleEventID)
	assert.Empty(t, g.notifications)
	assert.Equal(t, []string{"planification.created"}, events.types())
}

func TestPlanificationService_CreateNotifiesClient(t *testing.T) {
	g := newFakeGoogle()
	s, _, bg := newTestPlanificationService(newMemPlanificationRepo(), g)

	p := validPlanification()
	p.NotificationClientEmail = true
	p.TypeIntervention = domain.InterventionInstallation

	_, err := s.Create(context.Background(), p)
	require.NoError(t, err)
	bg.Wait()

	require.Len(t, g.notifications, 1)
	assert.Equal(t, "regie@festival-nord.fr", g.notifications[0].ClientEmail)
	assert.Equal(t, "2024-05-02 09:30", g.notifications[0].Date)
	assert.Equal(t, "INSTALLATION", g.notifications[0].TypeIntervention)
}

func TestPlanificationService_CreateWithoutCalendar(t *testing.T) {
	repo := newMemPlanificationRepo()
	g := newFakeGoogle()
	g.available = false
	s, _, bg := newTestPlanificationService(repo, g)

	created, err := s.Create(context.Background(), validPlanification())
	require.NoError(t, err)
	bg.Wait()

	assert.Empty(t, g.synced)
	assert.Empty(t, repo.get(created.ID).GoogleEventID)
}

func TestPlanificationService_CreateChecksReferences(t *testing.T) {
	s, _, _ := newTestPlanificationService(newMemPlanificationRepo(), newFakeGoogle())

	p := validPlanification()
	p.TechnicienID = 9
	_, err := s.Create(context.Background(), p)
	assert.ErrorIs(t, err, ErrTechnicienNotFound)

	p = validPlanification()
	p.VehiculeID = ptr(uint(9))
	_, err = s.Create(context.Background(), p)
	assert.ErrorIs(t, err, ErrVehiculeInconnu)
}

func TestPlanificationService_UpdateKeepsGoogleState(t *testing.T) {
	existing := validPlanification()
	existing.ID = 4
	existing.GoogleEventID = "evt-4"
	existing.EmailReminderSent = true
	repo := newMemPlanificationRepo(existing)
	g := newFakeGoogle()
	g.eventID = "evt-4"
	s, _, bg := newTestPlanificationService(repo, g)

	p := validPlanification()
	p.HeurePrevue = "14:00"
	updated, err := s.Update(context.Background(), 4, p)
	require.NoError(t, err)
	bg.Wait()

	assert.Equal(t, "14:00", updated.HeurePrevue)
	assert.Equal(t, "evt-4", updated.GoogleEventID)
	assert.True(t, updated.EmailReminderSent)
	require.Len(t, g.synced, 1)
	assert.Equal(t, "evt-4", g.synced[0].GoogleEventID)

	_, err = s.Update(context.Background(), 404, p)
	assert.ErrorIs(t, err, ErrPlanificationNotFound)
}

func TestPlanificationService_DeleteRemovesEvent(t *testing.T) {
	existing := validPlanification()
	existing.ID = 4
	existing.GoogleEventID = "evt-4"
	repo := newMemPlanificationRepo(existing)
	g := newFakeGoogle()
	s, events, bg := newTestPlanificationService(repo, g)

	require.NoError(t, s.Delete(context.Background(), 4))
	bg.Wait()

	assert.Equal(t, []string{"evt-4"}, g.deleted)
	assert.Equal(t, []string{"planification.deleted"}, events.types())
	assert.ErrorIs(t, s.Delete(context.Background(), 4), ErrPlanificationNotFound)
}

func TestPlanificationService_Terminer(t *testing.T) {
	existing := validPlanification()
	existing.ID = 4
	repo := newMemPlanificationRepo(existing)
	s, _, bg := newTestPlanificationService(repo, newFakeGoogle())

	done, err := s.Terminer(context.Background(), 4)
	require.NoError(t, err)
	bg.Wait()

	assert.Equal(t, domain.PlanificationTerminee, done.Statut)
	assert.Equal(t, "2024-05-01 17:30:00", done.DateFinReel)
}

func TestPlanificationService_SyncAllToCalendar(t *testing.T) {
	a, b := validPlanification(), validPlanification()
	a.ID, b.ID = 1, 2
	repo := newMemPlanificationRepo(a, b)

	g := newFakeGoogle()
	s, _, _ := newTestPlanificationService(repo, g)

	synced, err := s.SyncAllToCalendar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, synced)
	assert.Equal(t, "evt-1", repo.get(2).GoogleEventID)

	g.available = false
	_, err = s.SyncAllToCalendar(context.Background())
	assert.ErrorIs(t, err, ErrGoogleUnavailable)
}

func TestPlanificationService_SendReminders(t *testing.T) {
	tomorrow := validPlanification()
	tomorrow.ID = 1
	alreadySent := validPlanification()
	alreadySent.ID = 2
	alreadySent.EmailReminderSent = true
	later := validPlanification()
	later.ID = 3
	later.DatePrevue = "2024-05-10"
	repo := newMemPlanificationRepo(tomorrow, alreadySent, later)

	g := newFakeGoogle()
	s, _, _ := newTestPlanificationService(repo, g)

	sent, err := s.SendReminders(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, sent)
	assert.Equal(t, []uint{1}, repo.reminded)
	require.Len(t, g.reminders, 1)
	assert.Equal(t, "09:30", g.reminders[0].Heure)
}
