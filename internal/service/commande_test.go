package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/repository"
)

type memCommandeRepo struct {
	CommandeRepository

	mu           sync.Mutex
	items        map[uint]domain.Commande
	fournisseurs map[uint]domain.Societe
	nextID       uint
}

func newMemCommandeRepo(existing ...domain.Commande) *memCommandeRepo {
	r := &memCommandeRepo{items: map[uint]domain.Commande{}, fournisseurs: map[uint]domain.Societe{}, nextID: 100}
	for _, c := range existing {
		r.items[c.ID] = c
	}
	return r
}

func (r *memCommandeRepo) Create(_ context.Context, c domain.Commande) (domain.Commande, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.NumeroCommande == c.NumeroCommande {
			return domain.Commande{}, fmt.Errorf("r.dao.Insert -> %w", repository.ErrNumeroCommandeExists)
		}
	}
	r.nextID++
	c.ID = r.nextID
	c.CreatedAt = time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)
	r.items[c.ID] = r.denormalize(c)

	return r.items[c.ID], nil
}

func (r *memCommandeRepo) denormalize(c domain.Commande) domain.Commande {
	if c.FournisseurID != nil {
		f := r.fournisseurs[*c.FournisseurID]
		c.FournisseurNom = f.Nom
		c.FournisseurEmail = f.Email
	}
	return c
}

func (r *memCommandeRepo) FindByID(_ context.Context, id uint) (domain.Commande, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[id]
	if !ok {
		return domain.Commande{}, fmt.Errorf("r.dao.FindByID -> %w", repository.ErrCommandeNotFound)
	}
	return c, nil
}

func (r *memCommandeRepo) CountByNumeroPrefix(_ context.Context, prefix string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, c := range r.items {
		if strings.HasPrefix(c.NumeroCommande, prefix) {
			n++
		}
	}
	return n, nil
}

func (r *memCommandeRepo) Update(_ context.Context, c domain.Commande) (domain.Commande, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[c.ID] = r.denormalize(c)
	return r.items[c.ID], nil
}

func (r *memCommandeRepo) UpdateStatut(_ context.Context, id uint, statut domain.StatutCommande) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[id]
	if !ok {
		return repository.ErrCommandeNotFound
	}
	c.Statut = statut
	r.items[id] = c
	return nil
}

func (r *memCommandeRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return repository.ErrCommandeNotFound
	}
	delete(r.items, id)
	return nil
}

type memSocieteFinder map[uint]domain.Societe

func (m memSocieteFinder) FindByID(_ context.Context, id uint) (domain.Societe, error) {
	s, ok := m[id]
	if !ok {
		return domain.Societe{}, fmt.Errorf("r.dao.FindByID -> %w", repository.ErrSocieteNotFound)
	}
	return s, nil
}

func ptr[T any](v T) *T {
	return &v
}

var commandeDay = time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC)

func newTestCommandeService(repo *memCommandeRepo, g *fakeGoogle) (*CommandeService, *recordingPublisher, *Background) {
	audio := domain.Societe{ID: 3, Type: domain.SocieteFournisseur, Nom: "Audio Pro", Email: "contact@audiopro.fr"}
	repo.fournisseurs[audio.ID] = audio

	events := &recordingPublisher{}
	bg := NewBackground(time.Second)
	s := NewCommandeService(repo, memSocieteFinder{audio.ID: audio}, g, events, bg)
	s.now = func() time.Time { return commandeDay }

	return s, events, bg
}

func TestCommandeService_CreateGeneratesNumero(t *testing.T) {
	repo := newMemCommandeRepo(domain.Commande{ID: 1, NumeroCommande: "CMD-20240307-0001"})
	s, events, bg := newTestCommandeService(repo, newFakeGoogle())

	created, err := s.Create(context.Background(), domain.Commande{})
	require.NoError(t, err)
	bg.Wait()

	assert.Equal(t, "CMD-20240307-0002", created.NumeroCommande)
	assert.Equal(t, domain.CommandeBrouillon, created.Statut)
	assert.Equal(t, domain.CommandeStandard, created.Type)
	assert.Equal(t, "2024-03-07", created.DateCommande)
	assert.Equal(t, []string{"commande.created"}, events.types())
}

func TestCommandeService_CreateSkipsTakenNumero(t *testing.T) {
	repo := newMemCommandeRepo(
		domain.Commande{ID: 1, NumeroCommande: "CMD-20240307-0001"},
		domain.Commande{ID: 2, NumeroCommande: "CMD-20240307-0003"},
	)
	s, _, bg := newTestCommandeService(repo, newFakeGoogle())

	created, err := s.Create(context.Background(), domain.Commande{})
	require.NoError(t, err)
	bg.Wait()

	assert.Equal(t, "CMD-20240307-0004", created.NumeroCommande)
}

func TestCommandeService_CreateKeepsGivenNumero(t *testing.T) {
	s, _, bg := newTestCommandeService(newMemCommandeRepo(), newFakeGoogle())

	created, err := s.Create(context.Background(), domain.Commande{NumeroCommande: "  EXT-42 "})
	require.NoError(t, err)
	bg.Wait()

	assert.Equal(t, "EXT-42", created.NumeroCommande)

	_, err = s.Create(context.Background(), domain.Commande{NumeroCommande: "EXT-42"})
	assert.ErrorIs(t, err, ErrNumeroCommandeExists)
}

func TestCommandeService_CreateComputesTotals(t *testing.T) {
	s, _, bg := newTestCommandeService(newMemCommandeRepo(), newFakeGoogle())

	created, err := s.Create(context.Background(), domain.Commande{
		Lignes: []domain.LigneCommande{
			{ProduitNom: "XLR 10m", QuantiteCommandee: 3, PrixUnitaireHT: ptr(12.5)},
			{ProduitNom: "Pied micro", QuantiteCommandee: 2, QuantiteRecue: 1, PrixUnitaireHT: ptr(40.0), TauxTVA: ptr(5.5)},
		},
	})
	require.NoError(t, err)
	bg.Wait()

	assert.InDelta(t, 117.5, created.MontantHT, 0.001)
	assert.InDelta(t, 11.9, created.MontantTVA, 0.001)
	assert.InDelta(t, 129.4, created.MontantTTC, 0.001)
	assert.Equal(t, domain.ReceptionPartielle, created.Lignes[1].StatutReception)
}

func TestCommandeService_CreateSendsConfirmation(t *testing.T) {
	g := newFakeGoogle()
	s, _, bg := newTestCommandeService(newMemCommandeRepo(), g)

	created, err := s.Create(context.Background(), domain.Commande{FournisseurID: ptr(uint(3)), MontantTTC: 120})
	require.NoError(t, err)
	bg.Wait()

	require.Len(t, g.orders, 1)
	assert.Equal(t, "contact@audiopro.fr", g.orders[0].FournisseurEmail)
	assert.Equal(t, created.NumeroCommande, g.orders[0].NumeroCommande)
}

func TestCommandeService_CreateWithoutGmail(t *testing.T) {
	g := newFakeGoogle()
	g.available = false
	s, _, bg := newTestCommandeService(newMemCommandeRepo(), g)

	_, err := s.Create(context.Background(), domain.Commande{FournisseurID: ptr(uint(3))})
	require.NoError(t, err)
	bg.Wait()

	assert.Empty(t, g.orders)
}

func TestCommandeService_CreateUnknownFournisseur(t *testing.T) {
	s, _, _ := newTestCommandeService(newMemCommandeRepo(), newFakeGoogle())

	_, err := s.Create(context.Background(), domain.Commande{FournisseurID: ptr(uint(99))})
	assert.ErrorIs(t, err, ErrFournisseurNotFound)
}

func TestCommandeService_Update(t *testing.T) {
	created := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	repo := newMemCommandeRepo(domain.Commande{ID: 5, NumeroCommande: "CMD-20240102-0001", CreatedAt: created})
	s, events, _ := newTestCommandeService(repo, newFakeGoogle())

	updated, err := s.Update(context.Background(), 5, domain.Commande{Statut: domain.CommandeValidee, Commentaires: "ok"})
	require.NoError(t, err)

	assert.Equal(t, uint(5), updated.ID)
	assert.Equal(t, "CMD-20240102-0001", updated.NumeroCommande)
	assert.Equal(t, created, updated.CreatedAt)
	assert.Equal(t, domain.CommandeValidee, updated.Statut)
	assert.Equal(t, []string{"commande.updated"}, events.types())

	_, err = s.Update(context.Background(), 404, domain.Commande{})
	assert.ErrorIs(t, err, ErrCommandeNotFound)
}

func TestCommandeService_UpdateStatut(t *testing.T) {
	repo := newMemCommandeRepo(domain.Commande{ID: 5, Statut: domain.CommandeBrouillon})
	s, _, _ := newTestCommandeService(repo, newFakeGoogle())

	updated, err := s.UpdateStatut(context.Background(), 5, domain.CommandeEnvoyee)
	require.NoError(t, err)
	assert.Equal(t, domain.CommandeEnvoyee, updated.Statut)

	_, err = s.UpdateStatut(context.Background(), 6, domain.CommandeEnvoyee)
	assert.ErrorIs(t, err, ErrCommandeNotFound)
}

func TestCommandeService_Delete(t *testing.T) {
	repo := newMemCommandeRepo(domain.Commande{ID: 5})
	s, events, _ := newTestCommandeService(repo, newFakeGoogle())

	require.NoError(t, s.Delete(context.Background(), 5))
	assert.ErrorIs(t, s.Delete(context.Background(), 5), ErrCommandeNotFound)
	assert.Equal(t, []string{"commande.deleted"}, events.types())
}

func TestCommandeService_SendConfirmation(t *testing.T) {
	tests := []struct {
		name      string
		id        uint
		available bool
		fail      bool
		wantErr   error
	}{
		{name: "missing commande", id: 404, available: true, wantErr: ErrCommandeNotFound},
		{name: "gmail unavailable", id: 1, available: false, wantErr: ErrGoogleUnavailable},
		{name: "no fournisseur email", id: 2, available: true, wantErr: ErrEmailMissing},
		{name: "send failure", id: 1, available: true, fail: true, wantErr: ErrGoogleOperationFailed},
		{name: "sent", id: 1, available: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemCommandeRepo(
				domain.Commande{ID: 1, NumeroCommande: "CMD-1", FournisseurEmail: "contact@audiopro.fr"},
				domain.Commande{ID: 2, NumeroCommande: "CMD-2"},
			)
			g := newFakeGoogle()
			g.available = tt.available
			g.fail = tt.fail
			s, _, _ := newTestCommandeService(repo, g)

			err := s.SendConfirmation(context.Background(), tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, g.orders, 1)
		})
	}
}
