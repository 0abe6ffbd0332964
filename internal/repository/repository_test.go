package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/repository/dao"
)

type stubCommandeDAO struct {
	CommandeDAO
	inserted dao.Commande
	stored   dao.Commande
}

func (s *stubCommandeDAO) Insert(_ context.Context, c dao.Commande) (dao.Commande, error) {
	s.inserted = c
	c.ID = 7
	return c, nil
}

func (s *stubCommandeDAO) FindByID(_ context.Context, id uint) (dao.Commande, error) {
	if id != s.stored.ID {
		return dao.Commande{}, dao.ErrCommandeNotFound
	}
	return s.stored, nil
}

func TestCommandeRepository_CreateResolvesFournisseur(t *testing.T) {
	fournisseurID := uint(3)
	stub := &stubCommandeDAO{stored: dao.Commande{
		ID:             7,
		NumeroCommande: "CMD-20240307-0001",
		FournisseurID:  &fournisseurID,
		Fournisseur:    &dao.Societe{ID: 3, Nom: "Audio Pro", Email: "contact@audiopro.fr"},
		Statut:         "BROUILLON",
		Lignes:         []dao.LigneCommande{{ID: 1, CommandeID: 7, ProduitNom: "XLR", QuantiteCommandee: 2, StatutReception: "EN_ATTENTE"}},
	}}
	repo := NewCommandeRepository(stub)

	created, err := repo.Create(context.Background(), domain.Commande{
		NumeroCommande: "CMD-20240307-0001",
		FournisseurID:  &fournisseurID,
		Statut:         domain.CommandeBrouillon,
		Lignes:         []domain.LigneCommande{{ProduitNom: "XLR", QuantiteCommandee: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, "BROUILLON", stub.inserted.Statut)
	assert.Len(t, stub.inserted.Lignes, 1)
	assert.Equal(t, "Audio Pro", created.FournisseurNom)
	assert.Equal(t, "contact@audiopro.fr", created.FournisseurEmail)
	assert.Equal(t, domain.ReceptionEnAttente, created.Lignes[0].StatutReception)
}

func TestCommandeRepository_FindByID_NotFound(t *testing.T) {
	repo := NewCommandeRepository(&stubCommandeDAO{stored: dao.Commande{ID: 1}})

	_, err := repo.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrCommandeNotFound)
}

type stubVehiculeDAO struct {
	VehiculeDAO
	offset, limit int
}

func (s *stubVehiculeDAO) FindPage(_ context.Context, _ dao.VehiculeFilter, offset, limit int) ([]dao.Vehicule, int64, error) {
	s.offset, s.limit = offset, limit
	return []dao.Vehicule{{ID: 1, Immatriculation: "AB-123-CD", Statut: "DISPONIBLE"}}, 21, nil
}

func TestVehiculeRepository_FindPage(t *testing.T) {
	stub := &stubVehiculeDAO{}
	repo := NewVehiculeRepository(stub)

	page, err := repo.FindPage(context.Background(), VehiculeFilter{}, 2, 10)
	require.NoError(t, err)

	assert.Equal(t, 20, stub.offset)
	assert.Equal(t, 10, stub.limit)
	assert.Equal(t, int64(21), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.Number)
	assert.Equal(t, domain.VehiculeDisponible, page.Content[0].Statut)
}

type stubPlanificationDAO struct {
	PlanificationDAO
}

func (stubPlanificationDAO) FindByID(_ context.Context, id uint) (dao.Planification, error) {
	return dao.Planification{
		ID:         id,
		Technicien: &dao.Technicien{Nom: "Martin", Prenom: "Alex", Email: "alex@magscene.fr"},
		Vehicule:   &dao.Vehicule{Immatriculation: "AB-123-CD"},
	}, nil
}

func TestPlanificationRepository_DenormalizesRelations(t *testing.T) {
	repo := NewPlanificationRepository(stubPlanificationDAO{})

	p, err := repo.FindByID(context.Background(), 4)
	require.NoError(t, err)

	assert.Equal(t, "Alex Martin", p.TechnicienNom)
	assert.Equal(t, "alex@magscene.fr", p.TechnicienEmail)
	assert.Equal(t, "AB-123-CD", p.VehiculeImmatriculation)
	assert.NotNil(t, p.EquipementsRequis)
}

type stubGoogleConfigDAO struct {
	GoogleConfigDAO
	expiry *time.Time
}

func (s *stubGoogleConfigDAO) UpdateTokens(_ context.Context, _ uint, _, _, _ string, expiry *time.Time) error {
	s.expiry = expiry
	return nil
}

func TestGoogleConfigRepository_UpdateTokens_ZeroExpiryIsNull(t *testing.T) {
	stub := &stubGoogleConfigDAO{}
	repo := NewGoogleConfigRepository(stub)

	require.NoError(t, repo.UpdateTokens(context.Background(), 1, "a", "r", "Bearer", time.Time{}))
	assert.Nil(t, stub.expiry)

	exp := time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateTokens(context.Background(), 1, "a", "r", "Bearer", exp))
	require.NotNil(t, stub.expiry)
	assert.True(t, exp.Equal(*stub.expiry))
}
