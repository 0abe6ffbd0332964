package v1

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magscene/magsav-api/internal/api/handler/v1/response"
	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/service"
)

type fakeTechnicienService struct {
	TechnicienService

	techniciens map[uint]domain.Technicien
	created     []domain.Technicien
	inUse       map[uint]bool
}

func newFakeTechnicienService() *fakeTechnicienService {
	return &fakeTechnicienService{
		techniciens: map[uint]domain.Technicien{
			1: {ID: 1, Nom: "Martin", Prenom: "Lucie", Statut: domain.TechnicienActif},
			2: {ID: 2, Nom: "Durand", Prenom: "Paul", Statut: domain.TechnicienConge},
		},
		inUse: map[uint]bool{1: true},
	}
}

func (f *fakeTechnicienService) Actifs(context.Context) ([]domain.Technicien, error) {
	var out []domain.Technicien
	for _, t := range f.techniciens {
		if t.Statut == domain.TechnicienActif {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTechnicienService) Get(_ context.Context, id uint) (domain.Technicien, error) {
	t, ok := f.techniciens[id]
	if !ok {
		return domain.Technicien{}, fmt.Errorf("s.repo.FindByID -> %w", service.ErrTechnicienNotFound)
	}
	return t, nil
}

func (f *fakeTechnicienService) Create(_ context.Context, t domain.Technicien) (domain.Technicien, error) {
	t.ID = uint(100 + len(f.created))
	f.created = append(f.created, t)
	return t, nil
}

func (f *fakeTechnicienService) Update(_ context.Context, id uint, t domain.Technicien) (domain.Technicien, error) {
	t.ID = id
	f.techniciens[id] = t
	return t, nil
}

func (f *fakeTechnicienService) Delete(_ context.Context, id uint) error {
	if _, ok := f.techniciens[id]; !ok {
		return service.ErrTechnicienNotFound
	}
	if f.inUse[id] {
		return fmt.Errorf("s.repo.Delete -> %w", service.ErrTechnicienInUse)
	}
	delete(f.techniciens, id)
	return nil
}

func technicienRouter(svc TechnicienService) *gin.Engine {
	h := NewTechnicienHandler(svc)
	r := gin.New()
	r.GET("/techniciens/actifs", h.HandleListActifs)
	r.POST("/techniciens", h.HandleCreateTechnicien)
	r.GET("/techniciens/:id", h.HandleGetTechnicien)
	r.PUT("/techniciens/:id", h.HandleUpdateTechnicien)
	r.DELETE("/techniciens/:id", h.HandleDeleteTechnicien)

	return r
}

func TestTechnicienHandler_ListActifs(t *testing.T) {
	r := technicienRouter(newFakeTechnicienService())

	w := perform(r, http.MethodGet, "/techniciens/actifs", nil)

	require.Equal(t, http.StatusOK, w.Code)
	got := decode[[]domain.Technicien](t, w)
	require.Len(t, got, 1)
	assert.Equal(t, "Lucie", got[0].Prenom)
}

func TestTechnicienHandler_Get(t *testing.T) {
	r := technicienRouter(newFakeTechnicienService())

	w := perform(r, http.MethodGet, "/techniciens/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Durand", decode[domain.Technicien](t, w).Nom)

	w = perform(r, http.MethodGet, "/techniciens/9", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, decode[response.Err](t, w).Success)
}

func TestTechnicienHandler_Create(t *testing.T) {
	svc := newFakeTechnicienService()
	r := technicienRouter(svc)

	w := perform(r, http.MethodPost, "/techniciens", map[string]any{
		"nom":         " Petit ",
		"prenom":      "Jeanne",
		"statut":      "conge",
		"specialites": []string{"Son", "Vidéo"},
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, uint(100), decode[response.Mutation](t, w).ID)
	require.Len(t, svc.created, 1)
	assert.Equal(t, "Petit", svc.created[0].Nom)
	assert.Equal(t, domain.TechnicienConge, svc.created[0].Statut)
	assert.Equal(t, []string{"Son", "Vidéo"}, svc.created[0].Specialites)
}

func TestTechnicienHandler_CreateInvalid(t *testing.T) {
	r := technicienRouter(newFakeTechnicienService())

	w := perform(r, http.MethodPost, "/techniciens", map[string]string{"nom": "Petit", "email": "jeanne", "statut": "retraite"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	got := decode[response.Err](t, w)
	assert.Contains(t, got.ValidationErrors, "prenom")
	assert.Contains(t, got.ValidationErrors, "email")
	assert.Contains(t, got.ValidationErrors, "statut")
}

func TestTechnicienHandler_UpdateUnknownIsNotFoundBeforeValidation(t *testing.T) {
	svc := newFakeTechnicienService()
	r := technicienRouter(svc)

	assert.Equal(t, http.StatusNotFound, perform(r, http.MethodPut, "/techniciens/42", map[string]string{}).Code)

	w := perform(r, http.MethodPut, "/techniciens/2", map[string]string{"nom": "Durand", "prenom": "Paul", "statut": "ACTIF"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.TechnicienActif, svc.techniciens[2].Statut)
}

func TestTechnicienHandler_Delete(t *testing.T) {
	r := technicienRouter(newFakeTechnicienService())

	w := perform(r, http.MethodDelete, "/techniciens/1", nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ce technicien a encore des planifications", decode[response.Err](t, w).Message)

	assert.Equal(t, http.StatusOK, perform(r, http.MethodDelete, "/techniciens/2", nil).Code)
	assert.Equal(t, http.StatusNotFound, perform(r, http.MethodDelete, "/techniciens/2", nil).Code)
}
