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

type fakeSocieteService struct {
	SocieteService

	societes map[uint]domain.Societe
	created  []domain.Societe
	synced   int
	syncErr  error
	addErr   error
}

func (f *fakeSocieteService) Get(_ context.Context, id uint) (domain.Societe, error) {
	s, ok := f.societes[id]
	if !ok {
		return domain.Societe{}, fmt.Errorf("s.repo.FindByID -> %w", service.ErrSocieteNotFound)
	}
	return s, nil
}

func (f *fakeSocieteService) ListByType(_ context.Context, t domain.SocieteType) ([]domain.Societe, error) {
	var out []domain.Societe
	for _, s := range f.societes {
		if s.Type == t {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSocieteService) Create(_ context.Context, s domain.Societe) (domain.Societe, error) {
	s.ID = uint(100 + len(f.created))
	f.created = append(f.created, s)
	return s, nil
}

func (f *fakeSocieteService) Update(_ context.Context, id uint, s domain.Societe) (domain.Societe, error) {
	s.ID = id
	f.societes[id] = s
	return s, nil
}

func (f *fakeSocieteService) Delete(_ context.Context, id uint) error {
	if _, ok := f.societes[id]; !ok {
		return service.ErrSocieteNotFound
	}
	delete(f.societes, id)
	return nil
}

func (f *fakeSocieteService) SyncGoogleContacts(context.Context) (int, error) {
	return f.synced, f.syncErr
}

func (f *fakeSocieteService) AddToGoogleContacts(context.Context, uint) error {
	return f.addErr
}

func societeRouter(svc SocieteService) *gin.Engine {
	h := NewSocieteHandler(svc)
	r := gin.New()
	r.GET("/societes/type/:type", h.HandleListByType)
	r.GET("/societes/search", h.HandleSearchSocietes)
	r.POST("/societes", h.HandleCreateSociete)
	r.PUT("/societes/:id", h.HandleUpdateSociete)
	r.DELETE("/societes/:id", h.HandleDeleteSociete)
	r.POST("/societes/sync-google-contacts", h.HandleSyncGoogleContacts)
	r.POST("/societes/:id/add-to-google-contacts", h.HandleAddToGoogleContacts)

	return r
}

func newFakeSocieteService() *fakeSocieteService {
	return &fakeSocieteService{
		societes: map[uint]domain.Societe{
			1: {ID: 1, Nom: "Sonorisation Lyonnaise", Type: domain.SocieteClient, Email: "contact@sonolyon.fr"},
			2: {ID: 2, Nom: "Audio Pro Distribution", Type: domain.SocieteFournisseur},
		},
	}
}

func TestSocieteHandler_Create(t *testing.T) {
	svc := newFakeSocieteService()
	r := societeRouter(svc)

	w := perform(r, http.MethodPost, "/societes", map[string]string{"nom": "  Régie Lumière  ", "type": "client"})

	require.Equal(t, http.StatusCreated, w.Code)
	got := decode[response.Mutation](t, w)
	assert.True(t, got.Success)
	assert.Equal(t, uint(100), got.ID)
	require.Len(t, svc.created, 1)
	assert.Equal(t, "Régie Lumière", svc.created[0].Nom)
}

func TestSocieteHandler_CreateInvalid(t *testing.T) {
	r := societeRouter(newFakeSocieteService())

	w := perform(r, http.MethodPost, "/societes", map[string]string{"nom": "", "type": "partenaire", "email": "nope"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	got := decode[response.Err](t, w)
	assert.False(t, got.Success)
	assert.Contains(t, got.ValidationErrors, "nom")
	assert.Contains(t, got.ValidationErrors, "type")
	assert.Contains(t, got.ValidationErrors, "email")
}

func TestSocieteHandler_UpdateUnknownIsNotFoundBeforeValidation(t *testing.T) {
	r := societeRouter(newFakeSocieteService())

	w := perform(r, http.MethodPut, "/societes/42", map[string]string{})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSocieteHandler_Update(t *testing.T) {
	svc := newFakeSocieteService()
	r := societeRouter(svc)

	w := perform(r, http.MethodPut, "/societes/2", map[string]string{"nom": "Audio Pro", "type": "fournisseur"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Audio Pro", svc.societes[2].Nom)
}

func TestSocieteHandler_Delete(t *testing.T) {
	r := societeRouter(newFakeSocieteService())

	assert.Equal(t, http.StatusOK, perform(r, http.MethodDelete, "/societes/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, perform(r, http.MethodDelete, "/societes/1", nil).Code)
}

func TestSocieteHandler_ListByType(t *testing.T) {
	r := societeRouter(newFakeSocieteService())

	w := perform(r, http.MethodGet, "/societes/type/FOURNISSEUR", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[[]domain.Societe](t, w)
	require.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].ID)

	w = perform(r, http.MethodGet, "/societes/type/partenaire", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSocieteHandler_SearchRequiresNom(t *testing.T) {
	r := societeRouter(newFakeSocieteService())

	w := perform(r, http.MethodGet, "/societes/search?nom=%20", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "le paramètre nom est requis", decode[response.Err](t, w).Message)
}

func TestSocieteHandler_SyncGoogleContacts(t *testing.T) {
	svc := newFakeSocieteService()
	svc.synced = 3
	r := societeRouter(svc)

	w := perform(r, http.MethodPost, "/societes/sync-google-contacts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[response.Synced](t, w)
	assert.Equal(t, 3, got.Count)
	assert.Equal(t, "3 contacts synchronisés avec Google", got.Message)

	svc.syncErr = service.ErrGoogleUnavailable
	w = perform(r, http.MethodPost, "/societes/sync-google-contacts", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSocieteHandler_AddToGoogleContacts(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantSuccess bool
	}{
		{name: "added", wantStatus: http.StatusOK, wantSuccess: true},
		{name: "unknown société", err: service.ErrSocieteNotFound, wantStatus: http.StatusNotFound},
		{name: "contacts unavailable", err: service.ErrGoogleUnavailable, wantStatus: http.StatusBadRequest},
		{name: "no email", err: service.ErrEmailMissing, wantStatus: http.StatusBadRequest},
		{name: "google refused", err: service.ErrGoogleOperationFailed, wantStatus: http.StatusOK},
		{name: "unexpected", err: fmt.Errorf("boom"), wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newFakeSocieteService()
			svc.addErr = tt.err
			r := societeRouter(svc)

			w := perform(r, http.MethodPost, "/societes/1/add-to-google-contacts", nil)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantSuccess, decode[response.Mutation](t, w).Success)
			}
		})
	}
}
