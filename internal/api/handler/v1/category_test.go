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

type fakeCategoryService struct {
	CategoryService

	categories map[uint]domain.Category
	created    []domain.Category
	moveErr    error
	deleteErr  error
	searched   string
}

func newFakeCategoryService() *fakeCategoryService {
	return &fakeCategoryService{
		categories: map[uint]domain.Category{
			1: {ID: 1, Nom: "Son", Actif: true},
			2: {ID: 2, Nom: "Micros", ParentID: ptr[uint](1), Actif: true},
		},
	}
}

func (f *fakeCategoryService) Get(_ context.Context, id uint) (domain.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return domain.Category{}, fmt.Errorf("s.repo.FindByID -> %w", service.ErrCategoryNotFound)
	}
	return c, nil
}

func (f *fakeCategoryService) Search(_ context.Context, q string) ([]domain.Category, error) {
	f.searched = q
	return []domain.Category{f.categories[2]}, nil
}

func (f *fakeCategoryService) Path(_ context.Context, id uint) (string, error) {
	if _, ok := f.categories[id]; !ok {
		return "", service.ErrCategoryNotFound
	}
	return "Son > Micros", nil
}

func (f *fakeCategoryService) Create(_ context.Context, c domain.Category) (domain.Category, error) {
	for _, existing := range f.categories {
		if existing.Nom == c.Nom {
			return domain.Category{}, service.ErrCategoryExists
		}
	}
	c.ID = uint(100 + len(f.created))
	f.created = append(f.created, c)
	return c, nil
}

func (f *fakeCategoryService) Update(_ context.Context, id uint, c domain.Category) (domain.Category, error) {
	c.ID = id
	f.categories[id] = c
	return c, nil
}

func (f *fakeCategoryService) Move(_ context.Context, id uint, parentID *uint) (domain.Category, error) {
	if f.moveErr != nil {
		return domain.Category{}, f.moveErr
	}
	c := f.categories[id]
	c.ParentID = parentID
	f.categories[id] = c
	return c, nil
}

func (f *fakeCategoryService) Delete(_ context.Context, id uint) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.categories[id]; !ok {
		return service.ErrCategoryNotFound
	}
	delete(f.categories, id)
	return nil
}

type fakeSpecialites struct {
	list []string
}

func (f *fakeSpecialites) List(context.Context) ([]string, error) {
	return f.list, nil
}

func (f *fakeSpecialites) Set(_ context.Context, specialites []string) ([]string, error) {
	f.list = service.NormalizeSpecialites(specialites)
	return f.list, nil
}

func categoryRouter(svc CategoryService, specialites SpecialiteService) *gin.Engine {
	h := NewCategoryHandler(svc, specialites)
	r := gin.New()
	r.POST("/categories", h.HandleCreateCategory)
	r.GET("/categories/search", h.HandleSearchCategories)
	r.GET("/categories/:id", h.HandleGetCategory)
	r.PUT("/categories/:id", h.HandleUpdateCategory)
	r.DELETE("/categories/:id", h.HandleDeleteCategory)
	r.GET("/categories/:id/path", h.HandleCategoryPath)
	r.PUT("/categories/:id/move", h.HandleMoveCategory)
	r.GET("/specialites", h.HandleListSpecialites)
	r.PUT("/specialites", h.HandleSetSpecialites)

	return r
}

func TestCategoryHandler_Create(t *testing.T) {
	svc := newFakeCategoryService()
	r := categoryRouter(svc, &fakeSpecialites{})

	w := perform(r, http.MethodPost, "/categories", map[string]any{"nom": " Enceintes ", "parent_id": 1, "couleur": "#3366FF"})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, uint(100), decode[response.Mutation](t, w).ID)
	require.Len(t, svc.created, 1)
	assert.Equal(t, "Enceintes", svc.created[0].Nom)
	assert.True(t, svc.created[0].Actif)
	assert.Equal(t, uint(1), *svc.created[0].ParentID)

	w = perform(r, http.MethodPost, "/categories", map[string]any{"nom": "Son"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCategoryHandler_CreateInvalid(t *testing.T) {
	r := categoryRouter(newFakeCategoryService(), &fakeSpecialites{})

	w := perform(r, http.MethodPost, "/categories", map[string]any{"nom": " ", "couleur": "bleu"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	got := decode[response.Err](t, w)
	assert.Contains(t, got.ValidationErrors, "nom")
	assert.Contains(t, got.ValidationErrors, "couleur")
}

func TestCategoryHandler_UpdateUnknownIsNotFoundBeforeValidation(t *testing.T) {
	r := categoryRouter(newFakeCategoryService(), &fakeSpecialites{})

	assert.Equal(t, http.StatusNotFound, perform(r, http.MethodPut, "/categories/42", map[string]string{}).Code)

	w := perform(r, http.MethodPut, "/categories/2", map[string]any{"nom": "Micros HF", "actif": false})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCategoryHandler_Move(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "moved", wantStatus: http.StatusOK},
		{name: "below itself", err: service.ErrCategoryCycle, wantStatus: http.StatusBadRequest},
		{name: "unknown parent", err: service.ErrCategoryParent, wantStatus: http.StatusBadRequest},
		{name: "name taken", err: service.ErrCategoryExists, wantStatus: http.StatusConflict},
		{name: "unknown category", err: service.ErrCategoryNotFound, wantStatus: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newFakeCategoryService()
			svc.moveErr = tt.err
			r := categoryRouter(svc, &fakeSpecialites{})

			w := perform(r, http.MethodPut, "/categories/2/move", map[string]any{"parent_id": nil})

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestCategoryHandler_Delete(t *testing.T) {
	svc := newFakeCategoryService()
	r := categoryRouter(svc, &fakeSpecialites{})

	assert.Equal(t, http.StatusOK, perform(r, http.MethodDelete, "/categories/2", nil).Code)
	assert.Equal(t, http.StatusNotFound, perform(r, http.MethodDelete, "/categories/2", nil).Code)

	svc.deleteErr = service.ErrCategoryInUse
	assert.Equal(t, http.StatusConflict, perform(r, http.MethodDelete, "/categories/1", nil).Code)
}

func TestCategoryHandler_SearchAndPath(t *testing.T) {
	svc := newFakeCategoryService()
	r := categoryRouter(svc, &fakeSpecialites{})

	assert.Equal(t, http.StatusBadRequest, perform(r, http.MethodGet, "/categories/search?q=%20", nil).Code)

	w := perform(r, http.MethodGet, "/categories/search?q=micro", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "micro", svc.searched)

	w = perform(r, http.MethodGet, "/categories/2/path", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, response.CategoryPath{ID: 2, Path: "Son > Micros"}, decode[response.CategoryPath](t, w))

	assert.Equal(t, http.StatusNotFound, perform(r, http.MethodGet, "/categories/9/path", nil).Code)
}

func TestCategoryHandler_Specialites(t *testing.T) {
	specialites := &fakeSpecialites{list: []string{"Son"}}
	r := categoryRouter(newFakeCategoryService(), specialites)

	w := perform(r, http.MethodGet, "/specialites", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Son"}, decode[response.Specialites](t, w).Specialites)

	w = perform(r, http.MethodPut, "/specialites", map[string]any{"specialites": []string{"Vidéo", " vidéo ", "Rigging"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Vidéo", "Rigging"}, decode[response.Specialites](t, w).Specialites)

	assert.Equal(t, http.StatusBadRequest, perform(r, http.MethodPut, "/specialites", map[string]any{}).Code)
}
