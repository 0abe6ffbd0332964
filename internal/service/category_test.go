package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/repository"
)

type memCategoryRepo struct {
	mu     sync.Mutex
	items  map[uint]domain.Category
	nextID uint
}

func newMemCategoryRepo(existing ...domain.Category) *memCategoryRepo {
	r := &memCategoryRepo{items: map[uint]domain.Category{}, nextID: 100}
	for _, c := range existing {
		r.items[c.ID] = c
	}
	return r
}

func (r *memCategoryRepo) Create(_ context.Context, c domain.Category) (domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	c.ID = r.nextID
	r.items[c.ID] = c
	return c, nil
}

func (r *memCategoryRepo) all(keep func(domain.Category) bool) []domain.Category {
	r.mu.Lock()
	defer r.mu.Unlock()

	var found []domain.Category
	for _, c := range r.items {
		if keep(c) {
			found = append(found, c)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].ID < found[j].ID })
	return found
}

func (r *memCategoryRepo) FindAll(context.Context) ([]domain.Category, error) {
	return r.all(func(domain.Category) bool { return true }), nil
}

func (r *memCategoryRepo) FindActive(context.Context) ([]domain.Category, error) {
	return r.all(func(c domain.Category) bool { return c.Actif }), nil
}

func (r *memCategoryRepo) Search(_ context.Context, q string) ([]domain.Category, error) {
	q = strings.ToLower(q)
	return r.all(func(c domain.Category) bool {
		return strings.Contains(strings.ToLower(c.Nom), q) || strings.Contains(strings.ToLower(c.Description), q)
	}), nil
}

func (r *memCategoryRepo) FindByID(_ context.Context, id uint) (domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[id]
	if !ok {
		return domain.Category{}, fmt.Errorf("r.dao.FindByID -> %w", repository.ErrCategoryNotFound)
	}
	return c, nil
}

func (r *memCategoryRepo) FindByNomAndParent(_ context.Context, nom string, parentID *uint) (domain.Category, error) {
	found := r.all(func(c domain.Category) bool {
		return strings.EqualFold(c.Nom, nom) && sameParent(c.ParentID, parentID)
	})
	if len(found) == 0 {
		return domain.Category{}, fmt.Errorf("r.dao.FindByNomAndParent -> %w", repository.ErrCategoryNotFound)
	}
	return found[0], nil
}

func (r *memCategoryRepo) Update(_ context.Context, c domain.Category) (domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[c.ID]; !ok {
		return domain.Category{}, repository.ErrCategoryNotFound
	}
	r.items[c.ID] = c
	return c, nil
}

func (r *memCategoryRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return repository.ErrCategoryNotFound
	}
	delete(r.items, id)
	return nil
}

func uintPtr(v uint) *uint {
	return &v
}

// seedCategories builds Son(1) > Micros(2) > HF(3) and Lumière(4).
func seedCategories() *memCategoryRepo {
	return newMemCategoryRepo(
		domain.Category{ID: 1, Nom: "Son", Actif: true},
		domain.Category{ID: 2, Nom: "Micros", ParentID: uintPtr(1), Actif: true},
		domain.Category{ID: 3, Nom: "HF", ParentID: uintPtr(2), Actif: false},
		domain.Category{ID: 4, Nom: "Lumière", Ordre: -1, Actif: true},
	)
}

func TestCategoryService_Create(t *testing.T) {
	events := &recordingPublisher{}
	s := NewCategoryService(seedCategories(), events)
	ctx := context.Background()

	created, err := s.Create(ctx, domain.Category{Nom: "  Enceintes ", ParentID: uintPtr(1), Actif: true})
	require.NoError(t, err)
	assert.Equal(t, "Enceintes", created.Nom)
	assert.Equal(t, []string{"category.created"}, events.types())

	_, err = s.Create(ctx, domain.Category{Nom: "micros", ParentID: uintPtr(1)})
	assert.ErrorIs(t, err, ErrCategoryExists)

	// The same name is free under another parent.
	_, err = s.Create(ctx, domain.Category{Nom: "Micros", ParentID: uintPtr(4)})
	assert.NoError(t, err)

	_, err = s.Create(ctx, domain.Category{Nom: "Orphan", ParentID: uintPtr(99)})
	assert.ErrorIs(t, err, ErrCategoryParent)
}

func TestCategoryService_Move(t *testing.T) {
	s := NewCategoryService(seedCategories(), nil)
	ctx := context.Background()

	_, err := s.Move(ctx, 1, uintPtr(3))
	assert.ErrorIs(t, err, ErrCategoryCycle)

	_, err = s.Move(ctx, 2, uintPtr(2))
	assert.ErrorIs(t, err, ErrCategoryCycle)

	_, err = s.Move(ctx, 2, uintPtr(99))
	assert.ErrorIs(t, err, ErrCategoryParent)

	_, err = s.Move(ctx, 99, nil)
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	moved, err := s.Move(ctx, 3, nil)
	require.NoError(t, err)
	assert.True(t, moved.IsRoot())

	path, err := s.Path(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Son > Micros", path)
}

func TestCategoryService_UpdateKeepsUniqueNames(t *testing.T) {
	s := NewCategoryService(seedCategories(), nil)
	ctx := context.Background()

	_, err := s.Update(ctx, 4, domain.Category{Nom: "son"})
	assert.ErrorIs(t, err, ErrCategoryExists)

	updated, err := s.Update(ctx, 2, domain.Category{Nom: "MICROS", ParentID: uintPtr(1), Couleur: "#ff0000"})
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", updated.Couleur)

	_, err = s.Update(ctx, 1, domain.Category{Nom: "Son", ParentID: uintPtr(2)})
	assert.ErrorIs(t, err, ErrCategoryCycle)
}

func TestCategoryService_DeleteRefusesParents(t *testing.T) {
	events := &recordingPublisher{}
	s := NewCategoryService(seedCategories(), events)
	ctx := context.Background()

	assert.ErrorIs(t, s.Delete(ctx, 2), ErrCategoryInUse)
	assert.ErrorIs(t, s.Delete(ctx, 99), ErrCategoryNotFound)
	require.NoError(t, s.Delete(ctx, 3))
	require.NoError(t, s.Delete(ctx, 2))
	assert.Equal(t, []string{"category.deleted", "category.deleted"}, events.types())
}

func TestCategoryService_ToggleStatus(t *testing.T) {
	s := NewCategoryService(seedCategories(), nil)
	ctx := context.Background()

	c, err := s.ToggleStatus(ctx, 3)
	require.NoError(t, err)
	assert.True(t, c.Actif)

	active, err := s.Active(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 4)
}

func TestCategoryService_TreeViews(t *testing.T) {
	s := NewCategoryService(seedCategories(), nil)
	ctx := context.Background()

	roots, err := s.Roots(ctx)
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.Equal(t, "Lumière", roots[0].Nom)

	_, err = s.Children(ctx, 99)
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	stats, err := s.Stats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryStats{SousCategories: 1, Descendants: 2, HasChildren: true, Level: 0, Path: "Son"}, stats)

	counts, err := s.WithCounts(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 4)
	assert.Equal(t, 1, counts[0].SousCategories)
	assert.Equal(t, 0, counts[2].SousCategories)

	found, err := s.Search(ctx, " micro ")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, uint(2), found[0].ID)
}

func TestSpecialiteService(t *testing.T) {
	prefs := memPreferenceRepo{}
	s := NewSpecialiteService(prefs)
	ctx := context.Background()

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSpecialites, list)

	saved, err := s.Set(ctx, []string{" Son ", "son", "", "Rigging"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Son", "Rigging"}, saved)
	assert.Equal(t, "Son;Rigging", prefs[domain.PreferenceSpecialites])

	list, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Son", "Rigging"}, list)
}
