package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/repository"
)

var (
	ErrCategoryNotFound = repository.ErrCategoryNotFound
	ErrCategoryInUse    = repository.ErrCategoryInUse
	ErrCategoryParent   = repository.ErrCategoryParent
	ErrCategoryExists   = errors.New("category already exists under this parent")
	ErrCategoryCycle    = errors.New("category cannot move below itself")
)

type CategoryRepository interface {
	Create(ctx context.Context, c domain.Category) (domain.Category, error)
	FindAll(ctx context.Context) ([]domain.Category, error)
	FindActive(ctx context.Context) ([]domain.Category, error)
	Search(ctx context.Context, q string) ([]domain.Category, error)
	FindByID(ctx context.Context, id uint) (domain.Category, error)
	FindByNomAndParent(ctx context.Context, nom string, parentID *uint) (domain.Category, error)
	Update(ctx context.Context, c domain.Category) (domain.Category, error)
	Delete(ctx context.Context, id uint) error
}

type CategoryService struct {
	repo   CategoryRepository
	events EventPublisher
}

func NewCategoryService(repo CategoryRepository, events EventPublisher) *CategoryService {
	return &CategoryService{
		repo:   repo,
		events: publisherOrNop(events),
	}
}

func (s *CategoryService) tree(ctx context.Context) (*domain.CategoryTree, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return domain.NewCategoryTree(categories), nil
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return categories, nil
}

func (s *CategoryService) Roots(ctx context.Context) ([]domain.Category, error) {
	t, err := s.tree(ctx)
	if err != nil {
		return nil, err
	}

	return t.Roots(), nil
}

func (s *CategoryService) Children(ctx context.Context, id uint) ([]domain.Category, error) {
	t, err := s.tree(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := t.Get(id); !ok {
		return nil, ErrCategoryNotFound
	}

	return t.Children(id), nil
}

func (s *CategoryService) Active(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindActive -> %w", err)
	}

	return categories, nil
}

func (s *CategoryService) Search(ctx context.Context, q string) ([]domain.Category, error) {
	categories, err := s.repo.Search(ctx, strings.TrimSpace(q))
	if err != nil {
		return nil, fmt.Errorf("s.repo.Search -> %w", err)
	}

	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id uint) (domain.Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return c, nil
}

func (s *CategoryService) FindByNomAndParent(ctx context.Context, nom string, parentID *uint) (domain.Category, error) {
	c, err := s.repo.FindByNomAndParent(ctx, nom, parentID)
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.FindByNomAndParent -> %w", err)
	}

	return c, nil
}

// Create refuses a name already used by a sibling, case-insensitively.
func (s *CategoryService) Create(ctx context.Context, c domain.Category) (domain.Category, error) {
	c.ID = 0
	c.Nom = strings.TrimSpace(c.Nom)

	if err := s.checkParent(ctx, c.ParentID); err != nil {
		return domain.Category{}, err
	}
	if err := s.checkUnique(ctx, c.Nom, c.ParentID, 0); err != nil {
		return domain.Category{}, err
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent("category", domain.EventCreated, created.ID, created))

	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, c domain.Category) (domain.Category, error) {
	t, err := s.tree(ctx)
	if err != nil {
		return domain.Category{}, err
	}
	existing, ok := t.Get(id)
	if !ok {
		return domain.Category{}, ErrCategoryNotFound
	}

	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	c.Nom = strings.TrimSpace(c.Nom)

	if err = checkMove(t, id, c.ParentID); err != nil {
		return domain.Category{}, err
	}
	if !strings.EqualFold(c.Nom, existing.Nom) || !sameParent(c.ParentID, existing.ParentID) {
		if err = s.checkUnique(ctx, c.Nom, c.ParentID, id); err != nil {
			return domain.Category{}, err
		}
	}

	return s.save(ctx, c)
}

// Move re-parents a category; a nil parentID makes it a root.
func (s *CategoryService) Move(ctx context.Context, id uint, parentID *uint) (domain.Category, error) {
	t, err := s.tree(ctx)
	if err != nil {
		return domain.Category{}, err
	}
	c, ok := t.Get(id)
	if !ok {
		return domain.Category{}, ErrCategoryNotFound
	}

	if err = checkMove(t, id, parentID); err != nil {
		return domain.Category{}, err
	}
	if !sameParent(parentID, c.ParentID) {
		if err = s.checkUnique(ctx, c.Nom, parentID, id); err != nil {
			return domain.Category{}, err
		}
	}

	c.ParentID = parentID

	return s.save(ctx, c)
}

func (s *CategoryService) ToggleStatus(ctx context.Context, id uint) (domain.Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	c.Actif = !c.Actif

	return s.save(ctx, c)
}

// Delete fails with ErrCategoryInUse while sub-categories remain.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	t, err := s.tree(ctx)
	if err != nil {
		return err
	}
	if _, ok := t.Get(id); !ok {
		return ErrCategoryNotFound
	}
	if len(t.Children(id)) > 0 {
		return ErrCategoryInUse
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent("category", domain.EventDeleted, id, nil))

	return nil
}

func (s *CategoryService) Stats(ctx context.Context, id uint) (domain.CategoryStats, error) {
	t, err := s.tree(ctx)
	if err != nil {
		return domain.CategoryStats{}, err
	}
	if _, ok := t.Get(id); !ok {
		return domain.CategoryStats{}, ErrCategoryNotFound
	}

	return t.Stats(id), nil
}

func (s *CategoryService) Path(ctx context.Context, id uint) (string, error) {
	t, err := s.tree(ctx)
	if err != nil {
		return "", err
	}
	if _, ok := t.Get(id); !ok {
		return "", ErrCategoryNotFound
	}

	return t.Path(id), nil
}

func (s *CategoryService) WithCounts(ctx context.Context) ([]domain.CategoryWithCount, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}
	t := domain.NewCategoryTree(categories)

	out := make([]domain.CategoryWithCount, 0, len(categories))
	for _, c := range categories {
		out = append(out, domain.CategoryWithCount{Category: c, SousCategories: len(t.Children(c.ID))})
	}

	return out, nil
}

// Tree returns the categories in their portable nested form.
func (s *CategoryService) Tree(ctx context.Context) ([]domain.CategoryNode, error) {
	t, err := s.tree(ctx)
	if err != nil {
		return nil, err
	}

	return t.Nodes(), nil
}

func (s *CategoryService) save(ctx context.Context, c domain.Category) (domain.Category, error) {
	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	s.events.Publish(ctx, domain.NewEvent("category", domain.EventUpdated, updated.ID, updated))

	return updated, nil
}

func (s *CategoryService) checkParent(ctx context.Context, parentID *uint) error {
	if parentID == nil {
		return nil
	}
	if _, err := s.repo.FindByID(ctx, *parentID); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return ErrCategoryParent
		}
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return nil
}

func (s *CategoryService) checkUnique(ctx context.Context, nom string, parentID *uint, self uint) error {
	found, err := s.repo.FindByNomAndParent(ctx, nom, parentID)
	switch {
	case errors.Is(err, ErrCategoryNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("s.repo.FindByNomAndParent -> %w", err)
	case found.ID != self:
		return ErrCategoryExists
	}

	return nil
}

func checkMove(t *domain.CategoryTree, id uint, parentID *uint) error {
	if parentID == nil {
		return nil
	}
	if *parentID == id || t.IsDescendant(*parentID, id) {
		return ErrCategoryCycle
	}
	if _, ok := t.Get(*parentID); !ok {
		return ErrCategoryParent
	}

	return nil
}

func sameParent(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// SpecialiteService keeps the technicien specialties list in the preferences.
type SpecialiteService struct {
	prefs PreferenceRepository
}

func NewSpecialiteService(prefs PreferenceRepository) *SpecialiteService {
	return &SpecialiteService{
		prefs: prefs,
	}
}

// List returns the stored specialties, or the defaults when none were saved.
func (s *SpecialiteService) List(ctx context.Context) ([]string, error) {
	p, err := s.prefs.Get(ctx, domain.PreferenceSpecialites)
	if err != nil {
		if errors.Is(err, ErrPreferenceNotFound) {
			return append([]string{}, domain.DefaultSpecialites...), nil
		}
		return nil, fmt.Errorf("s.prefs.Get -> %w", err)
	}

	return splitSpecialites(p.Value), nil
}

// Set stores specialites trimmed and without case-insensitive duplicates.
func (s *SpecialiteService) Set(ctx context.Context, specialites []string) ([]string, error) {
	cleaned := NormalizeSpecialites(specialites)

	if _, err := s.prefs.Set(ctx, domain.PreferenceSpecialites, strings.Join(cleaned, ";")); err != nil {
		return nil, fmt.Errorf("s.prefs.Set -> %w", err)
	}

	return cleaned, nil
}

func NormalizeSpecialites(specialites []string) []string {
	seen := make(map[string]bool, len(specialites))
	out := make([]string, 0, len(specialites))
	for _, sp := range specialites {
		sp = strings.TrimSpace(sp)
		key := strings.ToLower(sp)
		if sp == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, sp)
	}

	return out
}

func splitSpecialites(v string) []string {
	if strings.TrimSpace(v) == "" {
		return []string{}
	}
	return NormalizeSpecialites(strings.Split(v, ";"))
}
