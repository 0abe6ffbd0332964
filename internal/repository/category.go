package repository

import (
	"context"
	"fmt"

	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/repository/dao"
)

var (
	ErrCategoryNotFound = dao.ErrCategoryNotFound
	ErrCategoryInUse    = dao.ErrCategoryInUse
	ErrCategoryParent   = dao.ErrCategoryParent
)

type CategoryDAO interface {
	Insert(ctx context.Context, c dao.Category) (dao.Category, error)
	FindAll(ctx context.Context) ([]dao.Category, error)
	FindActive(ctx context.Context) ([]dao.Category, error)
	Search(ctx context.Context, q string) ([]dao.Category, error)
	FindByID(ctx context.Context, id uint) (dao.Category, error)
	FindByNomAndParent(ctx context.Context, nom string, parentID *uint) (dao.Category, error)
	Update(ctx context.Context, c dao.Category) (dao.Category, error)
	Delete(ctx context.Context, id uint) error
}

type CategoryRepository struct {
	dao CategoryDAO
}

func NewCategoryRepository(dao CategoryDAO) *CategoryRepository {
	return &CategoryRepository{
		dao: dao,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c domain.Category) (domain.Category, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(c))
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *CategoryRepository) FindActive(ctx context.Context) ([]domain.Category, error) {
	found, err := r.dao.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindActive -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *CategoryRepository) Search(ctx context.Context, q string) ([]domain.Category, error) {
	found, err := r.dao.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Search -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (domain.Category, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *CategoryRepository) FindByNomAndParent(ctx context.Context, nom string, parentID *uint) (domain.Category, error) {
	found, err := r.dao.FindByNomAndParent(ctx, nom, parentID)
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.FindByNomAndParent -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *CategoryRepository) Update(ctx context.Context, c domain.Category) (domain.Category, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(c))
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *CategoryRepository) domainToDao(c domain.Category) dao.Category {
	return dao.Category{
		ID:          c.ID,
		Nom:         c.Nom,
		Description: c.Description,
		ParentID:    c.ParentID,
		Couleur:     c.Couleur,
		Icone:       c.Icone,
		Ordre:       c.Ordre,
		Actif:       c.Actif,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (r *CategoryRepository) daoToDomain(c dao.Category) domain.Category {
	return domain.Category{
		ID:          c.ID,
		Nom:         c.Nom,
		Description: c.Description,
		ParentID:    c.ParentID,
		Couleur:     c.Couleur,
		Icone:       c.Icone,
		Ordre:       c.Ordre,
		Actif:       c.Actif,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (r *CategoryRepository) daosToDomain(categories []dao.Category) []domain.Category {
	result := make([]domain.Category, 0, len(categories))
	for _, c := range categories {
		result = append(result, r.daoToDomain(c))
	}

	return result
}
