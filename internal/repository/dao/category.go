package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category has sub-categories")
	ErrCategoryParent   = errors.New("parent category not found")
)

type Category struct {
	ID          uint      `gorm:"primaryKey"`
	Nom         string    `gorm:"size:100;not null"`
	Description string    `gorm:"size:500"`
	ParentID    *uint     `gorm:"index"`
	Parent      *Category `gorm:"foreignKey:ParentID;constraint:OnDelete:RESTRICT"`
	Couleur     string    `gorm:"size:7"`
	Icone       string    `gorm:"size:100"`
	Ordre       int       `gorm:"not null"`
	Actif       bool      `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type CategoryDAO struct {
	db *gorm.DB
}

func NewCategoryDAO(db *gorm.DB) *CategoryDAO {
	return &CategoryDAO{
		db: db,
	}
}

func (d *CategoryDAO) Insert(ctx context.Context, c Category) (Category, error) {
	result := d.db.WithContext(ctx).Omit("Parent").Create(&c)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return Category{}, ErrCategoryParent
		}

		return Category{}, result.Error
	}

	return c, nil
}

func (d *CategoryDAO) FindAll(ctx context.Context) ([]Category, error) {
	var categories []Category

	result := d.db.WithContext(ctx).Order("ordre, nom").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

func (d *CategoryDAO) FindActive(ctx context.Context) ([]Category, error) {
	var categories []Category

	result := d.db.WithContext(ctx).Where("actif = ?", true).Order("ordre, nom").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

func (d *CategoryDAO) Search(ctx context.Context, q string) ([]Category, error) {
	var categories []Category

	pattern := "%" + escapeLike(q) + "%"
	result := d.db.WithContext(ctx).
		Where("nom ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("ordre, nom").
		Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

func (d *CategoryDAO) FindByID(ctx context.Context, id uint) (Category, error) {
	var c Category

	result := d.db.WithContext(ctx).First(&c, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Category{}, ErrCategoryNotFound
		}

		return Category{}, result.Error
	}

	return c, nil
}

// FindByNomAndParent matches nom case-insensitively among the children of
// parentID, or among the roots when parentID is nil.
func (d *CategoryDAO) FindByNomAndParent(ctx context.Context, nom string, parentID *uint) (Category, error) {
	var c Category

	query := d.db.WithContext(ctx).Where("LOWER(nom) = LOWER(?)", nom)
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}

	result := query.First(&c)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Category{}, ErrCategoryNotFound
		}

		return Category{}, result.Error
	}

	return c, nil
}

func (d *CategoryDAO) Update(ctx context.Context, c Category) (Category, error) {
	result := d.db.WithContext(ctx).Omit("created_at", "Parent").Save(&c)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return Category{}, ErrCategoryParent
		}

		return Category{}, result.Error
	}

	return c, nil
}

func (d *CategoryDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Category{}, id)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return ErrCategoryInUse
		}

		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
