package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrSocieteNotFound = errors.New("societe not found")

type Societe struct {
	ID              uint   `gorm:"primaryKey"`
	Type            string `gorm:"size:20;not null;index"`
	Nom             string `gorm:"size:255;not null;index"`
	Email           string `gorm:"size:255"`
	Phone           string `gorm:"size:50"`
	Adresse         string `gorm:"type:text"`
	Notes           string `gorm:"type:text"`
	GoogleContactID string `gorm:"size:255"`

	CreatedAt time.Time `gorm:"not null"`
}

type SocieteStats struct {
	Total          int64
	Clients        int64
	Fournisseurs   int64
	Manufacturiers int64
	AvecEmail      int64
}

type SocieteDAO struct {
	db *gorm.DB
}

func NewSocieteDAO(db *gorm.DB) *SocieteDAO {
	return &SocieteDAO{
		db: db,
	}
}

func (d *SocieteDAO) Insert(ctx context.Context, societe Societe) (Societe, error) {
	result := d.db.WithContext(ctx).Create(&societe)
	if result.Error != nil {
		return Societe{}, result.Error
	}

	return societe, nil
}

func (d *SocieteDAO) FindAll(ctx context.Context) ([]Societe, error) {
	var societes []Societe

	result := d.db.WithContext(ctx).Order("nom").Find(&societes)
	if result.Error != nil {
		return nil, result.Error
	}

	return societes, nil
}

func (d *SocieteDAO) FindByID(ctx context.Context, id uint) (Societe, error) {
	var societe Societe

	result := d.db.WithContext(ctx).First(&societe, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Societe{}, ErrSocieteNotFound
		}

		return Societe{}, result.Error
	}

	return societe, nil
}

func (d *SocieteDAO) FindByType(ctx context.Context, societeType string) ([]Societe, error) {
	var societes []Societe

	result := d.db.WithContext(ctx).Where("type = ?", societeType).Order("nom").Find(&societes)
	if result.Error != nil {
		return nil, result.Error
	}

	return societes, nil
}

func (d *SocieteDAO) SearchByNom(ctx context.Context, nom string) ([]Societe, error) {
	var societes []Societe

	result := d.db.WithContext(ctx).Where("nom ILIKE ?", "%"+escapeLike(nom)+"%").Order("nom").Find(&societes)
	if result.Error != nil {
		return nil, result.Error
	}

	return societes, nil
}

func (d *SocieteDAO) FindWithEmail(ctx context.Context) ([]Societe, error) {
	var societes []Societe

	result := d.db.WithContext(ctx).Where("email <> ''").Order("nom").Find(&societes)
	if result.Error != nil {
		return nil, result.Error
	}

	return societes, nil
}

// FindByNomAndType matches the name case-insensitively.
func (d *SocieteDAO) FindByNomAndType(ctx context.Context, nom, societeType string) (Societe, error) {
	var societe Societe

	result := d.db.WithContext(ctx).Where("LOWER(nom) = LOWER(?) AND type = ?", nom, societeType).First(&societe)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Societe{}, ErrSocieteNotFound
		}

		return Societe{}, result.Error
	}

	return societe, nil
}

func (d *SocieteDAO) Update(ctx context.Context, societe Societe) (Societe, error) {
	result := d.db.WithContext(ctx).Omit("created_at").Save(&societe)
	if result.Error != nil {
		return Societe{}, result.Error
	}

	return societe, nil
}

func (d *SocieteDAO) UpdateGoogleContactID(ctx context.Context, id uint, contactID string) error {
	result := d.db.WithContext(ctx).Model(&Societe{ID: id}).Update("google_contact_id", contactID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSocieteNotFound
	}

	return nil
}

func (d *SocieteDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Societe{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSocieteNotFound
	}

	return nil
}

func (d *SocieteDAO) Stats(ctx context.Context) (SocieteStats, error) {
	var stats SocieteStats

	result := d.db.WithContext(ctx).Model(&Societe{}).Select(
		`COUNT(*) AS total,
		COUNT(*) FILTER (WHERE type = ?) AS clients,
		COUNT(*) FILTER (WHERE type = ?) AS fournisseurs,
		COUNT(*) FILTER (WHERE type = ?) AS manufacturiers,
		COUNT(*) FILTER (WHERE email <> '') AS avec_email`,
		"client", "fournisseur", "manufacturier",
	).Scan(&stats)
	if result.Error != nil {
		return SocieteStats{}, result.Error
	}

	return stats, nil
}
