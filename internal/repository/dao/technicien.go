package dao

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	ErrTechnicienNotFound = errors.New("technicien not found")
	ErrTechnicienInUse    = errors.New("technicien has planifications")
)

type Technicien struct {
	ID              uint           `gorm:"primaryKey"`
	Nom             string         `gorm:"size:100;not null"`
	Prenom          string         `gorm:"size:100;not null"`
	Email           string         `gorm:"size:255"`
	Telephone       string         `gorm:"size:50"`
	Fonction        string         `gorm:"size:100"`
	Specialites     pq.StringArray `gorm:"type:text[]"`
	Statut          string         `gorm:"size:20;not null;index"`
	PermisConduire  string         `gorm:"size:50"`
	SocieteID       *uint          `gorm:"index"`
	GoogleContactID string         `gorm:"size:255"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type TechnicienDAO struct {
	db *gorm.DB
}

func NewTechnicienDAO(db *gorm.DB) *TechnicienDAO {
	return &TechnicienDAO{
		db: db,
	}
}

func (d *TechnicienDAO) Insert(ctx context.Context, t Technicien) (Technicien, error) {
	result := d.db.WithContext(ctx).Create(&t)
	if result.Error != nil {
		return Technicien{}, result.Error
	}

	return t, nil
}

func (d *TechnicienDAO) FindAll(ctx context.Context) ([]Technicien, error) {
	var techniciens []Technicien

	result := d.db.WithContext(ctx).Order("nom, prenom").Find(&techniciens)
	if result.Error != nil {
		return nil, result.Error
	}

	return techniciens, nil
}

func (d *TechnicienDAO) FindByStatut(ctx context.Context, statut string) ([]Technicien, error) {
	var techniciens []Technicien

	result := d.db.WithContext(ctx).Where("statut = ?", statut).Order("nom, prenom").Find(&techniciens)
	if result.Error != nil {
		return nil, result.Error
	}

	return techniciens, nil
}

func (d *TechnicienDAO) FindByID(ctx context.Context, id uint) (Technicien, error) {
	var t Technicien

	result := d.db.WithContext(ctx).First(&t, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Technicien{}, ErrTechnicienNotFound
		}

		return Technicien{}, result.Error
	}

	return t, nil
}

func (d *TechnicienDAO) Update(ctx context.Context, t Technicien) (Technicien, error) {
	result := d.db.WithContext(ctx).Omit("created_at").Save(&t)
	if result.Error != nil {
		return Technicien{}, result.Error
	}

	return t, nil
}

func (d *TechnicienDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Technicien{}, id)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return ErrTechnicienInUse
		}

		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTechnicienNotFound
	}

	return nil
}
