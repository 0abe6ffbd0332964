package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrVehiculeNotFound      = errors.New("vehicule not found")
	ErrImmatriculationExists = errors.New("immatriculation already exists")
)

type Vehicule struct {
	ID              uint   `gorm:"primaryKey"`
	Immatriculation string `gorm:"size:20;not null;uniqueIndex"`
	TypeVehicule    string `gorm:"size:20;not null;index"`
	Marque          string `gorm:"size:100"`
	Modele          string `gorm:"size:100"`
	Annee           int
	Kilometrage     int    `gorm:"not null;default:0"`
	Statut          string `gorm:"size:20;not null;index"`
	LocationExterne bool   `gorm:"not null;default:false"`
	Notes           string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// VehiculeFilter narrows a paginated listing. Empty fields do not filter.
type VehiculeFilter struct {
	Search       string
	Statut       string
	TypeVehicule string
}

type VehiculeStats struct {
	Total         int64
	Disponibles   int64
	EnService     int64
	EnMaintenance int64
	HorsService   int64
}

type VehiculeDAO struct {
	db *gorm.DB
}

func NewVehiculeDAO(db *gorm.DB) *VehiculeDAO {
	return &VehiculeDAO{
		db: db,
	}
}

func (d *VehiculeDAO) Insert(ctx context.Context, v Vehicule) (Vehicule, error) {
	result := d.db.WithContext(ctx).Create(&v)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "immatriculation") {
			return Vehicule{}, ErrImmatriculationExists
		}

		return Vehicule{}, result.Error
	}

	return v, nil
}

func (d *VehiculeDAO) FindPage(ctx context.Context, filter VehiculeFilter, offset, limit int) ([]Vehicule, int64, error) {
	tx := d.db.WithContext(ctx).Model(&Vehicule{})
	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		tx = tx.Where("immatriculation ILIKE ? OR marque ILIKE ? OR modele ILIKE ?", pattern, pattern, pattern)
	}
	if filter.Statut != "" {
		tx = tx.Where("statut = ?", filter.Statut)
	}
	if filter.TypeVehicule != "" {
		tx = tx.Where("type_vehicule = ?", filter.TypeVehicule)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var vehicules []Vehicule
	result := tx.Order("immatriculation").Offset(offset).Limit(limit).Find(&vehicules)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return vehicules, total, nil
}

func (d *VehiculeDAO) FindByID(ctx context.Context, id uint) (Vehicule, error) {
	var v Vehicule

	result := d.db.WithContext(ctx).First(&v, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Vehicule{}, ErrVehiculeNotFound
		}

		return Vehicule{}, result.Error
	}

	return v, nil
}

func (d *VehiculeDAO) FindByImmatriculation(ctx context.Context, immatriculation string) (Vehicule, error) {
	var v Vehicule

	result := d.db.WithContext(ctx).First(&v, "immatriculation = ?", immatriculation)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Vehicule{}, ErrVehiculeNotFound
		}

		return Vehicule{}, result.Error
	}

	return v, nil
}

func (d *VehiculeDAO) Update(ctx context.Context, v Vehicule) (Vehicule, error) {
	result := d.db.WithContext(ctx).Omit("created_at").Save(&v)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "immatriculation") {
			return Vehicule{}, ErrImmatriculationExists
		}

		return Vehicule{}, result.Error
	}

	return v, nil
}

func (d *VehiculeDAO) UpdateKilometrage(ctx context.Context, id uint, kilometrage int) error {
	return d.updateColumn(ctx, id, "kilometrage", kilometrage)
}

func (d *VehiculeDAO) UpdateStatut(ctx context.Context, id uint, statut string) error {
	return d.updateColumn(ctx, id, "statut", statut)
}

func (d *VehiculeDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Vehicule{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVehiculeNotFound
	}

	return nil
}

func (d *VehiculeDAO) Stats(ctx context.Context) (VehiculeStats, error) {
	var stats VehiculeStats

	result := d.db.WithContext(ctx).Model(&Vehicule{}).Select(
		`COUNT(*) AS total,
		COUNT(*) FILTER (WHERE statut = ?) AS disponibles,
		COUNT(*) FILTER (WHERE statut = ?) AS en_service,
		COUNT(*) FILTER (WHERE statut = ?) AS en_maintenance,
		COUNT(*) FILTER (WHERE statut = ?) AS hors_service`,
		"DISPONIBLE", "EN_SERVICE", "MAINTENANCE", "HORS_SERVICE",
	).Scan(&stats)
	if result.Error != nil {
		return VehiculeStats{}, result.Error
	}

	return stats, nil
}

func (d *VehiculeDAO) updateColumn(ctx context.Context, id uint, column string, value any) error {
	result := d.db.WithContext(ctx).Model(&Vehicule{ID: id}).Update(column, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVehiculeNotFound
	}

	return nil
}
