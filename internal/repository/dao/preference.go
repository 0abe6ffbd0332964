package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrPreferenceNotFound = errors.New("preference not found")

type Preference struct {
	Key       string    `gorm:"primaryKey;size:100"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type PreferenceDAO struct {
	db *gorm.DB
}

func NewPreferenceDAO(db *gorm.DB) *PreferenceDAO {
	return &PreferenceDAO{
		db: db,
	}
}

func (d *PreferenceDAO) Get(ctx context.Context, key string) (Preference, error) {
	var p Preference

	result := d.db.WithContext(ctx).First(&p, "key = ?", key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Preference{}, ErrPreferenceNotFound
		}

		return Preference{}, result.Error
	}

	return p, nil
}

func (d *PreferenceDAO) Upsert(ctx context.Context, key, value string) (Preference, error) {
	p := Preference{Key: key, Value: value}

	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&p)
	if result.Error != nil {
		return Preference{}, result.Error
	}

	return p, nil
}

func (d *PreferenceDAO) Delete(ctx context.Context, key string) error {
	result := d.db.WithContext(ctx).Delete(&Preference{}, "key = ?", key)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPreferenceNotFound
	}

	return nil
}
