package dao

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var ErrGoogleConfigNotFound = errors.New("google config not found")

type GoogleConfig struct {
	ID                        uint           `gorm:"primaryKey"`
	Nom                       string         `gorm:"size:100;not null"`
	ClientID                  string         `gorm:"size:255"`
	ClientSecret              string         `gorm:"size:255"`
	RedirectURI               string         `gorm:"size:255"`
	Scopes                    pq.StringArray `gorm:"type:text[]"`
	AccessToken               string         `gorm:"type:text"`
	RefreshToken              string         `gorm:"type:text"`
	TokenType                 string         `gorm:"size:20"`
	TokenExpiry               *time.Time
	CalendrierPrincipal       string `gorm:"size:255;not null;default:'primary'"`
	SyncCalendarActif         bool   `gorm:"not null;default:false"`
	IntervalleSync            int    `gorm:"not null;default:30"`
	GmailActif                bool   `gorm:"not null;default:false"`
	EmailExpediteur           string `gorm:"size:255"`
	NomExpediteur             string `gorm:"size:255"`
	SignatureEmail            string `gorm:"type:text"`
	ContactsActif             bool   `gorm:"not null;default:false"`
	SyncContactsAuto          bool   `gorm:"not null;default:false"`
	NotificationInterventions bool   `gorm:"not null;default:true"`
	RappelsAutomatiques       bool   `gorm:"not null;default:true"`
	Actif                     bool   `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type GoogleConfigDAO struct {
	db *gorm.DB
}

func NewGoogleConfigDAO(db *gorm.DB) *GoogleConfigDAO {
	return &GoogleConfigDAO{
		db: db,
	}
}

// FindFirst returns the oldest configuration row; the application uses a single one.
func (d *GoogleConfigDAO) FindFirst(ctx context.Context) (GoogleConfig, error) {
	var c GoogleConfig

	result := d.db.WithContext(ctx).Order("id").First(&c)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return GoogleConfig{}, ErrGoogleConfigNotFound
		}

		return GoogleConfig{}, result.Error
	}

	return c, nil
}

// Save inserts the configuration when it has no ID and rewrites it otherwise.
func (d *GoogleConfigDAO) Save(ctx context.Context, c GoogleConfig) (GoogleConfig, error) {
	var result *gorm.DB
	if c.ID == 0 {
		result = d.db.WithContext(ctx).Create(&c)
	} else {
		result = d.db.WithContext(ctx).Omit("created_at").Save(&c)
	}
	if result.Error != nil {
		return GoogleConfig{}, result.Error
	}

	return c, nil
}

func (d *GoogleConfigDAO) UpdateTokens(ctx context.Context, id uint, accessToken, refreshToken, tokenType string, expiry *time.Time) error {
	result := d.db.WithContext(ctx).Model(&GoogleConfig{ID: id}).Updates(map[string]any{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"token_type":    tokenType,
		"token_expiry":  expiry,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGoogleConfigNotFound
	}

	return nil
}
