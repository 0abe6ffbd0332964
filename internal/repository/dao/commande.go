package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrCommandeNotFound     = errors.New("commande not found")
	ErrNumeroCommandeExists = errors.New("numero commande already exists")
)

type Commande struct {
	ID                  uint     `gorm:"primaryKey"`
	NumeroCommande      string   `gorm:"size:50;not null;uniqueIndex"`
	FournisseurID       *uint    `gorm:"index"`
	Fournisseur         *Societe `gorm:"foreignKey:FournisseurID;constraint:OnDelete:SET NULL"`
	Statut              string   `gorm:"size:20;not null;index"`
	Type                string   `gorm:"size:20;not null"`
	DateCommande        string   `gorm:"size:10;not null"`
	DateLivraisonPrevue string   `gorm:"size:10"`
	DateLivraisonReelle string   `gorm:"size:10"`
	MontantHT           float64  `gorm:"type:numeric(12,2);not null;default:0"`
	MontantTVA          float64  `gorm:"type:numeric(12,2);not null;default:0"`
	MontantTTC          float64  `gorm:"type:numeric(12,2);not null;default:0"`
	Commentaires        string   `gorm:"type:text"`
	AdresseLivraison    string   `gorm:"type:text"`
	Reference           string   `gorm:"size:100"`
	Description         string   `gorm:"type:text"`
	Urgente             bool     `gorm:"not null;default:false"`
	Transporteur        string   `gorm:"size:100"`
	NumeroSuivi         string   `gorm:"size:100"`

	Lignes []LigneCommande `gorm:"foreignKey:CommandeID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type LigneCommande struct {
	ID                uint     `gorm:"primaryKey"`
	CommandeID        uint     `gorm:"not null;index"`
	ProduitNom        string   `gorm:"size:255;not null"`
	ProduitReference  string   `gorm:"size:100"`
	QuantiteCommandee int      `gorm:"not null"`
	QuantiteRecue     int      `gorm:"not null;default:0"`
	PrixUnitaireHT    *float64 `gorm:"type:numeric(12,4)"`
	TauxTVA           *float64 `gorm:"type:numeric(5,2)"`
	MontantHT         float64  `gorm:"type:numeric(12,2);not null;default:0"`
	MontantTVA        float64  `gorm:"type:numeric(12,2);not null;default:0"`
	MontantTTC        float64  `gorm:"type:numeric(12,2);not null;default:0"`
	StatutReception   string   `gorm:"size:20;not null"`
}

func (LigneCommande) TableName() string {
	return "lignes_commande"
}

type CommandeStats struct {
	Total      int64
	Brouillons int64
	Envoyees   int64
	Recues     int64
	Facturees  int64
}

type CommandeDAO struct {
	db *gorm.DB
}

func NewCommandeDAO(db *gorm.DB) *CommandeDAO {
	return &CommandeDAO{
		db: db,
	}
}

func (d *CommandeDAO) Insert(ctx context.Context, commande Commande) (Commande, error) {
	result := d.db.WithContext(ctx).Omit("Fournisseur").Create(&commande)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "numero_commande") {
			return Commande{}, ErrNumeroCommandeExists
		}

		return Commande{}, result.Error
	}

	return commande, nil
}

func (d *CommandeDAO) FindAll(ctx context.Context) ([]Commande, error) {
	var commandes []Commande

	result := d.preloaded(ctx).Order("date_commande DESC, id DESC").Find(&commandes)
	if result.Error != nil {
		return nil, result.Error
	}

	return commandes, nil
}

func (d *CommandeDAO) FindByID(ctx context.Context, id uint) (Commande, error) {
	var commande Commande

	result := d.preloaded(ctx).First(&commande, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Commande{}, ErrCommandeNotFound
		}

		return Commande{}, result.Error
	}

	return commande, nil
}

func (d *CommandeDAO) FindByStatut(ctx context.Context, statut string) ([]Commande, error) {
	var commandes []Commande

	result := d.preloaded(ctx).Where("statut = ?", statut).Order("date_commande DESC, id DESC").Find(&commandes)
	if result.Error != nil {
		return nil, result.Error
	}

	return commandes, nil
}

func (d *CommandeDAO) FindByFournisseur(ctx context.Context, fournisseurID uint) ([]Commande, error) {
	var commandes []Commande

	result := d.preloaded(ctx).Where("fournisseur_id = ?", fournisseurID).Order("date_commande DESC, id DESC").Find(&commandes)
	if result.Error != nil {
		return nil, result.Error
	}

	return commandes, nil
}

// CountByNumeroPrefix counts the orders whose number starts with prefix.
func (d *CommandeDAO) CountByNumeroPrefix(ctx context.Context, prefix string) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Commande{}).Where("numero_commande LIKE ?", escapeLike(prefix)+"%").Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// Update rewrites the order and replaces its lines in one transaction.
func (d *CommandeDAO) Update(ctx context.Context, commande Commande) (Commande, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Lignes", "Fournisseur", "created_at").Save(&commande).Error; err != nil {
			return err
		}

		if err := tx.Where("commande_id = ?", commande.ID).Delete(&LigneCommande{}).Error; err != nil {
			return err
		}

		for i := range commande.Lignes {
			commande.Lignes[i].ID = 0
			commande.Lignes[i].CommandeID = commande.ID
		}
		if len(commande.Lignes) > 0 {
			if err := tx.Create(&commande.Lignes).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if isUniqueViolation(err, "numero_commande") {
			return Commande{}, ErrNumeroCommandeExists
		}

		return Commande{}, err
	}

	return commande, nil
}

func (d *CommandeDAO) UpdateStatut(ctx context.Context, id uint, statut string) error {
	result := d.db.WithContext(ctx).Model(&Commande{ID: id}).Update("statut", statut)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommandeNotFound
	}

	return nil
}

func (d *CommandeDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Commande{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommandeNotFound
	}

	return nil
}

func (d *CommandeDAO) Stats(ctx context.Context) (CommandeStats, error) {
	var stats CommandeStats

	result := d.db.WithContext(ctx).Model(&Commande{}).Select(
		`COUNT(*) AS total,
		COUNT(*) FILTER (WHERE statut = ?) AS brouillons,
		COUNT(*) FILTER (WHERE statut = ?) AS envoyees,
		COUNT(*) FILTER (WHERE statut = ?) AS recues,
		COUNT(*) FILTER (WHERE statut = ?) AS facturees`,
		"BROUILLON", "ENVOYEE", "RECUE", "FACTUREE",
	).Scan(&stats)
	if result.Error != nil {
		return CommandeStats{}, result.Error
	}

	return stats, nil
}

func (d *CommandeDAO) preloaded(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx).
		Preload("Lignes", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Fournisseur")
}
