package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Societe{},
		&Technicien{},
		&Vehicule{},
		&Commande{},
		&LigneCommande{},
		&Planification{},
		&GoogleConfig{},
		&Preference{},
		&Category{},
	)
}
