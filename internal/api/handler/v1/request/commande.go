package request

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/magscene/magsav-api/internal/domain"
)

var (
	errInvalidStatutCommande = errors.New("statut de commande invalide")
	errInvalidTypeCommande   = errors.New("type de commande invalide")
)

type LigneCommandeRequest struct {
	ProduitNom        string   `json:"produit_nom"`
	ProduitReference  string   `json:"produit_reference,omitempty"`
	QuantiteCommandee int      `json:"quantite_commandee"`
	QuantiteRecue     int      `json:"quantite_recue"`
	PrixUnitaireHT    *float64 `json:"prix_unitaire_ht"`
	TauxTVA           *float64 `json:"taux_tva"`
}

func (req LigneCommandeRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.ProduitNom, validation.Required),
		validation.Field(&req.QuantiteCommandee, validation.Min(0)),
		validation.Field(&req.QuantiteRecue, validation.Min(0)),
		validation.Field(&req.PrixUnitaireHT, validation.Min(0.0)),
		validation.Field(&req.TauxTVA, validation.Min(0.0), validation.Max(100.0)),
	)
}

type CommandeRequest struct {
	NumeroCommande      string                 `json:"numero_commande,omitempty"`
	FournisseurID       *uint                  `json:"fournisseur_id,omitempty"`
	Statut              string                 `json:"statut,omitempty"`
	Type                string                 `json:"type,omitempty"`
	DateCommande        string                 `json:"date_commande,omitempty" example:"2024-03-07"`
	DateLivraisonPrevue string                 `json:"date_livraison_prevue,omitempty"`
	DateLivraisonReelle string                 `json:"date_livraison_reelle,omitempty"`
	MontantHT           float64                `json:"montant_ht"`
	MontantTVA          float64                `json:"montant_tva"`
	MontantTTC          float64                `json:"montant_ttc"`
	Commentaires        string                 `json:"commentaires,omitempty"`
	AdresseLivraison    string                 `json:"adresse_livraison,omitempty"`
	Reference           string                 `json:"reference,omitempty"`
	Description         string                 `json:"description,omitempty"`
	Urgente             bool                   `json:"urgente"`
	Transporteur        string                 `json:"transporteur,omitempty"`
	NumeroSuivi         string                 `json:"numero_suivi,omitempty"`
	Lignes              []LigneCommandeRequest `json:"lignes"`
}

// Validate leaves numero, statut, type and date optional: the service numbers
// the order and fills the defaults.
func (req *CommandeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.NumeroCommande, validation.Length(0, 50)),
		validation.Field(&req.Statut, enum(domain.ParseStatutCommande, errInvalidStatutCommande)),
		validation.Field(&req.Type, enum(domain.ParseTypeCommande, errInvalidTypeCommande)),
		validation.Field(&req.DateCommande, isDate),
		validation.Field(&req.DateLivraisonPrevue, isDate),
		validation.Field(&req.DateLivraisonReelle, isDate),
		validation.Field(&req.MontantHT, validation.Min(0.0)),
		validation.Field(&req.MontantTVA, validation.Min(0.0)),
		validation.Field(&req.MontantTTC, validation.Min(0.0)),
		validation.Field(&req.Lignes),
	)
}

func (req *CommandeRequest) ToDomain() domain.Commande {
	statut, _ := domain.ParseStatutCommande(req.Statut)
	typ, _ := domain.ParseTypeCommande(req.Type)

	lignes := make([]domain.LigneCommande, 0, len(req.Lignes))
	for _, l := range req.Lignes {
		lignes = append(lignes, domain.LigneCommande{
			ProduitNom:        strings.TrimSpace(l.ProduitNom),
			ProduitReference:  l.ProduitReference,
			QuantiteCommandee: l.QuantiteCommandee,
			QuantiteRecue:     l.QuantiteRecue,
			PrixUnitaireHT:    l.PrixUnitaireHT,
			TauxTVA:           l.TauxTVA,
		})
	}

	return domain.Commande{
		NumeroCommande:      strings.TrimSpace(req.NumeroCommande),
		FournisseurID:       req.FournisseurID,
		Statut:              statut,
		Type:                typ,
		DateCommande:        req.DateCommande,
		DateLivraisonPrevue: req.DateLivraisonPrevue,
		DateLivraisonReelle: req.DateLivraisonReelle,
		MontantHT:           req.MontantHT,
		MontantTVA:          req.MontantTVA,
		MontantTTC:          req.MontantTTC,
		Commentaires:        req.Commentaires,
		AdresseLivraison:    req.AdresseLivraison,
		Reference:           req.Reference,
		Description:         req.Description,
		Urgente:             req.Urgente,
		Transporteur:        req.Transporteur,
		NumeroSuivi:         req.NumeroSuivi,
		Lignes:              lignes,
	}
}

type StatutRequest struct {
	Statut string `json:"statut"`
}

func (req *StatutRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Statut, validation.Required.Error("le statut est requis"), enum(domain.ParseStatutCommande, errInvalidStatutCommande)),
	)
}
