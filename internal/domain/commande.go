package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

type StatutCommande string

const (
	CommandeBrouillon StatutCommande = "BROUILLON"
	CommandeValidee   StatutCommande = "VALIDEE"
	CommandeEnvoyee   StatutCommande = "ENVOYEE"
	CommandeConfirmee StatutCommande = "CONFIRMEE"
	CommandeExpedie   StatutCommande = "EXPEDIE"
	CommandeLivree    StatutCommande = "LIVREE"
	CommandeRecue     StatutCommande = "RECUE"
	CommandeFacturee  StatutCommande = "FACTUREE"
	CommandeAnnulee   StatutCommande = "ANNULEE"
)

var StatutsCommande = []StatutCommande{
	CommandeBrouillon, CommandeValidee, CommandeEnvoyee, CommandeConfirmee, CommandeExpedie,
	CommandeLivree, CommandeRecue, CommandeFacturee, CommandeAnnulee,
}

func ParseStatutCommande(s string) (StatutCommande, bool) {
	st := StatutCommande(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range StatutsCommande {
		if st == known {
			return st, true
		}
	}
	return "", false
}

type TypeCommande string

const (
	CommandeStandard      TypeCommande = "STANDARD"
	CommandeUrgente       TypeCommande = "URGENTE"
	CommandePrecommande   TypeCommande = "PRECOMMANDE"
	CommandeStockSecurite TypeCommande = "STOCK_SECURITE"
	CommandeRemplacement  TypeCommande = "REMPLACEMENT"
)

var TypesCommande = []TypeCommande{
	CommandeStandard, CommandeUrgente, CommandePrecommande, CommandeStockSecurite, CommandeRemplacement,
}

func ParseTypeCommande(s string) (TypeCommande, bool) {
	t := TypeCommande(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range TypesCommande {
		if t == known {
			return t, true
		}
	}
	return "", false
}

type StatutReception string

const (
	ReceptionEnAttente StatutReception = "EN_ATTENTE"
	ReceptionPartielle StatutReception = "PARTIELLE"
	ReceptionComplete  StatutReception = "COMPLETE"
)

const DefaultTauxTVA = 20.0

type LigneCommande struct {
	ID                uint            `json:"id"`
	CommandeID        uint            `json:"commande_id"`
	ProduitNom        string          `json:"produit_nom"`
	ProduitReference  string          `json:"produit_reference,omitempty"`
	QuantiteCommandee int             `json:"quantite_commandee"`
	QuantiteRecue     int             `json:"quantite_recue"`
	PrixUnitaireHT    *float64        `json:"prix_unitaire_ht"`
	TauxTVA           *float64        `json:"taux_tva"`
	MontantHT         float64         `json:"montant_ht"`
	MontantTVA        float64         `json:"montant_tva"`
	MontantTTC        float64         `json:"montant_ttc"`
	StatutReception   StatutReception `json:"statut_reception"`
}

// Calculer fills the line amounts and the reception status. A line without a
// unit price or with a non positive quantity is worth zero.
func (l *LigneCommande) Calculer() {
	l.StatutReception = l.statutReception()

	if l.PrixUnitaireHT == nil || l.QuantiteCommandee <= 0 {
		l.MontantHT, l.MontantTVA, l.MontantTTC = 0, 0, 0
		return
	}

	taux := DefaultTauxTVA
	if l.TauxTVA != nil {
		taux = *l.TauxTVA
	}

	l.MontantHT = Round2(float64(l.QuantiteCommandee) * *l.PrixUnitaireHT)
	l.MontantTVA = Round2(l.MontantHT * taux / 100)
	l.MontantTTC = Round2(l.MontantHT + l.MontantTVA)
}

func (l LigneCommande) statutReception() StatutReception {
	switch {
	case l.QuantiteRecue <= 0:
		return ReceptionEnAttente
	case l.QuantiteRecue < l.QuantiteCommandee:
		return ReceptionPartielle
	default:
		return ReceptionComplete
	}
}

type Commande struct {
	ID                  uint            `json:"id"`
	NumeroCommande      string          `json:"numero_commande"`
	FournisseurID       *uint           `json:"fournisseur_id,omitempty"`
	FournisseurNom      string          `json:"fournisseur_nom,omitempty"`
	FournisseurEmail    string          `json:"-"`
	Statut              StatutCommande  `json:"statut"`
	Type                TypeCommande    `json:"type"`
	DateCommande        string          `json:"date_commande"`
	DateLivraisonPrevue string          `json:"date_livraison_prevue,omitempty"`
	DateLivraisonReelle string          `json:"date_livraison_reelle,omitempty"`
	MontantHT           float64         `json:"montant_ht"`
	MontantTVA          float64         `json:"montant_tva"`
	MontantTTC          float64         `json:"montant_ttc"`
	Commentaires        string          `json:"commentaires,omitempty"`
	AdresseLivraison    string          `json:"adresse_livraison,omitempty"`
	Reference           string          `json:"reference,omitempty"`
	Description         string          `json:"description,omitempty"`
	Urgente             bool            `json:"urgente"`
	Transporteur        string          `json:"transporteur,omitempty"`
	NumeroSuivi         string          `json:"numero_suivi,omitempty"`
	Lignes              []LigneCommande `json:"lignes"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// CalculerTotaux recomputes every line and sums them into the order totals.
// Orders without lines keep the amounts they were given.
func (c *Commande) CalculerTotaux() {
	if len(c.Lignes) == 0 {
		return
	}

	var ht, tva, ttc float64
	for i := range c.Lignes {
		c.Lignes[i].Calculer()
		ht += c.Lignes[i].MontantHT
		tva += c.Lignes[i].MontantTVA
		ttc += c.Lignes[i].MontantTTC
	}

	c.MontantHT = Round2(ht)
	c.MontantTVA = Round2(tva)
	c.MontantTTC = Round2(ttc)
}

func (c Commande) PeutEtreModifiee() bool {
	return c.Statut == CommandeBrouillon || c.Statut == CommandeValidee
}

func (c Commande) EstEnAttenteLivraison() bool {
	return c.Statut == CommandeExpedie || c.Statut == CommandeConfirmee
}

func (c Commande) EstTerminee() bool {
	return c.Statut == CommandeRecue || c.Statut == CommandeFacturee
}

// ConfirmationDetails is the summary line printed in the order confirmation email.
func (c Commande) ConfirmationDetails() string {
	return fmt.Sprintf("Date: %s - Fournisseur: %s", c.DateCommande, c.FournisseurNom)
}

// NumeroPrefix is the daily prefix of generated order numbers, e.g. CMD-20240131-.
func NumeroPrefix(day time.Time) string {
	return "CMD-" + day.Format("20060102") + "-"
}

func GenerateNumeroCommande(day time.Time, seq int) string {
	return fmt.Sprintf("%s%04d", NumeroPrefix(day), seq)
}

type CommandeStats struct {
	Total      int64 `json:"total"`
	Brouillons int64 `json:"brouillons"`
	Envoyees   int64 `json:"envoyees"`
	Recues     int64 `json:"recues"`
	Facturees  int64 `json:"facturees"`
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
