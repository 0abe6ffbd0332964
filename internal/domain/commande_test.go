package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestLigneCommande_Calculer(t *testing.T) {
	tests := []struct {
		name    string
		ligne   LigneCommande
		wantHT  float64
		wantTVA float64
		wantTTC float64
	}{
		{
			name:    "default vat",
			ligne:   LigneCommande{QuantiteCommandee: 3, PrixUnitaireHT: ptr(12.347)},
			wantHT:  37.04,
			wantTVA: 7.41,
			wantTTC: 44.45,
		},
		{
			name:    "reduced vat",
			ligne:   LigneCommande{QuantiteCommandee: 2, PrixUnitaireHT: ptr(50.0), TauxTVA: ptr(5.5)},
			wantHT:  100,
			wantTVA: 5.5,
			wantTTC: 105.5,
		},
		{
			name:  "no price",
			ligne: LigneCommande{QuantiteCommandee: 4},
		},
		{
			name:  "zero quantity",
			ligne: LigneCommande{QuantiteCommandee: 0, PrixUnitaireHT: ptr(10.0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := tt.ligne
			l.Calculer()

			assert.Equal(t, tt.wantHT, l.MontantHT)
			assert.Equal(t, tt.wantTVA, l.MontantTVA)
			assert.Equal(t, tt.wantTTC, l.MontantTTC)
		})
	}
}

func TestLigneCommande_StatutReception(t *testing.T) {
	l := LigneCommande{QuantiteCommandee: 10}

	l.Calculer()
	assert.Equal(t, ReceptionEnAttente, l.StatutReception)

	l.QuantiteRecue = 4
	l.Calculer()
	assert.Equal(t, ReceptionPartielle, l.StatutReception)

	l.QuantiteRecue = 10
	l.Calculer()
	assert.Equal(t, ReceptionComplete, l.StatutReception)
}

func TestCommande_CalculerTotaux(t *testing.T) {
	c := Commande{
		Lignes: []LigneCommande{
			{QuantiteCommandee: 2, PrixUnitaireHT: ptr(10.0)},
			{QuantiteCommandee: 1, PrixUnitaireHT: ptr(99.99), TauxTVA: ptr(10.0)},
			{QuantiteCommandee: 5},
		},
	}

	c.CalculerTotaux()

	assert.Equal(t, 119.99, c.MontantHT)
	assert.Equal(t, 14.0, c.MontantTVA)
	assert.Equal(t, 133.99, c.MontantTTC)
}

func TestCommande_CalculerTotaux_KeepsAmountsWithoutLines(t *testing.T) {
	c := Commande{MontantHT: 100, MontantTVA: 20, MontantTTC: 120}

	c.CalculerTotaux()

	assert.Equal(t, 120.0, c.MontantTTC)
}

func TestCommande_StatusHelpers(t *testing.T) {
	for _, st := range StatutsCommande {
		c := Commande{Statut: st}
		assert.Equal(t, st == CommandeBrouillon || st == CommandeValidee, c.PeutEtreModifiee(), st)
		assert.Equal(t, st == CommandeExpedie || st == CommandeConfirmee, c.EstEnAttenteLivraison(), st)
		assert.Equal(t, st == CommandeRecue || st == CommandeFacturee, c.EstTerminee(), st)
	}
}

func TestParseStatutCommande(t *testing.T) {
	st, ok := ParseStatutCommande("envoyee")
	assert.True(t, ok)
	assert.Equal(t, CommandeEnvoyee, st)

	_, ok = ParseStatutCommande("EN_COURS")
	assert.False(t, ok)
}

func TestGenerateNumeroCommande(t *testing.T) {
	day := time.Date(2024, time.March, 7, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, "CMD-20240307-", NumeroPrefix(day))
	assert.Equal(t, "CMD-20240307-0042", GenerateNumeroCommande(day, 42))
}

func TestCommande_ConfirmationDetails(t *testing.T) {
	c := Commande{DateCommande: "2024-03-07", FournisseurNom: "Audio Pro"}

	assert.Equal(t, "Date: 2024-03-07 - Fournisseur: Audio Pro", c.ConfirmationDetails())
}
