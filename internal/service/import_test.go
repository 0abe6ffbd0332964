package service

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magscene/magsav-api/internal/csvimport"
	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/metrics"
)

const societesCSV = "\ufeffNom;Type de société;E-mail;Téléphone\n" +
	"Festival Nord;Client;regie@festival-nord.fr;03 20 00 00 00\n" +
	"Audio Pro;fournisseur;contact@audiopro.fr;\n" +
	";client;;\n" +
	"\n" +
	"Déjà Là;client;;\n" +
	"Mauvais Type;partenaire;;\n" +
	"Festival Nord;client;;\n"

func TestImportService_Societes(t *testing.T) {
	repo := newMemSocieteRepo(domain.Societe{ID: 1, Nom: "Déjà Là", Type: domain.SocieteClient})
	m := metrics.NewMetrics(prometheus.NewRegistry())
	s := NewImportService(ImportStores{Societes: repo, Vehicules: newMemVehiculeRepo()}, m)

	result, err := s.Import(context.Background(), ImportSocietes, strings.NewReader(societesCSV), false)
	require.NoError(t, err)

	assert.Len(t, result.BatchID, 27)
	assert.Equal(t, 6, result.Rows)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, []string{
		"Ligne 3: nom manquant",
		`Ligne 6: type de société invalide "partenaire"`,
	}, result.Errors)

	created, err := repo.FindByNomAndType(context.Background(), "audio pro", domain.SocieteFournisseur)
	require.NoError(t, err)
	assert.Equal(t, "contact@audiopro.fr", created.Email)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ImportedRows.WithLabelValues(ImportSocietes, "created")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ImportedRows.WithLabelValues(ImportSocietes, "error")))
}

func TestImportService_DryRunWritesNothing(t *testing.T) {
	repo := newMemSocieteRepo()
	s := NewImportService(ImportStores{Societes: repo, Vehicules: newMemVehiculeRepo()}, nil)

	result, err := s.Import(context.Background(), ImportSocietes, strings.NewReader(societesCSV), true)
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.Equal(t, 3, result.Created)
	assert.Empty(t, repo.items)
}

func TestImportService_Vehicules(t *testing.T) {
	csv := "immat,type,marque,modele,année,km,état,location\n" +
		"ab-123-cd,PL,Renault,Master,2019,125 000,disponible,oui\n" +
		"EF-456-GH,,Iveco,Daily,,,,\n" +
		"IJ-789-KL,TRACTEUR,,,,,,\n" +
		"MN-012-OP,VL,,,deux mille,,,\n" +
		"AB-123-CD,VL,,,,,,\n"
	repo := newMemVehiculeRepo()
	s := NewImportService(ImportStores{Societes: newMemSocieteRepo(), Vehicules: repo}, nil)

	result, err := s.Import(context.Background(), ImportVehicules, strings.NewReader(csv), false)
	require.NoError(t, err)

	assert.Equal(t, 5, result.Rows)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "Ligne 3:")
	assert.Contains(t, result.Errors[1], "Ligne 4:")

	v, err := repo.FindByImmatriculation(context.Background(), "AB-123-CD")
	require.NoError(t, err)
	assert.Equal(t, domain.VehiculePL, v.TypeVehicule)
	assert.Equal(t, 125000, v.Kilometrage)
	assert.Equal(t, 2019, v.Annee)
	assert.True(t, v.LocationExterne)

	v, err = repo.FindByImmatriculation(context.Background(), "EF-456-GH")
	require.NoError(t, err)
	assert.Equal(t, domain.VehiculeVL, v.TypeVehicule)
	assert.Equal(t, domain.VehiculeDisponible, v.Statut)
}

func TestImportService_Errors(t *testing.T) {
	s := NewImportService(ImportStores{Societes: newMemSocieteRepo(), Vehicules: newMemVehiculeRepo()}, nil)
	ctx := context.Background()

	_, err := s.Import(ctx, "produits", strings.NewReader("nom\nx\n"), false)
	assert.ErrorIs(t, err, ErrUnknownEntity)

	_, err = s.Import(ctx, ImportSocietes, strings.NewReader("email;phone\na@b.fr;1\n"), false)
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = s.Import(ctx, ImportSocietes, strings.NewReader(""), false)
	assert.ErrorIs(t, err, csvimport.ErrEmptyFile)

	_, err = s.Import(ctx, ImportCategories, strings.NewReader("[]"), false)
	assert.ErrorIs(t, err, ErrUnknownEntity)
}

const categoriesJSON = `[
  {"nom": "Son", "sous_categories": [
    {"nom": "Micros", "ordre": 1, "sous_categories": [{"nom": "HF"}, {"nom": "Filaires"}]},
    {"nom": ""}
  ]},
  {"nom": "Vidéo", "actif": false, "sous_categories": [{"nom": "Projecteurs"}]}
]`

func TestImportService_CategoriesMergeIntoTree(t *testing.T) {
	repo := seedCategories()
	categories := NewCategoryService(repo, nil)
	s := NewImportService(ImportStores{Categories: categories}, nil)

	result, err := s.Import(context.Background(), ImportCategories, strings.NewReader(categoriesJSON), false)
	require.NoError(t, err)

	assert.Equal(t, 7, result.Rows)
	assert.Equal(t, 3, result.Skipped)
	assert.Equal(t, 3, result.Created)
	assert.Equal(t, []string{"Catégorie 1.2: nom manquant"}, result.Errors)

	micros, err := repo.FindByID(context.Background(), 2)
	require.NoError(t, err)
	children, err := categories.Children(context.Background(), micros.ID)
	require.NoError(t, err)
	names := make([]string, 0, len(children))
	for _, c := range children {
		names = append(names, c.Nom)
	}
	assert.Equal(t, []string{"Filaires", "HF"}, names)

	video, err := repo.FindByNomAndParent(context.Background(), "vidéo", nil)
	require.NoError(t, err)
	assert.False(t, video.Actif)
}

func TestImportService_CategoriesDryRun(t *testing.T) {
	repo := seedCategories()
	s := NewImportService(ImportStores{Categories: NewCategoryService(repo, nil)}, nil)

	result, err := s.Import(context.Background(), ImportCategories, strings.NewReader(categoriesJSON), true)
	require.NoError(t, err)

	assert.Equal(t, 7, result.Rows)
	assert.Equal(t, 3, result.Created)
	assert.Len(t, repo.items, 4)

	_, err = s.Import(context.Background(), ImportCategories, strings.NewReader(`{"nom": "Son"}`), true)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestImportService_Specialites(t *testing.T) {
	prefs := memPreferenceRepo{domain.PreferenceSpecialites: "Son;Vidéo"}
	s := NewImportService(ImportStores{Specialites: NewSpecialiteService(prefs)}, nil)

	result, err := s.Import(context.Background(), ImportSpecialites, strings.NewReader(`["vidéo", "Rigging", " ", "rigging"]`), true)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, "Son;Vidéo", prefs[domain.PreferenceSpecialites])

	result, err = s.Import(context.Background(), ImportSpecialites, strings.NewReader(`["vidéo", "Rigging", " ", "rigging"]`), false)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Rows)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, []string{"Spécialité 3: valeur vide"}, result.Errors)
	assert.Equal(t, "Son;Vidéo;Rigging", prefs[domain.PreferenceSpecialites])
}
