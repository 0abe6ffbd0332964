package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/magscene/magsav-api/internal/domain"
)

type staticLister[T any] []T

func (l staticLister[T]) List(context.Context) ([]T, error) {
	return l, nil
}

func newTestExportService(vehicules *memVehiculeRepo) *ExportService {
	return NewExportService(ExportSources{
		Societes:       staticLister[domain.Societe]{{ID: 1, Type: domain.SocieteClient, Nom: "Festival Nord"}},
		Commandes:      staticLister[domain.Commande]{},
		Planifications: staticLister[domain.Planification]{},
		Techniciens:    staticLister[domain.Technicien]{},
		Vehicules:      NewVehiculeService(vehicules, nil),
		Specialites:    staticLister[string]{"Son", "Vidéo"},
	})
}

func TestExportService_JSON(t *testing.T) {
	s := newTestExportService(newMemVehiculeRepo())

	data, contentType, err := s.Export(context.Background(), "societes", "")
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)

	var societes []map[string]any
	require.NoError(t, json.Unmarshal(data, &societes))
	require.Len(t, societes, 1)
	assert.Equal(t, "Festival Nord", societes[0]["nom"])
}

func TestExportService_YAMLUsesJSONKeys(t *testing.T) {
	s := newTestExportService(newMemVehiculeRepo())

	data, contentType, err := s.Export(context.Background(), "societes", "YAML")
	require.NoError(t, err)
	assert.Equal(t, "application/yaml", contentType)

	var societes []map[string]any
	require.NoError(t, yaml.Unmarshal(data, &societes))
	require.Len(t, societes, 1)
	assert.Equal(t, "client", societes[0]["type"])
	assert.Contains(t, string(data), "created_at:")
}

func TestExportService_VehiculesAcrossPages(t *testing.T) {
	repo := newMemVehiculeRepo()
	for i := 1; i <= MaxPageSize+5; i++ {
		repo.items[uint(i)] = domain.Vehicule{ID: uint(i), Immatriculation: fmt.Sprintf("AA-%03d-AA", i)}
	}
	repo.nextID = MaxPageSize + 5
	s := newTestExportService(repo)

	data, _, err := s.Export(context.Background(), "vehicules", "json")
	require.NoError(t, err)

	var vehicules []domain.Vehicule
	require.NoError(t, json.Unmarshal(data, &vehicules))
	assert.Len(t, vehicules, MaxPageSize+5)
}

func TestExportService_EmptyEntityIsEmptyList(t *testing.T) {
	s := newTestExportService(newMemVehiculeRepo())

	data, _, err := s.Export(context.Background(), "vehicules", "json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestExportService_Errors(t *testing.T) {
	s := newTestExportService(newMemVehiculeRepo())

	_, _, err := s.Export(context.Background(), "produits", "json")
	assert.ErrorIs(t, err, ErrUnknownEntity)

	_, _, err = s.Export(context.Background(), "societes", "xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestExportService_ConfigEntities(t *testing.T) {
	repo := newMemCategoryRepo()
	categories := NewCategoryService(repo, nil)
	son, err := categories.Create(context.Background(), domain.Category{Nom: "Son", Actif: true})
	require.NoError(t, err)
	_, err = categories.Create(context.Background(), domain.Category{Nom: "Micros", ParentID: &son.ID, Actif: false})
	require.NoError(t, err)

	s := newTestExportService(newMemVehiculeRepo())
	s.src.Categories = categories

	data, _, err := s.Export(context.Background(), ImportCategories, "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"nom":"Son","ordre":0,"actif":true,"sous_categories":[{"nom":"Micros","ordre":0,"actif":false}]}]`, string(data))

	data, _, err = s.Export(context.Background(), ImportSpecialites, "json")
	require.NoError(t, err)
	assert.JSONEq(t, `["Son","Vidéo"]`, string(data))
}
