package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/magscene/magsav-api/internal/csvimport"
	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/metrics"
	"github.com/magscene/magsav-api/internal/repository"
)

const (
	ImportSocietes    = "societes"
	ImportVehicules   = "vehicules"
	ImportCategories  = "categories"
	ImportSpecialites = "specialites"
)

// ImportEntities lists what Import accepts. Sociétés and véhicules come as
// CSV, categories and specialites as JSON configuration files.
var ImportEntities = []string{ImportSocietes, ImportVehicules, ImportCategories, ImportSpecialites}

var (
	ErrUnknownEntity = errors.New("unknown entity")
	ErrMissingColumn = errors.New("missing column")
	ErrInvalidConfig = errors.New("invalid configuration file")
)

type SocieteImportStore interface {
	FindByNomAndType(ctx context.Context, nom string, societeType domain.SocieteType) (domain.Societe, error)
	Create(ctx context.Context, societe domain.Societe) (domain.Societe, error)
}

type VehiculeImportStore interface {
	FindByImmatriculation(ctx context.Context, immatriculation string) (domain.Vehicule, error)
	Create(ctx context.Context, v domain.Vehicule) (domain.Vehicule, error)
}

type CategoryImportStore interface {
	FindByNomAndParent(ctx context.Context, nom string, parentID *uint) (domain.Category, error)
	Create(ctx context.Context, c domain.Category) (domain.Category, error)
}

type SpecialiteStore interface {
	List(ctx context.Context) ([]string, error)
	Set(ctx context.Context, specialites []string) ([]string, error)
}

// ImportStores are the write targets of ImportService.
type ImportStores struct {
	Societes    SocieteImportStore
	Vehicules   VehiculeImportStore
	Categories  CategoryImportStore
	Specialites SpecialiteStore
}

type ImportService struct {
	societes    SocieteImportStore
	vehicules   VehiculeImportStore
	categories  CategoryImportStore
	specialites SpecialiteStore
	metrics     *metrics.Metrics
}

func NewImportService(stores ImportStores, m *metrics.Metrics) *ImportService {
	return &ImportService{
		societes:    stores.Societes,
		vehicules:   stores.Vehicules,
		categories:  stores.Categories,
		specialites: stores.Specialites,
		metrics:     m,
	}
}

// Import reads a file of entity records. Records already present are
// skipped, invalid ones are reported with their position and a dry run
// writes nothing.
func (s *ImportService) Import(ctx context.Context, entity string, r io.Reader, dryRun bool) (domain.ImportResult, error) {
	result := domain.ImportResult{
		BatchID: csvimport.NewBatchID(),
		Entity:  entity,
		Errors:  []string{},
		DryRun:  dryRun,
	}

	var err error
	switch entity {
	case ImportSocietes, ImportVehicules:
		err = s.importCSV(ctx, entity, r, &result)
	case ImportCategories:
		err = s.importCategories(ctx, r, &result)
	case ImportSpecialites:
		err = s.importSpecialites(ctx, r, &result)
	default:
		return domain.ImportResult{}, ErrUnknownEntity
	}
	if err != nil {
		return domain.ImportResult{}, err
	}

	s.metrics.RecordImport(entity, result.Created, result.Skipped, len(result.Errors))
	zap.L().Info("import finished",
		zap.String("batch_id", result.BatchID),
		zap.String("entity", entity),
		zap.Bool("dry_run", dryRun),
		zap.Int("rows", result.Rows),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
		zap.Int("errors", len(result.Errors)),
	)

	return result, nil
}

func (s *ImportService) importCSV(ctx context.Context, entity string, r io.Reader, result *domain.ImportResult) error {
	if (entity == ImportSocietes && s.societes == nil) || (entity == ImportVehicules && s.vehicules == nil) {
		return ErrUnknownEntity
	}

	table, err := csvimport.Parse(r)
	if err != nil {
		return fmt.Errorf("csvimport.Parse -> %w", err)
	}

	if entity == ImportSocietes {
		return s.importSocietes(ctx, table, result)
	}
	return s.importVehicules(ctx, table, result)
}

// importCategories merges a JSON tree of categories: nodes whose name
// already exists under the same parent are kept and their children merged.
func (s *ImportService) importCategories(ctx context.Context, r io.Reader, result *domain.ImportResult) error {
	if s.categories == nil {
		return ErrUnknownEntity
	}

	var nodes []domain.CategoryNode
	if err := json.NewDecoder(r).Decode(&nodes); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return s.mergeCategories(ctx, nodes, nil, "", result)
}

func (s *ImportService) mergeCategories(ctx context.Context, nodes []domain.CategoryNode, parentID *uint, prefix string, result *domain.ImportResult) error {
	for i, node := range nodes {
		result.Rows++

		nom := strings.TrimSpace(node.Nom)
		where := fmt.Sprintf("%s%d", prefix, i+1)
		if nom == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Catégorie %s: nom manquant", where))
			continue
		}

		var id *uint
		existing, err := s.categories.FindByNomAndParent(ctx, nom, parentID)
		switch {
		case err == nil:
			result.Skipped++
			id = &existing.ID
		case !errors.Is(err, repository.ErrCategoryNotFound):
			return fmt.Errorf("s.categories.FindByNomAndParent -> %w", err)
		}

		if id == nil {
			result.Created++
			if !result.DryRun {
				created, err := s.categories.Create(ctx, categoryFromNode(node, parentID))
				if err != nil {
					result.Created--
					result.Errors = append(result.Errors, fmt.Sprintf("Catégorie %s: %v", where, err))
					continue
				}
				id = &created.ID
			}
		}

		// In a dry run the children of a new category have no parent yet
		// and are all counted as created.
		if id == nil {
			countNew(node.SousCategories, result)
			continue
		}
		if err := s.mergeCategories(ctx, node.SousCategories, id, where+".", result); err != nil {
			return err
		}
	}

	return nil
}

func countNew(nodes []domain.CategoryNode, result *domain.ImportResult) {
	for _, n := range nodes {
		result.Rows++
		result.Created++
		countNew(n.SousCategories, result)
	}
}

func categoryFromNode(n domain.CategoryNode, parentID *uint) domain.Category {
	actif := true
	if n.Actif != nil {
		actif = *n.Actif
	}

	return domain.Category{
		Nom:         strings.TrimSpace(n.Nom),
		Description: n.Description,
		ParentID:    parentID,
		Couleur:     n.Couleur,
		Icone:       n.Icone,
		Ordre:       n.Ordre,
		Actif:       actif,
	}
}

// importSpecialites adds the specialties of a JSON string array to the
// stored list.
func (s *ImportService) importSpecialites(ctx context.Context, r io.Reader, result *domain.ImportResult) error {
	if s.specialites == nil {
		return ErrUnknownEntity
	}

	var incoming []string
	if err := json.NewDecoder(r).Decode(&incoming); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	current, err := s.specialites.List(ctx)
	if err != nil {
		return fmt.Errorf("s.specialites.List -> %w", err)
	}

	known := make(map[string]bool, len(current))
	for _, sp := range current {
		known[strings.ToLower(sp)] = true
	}

	merged := append([]string{}, current...)
	for i, sp := range incoming {
		result.Rows++
		sp = strings.TrimSpace(sp)
		if sp == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Spécialité %d: valeur vide", i+1))
			continue
		}
		if known[strings.ToLower(sp)] {
			result.Skipped++
			continue
		}
		known[strings.ToLower(sp)] = true
		merged = append(merged, sp)
		result.Created++
	}

	if result.DryRun || result.Created == 0 {
		return nil
	}
	if _, err = s.specialites.Set(ctx, merged); err != nil {
		return fmt.Errorf("s.specialites.Set -> %w", err)
	}

	return nil
}

func (s *ImportService) importSocietes(ctx context.Context, table *csvimport.Table, result *domain.ImportResult) error {
	table.Alias("nom", "name", "raison_sociale", "societe", "nom_societe", "entreprise")
	table.Alias("type", "type_societe", "type_de_societe", "categorie")
	table.Alias("email", "mail", "e_mail", "courriel")
	table.Alias("phone", "telephone", "tel", "portable")
	table.Alias("adresse", "address", "adresse_postale")
	table.Alias("notes", "commentaires", "remarques")

	if !table.Has("nom") {
		return fmt.Errorf("%w: nom", ErrMissingColumn)
	}

	seen := map[string]bool{}
	for _, row := range table.Rows {
		if row.Blank() {
			continue
		}
		result.Rows++

		societe, msg := societeFromRow(row)
		if msg != "" {
			result.Errors = append(result.Errors, msg)
			continue
		}

		key := string(societe.Type) + "|" + strings.ToLower(societe.Nom)
		if seen[key] {
			result.Skipped++
			continue
		}
		seen[key] = true

		_, err := s.societes.FindByNomAndType(ctx, societe.Nom, societe.Type)
		if err == nil {
			result.Skipped++
			continue
		}
		if !errors.Is(err, repository.ErrSocieteNotFound) {
			return fmt.Errorf("s.societes.FindByNomAndType -> %w", err)
		}

		if result.DryRun {
			result.Created++
			continue
		}
		if _, err = s.societes.Create(ctx, societe); err != nil {
			result.Errors = append(result.Errors, row.Errorf("%v", err))
			continue
		}
		result.Created++
	}

	return nil
}

func societeFromRow(row csvimport.Row) (domain.Societe, string) {
	nom := row.Get("nom")
	if nom == "" {
		return domain.Societe{}, row.Errorf("nom manquant")
	}

	societeType, ok := domain.ParseSocieteType(row.Opt("type", string(domain.SocieteClient)))
	if !ok {
		return domain.Societe{}, row.Errorf("type de société invalide %q", row.Get("type"))
	}

	email := row.Get("email")
	if email != "" && !strings.Contains(email, "@") {
		return domain.Societe{}, row.Errorf("email invalide %q", email)
	}

	return domain.Societe{
		Type:    societeType,
		Nom:     nom,
		Email:   email,
		Phone:   row.Get("phone"),
		Adresse: row.Get("adresse"),
		Notes:   row.Get("notes"),
	}, ""
}

func (s *ImportService) importVehicules(ctx context.Context, table *csvimport.Table, result *domain.ImportResult) error {
	table.Alias("immatriculation", "immat", "plaque", "plate", "numero_immatriculation")
	table.Alias("type_vehicule", "type", "categorie")
	table.Alias("marque", "brand", "constructeur")
	table.Alias("modele", "model")
	table.Alias("annee", "year", "annee_mise_en_circulation")
	table.Alias("kilometrage", "km", "kilometres")
	table.Alias("statut", "status", "etat")
	table.Alias("location_externe", "location", "externe")
	table.Alias("notes", "commentaires", "remarques")

	if !table.Has("immatriculation") {
		return fmt.Errorf("%w: immatriculation", ErrMissingColumn)
	}

	seen := map[string]bool{}
	for _, row := range table.Rows {
		if row.Blank() {
			continue
		}
		result.Rows++

		v, msg := vehiculeFromRow(row)
		if msg != "" {
			result.Errors = append(result.Errors, msg)
			continue
		}

		if seen[v.Immatriculation] {
			result.Skipped++
			continue
		}
		seen[v.Immatriculation] = true

		_, err := s.vehicules.FindByImmatriculation(ctx, v.Immatriculation)
		if err == nil {
			result.Skipped++
			continue
		}
		if !errors.Is(err, repository.ErrVehiculeNotFound) {
			return fmt.Errorf("s.vehicules.FindByImmatriculation -> %w", err)
		}

		if result.DryRun {
			result.Created++
			continue
		}
		if _, err = s.vehicules.Create(ctx, v); err != nil {
			if errors.Is(err, repository.ErrImmatriculationExists) {
				result.Skipped++
				continue
			}
			result.Errors = append(result.Errors, row.Errorf("%v", err))
			continue
		}
		result.Created++
	}

	return nil
}

func vehiculeFromRow(row csvimport.Row) (domain.Vehicule, string) {
	immat := strings.ToUpper(row.Get("immatriculation"))
	if immat == "" {
		return domain.Vehicule{}, row.Errorf("immatriculation manquante")
	}

	typeVehicule, ok := domain.ParseTypeVehicule(row.Opt("type_vehicule", string(domain.VehiculeVL)))
	if !ok {
		return domain.Vehicule{}, row.Errorf("type de véhicule invalide %q", row.Get("type_vehicule"))
	}

	statut, ok := domain.ParseStatutVehicule(row.Opt("statut", string(domain.VehiculeDisponible)))
	if !ok {
		return domain.Vehicule{}, row.Errorf("statut invalide %q", row.Get("statut"))
	}

	annee, err := optionalInt(row.Get("annee"))
	if err != nil {
		return domain.Vehicule{}, row.Errorf("année invalide %q", row.Get("annee"))
	}
	km, err := optionalInt(row.Get("kilometrage"))
	if err != nil || km < 0 {
		return domain.Vehicule{}, row.Errorf("kilométrage invalide %q", row.Get("kilometrage"))
	}

	return domain.Vehicule{
		Immatriculation: immat,
		TypeVehicule:    typeVehicule,
		Marque:          row.Get("marque"),
		Modele:          row.Get("modele"),
		Annee:           annee,
		Kilometrage:     km,
		Statut:          statut,
		LocationExterne: csvimport.ParseBool(row.Get("location_externe")),
		Notes:           row.Get("notes"),
	}, ""
}

// optionalInt parses integers written with spaces or dots as thousands
// separators. Empty input is zero.
func optionalInt(s string) (int, error) {
	s = strings.NewReplacer(" ", "", "\u00a0", "", ".", "").Replace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
