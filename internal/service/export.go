package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/magscene/magsav-api/internal/domain"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var ErrUnknownFormat = errors.New("unknown export format")

type SocieteLister interface {
	List(ctx context.Context) ([]domain.Societe, error)
}

type CommandeLister interface {
	List(ctx context.Context) ([]domain.Commande, error)
}

type PlanificationLister interface {
	List(ctx context.Context) ([]domain.Planification, error)
}

type TechnicienLister interface {
	List(ctx context.Context) ([]domain.Technicien, error)
}

type VehiculePager interface {
	List(ctx context.Context, filter VehiculeFilter, number, size int) (domain.Page[domain.Vehicule], error)
}

type CategoryTreeSource interface {
	Tree(ctx context.Context) ([]domain.CategoryNode, error)
}

type SpecialiteLister interface {
	List(ctx context.Context) ([]string, error)
}

// ExportSources are the read sides ExportService draws from.
type ExportSources struct {
	Societes       SocieteLister
	Commandes      CommandeLister
	Planifications PlanificationLister
	Techniciens    TechnicienLister
	Vehicules      VehiculePager
	Categories     CategoryTreeSource
	Specialites    SpecialiteLister
}

type ExportService struct {
	src ExportSources
}

func NewExportService(src ExportSources) *ExportService {
	return &ExportService{
		src: src,
	}
}

// Export renders every record of entity in format and returns the content
// type to serve it with.
func (s *ExportService) Export(ctx context.Context, entity, format string) ([]byte, string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatJSON
	}
	if format != FormatJSON && format != FormatYAML && format != "yml" {
		return nil, "", ErrUnknownFormat
	}

	records, err := s.records(ctx, entity)
	if err != nil {
		return nil, "", err
	}

	if format == FormatJSON {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return nil, "", fmt.Errorf("json.MarshalIndent -> %w", err)
		}
		return data, "application/json", nil
	}

	data, err := toYAML(records)
	if err != nil {
		return nil, "", err
	}
	return data, "application/yaml", nil
}

func (s *ExportService) records(ctx context.Context, entity string) (any, error) {
	switch {
	case entity == "societes" && s.src.Societes != nil:
		return s.src.Societes.List(ctx)
	case entity == "commandes" && s.src.Commandes != nil:
		return s.src.Commandes.List(ctx)
	case entity == "planifications" && s.src.Planifications != nil:
		return s.src.Planifications.List(ctx)
	case entity == "techniciens" && s.src.Techniciens != nil:
		return s.src.Techniciens.List(ctx)
	case entity == "vehicules" && s.src.Vehicules != nil:
		return s.allVehicules(ctx)
	case entity == ImportCategories && s.src.Categories != nil:
		return s.src.Categories.Tree(ctx)
	case entity == ImportSpecialites && s.src.Specialites != nil:
		return s.src.Specialites.List(ctx)
	default:
		return nil, ErrUnknownEntity
	}
}

func (s *ExportService) allVehicules(ctx context.Context) ([]domain.Vehicule, error) {
	var all []domain.Vehicule
	for number := 0; ; number++ {
		page, err := s.src.Vehicules.List(ctx, VehiculeFilter{}, number, MaxPageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Content...)
		if number+1 >= page.TotalPages {
			break
		}
	}
	if all == nil {
		all = []domain.Vehicule{}
	}

	return all, nil
}

// toYAML goes through JSON so the YAML keys follow the json tags.
func toYAML(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal -> %w", err)
	}

	var generic any
	if err = json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err = enc.Encode(generic); err != nil {
		return nil, fmt.Errorf("yaml.Encode -> %w", err)
	}
	if err = enc.Close(); err != nil {
		return nil, fmt.Errorf("yaml.Close -> %w", err)
	}

	return buf.Bytes(), nil
}
