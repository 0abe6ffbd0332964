package request

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/magscene/magsav-api/internal/domain"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type CategoryRequest struct {
	Nom         string `json:"nom"`
	Description string `json:"description,omitempty"`
	ParentID    *uint  `json:"parent_id,omitempty"`
	Couleur     string `json:"couleur,omitempty" example:"#3366ff"`
	Icone       string `json:"icone,omitempty"`
	Ordre       int    `json:"ordre"`
	Actif       *bool  `json:"actif,omitempty"`
}

func (req *CategoryRequest) Validate() error {
	req.Nom = strings.TrimSpace(req.Nom)
	req.Couleur = strings.TrimSpace(req.Couleur)

	return validation.ValidateStruct(
		req,
		validation.Field(&req.Nom,
			validation.Required.Error("le nom est requis"),
			validation.RuneLength(0, 100).Error("le nom dépasse 100 caractères"),
		),
		validation.Field(&req.Description, validation.RuneLength(0, 500).Error("la description dépasse 500 caractères")),
		validation.Field(&req.Couleur, validation.Match(hexColor).Error("couleur attendue au format #RRGGBB")),
	)
}

// ToDomain defaults actif to true.
func (req *CategoryRequest) ToDomain() domain.Category {
	actif := true
	if req.Actif != nil {
		actif = *req.Actif
	}

	return domain.Category{
		Nom:         req.Nom,
		Description: strings.TrimSpace(req.Description),
		ParentID:    req.ParentID,
		Couleur:     req.Couleur,
		Icone:       req.Icone,
		Ordre:       req.Ordre,
		Actif:       actif,
	}
}

// MoveCategoryRequest makes the category a root when parent_id is absent.
type MoveCategoryRequest struct {
	ParentID *uint `json:"parent_id"`
}

func (req *MoveCategoryRequest) Validate() error {
	return nil
}

type SpecialitesRequest struct {
	Specialites []string `json:"specialites"`
}

func (req *SpecialitesRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Specialites, validation.NotNil.Error("la liste des spécialités est requise")),
	)
}
