package request

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/magscene/magsav-api/internal/domain"
)

var errInvalidSocieteType = errors.New("le type doit être 'client', 'fournisseur' ou 'manufacturier'")

type SocieteRequest struct {
	Type    string `json:"type" enums:"client,fournisseur,manufacturier"`
	Nom     string `json:"nom"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Adresse string `json:"adresse,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

func (req *SocieteRequest) Validate() error {
	req.Nom = strings.TrimSpace(req.Nom)
	req.Type = strings.TrimSpace(req.Type)

	return validation.ValidateStruct(
		req,
		validation.Field(&req.Nom, validation.Required.Error("le nom de la société est requis"), validation.Length(1, 255)),
		validation.Field(&req.Type, validation.Required.Error("le type de société est requis"), enum(domain.ParseSocieteType, errInvalidSocieteType)),
		validation.Field(&req.Email, validation.By(containsAt)),
	)
}

// ToDomain must be called after Validate.
func (req *SocieteRequest) ToDomain() domain.Societe {
	t, _ := domain.ParseSocieteType(req.Type)

	return domain.Societe{
		Type:    t,
		Nom:     req.Nom,
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Adresse: req.Adresse,
		Notes:   req.Notes,
	}
}
