package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/magscene/magsav-api/internal/domain"
)

var passwordExp = regexp2.MustCompile(`^(?=.*[A-Za-z])(?=.*\d).{8,}$`, regexp2.None)

var (
	errInvalidPassword         = errors.New("au moins 8 caractères dont une lettre et un chiffre")
	errConfirmPasswordMismatch = errors.New("la confirmation ne correspond pas au mot de passe")
)

type SignupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Name            string `json:"name"`
	Role            string `json:"role,omitempty" enums:"technicien,utilisateur"`
}

func (req *SignupRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required, validation.By(strongPassword)),
		validation.Field(&req.ConfirmPassword, validation.Required, validation.By(func(v any) error {
			if v.(string) != req.Password {
				return errConfirmPasswordMismatch
			}
			return nil
		})),
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Role, validation.In(domain.RoleAdmin, domain.RoleTechnicien, domain.RoleUtilisateur)),
	)
}

func (req *SignupRequest) ToDomain() domain.User {
	return domain.User{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	}
}

func strongPassword(v any) error {
	ok, err := passwordExp.MatchString(v.(string))
	if err != nil || !ok {
		return errInvalidPassword
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
}
