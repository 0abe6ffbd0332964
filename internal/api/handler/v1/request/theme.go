package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type ThemeRequest struct {
	ThemeID string `json:"theme_id"`
}

func (req *ThemeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ThemeID, validation.Required),
	)
}

type PreferenceRequest struct {
	Value string `json:"value"`
}

func (req *PreferenceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Value, validation.Length(0, 4000)),
	)
}
