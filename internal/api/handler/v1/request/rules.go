package request

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/magscene/magsav-api/internal/domain"
)

var (
	errInvalidEmail = errors.New("format d'email invalide")
	errInvalidDate  = errors.New("date attendue au format AAAA-MM-JJ")
	errInvalidHeure = errors.New("heure attendue au format HH:MM")
)

// enum accepts an empty value or one that parse recognises.
func enum[T ~string](parse func(string) (T, bool), err error) validation.Rule {
	return validation.By(func(v any) error {
		s, _ := v.(string)
		if strings.TrimSpace(s) == "" {
			return nil
		}
		if _, ok := parse(s); !ok {
			return err
		}
		return nil
	})
}

func layout(l string, err error) validation.Rule {
	return validation.By(func(v any) error {
		s, _ := v.(string)
		if s == "" {
			return nil
		}
		if _, parseErr := time.Parse(l, s); parseErr != nil {
			return err
		}
		return nil
	})
}

var (
	isDate  = layout(domain.DateLayout, errInvalidDate)
	isHeure = layout(domain.HeureLayout, errInvalidHeure)
)

func containsAt(v any) error {
	s, _ := v.(string)
	if s = strings.TrimSpace(s); s != "" && !strings.Contains(s, "@") {
		return errInvalidEmail
	}
	return nil
}
