// Package validation checks request payloads against their declared shape
// before any storage access happens.
package validation

import (
	"errors"
	"log"
	"regexp"

	"arenaserver/internal/apperrors"

	"github.com/go-playground/validator/v10"
)

var (
	hangulAlnum      = regexp.MustCompile(`^[가-힣a-zA-Z0-9]+$`)
	hangulAlnumSpace = regexp.MustCompile(`^[가-힣a-zA-Z0-9 ]+$`)
)

// Validator validates request structs using their `validate` tags.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the custom tags registered:
//
//	hangulalnum       Hangul syllables, ASCII letters and digits
//	hangulalnumspace  the same plus the space character
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "hangulalnum", matches(hangulAlnum))
	mustRegister(v, "hangulalnumspace", matches(hangulAlnumSpace))
	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// Struct validates s. Any failure is reported as a single validation error;
// the offending fields are only logged.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, e := range fieldErrs {
			log.Printf("Validation failed: field '%s' on the '%s' tag", e.Namespace(), e.Tag())
		}
	}
	return apperrors.Validation(err)
}
