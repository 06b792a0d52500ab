package config

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its `validate` tag and reports the
// first violation.
func (c *Config) Validate() error {
	return Struct(c)
}

// Struct validates any tagged struct, translating the first failure into a
// readable error.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]

		return errInvalidField.Fmt(fe.Namespace(), fe.ActualTag(), fe.Value())
	}

	return err
}
