package portal

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
	errors   map[string]string
}

func GetDefaultValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	return &Validator{
		validate: v,
		errors:   map[string]string{},
	}
}

// Passes runs the struct validations and reports whether they all hold.
func (v *Validator) Passes(abstract any) (bool, error) {
	v.errors = map[string]string{}

	err := v.validate.Struct(abstract)
	if err == nil {
		return true, nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return false, fmt.Errorf("invalid validation target: %w", err)
	}

	var fails validator.ValidationErrors
	if errors.As(err, &fails) {
		for _, item := range fails {
			v.errors[item.Namespace()] = fmt.Sprintf(
				"failed on the [%s] rule", item.Tag(),
			)
		}
	}

	return false, err
}

// Rejects is the negative counterpart of Passes.
func (v *Validator) Rejects(abstract any) (bool, error) {
	ok, err := v.Passes(abstract)

	return !ok, err
}

func (v *Validator) GetErrors() map[string]string {
	return v.errors
}

func (v *Validator) GetErrorsAsJson() string {
	if len(v.errors) == 0 {
		return "{}"
	}

	seed, err := json.Marshal(v.errors)
	if err != nil {
		var sb strings.Builder
		for key, val := range v.errors {
			sb.WriteString(key + ": " + val + "; ")
		}

		return sb.String()
	}

	return string(seed)
}
