package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/LootForge_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// GetValidator returns the shared validator, creating it on first use
func GetValidator() *Validator {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("rarity", validateRarity)
		v.RegisterTagNameFunc(jsonFieldName)
		validate = &Validator{validate: v}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError turns validation errors into a field -> message map
// keyed by JSON field name.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "rarity":
			errs[field] = fmt.Sprintf("Unknown rarity %q. Valid options: common, uncommon, rare, unique", e.Value())
		case "gte", "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "lte", "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateRarity(fl validator.FieldLevel) bool {
	_, err := domain.ParseRarity(fl.Field().String())
	return err == nil
}

// jsonFieldName reports fields by their JSON name so clients see the keys they sent
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}
