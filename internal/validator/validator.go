// Package validator provides the custom validation rules shared by the
// configuration loader and the seed CLI.
package validator

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// Get returns the shared validator with all custom rules registered.
func Get() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("seed_location", validateSeedLocation)
		_ = validate.RegisterValidation("db_driver", validateDBDriver)
	})
	return validate
}

// Struct validates a struct using its `validate` tags.
func Struct(s any) error {
	return Get().Struct(s)
}

// SeedLocation validates a single seed source location.
func SeedLocation(location string) error {
	return Get().Var(location, "required,seed_location")
}

// IsS3Location reports whether location uses the s3:// scheme.
func IsS3Location(location string) bool {
	return strings.HasPrefix(location, "s3://")
}

// validateSeedLocation accepts s3://bucket/key or a path to a .json file.
func validateSeedLocation(fl validator.FieldLevel) bool {
	loc := fl.Field().String()
	if IsS3Location(loc) {
		bucket, key, ok := strings.Cut(strings.TrimPrefix(loc, "s3://"), "/")
		return ok && bucket != "" && key != ""
	}
	return strings.HasSuffix(strings.ToLower(loc), ".json")
}

func validateDBDriver(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "postgres", "sqlite":
		return true
	}
	return false
}
