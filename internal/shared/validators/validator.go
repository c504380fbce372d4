package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// reservedPaths are served by the dashboard and cannot be used for ingestion.
var reservedPaths = map[string]struct{}{
	"/":          {},
	"/demo":      {},
	"/dashboard": {},
	"/api/stats": {},
	"/metrics":   {},
}

// New creates a new validator instance with the service's custom rules registered.
func New() *Validate {
	v := validator.New()
	_ = v.RegisterValidation("ingestpath", validateIngestPath)
	return v
}

// validateIngestPath accepts absolute, non-reserved URL paths.
func validateIngestPath(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if !strings.HasPrefix(path, "/") || strings.ContainsAny(path, " ?#") {
		return false
	}
	_, reserved := reservedPaths[path]
	return !reserved
}
