// Package catalog loads the raw tea data a graph is built from: a JSON
// catalog of categories and their teas, and a CSV of tea-to-benefit
// association records.
package catalog

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrMissingHeader is returned when the association CSV lacks a
	// required column.
	ErrMissingHeader = errors.New("association file missing required header")
)

// validate is a singleton validator instance
var validate = validator.New()

// TeaRecord is one tea entry in the catalog. Only the name is required;
// everything else degrades to the graph's sentinel defaults.
type TeaRecord struct {
	Name             string   `json:"name" validate:"omitempty,max=200"`
	Caffeine         string   `json:"caffeine" validate:"omitempty,max=200"`
	Origin           string   `json:"origin" validate:"omitempty,max=200"`
	TasteDescription string   `json:"tasteDescription" validate:"omitempty,max=500"`
	HealthBenefits   []string `json:"healthBenefits" validate:"omitempty,max=50,dive,max=200"`
}

// CategoryEntry is one category in the catalog, holding its teas keyed by
// tea identifier.
type CategoryEntry struct {
	Types map[string]TeaRecord `json:"types"`
}

// Catalog maps category name to its entry.
type Catalog map[string]CategoryEntry

// AssociationRecord is one row of the tea-benefit CSV. Both fields are
// comma-separated lists; the builder connects the full cross-product.
type AssociationRecord struct {
	TeaType       string `validate:"required,max=500"`
	HealthBenefit string `validate:"required,max=500"`
}

// ValidateTea checks a single catalog tea record.
func ValidateTea(rec TeaRecord) error {
	return validate.Struct(rec)
}

// ValidateAssociation checks a single association row.
func ValidateAssociation(rec AssociationRecord) error {
	return validate.Struct(rec)
}
