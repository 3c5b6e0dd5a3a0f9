package catalog

import (
	"strings"

	"github.com/Thilina-Shamika/property-stable-sub000/pkg/db/models"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/enums"
	pkgerrors "github.com/Thilina-Shamika/property-stable-sub000/pkg/errors"
)

// Record is the shape every catalog kind satisfies. The service mutates
// status, media, and timestamps through Core without knowing the row type.
type Record interface {
	Core() *models.ListingCore
	ListingKind() enums.ListingKind
}

// Fields carries the scalar form values of an admin submission. Repeated
// keys (amenity tags) keep their submission order.
type Fields map[string][]string

// Get returns the first trimmed value for key.
func (f Fields) Get(key string) string {
	values, ok := f[key]
	if !ok || len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

// List returns every non-empty value for key.
func (f Fields) List(key string) []string {
	out := make([]string, 0, len(f[key]))
	for _, value := range f[key] {
		value = strings.TrimSpace(value)
		if value != "" {
			out = append(out, value)
		}
	}
	return out
}

// Schema binds one listing kind into the generic catalog service: which
// fields it requires, how form values map onto its row, and which fields
// the admin search matches against.
type Schema struct {
	Kind     enums.ListingKind
	Required []string

	// New returns a fresh zero record of the kind.
	New func() Record
	// Apply copies scalar form values onto the record. It runs after
	// Validate, so required fields are known non-empty.
	Apply func(rec Record, fields Fields) error
	// Finalize recomputes derived fields after media assignment. Optional.
	Finalize func(rec Record)
	// PropertyType returns the kind-specific type field.
	PropertyType func(rec Record) string
	// Beds returns the bed-count field when the kind has one.
	Beds func(rec Record) (string, bool)
	// SearchText returns the fields the admin substring search scans.
	SearchText func(rec Record) []string
}

// Validate checks every required field is present and non-empty, naming
// the first offending field.
func (s *Schema) Validate(fields Fields) error {
	for _, name := range s.Required {
		if fields.Get(name) == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, "missing required field "+name).
				WithDetails(map[string]string{"field": name})
		}
	}
	return nil
}

func applyCore(core *models.ListingCore, fields Fields) {
	core.Price = fields.Get("price")
	core.Location = fields.Get("location")
	core.Description = fields.Get("description")
}
