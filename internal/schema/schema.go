// Package schema declares the fields each resource type recognizes and
// provides the validation and sanitization operations shared by every
// resource repository.
//
// Schemas are plain data rather than per-type structs so the validator,
// extractor, and paginator stay resource-agnostic: one engine,
// parameterized by a schema value. The four schemas are fixed at process
// start and must not be mutated afterwards.
package schema

import (
	"github.com/go-playground/validator/v10"

	"github.com/localspot/business-directory/internal/domain"
)

// Field describes a single schema field.
type Field struct {
	// Required marks the field as mandatory for create and full-record update.
	Required bool
}

// Schema maps field names to their descriptors for one resource type.
type Schema map[string]Field

// The four resource schemas. Read-only after process start.
var (
	business = Schema{
		"ownerid":     {Required: true},
		"name":        {Required: true},
		"address":     {Required: true},
		"city":        {Required: true},
		"state":       {Required: true},
		"zip":         {Required: true},
		"phone":       {Required: true},
		"category":    {Required: true},
		"subcategory": {Required: true},
		"website":     {Required: false},
		"email":       {Required: false},
	}

	review = Schema{
		"userid":     {Required: true},
		"businessid": {Required: true},
		"dollars":    {Required: true},
		"stars":      {Required: true},
		"review":     {Required: false},
	}

	photo = Schema{
		"userid":     {Required: true},
		"businessid": {Required: true},
		"caption":    {Required: false},
	}

	user = Schema{
		"name":     {Required: true},
		"email":    {Required: true},
		"password": {Required: false},
	}

	registry = map[domain.Resource]Schema{
		domain.ResourceBusiness: business,
		domain.ResourceReview:   review,
		domain.ResourcePhoto:    photo,
		domain.ResourceUser:     user,
	}
)

// validate is shared across all Valid calls; validator.Validate is safe
// for concurrent use.
var validate = validator.New()

// For returns the schema for a resource type. The returned schema is
// shared and must not be modified.
func For(resource domain.Resource) (Schema, bool) {
	s, ok := registry[resource]
	return s, ok
}

// Valid reports whether every required field of the schema is present in
// the record with a non-empty value. Fields the schema does not declare
// are ignored. The check is delegated to validator's map validation with
// a "required" rule per mandatory field, which rejects absent keys and
// zero values alike.
func Valid(rec domain.Record, s Schema) bool {
	rules := make(map[string]interface{}, len(s))
	for name, field := range s {
		if field.Required {
			rules[name] = "required"
		}
	}
	if len(rules) == 0 {
		return true
	}
	if rec == nil {
		return false
	}

	errs := validate.ValidateMap(rec, rules)
	return len(errs) == 0
}

// ExtractFields returns a new record containing only the keys that the
// schema declares and that are present in the input; everything else is
// silently dropped. Extraction does not enforce required-ness and must
// follow a successful Valid check when used for persistence.
func ExtractFields(rec domain.Record, s Schema) domain.Record {
	sanitized := make(domain.Record, len(s))
	for name := range s {
		if v, ok := rec[name]; ok {
			sanitized[name] = v
		}
	}
	return sanitized
}
