// Package domain provides domain models and business logic for the Business Directory Service.
package domain

// Resource identifies one of the entity types served by the directory.
// These values must match the database table names.
type Resource string

const (
	ResourceBusiness Resource = "businesses"
	ResourceReview   Resource = "reviews"
	ResourcePhoto    Resource = "photos"
	ResourceUser     Resource = "users"
)

// Singular returns the singular entity name for a resource,
// used in links maps and error messages.
func (r Resource) Singular() string {
	switch r {
	case ResourceBusiness:
		return "business"
	case ResourceReview:
		return "review"
	case ResourcePhoto:
		return "photo"
	case ResourceUser:
		return "user"
	default:
		return string(r)
	}
}

// Resources lists all resource types served by the directory.
func Resources() []Resource {
	return []Resource{ResourceBusiness, ResourceReview, ResourcePhoto, ResourceUser}
}

// Record is one entity instance represented as a field-to-value mapping.
// Records arrive shaped by the client and leave shaped by the store; the
// schema package reduces them to recognized fields before persistence.
type Record map[string]interface{}

// ID returns the record's identity as an int64 when present.
// Identity is assigned by the store on creation and is never client-supplied.
func (r Record) ID() (int64, bool) {
	return ToID(r["id"])
}

// ToID coerces a scanned or decoded value to the store's identity type.
// Database scans produce int64 for BIGINT columns while JSON decoding
// produces float64, so both must be accepted.
func ToID(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}
