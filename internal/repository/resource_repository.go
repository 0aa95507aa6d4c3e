package repository

import (
	"context"

	"github.com/localspot/business-directory/internal/domain"
)

// ResourceRepository handles persistence for one resource collection
// (businesses, reviews, photos, or users). Records are schemaless maps;
// the repository only reads and writes columns declared in the resource
// schema, so callers never control the SQL column set directly.
type ResourceRepository interface {
	// Resource reports which resource collection this repository serves.
	Resource() domain.Resource

	// Create inserts a new record and returns the database-assigned ID.
	// Fields not declared in the resource schema are silently dropped.
	// Returns domain.ErrInvalidInput if no schema field is present.
	Create(ctx context.Context, rec domain.Record) (int64, error)

	// GetByID retrieves a single record by its primary key.
	// Returns domain.ErrNotFound if no matching row exists.
	GetByID(ctx context.Context, id int64) (domain.Record, error)

	// UpdateByID replaces the schema fields of an existing record.
	// Fields not declared in the resource schema are silently dropped.
	// Returns domain.ErrNotFound if no matching row exists.
	UpdateByID(ctx context.Context, id int64, rec domain.Record) error

	// DeleteByID removes a record by its primary key and reports how many
	// rows were affected. Deleting an absent ID is not an error; it
	// affects zero rows.
	DeleteByID(ctx context.Context, id int64) (int64, error)

	// Count returns the total number of records in the collection.
	Count(ctx context.Context) (int64, error)

	// ListWindow retrieves up to limit records ordered by ID, skipping
	// the first offset records.
	ListWindow(ctx context.Context, limit, offset int) ([]domain.Record, error)

	// Page retrieves one page of records using the default page size.
	// Out-of-range page numbers are clamped into the valid range rather
	// than rejected.
	Page(ctx context.Context, requestedPage int) (domain.Page, error)

	// ListAll retrieves every record in the collection ordered by ID.
	ListAll(ctx context.Context) ([]domain.Record, error)

	// ListByField retrieves all records whose field equals value, ordered
	// by ID. The field must be declared in the resource schema; otherwise
	// domain.ErrInvalidInput is returned.
	ListByField(ctx context.Context, field string, value int64) ([]domain.Record, error)
}
