package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/localspot/business-directory/internal/domain"
	"github.com/localspot/business-directory/internal/pagination"
	"github.com/localspot/business-directory/internal/schema"
)

// Compile-time interface verification.
var _ ResourceRepository = (*PgResourceRepository)(nil)

// PgResourceRepository is a PostgreSQL implementation of ResourceRepository.
// One instance serves one table; the column set it touches comes entirely
// from the resource schema, which keeps identifiers out of caller control.
type PgResourceRepository struct {
	db       DBTX
	resource domain.Resource
	table    string
	schema   schema.Schema
	columns  []string // sorted schema field names, fixed at construction
}

// NewPgResourceRepository creates a repository for the given resource type.
// Returns an error if no schema is registered for the resource.
func NewPgResourceRepository(db DBTX, resource domain.Resource) (*PgResourceRepository, error) {
	s, ok := schema.For(resource)
	if !ok {
		return nil, fmt.Errorf("no schema registered for resource %q", resource)
	}

	columns := make([]string, 0, len(s))
	for name := range s {
		columns = append(columns, name)
	}
	sort.Strings(columns)

	return &PgResourceRepository{
		db:       db,
		resource: resource,
		table:    string(resource),
		schema:   s,
		columns:  columns,
	}, nil
}

// NewBusinessRepository creates a repository over the businesses table.
func NewBusinessRepository(db DBTX) (*PgResourceRepository, error) {
	return NewPgResourceRepository(db, domain.ResourceBusiness)
}

// NewReviewRepository creates a repository over the reviews table.
func NewReviewRepository(db DBTX) (*PgResourceRepository, error) {
	return NewPgResourceRepository(db, domain.ResourceReview)
}

// NewPhotoRepository creates a repository over the photos table.
func NewPhotoRepository(db DBTX) (*PgResourceRepository, error) {
	return NewPgResourceRepository(db, domain.ResourcePhoto)
}

// NewUserRepository creates a repository over the users table.
func NewUserRepository(db DBTX) (*PgResourceRepository, error) {
	return NewPgResourceRepository(db, domain.ResourceUser)
}

// Resource reports which resource collection this repository serves.
func (r *PgResourceRepository) Resource() domain.Resource {
	return r.resource
}

// presentColumns returns the sorted schema columns that rec actually
// carries, plus the matching values in the same order. Sorting keeps the
// generated SQL deterministic for a given field set.
func (r *PgResourceRepository) presentColumns(rec domain.Record) ([]string, []interface{}) {
	extracted := schema.ExtractFields(rec, r.schema)

	cols := make([]string, 0, len(extracted))
	for _, name := range r.columns {
		if _, ok := extracted[name]; ok {
			cols = append(cols, name)
		}
	}

	vals := make([]interface{}, len(cols))
	for i, name := range cols {
		vals[i] = extracted[name]
	}
	return cols, vals
}

// Create inserts a new record and returns the database-assigned ID.
func (r *PgResourceRepository) Create(ctx context.Context, rec domain.Record) (int64, error) {
	cols, vals := r.presentColumns(rec)
	if len(cols) == 0 {
		return 0, domain.NewValidationError(string(r.resource), "record has no recognized fields")
	}

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		r.table,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
	)

	var id int64
	if err := r.db.QueryRow(ctx, query, vals...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert %s: %w", r.resource.Singular(), err)
	}
	return id, nil
}

// GetByID retrieves a single record by its primary key.
func (r *PgResourceRepository) GetByID(ctx context.Context, id int64) (domain.Record, error) {
	query := fmt.Sprintf("SELECT * FROM %s WHERE id = $1", r.table)

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.resource.Singular(), err)
	}
	defer rows.Close()

	records, err := collectRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s row: %w", r.resource.Singular(), err)
	}
	if len(records) == 0 {
		return nil, domain.NewNotFoundError(r.resource.Singular(), fmt.Sprintf("%d", id))
	}
	// The primary key is unique so at most one row comes back; take the
	// first either way.
	return records[0], nil
}

// UpdateByID replaces the schema fields of an existing record.
func (r *PgResourceRepository) UpdateByID(ctx context.Context, id int64, rec domain.Record) error {
	cols, vals := r.presentColumns(rec)
	if len(cols) == 0 {
		return domain.NewValidationError(string(r.resource), "record has no recognized fields")
	}

	assignments := make([]string, len(cols))
	for i, name := range cols {
		assignments[i] = fmt.Sprintf("%s = $%d", name, i+1)
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d",
		r.table,
		strings.Join(assignments, ", "),
		len(cols)+1,
	)
	vals = append(vals, id)

	tag, err := r.db.Exec(ctx, query, vals...)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", r.resource.Singular(), err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(r.resource.Singular(), fmt.Sprintf("%d", id))
	}
	return nil
}

// DeleteByID removes a record by its primary key.
func (r *PgResourceRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.table)

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s: %w", r.resource.Singular(), err)
	}
	return tag.RowsAffected(), nil
}

// Count returns the total number of records in the collection.
func (r *PgResourceRepository) Count(ctx context.Context) (int64, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", r.table)

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", r.table, err)
	}
	return count, nil
}

// ListWindow retrieves up to limit records ordered by ID.
func (r *PgResourceRepository) ListWindow(ctx context.Context, limit, offset int) ([]domain.Record, error) {
	query := fmt.Sprintf("SELECT * FROM %s ORDER BY id LIMIT $1 OFFSET $2", r.table)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.table, err)
	}
	defer rows.Close()

	records, err := collectRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s rows: %w", r.table, err)
	}
	return records, nil
}

// Page retrieves one page of records using the default page size.
func (r *PgResourceRepository) Page(ctx context.Context, requestedPage int) (domain.Page, error) {
	count, err := r.Count(ctx)
	if err != nil {
		return domain.Page{}, err
	}

	window := pagination.Paginate(requestedPage, count, pagination.DefaultPageSize)

	items, err := r.ListWindow(ctx, pagination.DefaultPageSize, window.Offset)
	if err != nil {
		return domain.Page{}, err
	}

	return domain.Page{
		Items:      items,
		Number:     window.Page,
		TotalPages: window.TotalPages,
		PageSize:   pagination.DefaultPageSize,
		Count:      count,
	}, nil
}

// ListAll retrieves every record in the collection ordered by ID.
func (r *PgResourceRepository) ListAll(ctx context.Context) ([]domain.Record, error) {
	query := fmt.Sprintf("SELECT * FROM %s ORDER BY id", r.table)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.table, err)
	}
	defer rows.Close()

	records, err := collectRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s rows: %w", r.table, err)
	}
	return records, nil
}

// ListByField retrieves all records whose field equals value, ordered by ID.
func (r *PgResourceRepository) ListByField(ctx context.Context, field string, value int64) ([]domain.Record, error) {
	if _, ok := r.schema[field]; !ok {
		return nil, domain.NewValidationError(string(r.resource), fmt.Sprintf("unknown field %q", field))
	}

	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = $1 ORDER BY id", r.table, field)

	rows, err := r.db.Query(ctx, query, value)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s by %s: %w", r.table, field, err)
	}
	defer rows.Close()

	records, err := collectRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s rows: %w", r.table, err)
	}
	return records, nil
}

// collectRecords drains rows into schemaless records keyed by the result
// set's column names. Column order does not matter to callers, so SELECT *
// is safe here.
func collectRecords(rows pgx.Rows) ([]domain.Record, error) {
	fields := rows.FieldDescriptions()

	records := make([]domain.Record, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		rec := make(domain.Record, len(fields))
		for i, fd := range fields {
			rec[fd.Name] = values[i]
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
