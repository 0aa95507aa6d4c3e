// Package pagination computes clamped page windows for list endpoints.
//
// All four resource list endpoints share this implementation so that
// page-boundary behavior is identical everywhere.
package pagination

// DefaultPageSize is the fixed window size for resource listings.
const DefaultPageSize = 10

// Window describes the effective page to fetch from the store.
type Window struct {
	// Page is the requested page after clamping to [1, TotalPages].
	Page int

	// TotalPages is ceil(totalCount / pageSize). Zero for an empty collection.
	TotalPages int

	// Offset is the number of rows to skip: (Page - 1) * pageSize.
	Offset int
}

// Paginate clamps the requested page against the collection size and
// returns the window to fetch. Pages above the last page are clamped
// down to it and pages below 1 are clamped up to 1; the floor applies
// even when the collection is empty, in which case the resulting window
// addresses a degenerate empty range and the store yields no rows.
func Paginate(requestedPage int, totalCount int64, pageSize int) Window {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalPages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))

	page := requestedPage
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	return Window{
		Page:       page,
		TotalPages: totalPages,
		Offset:     (page - 1) * pageSize,
	}
}
