package domain

// Page is a bounded, ordered slice of a resource collection plus
// pagination metadata. Pages are transient view objects and are never
// persisted.
type Page struct {
	// Items holds the records of the current page, ordered by identity ascending.
	Items []Record

	// Number is the effective page number after clamping.
	Number int

	// TotalPages is ceil(Count / PageSize). Zero when the collection is empty.
	TotalPages int

	// PageSize is the fixed window size used to compute the page.
	PageSize int

	// Count is the total number of records in the collection.
	Count int64
}
