package model

// DateRange names a relative date window for filtering. The zero value
// (or DateRangeAll) applies no constraint.
type DateRange string

// Supported date windows. ThisWeek starts on Sunday.
const (
	DateRangeAll       DateRange = "All"
	DateRangeToday     DateRange = "Today"
	DateRangeThisWeek  DateRange = "This Week"
	DateRangeThisMonth DateRange = "This Month"
)

// FilterCriteria describes one filtered view of a claim collection.
// Every field is optional; the zero value passes everything.
type FilterCriteria struct {
	// SearchText is matched case-insensitively as a substring against the
	// employee name, employee id display, policy name and claim id.
	SearchText string
	// StatusFilter keeps claims in the named bucket. Empty or "All"
	// passes every bucket.
	StatusFilter string
	// AssigneeFilter keeps claims assigned to the named HR user. Empty or
	// "All" passes everything.
	AssigneeFilter string
	// DateRange keeps claims whose date falls in the window. Claims
	// without a parseable date never match a bounded window.
	DateRange DateRange
}

// SortDirection orders a sorted view ascending or descending.
type SortDirection string

// Sort directions.
const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortSpec selects the sort key and direction for a view. An empty Key
// leaves the collection in its incoming order.
type SortSpec struct {
	Key       string
	Direction SortDirection
}

// PageRequest selects one page of a view. PageIndex is 1-based.
type PageRequest struct {
	PageSize  int
	PageIndex int
}
