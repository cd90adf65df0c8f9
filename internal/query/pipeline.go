// Package query implements the filtered/sorted/paginated views the portal
// screens share. Operations compose in a fixed order (filter, then sort,
// then paginate), are pure, and never mutate their input.
package query

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/insurai/claimlens/internal/model"
)

// Result is one page of a filtered and sorted view, plus the totals the
// caller needs to render pagination controls.
type Result struct {
	Claims       []model.EnrichedClaim
	TotalRecords int
	TotalPages   int
	PageIndex    int
}

// Run applies filter, sort and pagination in that order. now anchors the
// relative date windows so identical inputs always produce identical
// output.
func Run(claims []model.EnrichedClaim, criteria model.FilterCriteria, spec model.SortSpec, page model.PageRequest, now time.Time) Result {
	if page.PageIndex < 1 {
		page.PageIndex = 1
	}
	filtered := Filter(claims, criteria, now)
	sorted := Sort(filtered, spec)
	slice, totalPages := Paginate(sorted, page)
	return Result{
		Claims:       slice,
		TotalRecords: len(sorted),
		TotalPages:   totalPages,
		PageIndex:    page.PageIndex,
	}
}

// Filter keeps the claims matching every criterion. Absent criteria are
// no-ops; the four predicates are ANDed.
func Filter(claims []model.EnrichedClaim, criteria model.FilterCriteria, now time.Time) []model.EnrichedClaim {
	out := make([]model.EnrichedClaim, 0, len(claims))
	search := strings.ToLower(strings.TrimSpace(criteria.SearchText))
	for _, c := range claims {
		if !matchesSearch(c, search) {
			continue
		}
		if !passesFilter(criteria.StatusFilter, string(c.Status)) {
			continue
		}
		if !passesFilter(criteria.AssigneeFilter, c.AssignedHRName) {
			continue
		}
		if !matchesDateRange(c.Date, criteria.DateRange, now) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FilterFraud keeps the fraud-flagged subset matching the search text.
// The fraud view searches a wider field set than the general claims list:
// employee name, policy name, assigned HR name, claim type and the fraud
// reason.
func FilterFraud(claims []model.EnrichedClaim, search string) []model.EnrichedClaim {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]model.EnrichedClaim, 0, len(claims))
	for _, c := range claims {
		if !c.FraudFlag {
			continue
		}
		if search != "" && !matchesFraudSearch(c, search) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesFraudSearch(c model.EnrichedClaim, search string) bool {
	return strings.Contains(strings.ToLower(c.EmployeeName), search) ||
		strings.Contains(strings.ToLower(c.PolicyName), search) ||
		strings.Contains(strings.ToLower(c.AssignedHRName), search) ||
		strings.Contains(strings.ToLower(c.Title), search) ||
		strings.Contains(strings.ToLower(c.FraudReason), search)
}

// matchesSearch checks the fixed set of searchable fields.
func matchesSearch(c model.EnrichedClaim, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.EmployeeName), search) ||
		strings.Contains(strings.ToLower(c.EmployeeIDDisplay), search) ||
		strings.Contains(strings.ToLower(c.PolicyName), search) ||
		strings.Contains(strconv.FormatInt(c.ID, 10), search)
}

func passesFilter(filter, value string) bool {
	return filter == "" || filter == "All" || filter == value
}

// matchesDateRange reports whether a claim date falls inside the window.
// A nil date never matches a bounded window; it is excluded rather than
// defaulted to now.
func matchesDateRange(d *time.Time, r model.DateRange, now time.Time) bool {
	if r == "" || r == model.DateRangeAll {
		return true
	}
	if d == nil {
		return false
	}
	switch r {
	case model.DateRangeToday:
		return sameDay(*d, now)
	case model.DateRangeThisWeek:
		// Week starts on Sunday.
		start := startOfDay(now).AddDate(0, 0, -int(now.Weekday()))
		return !d.Before(start) && d.Before(start.AddDate(0, 0, 7))
	case model.DateRangeThisMonth:
		return d.Year() == now.Year() && d.Month() == now.Month()
	default:
		return true
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Sort returns a sorted copy. Date-typed keys compare as times, numeric
// keys as numbers, everything else as case-folded strings. The sort is
// stable: ties keep their incoming order.
func Sort(claims []model.EnrichedClaim, spec model.SortSpec) []model.EnrichedClaim {
	out := make([]model.EnrichedClaim, len(claims))
	copy(out, claims)
	if spec.Key == "" {
		return out
	}

	less := lessFunc(spec.Key)
	desc := spec.Direction == model.SortDesc
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(key string) func(a, b model.EnrichedClaim) bool {
	switch key {
	case "claimDate", "date":
		return func(a, b model.EnrichedClaim) bool {
			// Claims without a date sort before any dated claim.
			switch {
			case a.Date == nil:
				return b.Date != nil
			case b.Date == nil:
				return false
			default:
				return a.Date.Before(*b.Date)
			}
		}
	case "amount":
		return func(a, b model.EnrichedClaim) bool { return a.Amount < b.Amount }
	case "id":
		return func(a, b model.EnrichedClaim) bool { return a.ID < b.ID }
	default:
		field := stringFieldFunc(key)
		return func(a, b model.EnrichedClaim) bool {
			return strings.ToLower(field(a)) < strings.ToLower(field(b))
		}
	}
}

func stringFieldFunc(key string) func(model.EnrichedClaim) string {
	switch key {
	case "employeeName":
		return func(c model.EnrichedClaim) string { return c.EmployeeName }
	case "employeeIdDisplay":
		return func(c model.EnrichedClaim) string { return c.EmployeeIDDisplay }
	case "assignedHrName":
		return func(c model.EnrichedClaim) string { return c.AssignedHRName }
	case "policyName":
		return func(c model.EnrichedClaim) string { return c.PolicyName }
	case "title":
		return func(c model.EnrichedClaim) string { return c.Title }
	case "status":
		return func(c model.EnrichedClaim) string { return string(c.Status) }
	default:
		return func(model.EnrichedClaim) string { return "" }
	}
}

// Paginate slices out one 1-based page and reports the page count.
// A page index past the end yields an empty slice, not an error.
func Paginate(claims []model.EnrichedClaim, page model.PageRequest) ([]model.EnrichedClaim, int) {
	if page.PageSize < 1 {
		page.PageSize = 1
	}
	if page.PageIndex < 1 {
		page.PageIndex = 1
	}

	totalPages := (len(claims) + page.PageSize - 1) / page.PageSize

	start := (page.PageIndex - 1) * page.PageSize
	if start >= len(claims) {
		return []model.EnrichedClaim{}, totalPages
	}
	end := start + page.PageSize
	if end > len(claims) {
		end = len(claims)
	}
	return claims[start:end], totalPages
}
