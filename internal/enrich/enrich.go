// Package enrich joins normalized claims against the reference collections
// (employees, HR staff, agents, policies) to produce display-ready records.
package enrich

import (
	"errors"

	"github.com/insurai/claimlens/internal/model"
)

// ErrReferencesNotReady reports that one or more reference collections have
// not arrived yet. Callers should surface it as a loading state, not an
// error: enriching against partial data would stamp spurious fallback
// names onto claims whose references simply haven't loaded.
var ErrReferencesNotReady = errors.New("reference data not yet available")

// Fallback display strings for unresolvable reference ids.
const (
	FallbackEmployeeName = "Unknown"
	FallbackEmployeeID   = "N/A"
	FallbackHRName       = "Not Assigned"
	FallbackPolicyName   = "N/A"
)

// ReferenceSet holds the reference collections indexed by id. Maps are
// built once per snapshot so each claim join is a constant-time lookup.
// A nil map means that collection has not arrived.
type ReferenceSet struct {
	Employees map[int64]model.Employee
	HR        map[int64]model.HRStaff
	Agents    map[int64]model.Agent
	Policies  map[int64]model.Policy
}

// NewReferenceSet indexes all four collections. Empty slices are valid;
// the resulting set is always ready.
func NewReferenceSet(employees []model.Employee, hr []model.HRStaff, agents []model.Agent, policies []model.Policy) *ReferenceSet {
	s := &ReferenceSet{
		Employees: make(map[int64]model.Employee, len(employees)),
		HR:        make(map[int64]model.HRStaff, len(hr)),
		Agents:    make(map[int64]model.Agent, len(agents)),
		Policies:  make(map[int64]model.Policy, len(policies)),
	}
	for _, e := range employees {
		s.Employees[e.ID] = e
	}
	for _, h := range hr {
		s.HR[h.ID] = h
	}
	for _, a := range agents {
		s.Agents[a.ID] = a
	}
	for _, p := range policies {
		s.Policies[p.ID] = p
	}
	return s
}

// Ready reports whether every reference collection has arrived.
func (s *ReferenceSet) Ready() bool {
	if s == nil {
		return false
	}
	return s.Employees != nil && s.HR != nil && s.Agents != nil && s.Policies != nil
}

// Enrich joins each claim against the reference set. It returns
// ErrReferencesNotReady if any collection is missing; otherwise it never
// fails; unresolvable ids get fallback display strings.
func Enrich(claims []model.NormalizedClaim, refs *ReferenceSet) ([]model.EnrichedClaim, error) {
	if !refs.Ready() {
		return nil, ErrReferencesNotReady
	}

	out := make([]model.EnrichedClaim, len(claims))
	for i, c := range claims {
		ec := model.EnrichedClaim{
			NormalizedClaim:   c,
			EmployeeName:      FallbackEmployeeName,
			EmployeeIDDisplay: FallbackEmployeeID,
			AssignedHRName:    FallbackHRName,
			PolicyName:        FallbackPolicyName,
		}
		if emp, ok := refs.Employees[c.EmployeeID]; ok {
			if emp.Name != "" {
				ec.EmployeeName = emp.Name
			}
			if emp.EmployeeID != "" {
				ec.EmployeeIDDisplay = emp.EmployeeID
			}
		}
		if hr, ok := refs.HR[c.AssignedHRID]; ok && hr.Name != "" {
			ec.AssignedHRName = hr.Name
		}
		if pol, ok := refs.Policies[c.PolicyID]; ok && pol.PolicyName != "" {
			ec.PolicyName = pol.PolicyName
		}
		out[i] = ec
	}
	return out, nil
}
