package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurai/claimlens/internal/model"
)

func fraudClaim(id int64, name, title, reason string, status model.StatusBucket) model.EnrichedClaim {
	return model.EnrichedClaim{
		NormalizedClaim: model.NormalizedClaim{
			ID:          id,
			Title:       title,
			Status:      status,
			FraudFlag:   true,
			FraudReason: reason,
		},
		EmployeeName:   name,
		AssignedHRName: "Priya Shah",
		PolicyName:     "Group Health",
	}
}

func testFraudClaims() []model.EnrichedClaim {
	clean := claim(1, "John Doe", model.StatusApproved, 500, nil)
	return []model.EnrichedClaim{
		clean,
		fraudClaim(2, "Jane Roe", "Dental", "Duplicate receipt submitted", model.StatusPending),
		fraudClaim(3, "Arun Mehta", "Vision", "Amount exceeds policy cap", model.StatusRejected),
	}
}

func TestFilterFraud(t *testing.T) {
	tests := []struct {
		name    string
		search  string
		wantIDs []int64
	}{
		{name: "blank search keeps flagged subset only", search: "", wantIDs: []int64{2, 3}},
		{name: "fraud reason substring", search: "duplicate receipt", wantIDs: []int64{2}},
		{name: "fraud reason is case insensitive", search: "POLICY CAP", wantIDs: []int64{3}},
		{name: "employee name", search: "jane", wantIDs: []int64{2}},
		{name: "claim type", search: "vision", wantIDs: []int64{3}},
		{name: "assigned hr name", search: "priya", wantIDs: []int64{2, 3}},
		{name: "unflagged claim never matches", search: "john doe", wantIDs: []int64{}},
		{name: "no match is empty not error", search: "zzz", wantIDs: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterFraud(testFraudClaims(), tt.search)
			require.NotNil(t, got)
			ids := make([]int64, 0, len(got))
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterFraud_ComposesWithPipeline(t *testing.T) {
	flagged := FilterFraud(testFraudClaims(), "")

	// The flagged subset still flows through the shared status filter.
	got := Filter(flagged, model.FilterCriteria{StatusFilter: "Rejected"}, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
}
