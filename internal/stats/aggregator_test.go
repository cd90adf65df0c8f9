package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurai/claimlens/internal/model"
)

var testNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

func enriched(c model.NormalizedClaim) model.EnrichedClaim {
	return model.EnrichedClaim{NormalizedClaim: c}
}

func TestAggregate_TotalsExample(t *testing.T) {
	// Mirrors the documented example: one approved claim for 500 and one
	// pending claim whose amount failed to parse (coerced to 0 upstream).
	claims := []model.EnrichedClaim{
		enriched(model.NormalizedClaim{ID: 1, Status: model.StatusApproved, Amount: 500}),
		enriched(model.NormalizedClaim{ID: 2, Status: model.StatusPending, Amount: 0}),
	}

	snap := Aggregate(claims, testNow)

	assert.Equal(t, 2, snap.TotalClaims)
	assert.Equal(t, 1, snap.Count(model.StatusApproved))
	assert.Equal(t, 1, snap.Count(model.StatusPending))
	assert.Equal(t, float64(500), snap.TotalAmount)
	assert.Equal(t, float64(500), snap.ApprovedAmount)
	assert.Equal(t, float64(250), snap.AverageAmount)
}

func TestAggregate_StatusBreakdownSumsToTotal(t *testing.T) {
	claims := []model.EnrichedClaim{
		enriched(model.NormalizedClaim{Status: model.StatusApproved}),
		enriched(model.NormalizedClaim{Status: model.StatusPending}),
		enriched(model.NormalizedClaim{Status: model.StatusPending}),
		enriched(model.NormalizedClaim{Status: model.StatusRejected}),
		enriched(model.NormalizedClaim{Status: model.StatusOther}),
	}

	snap := Aggregate(claims, testNow)

	sum := 0
	var pct float64
	for _, sc := range snap.StatusBreakdown {
		sum += sc.Count
		pct += sc.Percentage
	}
	assert.Equal(t, snap.TotalClaims, sum)
	assert.InDelta(t, 100.0, pct, 0.0001)
}

func TestAggregate_EmptyInput(t *testing.T) {
	snap := Aggregate(nil, testNow)

	assert.Zero(t, snap.TotalClaims)
	assert.Zero(t, snap.TotalAmount)
	assert.Zero(t, snap.AverageAmount)
	require.Len(t, snap.MonthlyTrend, 6)
	for _, p := range snap.MonthlyTrend {
		assert.Zero(t, p.TotalCount)
	}
	for _, sc := range snap.StatusBreakdown {
		assert.Zero(t, sc.Count)
		assert.Zero(t, sc.Percentage)
	}
	assert.Empty(t, snap.AssigneeWorkload)
	assert.Empty(t, snap.PolicyUsage)
	assert.Zero(t, snap.Fraud.TotalCount)
	assert.NotEmpty(t, snap.RunID)
}

func TestMonthlyTrend_FixedWidth(t *testing.T) {
	claims := []model.EnrichedClaim{
		// Current month, approved.
		enriched(model.NormalizedClaim{Status: model.StatusApproved, Date: datePtr(testNow)}),
		// Three months back, pending.
		enriched(model.NormalizedClaim{Status: model.StatusPending, Date: datePtr(testNow.AddDate(0, -3, 0))}),
		// Outside the window entirely.
		enriched(model.NormalizedClaim{Status: model.StatusApproved, Date: datePtr(testNow.AddDate(0, -9, 0))}),
		// Undated: excluded from the trend but counted elsewhere.
		enriched(model.NormalizedClaim{Status: model.StatusApproved}),
	}

	snap := Aggregate(claims, testNow)

	require.Len(t, snap.MonthlyTrend, 6)
	assert.Equal(t, "Mar 2026", snap.MonthlyTrend[0].Month)
	assert.Equal(t, "Aug 2026", snap.MonthlyTrend[5].Month)

	assert.Equal(t, 1, snap.MonthlyTrend[5].TotalCount)
	assert.Equal(t, 1, snap.MonthlyTrend[5].ApprovedCount)
	assert.Equal(t, 1, snap.MonthlyTrend[2].TotalCount)
	assert.Equal(t, 1, snap.MonthlyTrend[2].PendingCount)

	total := 0
	for _, p := range snap.MonthlyTrend {
		total += p.TotalCount
	}
	assert.Equal(t, 2, total)
	// The undated and out-of-window claims still count toward totals.
	assert.Equal(t, 4, snap.TotalClaims)
}

func TestMonthlyTrend_YearBoundary(t *testing.T) {
	january := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	snap := Aggregate(nil, january)

	require.Len(t, snap.MonthlyTrend, 6)
	assert.Equal(t, "Aug 2025", snap.MonthlyTrend[0].Month)
	assert.Equal(t, "Jan 2026", snap.MonthlyTrend[5].Month)
}

func TestAssigneeWorkload(t *testing.T) {
	claims := []model.EnrichedClaim{
		enriched(model.NormalizedClaim{AssignedHRID: 10, Status: model.StatusApproved}),
		enriched(model.NormalizedClaim{AssignedHRID: 10, Status: model.StatusApproved}),
		enriched(model.NormalizedClaim{AssignedHRID: 10, Status: model.StatusRejected}),
		enriched(model.NormalizedClaim{AssignedHRID: 20, Status: model.StatusPending}),
		// Unassigned claims do not appear in the workload.
		enriched(model.NormalizedClaim{Status: model.StatusPending}),
	}

	snap := Aggregate(claims, testNow)

	require.Len(t, snap.AssigneeWorkload, 2)

	w := snap.AssigneeWorkload[10]
	assert.Equal(t, 3, w.Total)
	assert.Equal(t, 2, w.Approved)
	assert.Equal(t, 1, w.Rejected)
	assert.InDelta(t, 66.7, w.ApprovalRate, 0.0001)

	w = snap.AssigneeWorkload[20]
	assert.Equal(t, 1, w.Pending)
	assert.Zero(t, w.ApprovalRate)
}

func TestAssigneeWorkload_NeverNaN(t *testing.T) {
	snap := Aggregate([]model.EnrichedClaim{
		enriched(model.NormalizedClaim{AssignedHRID: 5, Status: model.StatusOther}),
	}, testNow)

	w := snap.AssigneeWorkload[5]
	assert.Equal(t, 1, w.Total)
	assert.Equal(t, 0.0, w.ApprovalRate)
}

func TestPolicyUsage(t *testing.T) {
	claims := []model.EnrichedClaim{
		enriched(model.NormalizedClaim{PolicyID: 30, Amount: 100}),
		enriched(model.NormalizedClaim{PolicyID: 30, Amount: 200}),
		enriched(model.NormalizedClaim{PolicyID: 31, Amount: 50}),
	}
	claims[0].PolicyName = "Group Health"
	claims[1].PolicyName = "Group Health"
	claims[2].PolicyName = "Dental Plus"

	snap := Aggregate(claims, testNow)

	u := snap.PolicyUsage[30]
	assert.Equal(t, "Group Health", u.PolicyName)
	assert.Equal(t, 2, u.ClaimCount)
	assert.Equal(t, float64(300), u.TotalAmount)
	assert.Equal(t, float64(150), u.AvgPerClaim)

	u = snap.PolicyUsage[31]
	assert.Equal(t, float64(50), u.AvgPerClaim)
}

func TestFraudSummary(t *testing.T) {
	claims := []model.EnrichedClaim{
		enriched(model.NormalizedClaim{FraudFlag: true, Status: model.StatusPending, Amount: 1000}),
		enriched(model.NormalizedClaim{FraudFlag: true, Status: model.StatusApproved, Amount: 400}),
		enriched(model.NormalizedClaim{FraudFlag: true, Status: model.StatusRejected, Amount: 600}),
		// Not flagged: invisible to the fraud summary.
		enriched(model.NormalizedClaim{Status: model.StatusPending, Amount: 9999}),
	}

	snap := Aggregate(claims, testNow)

	f := snap.Fraud
	assert.Equal(t, 3, f.TotalCount)
	assert.Equal(t, 1, f.PendingCount)
	assert.Equal(t, 2, f.ResolvedCount)
	assert.Equal(t, float64(2000), f.TotalAmount)
	assert.Equal(t, float64(1000), f.PendingAmount)
	assert.Equal(t, f.TotalAmount-f.PendingAmount, f.ResolvedAmount)
}

func TestAggregate_FreshSnapshotPerRun(t *testing.T) {
	claims := []model.EnrichedClaim{enriched(model.NormalizedClaim{ID: 1})}

	a := Aggregate(claims, testNow)
	b := Aggregate(claims, testNow)

	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Equal(t, a.TotalClaims, b.TotalClaims)
}
