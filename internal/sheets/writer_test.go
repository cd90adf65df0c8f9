package sheets

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurai/claimlens/internal/model"
	"github.com/insurai/claimlens/internal/stats"
)

func findRow(values [][]any, label string) int {
	for i, row := range values {
		if len(row) > 0 && fmt.Sprint(row[0]) == label {
			return i
		}
	}
	return -1
}

func TestPrepareReportData(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	older := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	claims := []model.EnrichedClaim{
		{
			NormalizedClaim: model.NormalizedClaim{ID: 1, Title: "Dental", Amount: 500, Status: model.StatusApproved, Date: &older},
			EmployeeName:    "John Doe",
		},
		{
			NormalizedClaim: model.NormalizedClaim{ID: 2, Title: "Vision", Amount: 200, Status: model.StatusPending, Date: &newer},
			EmployeeName:    "Jane Roe",
		},
		{
			NormalizedClaim: model.NormalizedClaim{ID: 3, Title: "Travel", Amount: 100, Status: model.StatusPending},
			EmployeeName:    "No Date",
		},
	}
	snap := stats.Aggregate(claims, now)

	w := &Writer{config: DefaultConfig(), logger: slog.Default()}
	values := w.prepareReportData(claims, snap)

	// Section order: summary, breakdown, trend, details.
	summaryAt := findRow(values, "Summary")
	breakdownAt := findRow(values, "Status Breakdown")
	trendAt := findRow(values, "Monthly Trend")
	detailsAt := findRow(values, "Claim Details")
	require.NotEqual(t, -1, summaryAt)
	require.NotEqual(t, -1, breakdownAt)
	require.NotEqual(t, -1, trendAt)
	require.NotEqual(t, -1, detailsAt)
	assert.Less(t, summaryAt, breakdownAt)
	assert.Less(t, breakdownAt, trendAt)
	assert.Less(t, trendAt, detailsAt)

	// Claim rows come after the column header, newest first, undated last.
	claimRows := values[detailsAt+2:]
	require.Len(t, claimRows, 3)
	assert.Equal(t, "Jane Roe", claimRows[0][1])
	assert.Equal(t, "John Doe", claimRows[1][1])
	assert.Equal(t, "No Date", claimRows[2][1])
	assert.Equal(t, "N/A", claimRows[2][0])

	// Input order is untouched.
	assert.Equal(t, int64(1), claims[0].ID)
	assert.Equal(t, int64(2), claims[1].ID)
}

func TestPrepareReportData_EmptyCollection(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	snap := stats.Aggregate(nil, now)

	w := &Writer{config: DefaultConfig(), logger: slog.Default()}
	values := w.prepareReportData(nil, snap)

	detailsAt := findRow(values, "Claim Details")
	require.NotEqual(t, -1, detailsAt)

	// Header row plus nothing after it.
	assert.Len(t, values, detailsAt+2)
}
