package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/insurai/claimlens/internal/cli"
	"github.com/insurai/claimlens/internal/model"
	"github.com/insurai/claimlens/internal/stats"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the claims analytics dashboard",
		Long: `Aggregates the stored claim collection into the dashboard rollups:
totals, status breakdown, six month trend, per-assignee workload,
policy usage and the fraud summary.`,
		RunE: runStats,
	}

	cmd.Flags().Bool("fraud", false, "Show only the fraud summary")
	cmd.Flags().Bool("workload", false, "Show only the assignee workload")

	return cmd
}

func runStats(cmd *cobra.Command, _ []string) error {
	claims, _, err := loadEnrichedClaims()
	if err != nil {
		return err
	}

	snap := stats.Aggregate(claims, time.Now())

	fraudOnly, _ := cmd.Flags().GetBool("fraud")
	workloadOnly, _ := cmd.Flags().GetBool("workload")

	switch {
	case fraudOnly:
		fmt.Println(cli.RenderBox(cli.ChartIcon+" Fraud Summary", renderFraud(snap)))
	case workloadOnly:
		fmt.Println(cli.RenderBox(cli.ChartIcon+" Assignee Workload", renderWorkload(claims, snap)))
	default:
		fmt.Println(cli.RenderBox(cli.ChartIcon+" Claims Dashboard", renderDashboard(snap)))
	}

	return nil
}

func renderDashboard(snap *stats.Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Total claims:     %d\n", snap.TotalClaims)
	fmt.Fprintf(&b, "Total amount:     %.2f\n", snap.TotalAmount)
	fmt.Fprintf(&b, "Approved amount:  %.2f\n", snap.ApprovedAmount)
	fmt.Fprintf(&b, "Average claim:    %.2f\n", snap.AverageAmount)
	b.WriteByte('\n')

	b.WriteString(cli.SubtitleStyle.Render("Status breakdown"))
	b.WriteByte('\n')
	for _, sc := range snap.StatusBreakdown {
		label := cli.StatusStyle(string(sc.Bucket)).Render(fmt.Sprintf("%-8s", sc.Bucket))
		fmt.Fprintf(&b, "%s %4d  (%.1f%%)\n", label, sc.Count, sc.Percentage)
	}
	b.WriteByte('\n')

	b.WriteString(cli.SubtitleStyle.Render("Monthly trend"))
	b.WriteByte('\n')
	for _, pt := range snap.MonthlyTrend {
		fmt.Fprintf(&b, "%-9s %4d claims  (%d approved, %d pending)\n",
			pt.Month, pt.TotalCount, pt.ApprovedCount, pt.PendingCount)
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderFraud(snap *stats.Snapshot) string {
	f := snap.Fraud
	var b strings.Builder
	fmt.Fprintf(&b, "Flagged claims:   %d\n", f.TotalCount)
	fmt.Fprintf(&b, "Pending:          %d  (%.2f)\n", f.PendingCount, f.PendingAmount)
	fmt.Fprintf(&b, "Resolved:         %d  (%.2f)\n", f.ResolvedCount, f.ResolvedAmount)
	fmt.Fprintf(&b, "Flagged amount:   %.2f", f.TotalAmount)
	return b.String()
}

func renderWorkload(claims []model.EnrichedClaim, snap *stats.Snapshot) string {
	// Resolve assignee names from the claims themselves; the workload map
	// is keyed by id only.
	names := make(map[int64]string)
	for _, c := range claims {
		if c.AssignedHRID != 0 {
			names[c.AssignedHRID] = c.AssignedHRName
		}
	}

	ids := make([]int64, 0, len(snap.AssigneeWorkload))
	for id := range snap.AssigneeWorkload {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var b strings.Builder
	for _, id := range ids {
		w := snap.AssigneeWorkload[id]
		name := names[id]
		if name == "" {
			name = fmt.Sprintf("HR #%d", id)
		}
		fmt.Fprintf(&b, "%-20s total %3d  approved %3d  rejected %3d  pending %3d  rate %.1f%%\n",
			name, w.Total, w.Approved, w.Rejected, w.Pending, w.ApprovalRate)
	}
	if b.Len() == 0 {
		return "No assigned claims."
	}
	return strings.TrimRight(b.String(), "\n")
}
