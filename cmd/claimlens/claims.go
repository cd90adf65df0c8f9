package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/insurai/claimlens/internal/cli"
	"github.com/insurai/claimlens/internal/model"
	"github.com/insurai/claimlens/internal/query"
)

func claimsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claims",
		Short: "List claims with filtering, sorting and pagination",
		Long: `Shows the enriched claim collection as a table. Filters, sort order
and pagination compose; the table footer reports the page position.

With --fraud the view is restricted to fraud-flagged claims, and the
search additionally covers the assigned HR name, the claim type and the
recorded fraud reason.`,
		RunE: runClaims,
	}

	cmd.Flags().StringP("search", "q", "", "Substring match on employee, policy or claim id")
	cmd.Flags().Bool("fraud", false, "Show only fraud-flagged claims")
	cmd.Flags().StringP("status", "s", "All", "Status filter (Pending, Approved, Rejected, Other, All)")
	cmd.Flags().String("assignee", "All", "Assigned HR filter")
	cmd.Flags().String("range", "All", "Date window (Today, 'This Week', 'This Month', All)")
	cmd.Flags().String("sort", "claimDate", "Sort key (claimDate, amount, id, employeeName, status, policyName)")
	cmd.Flags().String("dir", "desc", "Sort direction (asc, desc)")
	cmd.Flags().Int("page", 1, "Page number (1-based)")
	cmd.Flags().Int("page-size", 20, "Rows per page")

	return cmd
}

func runClaims(cmd *cobra.Command, _ []string) error {
	claims, _, err := loadEnrichedClaims()
	if err != nil {
		return err
	}

	criteria := model.FilterCriteria{}
	criteria.SearchText, _ = cmd.Flags().GetString("search")
	criteria.StatusFilter, _ = cmd.Flags().GetString("status")
	criteria.AssigneeFilter, _ = cmd.Flags().GetString("assignee")
	rangeName, _ := cmd.Flags().GetString("range")
	criteria.DateRange = model.DateRange(rangeName)

	spec := model.SortSpec{}
	spec.Key, _ = cmd.Flags().GetString("sort")
	dir, _ := cmd.Flags().GetString("dir")
	spec.Direction = model.SortDirection(dir)

	page := model.PageRequest{}
	page.PageIndex, _ = cmd.Flags().GetInt("page")
	page.PageSize, _ = cmd.Flags().GetInt("page-size")

	title := "Claims"
	if fraudOnly, _ := cmd.Flags().GetBool("fraud"); fraudOnly {
		// The fraud view applies its own wider search over the flagged
		// subset; the remaining criteria still compose on top.
		claims = query.FilterFraud(claims, criteria.SearchText)
		criteria.SearchText = ""
		title = "Fraud-Flagged Claims"
	}

	result := query.Run(claims, criteria, spec, page, time.Now())

	fmt.Println(cli.FormatTitle(title))
	fmt.Println(renderClaimsTable(result.Claims))
	fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf(
		"Page %d of %d  (%d records)", result.PageIndex, result.TotalPages, result.TotalRecords)))

	return nil
}

var claimsTableColumns = []struct {
	name  string
	width int
}{
	{"ID", 6},
	{"Employee", 20},
	{"Type", 16},
	{"Amount", 10},
	{"Date", 12},
	{"Status", 10},
	{"Policy", 18},
}

func renderClaimsTable(claims []model.EnrichedClaim) string {
	var b strings.Builder

	var header []string
	for _, col := range claimsTableColumns {
		header = append(header, cli.TableHeaderStyle.Width(col.width).Render(col.name))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteByte('\n')

	for _, c := range claims {
		date := "N/A"
		if c.Date != nil {
			date = c.Date.Format("2006-01-02")
		}
		cells := []string{
			strconv.FormatInt(c.ID, 10),
			c.EmployeeName,
			c.Title,
			strconv.FormatFloat(c.Amount, 'f', 2, 64),
			date,
			cli.StatusStyle(string(c.Status)).Render(string(c.Status)),
			c.PolicyName,
		}
		var row []string
		for i, cell := range cells {
			row = append(row, cli.TableCellStyle.Width(claimsTableColumns[i].width).Render(cell))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		b.WriteByte('\n')
	}

	if len(claims) == 0 {
		b.WriteString(cli.SubtleStyle.Render("No claims match the current filters."))
		b.WriteByte('\n')
	}

	return b.String()
}
