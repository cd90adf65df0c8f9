// Package export serializes claim collections and reference datasets to
// the portal's download formats: CSV text and tabular PDF documents.
// Exporters are pure functions; an empty collection produces a header-only
// artifact, never an error.
package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/insurai/claimlens/internal/model"
)

// Fixed column lists, one per dataset. Columns are enumerated explicitly
// so a model change can never silently leak a new field into an export.
var (
	claimColumns = []string{
		"Claim ID", "Employee Name", "Employee ID", "Claim Type", "Amount",
		"Date", "Status", "Policy Name", "Assigned HR", "Remarks",
	}
	// User exports deliberately omit credential fields; the row builder
	// never reads them.
	userColumns = []string{"Name", "Email", "Role", "Employee ID", "Status"}

	policyColumns = []string{
		"Policy ID", "Policy Name", "Provider", "Type", "Coverage Amount", "Status",
	}
	auditColumns = []string{"Timestamp", "User", "Role", "Action", "Details"}
)

// missingDateCell stands in for claims whose date did not parse.
const missingDateCell = "N/A"

// ClaimsCSV renders a claim collection, typically the filtered view.
func ClaimsCSV(claims []model.EnrichedClaim) string {
	var b strings.Builder
	writeRow(&b, claimColumns)
	for _, c := range claims {
		writeRow(&b, []string{
			strconv.FormatInt(c.ID, 10),
			c.EmployeeName,
			c.EmployeeIDDisplay,
			c.Title,
			formatAmount(c.Amount),
			formatDate(c.Date),
			string(c.Status),
			c.PolicyName,
			c.AssignedHRName,
			c.Remarks,
		})
	}
	return b.String()
}

// UsersCSV renders user records with credentials redacted.
func UsersCSV(users []model.Employee) string {
	var b strings.Builder
	writeRow(&b, userColumns)
	for _, u := range users {
		writeRow(&b, []string{u.Name, u.Email, u.Role, u.EmployeeID, u.Status})
	}
	return b.String()
}

// PoliciesCSV renders the policy reference collection.
func PoliciesCSV(policies []model.Policy) string {
	var b strings.Builder
	writeRow(&b, policyColumns)
	for _, p := range policies {
		writeRow(&b, []string{
			strconv.FormatInt(p.ID, 10),
			p.PolicyName,
			p.ProviderName,
			p.PolicyType,
			formatAmount(p.CoverageAmount),
			p.Status,
		})
	}
	return b.String()
}

// AuditLogsCSV renders system-activity records.
func AuditLogsCSV(logs []model.AuditLog) string {
	var b strings.Builder
	writeRow(&b, auditColumns)
	for _, l := range logs {
		writeRow(&b, []string{
			l.Timestamp.Format(time.RFC3339),
			l.UserName,
			l.Role,
			l.Action,
			l.Details,
		})
	}
	return b.String()
}

// writeRow quotes every cell unconditionally, doubling embedded quotes.
func writeRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return missingDateCell
	}
	return t.Format("2006-01-02")
}
