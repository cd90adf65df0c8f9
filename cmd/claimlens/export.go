package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/insurai/claimlens/internal/cli"
	"github.com/insurai/claimlens/internal/export"
	"github.com/insurai/claimlens/internal/model"
	"github.com/insurai/claimlens/internal/query"
	"github.com/insurai/claimlens/internal/stats"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [claims|users|policies|audit]",
		Short: "Export a dataset to CSV or PDF",
		Long: `Writes one of the portal datasets to a file. Claims export to CSV
or PDF and honor the same filter flags as the claims command; the
reference datasets export to CSV only. User exports never include
credential fields.

Audit-log exports filter with --role (exact match), --action
(substring) and --days (entries from the last N days).`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"claims", "users", "policies", "audit"},
		RunE:      runExport,
	}

	cmd.Flags().StringP("format", "f", "csv", "Output format (csv, pdf)")
	cmd.Flags().StringP("out", "o", "", "Output file (default: <dataset>.<format>)")
	cmd.Flags().StringP("search", "q", "", "Substring filter (claims only)")
	cmd.Flags().StringP("status", "s", "All", "Status filter (claims only)")
	cmd.Flags().String("range", "All", "Date window (claims only)")
	cmd.Flags().String("role", "All", "Role filter (audit only)")
	cmd.Flags().String("action", "", "Action substring filter (audit only)")
	cmd.Flags().Int("days", 0, "Keep entries from the last N days (audit only)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	dataset := args[0]
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	if format != "csv" && format != "pdf" {
		return fmt.Errorf("unsupported format %q", format)
	}
	if format == "pdf" && dataset != "claims" {
		return fmt.Errorf("PDF export is only available for claims")
	}
	if outPath == "" {
		outPath = dataset + "." + format
	}

	criteria := model.FilterCriteria{}
	criteria.SearchText, _ = cmd.Flags().GetString("search")
	criteria.StatusFilter, _ = cmd.Flags().GetString("status")
	rangeName, _ := cmd.Flags().GetString("range")
	criteria.DateRange = model.DateRange(rangeName)

	now := time.Now()

	var (
		payload []byte
		records int
		err     error
	)

	switch dataset {
	case "claims":
		claims, _, loadErr := loadEnrichedClaims()
		if loadErr != nil {
			return loadErr
		}
		filtered := query.Filter(claims, criteria, now)
		records = len(filtered)
		if format == "pdf" {
			snap := stats.Aggregate(filtered, now)
			payload, err = export.ClaimsPDF(filtered, snap, now)
			if err != nil {
				return err
			}
		} else {
			payload = []byte(export.ClaimsCSV(filtered))
		}
	case "users":
		_, ds, loadErr := loadEnrichedClaims()
		if loadErr != nil {
			return loadErr
		}
		records = len(ds.Employees)
		payload = []byte(export.UsersCSV(ds.Employees))
	case "policies":
		_, ds, loadErr := loadEnrichedClaims()
		if loadErr != nil {
			return loadErr
		}
		records = len(ds.Policies)
		payload = []byte(export.PoliciesCSV(ds.Policies))
	case "audit":
		_, ds, loadErr := loadEnrichedClaims()
		if loadErr != nil {
			return loadErr
		}
		auditFilter := query.AuditFilter{}
		auditFilter.Role, _ = cmd.Flags().GetString("role")
		auditFilter.Action, _ = cmd.Flags().GetString("action")
		auditFilter.Days, _ = cmd.Flags().GetInt("days")
		logs := query.FilterAuditLogs(ds.AuditLogs, auditFilter, now)
		records = len(logs)
		payload = []byte(export.AuditLogsCSV(logs))
	default:
		return fmt.Errorf("unknown dataset %q", dataset)
	}

	if err := os.WriteFile(outPath, payload, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	record := export.NewReportRecord(outPath, format, records, criteria, now)
	fmt.Println(cli.FormatSuccess(fmt.Sprintf(
		"Exported %d records to %s (report %s)", record.Records, record.Name, record.ID)))

	return nil
}
