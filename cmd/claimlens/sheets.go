package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/insurai/claimlens/internal/cli"
	"github.com/insurai/claimlens/internal/config"
	"github.com/insurai/claimlens/internal/sheets"
	"github.com/insurai/claimlens/internal/stats"
)

func sheetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "Publish the claims report to Google Sheets",
		Long: `Writes the analytics snapshot and the itemized claim list to a
Google Sheets spreadsheet. Authentication uses either a service account
key or OAuth2 refresh-token credentials; see the sheets section of the
config file.`,
		RunE: runSheets,
	}

	return cmd
}

func runSheets(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	claims, _, err := loadEnrichedClaims()
	if err != nil {
		return err
	}

	sheetsConfig, err := config.LoadSheetsConfig()
	if err != nil {
		return fmt.Errorf("sheets configuration: %w", err)
	}

	writer, err := sheets.NewWriter(ctx, *sheetsConfig, slog.Default())
	if err != nil {
		return err
	}

	snap := stats.Aggregate(claims, time.Now())

	fmt.Println(cli.FormatTitle("Publishing claims report..."))
	if err := writer.Write(ctx, claims, snap); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Published %d claims", len(claims))))
	return nil
}
