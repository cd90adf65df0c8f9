package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/insurai/claimlens/internal/cli"
	"github.com/insurai/claimlens/internal/common"
)

func fetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch claims and reference data from the portal",
		Long: `Pulls the claim collection, the employee, HR, agent and policy
directories, and the audit log from the portal API, then stores the
dataset locally for the reporting commands.`,
		RunE: runFetch,
	}

	cmd.Flags().String("url", "", "Portal base URL")
	cmd.Flags().String("token", "", "Portal API token")

	_ = viper.BindPFlag("portal.url", cmd.Flags().Lookup("url"))
	_ = viper.BindPFlag("portal.token", cmd.Flags().Lookup("token"))

	return cmd
}

func runFetch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	client, err := newPortalClient()
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatTitle("Fetching portal data..."))

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Fetching collections...[reset]"),
		progressbar.OptionSpinnerType(14),
	)

	var fetchErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		ds, err := client.FetchAll(ctx)
		if err != nil {
			fetchErr = err
			return
		}
		fetchErr = saveDataset(ds)
		if fetchErr == nil {
			slog.Info("dataset stored",
				"claims", len(ds.Claims),
				"employees", len(ds.Employees),
				"policies", len(ds.Policies),
				"audit_logs", len(ds.AuditLogs),
				"path", datasetPath())
		}
	}()

	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case <-done:
			_ = bar.Finish()
			if fetchErr != nil {
				if common.IsRetryable(fetchErr) {
					fmt.Println(cli.FormatWarning("Portal unreachable; try again shortly"))
				}
				return fetchErr
			}
			fmt.Println(cli.FormatSuccess("Fetch complete"))
			return nil
		case <-tick.C:
			_ = bar.Add(1)
		}
	}
}
