// Package config provides configuration utilities for the application.
package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/insurai/claimlens/internal/sheets"
)

// LoadSheetsConfig loads Google Sheets configuration from Viper and environment variables.
// It follows this precedence:
// 1. Viper configuration (config file sheets.* keys)
// 2. Direct environment variables (CLAIMLENS_SHEETS_*)
// 3. Default values
func LoadSheetsConfig() (*sheets.Config, error) {
	config := sheets.DefaultConfig()

	// Load from Viper first
	if v := viper.GetString("sheets.service_account_path"); v != "" {
		config.ServiceAccountPath = ExpandPath(v)
	}
	if v := viper.GetString("sheets.client_id"); v != "" {
		config.ClientID = v
	}
	if v := viper.GetString("sheets.client_secret"); v != "" {
		config.ClientSecret = v
	}
	if v := viper.GetString("sheets.refresh_token"); v != "" {
		config.RefreshToken = v
	}
	if v := viper.GetString("sheets.spreadsheet_id"); v != "" {
		config.SpreadsheetID = v
	}
	if v := viper.GetString("sheets.spreadsheet_name"); v != "" {
		config.SpreadsheetName = v
	}

	// Override with direct environment variables if not set
	if config.ServiceAccountPath == "" {
		if v := os.Getenv(sheets.EnvServiceAccountPath); v != "" {
			config.ServiceAccountPath = ExpandPath(v)
		}
	}
	if config.ClientID == "" {
		config.ClientID = os.Getenv(sheets.EnvClientID)
	}
	if config.ClientSecret == "" {
		config.ClientSecret = os.Getenv(sheets.EnvClientSecret)
	}
	if config.RefreshToken == "" {
		config.RefreshToken = os.Getenv(sheets.EnvRefreshToken)
	}
	if config.SpreadsheetID == "" {
		config.SpreadsheetID = os.Getenv(sheets.EnvSpreadsheetID)
	}
	if config.SpreadsheetName == "" {
		if v := os.Getenv(sheets.EnvSpreadsheetName); v != "" {
			config.SpreadsheetName = v
		} else {
			config.SpreadsheetName = "Claims Report"
		}
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}
