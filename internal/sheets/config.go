// Package sheets provides Google Sheets API integration for report publishing.
package sheets

import (
	"fmt"
	"os"
	"time"
)

// Config holds the configuration for the Google Sheets writer.
type Config struct {
	ClientID           string
	ClientSecret       string
	RefreshToken       string
	ServiceAccountPath string
	SpreadsheetID      string
	SpreadsheetName    string
	TimeZone           string
	BatchSize          int
	RetryAttempts      int
	RetryDelay         time.Duration
	EnableFormatting   bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnableFormatting: true,
		TimeZone:         "America/New_York",
		BatchSize:        1000,
		RetryAttempts:    3,
		RetryDelay:       time.Second,
	}
}

// Environment variable names for the sheets credentials, following the
// CLAIMLENS_ prefix the rest of the configuration uses.
const (
	EnvClientID           = "CLAIMLENS_SHEETS_CLIENT_ID"
	EnvClientSecret       = "CLAIMLENS_SHEETS_CLIENT_SECRET"
	EnvRefreshToken       = "CLAIMLENS_SHEETS_REFRESH_TOKEN"
	EnvServiceAccountPath = "CLAIMLENS_SHEETS_SERVICE_ACCOUNT_PATH"
	EnvSpreadsheetID      = "CLAIMLENS_SHEETS_SPREADSHEET_ID"
	EnvSpreadsheetName    = "CLAIMLENS_SHEETS_SPREADSHEET_NAME"
)

// LoadFromEnv loads the configuration from environment variables.
func (c *Config) LoadFromEnv() error {
	// OAuth2 credentials
	c.ClientID = os.Getenv(EnvClientID)
	c.ClientSecret = os.Getenv(EnvClientSecret)
	c.RefreshToken = os.Getenv(EnvRefreshToken)

	// Service account path (alternative to OAuth2)
	c.ServiceAccountPath = os.Getenv(EnvServiceAccountPath)

	// Spreadsheet settings
	c.SpreadsheetID = os.Getenv(EnvSpreadsheetID)
	c.SpreadsheetName = os.Getenv(EnvSpreadsheetName)

	// Validate that we have at least one auth method
	if c.ServiceAccountPath == "" && (c.ClientID == "" || c.ClientSecret == "" || c.RefreshToken == "") {
		return fmt.Errorf("missing Google Sheets authentication: provide either service account path or OAuth2 credentials")
	}

	// Use default name if not provided
	if c.SpreadsheetName == "" {
		c.SpreadsheetName = "Claims Report"
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	// Check authentication
	hasOAuth := c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
	hasServiceAccount := c.ServiceAccountPath != ""

	if !hasOAuth && !hasServiceAccount {
		return fmt.Errorf("no authentication method configured")
	}

	if hasOAuth && hasServiceAccount {
		return fmt.Errorf("multiple authentication methods configured; use either OAuth2 or service account")
	}

	// Validate batch size
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive")
	}

	// Validate retry settings
	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry attempts cannot be negative")
	}

	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay cannot be negative")
	}

	return nil
}
