package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		errMsg  string
		config  Config
		wantErr bool
	}{
		{
			name: "service account only",
			config: Config{
				ServiceAccountPath: "/path/to/key.json",
				BatchSize:          100,
				RetryAttempts:      3,
				RetryDelay:         time.Second,
			},
			wantErr: false,
		},
		{
			name: "full oauth credentials",
			config: Config{
				ClientID:      "test-client",
				ClientSecret:  "test-secret",
				RefreshToken:  "test-token",
				BatchSize:     100,
				RetryAttempts: 3,
				RetryDelay:    time.Second,
			},
			wantErr: false,
		},
		{
			name: "partial oauth credentials",
			config: Config{
				ClientID:      "test-client",
				ClientSecret:  "", // Missing secret
				RefreshToken:  "test-token",
				BatchSize:     100,
				RetryAttempts: 3,
				RetryDelay:    time.Second,
			},
			wantErr: true,
			errMsg:  "no authentication method configured",
		},
		{
			name: "both auth methods",
			config: Config{
				ClientID:           "test-client",
				ClientSecret:       "test-secret",
				RefreshToken:       "test-token",
				ServiceAccountPath: "/path/to/key.json",
				BatchSize:          100,
			},
			wantErr: true,
			errMsg:  "multiple authentication methods configured",
		},
		{
			name: "zero batch size",
			config: Config{
				ServiceAccountPath: "/path/to/key.json",
				BatchSize:          0,
			},
			wantErr: true,
			errMsg:  "batch size must be positive",
		},
		{
			name: "zero retry delay is valid",
			config: Config{
				ServiceAccountPath: "/path/to/key.json",
				BatchSize:          100,
				RetryAttempts:      0, // No retries
				RetryDelay:         0, // No delay
			},
			wantErr: false,
		},
		{
			name: "negative retry delay",
			config: Config{
				ServiceAccountPath: "/path/to/key.json",
				BatchSize:          100,
				RetryAttempts:      3,
				RetryDelay:         -1 * time.Second,
			},
			wantErr: true,
			errMsg:  "retry delay cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("reads prefixed variables", func(t *testing.T) {
		t.Setenv(EnvServiceAccountPath, "/path/to/key.json")
		t.Setenv(EnvSpreadsheetID, "sheet-123")
		t.Setenv(EnvSpreadsheetName, "Q1 Claims")

		config := DefaultConfig()
		require.NoError(t, config.LoadFromEnv())

		assert.Equal(t, "/path/to/key.json", config.ServiceAccountPath)
		assert.Equal(t, "sheet-123", config.SpreadsheetID)
		assert.Equal(t, "Q1 Claims", config.SpreadsheetName)
	})

	t.Run("defaults the spreadsheet name", func(t *testing.T) {
		t.Setenv(EnvServiceAccountPath, "/path/to/key.json")
		t.Setenv(EnvSpreadsheetName, "")

		config := DefaultConfig()
		require.NoError(t, config.LoadFromEnv())

		assert.Equal(t, "Claims Report", config.SpreadsheetName)
	})

	t.Run("errors without any auth method", func(t *testing.T) {
		t.Setenv(EnvServiceAccountPath, "")
		t.Setenv(EnvClientID, "")
		t.Setenv(EnvClientSecret, "")
		t.Setenv(EnvRefreshToken, "")

		config := DefaultConfig()
		err := config.LoadFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing Google Sheets authentication")
	})
}
