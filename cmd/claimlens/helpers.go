package main

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/spf13/viper"

	"github.com/insurai/claimlens/internal/common"
	"github.com/insurai/claimlens/internal/config"
	"github.com/insurai/claimlens/internal/enrich"
	"github.com/insurai/claimlens/internal/insurapi"
	"github.com/insurai/claimlens/internal/model"
	"github.com/insurai/claimlens/internal/normalize"
)

const datasetFile = "dataset.json"

// datasetPath resolves the snapshot file location from config.
func datasetPath() string {
	dir := config.SnapshotDir(viper.GetString("data.dir"))
	return filepath.Join(dir, datasetFile)
}

// saveDataset persists a fetched dataset for the reporting commands.
func saveDataset(ds *insurapi.Dataset) error {
	path := datasetPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	return nil
}

// loadDataset reads the last fetched dataset.
func loadDataset() (*insurapi.Dataset, error) {
	path := datasetPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.NewUserError("run 'claimlens fetch' first", common.ErrSnapshotMissing)
		}
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	var ds insurapi.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrSnapshotCorrupted, err)
	}
	return &ds, nil
}

// loadEnrichedClaims runs the stored dataset through normalization and
// reference enrichment.
func loadEnrichedClaims() ([]model.EnrichedClaim, *insurapi.Dataset, error) {
	ds, err := loadDataset()
	if err != nil {
		return nil, nil, err
	}

	refs := enrich.NewReferenceSet(ds.Employees, ds.HR, ds.Agents, ds.Policies)
	claims, err := enrich.Enrich(normalize.Claims(ds.Claims), refs)
	if err != nil {
		return nil, nil, err
	}
	return claims, ds, nil
}

// newPortalClient builds a client from config. The base URL comes from
// portal.url, the token from portal.token or CLAIMLENS_PORTAL_TOKEN.
func newPortalClient() (*insurapi.Client, error) {
	baseURL := viper.GetString("portal.url")
	token := viper.GetString("portal.token")
	return insurapi.NewClient(baseURL, token)
}
