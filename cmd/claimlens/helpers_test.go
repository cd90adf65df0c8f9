package main

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurai/claimlens/internal/common"
	"github.com/insurai/claimlens/internal/insurapi"
	"github.com/insurai/claimlens/internal/model"
)

func useTempDataDir(t *testing.T) {
	t.Helper()
	viper.Set("data.dir", t.TempDir())
	t.Cleanup(func() { viper.Set("data.dir", "") })
}

func TestDatasetRoundTrip(t *testing.T) {
	useTempDataDir(t)

	ds := &insurapi.Dataset{
		Claims: []model.RawClaim{
			{"id": float64(1), "claimStatus": "PENDING", "amount": "500"},
		},
		Employees: []model.Employee{{ID: 10, Name: "John Doe", EmployeeID: "EMP-001"}},
		Policies:  []model.Policy{{ID: 30, PolicyName: "Group Health"}},
		FetchedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, saveDataset(ds))

	got, err := loadDataset()
	require.NoError(t, err)
	assert.Equal(t, ds.FetchedAt, got.FetchedAt)
	require.Len(t, got.Claims, 1)
	assert.Equal(t, "PENDING", got.Claims[0]["claimStatus"])
	require.Len(t, got.Policies, 1)
	assert.Equal(t, "Group Health", got.Policies[0].PolicyName)
}

func TestLoadDataset_Missing(t *testing.T) {
	useTempDataDir(t)

	_, err := loadDataset()
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrSnapshotMissing)
}

func TestLoadEnrichedClaims(t *testing.T) {
	useTempDataDir(t)

	ds := &insurapi.Dataset{
		Claims: []model.RawClaim{
			{"id": float64(1), "status": "approved", "amount": float64(250), "employeeId": float64(10), "policyId": float64(30)},
			{"id": float64(2), "claimStatus": "REJECTED", "employeeId": float64(99)},
		},
		Employees: []model.Employee{{ID: 10, Name: "John Doe", EmployeeID: "EMP-001"}},
		Policies:  []model.Policy{{ID: 30, PolicyName: "Group Health"}},
	}
	require.NoError(t, saveDataset(ds))

	claims, _, err := loadEnrichedClaims()
	require.NoError(t, err)
	require.Len(t, claims, 2)

	assert.Equal(t, model.StatusApproved, claims[0].Status)
	assert.Equal(t, "John Doe", claims[0].EmployeeName)
	assert.Equal(t, "Group Health", claims[0].PolicyName)

	// Unresolvable references fall back rather than dropping the claim.
	assert.Equal(t, model.StatusRejected, claims[1].Status)
	assert.Equal(t, "Unknown", claims[1].EmployeeName)
	assert.Equal(t, "N/A", claims[1].PolicyName)
}
