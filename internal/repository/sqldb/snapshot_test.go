package sqldb_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/device-management-toolkit/redfish-inventory/internal/entity"
	redfish "github.com/device-management-toolkit/redfish-inventory/internal/entity/redfish/v1"
	"github.com/device-management-toolkit/redfish-inventory/internal/repository/sqldb"
	"github.com/device-management-toolkit/redfish-inventory/pkg/inventoryerrors"
	"github.com/device-management-toolkit/redfish-inventory/pkg/logger"
)

func newStore(t *testing.T) *sqldb.Store {
	t.Helper()

	url := "sqlite://" + filepath.Join(t.TempDir(), "inventory.db")

	s, err := sqldb.New(context.Background(), url, 2, logger.New("error"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = s.Close() })

	return s
}

func p(s string) redfish.ResourcePath {
	return redfish.MustResourcePath(s)
}

func sampleSnapshot(at time.Time) entity.Snapshot {
	chassis := []redfish.Chassis{
		{
			Path:            p("/redfish/v1/Chassis/1"),
			ID:              "1",
			Name:            "Rack Mount Chassis",
			ChassisType:     redfish.ChassisTypeRackMount,
			Status:          &redfish.OperatingStatus{Health: redfish.HealthOK, State: redfish.StateEnabled},
			ComputerSystems: []redfish.ResourcePath{p("/redfish/v1/Systems/1"), p("/redfish/v1/Systems/2")},
			Actions:         []redfish.Action{{Name: "#Chassis.Reset", Target: p("/redfish/v1/Chassis/1/Actions/Chassis.Reset")}},
		},
		{Path: p("/redfish/v1/Chassis/2"), ID: "2"},
	}

	systems := []redfish.ComputerSystem{
		{
			Path:       p("/redfish/v1/Systems/1"),
			ID:         "1",
			PowerState: redfish.PowerStateOn,
			Boot:       redfish.Boot{Source: redfish.BootSourcePxe},
			Chassis:    []redfish.ResourcePath{p("/redfish/v1/Chassis/1")},
		},
		{Path: p("/redfish/v1/Systems/2"), ID: "2"},
	}

	return entity.Snapshot{
		Endpoint:    "https://bmc.example:443",
		CollectedAt: at,
		Chassis:     redfish.NewChassisCollection(chassis),
		Systems:     redfish.NewComputerSystemCollection(systems),
		Failures:    []string{"/redfish/v1/Systems/3: connection reset"},
	}
}

func TestSaveAndLoadLatestSnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newStore(t)

	at := time.Date(2026, 3, 1, 12, 0, 0, 500, time.UTC)
	want := sampleSnapshot(at)

	runID, err := s.SaveSnapshot(ctx, want)
	require.NoError(t, err)
	assert.NotEmpty(t, runID)

	got, err := s.LatestSnapshot(ctx)
	require.NoError(t, err)

	assert.Equal(t, runID, got.RunID)
	assert.Equal(t, want.Endpoint, got.Endpoint)
	assert.True(t, at.Equal(got.CollectedAt), "collected at %s", got.CollectedAt)
	assert.Equal(t, want.Failures, got.Failures)
	assert.Equal(t, want.Chassis.Slice(), got.Chassis.Slice())
	assert.Equal(t, want.Systems.Slice(), got.Systems.Slice())

	sys, ok := got.Systems.Lookup(p("/redfish/v1/Systems/1"))
	require.True(t, ok)
	assert.Equal(t, redfish.PowerStateOn, sys.PowerState)
}

func TestLatestSnapshotPicksNewest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newStore(t)

	older := sampleSnapshot(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	older.RunID = "older"
	newer := entity.Snapshot{
		RunID:       "newer",
		Endpoint:    "https://bmc.example:443",
		CollectedAt: time.Date(2026, 3, 1, 12, 0, 0, 100_000_000, time.UTC),
	}

	_, err := s.SaveSnapshot(ctx, newer)
	require.NoError(t, err)

	runID, err := s.SaveSnapshot(ctx, older)
	require.NoError(t, err)
	assert.Equal(t, "older", runID)

	got, err := s.LatestSnapshot(ctx)
	require.NoError(t, err)

	assert.Equal(t, "newer", got.RunID)
	assert.Equal(t, 0, got.Chassis.Len())
	assert.Equal(t, 0, got.Systems.Len())
	assert.Nil(t, got.Failures)
}

func TestLatestSnapshotEmptyStore(t *testing.T) {
	t.Parallel()

	s := newStore(t)

	_, err := s.LatestSnapshot(context.Background())
	require.Error(t, err)

	var notFound inventoryerrors.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestSystemsForChassis(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newStore(t)

	_, err := s.SystemsForChassis(ctx, p("/redfish/v1/Chassis/1"))

	var notFound inventoryerrors.NotFoundError
	require.ErrorAs(t, err, &notFound)

	_, err = s.SaveSnapshot(ctx, sampleSnapshot(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	tests := []struct {
		name    string
		chassis string
		want    []redfish.ResourcePath
	}{
		{
			name:    "linked systems",
			chassis: "/redfish/v1/Chassis/1",
			want:    []redfish.ResourcePath{p("/redfish/v1/Systems/1"), p("/redfish/v1/Systems/2")},
		},
		{
			name:    "chassis without systems",
			chassis: "/redfish/v1/Chassis/2",
		},
		{
			name:    "unknown chassis",
			chassis: "/redfish/v1/Chassis/9",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.SystemsForChassis(ctx, p(tc.chassis))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewReopensExistingDatabase(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	url := filepath.Join(t.TempDir(), "inventory.db")

	s, err := sqldb.New(ctx, url, 1, logger.New("error"))
	require.NoError(t, err)

	_, err = s.SaveSnapshot(ctx, sampleSnapshot(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = sqldb.New(ctx, url, 1, logger.New("error"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = s.Close() })

	got, err := s.LatestSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Chassis.Len())
}
