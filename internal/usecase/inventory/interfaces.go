package inventory

import (
	"context"

	"github.com/device-management-toolkit/redfish-inventory/internal/entity"
	redfishv1 "github.com/device-management-toolkit/redfish-inventory/internal/entity/redfish/v1"
)

// Store persists discovery snapshots.
type Store interface {
	SaveSnapshot(ctx context.Context, snap entity.Snapshot) (string, error)
	LatestSnapshot(ctx context.Context) (entity.Snapshot, error)
	SystemsForChassis(ctx context.Context, chassis redfishv1.ResourcePath) ([]redfishv1.ResourcePath, error)
}
