package entity

import (
	"time"

	redfish "github.com/device-management-toolkit/redfish-inventory/internal/entity/redfish/v1"
)

// Snapshot is the inventory assembled by one discovery run against one
// Redfish endpoint.
type Snapshot struct {
	RunID       string                           `json:"RunId,omitempty"`
	Endpoint    string                           `json:"Endpoint"`
	CollectedAt time.Time                        `json:"CollectedAt"`
	Chassis     redfish.ChassisCollection        `json:"Chassis"`
	Systems     redfish.ComputerSystemCollection `json:"Systems"`
	Failures    []string                         `json:"Failures,omitempty"`
}
