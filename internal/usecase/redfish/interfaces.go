// Package redfish turns fetched Redfish documents into typed entities: it
// locates the service root, enumerates collection members, and reads Chassis
// and ComputerSystem resources through a tolerant, descriptor-driven reader.
package redfish

import (
	"context"

	"github.com/device-management-toolkit/redfish-inventory/internal/entity/document"
	redfishv1 "github.com/device-management-toolkit/redfish-inventory/internal/entity/redfish/v1"
)

// Fetcher performs one GET. A non-200 answer is returned as a document with
// that status, not as an error; errors are reserved for transport failures.
type Fetcher interface {
	Fetch(ctx context.Context, service redfishv1.ServiceName, path redfishv1.ResourcePath) (*document.Document, error)
}
