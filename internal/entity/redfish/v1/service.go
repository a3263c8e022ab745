package redfish

import (
	"fmt"
	"maps"
	"net"
	"slices"
	"strconv"
)

// ServiceName is one of the closed set of services a service root can expose.
type ServiceName string

const (
	ServiceChassis         ServiceName = "Chassis"
	ServiceComputerSystems ServiceName = "ComputerSystems"
	ServiceManagers        ServiceName = "Managers"
	ServiceAccountService  ServiceName = "AccountService"
	ServiceEventService    ServiceName = "EventService"
	ServiceSessionService  ServiceName = "SessionService"
	ServiceRegistries      ServiceName = "Registries"
	ServiceJSONSchemas     ServiceName = "JsonSchemas"
	ServiceTasks           ServiceName = "Tasks"
	ServiceOem             ServiceName = "Oem"
	ServiceRedfishService  ServiceName = "RedfishService"
	ServiceActiveSessions  ServiceName = "ActiveSessions"
)

// ProtocolVersionV1 is the only Redfish protocol major version understood.
const ProtocolVersionV1 = "1"

// Endpoint is the transport scheme, host, and TCP port of one Redfish server.
type Endpoint struct {
	Scheme string
	Host   string
	Port   int
}

// BaseURL returns scheme://host:port.
func (e Endpoint) BaseURL() string {
	return fmt.Sprintf("%s://%s", e.Scheme, net.JoinHostPort(e.Host, strconv.Itoa(e.Port)))
}

// ServiceRootMap resolves service names to absolute paths for one endpoint
// and protocol version. It is read-only once built.
type ServiceRootMap struct {
	endpoint Endpoint
	version  string
	paths    map[ServiceName]ResourcePath
}

// NewServiceRootMap copies paths into a new map.
func NewServiceRootMap(endpoint Endpoint, version string, paths map[ServiceName]ResourcePath) ServiceRootMap {
	return ServiceRootMap{
		endpoint: endpoint,
		version:  version,
		paths:    maps.Clone(paths),
	}
}

// Path returns the absolute path of service, if the root listed it.
func (m ServiceRootMap) Path(service ServiceName) (ResourcePath, bool) {
	p, ok := m.paths[service]

	return p, ok
}

// Services returns the listed services in name order.
func (m ServiceRootMap) Services() []ServiceName {
	return slices.Sorted(maps.Keys(m.paths))
}

// Len -.
func (m ServiceRootMap) Len() int {
	return len(m.paths)
}

// Endpoint -.
func (m ServiceRootMap) Endpoint() Endpoint {
	return m.endpoint
}

// ProtocolVersion -.
func (m ServiceRootMap) ProtocolVersion() string {
	return m.version
}
