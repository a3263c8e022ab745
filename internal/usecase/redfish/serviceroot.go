package redfish

import (
	"context"
	"fmt"
	"strings"

	"github.com/device-management-toolkit/redfish-inventory/internal/entity/document"
	redfishv1 "github.com/device-management-toolkit/redfish-inventory/internal/entity/redfish/v1"
	"github.com/device-management-toolkit/redfish-inventory/pkg/logger"
)

const serviceRootPath = "/redfish/v1/"

// rootMembers maps service root property names to service names.
var rootMembers = map[string]redfishv1.ServiceName{
	"Chassis":        redfishv1.ServiceChassis,
	"Systems":        redfishv1.ServiceComputerSystems,
	"Managers":       redfishv1.ServiceManagers,
	"AccountService": redfishv1.ServiceAccountService,
	"EventService":   redfishv1.ServiceEventService,
	"SessionService": redfishv1.ServiceSessionService,
	"Registries":     redfishv1.ServiceRegistries,
	"JsonSchemas":    redfishv1.ServiceJSONSchemas,
	"Tasks":          redfishv1.ServiceTasks,
	"Oem":            redfishv1.ServiceOem,
}

// rootLinks maps members of the root's Links object.
var rootLinks = map[string]redfishv1.ServiceName{
	"Sessions": redfishv1.ServiceActiveSessions,
}

// ConnectionParams identifies one Redfish server.
type ConnectionParams struct {
	Endpoint        redfishv1.Endpoint
	PathPrefix      string
	Username        string
	Password        string
	ProtocolVersion string
}

// Validate returns a *ConfigError for unusable parameters.
func (p ConnectionParams) Validate() error {
	switch {
	case p.ProtocolVersion != redfishv1.ProtocolVersionV1:
		return &redfishv1.ConfigError{Field: "protocol version", Reason: fmt.Sprintf("%q is not supported", p.ProtocolVersion)}
	case p.Endpoint.Scheme != "http" && p.Endpoint.Scheme != "https":
		return &redfishv1.ConfigError{Field: "scheme", Reason: fmt.Sprintf("%q is not http or https", p.Endpoint.Scheme)}
	case p.Endpoint.Host == "":
		return &redfishv1.ConfigError{Field: "host", Reason: "empty"}
	case p.Endpoint.Port < 1 || p.Endpoint.Port > 65535:
		return &redfishv1.ConfigError{Field: "port", Reason: fmt.Sprintf("%d out of range", p.Endpoint.Port)}
	}

	return nil
}

// RootPath returns the server-relative service root path.
func (p ConnectionParams) RootPath() string {
	prefix := strings.TrimRight(p.PathPrefix, "/")
	if prefix != "" && !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}

	return prefix + serviceRootPath
}

// ServiceRootLocator reads a server's service root into a ServiceRootMap.
type ServiceRootLocator struct {
	fetcher Fetcher
	log     logger.Interface
	strict  bool
}

// LocatorOption configures a ServiceRootLocator.
type LocatorOption func(*ServiceRootLocator)

// WithStrictRoot controls whether an unrecognized root member is fatal.
// When false such members are logged and skipped.
func WithStrictRoot(strict bool) LocatorOption {
	return func(l *ServiceRootLocator) {
		l.strict = strict
	}
}

// NewServiceRootLocator -.
func NewServiceRootLocator(f Fetcher, log logger.Interface, opts ...LocatorOption) *ServiceRootLocator {
	l := &ServiceRootLocator{
		fetcher: f,
		log:     log,
		strict:  true,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Locate performs one GET of the service root and maps every navigation
// member to an absolute path.
func (l *ServiceRootLocator) Locate(ctx context.Context, params ConnectionParams) (redfishv1.ServiceRootMap, error) {
	if err := params.Validate(); err != nil {
		return redfishv1.ServiceRootMap{}, err
	}

	base := params.Endpoint.BaseURL()

	rootPath, err := redfishv1.NewResourcePath(params.RootPath())
	if err != nil {
		return redfishv1.ServiceRootMap{}, &redfishv1.ConfigError{Field: "path prefix", Reason: err.Error()}
	}

	doc, err := l.fetcher.Fetch(ctx, redfishv1.ServiceRedfishService, rootPath)
	if err != nil {
		return redfishv1.ServiceRootMap{}, err
	}

	if !doc.OK() {
		return redfishv1.ServiceRootMap{}, &redfishv1.HTTPResponseError{
			Service:    redfishv1.ServiceRedfishService,
			Path:       doc.Path,
			StatusCode: doc.StatusCode,
		}
	}

	if doc.Root == nil {
		return redfishv1.ServiceRootMap{}, &redfishv1.ParseError{Path: doc.Path, Element: "resource body"}
	}

	paths := make(map[redfishv1.ServiceName]redfishv1.ResourcePath)

	self, err := absolutePath(base, rootPath.String())
	if err != nil {
		return redfishv1.ServiceRootMap{}, &redfishv1.ParseError{Path: doc.Path, Element: "service root", Err: err}
	}

	paths[redfishv1.ServiceRedfishService] = self

	for _, p := range doc.Root.Properties {
		if p.Name == keyLinks {
			if err := l.mapMembers(doc.Path, base, keyLinks+".", p, rootLinks, paths); err != nil {
				return redfishv1.ServiceRootMap{}, err
			}

			continue
		}

		if err := l.mapMember(doc.Path, base, "", p, rootMembers, paths); err != nil {
			return redfishv1.ServiceRootMap{}, err
		}
	}

	l.log.Debug("service root located", "root", self.String(), "services", len(paths))

	return redfishv1.NewServiceRootMap(params.Endpoint, params.ProtocolVersion, paths), nil
}

func (l *ServiceRootLocator) mapMembers(docPath, base, prefix string, links *document.Property, names map[string]redfishv1.ServiceName, paths map[redfishv1.ServiceName]redfishv1.ResourcePath) error {
	if links.Kind != document.KindComplex {
		return nil
	}

	for _, p := range links.Complex.Properties {
		if err := l.mapMember(docPath, base, prefix, p, names, paths); err != nil {
			return err
		}
	}

	return nil
}

// mapMember records p when it is a navigation member, that is an object
// carrying an odata.id. Other properties are root metadata and are ignored.
func (l *ServiceRootLocator) mapMember(docPath, base, prefix string, p *document.Property, names map[string]redfishv1.ServiceName, paths map[redfishv1.ServiceName]redfishv1.ResourcePath) error {
	if p.Kind != document.KindComplex || p.Complex.CountAnnotations(document.TermODataID) == 0 {
		return nil
	}

	element := prefix + p.Name

	service, known := names[p.Name]
	if !known {
		if l.strict {
			return &redfishv1.ParseError{Path: docPath, Element: element, Err: fmt.Errorf("unrecognized service %q", p.Name)}
		}

		l.log.Warn("skipping unrecognized service root member", "member", element)

		return nil
	}

	id, ok := singleIdentity(p.Complex)
	if !ok {
		return &redfishv1.ParseError{Path: docPath, Element: element, Err: fmt.Errorf("ambiguous @%s", document.TermODataID)}
	}

	abs, err := absolutePath(base, id)
	if err != nil {
		return &redfishv1.ParseError{Path: docPath, Element: element, Err: err}
	}

	paths[service] = abs

	return nil
}

func absolutePath(base, member string) (redfishv1.ResourcePath, error) {
	if member == "" {
		return redfishv1.ResourcePath{}, fmt.Errorf("empty @%s", document.TermODataID)
	}

	if strings.HasPrefix(member, "http://") || strings.HasPrefix(member, "https://") {
		return redfishv1.NewResourcePath(member)
	}

	if !strings.HasPrefix(member, "/") {
		member = "/" + member
	}

	return redfishv1.NewResourcePath(base + member)
}
