// Package inventory assembles typed Chassis and ComputerSystem collections
// from a Redfish server by fanning fetches out over a bounded worker pool.
package inventory

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/device-management-toolkit/redfish-inventory/internal/entity"
	"github.com/device-management-toolkit/redfish-inventory/internal/entity/document"
	redfishv1 "github.com/device-management-toolkit/redfish-inventory/internal/entity/redfish/v1"
	"github.com/device-management-toolkit/redfish-inventory/internal/usecase/redfish"
	"github.com/device-management-toolkit/redfish-inventory/pkg/logger"
)

const (
	_defaultConcurrency  = 8
	_defaultFetchTimeout = 30 * time.Second
)

// Assembler drives one Redfish server from its service root to assembled
// collections.
type Assembler struct {
	fetcher      redfish.Fetcher
	locator      *redfish.ServiceRootLocator
	reader       *redfish.EntityReader
	log          logger.Interface
	concurrency  int
	fetchTimeout time.Duration
	now          func() time.Time
}

// New -.
func New(f redfish.Fetcher, locator *redfish.ServiceRootLocator, reader *redfish.EntityReader, log logger.Interface, opts ...Option) *Assembler {
	a := &Assembler{
		fetcher:      f,
		locator:      locator,
		reader:       reader,
		log:          log,
		concurrency:  _defaultConcurrency,
		fetchTimeout: _defaultFetchTimeout,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// EnumerateCollection fetches the collection at path and returns its member
// paths. A malformed collection is fatal.
func (a *Assembler) EnumerateCollection(ctx context.Context, service redfishv1.ServiceName, path redfishv1.ResourcePath) ([]redfishv1.ResourcePath, error) {
	doc, err := a.fetch(ctx, service, path)
	if err != nil {
		return nil, err
	}

	return redfish.EnumerateMembers(doc, service)
}

// AssembleChassis reads every path into a Chassis. Members that fail are
// reported in a *PartialError returned alongside the chassis that were read.
func (a *Assembler) AssembleChassis(ctx context.Context, paths []redfishv1.ResourcePath) (redfishv1.ChassisCollection, error) {
	items, failures := fanOut(ctx, a, redfishv1.ServiceChassis, redfishv1.SortedUnique(paths),
		func(doc *document.Document, _ redfishv1.ResourcePath) (redfishv1.Chassis, error) {
			return a.reader.ReadChassis(doc)
		})

	return redfishv1.NewChassisCollection(items), a.partial(redfishv1.ServiceChassis, failures)
}

// AssembleComputerSystems reads every system linked from chassis, once per
// distinct path.
func (a *Assembler) AssembleComputerSystems(ctx context.Context, chassis redfishv1.ChassisCollection) (redfishv1.ComputerSystemCollection, error) {
	items, failures := fanOut(ctx, a, redfishv1.ServiceComputerSystems, chassis.ComputerSystemPaths(), a.reader.ReadComputerSystem)

	return redfishv1.NewComputerSystemCollection(items), a.partial(redfishv1.ServiceComputerSystems, failures)
}

// Discover runs the whole pipeline against one server. Member failures are
// returned as *PartialError values joined together, next to a usable
// snapshot; any other error leaves the snapshot empty.
func (a *Assembler) Discover(ctx context.Context, params redfish.ConnectionParams) (entity.Snapshot, error) {
	start := a.now()

	snap, err := a.discover(ctx, params)

	observeDiscovery(start, snap, err)

	return snap, err
}

func (a *Assembler) discover(ctx context.Context, params redfish.ConnectionParams) (entity.Snapshot, error) {
	root, err := a.locator.Locate(ctx, params)
	if err != nil {
		return entity.Snapshot{}, err
	}

	snap := entity.Snapshot{Endpoint: params.Endpoint.BaseURL()}

	chassisPath, ok := root.Path(redfishv1.ServiceChassis)
	if !ok {
		a.log.Warn("service root lists no chassis collection", "endpoint", snap.Endpoint)

		snap.CollectedAt = a.now()

		return snap, nil
	}

	members, err := a.EnumerateCollection(ctx, redfishv1.ServiceChassis, chassisPath)
	if err != nil {
		return entity.Snapshot{}, err
	}

	chassis, chassisErr := a.AssembleChassis(ctx, members)
	systems, systemsErr := a.AssembleComputerSystems(ctx, chassis)

	snap.Chassis = chassis
	snap.Systems = systems
	snap.CollectedAt = a.now()

	err = errors.Join(chassisErr, systemsErr)
	snap.Failures = failureMessages(chassisErr, systemsErr)

	a.log.Info("discovery finished",
		"endpoint", snap.Endpoint,
		"chassis", chassis.Len(),
		"systems", systems.Len(),
		"failures", len(snap.Failures))

	return snap, err
}

// Resolve returns the systems c links to that are present in systems, and
// the linked paths that are not.
func Resolve(c redfishv1.Chassis, systems redfishv1.ComputerSystemCollection) (found []redfishv1.ComputerSystem, dangling []redfishv1.ResourcePath) {
	return systems.Resolve(c.ComputerSystems)
}

func (a *Assembler) fetch(ctx context.Context, service redfishv1.ServiceName, path redfishv1.ResourcePath) (*document.Document, error) {
	if a.fetchTimeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, a.fetchTimeout)
		defer cancel()
	}

	return a.fetcher.Fetch(ctx, service, path)
}

func (a *Assembler) partial(service redfishv1.ServiceName, failures []redfishv1.MemberError) error {
	if len(failures) == 0 {
		return nil
	}

	memberFailures.WithLabelValues(string(service)).Add(float64(len(failures)))

	for _, f := range failures {
		a.log.Warn("member read failed", "service", string(service), "path", f.Path.String(), "error", f.Err)
	}

	return &redfishv1.PartialError{Service: service, Failures: failures}
}

// fanOut reads each path on the worker pool. Results keep the order of
// paths; a failure never cancels its siblings.
func fanOut[T any](
	ctx context.Context,
	a *Assembler,
	service redfishv1.ServiceName,
	paths []redfishv1.ResourcePath,
	read func(*document.Document, redfishv1.ResourcePath) (T, error),
) ([]T, []redfishv1.MemberError) {
	results := make([]T, len(paths))
	errs := make([]error, len(paths))

	var g errgroup.Group

	g.SetLimit(max(a.concurrency, 1))

	for i, p := range paths {
		g.Go(func() error {
			doc, err := a.fetch(ctx, service, p)
			if err != nil {
				errs[i] = err

				return nil
			}

			results[i], errs[i] = read(doc, p)

			return nil
		})
	}

	_ = g.Wait()

	var (
		items    = make([]T, 0, len(paths))
		failures []redfishv1.MemberError
	)

	for i, p := range paths {
		if errs[i] != nil {
			failures = append(failures, redfishv1.MemberError{Path: p, Err: errs[i]})

			continue
		}

		items = append(items, results[i])
	}

	return items, failures
}

func failureMessages(errs ...error) []string {
	var out []string

	for _, err := range errs {
		var partial *redfishv1.PartialError
		if !errors.As(err, &partial) {
			continue
		}

		for _, f := range partial.Failures {
			out = append(out, f.Error())
		}
	}

	return out
}
