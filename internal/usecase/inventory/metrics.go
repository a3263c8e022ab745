package inventory

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/device-management-toolkit/redfish-inventory/internal/entity"
	redfishv1 "github.com/device-management-toolkit/redfish-inventory/internal/entity/redfish/v1"
)

const (
	resultOK      = "ok"
	resultPartial = "partial"
	resultFailed  = "failed"
)

var (
	discoveryRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redfish_discovery_runs_total",
			Help: "Discovery runs by result (ok, partial, failed)",
		},
		[]string{"result"},
	)

	discoveryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "redfish_discovery_duration_seconds",
			Help:    "Wall time of one discovery run",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		},
	)

	memberFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redfish_member_failures_total",
			Help: "Collection members that could not be read (per service)",
		},
		[]string{"service"},
	)
)

func observeDiscovery(start time.Time, _ entity.Snapshot, err error) {
	discoveryDuration.Observe(time.Since(start).Seconds())

	var partial *redfishv1.PartialError

	switch {
	case err == nil:
		discoveryRuns.WithLabelValues(resultOK).Inc()
	case errors.As(err, &partial):
		discoveryRuns.WithLabelValues(resultPartial).Inc()
	default:
		discoveryRuns.WithLabelValues(resultFailed).Inc()
	}
}

// SnapshotSource supplies the most recent snapshot, if any.
type SnapshotSource interface {
	Load() (entity.Snapshot, bool)
}

// snapshotCollector reports the size of the latest snapshot on each scrape.
type snapshotCollector struct {
	src          SnapshotSource
	entitiesDesc *prometheus.Desc
	failuresDesc *prometheus.Desc
	ageDesc      *prometheus.Desc
	now          func() time.Time
}

// NewSnapshotCollector returns a collector over src.
func NewSnapshotCollector(src SnapshotSource) prometheus.Collector {
	return &snapshotCollector{
		src: src,
		entitiesDesc: prometheus.NewDesc(
			"redfish_inventory_entities",
			"Entities in the latest snapshot, partitioned by kind.",
			[]string{"kind"},
			nil,
		),
		failuresDesc: prometheus.NewDesc(
			"redfish_inventory_failures",
			"Member failures recorded in the latest snapshot.",
			nil,
			nil,
		),
		ageDesc: prometheus.NewDesc(
			"redfish_inventory_age_seconds",
			"Seconds since the latest snapshot was collected.",
			nil,
			nil,
		),
		now: time.Now,
	}
}

func (c *snapshotCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entitiesDesc
	ch <- c.failuresDesc
	ch <- c.ageDesc
}

func (c *snapshotCollector) Collect(ch chan<- prometheus.Metric) {
	snap, ok := c.src.Load()
	if !ok {
		return
	}

	ch <- prometheus.MustNewConstMetric(c.entitiesDesc, prometheus.GaugeValue, float64(snap.Chassis.Len()), "chassis")
	ch <- prometheus.MustNewConstMetric(c.entitiesDesc, prometheus.GaugeValue, float64(snap.Systems.Len()), "system")
	ch <- prometheus.MustNewConstMetric(c.failuresDesc, prometheus.GaugeValue, float64(len(snap.Failures)))
	ch <- prometheus.MustNewConstMetric(c.ageDesc, prometheus.GaugeValue, c.now().Sub(snap.CollectedAt).Seconds())
}
