package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/device-management-toolkit/redfish-inventory/config"
	"github.com/device-management-toolkit/redfish-inventory/internal/cache"
	httpapi "github.com/device-management-toolkit/redfish-inventory/internal/controller/http"
	"github.com/device-management-toolkit/redfish-inventory/internal/usecase/inventory"
	"github.com/device-management-toolkit/redfish-inventory/pkg/httpserver"
	"github.com/device-management-toolkit/redfish-inventory/pkg/logger"
)

const defaultInterval = 5 * time.Minute

// Watch rediscovers the target every cfg.Discovery.Interval and serves the
// latest snapshot over HTTP until ctx is done or the server fails. A failed
// cycle is logged and the previous snapshot stays current.
func Watch(ctx context.Context, cfg *config.Config, log logger.Interface, opts ...httpserver.Option) error {
	p, err := newPipeline(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("app - Watch - newPipeline: %w", err)
	}

	store, err := maybeOpenStore(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("app - Watch - openStore: %w", err)
	}

	if store != nil {
		defer store.Close()
	}

	latest := &inventory.Latest{}

	if err := registerCollector(latest); err != nil {
		return fmt.Errorf("app - Watch - registerCollector: %w", err)
	}

	var api inventory.Store
	if store != nil {
		api = store
	}

	handler := gin.New()
	httpapi.NewRouter(handler, log, cfg, latest, api)

	serverOpts := append([]httpserver.Option{
		httpserver.Addr(cfg.HTTP.Host, cfg.HTTP.Port),
		httpserver.Logger(log),
	}, opts...)

	httpServer := httpserver.New(handler, serverOpts...)

	log.Info("app - Watch - version: "+Version, "endpoint", p.params.Endpoint.BaseURL())

	interval := cfg.Discovery.Interval
	if interval <= 0 {
		interval = defaultInterval
	}

	runCycle(ctx, p, latest, api, log)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("app - Watch - stopping", "reason", context.Cause(ctx).Error())

			return shutdown(log, httpServer)
		case err := <-httpServer.Notify():
			return fmt.Errorf("app - Watch - httpServer.Notify: %w", err)
		case <-ticker.C:
			runCycle(ctx, p, latest, api, log)
		}
	}
}

// runCycle runs one discovery and publishes its snapshot. Member documents
// cached by the previous cycle are dropped first; service roots are kept.
func runCycle(ctx context.Context, p *pipeline, latest *inventory.Latest, store inventory.Store, log logger.Interface) {
	p.cache.DeletePattern(cache.PrefixDocument)

	snap, err := runOnce(ctx, p, log)
	if err != nil {
		log.Error(err)

		return
	}

	if store != nil {
		runID, err := store.SaveSnapshot(ctx, snap)
		if err != nil {
			log.Error(fmt.Errorf("app - Watch - SaveSnapshot: %w", err))
		} else {
			snap.RunID = runID
		}
	}

	latest.Store(snap)

	log.Debug("snapshot published", "runId", snap.RunID, "cachedDocuments", p.cache.ItemCount())
}

// registerCollector exposes the snapshot gauges. A collector left from an
// earlier run in the same process is kept.
func registerCollector(src inventory.SnapshotSource) error {
	err := prometheus.Register(inventory.NewSnapshotCollector(src))

	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		return nil
	}

	return err
}

func shutdown(log logger.Interface, httpServer *httpserver.Server) error {
	if err := httpServer.Shutdown(); err != nil {
		log.Error(fmt.Errorf("app - Watch - httpServer.Shutdown: %w", err))

		return err
	}

	return nil
}
