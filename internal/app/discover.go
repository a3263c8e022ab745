package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/device-management-toolkit/redfish-inventory/config"
	"github.com/device-management-toolkit/redfish-inventory/internal/entity"
	redfishv1 "github.com/device-management-toolkit/redfish-inventory/internal/entity/redfish/v1"
	"github.com/device-management-toolkit/redfish-inventory/pkg/logger"
)

// Discover runs one discovery, writes the snapshot to out as indented JSON
// and saves it when a store is configured. Member failures are reported in
// the snapshot and logged; only a failure to produce a snapshot is returned.
func Discover(ctx context.Context, cfg *config.Config, log logger.Interface, out io.Writer) error {
	p, err := newPipeline(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("app - Discover - newPipeline: %w", err)
	}

	store, err := maybeOpenStore(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("app - Discover - openStore: %w", err)
	}

	if store != nil {
		defer store.Close()
	}

	snap, err := runOnce(ctx, p, log)
	if err != nil {
		return err
	}

	if store != nil {
		if snap.RunID, err = store.SaveSnapshot(ctx, snap); err != nil {
			return fmt.Errorf("app - Discover - SaveSnapshot: %w", err)
		}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return enc.Encode(snap)
}

// runOnce runs the pipeline and separates member failures from fatal ones.
func runOnce(ctx context.Context, p *pipeline, log logger.Interface) (entity.Snapshot, error) {
	snap, err := p.assembler.Discover(ctx, p.params)
	if err == nil {
		return snap, nil
	}

	if isPartial(err) {
		log.Warn("discovery completed with member failures", "failures", len(snap.Failures))

		return snap, nil
	}

	return entity.Snapshot{}, fmt.Errorf("app - Discover: %w", err)
}

// isPartial reports whether every error joined in err is a *PartialError.
func isPartial(err error) bool {
	var errs []error

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	} else {
		errs = []error{err}
	}

	for _, e := range errs {
		var partial *redfishv1.PartialError
		if !errors.As(e, &partial) {
			return false
		}
	}

	return len(errs) > 0
}
