package sqldb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"iter"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/device-management-toolkit/redfish-inventory/internal/entity"
	redfish "github.com/device-management-toolkit/redfish-inventory/internal/entity/redfish/v1"
	"github.com/device-management-toolkit/redfish-inventory/pkg/inventoryerrors"
)

// Fixed-width so that lexical order on the column is chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

var ErrNotFound = inventoryerrors.NotFoundError{Inventory: inventoryerrors.CreateInventoryError("sqldb")}

// SaveSnapshot stores snap in one transaction and returns its run id. A new
// id is generated when snap has none.
func (s *Store) SaveSnapshot(ctx context.Context, snap entity.Snapshot) (string, error) {
	runID := snap.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	failures := snap.Failures
	if failures == nil {
		failures = []string{}
	}

	encoded, err := json.Marshal(failures)
	if err != nil {
		return "", ErrDatabase.Wrap("SaveSnapshot", "json.Marshal", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", ErrDatabase.Wrap("SaveSnapshot", "db.BeginTx", err)
	}

	defer func() { _ = tx.Rollback() }()

	_, err = s.builder.Insert("snapshots").
		Columns("run_id", "endpoint", "collected_at", "failures").
		Values(runID, snap.Endpoint, snap.CollectedAt.UTC().Format(timeLayout), string(encoded)).
		RunWith(tx).
		ExecContext(ctx)
	if err != nil {
		return "", ErrDatabase.Wrap("SaveSnapshot", "insert snapshots", err)
	}

	if err := insertEntities(ctx, tx, s.builder, "chassis", runID, snap.Chassis.All(), chassisPath); err != nil {
		return "", ErrDatabase.Wrap("SaveSnapshot", "insert chassis", err)
	}

	if err := insertEntities(ctx, tx, s.builder, "computer_systems", runID, snap.Systems.All(), systemPath); err != nil {
		return "", ErrDatabase.Wrap("SaveSnapshot", "insert computer_systems", err)
	}

	if err := s.insertLinks(ctx, tx, runID, snap.Chassis); err != nil {
		return "", ErrDatabase.Wrap("SaveSnapshot", "insert chassis_systems", err)
	}

	if err := tx.Commit(); err != nil {
		return "", ErrDatabase.Wrap("SaveSnapshot", "tx.Commit", err)
	}

	s.log.Debug("snapshot saved", "runId", runID, "chassis", snap.Chassis.Len(), "systems", snap.Systems.Len())

	return runID, nil
}

// LatestSnapshot returns the most recently collected snapshot.
func (s *Store) LatestSnapshot(ctx context.Context) (entity.Snapshot, error) {
	var (
		snap              entity.Snapshot
		collectedAt, fail string
	)

	err := s.builder.Select("run_id", "endpoint", "collected_at", "failures").
		From("snapshots").
		OrderBy("collected_at DESC", "run_id DESC").
		Limit(1).
		RunWith(s.db).
		QueryRowContext(ctx).
		Scan(&snap.RunID, &snap.Endpoint, &collectedAt, &fail)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Snapshot{}, ErrNotFound.Wrap("LatestSnapshot", "select snapshots", err)
	}

	if err != nil {
		return entity.Snapshot{}, ErrDatabase.Wrap("LatestSnapshot", "select snapshots", err)
	}

	if snap.CollectedAt, err = time.Parse(timeLayout, collectedAt); err != nil {
		return entity.Snapshot{}, ErrDatabase.Wrap("LatestSnapshot", "time.Parse", err)
	}

	if err := json.Unmarshal([]byte(fail), &snap.Failures); err != nil {
		return entity.Snapshot{}, ErrDatabase.Wrap("LatestSnapshot", "json.Unmarshal", err)
	}

	if len(snap.Failures) == 0 {
		snap.Failures = nil
	}

	chassis, err := selectEntities[redfish.Chassis](ctx, s.db, s.builder, "chassis", snap.RunID)
	if err != nil {
		return entity.Snapshot{}, ErrDatabase.Wrap("LatestSnapshot", "select chassis", err)
	}

	systems, err := selectEntities[redfish.ComputerSystem](ctx, s.db, s.builder, "computer_systems", snap.RunID)
	if err != nil {
		return entity.Snapshot{}, ErrDatabase.Wrap("LatestSnapshot", "select computer_systems", err)
	}

	snap.Chassis = redfish.NewChassisCollection(chassis)
	snap.Systems = redfish.NewComputerSystemCollection(systems)

	return snap, nil
}

// SystemsForChassis returns the computer systems the given chassis linked to
// in the latest snapshot, in path order.
func (s *Store) SystemsForChassis(ctx context.Context, chassis redfish.ResourcePath) ([]redfish.ResourcePath, error) {
	latest := s.builder.Select("run_id").
		From("snapshots").
		OrderBy("collected_at DESC", "run_id DESC").
		Limit(1)

	var runID string

	err := latest.RunWith(s.db).QueryRowContext(ctx).Scan(&runID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound.Wrap("SystemsForChassis", "select snapshots", err)
	}

	if err != nil {
		return nil, ErrDatabase.Wrap("SystemsForChassis", "select snapshots", err)
	}

	rows, err := s.builder.Select("system_path").
		From("chassis_systems").
		Where(sq.Eq{"run_id": runID, "chassis_path": chassis.String()}).
		OrderBy("system_path").
		RunWith(s.db).
		QueryContext(ctx)
	if err != nil {
		return nil, ErrDatabase.Wrap("SystemsForChassis", "select chassis_systems", err)
	}
	defer rows.Close()

	var paths []redfish.ResourcePath

	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, ErrDatabase.Wrap("SystemsForChassis", "rows.Scan", err)
		}

		p, err := redfish.NewResourcePath(raw)
		if err != nil {
			return nil, ErrDatabase.Wrap("SystemsForChassis", "NewResourcePath", err)
		}

		paths = append(paths, p)
	}

	if err := rows.Err(); err != nil {
		return nil, ErrDatabase.Wrap("SystemsForChassis", "rows.Err", err)
	}

	return paths, nil
}

func (s *Store) insertLinks(ctx context.Context, tx *sql.Tx, runID string, chassis redfish.ChassisCollection) error {
	q := s.builder.Insert("chassis_systems").Columns("run_id", "chassis_path", "system_path")
	n := 0

	for c := range chassis.All() {
		for _, sys := range c.ComputerSystems {
			q = q.Values(runID, c.Path.String(), sys.String())
			n++
		}
	}

	if n == 0 {
		return nil
	}

	_, err := q.RunWith(tx).ExecContext(ctx)

	return err
}

func chassisPath(c redfish.Chassis) redfish.ResourcePath       { return c.Path }
func systemPath(c redfish.ComputerSystem) redfish.ResourcePath { return c.Path }

// insertEntities writes one row per item holding its JSON encoding. Position
// keeps the collection order.
func insertEntities[T any](ctx context.Context, tx *sql.Tx, b sq.StatementBuilderType, table, runID string, items iter.Seq[T], path func(T) redfish.ResourcePath) error {
	q := b.Insert(table).Columns("run_id", "position", "path", "body")
	n := 0

	for item := range items {
		body, err := json.Marshal(item)
		if err != nil {
			return err
		}

		q = q.Values(runID, n, path(item).String(), string(body))
		n++
	}

	if n == 0 {
		return nil
	}

	_, err := q.RunWith(tx).ExecContext(ctx)

	return err
}

func selectEntities[T any](ctx context.Context, db *sql.DB, b sq.StatementBuilderType, table, runID string) ([]T, error) {
	rows, err := b.Select("body").
		From(table).
		Where(sq.Eq{"run_id": runID}).
		OrderBy("position").
		RunWith(db).
		QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T

	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}

		var item T
		if err := json.Unmarshal([]byte(body), &item); err != nil {
			return nil, err
		}

		out = append(out, item)
	}

	return out, rows.Err()
}
