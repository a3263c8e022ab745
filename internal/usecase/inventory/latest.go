package inventory

import (
	"sync"

	"github.com/device-management-toolkit/redfish-inventory/internal/entity"
)

// Latest holds the most recent snapshot for concurrent readers.
type Latest struct {
	mu   sync.RWMutex
	snap entity.Snapshot
	ok   bool
}

// Store replaces the held snapshot.
func (l *Latest) Store(snap entity.Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.snap = snap
	l.ok = true
}

// Load returns the held snapshot and whether one was stored.
func (l *Latest) Load() (entity.Snapshot, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.snap, l.ok
}
