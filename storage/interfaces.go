package storage

import "github.com/poiesic/transparencia/core"

// SnapshotRepository persists lexical index snapshots.
type SnapshotRepository interface {
	// SaveSnapshot stores the snapshot, replacing any previous one.
	SaveSnapshot(snapshot *core.Snapshot) error

	// LoadSnapshot returns the stored snapshot, or (nil, nil) when none
	// has been saved yet.
	LoadSnapshot() (*core.Snapshot, error)

	// Close releases underlying resources.
	Close() error
}
