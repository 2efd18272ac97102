// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/transparencia/core"
	"github.com/poiesic/transparencia/storage"
)

// snapshotKey stores the single lexical index snapshot. A new save
// replaces the previous value in one write.
const snapshotKey = "snapshot/lexical"

// SnapshotRepository persists lexical index snapshots in BadgerDB.
type SnapshotRepository struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.SnapshotRepository = (*SnapshotRepository)(nil)

// NewSnapshotRepository opens a snapshot repository at the given path.
func NewSnapshotRepository(filePath string, logger *slog.Logger) (*SnapshotRepository, error) {
	backend, err := OpenBackend(filePath, false)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot store: %w", err)
	}
	return newRepository(backend, logger), nil
}

func newRepository(backend *Backend, logger *slog.Logger) *SnapshotRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &SnapshotRepository{
		backend: backend,
		logger:  logger.With("component", "snapshot-repository"),
	}
}

// SaveSnapshot stores the snapshot, replacing any previous one.
func (r *SnapshotRepository) SaveSnapshot(snapshot *core.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}
	data := storage.MarshalSnapshot(snapshot)

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set([]byte(snapshotKey), data); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	r.logger.Debug("snapshot saved",
		"documents", len(snapshot.Documents),
		"bytes", len(data))
	return nil
}

// LoadSnapshot returns the stored snapshot, or (nil, nil) when none has
// been saved yet.
func (r *SnapshotRepository) LoadSnapshot() (*core.Snapshot, error) {
	var snapshot *core.Snapshot

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(snapshotKey))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			snapshot, err = storage.UnmarshalSnapshot(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return snapshot, nil
}

// Close closes the underlying database.
func (r *SnapshotRepository) Close() error {
	return r.backend.Close()
}
