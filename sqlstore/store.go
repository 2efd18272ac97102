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


package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"
)

// Store executes validated SQL against the amendments database and renders
// results as text.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens the SQLite database at path in read-only mode.
func Open(path string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}
	return NewStore(db, logger)
}

// NewStore wraps an existing database handle. The caller keeps ownership
// decisions simple: Close always closes the handle.
func NewStore(db *sql.DB, logger *slog.Logger) (*Store, error) {
	if db == nil {
		return nil, ErrDatabaseRequired
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		db:     db,
		logger: logger.With("component", "sqlstore"),
	}, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Execute runs a statement and always returns a text payload. Non-SELECT
// statements get the fixed refusal message without touching the database.
// Backend faults become diagnostic text, never an error or a panic.
func (s *Store) Execute(ctx context.Context, query string) string {
	if !IsSelect(query) {
		s.logger.Warn("refused non-select statement")
		return RefusalMessage
	}

	return s.query(ctx, query)
}

// readResultSet drains rows into memory. The full set is read so the
// truncation notice can state the true total.
func readResultSet(rows *sql.Rows) (*resultTable, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	table := &resultTable{columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		table.rows = append(table.rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return table, nil
}
