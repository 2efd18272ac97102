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


// Seeder loads the federal transparency portal CSV export of parliamentary
// amendments into the SQLite database the service reads from. The export
// is Latin-1 encoded, semicolon separated, with comma decimal marks.
package main

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	_ "modernc.org/sqlite"

	"github.com/poiesic/transparencia/sqlstore"
)

const columnCount = 28

// insertStatement lists columns in CSV export order.
const insertStatement = `INSERT INTO emendas_parlamentares (
	codigo_emenda, ano_emenda, tipo_emenda, codigo_autor,
	nome_autor, numero_emenda, localidade_gasto, codigo_municipio_ibge,
	municipio, codigo_uf_ibge, uf, regiao, codigo_funcao,
	nome_funcao, codigo_subfuncao, nome_subfuncao, codigo_programa,
	nome_programa, codigo_acao, nome_acao, codigo_plano_orcamentario,
	nome_plano_orcamentario, valor_empenhado, valor_liquidado,
	valor_pago, valor_restos_pagar_inscritos, valor_restos_pagar_cancelados,
	valor_restos_pagar_pagos
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// integerColumns and realColumns are CSV column positions that need
// numeric conversion; everything else is stored as text.
var integerColumns = map[int]bool{1: true, 3: true, 5: true, 7: true, 9: true, 12: true, 14: true}

var realColumns = map[int]bool{22: true, 23: true, 24: true, 25: true, 26: true, 27: true}

func main() {
	csvPath := flag.String("csv", "data/EmendasParlamentares.csv", "path to the amendments CSV export")
	dbPath := flag.String("db", "data/db_transparencia.db", "path to the SQLite database to create")
	batchSize := flag.Int("batch-size", 1000, "rows per insert transaction")
	flag.Parse()

	logger := slog.Default()

	count, err := seed(*csvPath, *dbPath, *batchSize, logger)
	if err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	logger.Info("seeding complete", "rows", count, "database", *dbPath)
}

func seed(csvPath, dbPath string, batchSize int, logger *slog.Logger) (int, error) {
	if batchSize <= 0 {
		return 0, fmt.Errorf("batch-size must be greater than 0")
	}

	file, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open csv: %w", err)
	}
	defer file.Close()

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(sqlstore.CreateTableDDL); err != nil {
		return 0, fmt.Errorf("failed to create table: %w", err)
	}
	if _, err := db.Exec("DELETE FROM " + sqlstore.TableName); err != nil {
		return 0, fmt.Errorf("failed to clear table: %w", err)
	}

	reader := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(file))
	reader.Comma = ';'
	reader.FieldsPerRecord = columnCount

	// Header row carries the portal's original column names; discard it.
	if _, err := reader.Read(); err != nil {
		return 0, fmt.Errorf("failed to read header: %w", err)
	}

	total := 0
	for {
		tx, err := db.Begin()
		if err != nil {
			return total, fmt.Errorf("failed to begin transaction: %w", err)
		}
		stmt, err := tx.Prepare(insertStatement)
		if err != nil {
			tx.Rollback()
			return total, fmt.Errorf("failed to prepare insert: %w", err)
		}

		inserted, readErr := insertBatch(reader, stmt, batchSize)
		stmt.Close()
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			tx.Rollback()
			return total, readErr
		}
		if err := tx.Commit(); err != nil {
			return total, fmt.Errorf("failed to commit batch: %w", err)
		}
		total += inserted

		if errors.Is(readErr, io.EOF) {
			return total, nil
		}
		logger.Debug("batch committed", "rows", total)
	}
}

// insertBatch reads up to batchSize records and executes the prepared
// insert for each. Returns io.EOF through err when the input ends.
func insertBatch(reader *csv.Reader, stmt *sql.Stmt, batchSize int) (int, error) {
	inserted := 0
	for inserted < batchSize {
		record, err := reader.Read()
		if err != nil {
			return inserted, err
		}

		values, err := convertRecord(record)
		if err != nil {
			return inserted, err
		}
		if _, err := stmt.Exec(values...); err != nil {
			return inserted, fmt.Errorf("failed to insert row: %w", err)
		}
		inserted++
	}
	return inserted, nil
}

// convertRecord turns CSV fields into typed values. Empty numeric fields
// become NULL; monetary fields use the Brazilian comma decimal mark.
func convertRecord(record []string) ([]any, error) {
	values := make([]any, len(record))
	for i, field := range record {
		field = strings.TrimSpace(field)
		switch {
		case integerColumns[i]:
			if field == "" {
				values[i] = nil
				continue
			}
			n, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("column %d: invalid integer %q: %w", i, field, err)
			}
			values[i] = n
		case realColumns[i]:
			if field == "" {
				values[i] = nil
				continue
			}
			normalized := strings.ReplaceAll(strings.ReplaceAll(field, ".", ""), ",", ".")
			f, err := strconv.ParseFloat(normalized, 64)
			if err != nil {
				return nil, fmt.Errorf("column %d: invalid value %q: %w", i, field, err)
			}
			values[i] = f
		default:
			values[i] = field
		}
	}
	return values, nil
}
