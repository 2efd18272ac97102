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
	"fmt"
	"strings"
)

// TableName is the single table this store serves.
const TableName = "emendas_parlamentares"

// CreateTableDDL creates the amendments table. Column names follow the
// federal transparency portal export, normalized to snake_case without
// accents.
const CreateTableDDL = `CREATE TABLE IF NOT EXISTS emendas_parlamentares (
	codigo_emenda TEXT,
	ano_emenda INTEGER,
	tipo_emenda TEXT,
	codigo_autor INTEGER,
	nome_autor TEXT,
	numero_emenda INTEGER,
	localidade_gasto TEXT,
	codigo_municipio_ibge INTEGER,
	municipio TEXT,
	codigo_uf_ibge INTEGER,
	uf TEXT,
	regiao TEXT,
	codigo_funcao INTEGER,
	nome_funcao TEXT,
	codigo_subfuncao INTEGER,
	nome_subfuncao TEXT,
	codigo_programa TEXT,
	nome_programa TEXT,
	codigo_acao TEXT,
	nome_acao TEXT,
	codigo_plano_orcamentario TEXT,
	nome_plano_orcamentario TEXT,
	valor_empenhado REAL,
	valor_liquidado REAL,
	valor_pago REAL,
	valor_restos_pagar_inscritos REAL,
	valor_restos_pagar_cancelados REAL,
	valor_restos_pagar_pagos REAL
)`

// Schema describes the amendments table column by column, reading the live
// database rather than a hardcoded copy so that the answer always matches
// whatever was actually ingested. Faults come back as diagnostic text.
func (s *Store) Schema(ctx context.Context) string {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", TableName))
	if err != nil {
		return fmt.Sprintf("Erro ao obter schema: %v", err)
	}
	defer rows.Close()

	var b strings.Builder
	fmt.Fprintf(&b, "Tabela: %s\n\nColunas:\n", TableName)

	count := 0
	for rows.Next() {
		var (
			cid      int
			name     string
			colType  string
			notNull  int
			dfltVal  any
			primKey  int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltVal, &primKey); err != nil {
			return fmt.Sprintf("Erro ao obter schema: %v", err)
		}
		nullable := "NULL"
		if notNull != 0 {
			nullable = "NOT NULL"
		}
		fmt.Fprintf(&b, "  - %s: %s (%s)\n", name, colType, nullable)
		count++
	}
	if err := rows.Err(); err != nil {
		return fmt.Sprintf("Erro ao obter schema: %v", err)
	}
	if count == 0 {
		return fmt.Sprintf("Tabela '%s' não encontrada.", TableName)
	}
	return b.String()
}
