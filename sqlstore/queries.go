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
)

const statsQuery = `SELECT
	COUNT(*) AS total_emendas,
	COUNT(DISTINCT nome_autor) AS total_autores,
	SUM(valor_empenhado) AS total_empenhado,
	SUM(valor_liquidado) AS total_liquidado,
	SUM(valor_pago) AS total_pago
FROM emendas_parlamentares`

const topRegionsQuery = `SELECT
	regiao,
	COUNT(*) AS quantidade,
	SUM(valor_pago) AS total_pago
FROM emendas_parlamentares
GROUP BY regiao
ORDER BY total_pago DESC
LIMIT 5`

// Stats combines overall totals with the five regions receiving the most
// paid funds, each rendered as its own table under a header.
func (s *Store) Stats(ctx context.Context) string {
	general := s.Execute(ctx, statsQuery)
	topRegions := s.Execute(ctx, topRegionsQuery)
	return fmt.Sprintf("=== ESTATÍSTICAS GERAIS ===\n\n%s\n\n=== TOP 5 REGIÕES ===\n\n%s", general, topRegions)
}

const searchByAuthorQuery = `SELECT
	nome_autor,
	municipio,
	uf,
	nome_acao,
	valor_pago
FROM emendas_parlamentares
WHERE nome_autor LIKE ?
ORDER BY valor_pago DESC
LIMIT ?`

// SearchByAuthor lists amendments whose author name contains the given
// fragment, highest paid value first. The fragment is bound as a
// parameter, never spliced into the statement. A non-positive limit falls
// back to the row cap.
func (s *Store) SearchByAuthor(ctx context.Context, author string, limit int) string {
	if limit <= 0 {
		limit = rowCap
	}
	return s.query(ctx, searchByAuthorQuery, "%"+author+"%", limit)
}

const searchByLocationQuery = `SELECT
	nome_autor,
	municipio,
	uf,
	nome_acao,
	valor_pago,
	ano_emenda
FROM emendas_parlamentares
WHERE municipio LIKE ?
ORDER BY valor_pago DESC
LIMIT ?`

const searchByLocationUFQuery = `SELECT
	nome_autor,
	nome_acao,
	valor_pago,
	ano_emenda
FROM emendas_parlamentares
WHERE municipio LIKE ? AND uf = ?
ORDER BY valor_pago DESC
LIMIT ?`

// SearchByLocation lists amendments destined to a municipality, optionally
// narrowed by state code. Both values are bound as parameters.
func (s *Store) SearchByLocation(ctx context.Context, municipality, uf string) string {
	if uf != "" {
		return s.query(ctx, searchByLocationUFQuery, "%"+municipality+"%", uf, rowCap)
	}
	return s.query(ctx, searchByLocationQuery, "%"+municipality+"%", rowCap)
}

// query runs a statement with optional bound arguments and renders the
// outcome as text. Faults name the failing statement so the caller can see
// what was attempted.
func (s *Store) query(ctx context.Context, stmt string, args ...any) string {
	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		s.logger.Warn("query failed", "error", err)
		return fmt.Sprintf("Erro ao executar query: %v\n\nQuery:\n%s", err, stmt)
	}
	defer rows.Close()

	table, err := readResultSet(rows)
	if err != nil {
		s.logger.Warn("result read failed", "error", err)
		return fmt.Sprintf("Erro ao executar query: %v\n\nQuery:\n%s", err, stmt)
	}
	return table.Render()
}
