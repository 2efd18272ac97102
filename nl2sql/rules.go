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


package nl2sql

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// defaultLimit caps rule-synthesized queries when the question names no
// explicit row count.
const defaultLimit = 50

// groupFamily maps a keyword family to the allow-listed column it groups by.
// Families are checked in slice order and the first match wins.
type groupFamily struct {
	column string
	terms  []string
}

var groupFamilies = []groupFamily{
	{column: "nome_autor", terms: []string{"autor", "autores", "parlamentar", "deputado", "senador"}},
	{column: "uf", terms: []string{"estado", "estados", "por uf"}},
	{column: "municipio", terms: []string{"município", "municipio", "municípios", "municipios", "cidade", "cidades"}},
	{column: "regiao", terms: []string{"região", "regiao", "regiões", "regioes"}},
	{column: "nome_funcao", terms: []string{"função", "funcao", "funções", "funcoes", "área", "area", "setor"}},
}

var countTerms = []string{"quantas", "quantos", "contagem", "contar", "número de", "numero de"}

var sumTerms = []string{"soma", "somar", "total", "montante"}

// functionFilters are the fixed budget-function filters. Values are constant
// literals, never user text.
var functionFilters = []struct {
	terms  []string
	clause string
}{
	{terms: []string{"saúde", "saude"}, clause: "nome_funcao LIKE '%Saúde%'"},
	{terms: []string{"educação", "educacao"}, clause: "nome_funcao LIKE '%Educação%'"},
}

// regionPattern matches the five fixed region names as whole words.
// Nordeste must precede Norte in the alternation so that "nordeste" is not
// swallowed by the "norte" branch.
var regionPattern = regexp.MustCompile(`(?i)\b(nordeste|norte|centro-oeste|sudeste|sul)\b`)

// canonicalRegions maps lowercased matches to the values stored in the
// regiao column.
var canonicalRegions = map[string]string{
	"norte":        "Norte",
	"nordeste":     "Nordeste",
	"centro-oeste": "Centro-Oeste",
	"sudeste":      "Sudeste",
	"sul":          "Sul",
}

// limitPattern finds the first standalone integer token in the question.
var limitPattern = regexp.MustCompile(`\b(\d+)\b`)

// SynthesizeRule pattern-matches common question shapes into a complete SQL
// statement without invoking a model. It only handles single-entity,
// single-aggregation questions; anything else opts out (ok=false) so the
// caller can fall back to the generative path.
//
// The statement is assembled exclusively from allow-listed column names and
// constant filter literals. No fragment of the question text is ever spliced
// into the SQL.
func SynthesizeRule(question string) (sql string, ok bool) {
	q := strings.ToLower(question)

	// 1. Grouping entity, first family that matches wins.
	groupCol := ""
	for _, family := range groupFamilies {
		if containsAny(q, family.terms) {
			groupCol = family.column
			break
		}
	}
	if groupCol == "" {
		return "", false
	}

	// 2. Aggregations. Count and sum are independent; both may match.
	hasCount := containsAny(q, countTerms)
	hasSum := containsAny(q, sumTerms)
	if !hasCount && !hasSum {
		return "", false
	}

	selectExprs := []string{groupCol}
	sortKey := ""
	if hasCount {
		selectExprs = append(selectExprs, "COUNT(*) AS quantidade")
		sortKey = "quantidade"
	}
	if hasSum {
		selectExprs = append(selectExprs, fmt.Sprintf("SUM(%s) AS total", sumColumn(q)))
		// When both aggregations match, the sum is the sort key.
		sortKey = "total"
	}

	// 3. Filters, ANDed together.
	var filters []string
	for _, ff := range functionFilters {
		if containsAny(q, ff.terms) {
			filters = append(filters, ff.clause)
		}
	}
	if m := regionPattern.FindString(q); m != "" {
		filters = append(filters, fmt.Sprintf("regiao = '%s'", canonicalRegions[strings.ToLower(m)]))
	}

	// 4. Row limit.
	limit := defaultLimit
	if m := limitPattern.FindStringSubmatch(question); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			limit = n
		}
	}

	// 5. Assembly.
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(selectExprs, ", "))
	b.WriteString(" FROM emendas_parlamentares")
	if len(filters) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(filters, " AND "))
	}
	b.WriteString(" GROUP BY ")
	b.WriteString(groupCol)
	b.WriteString(" ORDER BY ")
	b.WriteString(sortKey)
	b.WriteString(" DESC LIMIT ")
	b.WriteString(strconv.Itoa(limit))

	return b.String(), true
}

// sumColumn picks the monetary column a sum aggregation targets.
// Default is the effectively-paid value.
func sumColumn(q string) string {
	switch {
	case strings.Contains(q, "empenhad"):
		return "valor_empenhado"
	case strings.Contains(q, "liquidad"):
		return "valor_liquidado"
	default:
		return "valor_pago"
	}
}

func containsAny(q string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(q, term) {
			return true
		}
	}
	return false
}
