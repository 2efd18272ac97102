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
	"fmt"
	"strconv"
	"strings"
)

// rowCap is the hard limit on rendered rows. Larger result sets are
// truncated with a notice stating the true total.
const rowCap = 50

// moneyThreshold marks unnamed numeric columns as monetary when any value
// exceeds it.
const moneyThreshold = 1_000_000

// moneyKeywords flag a column as monetary by name.
var moneyKeywords = []string{"valor", "total", "soma", "média", "media", "pago", "empenhado", "liquidado"}

// countColumns are integer columns that get digit grouping only.
var countColumns = map[string]bool{
	"quantidade": true,
	"count":      true,
	"qtd":        true,
	"num":        true,
}

// resultTable holds a drained result set before rendering. Cell values are
// whatever the driver produced (int64, float64, string, []byte, nil).
type resultTable struct {
	columns []string
	rows    [][]any
}

// Render formats the table as markdown. Monetary columns use Brazilian
// currency notation, count columns get dot-grouped digits, and row counts
// above the cap produce a truncation notice above the table.
func (t *resultTable) Render() string {
	cells := make([][]string, 0, min(len(t.rows), rowCap))
	moneyCols := t.moneyColumns()

	total := len(t.rows)
	shown := min(total, rowCap)
	for _, row := range t.rows[:shown] {
		line := make([]string, len(t.columns))
		for i, v := range row {
			switch {
			case moneyCols[i]:
				line[i] = formatMoneyCell(v)
			case countColumns[strings.ToLower(t.columns[i])]:
				line[i] = formatCountCell(v)
			default:
				line[i] = formatPlainCell(v)
			}
		}
		cells = append(cells, line)
	}

	table := renderMarkdown(t.columns, cells)
	if total > rowCap {
		return fmt.Sprintf("Retornando primeiras %d de %d linhas:\n\n%s", rowCap, total, table)
	}
	return table
}

// moneyColumns decides per column whether currency formatting applies:
// either the name carries a value-related keyword, or the column is numeric
// and its largest magnitude crosses the threshold.
func (t *resultTable) moneyColumns() []bool {
	money := make([]bool, len(t.columns))
	for i, name := range t.columns {
		lower := strings.ToLower(name)
		if countColumns[lower] {
			continue
		}
		for _, kw := range moneyKeywords {
			if strings.Contains(lower, kw) {
				money[i] = true
				break
			}
		}
		if money[i] {
			continue
		}
		for _, row := range t.rows {
			if f, ok := numericValue(row[i]); ok && f > moneyThreshold {
				money[i] = true
				break
			}
		}
	}
	return money
}

func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func formatMoneyCell(v any) string {
	f, ok := numericValue(v)
	if !ok {
		return formatPlainCell(v)
	}
	return FormatMoney(f)
}

func formatCountCell(v any) string {
	f, ok := numericValue(v)
	if !ok {
		return formatPlainCell(v)
	}
	return groupDigits(strconv.FormatInt(int64(f), 10))
}

func formatPlainCell(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(c)
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'g', -1, 64)
	case int64:
		return strconv.FormatInt(c, 10)
	default:
		return fmt.Sprintf("%v", c)
	}
}

// FormatMoney renders a value in Brazilian currency notation, with dots
// grouping the integer part and a comma before two decimal digits.
// FormatMoney(1234567.891) == "R$ 1.234.567,89".
func FormatMoney(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}
	fixed := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, decPart, _ := strings.Cut(fixed, ".")
	out := "R$ " + groupDigits(intPart) + "," + decPart
	if negative {
		out = "-" + out
	}
	return out
}

// groupDigits inserts a dot every three digits from the right.
func groupDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// renderMarkdown produces a pipe-delimited table with a header separator.
func renderMarkdown(columns []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString("| ")
	b.WriteString(strings.Join(columns, " | "))
	b.WriteString(" |\n|")
	for range columns {
		b.WriteString("---|")
	}
	for _, row := range rows {
		b.WriteString("\n| ")
		b.WriteString(strings.Join(row, " | "))
		b.WriteString(" |")
	}
	return b.String()
}
