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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "millions with rounding", value: 1234567.891, want: "R$ 1.234.567,89"},
		{name: "zero", value: 0, want: "R$ 0,00"},
		{name: "under one thousand", value: 999.5, want: "R$ 999,50"},
		{name: "exactly one thousand", value: 1000, want: "R$ 1.000,00"},
		{name: "negative", value: -1500.25, want: "-R$ 1.500,25"},
		{name: "billions", value: 9876543210.01, want: "R$ 9.876.543.210,01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(tt.value))
		})
	}
}

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "1", groupDigits("1"))
	assert.Equal(t, "123", groupDigits("123"))
	assert.Equal(t, "1.234", groupDigits("1234"))
	assert.Equal(t, "12.345.678", groupDigits("12345678"))
}

func TestRenderMoneyDetection(t *testing.T) {
	t.Run("by column name keyword", func(t *testing.T) {
		table := &resultTable{
			columns: []string{"uf", "total"},
			rows:    [][]any{{"SP", float64(1500)}},
		}
		assert.Contains(t, table.Render(), "R$ 1.500,00")
	})

	t.Run("by magnitude threshold", func(t *testing.T) {
		table := &resultTable{
			columns: []string{"uf", "x"},
			rows:    [][]any{{"SP", float64(2_500_000)}},
		}
		assert.Contains(t, table.Render(), "R$ 2.500.000,00")
	})

	t.Run("small unnamed numeric column stays plain", func(t *testing.T) {
		table := &resultTable{
			columns: []string{"uf", "x"},
			rows:    [][]any{{"SP", float64(42)}},
		}
		out := table.Render()
		assert.Contains(t, out, "| SP | 42 |")
		assert.NotContains(t, out, "R$")
	})

	t.Run("count column gets digit grouping only", func(t *testing.T) {
		table := &resultTable{
			columns: []string{"regiao", "quantidade"},
			rows:    [][]any{{"Sul", int64(12345)}},
		}
		out := table.Render()
		assert.Contains(t, out, "12.345")
		assert.NotContains(t, out, "R$")
	})

	t.Run("nil cells render empty", func(t *testing.T) {
		table := &resultTable{
			columns: []string{"uf", "valor_pago"},
			rows:    [][]any{{nil, nil}},
		}
		assert.Contains(t, table.Render(), "|  |  |")
	})
}

func TestRenderTruncation(t *testing.T) {
	table := &resultTable{columns: []string{"n"}}
	for i := 0; i < 73; i++ {
		table.rows = append(table.rows, []any{int64(i)})
	}

	out := table.Render()
	assert.Contains(t, out, "Retornando primeiras 50 de 73 linhas:")
	assert.Contains(t, out, "| 49 |")
	assert.NotContains(t, out, "| 50 |")
}

func TestRenderEmptyResult(t *testing.T) {
	table := &resultTable{columns: []string{"uf", "total"}}
	out := table.Render()
	assert.Equal(t, "| uf | total |\n|---|---|", out)
}
