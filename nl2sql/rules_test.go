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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeRule(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     string
	}{
		{
			name:     "count by region with region filter",
			question: "quantas emendas na região sul",
			want:     "SELECT regiao, COUNT(*) AS quantidade FROM emendas_parlamentares WHERE regiao = 'Sul' GROUP BY regiao ORDER BY quantidade DESC LIMIT 50",
		},
		{
			name:     "sum paid value by state",
			question: "soma do valor pago por estado",
			want:     "SELECT uf, SUM(valor_pago) AS total FROM emendas_parlamentares GROUP BY uf ORDER BY total DESC LIMIT 50",
		},
		{
			name:     "count by author",
			question: "quantos projetos por autor",
			want:     "SELECT nome_autor, COUNT(*) AS quantidade FROM emendas_parlamentares GROUP BY nome_autor ORDER BY quantidade DESC LIMIT 50",
		},
		{
			name:     "sum committed value by municipality",
			question: "total empenhado por município",
			want:     "SELECT municipio, SUM(valor_empenhado) AS total FROM emendas_parlamentares GROUP BY municipio ORDER BY total DESC LIMIT 50",
		},
		{
			name:     "sum settled value by function",
			question: "montante liquidado por função",
			want:     "SELECT nome_funcao, SUM(valor_liquidado) AS total FROM emendas_parlamentares GROUP BY nome_funcao ORDER BY total DESC LIMIT 50",
		},
		{
			name:     "health filter",
			question: "soma do valor pago em saúde por estado",
			want:     "SELECT uf, SUM(valor_pago) AS total FROM emendas_parlamentares WHERE nome_funcao LIKE '%Saúde%' GROUP BY uf ORDER BY total DESC LIMIT 50",
		},
		{
			name:     "education and region filters combined",
			question: "quantas emendas de educação no nordeste por estado",
			want:     "SELECT uf, COUNT(*) AS quantidade FROM emendas_parlamentares WHERE nome_funcao LIKE '%Educação%' AND regiao = 'Nordeste' GROUP BY uf ORDER BY quantidade DESC LIMIT 50",
		},
		{
			name:     "explicit limit from question",
			question: "quais os 10 parlamentares com maior soma de valor pago",
			want:     "SELECT nome_autor, SUM(valor_pago) AS total FROM emendas_parlamentares GROUP BY nome_autor ORDER BY total DESC LIMIT 10",
		},
		{
			name:     "count and sum together sorts by total",
			question: "quantas emendas e soma do valor pago por estado",
			want:     "SELECT uf, COUNT(*) AS quantidade, SUM(valor_pago) AS total FROM emendas_parlamentares GROUP BY uf ORDER BY total DESC LIMIT 50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, ok := SynthesizeRule(tt.question)
			require.True(t, ok)
			assert.Equal(t, tt.want, sql)
		})
	}
}

func TestSynthesizeRuleOptsOut(t *testing.T) {
	tests := []struct {
		name     string
		question string
	}{
		{name: "no grouping entity", question: "quantas emendas existem"},
		{name: "no aggregation", question: "liste as emendas por estado"},
		{name: "free-form question", question: "o que é uma emenda de bancada"},
		{name: "empty question", question: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := SynthesizeRule(tt.question)
			assert.False(t, ok)
		})
	}
}

func TestSynthesizeRuleRegionWordBoundary(t *testing.T) {
	// "nordeste" must not be matched as "norte".
	sql, ok := SynthesizeRule("soma do valor pago no nordeste por estado")
	require.True(t, ok)
	assert.Contains(t, sql, "regiao = 'Nordeste'")
	assert.NotContains(t, sql, "'Norte'")
}
