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


package tools

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/poiesic/transparencia/ai/mock"
	"github.com/poiesic/transparencia/retrieval"
	"github.com/poiesic/transparencia/sqlstore"
	"github.com/poiesic/transparencia/storage/badger"
)

var handlerCorpus = []string{
	"As emendas parlamentares individuais são de execução obrigatória desde a Emenda Constitucional 86 de 2015.",
	"A Lei Complementar 210 de 2024 estabeleceu exigências de transparência e rastreabilidade para emendas pix.",
	"O Supremo Tribunal Federal suspendeu pagamentos de emendas por falta de transparência em decisões recentes.",
}

func newTestToolset(t *testing.T) (*Registry, *mock.MockScorer) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(sqlstore.CreateTableDDL)
	require.NoError(t, err)
	_, err = db.Exec(
		`INSERT INTO emendas_parlamentares
			(nome_autor, municipio, uf, regiao, nome_funcao, nome_acao, ano_emenda, valor_pago)
		 VALUES ('Maria Souza', 'Porto Alegre', 'RS', 'Sul', 'Saúde', 'Construção de UBS', 2024, 2500000)`)
	require.NoError(t, err)

	store, err := sqlstore.NewStore(db, nil)
	require.NoError(t, err)

	repo, err := badger.NewMemorySnapshotRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	scorer := mock.NewMockScorer()
	hybrid, err := retrieval.NewHybrid(repo, scorer, retrieval.StaticSource(handlerCorpus), nil)
	require.NoError(t, err)

	return NewToolset(store, hybrid, nil), scorer
}

func TestToolsetSurface(t *testing.T) {
	registry, _ := newTestToolset(t)

	list := registry.List()
	names := make([]string, len(list))
	for i, tool := range list {
		names[i] = tool.Name
	}
	assert.Equal(t, []string{
		"get_schema", "query", "get_stats",
		"search_by_author", "search_by_location", "search_documents",
	}, names)
	for _, tool := range list {
		assert.NotEmpty(t, tool.Description)
	}
}

func TestGetSchemaTool(t *testing.T) {
	registry, _ := newTestToolset(t)

	out := registry.Call(context.Background(), "get_schema", nil)
	assert.Contains(t, out, "Tabela: emendas_parlamentares")
	assert.Contains(t, out, "valor_pago: REAL")
}

func TestQueryTool(t *testing.T) {
	registry, _ := newTestToolset(t)

	t.Run("select is executed", func(t *testing.T) {
		out := registry.Call(context.Background(), "query", map[string]any{
			"query": "SELECT uf, SUM(valor_pago) AS total FROM emendas_parlamentares GROUP BY uf",
		})
		assert.Contains(t, out, "R$ 2.500.000,00")
	})

	t.Run("non-select is refused", func(t *testing.T) {
		out := registry.Call(context.Background(), "query", map[string]any{
			"query": "DROP TABLE emendas_parlamentares",
		})
		assert.Equal(t, sqlstore.RefusalMessage, out)
	})

	t.Run("missing argument is refused", func(t *testing.T) {
		out := registry.Call(context.Background(), "query", nil)
		assert.Equal(t, sqlstore.RefusalMessage, out)
	})
}

func TestGetStatsTool(t *testing.T) {
	registry, _ := newTestToolset(t)

	out := registry.Call(context.Background(), "get_stats", nil)
	assert.Contains(t, out, "=== ESTATÍSTICAS GERAIS ===")
	assert.Contains(t, out, "=== TOP 5 REGIÕES ===")
}

func TestSearchByAuthorTool(t *testing.T) {
	registry, _ := newTestToolset(t)

	out := registry.Call(context.Background(), "search_by_author", map[string]any{
		"author": "Souza",
		"limit":  float64(10),
	})
	assert.Contains(t, out, "Maria Souza")
}

func TestSearchByLocationTool(t *testing.T) {
	registry, _ := newTestToolset(t)

	out := registry.Call(context.Background(), "search_by_location", map[string]any{
		"location":    "Porto Alegre",
		"region_code": "RS",
	})
	assert.Contains(t, out, "Construção de UBS")
}

func TestSearchDocumentsTool(t *testing.T) {
	registry, scorer := newTestToolset(t)

	t.Run("labeled snippets", func(t *testing.T) {
		out := registry.Call(context.Background(), "search_documents", map[string]any{
			"query": "transparência emendas pix",
		})
		assert.Contains(t, out, "[Trecho 1]")
		assert.Greater(t, scorer.CallCount(), 0)
	})

	t.Run("no lexical match", func(t *testing.T) {
		out := registry.Call(context.Background(), "search_documents", map[string]any{
			"query": "xyzabc totalmente desconhecido",
		})
		assert.Equal(t, "Nenhum resultado encontrado nos documentos teóricos.", out)
	})
}

func TestSnippetCap(t *testing.T) {
	long := strings.Repeat("ã", 1500)
	capped := capSnippet(long)
	assert.Equal(t, 1003, len([]rune(capped)))
	assert.True(t, strings.HasSuffix(capped, "..."))

	short := "trecho curto"
	assert.Equal(t, short, capSnippet(short))
}
