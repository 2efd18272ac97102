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
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/transparencia/retrieval"
	"github.com/poiesic/transparencia/sqlstore"
)

// Document search widths. Snippets feed a model, so recall is wider and
// deeper than the interactive defaults.
const (
	documentCandidates = 30
	documentTopK       = 10
	snippetRuneCap     = 1000
)

// NewToolset builds the registry with the full tool surface over the
// given store and search pipeline.
func NewToolset(store *sqlstore.Store, hybrid *retrieval.Hybrid, logger *slog.Logger) *Registry {
	registry := NewRegistry(logger)

	registry.Register(Tool{
		Name: "get_schema",
		Description: "Retorna o schema completo da tabela de emendas parlamentares, " +
			"incluindo nomes de colunas e tipos de dados.",
		Handler: func(ctx context.Context, args map[string]any) string {
			return store.Schema(ctx)
		},
	})

	registry.Register(Tool{
		Name: "query",
		Description: "Executa uma consulta SQL na tabela de emendas parlamentares. " +
			"Apenas SELECT é permitido. Use LIMIT para limitar resultados.",
		Handler: func(ctx context.Context, args map[string]any) string {
			return store.Execute(ctx, stringArg(args, "query"))
		},
	})

	registry.Register(Tool{
		Name: "get_stats",
		Description: "Retorna estatísticas gerais sobre as emendas parlamentares: " +
			"totais de valores, número de autores e top 5 regiões.",
		Handler: func(ctx context.Context, args map[string]any) string {
			return store.Stats(ctx)
		},
	})

	registry.Register(Tool{
		Name: "search_by_author",
		Description: "Busca emendas por nome (ou parte do nome) do parlamentar autor, " +
			"ordenadas por valor pago.",
		Handler: func(ctx context.Context, args map[string]any) string {
			author := stringArg(args, "author")
			limit := intArg(args, "limit", 50)
			return store.SearchByAuthor(ctx, author, limit)
		},
	})

	registry.Register(Tool{
		Name: "search_by_location",
		Description: "Lista emendas destinadas a um município, opcionalmente " +
			"filtradas pela sigla do estado.",
		Handler: func(ctx context.Context, args map[string]any) string {
			location := stringArg(args, "location")
			regionCode := stringArg(args, "region_code")
			return store.SearchByLocation(ctx, location, regionCode)
		},
	})

	registry.Register(Tool{
		Name: "search_documents",
		Description: "Busca informações teóricas e legais sobre emendas parlamentares " +
			"nos documentos de referência. Não use para dados numéricos.",
		Handler: func(ctx context.Context, args map[string]any) string {
			return searchDocuments(ctx, hybrid, stringArg(args, "query"))
		},
	})

	return registry
}

// searchDocuments renders hybrid search hits as labeled snippets.
func searchDocuments(ctx context.Context, hybrid *retrieval.Hybrid, query string) string {
	results := hybrid.Search(ctx, query,
		retrieval.WithCandidates(documentCandidates),
		retrieval.WithTopK(documentTopK))
	if len(results) == 0 {
		return "Nenhum resultado encontrado nos documentos teóricos."
	}

	formatted := make([]string, len(results))
	for i, doc := range results {
		formatted[i] = fmt.Sprintf("[Trecho %d]\n%s", i+1, capSnippet(doc))
	}
	return strings.Join(formatted, "\n\n")
}

// capSnippet bounds a snippet at snippetRuneCap runes, marking the cut.
func capSnippet(doc string) string {
	runes := []rune(doc)
	if len(runes) <= snippetRuneCap {
		return doc
	}
	return string(runes[:snippetRuneCap]) + "..."
}
