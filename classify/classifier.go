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


package classify

import (
	"strings"

	"github.com/poiesic/transparencia/core"
)

// legislativeKeywords mark questions about laws, rules, concepts and court
// decisions. They are checked before the data keywords: a question that
// mentions both ("qual a lei que limita o valor das emendas?") is about the
// rule, not the number.
var legislativeKeywords = []string{
	"lei", "norma", "regra", "pode", "permitido", "proibido",
	"como funciona", "o que é", "define", "definição",
	"constitucional", "legal", "legislação", "regulamento",
	"resolução", "decreto", "portaria", "instrução",
	"ministro", "stf", "supremo", "decisão", "judicial",
	"dino", "transparência", "rastreabilidade", "orçamento secreto",
	"emenda pix", "emenda de relator", "emenda de bancada",
	"limite", "teto", "impositividade", "obrigatoriedade",
	"tipo de emenda", "modalidade", "categoria",
	"processo", "tramitação", "aprovação", "sanção",
	"conceito", "explique", "explicação", "entenda",
}

// dataKeywords mark questions answerable from the tabular amendment records:
// counting, aggregation, geography and time.
var dataKeywords = []string{
	"quantos", "quantas", "quanto", "total", "soma", "média",
	"maior", "menor", "top", "ranking", "lista",
	"valor", "montante", "recurso", "verba",
	"parlamentar", "autor", "deputado", "senador",
	"município", "municipio", "cidade", "estado", "região", "regiao",
	"ano", "período", "periodo", "comparar", "crescimento",
}

// rule pairs a predicate with the route it selects. Rules are evaluated in
// order and the first match wins.
type rule struct {
	match func(string) bool
	route core.Route
}

var rules = []rule{
	{match: matchesAny(legislativeKeywords), route: core.RouteLegislative},
	{match: matchesAny(dataKeywords), route: core.RouteData},
}

func matchesAny(keywords []string) func(string) bool {
	return func(question string) bool {
		for _, kw := range keywords {
			if strings.Contains(question, kw) {
				return true
			}
		}
		return false
	}
}

// Classify routes a question to the tabular-data path or the legislative
// document path. The check order is significant: legislative keywords take
// priority over data keywords, and a question matching neither defaults to
// the legislative path. Pure function of the input text.
func Classify(question string) core.Route {
	q := strings.ToLower(question)
	for _, r := range rules {
		if r.match(q) {
			return r.route
		}
	}
	return core.RouteLegislative
}
