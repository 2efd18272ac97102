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
	"strings"
)

// schemaSummary is the compact schema description embedded in every
// generation prompt. It names only the columns useful for analytical
// questions, with semantic hints, rather than the full DDL.
const schemaSummary = `Tabela: emendas_parlamentares

Colunas principais:
  - nome_autor (TEXT): nome do parlamentar autor da emenda
  - tipo_emenda (TEXT): tipo da emenda (Individual, Bancada, Comissão)
  - uf (TEXT): sigla do estado beneficiado (SP, RJ, BA, ...)
  - regiao (TEXT): região do estado (Norte, Nordeste, Centro-Oeste, Sudeste, Sul)
  - municipio (TEXT): município beneficiado
  - ano_emenda (INTEGER): ano da emenda
  - nome_funcao (TEXT): função orçamentária (Saúde, Educação, ...)
  - nome_subfuncao (TEXT): subfunção orçamentária
  - valor_empenhado (REAL): valor empenhado em reais
  - valor_liquidado (REAL): valor liquidado em reais
  - valor_pago (REAL): valor efetivamente pago em reais`

// promptExamples are two worked question/answer pairs that anchor the
// output format. Both answers are plain SQL with no prose.
const promptExamples = `Pergunta: Quais os 5 estados que mais receberam emendas?
SQL: SELECT uf, COUNT(*) AS quantidade FROM emendas_parlamentares GROUP BY uf ORDER BY quantidade DESC LIMIT 5;

Pergunta: Qual a soma do valor pago em emendas de saúde por região?
SQL: SELECT regiao, SUM(valor_pago) AS total FROM emendas_parlamentares WHERE nome_funcao LIKE '%Saúde%' GROUP BY regiao ORDER BY total DESC LIMIT 50;`

// BuildPrompt assembles the generation prompt for a question: compact
// schema, format instructions, worked examples, then the question.
func BuildPrompt(question string) string {
	var b strings.Builder
	b.WriteString("Você é um assistente que converte perguntas em português sobre emendas parlamentares em consultas SQL (dialeto SQLite).\n\n")
	b.WriteString(schemaSummary)
	b.WriteString("\n\nRegras:\n")
	b.WriteString("  - Responda APENAS com a consulta SQL, sem explicações.\n")
	b.WriteString("  - Use somente comandos SELECT.\n")
	b.WriteString("  - Inclua sempre uma cláusula LIMIT (padrão 50).\n\n")
	b.WriteString(promptExamples)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Pergunta: %s\nSQL:", question)
	return b.String()
}
