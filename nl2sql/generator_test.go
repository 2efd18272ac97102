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
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/transparencia/ai/mock"
	"github.com/poiesic/transparencia/core"
)

func TestNewGenerator(t *testing.T) {
	t.Run("requires completer", func(t *testing.T) {
		_, err := NewGenerator(nil, nil)
		assert.ErrorIs(t, err, ErrCompleterRequired)
	})

	t.Run("nil logger allowed", func(t *testing.T) {
		gen, err := NewGenerator(mock.NewMockCompleter(""), nil)
		require.NoError(t, err)
		assert.NotNil(t, gen)
	})
}

func TestGenerateRulePathSkipsModel(t *testing.T) {
	completer := mock.NewMockCompleter("SELECT 'should not be used'")
	gen, err := NewGenerator(completer, nil)
	require.NoError(t, err)

	sql, err := gen.Generate(context.Background(), "soma do valor pago por estado")
	require.NoError(t, err)
	assert.Equal(t, "SELECT uf, SUM(valor_pago) AS total FROM emendas_parlamentares GROUP BY uf ORDER BY total DESC LIMIT 50", sql)
	assert.Equal(t, 0, completer.CallCount())
}

func TestGenerateModelFallback(t *testing.T) {
	completer := mock.NewMockCompleter("```sql\nSELECT nome_autor FROM emendas_parlamentares WHERE uf = 'SP' LIMIT 5;\n```")
	gen, err := NewGenerator(completer, nil)
	require.NoError(t, err)

	sql, err := gen.Generate(context.Background(), "quem são os autores de emendas em São Paulo")
	require.NoError(t, err)
	assert.Equal(t, "SELECT nome_autor FROM emendas_parlamentares WHERE uf = 'SP' LIMIT 5", sql)
	assert.Equal(t, 1, completer.CallCount())

	req := completer.LastRequest()
	assert.Contains(t, req.Prompt, "emendas_parlamentares")
	assert.Contains(t, req.Prompt, "quem são os autores de emendas em São Paulo")
	assert.Equal(t, []string{"User:", "```\n"}, req.StopWords)
	assert.Equal(t, 512, req.MaxTokens)
	assert.InDelta(t, 0.1, req.Temperature, 1e-9)
}

func TestGenerateCompleterError(t *testing.T) {
	completer := mock.NewMockCompleter("")
	completer.Err = errors.New("connection refused")
	gen, err := NewGenerator(completer, nil)
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "qual a emenda mais antiga")
	assert.ErrorIs(t, err, ErrSynthesisFailed)
}

func TestGenerateExtractionError(t *testing.T) {
	completer := mock.NewMockCompleter("Não sei responder isso.")
	gen, err := NewGenerator(completer, nil)
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "qual a emenda mais antiga")
	assert.ErrorIs(t, err, ErrSynthesisFailed)
}

func TestGenerateEmptyQuestion(t *testing.T) {
	gen, err := NewGenerator(mock.NewMockCompleter(""), nil)
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "   ")
	assert.ErrorIs(t, err, core.ErrEmptyQuestion)
}
