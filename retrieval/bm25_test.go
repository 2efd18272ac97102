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


package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/transparencia/core"
)

var testCorpus = []string{
	"As emendas parlamentares individuais são de execução obrigatória desde 2015.",
	"A Lei Complementar 210 de 2024 trouxe regras de transparência para emendas pix.",
	"O orçamento federal destina recursos para saúde e educação em todos os estados.",
	"Emendas de bancada são coletivas e apresentadas pelas bancadas estaduais.",
}

func TestBuildIndexEmptyCorpus(t *testing.T) {
	_, err := BuildIndex(nil)
	assert.ErrorIs(t, err, core.ErrEmptyCorpus)
}

func TestSearchRanksLexicalOverlap(t *testing.T) {
	idx, err := BuildIndex(testCorpus)
	require.NoError(t, err)

	candidates := idx.Search("emendas pix transparência", 10)
	require.NotEmpty(t, candidates)
	// The document mentioning both pix and transparência must rank first.
	assert.Equal(t, 1, candidates[0].Doc)

	for i := 1; i < len(candidates); i++ {
		assert.GreaterOrEqual(t, candidates[i-1].Score, candidates[i].Score)
	}
}

func TestSearchDropsZeroScores(t *testing.T) {
	idx, err := BuildIndex(testCorpus)
	require.NoError(t, err)

	t.Run("no vocabulary overlap", func(t *testing.T) {
		assert.Empty(t, idx.Search("xyzabc inexistente", 10))
	})

	t.Run("empty query", func(t *testing.T) {
		assert.Empty(t, idx.Search("   ", 10))
	})

	t.Run("partial overlap excludes unrelated documents", func(t *testing.T) {
		candidates := idx.Search("bancada", 10)
		require.Len(t, candidates, 1)
		assert.Equal(t, 3, candidates[0].Doc)
	})
}

func TestSearchRespectsTopN(t *testing.T) {
	idx, err := BuildIndex(testCorpus)
	require.NoError(t, err)

	candidates := idx.Search("emendas de", 2)
	assert.LessOrEqual(t, len(candidates), 2)
}

func TestIndexSnapshotRoundTrip(t *testing.T) {
	idx, err := BuildIndex(testCorpus)
	require.NoError(t, err)

	restored, err := IndexFromSnapshot(idx.Snapshot())
	require.NoError(t, err)

	query := "transparência das emendas"
	assert.Equal(t, idx.Search(query, 10), restored.Search(query, 10))
	assert.Equal(t, idx.Fingerprint(), restored.Fingerprint())
}

func TestIndexFromSnapshotRejectsTampered(t *testing.T) {
	idx, err := BuildIndex(testCorpus)
	require.NoError(t, err)

	snapshot := idx.Snapshot()
	snapshot.Documents[0] = "conteúdo adulterado depois da persistência do índice"

	_, err = IndexFromSnapshot(snapshot)
	assert.ErrorIs(t, err, core.ErrInvalidSnapshot)
}

func TestFrequentTermsKeepPositiveWeight(t *testing.T) {
	// "emendas" appears in three of four documents, so its raw idf is
	// negative and must be floored.
	idx, err := BuildIndex(testCorpus)
	require.NoError(t, err)

	candidates := idx.Search("emendas", 10)
	require.NotEmpty(t, candidates)
	for _, c := range candidates {
		assert.Greater(t, c.Score, 0.0)
	}
}
