package crossencoder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/poiesic/transparencia/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScorer(t *testing.T, handler http.HandlerFunc) ai.RelevanceScorer {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := ai.NewConfig(ai.WithRerankHost(server.URL))
	scorer, err := NewScorer(cfg)
	require.NoError(t, err)
	return scorer
}

func TestScore(t *testing.T) {
	scorer := newTestScorer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rerank", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var req rerankRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "emendas pix", req.Query)
		require.Len(t, req.Texts, 3)

		// Out-of-order response entries must map back by index.
		json.NewEncoder(w).Encode([]rerankEntry{
			{Index: 2, Score: 0.9},
			{Index: 0, Score: 0.1},
			{Index: 1, Score: 0.5},
		})
	})

	scores, err := scorer.Score(context.Background(), "emendas pix", []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.5, 0.9}, scores)
}

func TestScoreEmptyDocs(t *testing.T) {
	scorer := newTestScorer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("server should not be called for empty input")
	})

	scores, err := scorer.Score(context.Background(), "qualquer", nil)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestScoreServerError(t *testing.T) {
	scorer := newTestScorer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	})

	_, err := scorer.Score(context.Background(), "q", []string{"a"})
	assert.Error(t, err)
}

func TestScoreIgnoresUnknownIndexes(t *testing.T) {
	scorer := newTestScorer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]rerankEntry{
			{Index: 0, Score: 0.7},
			{Index: 9, Score: 0.4},
		})
	})

	scores, err := scorer.Score(context.Background(), "q", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.7, 0}, scores)
}
