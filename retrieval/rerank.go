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
	"context"
	"sort"

	"github.com/poiesic/transparencia/ai"
	"github.com/poiesic/transparencia/core"
)

// Reranker orders candidate documents by cross-encoder relevance.
type Reranker struct {
	scorer ai.RelevanceScorer
}

// NewReranker creates a reranker over the given scorer.
func NewReranker(scorer ai.RelevanceScorer) (*Reranker, error) {
	if scorer == nil {
		return nil, ErrScorerRequired
	}
	return &Reranker{scorer: scorer}, nil
}

// Rerank scores every document against the query and returns the topK
// highest in descending score order. Ties keep input order, which for
// lexical candidates means BM25 order.
func (r *Reranker) Rerank(ctx context.Context, query string, docs []string, topK int) ([]core.ScoredDocument, error) {
	if len(docs) == 0 || topK <= 0 {
		return nil, nil
	}

	scores, err := r.scorer.Score(ctx, query, docs)
	if err != nil {
		return nil, err
	}

	scored := make([]core.ScoredDocument, len(docs))
	for i, doc := range docs {
		scored[i] = core.ScoredDocument{Text: doc, Score: scores[i]}
	}
	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})
	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored, nil
}
