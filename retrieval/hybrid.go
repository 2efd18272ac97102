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
	"log/slog"
	"os"
	"sync"

	"github.com/poiesic/transparencia/ai"
	"github.com/poiesic/transparencia/core"
	"github.com/poiesic/transparencia/storage"
)

// Default pipeline widths: lexical recall breadth and final result count.
const (
	DefaultCandidates = 20
	DefaultTopK       = 5
)

// DocumentSource supplies the corpus paragraphs for indexing.
type DocumentSource func() ([]string, error)

// FileSource reads a markdown file and splits it into paragraphs.
func FileSource(path string) DocumentSource {
	return func() ([]string, error) {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return SplitParagraphs(string(content)), nil
	}
}

// StaticSource serves a fixed document list. Used in tests and for
// pre-split corpora.
func StaticSource(docs []string) DocumentSource {
	return func() ([]string, error) {
		return docs, nil
	}
}

// Hybrid is the two-stage search pipeline. The index is initialized on
// first use: a persisted snapshot is reused when its fingerprint matches
// the current corpus, otherwise the index is rebuilt and the snapshot
// replaced.
type Hybrid struct {
	repo   storage.SnapshotRepository
	scorer ai.RelevanceScorer
	source DocumentSource
	logger *slog.Logger

	indexOnce sync.Once
	index     *Index
	indexErr  error

	rerankerOnce sync.Once
	reranker     *Reranker
}

// NewHybrid creates the pipeline. Nothing is loaded or built until the
// first search or an explicit EnsureIndex call.
func NewHybrid(repo storage.SnapshotRepository, scorer ai.RelevanceScorer, source DocumentSource, logger *slog.Logger) (*Hybrid, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	if scorer == nil {
		return nil, ErrScorerRequired
	}
	if source == nil {
		return nil, ErrSourceRequired
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Hybrid{
		repo:   repo,
		scorer: scorer,
		source: source,
		logger: logger.With("component", "hybrid-search"),
	}, nil
}

// EnsureIndex initializes the lexical index exactly once. Safe for
// concurrent callers.
func (h *Hybrid) EnsureIndex() error {
	h.indexOnce.Do(func() {
		h.index, h.indexErr = h.loadOrBuild()
	})
	return h.indexErr
}

func (h *Hybrid) loadOrBuild() (*Index, error) {
	docs, err := h.source()
	if err != nil {
		return nil, err
	}
	fingerprint := core.FingerprintDocuments(docs)

	snapshot, err := h.repo.LoadSnapshot()
	if err != nil {
		// A broken snapshot is recoverable: rebuild from source.
		h.logger.Warn("snapshot load failed, rebuilding index", "error", err)
	} else if snapshot != nil {
		if snapshot.Fingerprint == fingerprint {
			idx, err := IndexFromSnapshot(snapshot)
			if err == nil {
				h.logger.Info("index restored from snapshot",
					"documents", idx.Len())
				return idx, nil
			}
			h.logger.Warn("snapshot restore failed, rebuilding index", "error", err)
		} else {
			h.logger.Info("corpus changed, rebuilding index",
				"snapshot_fingerprint", snapshot.Fingerprint,
				"corpus_fingerprint", fingerprint)
		}
	}

	idx, err := BuildIndex(docs)
	if err != nil {
		return nil, err
	}
	if err := h.repo.SaveSnapshot(idx.Snapshot()); err != nil {
		// Persistence failure does not block searching.
		h.logger.Warn("snapshot save failed", "error", err)
	}
	h.logger.Info("index built", "documents", idx.Len())
	return idx, nil
}

// searchOptions holds per-call pipeline widths.
type searchOptions struct {
	candidates int
	topK       int
}

// SearchOption adjusts a single search call.
type SearchOption func(*searchOptions)

// WithCandidates sets how many lexical candidates feed the reranker.
func WithCandidates(n int) SearchOption {
	return func(o *searchOptions) {
		if n > 0 {
			o.candidates = n
		}
	}
}

// WithTopK sets how many results the search returns.
func WithTopK(k int) SearchOption {
	return func(o *searchOptions) {
		if k > 0 {
			o.topK = k
		}
	}
}

// Search runs the two-stage pipeline and returns document texts in final
// relevance order. An unusable index yields an empty result, not an error.
// When no lexical candidate matches, the reranker is never invoked. When
// the reranker fails, the lexical order is returned instead.
func (h *Hybrid) Search(ctx context.Context, query string, opts ...SearchOption) []string {
	options := searchOptions{
		candidates: DefaultCandidates,
		topK:       DefaultTopK,
	}
	for _, opt := range opts {
		opt(&options)
	}

	if err := h.EnsureIndex(); err != nil {
		h.logger.Warn("index unavailable", "error", err)
		return nil
	}

	candidates := h.index.Search(query, options.candidates)
	if len(candidates) == 0 {
		return nil
	}

	docs := make([]string, len(candidates))
	for i, c := range candidates {
		docs[i] = h.index.Document(c.Doc)
	}

	h.rerankerOnce.Do(func() {
		h.reranker, _ = NewReranker(h.scorer)
	})

	scored, err := h.reranker.Rerank(ctx, query, docs, options.topK)
	if err != nil {
		h.logger.Warn("reranker unavailable, falling back to lexical order", "error", err)
		if len(docs) > options.topK {
			docs = docs[:options.topK]
		}
		return docs
	}

	results := make([]string, len(scored))
	for i, s := range scored {
		results[i] = s.Text
	}
	return results
}
