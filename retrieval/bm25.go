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
	"math"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/transparencia/core"
)

// BM25 Okapi parameters.
const (
	bm25K1      = 1.5
	bm25B       = 0.75
	bm25Epsilon = 0.25
)

// Index is an immutable BM25 Okapi index over a paragraph corpus.
// Build once, search many times from any goroutine.
type Index struct {
	documents   []string
	docLens     []int
	termCounts  []map[string]int
	docFreqs    map[string]int
	idf         map[string]float64
	avgDocLen   float64
	fingerprint uint64
}

// BuildIndex tokenizes the corpus and computes BM25 statistics.
// Tokenization runs on a worker pool sized to half the CPUs.
func BuildIndex(documents []string) (*Index, error) {
	if len(documents) == 0 {
		return nil, core.ErrEmptyCorpus
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	docLens := make([]int, len(documents))
	termCounts := make([]map[string]int, len(documents))

	var wg sync.WaitGroup
	for i := range documents {
		wg.Add(1)
		i := i
		submitErr := pool.Submit(func() {
			defer wg.Done()
			tokens := Tokenize(documents[i])
			counts := make(map[string]int, len(tokens))
			for _, tok := range tokens {
				counts[tok]++
			}
			docLens[i] = len(tokens)
			termCounts[i] = counts
		})
		if submitErr != nil {
			wg.Done()
			return nil, submitErr
		}
	}
	wg.Wait()

	docFreqs := make(map[string]int)
	for _, counts := range termCounts {
		for term := range counts {
			docFreqs[term]++
		}
	}

	idx := &Index{
		documents:   documents,
		docLens:     docLens,
		termCounts:  termCounts,
		docFreqs:    docFreqs,
		fingerprint: core.FingerprintDocuments(documents),
	}
	idx.computeDerived()
	return idx, nil
}

// IndexFromSnapshot restores an index from persisted statistics, skipping
// tokenization. The snapshot is validated first.
func IndexFromSnapshot(snapshot *core.Snapshot) (*Index, error) {
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}
	idx := &Index{
		documents:   snapshot.Documents,
		docLens:     snapshot.DocLens,
		termCounts:  snapshot.TermCounts,
		docFreqs:    snapshot.DocFreqs,
		fingerprint: snapshot.Fingerprint,
	}
	idx.computeDerived()
	return idx, nil
}

// Snapshot captures the index statistics for persistence. Derived values
// (idf, average length) are cheap and recomputed on restore.
func (idx *Index) Snapshot() *core.Snapshot {
	return &core.Snapshot{
		Fingerprint: idx.fingerprint,
		Documents:   idx.documents,
		DocLens:     idx.docLens,
		TermCounts:  idx.termCounts,
		DocFreqs:    idx.docFreqs,
		BuiltAt:     time.Now().UTC(),
	}
}

// Fingerprint identifies the exact corpus this index was built from.
func (idx *Index) Fingerprint() uint64 {
	return idx.fingerprint
}

// Len returns the number of indexed documents.
func (idx *Index) Len() int {
	return len(idx.documents)
}

// Document returns the text of document i.
func (idx *Index) Document(i int) string {
	return idx.documents[i]
}

// computeDerived fills in average document length and per-term idf.
// Terms appearing in more than half the corpus get a negative raw idf;
// those are floored to epsilon times the average idf so frequent terms
// still contribute a small positive weight.
func (idx *Index) computeDerived() {
	total := 0
	for _, l := range idx.docLens {
		total += l
	}
	idx.avgDocLen = float64(total) / float64(len(idx.docLens))

	n := float64(len(idx.documents))
	idx.idf = make(map[string]float64, len(idx.docFreqs))

	var idfSum float64
	var negative []string
	for term, df := range idx.docFreqs {
		idf := math.Log(n-float64(df)+0.5) - math.Log(float64(df)+0.5)
		idx.idf[term] = idf
		idfSum += idf
		if idf < 0 {
			negative = append(negative, term)
		}
	}
	avgIDF := idfSum / float64(len(idx.idf))
	floor := bm25Epsilon * avgIDF
	for _, term := range negative {
		idx.idf[term] = floor
	}
}

// Search scores the query against every document and returns at most topN
// candidates in descending score order. Documents with no lexical overlap
// score zero and are dropped, so an empty result means the query shares no
// vocabulary with the corpus. Ties keep corpus order.
func (idx *Index) Search(query string, topN int) []core.Candidate {
	tokens := Tokenize(query)
	if len(tokens) == 0 || topN <= 0 {
		return nil
	}

	scores := make([]float64, len(idx.documents))
	for _, term := range tokens {
		idf, ok := idx.idf[term]
		if !ok {
			continue
		}
		for i, counts := range idx.termCounts {
			tf := float64(counts[term])
			if tf == 0 {
				continue
			}
			denom := tf + bm25K1*(1-bm25B+bm25B*float64(idx.docLens[i])/idx.avgDocLen)
			scores[i] += idf * (tf * (bm25K1 + 1)) / denom
		}
	}

	candidates := make([]core.Candidate, 0, len(scores))
	for i, score := range scores {
		if score > 0 {
			candidates = append(candidates, core.Candidate{Doc: i, Score: score})
		}
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].Score > candidates[b].Score
	})
	if len(candidates) > topN {
		candidates = candidates[:topN]
	}
	return candidates
}
