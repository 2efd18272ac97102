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


package core

import "time"

// Route identifies which answering pipeline handles a question.
type Route int

const (
	// RouteData sends the question through NL-to-SQL translation against
	// the tabular amendment store.
	RouteData Route = iota + 1
	// RouteLegislative sends the question through hybrid document search
	// over the legislative report corpus.
	RouteLegislative
)

// String returns a human-readable route name.
func (r Route) String() string {
	switch r {
	case RouteData:
		return "data"
	case RouteLegislative:
		return "legislative"
	default:
		return "unknown"
	}
}

// Candidate references a corpus document by position together with its
// relevance score. Documents are referenced by position, never by identity,
// so a Candidate is only meaningful relative to the corpus the index was
// built from.
type Candidate struct {
	Doc   int
	Score float64
}

// ScoredDocument pairs a document text with a reranker relevance score.
type ScoredDocument struct {
	Text  string
	Score float64
}

// Snapshot is the persisted form of a lexical index: the document list in
// corpus order plus the term statistics needed to score any query without
// re-reading the source. Derived values (average document length, inverse
// document frequencies) are recomputed at load time.
type Snapshot struct {
	// Fingerprint is a BLAKE2b digest of the document list, used to detect
	// a stale snapshot when the source corpus is available for comparison.
	Fingerprint uint64
	// Documents holds the retained paragraphs in original corpus order.
	Documents []string
	// DocLens holds the token count of each document, parallel to Documents.
	DocLens []int
	// TermCounts holds per-document term frequencies, parallel to Documents.
	TermCounts []map[string]int
	// DocFreqs maps each term to the number of documents containing it.
	DocFreqs map[string]int
	// BuiltAt records when the index was built.
	BuiltAt time.Time
}
