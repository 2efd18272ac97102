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


// Package retrieval implements two-stage hybrid search over the
// legislative document corpus.
//
// Stage one is a BM25 Okapi index giving fast lexical recall over
// paragraphs. Stage two reranks the lexical candidates with a
// cross-encoder relevance scorer. When the scorer is unreachable the
// pipeline degrades to lexical order instead of failing the search.
package retrieval
