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

import "errors"

var (
	// ErrRepositoryRequired indicates hybrid search was constructed
	// without a snapshot repository.
	ErrRepositoryRequired = errors.New("snapshot repository is required")

	// ErrScorerRequired indicates hybrid search was constructed without
	// a relevance scorer.
	ErrScorerRequired = errors.New("relevance scorer is required")

	// ErrSourceRequired indicates hybrid search was constructed without
	// a document source.
	ErrSourceRequired = errors.New("document source is required")
)
