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

import "errors"

// Domain validation errors
var (
	// ErrEmptyCorpus indicates no paragraph survived corpus splitting.
	ErrEmptyCorpus = errors.New("corpus contains no indexable paragraphs")

	// ErrInvalidSnapshot indicates a Snapshot failed consistency validation.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrEmptyQuestion indicates an empty question was submitted.
	ErrEmptyQuestion = errors.New("question cannot be empty")
)
