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

import "errors"

var (
	// ErrExtractionFailed indicates no SQL statement could be recovered
	// from the model output.
	ErrExtractionFailed = errors.New("sql extraction failed")

	// ErrSynthesisFailed indicates neither the rule path nor the
	// generative path produced a usable statement.
	ErrSynthesisFailed = errors.New("sql synthesis failed")

	// ErrCompleterRequired indicates the generator was constructed
	// without a completion backend.
	ErrCompleterRequired = errors.New("completer is required")
)
