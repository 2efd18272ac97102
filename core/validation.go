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

import "fmt"

// Validate checks that a Snapshot is internally consistent: every per-document
// statistic must be parallel to the document list, and the stored fingerprint
// must match the stored documents. A snapshot that fails validation must never
// be turned into a live index.
func (s *Snapshot) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil snapshot", ErrInvalidSnapshot)
	}
	if len(s.Documents) == 0 {
		return fmt.Errorf("%w: no documents", ErrInvalidSnapshot)
	}
	if len(s.DocLens) != len(s.Documents) {
		return fmt.Errorf("%w: %d documents but %d length entries",
			ErrInvalidSnapshot, len(s.Documents), len(s.DocLens))
	}
	if len(s.TermCounts) != len(s.Documents) {
		return fmt.Errorf("%w: %d documents but %d term-count entries",
			ErrInvalidSnapshot, len(s.Documents), len(s.TermCounts))
	}
	if s.DocFreqs == nil {
		return fmt.Errorf("%w: missing document frequencies", ErrInvalidSnapshot)
	}
	if got := FingerprintDocuments(s.Documents); got != s.Fingerprint {
		return fmt.Errorf("%w: fingerprint mismatch (stored %x, computed %x)",
			ErrInvalidSnapshot, s.Fingerprint, got)
	}
	return nil
}
