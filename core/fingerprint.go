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

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// FingerprintDocuments computes a deterministic 64-bit BLAKE2b digest over a
// document list. Identical document lists produce identical fingerprints, so
// a persisted snapshot can be checked against a freshly split corpus without
// rebuilding the whole index.
func FingerprintDocuments(docs []string) uint64 {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	var sep [8]byte
	for _, doc := range docs {
		// Length prefix keeps ["ab","c"] distinct from ["a","bc"].
		binary.LittleEndian.PutUint64(sep[:], uint64(len(doc)))
		h.Write(sep[:])
		h.Write([]byte(doc))
	}
	sum := h.Sum(nil)
	return binary.LittleEndian.Uint64(sum)
}
