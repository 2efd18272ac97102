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


package storage

import (
	"fmt"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"

	"github.com/poiesic/transparencia/core"
)

// snapshotVersion is the current wire format version. Bump on any layout
// change.
const snapshotVersion byte = 1

// MarshalSnapshot serializes a snapshot to its versioned MUS encoding.
func MarshalSnapshot(snapshot *core.Snapshot) []byte {
	buf := make([]byte, sizeSnapshot(snapshot))
	n := 0
	buf[n] = snapshotVersion
	n++
	n += varint.Uint64.Marshal(snapshot.Fingerprint, buf[n:])
	n += varint.Int64.Marshal(snapshot.BuiltAt.UnixMicro(), buf[n:])

	n += varint.Int.Marshal(len(snapshot.Documents), buf[n:])
	for _, doc := range snapshot.Documents {
		n += ord.String.Marshal(doc, buf[n:])
	}

	n += varint.Int.Marshal(len(snapshot.DocLens), buf[n:])
	for _, l := range snapshot.DocLens {
		n += varint.Int.Marshal(l, buf[n:])
	}

	n += varint.Int.Marshal(len(snapshot.TermCounts), buf[n:])
	for _, counts := range snapshot.TermCounts {
		n += marshalTermMap(counts, buf[n:])
	}

	n += marshalTermMap(snapshot.DocFreqs, buf[n:])
	return buf
}

// UnmarshalSnapshot decodes a versioned snapshot payload. Decode failures
// wrap ErrCorruptSnapshot; a version this build does not know wraps
// ErrUnsupportedVersion.
func UnmarshalSnapshot(data []byte) (*core.Snapshot, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrCorruptSnapshot)
	}
	if data[0] != snapshotVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrUnsupportedVersion, data[0], snapshotVersion)
	}
	n := 1

	fingerprint, c, err := varint.Uint64.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: fingerprint: %v", ErrCorruptSnapshot, err)
	}
	n += c

	builtAt, c, err := varint.Int64.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: built at: %v", ErrCorruptSnapshot, err)
	}
	n += c

	docCount, c, err := varint.Int.Unmarshal(data[n:])
	if err != nil || docCount < 0 {
		return nil, fmt.Errorf("%w: document count", ErrCorruptSnapshot)
	}
	n += c
	documents := make([]string, docCount)
	for i := range documents {
		documents[i], c, err = ord.String.Unmarshal(data[n:])
		if err != nil {
			return nil, fmt.Errorf("%w: document %d: %v", ErrCorruptSnapshot, i, err)
		}
		n += c
	}

	lenCount, c, err := varint.Int.Unmarshal(data[n:])
	if err != nil || lenCount < 0 {
		return nil, fmt.Errorf("%w: length count", ErrCorruptSnapshot)
	}
	n += c
	docLens := make([]int, lenCount)
	for i := range docLens {
		docLens[i], c, err = varint.Int.Unmarshal(data[n:])
		if err != nil {
			return nil, fmt.Errorf("%w: document length %d: %v", ErrCorruptSnapshot, i, err)
		}
		n += c
	}

	mapCount, c, err := varint.Int.Unmarshal(data[n:])
	if err != nil || mapCount < 0 {
		return nil, fmt.Errorf("%w: term map count", ErrCorruptSnapshot)
	}
	n += c
	termCounts := make([]map[string]int, mapCount)
	for i := range termCounts {
		termCounts[i], c, err = unmarshalTermMap(data[n:])
		if err != nil {
			return nil, fmt.Errorf("%w: term counts %d: %v", ErrCorruptSnapshot, i, err)
		}
		n += c
	}

	docFreqs, _, err := unmarshalTermMap(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: document frequencies: %v", ErrCorruptSnapshot, err)
	}

	return &core.Snapshot{
		Fingerprint: fingerprint,
		Documents:   documents,
		DocLens:     docLens,
		TermCounts:  termCounts,
		DocFreqs:    docFreqs,
		BuiltAt:     time.UnixMicro(builtAt).UTC(),
	}, nil
}

func sizeSnapshot(snapshot *core.Snapshot) int {
	size := 1
	size += varint.Uint64.Size(snapshot.Fingerprint)
	size += varint.Int64.Size(snapshot.BuiltAt.UnixMicro())

	size += varint.Int.Size(len(snapshot.Documents))
	for _, doc := range snapshot.Documents {
		size += ord.String.Size(doc)
	}

	size += varint.Int.Size(len(snapshot.DocLens))
	for _, l := range snapshot.DocLens {
		size += varint.Int.Size(l)
	}

	size += varint.Int.Size(len(snapshot.TermCounts))
	for _, counts := range snapshot.TermCounts {
		size += sizeTermMap(counts)
	}

	size += sizeTermMap(snapshot.DocFreqs)
	return size
}

func marshalTermMap(m map[string]int, buf []byte) int {
	n := varint.Int.Marshal(len(m), buf)
	for term, count := range m {
		n += ord.String.Marshal(term, buf[n:])
		n += varint.Int.Marshal(count, buf[n:])
	}
	return n
}

func unmarshalTermMap(data []byte) (map[string]int, int, error) {
	size, n, err := varint.Int.Unmarshal(data)
	if err != nil || size < 0 {
		return nil, 0, fmt.Errorf("invalid map size")
	}
	m := make(map[string]int, size)
	for i := 0; i < size; i++ {
		term, c, err := ord.String.Unmarshal(data[n:])
		if err != nil {
			return nil, 0, err
		}
		n += c
		count, c, err := varint.Int.Unmarshal(data[n:])
		if err != nil {
			return nil, 0, err
		}
		n += c
		m[term] = count
	}
	return m, n, nil
}

func sizeTermMap(m map[string]int) int {
	size := varint.Int.Size(len(m))
	for term, count := range m {
		size += ord.String.Size(term)
		size += varint.Int.Size(count)
	}
	return size
}
