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


package mock

import (
	"context"
	"sync"

	"github.com/poiesic/transparencia/ai"
)

// MockScorer is a test double for ai.RelevanceScorer.
// By default it scores documents by descending input position so that
// reordering behavior is observable in tests.
type MockScorer struct {
	mu sync.Mutex

	// ScoreFunc, when set, computes the scores for each call.
	ScoreFunc func(query string, docs []string) []float64

	// Err, when set, is returned from every Score call.
	Err error

	callCount int
}

var _ ai.RelevanceScorer = (*MockScorer)(nil)

// NewMockScorer creates a mock scorer with default positional scoring.
func NewMockScorer() *MockScorer {
	return &MockScorer{}
}

// Score records the call and returns one score per document.
func (m *MockScorer) Score(ctx context.Context, query string, docs []string) ([]float64, error) {
	m.mu.Lock()
	m.callCount++
	fn := m.ScoreFunc
	err := m.Err
	m.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if fn != nil {
		return fn(query, docs), nil
	}

	// Default: later candidates score higher, forcing a visible reorder.
	scores := make([]float64, len(docs))
	for i := range docs {
		scores[i] = float64(i)
	}
	return scores, nil
}

// CallCount returns how many times Score was invoked.
func (m *MockScorer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}
