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

// MockCompleter is a test double for ai.Completer.
// It records calls and returns a canned response or error.
type MockCompleter struct {
	mu sync.Mutex

	// Response is returned from Complete when Err is nil.
	Response string

	// Err, when set, is returned from every Complete call.
	Err error

	// CompleteFunc, when set, overrides Response/Err entirely.
	CompleteFunc func(ctx context.Context, req ai.CompletionRequest) (string, error)

	callCount int
	lastReq   ai.CompletionRequest
}

var _ ai.Completer = (*MockCompleter)(nil)

// NewMockCompleter creates a mock completer that returns response.
func NewMockCompleter(response string) *MockCompleter {
	return &MockCompleter{Response: response}
}

// Complete records the call and returns the configured response.
func (m *MockCompleter) Complete(ctx context.Context, req ai.CompletionRequest) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.lastReq = req
	fn := m.CompleteFunc
	resp, err := m.Response, m.Err
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, req)
	}
	if err != nil {
		return "", err
	}
	return resp, nil
}

// CallCount returns how many times Complete was invoked.
func (m *MockCompleter) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastRequest returns the most recent request for test assertions.
func (m *MockCompleter) LastRequest() ai.CompletionRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastReq
}
