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


package crossencoder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/poiesic/transparencia/ai"
)

// Scorer implements ai.RelevanceScorer against a text-embeddings-inference
// style /rerank HTTP endpoint. The server hosts the cross-encoder model and
// scores every (query, text) pair jointly in one request.
type Scorer struct {
	endpoint string
	model    string
	client   *http.Client
	logger   *slog.Logger
}

// rerankRequest is the /rerank request body.
type rerankRequest struct {
	Query string   `json:"query"`
	Texts []string `json:"texts"`
	Model string   `json:"model,omitempty"`
}

// rerankEntry is one scored pair in the /rerank response.
type rerankEntry struct {
	Index int     `json:"index"`
	Score float64 `json:"score"`
}

// NewScorer creates a new cross-encoder scorer using the provided
// configuration.
//
// Returns ai.RelevanceScorer interface to enforce abstraction.
func NewScorer(config *ai.Config) (ai.RelevanceScorer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Scorer{
		endpoint: config.RerankHost + "/rerank",
		model:    config.RerankModel,
		client:   &http.Client{Timeout: 120 * time.Second},
		logger:   slog.Default().With("component", "crossencoder-scorer"),
	}, nil
}

// Score sends the query and all candidate documents to the reranking server
// and returns one relevance score per document, in input order. A document
// missing from the response keeps a zero score rather than failing the call.
func (s *Scorer) Score(ctx context.Context, query string, docs []string) ([]float64, error) {
	if len(docs) == 0 {
		return []float64{}, nil
	}

	body, err := json.Marshal(rerankRequest{Query: query, Texts: docs, Model: s.model})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	s.logger.Debug("scoring candidates", "count", len(docs))

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("rerank request failed", "err", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("rerank server returned %d: %s", resp.StatusCode, payload)
	}

	var entries []rerankEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding rerank response: %w", err)
	}

	scores := make([]float64, len(docs))
	for _, e := range entries {
		if e.Index < 0 || e.Index >= len(docs) {
			s.logger.Warn("rerank response references unknown document", "index", e.Index)
			continue
		}
		scores[e.Index] = e.Score
	}
	return scores, nil
}
