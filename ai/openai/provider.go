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


package openai

import (
	"log/slog"

	"github.com/poiesic/transparencia/ai"
	"github.com/poiesic/transparencia/ai/crossencoder"
)

// Provider implements ai.Provider using an OpenAI-compatible completion
// service and a cross-encoder reranking service.
type Provider struct {
	config    *ai.Config
	completer *Completer
	scorer    ai.RelevanceScorer
	logger    *slog.Logger
}

// NewProvider creates a new AI provider. The config is validated and
// normalized before use.
//
// Returns ai.Provider interface (not *Provider) to enforce abstraction
// and prevent coupling to implementation details.
func NewProvider(config *ai.Config) (ai.Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	completer, err := newCompleter(config)
	if err != nil {
		return nil, err
	}

	scorer, err := crossencoder.NewScorer(config)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:    config,
		completer: completer,
		scorer:    scorer,
		logger:    slog.Default().With("component", "openai-provider"),
	}, nil
}

// Completer returns the text-completion service.
func (p *Provider) Completer() ai.Completer {
	return p.completer
}

// RelevanceScorer returns the cross-encoder scoring service.
func (p *Provider) RelevanceScorer() ai.RelevanceScorer {
	return p.scorer
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing AI provider")
	return nil
}
