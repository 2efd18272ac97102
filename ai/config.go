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


package ai

import (
	"errors"
	"strings"
	"time"
)

// Config holds configuration for AI service providers.
type Config struct {
	// CompletionHost is the base URL for the text-completion service API.
	// Example: "http://localhost:11434/v1" for a local OpenAI-compatible server.
	CompletionHost string

	// CompletionModel is the model identifier for SQL generation.
	// Example: "qwen2.5:1.5b", "gpt-4o-mini"
	CompletionModel string

	// RerankHost is the base URL for the cross-encoder reranking service.
	// Example: "http://localhost:8787" for a local TEI-style server.
	RerankHost string

	// RerankModel is the cross-encoder model identifier, used for logging
	// and for servers that multiplex several models.
	RerankModel string

	// CompletionTimeout bounds every completion call. The generative model
	// host has no timeout of its own; the stop sequences and token cap only
	// bound output length, not wall-clock time.
	// Default: 60s
	CompletionTimeout time.Duration

	// MaxTokens caps the number of tokens a completion may produce.
	// Default: 512
	MaxTokens int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithCompletionHost sets the completion service host URL.
func WithCompletionHost(host string) ConfigOption {
	return func(c *Config) {
		c.CompletionHost = host
	}
}

// WithCompletionModel sets the completion model identifier.
func WithCompletionModel(model string) ConfigOption {
	return func(c *Config) {
		c.CompletionModel = model
	}
}

// WithRerankHost sets the reranking service host URL.
func WithRerankHost(host string) ConfigOption {
	return func(c *Config) {
		c.RerankHost = host
	}
}

// WithRerankModel sets the cross-encoder model identifier.
func WithRerankModel(model string) ConfigOption {
	return func(c *Config) {
		c.RerankModel = model
	}
}

// WithCompletionTimeout sets the wall-clock bound for completion calls.
func WithCompletionTimeout(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.CompletionTimeout = d
	}
}

// WithMaxTokens sets the completion output token cap.
func WithMaxTokens(n int) ConfigOption {
	return func(c *Config) {
		c.MaxTokens = n
	}
}

// DefaultConfig returns a Config with sensible defaults for local
// OpenAI-compatible services and a local reranking server.
func DefaultConfig() *Config {
	return &Config{
		CompletionHost:    "http://localhost:11434/v1",
		CompletionModel:   "qwen2.5:1.5b",
		RerankHost:        "http://localhost:8787",
		RerankModel:       "cross-encoder/ms-marco-MiniLM-L-6-v2",
		CompletionTimeout: 60 * time.Second,
		MaxTokens:         512,
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form. The completion
// host gets the /v1 suffix required by OpenAI-compatible APIs (Ollama,
// LocalAI, vLLM, etc); the rerank host is left untouched because reranking
// servers are not OpenAI-shaped.
func (c *Config) Normalize() {
	if c.CompletionHost != "" && !strings.HasSuffix(c.CompletionHost, "/v1") {
		c.CompletionHost = strings.TrimSuffix(c.CompletionHost, "/")
		c.CompletionHost = c.CompletionHost + "/v1"
	}
	c.RerankHost = strings.TrimSuffix(c.RerankHost, "/")
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.CompletionHost == "" {
		return errors.New("ai config: CompletionHost is required")
	}
	if c.CompletionModel == "" {
		return errors.New("ai config: CompletionModel is required")
	}
	if c.RerankHost == "" {
		return errors.New("ai config: RerankHost is required")
	}
	if c.CompletionTimeout <= 0 {
		return errors.New("ai config: CompletionTimeout must be positive")
	}
	if c.MaxTokens <= 0 {
		return errors.New("ai config: MaxTokens must be positive")
	}
	return nil
}
