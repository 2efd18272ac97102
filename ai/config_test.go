package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://localhost:11434/v1", cfg.CompletionHost)
	assert.Equal(t, 512, cfg.MaxTokens)
	assert.Equal(t, 60*time.Second, cfg.CompletionTimeout)
}

func TestNewConfigOptions(t *testing.T) {
	cfg := NewConfig(
		WithCompletionHost("http://example.com:9100"),
		WithCompletionModel("qwen2.5:3b"),
		WithRerankHost("http://example.com:8000/"),
		WithRerankModel("bge-reranker-base"),
		WithCompletionTimeout(10*time.Second),
		WithMaxTokens(256),
	)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "http://example.com:9100/v1", cfg.CompletionHost, "normalize should append /v1")
	assert.Equal(t, "http://example.com:8000", cfg.RerankHost, "normalize should strip trailing slash")
	assert.Equal(t, "qwen2.5:3b", cfg.CompletionModel)
	assert.Equal(t, "bge-reranker-base", cfg.RerankModel)
	assert.Equal(t, 256, cfg.MaxTokens)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing completion host", func(c *Config) { c.CompletionHost = "" }},
		{"missing completion model", func(c *Config) { c.CompletionModel = "" }},
		{"missing rerank host", func(c *Config) { c.RerankHost = "" }},
		{"zero timeout", func(c *Config) { c.CompletionTimeout = 0 }},
		{"zero max tokens", func(c *Config) { c.MaxTokens = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
