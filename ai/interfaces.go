package ai

import "context"

// CompletionRequest describes one bounded completion call: the prompt, the
// stop sequences that terminate generation, and the output token budget.
// The request is backend-independent; any text-in/text-out host can serve it.
type CompletionRequest struct {
	// Prompt is the full prompt text, including schema and examples.
	Prompt string

	// StopWords terminate generation when emitted by the model.
	StopWords []string

	// MaxTokens caps generated output length. Zero means the provider default.
	MaxTokens int

	// Temperature controls sampling randomness. SQL generation wants it low.
	Temperature float64
}

// Completer is a text-completion capability consumed as a black box.
// Implementations must be thread-safe for concurrent use.
type Completer interface {
	// Complete sends the prompt and returns the raw generated text, which
	// may contain markdown fences or trailing commentary; callers are
	// responsible for extraction. Blocking; honors ctx cancellation.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// RelevanceScorer scores query-document pairs with a cross-encoder-style
// relevance model. Implementations must be thread-safe for concurrent use.
type RelevanceScorer interface {
	// Score returns one relevance score per document, in input order.
	// Every (query, document) pair is scored independently.
	Score(ctx context.Context, query string, docs []string) ([]float64, error)
}

// Provider aggregates AI services for convenient initialization and
// lifecycle management.
type Provider interface {
	// Completer returns the text-completion service.
	// The returned Completer is safe for concurrent use.
	Completer() Completer

	// RelevanceScorer returns the cross-encoder scoring service.
	// The returned RelevanceScorer is safe for concurrent use.
	RelevanceScorer() RelevanceScorer

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
