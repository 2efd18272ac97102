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


package nl2sql

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/transparencia/ai"
	"github.com/poiesic/transparencia/core"
)

// completionStopWords halt generation before the model starts a new
// conversational turn or opens a second code fence.
var completionStopWords = []string{"User:", "```\n"}

const (
	completionMaxTokens   = 512
	completionTemperature = 0.1
)

// Generator produces SQL for natural-language questions, trying the rule
// synthesizer before falling back to the completion model.
type Generator struct {
	completer ai.Completer
	logger    *slog.Logger
}

// NewGenerator creates a generator backed by the given completer.
func NewGenerator(completer ai.Completer, logger *slog.Logger) (*Generator, error) {
	if completer == nil {
		return nil, ErrCompleterRequired
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		completer: completer,
		logger:    logger.With("component", "nl2sql"),
	}, nil
}

// Generate returns a SQL statement for the question. Rule synthesis is
// attempted first; when it opts out the question goes to the model and the
// raw output is run through Extract. Errors from either the model or the
// extractor surface as ErrSynthesisFailed.
func (g *Generator) Generate(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", core.ErrEmptyQuestion
	}

	if sql, ok := SynthesizeRule(question); ok {
		g.logger.Debug("rule synthesis hit", "question", question)
		return sql, nil
	}

	g.logger.Debug("rule synthesis miss, falling back to model", "question", question)

	raw, err := g.completer.Complete(ctx, ai.CompletionRequest{
		Prompt:      BuildPrompt(question),
		StopWords:   completionStopWords,
		MaxTokens:   completionMaxTokens,
		Temperature: completionTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}

	sql, err := Extract(raw)
	if err != nil {
		g.logger.Warn("extraction failed", "error", err)
		return "", fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}
	return sql, nil
}
