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


package transparencia

import (
	"context"
	"errors"
	"log/slog"

	"github.com/poiesic/transparencia/ai"
	"github.com/poiesic/transparencia/ai/openai"
	"github.com/poiesic/transparencia/classify"
	"github.com/poiesic/transparencia/core"
	"github.com/poiesic/transparencia/nl2sql"
	"github.com/poiesic/transparencia/retrieval"
	"github.com/poiesic/transparencia/sqlstore"
	"github.com/poiesic/transparencia/storage/badger"
	"github.com/poiesic/transparencia/tools"
)

// synthesisFailedMessage is returned when neither the rule path nor the
// generative path produced SQL for a data question.
const synthesisFailedMessage = "Não foi possível gerar uma consulta SQL para essa pergunta. Tente reformulá-la."

// Service wires the full question-answering pipeline: classification,
// SQL synthesis and execution, and hybrid document search, exposed
// directly and through the tool registry.
type Service struct {
	store     *sqlstore.Store
	snapshots *badger.SnapshotRepository
	provider  ai.Provider
	generator *nl2sql.Generator
	hybrid    *retrieval.Hybrid
	registry  *tools.Registry
	logger    *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	aiConfig *ai.Config
	logger   *slog.Logger
}

// WithAIConfig overrides the default model endpoints.
func WithAIConfig(config *ai.Config) ServiceOption {
	return func(o *serviceOptions) {
		o.aiConfig = config
	}
}

// WithLogger sets the logger for the service and its components.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(o *serviceOptions) {
		o.logger = logger
	}
}

// NewService opens the amendments database, the snapshot store, and the
// model provider, and wires the pipeline over them. databasePath is the
// SQLite file, snapshotPath the snapshot store directory, corpusPath the
// legislative markdown report.
func NewService(databasePath, snapshotPath, corpusPath string, opts ...ServiceOption) (*Service, error) {
	options := &serviceOptions{
		aiConfig: ai.DefaultConfig(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	store, err := sqlstore.Open(databasePath, options.logger)
	if err != nil {
		return nil, err
	}

	snapshots, err := badger.NewSnapshotRepository(snapshotPath, options.logger)
	if err != nil {
		store.Close()
		return nil, err
	}

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		snapshots.Close()
		store.Close()
		return nil, err
	}

	return newService(store, snapshots, provider, retrieval.FileSource(corpusPath), options.logger)
}

// newService assembles a service from already-open components. Used
// directly by tests with in-memory stores and mock providers.
func newService(
	store *sqlstore.Store,
	snapshots *badger.SnapshotRepository,
	provider ai.Provider,
	source retrieval.DocumentSource,
	logger *slog.Logger,
) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}

	generator, err := nl2sql.NewGenerator(provider.Completer(), logger)
	if err != nil {
		return nil, err
	}

	hybrid, err := retrieval.NewHybrid(snapshots, provider.RelevanceScorer(), source, logger)
	if err != nil {
		return nil, err
	}

	return &Service{
		store:     store,
		snapshots: snapshots,
		provider:  provider,
		generator: generator,
		hybrid:    hybrid,
		registry:  tools.NewToolset(store, hybrid, logger),
		logger:    logger.With("component", "service"),
	}, nil
}

// Answer processes a question end to end: classify, then either the SQL
// path (synthesize, validate, execute, format) or the document path
// (hybrid search rendered as snippets). The result is always text.
func (s *Service) Answer(ctx context.Context, question string) (string, error) {
	route := classify.Classify(question)
	s.logger.Debug("question routed", "route", route.String())

	switch route {
	case core.RouteData:
		sql, err := s.generator.Generate(ctx, question)
		if err != nil {
			if errors.Is(err, core.ErrEmptyQuestion) {
				return "", err
			}
			s.logger.Warn("sql synthesis failed", "error", err)
			return synthesisFailedMessage, nil
		}
		return s.store.Execute(ctx, sql), nil
	default:
		return s.registry.Call(ctx, "search_documents", map[string]any{"query": question}), nil
	}
}

// Tools returns the tool registry for callers that speak the tool-call
// boundary directly.
func (s *Service) Tools() *tools.Registry {
	return s.registry
}

// EnsureIndex eagerly initializes the lexical index. Optional; the first
// document search initializes it on demand.
func (s *Service) EnsureIndex() error {
	return s.hybrid.EnsureIndex()
}

// Close releases every owned resource.
func (s *Service) Close() error {
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing model provider", "err", err)
	}
	if err := s.snapshots.Close(); err != nil {
		s.logger.Error("error closing snapshot store", "err", err)
		return err
	}
	if err := s.store.Close(); err != nil {
		s.logger.Error("error closing sql store", "err", err)
		return err
	}
	return nil
}
