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


package tools

import (
	"context"
	"fmt"
	"log/slog"
)

// Handler executes a tool call. The args map carries whatever the caller
// sent; handlers pull out what they need with the arg helpers.
type Handler func(ctx context.Context, args map[string]any) string

// Tool is a named capability with a caller-facing description.
type Tool struct {
	Name        string
	Description string
	Handler     Handler
}

// Registry dispatches tool calls by name.
type Registry struct {
	tools  map[string]Tool
	order  []string
	logger *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		tools:  make(map[string]Tool),
		logger: logger.With("component", "tools"),
	}
}

// Register adds a tool. Registering the same name twice replaces the
// handler but keeps the original listing position.
func (r *Registry) Register(tool Tool) {
	if _, exists := r.tools[tool.Name]; !exists {
		r.order = append(r.order, tool.Name)
	}
	r.tools[tool.Name] = tool
}

// List returns the registered tools in registration order.
func (r *Registry) List() []Tool {
	out := make([]Tool, 0, len(r.tools))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Call dispatches to the named tool. Unknown names and handler panics
// both come back as diagnostic text; the caller never sees a crash.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) (result string) {
	tool, ok := r.tools[name]
	if !ok {
		r.logger.Warn("unknown tool", "name", name)
		return fmt.Sprintf("Ferramenta '%s' não encontrada.", name)
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("tool panicked", "name", name, "panic", rec)
			result = fmt.Sprintf("Erro ao executar ferramenta: %v", rec)
		}
	}()

	r.logger.Debug("tool call", "name", name)
	return tool.Handler(ctx, args)
}

// stringArg returns the named argument as a string, or empty when absent
// or of another type.
func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

// intArg returns the named argument as an int. JSON decoding hands
// numbers over as float64, so both are accepted. Absent or unusable
// values yield the fallback.
func intArg(args map[string]any, key string, fallback int) int {
	switch v := args[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return fallback
	}
}
