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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/transparencia"
	"github.com/poiesic/transparencia/ai"
)

func main() {
	app := &cli.App{
		Name:  "transparencia",
		Usage: "Question answering over Brazilian parliamentary amendment data",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ask",
				Usage:     "Answer a natural-language question (routed automatically)",
				ArgsUsage: "<question>",
				Action:    askCommand,
				Flags:     serviceFlags(),
			},
			{
				Name:      "query",
				Usage:     "Execute a SELECT statement against the amendments database",
				ArgsUsage: "<sql>",
				Action:    queryCommand,
				Flags:     serviceFlags(),
			},
			{
				Name:      "search",
				Usage:     "Search the legislative documents",
				ArgsUsage: "<terms>",
				Action:    searchCommand,
				Flags:     serviceFlags(),
			},
			{
				Name:   "index",
				Usage:  "Build or refresh the lexical index snapshot",
				Action: indexCommand,
				Flags:  serviceFlags(),
			},
			{
				Name:   "stats",
				Usage:  "Show aggregate statistics about the amendments",
				Action: statsCommand,
				Flags:  serviceFlags(),
			},
			{
				Name:   "schema",
				Usage:  "Show the amendments table schema",
				Action: schemaCommand,
				Flags:  serviceFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serviceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to the amendments SQLite database",
			Value:   "data/db_transparencia.db",
		},
		&cli.StringFlag{
			Name:  "snapshots",
			Usage: "Path to the snapshot store directory",
			Value: "data/snapshots",
		},
		&cli.StringFlag{
			Name:  "corpus",
			Usage: "Path to the legislative markdown report",
			Value: "data/relatorio_emendas.md",
		},
		&cli.StringFlag{
			Name:  "completion-host",
			Usage: "Completion service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "completion-model",
			Usage: "Completion model name",
			Value: "qwen2.5:1.5b",
		},
		&cli.StringFlag{
			Name:  "rerank-host",
			Usage: "Rerank service host URL",
			Value: "http://localhost:8787",
		},
		&cli.StringFlag{
			Name:  "rerank-model",
			Usage: "Rerank model name",
			Value: "cross-encoder/ms-marco-MiniLM-L-6-v2",
		},
	}
}

func openService(c *cli.Context) (*transparencia.Service, error) {
	config := ai.NewConfig(
		ai.WithCompletionHost(c.String("completion-host")),
		ai.WithCompletionModel(c.String("completion-model")),
		ai.WithRerankHost(c.String("rerank-host")),
		ai.WithRerankModel(c.String("rerank-model")),
	)
	return transparencia.NewService(
		c.String("db"),
		c.String("snapshots"),
		c.String("corpus"),
		transparencia.WithAIConfig(config),
	)
}

func askCommand(c *cli.Context) error {
	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("question is required")
	}

	svc, err := openService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	answer, err := svc.Answer(context.Background(), question)
	if err != nil {
		return err
	}
	fmt.Println(answer)
	return nil
}

func queryCommand(c *cli.Context) error {
	statement := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if statement == "" {
		return fmt.Errorf("sql statement is required")
	}

	svc, err := openService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	out := svc.Tools().Call(context.Background(), "query", map[string]any{"query": statement})
	fmt.Println(out)
	return nil
}

func searchCommand(c *cli.Context) error {
	terms := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if terms == "" {
		return fmt.Errorf("search terms are required")
	}

	svc, err := openService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	out := svc.Tools().Call(context.Background(), "search_documents", map[string]any{"query": terms})
	fmt.Println(out)
	return nil
}

func indexCommand(c *cli.Context) error {
	svc, err := openService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	if err := svc.EnsureIndex(); err != nil {
		return fmt.Errorf("failed to build index: %w", err)
	}
	fmt.Fprintln(os.Stderr, "index ready")
	return nil
}

func statsCommand(c *cli.Context) error {
	svc, err := openService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	fmt.Println(svc.Tools().Call(context.Background(), "get_stats", nil))
	return nil
}

func schemaCommand(c *cli.Context) error {
	svc, err := openService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	fmt.Println(svc.Tools().Call(context.Background(), "get_schema", nil))
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
