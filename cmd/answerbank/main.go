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

	"github.com/poiesic/answerbank"
	"github.com/poiesic/answerbank/ai"
	"github.com/poiesic/answerbank/ingestion"
	"github.com/poiesic/answerbank/search"
	"github.com/poiesic/answerbank/storage/badger"
)

func main() {
	app := &cli.App{
		Name:  "answerbank",
		Usage: "Fuzzy question matching over a curated answer store",
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
				Name:   "seed",
				Usage:  "Load a curated dataset file into the answer store",
				Action: seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "dataset",
						Aliases:  []string{"f"},
						Usage:    "Path to the dataset JSON file",
						Required: true,
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Rank stored answers against a query",
				Action:    searchCommand,
				ArgsUsage: "<query>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.Float64Flag{
						Name:  "threshold",
						Usage: "Minimum adjusted confidence for a match",
						Value: 0.60,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of results",
						Value: 5,
					},
				},
			},
			{
				Name:      "respond",
				Usage:     "Answer a question from the store, adapting the best match with an LLM",
				Action:    respondCommand,
				ArgsUsage: "<query>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "llm-host",
						Usage: "Chat service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "llm-model",
						Usage: "Chat model name",
						Value: "qwen2.5:3b",
					},
					&cli.Float64Flag{
						Name:  "threshold",
						Usage: "Minimum adjusted confidence for a match",
						Value: 0.60,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewRecordRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	pipeline, err := ingestion.NewPipeline(repo)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	records, err := pipeline.IngestFile(ctx, c.String("dataset"))
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Ingested %d records into %s\n", len(records), c.String("db"))
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query argument is required")
	}

	repo, backend, err := badger.NewRepository(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()
	defer repo.Close()

	corpus, err := repo.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	searcher, err := search.NewSearcher(corpus)
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}
	defer searcher.Release()

	cfg := search.DefaultConfig()
	cfg.Threshold = c.Float64("threshold")
	cfg.ResultLimit = c.Int("limit")

	results, err := searcher.Search(ctx, query, cfg)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("No matches above the confidence threshold.")
		return nil
	}

	for i, r := range results {
		fmt.Printf("%d. [%s] score=%.3f confidence=%.3f quality=%.3f\n",
			i+1, r.Record.Category, r.FinalScore, r.Confidence, r.Quality)
		fmt.Printf("   Q: %s\n", r.Record.Question)
		fmt.Printf("   A: %s\n\n", r.Record.PrimaryText())
	}
	return nil
}

func respondCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query argument is required")
	}

	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("llm-host")),
		ai.WithModel(c.String("llm-model")),
	)

	bank, err := answerbank.Open(c.String("db"), answerbank.WithAIConfig(aiConfig))
	if err != nil {
		return fmt.Errorf("failed to open answer bank: %w", err)
	}
	defer bank.Close()

	cfg := search.DefaultConfig()
	cfg.Threshold = c.Float64("threshold")

	reply, candidates, err := bank.Respond(ctx, query, cfg)
	if err != nil {
		return fmt.Errorf("respond failed: %w", err)
	}
	if len(candidates) == 0 {
		fmt.Println("No matches above the confidence threshold.")
		return nil
	}

	fmt.Println(reply)
	fmt.Fprintf(os.Stderr, "\n(grounded on %d matches, best: [%s] %.3f)\n",
		len(candidates), candidates[0].Record.Category, candidates[0].FinalScore)
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
