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

// Package answerbank matches customer questions against a curated store
// of approved answers. It combines fuzzy text matching with quality
// weighted ranking, and can optionally adapt the best answer into a
// conversational reply through an LLM.
package answerbank

import (
	"context"
	"log/slog"

	"github.com/poiesic/answerbank/ai"
	"github.com/poiesic/answerbank/ai/openai"
	"github.com/poiesic/answerbank/core"
	"github.com/poiesic/answerbank/ingestion"
	"github.com/poiesic/answerbank/search"
	"github.com/poiesic/answerbank/storage"
	"github.com/poiesic/answerbank/storage/badger"
)

// Bank ties the record store, search engine, and response adaptation
// together behind one handle.
type Bank struct {
	backend    *badger.Backend
	recordRepo storage.RecordRepository
	provider   ai.AIProvider
	logger     *slog.Logger
}

// BankOption configures a Bank.
type BankOption func(*bankOptions)

type bankOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
	inMemory bool
}

// WithAIConfig sets the configuration for the default OpenAI-compatible
// provider.
func WithAIConfig(cfg *ai.Config) BankOption {
	return func(o *bankOptions) {
		o.aiConfig = cfg
	}
}

// WithAIProvider supplies a pre-built AI provider, bypassing the default
// OpenAI-compatible one. Useful for tests.
func WithAIProvider(provider ai.AIProvider) BankOption {
	return func(o *bankOptions) {
		o.provider = provider
	}
}

// WithInMemory opens the store in memory instead of on disk. The path
// argument to Open is ignored.
func WithInMemory() BankOption {
	return func(o *bankOptions) {
		o.inMemory = true
	}
}

// Open opens an answer bank stored at filePath.
func Open(filePath string, opts ...BankOption) (*Bank, error) {
	options := &bankOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	recordRepo, err := badger.NewRecordRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			recordRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Bank{
		backend:    backend,
		recordRepo: recordRepo,
		provider:   provider,
		logger:     slog.Default(),
	}, nil
}

// Close releases the AI provider, the record repository, and the backend.
func (b *Bank) Close() error {
	if err := b.provider.Close(); err != nil {
		b.logger.Error("error closing AI provider", "err", err)
	}

	if err := b.recordRepo.Close(); err != nil {
		b.logger.Error("error closing record repository", "err", err)
		return err
	}

	if err := b.backend.Close(); err != nil {
		b.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// RecordRepository returns the underlying record store.
func (b *Bank) RecordRepository() storage.RecordRepository {
	return b.recordRepo
}

// Snapshot materializes the stored records as an immutable corpus.
func (b *Bank) Snapshot(ctx context.Context) (*core.Corpus, error) {
	return b.recordRepo.Snapshot(ctx)
}

// NewSearcher builds a searcher over the current store contents. The
// searcher holds a snapshot; records added later require a new searcher.
func (b *Bank) NewSearcher(ctx context.Context, opts ...search.Option) (*search.Searcher, error) {
	corpus, err := b.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return search.NewSearcher(corpus, opts...)
}

// NewIngestionPipeline builds an ingestion pipeline writing to this bank.
func (b *Bank) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(b.recordRepo, opts...)
}

// Respond searches for the query and adapts the best matches into a
// reply. Returns the reply together with the ranked matches it was
// grounded on. Returns search.ErrEmptyQuery or an empty candidate list
// untouched; callers decide how to phrase "no answer".
func (b *Bank) Respond(ctx context.Context, query string, cfg search.Config) (string, []*core.MatchCandidate, error) {
	searcher, err := b.NewSearcher(ctx)
	if err != nil {
		return "", nil, err
	}
	defer searcher.Release()

	candidates, err := searcher.Search(ctx, query, cfg)
	if err != nil {
		return "", nil, err
	}
	if len(candidates) == 0 {
		return "", nil, nil
	}

	reply, err := b.provider.ResponseAdapter().AdaptResponse(ctx, query, candidates)
	if err != nil {
		return "", candidates, err
	}
	return reply, candidates, nil
}
