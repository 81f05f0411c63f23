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

package search

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/answerbank/core"
	"github.com/poiesic/answerbank/normalize"
)

// Searcher scores queries against an immutable corpus snapshot. Record
// fields are normalized and quality scores computed once at construction,
// so individual searches only pay for fuzzy comparison and ranking.
// A Searcher is safe for concurrent use.
type Searcher struct {
	corpus  *core.Corpus
	fields  [][]fieldText         // indexed by corpus position
	tokens  []map[string]struct{} // distinct field-text tokens per position
	quality []float64             // indexed by corpus position
	pool    *ants.Pool
	logger  *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent scoring.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *Searcher) error {
		if size < 1 {
			size = 1
		}
		if s.pool != nil {
			s.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		s.pool = pool
		return nil
	}
}

// NewSearcher creates a searcher over the given corpus. Per-record
// normalization and quality scoring happen here; records whose stored
// Quality is zero get a computed score, records ingested with a cached
// score keep it.
func NewSearcher(corpus *core.Corpus, opts ...Option) (*Searcher, error) {
	if corpus == nil {
		return nil, ErrCorpusRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	s := &Searcher{
		corpus: corpus,
		pool:   pool,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			s.Release()
			return nil, err
		}
	}

	records := corpus.Records()
	s.fields = make([][]fieldText, len(records))
	s.tokens = make([]map[string]struct{}, len(records))
	s.quality = make([]float64, len(records))
	for i, rec := range records {
		s.fields[i] = extractFields(rec)
		s.tokens[i] = fieldTokens(s.fields[i])
		if rec.Quality > 0 {
			s.quality[i] = rec.Quality
		} else {
			s.quality[i] = ScoreQuality(rec)
		}
	}

	return s, nil
}

// Search scores the query against every record and returns the ranked
// results per the given configuration.
func (s *Searcher) Search(ctx context.Context, query string, cfg Config) ([]*core.MatchCandidate, error) {
	return s.SearchWithMonitor(ctx, query, cfg, nil)
}

// SearchWithMonitor is Search with per-stage monitoring callbacks.
//
// If the context expires mid-search, records scored so far are still
// ranked and returned alongside the context's error, so callers can
// choose between partial results and failure.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, cfg Config, monitor Monitor) ([]*core.MatchCandidate, error) {
	if monitor == nil {
		monitor = noopMonitor{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	started := time.Now()
	monitor.Start(query, cfg)

	queryNorm := normalize.Normalize(query)
	queryTokens := strings.Fields(queryNorm)
	if len(queryTokens) == 0 {
		if !cfg.AllowEmptyQuery {
			return nil, ErrEmptyQuery
		}
		// Permitted empty queries match nothing, whatever the threshold.
		monitor.Finish(nil, time.Since(started))
		return nil, nil
	}

	bucket := cfg.Bucket
	if bucket == BucketAuto {
		bucket = bucketFor(len(queryTokens))
	}
	monitor.QueryNormalized(queryNorm, bucket)

	tokenSet := make(map[string]struct{}, len(queryTokens))
	for _, t := range queryTokens {
		tokenSet[t] = struct{}{}
	}
	// Meaningful query tokens for the density boost: stop words and short
	// tokens dropped, duplicates removed.
	queryKeywords := normalize.Keywords(queryNorm)

	// Each worker writes into its own slot, so results keep corpus
	// insertion order before ranking and no locking is needed.
	records := s.corpus.Records()
	slots := make([]*core.MatchCandidate, len(records))

	var wg sync.WaitGroup
	var scored atomic.Int64
	var timedOut atomic.Bool
	for i := range records {
		i := i
		wg.Add(1)
		task := func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					s.logger.Error("panic scoring record", "recordID", records[i].Id, "panic", r)
					monitor.RecordSkipped(records[i].Id, "panic during scoring")
				}
			}()

			if ctx.Err() != nil {
				timedOut.Store(true)
				return
			}

			candidate := s.scoreRecord(queryNorm, tokenSet, queryKeywords, bucket, i)
			if candidate == nil {
				return
			}
			slots[i] = candidate
			scored.Add(1)
			monitor.RecordScored(candidate)
		}
		if err := s.pool.Submit(task); err != nil {
			// Pool saturated or released; score on the caller's goroutine.
			task()
		}
	}
	wg.Wait()

	if timedOut.Load() || ctx.Err() != nil {
		monitor.TimedOut(int(scored.Load()))
	}

	results := rank(slots, cfg)
	monitor.Finish(results, time.Since(started))

	return results, ctx.Err()
}

// scoreRecord runs the full scoring pipeline for one corpus position.
// Returns nil for records with no searchable text.
func (s *Searcher) scoreRecord(queryNorm string, queryTokens map[string]struct{}, queryKeywords []string, bucket Bucket, pos int) *core.MatchCandidate {
	fields := s.fields[pos]
	if len(fields) == 0 {
		return nil
	}
	rec := s.corpus.Records()[pos]
	quality := s.quality[pos]

	// The record's confidence comes from its best field, not an
	// average: one strong field is a match even if the others are weak.
	fieldScores := make([]core.FieldScore, 0, len(fields))
	var best float64
	for _, ft := range fields {
		fs := fuseScores(ft.field, queryNorm, ft.text, bucket)
		fieldScores = append(fieldScores, fs)
		if fs.Fused > best {
			best = fs.Fused
		}
	}

	confidence := applyContextualWeighting(best, queryTokens, queryKeywords, rec, s.tokens[pos], quality)

	return &core.MatchCandidate{
		Record:      rec,
		FieldScores: fieldScores,
		Confidence:  confidence,
		Quality:     quality,
	}
}

// rank filters scored candidates by threshold, blends confidence and
// quality into the final score, and returns the top results. The sort is
// stable over corpus insertion order, which makes full ties deterministic.
func rank(slots []*core.MatchCandidate, cfg Config) []*core.MatchCandidate {
	results := make([]*core.MatchCandidate, 0, len(slots))
	for _, c := range slots {
		if c == nil || c.Confidence < cfg.Threshold {
			continue
		}
		c.FinalScore = c.Confidence*cfg.ConfidenceWeight + c.Quality*cfg.QualityWeight
		results = append(results, c)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].FinalScore != results[j].FinalScore {
			return results[i].FinalScore > results[j].FinalScore
		}
		return results[i].Quality > results[j].Quality
	})

	if len(results) > cfg.ResultLimit {
		results = results[:cfg.ResultLimit]
	}
	return results
}

// Release releases the worker pool.
// The searcher should not be used after calling Release.
func (s *Searcher) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
}
