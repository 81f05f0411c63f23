package ingestion

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/answerbank/core"
	"github.com/poiesic/answerbank/search"
	"github.com/poiesic/answerbank/storage"
)

// Pipeline loads curated dataset items into the record store. Quality
// scores are computed at ingestion time on a worker pool and cached on
// the records, so searchers never recompute them.
type Pipeline struct {
	repository  storage.RecordRepository
	qualityPool *ants.Pool
	logger      *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for quality scoring.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.qualityPool != nil {
			p.qualityPool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.qualityPool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(repository storage.RecordRepository, opts ...Option) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		repository:  repository,
		qualityPool: pool,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			p.Release()
			return nil, err
		}
	}

	return p, nil
}

// Ingest converts dataset items to records, scores their quality, and
// stores them. Items with no usable text are logged and skipped rather
// than failing the batch. Returns the stored records with IDs and
// quality scores populated.
func (p *Pipeline) Ingest(ctx context.Context, items []DatasetItem) ([]*core.Record, error) {
	records := make([]*core.Record, 0, len(items))
	for i, item := range items {
		rec := item.Record()
		if strings.TrimSpace(rec.PrimaryText()) == "" && strings.TrimSpace(rec.Question) == "" {
			p.logger.Warn("skipping dataset item with no text", "index", i, "category", item.Category)
			continue
		}
		records = append(records, rec)
	}

	var wg sync.WaitGroup
	for _, rec := range records {
		rec := rec
		wg.Add(1)
		task := func() {
			defer wg.Done()
			rec.Quality = search.ScoreQuality(rec)
		}
		if err := p.qualityPool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()

	return p.repository.AddRecords(ctx, records...)
}

// IngestFile loads a dataset file and ingests its items.
func (p *Pipeline) IngestFile(ctx context.Context, path string) ([]*core.Record, error) {
	items, err := LoadDataset(path)
	if err != nil {
		return nil, err
	}
	return p.Ingest(ctx, items)
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.qualityPool != nil {
		p.qualityPool.Release()
	}
}
