package search

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/answerbank/core"
)

func testCorpus(t *testing.T) *core.Corpus {
	t.Helper()
	corpus, err := core.NewCorpus(
		&core.Record{
			Id:       1,
			Category: "acoustic",
			Question: "Does Yetifoam reduce noise?",
			Response: "This product provides excellent soundproofing and acoustic noise reduction.",
			Keywords: []string{"acoustic", "soundproofing", "noise", "reduction"},
		},
		&core.Record{
			Id:       2,
			Category: "thermal",
			Question: "What is the R-value per inch?",
			Response: "Closed-cell foam delivers strong thermal resistance, around R6 per inch, " +
				"and acts as a vapour barrier. Tested to AS 1530 fire requirements.",
			Keywords: []string{"thermal", "resistance", "value"},
		},
		&core.Record{
			Id:       3,
			Category: "safety",
			Question: "Is the foam safe for pets?",
			Response: "Once cured the foam is inert and safe around pets and children.",
			Keywords: []string{"safe", "pets", "cured"},
		},
		&core.Record{
			Id:       4,
			Category: "cost",
			Question: "How much does installation cost?",
			Response: "Pricing depends on area and access; we provide a free quote after a site assessment.",
			Keywords: []string{"cost", "quote", "price"},
		},
		&core.Record{Id: 5, Category: "misc"},
	)
	require.NoError(t, err)
	return corpus
}

func newTestSearcher(t *testing.T) *Searcher {
	t.Helper()
	s, err := NewSearcher(testCorpus(t))
	require.NoError(t, err)
	t.Cleanup(s.Release)
	return s
}

func resultIDs(results []*core.MatchCandidate) []core.ID {
	ids := make([]core.ID, len(results))
	for i, r := range results {
		ids[i] = r.Record.Id
	}
	return ids
}

func TestNewSearcher(t *testing.T) {
	t.Run("requires a corpus", func(t *testing.T) {
		_, err := NewSearcher(nil)
		assert.ErrorIs(t, err, ErrCorpusRequired)
	})

	t.Run("computes quality for records without a cached score", func(t *testing.T) {
		s := newTestSearcher(t)
		for i := 0; i < 4; i++ {
			assert.Greater(t, s.quality[i], 0.0, "record %d", i)
		}
	})

	t.Run("keeps cached quality scores", func(t *testing.T) {
		corpus, err := core.NewCorpus(&core.Record{Id: 1, Response: "Yes.", Quality: 0.42})
		require.NoError(t, err)
		s, err := NewSearcher(corpus)
		require.NoError(t, err)
		defer s.Release()
		assert.Equal(t, 0.42, s.quality[0])
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("soundproofing query clears the default threshold", func(t *testing.T) {
		s := newTestSearcher(t)
		results, err := s.Search(ctx, "soundproof acoustic", DefaultConfig())
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, core.ID(1), results[0].Record.Id)
		assert.GreaterOrEqual(t, results[0].Confidence, 0.60)
	})

	t.Run("empty records never match", func(t *testing.T) {
		s := newTestSearcher(t)
		cfg := DefaultConfig()
		cfg.Threshold = 0
		results, err := s.Search(ctx, "anything at all about misc", cfg)
		require.NoError(t, err)
		for _, r := range results {
			assert.NotEqual(t, core.ID(5), r.Record.Id)
		}
	})

	t.Run("invalid config is rejected", func(t *testing.T) {
		s := newTestSearcher(t)
		cfg := DefaultConfig()
		cfg.Threshold = 2
		_, err := s.Search(ctx, "query", cfg)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("empty query is rejected by default", func(t *testing.T) {
		s := newTestSearcher(t)
		_, err := s.Search(ctx, "  ?! ", DefaultConfig())
		assert.ErrorIs(t, err, ErrEmptyQuery)
	})

	t.Run("empty query allowed by policy returns no matches", func(t *testing.T) {
		s := newTestSearcher(t)
		cfg := DefaultConfig()
		cfg.AllowEmptyQuery = true
		// Even at threshold zero, where every scored record would pass
		// the filter, a permitted empty query yields nothing.
		cfg.Threshold = 0
		for _, query := range []string{"", "  ?! "} {
			results, err := s.Search(ctx, query, cfg)
			require.NoError(t, err)
			assert.Empty(t, results, "query %q", query)
		}
	})

	t.Run("density boost rewards query terms found in field text", func(t *testing.T) {
		corpus, err := core.NewCorpus(&core.Record{
			Id:       20,
			Response: "Closed cell foam delivers strong thermal resistance value for every wall and roof panel installed.",
			Keywords: []string{"insulation", "winter"},
			Quality:  0.75,
		})
		require.NoError(t, err)
		s, err := NewSearcher(corpus)
		require.NoError(t, err)
		defer s.Release()

		cfg := DefaultConfig()
		cfg.Threshold = 0
		results, err := s.Search(ctx, "thermal resistance value", cfg)
		require.NoError(t, err)
		require.Len(t, results, 1)

		// All three meaningful query tokens occur in the response, so
		// the adjusted confidence carries the full 0.10 density boost
		// over the best fused field score, even though the record's
		// keyword list shares nothing with the query.
		var bestFused float64
		for _, fs := range results[0].FieldScores {
			if fs.Fused > bestFused {
				bestFused = fs.Fused
			}
		}
		assert.GreaterOrEqual(t, results[0].Confidence, bestFused+0.10-1e-9)
	})

	t.Run("result limit truncates", func(t *testing.T) {
		s := newTestSearcher(t)
		cfg := DefaultConfig()
		cfg.Threshold = 0
		cfg.ResultLimit = 2
		results, err := s.Search(ctx, "foam", cfg)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(results), 2)
	})

	t.Run("raising the threshold only removes results", func(t *testing.T) {
		s := newTestSearcher(t)
		queries := []string{
			"is spray foam safe and quiet",
			"soundproof acoustic",
			"how much does insulation cost",
			"r-value thermal performance",
			"condensation on metal roof",
			"fire rating compliance",
			"diy installation",
			"does it keep mice out",
			"shed insulation melbourne",
			"foam",
		}

		for _, query := range queries {
			var previous []*core.MatchCandidate
			for _, threshold := range []float64{0, 0.2, 0.4, 0.6, 0.8, 1.0} {
				cfg := DefaultConfig()
				cfg.Threshold = threshold
				cfg.ResultLimit = 100
				results, err := s.Search(ctx, query, cfg)
				require.NoError(t, err)
				if previous != nil {
					require.LessOrEqual(t, len(results), len(previous), "%q threshold %v", query, threshold)
					kept := make(map[core.ID]bool)
					for _, r := range previous {
						kept[r.Record.Id] = true
					}
					for _, r := range results {
						assert.True(t, kept[r.Record.Id], "%q threshold %v surfaced a new record", query, threshold)
					}
				}
				previous = results
			}
		}
	})

	t.Run("repeated searches are deterministic", func(t *testing.T) {
		s := newTestSearcher(t)
		cfg := DefaultConfig()
		cfg.Threshold = 0
		cfg.ResultLimit = 100

		first, err := s.Search(ctx, "is spray foam safe", cfg)
		require.NoError(t, err)
		for i := 0; i < 20; i++ {
			again, err := s.Search(ctx, "is spray foam safe", cfg)
			require.NoError(t, err)
			require.Equal(t, resultIDs(first), resultIDs(again), "run %d", i)
			for j := range first {
				require.Equal(t, first[j].FinalScore, again[j].FinalScore)
			}
		}
	})

	t.Run("full ties keep insertion order", func(t *testing.T) {
		corpus, err := core.NewCorpus(
			&core.Record{Id: 10, Response: "The foam cures within an hour."},
			&core.Record{Id: 11, Response: "The foam cures within an hour."},
			&core.Record{Id: 12, Response: "The foam cures within an hour."},
		)
		require.NoError(t, err)
		s, err := NewSearcher(corpus)
		require.NoError(t, err)
		defer s.Release()

		cfg := DefaultConfig()
		cfg.Threshold = 0
		for i := 0; i < 10; i++ {
			results, err := s.Search(ctx, "foam cures", cfg)
			require.NoError(t, err)
			require.Equal(t, []core.ID{10, 11, 12}, resultIDs(results))
		}
	})

	t.Run("equal final scores rank by quality", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Threshold = 0
		cfg.ConfidenceWeight = 0.5
		cfg.QualityWeight = 0.5

		// Both blend to exactly 0.5; the quality leg of the comparator
		// must put the lower-confidence record first.
		slots := []*core.MatchCandidate{
			{Record: &core.Record{Id: 20}, Confidence: 0.75, Quality: 0.25},
			{Record: &core.Record{Id: 21}, Confidence: 0.5, Quality: 0.5},
		}
		results := rank(slots, cfg)
		require.Equal(t, []core.ID{21, 20}, resultIDs(results))
		assert.Equal(t, results[0].FinalScore, results[1].FinalScore)
	})

	t.Run("expired context returns partial results with the context error", func(t *testing.T) {
		s := newTestSearcher(t)
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		results, err := s.Search(canceled, "soundproof acoustic", DefaultConfig())
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, results)
	})
}

// recordingMonitor captures callbacks for assertions. Safe for
// concurrent use like any Monitor must be.
type recordingMonitor struct {
	mu         sync.Mutex
	started    bool
	normalized string
	bucket     Bucket
	scored     int
	skipped    int
	finished   bool
	elapsed    time.Duration
}

func (m *recordingMonitor) Start(string, Config) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started = true
}

func (m *recordingMonitor) QueryNormalized(normalized string, bucket Bucket) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.normalized = normalized
	m.bucket = bucket
}

func (m *recordingMonitor) RecordScored(*core.MatchCandidate) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scored++
}

func (m *recordingMonitor) RecordSkipped(core.ID, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.skipped++
}

func (m *recordingMonitor) TimedOut(int) {}

func (m *recordingMonitor) Finish(_ []*core.MatchCandidate, elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.finished = true
	m.elapsed = elapsed
}

func TestSearchWithMonitor(t *testing.T) {
	s := newTestSearcher(t)
	monitor := &recordingMonitor{}

	results, err := s.SearchWithMonitor(context.Background(), "soundproof acoustic", DefaultConfig(), monitor)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	assert.True(t, monitor.started)
	assert.True(t, monitor.finished)
	assert.Equal(t, "acoustic soundproofing noise acoustic", monitor.normalized)
	assert.Equal(t, BucketMedium, monitor.bucket)
	// Four records carry text; the empty one is skipped silently.
	assert.Equal(t, 4, monitor.scored)
	assert.Zero(t, monitor.skipped)
	assert.Greater(t, monitor.elapsed, time.Duration(0))
}
