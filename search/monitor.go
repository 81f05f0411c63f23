package search

import (
	"time"

	"github.com/poiesic/answerbank/core"
)

// Monitor receives callbacks over the lifetime of a single search. It
// exists for diagnostics and tuning: implementations can log, collect
// metrics, or capture intermediate scores for inspection. Callbacks may
// be invoked concurrently from scoring workers and must be safe for
// concurrent use. A Monitor must not retain the records it is handed.
type Monitor interface {
	// Start is called once before any scoring, with the raw query and
	// the resolved configuration.
	Start(query string, cfg Config)

	// QueryNormalized reports the normalized query and its bucket.
	QueryNormalized(normalized string, bucket Bucket)

	// RecordScored reports a fully scored record, whether or not it
	// clears the threshold.
	RecordScored(candidate *core.MatchCandidate)

	// RecordSkipped reports a record the search could not score.
	RecordSkipped(id core.ID, reason string)

	// TimedOut reports that the context expired after scoring the given
	// number of records; the search returns partial results.
	TimedOut(scored int)

	// Finish is called once with the final ranked results and the total
	// elapsed time.
	Finish(results []*core.MatchCandidate, elapsed time.Duration)
}

// noopMonitor is used when the caller does not supply a Monitor.
type noopMonitor struct{}

func (noopMonitor) Start(string, Config)                         {}
func (noopMonitor) QueryNormalized(string, Bucket)               {}
func (noopMonitor) RecordScored(*core.MatchCandidate)            {}
func (noopMonitor) RecordSkipped(core.ID, string)                {}
func (noopMonitor) TimedOut(int)                                 {}
func (noopMonitor) Finish([]*core.MatchCandidate, time.Duration) {}
