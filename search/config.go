package search

import (
	"fmt"
	"math"
)

// blendTolerance is the allowed deviation of the blend weight sum from 1.
const blendTolerance = 1e-9

// Config holds the per-query search settings. The zero value is not
// usable; start from DefaultConfig. All values are explicit — the engine
// keeps no ambient tuning state, so two calls with equal configs always
// behave identically.
type Config struct {
	// Threshold is the minimum adjusted confidence, in [0,1], a candidate
	// needs to survive into the ranked result set.
	Threshold float64

	// ResultLimit caps the number of returned candidates. Must be positive.
	ResultLimit int

	// ConfidenceWeight and QualityWeight blend confidence and quality into
	// the final rank score. Both must lie in [0,1] and sum to 1.
	ConfidenceWeight float64
	QualityWeight    float64

	// Bucket overrides the query-length bucket used to select fusion
	// weights. BucketAuto selects by token count.
	Bucket Bucket

	// AllowEmptyQuery controls whether a query that normalizes to the
	// empty string yields an empty result set (true) or ErrEmptyQuery
	// (false). This is an explicit policy choice, never silent.
	AllowEmptyQuery bool
}

// DefaultConfig returns the production defaults: a 0.60 confidence
// threshold, up to 5 results, and a 70/30 confidence/quality blend.
// The threshold is a tunable, not a constant — callers wanting higher
// precision raise it, and may retry with a lower one on empty results.
func DefaultConfig() Config {
	return Config{
		Threshold:        0.60,
		ResultLimit:      5,
		ConfidenceWeight: 0.70,
		QualityWeight:    0.30,
		Bucket:           BucketAuto,
	}
}

// Validate checks the config. All errors wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("%w: threshold %v outside [0,1]", ErrInvalidConfig, c.Threshold)
	}
	if c.ResultLimit <= 0 {
		return fmt.Errorf("%w: result limit %d is not positive", ErrInvalidConfig, c.ResultLimit)
	}
	if c.ConfidenceWeight < 0 || c.ConfidenceWeight > 1 {
		return fmt.Errorf("%w: confidence weight %v outside [0,1]", ErrInvalidConfig, c.ConfidenceWeight)
	}
	if c.QualityWeight < 0 || c.QualityWeight > 1 {
		return fmt.Errorf("%w: quality weight %v outside [0,1]", ErrInvalidConfig, c.QualityWeight)
	}
	if math.Abs(c.ConfidenceWeight+c.QualityWeight-1) > blendTolerance {
		return fmt.Errorf("%w: blend weights sum to %v, want 1", ErrInvalidConfig, c.ConfidenceWeight+c.QualityWeight)
	}
	if c.Bucket < BucketAuto || c.Bucket > BucketLong {
		return fmt.Errorf("%w: unknown query length bucket %d", ErrInvalidConfig, c.Bucket)
	}
	return nil
}
