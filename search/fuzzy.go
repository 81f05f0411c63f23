package search

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/poiesic/answerbank/core"
)

// Bucket classifies a query by token count. The bucket selects the fusion
// weight row: short technical queries lean on token-set overlap, long
// descriptive queries lean on partial (substring) similarity.
type Bucket int

const (
	// BucketAuto selects the bucket from the normalized query's token count.
	BucketAuto Bucket = iota
	// BucketShort covers queries of up to 2 tokens.
	BucketShort
	// BucketMedium covers queries of 3 to 5 tokens.
	BucketMedium
	// BucketLong covers queries of 6 or more tokens.
	BucketLong
)

// String returns the bucket name.
func (b Bucket) String() string {
	switch b {
	case BucketAuto:
		return "auto"
	case BucketShort:
		return "short"
	case BucketMedium:
		return "medium"
	case BucketLong:
		return "long"
	default:
		return "unknown"
	}
}

// bucketFor maps a query token count to its length bucket.
func bucketFor(tokenCount int) Bucket {
	switch {
	case tokenCount <= 2:
		return BucketShort
	case tokenCount <= 5:
		return BucketMedium
	default:
		return BucketLong
	}
}

// scorerWeights is one row of the fusion weight table. Each row sums to 1.
type scorerWeights struct {
	tokenSet  float64
	partial   float64
	tokenSort float64
	ratio     float64
}

// fusionWeights is the per-bucket weight table. New buckets or retuned
// rows are added here without touching the scoring code.
var fusionWeights = map[Bucket]scorerWeights{
	BucketShort:  {tokenSet: 0.45, partial: 0.25, tokenSort: 0.20, ratio: 0.10},
	BucketMedium: {tokenSet: 0.40, partial: 0.30, tokenSort: 0.20, ratio: 0.10},
	BucketLong:   {tokenSet: 0.30, partial: 0.40, tokenSort: 0.20, ratio: 0.10},
}

// fuseScores computes the four base similarity ratios between a normalized
// query and a normalized field text and combines them with the bucket's
// weights. All returned values are in [0,1]. Empty inputs fuse to 0.
func fuseScores(field core.Field, queryNorm, textNorm string, bucket Bucket) core.FieldScore {
	score := core.FieldScore{Field: field}
	if queryNorm == "" || textNorm == "" {
		return score
	}

	// The underlying ratios are integers in [0,100]; normalize at the
	// boundary so everything downstream works in [0,1].
	score.TokenSet = float64(fuzzy.TokenSetRatio(queryNorm, textNorm)) / 100
	score.Partial = float64(fuzzy.PartialRatio(queryNorm, textNorm)) / 100
	score.TokenSort = float64(fuzzy.TokenSortRatio(queryNorm, textNorm)) / 100
	score.Ratio = float64(fuzzy.Ratio(queryNorm, textNorm)) / 100

	weights := fusionWeights[bucket]
	score.Fused = clamp01(score.TokenSet*weights.tokenSet +
		score.Partial*weights.partial +
		score.TokenSort*weights.tokenSort +
		score.Ratio*weights.ratio)
	return score
}

// clamp01 clamps v to [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
