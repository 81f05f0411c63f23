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
	"github.com/poiesic/answerbank/core"
)

// Contextual weighting adjusts a record's fused similarity with signals
// the base scorers cannot see: category affinity, keyword density, and
// near-exact matches. Boosts are additive over the fused base; only the
// boost sum is dampened for low-quality records, never the base itself,
// so a weak record can still surface on raw similarity alone.

const (
	categoryExactBoost   = 0.15
	categoryPartialBoost = 0.05

	exactMatchThreshold = 0.90
	exactMatchBoost     = 0.05

	lowQualityThreshold = 0.60
	lowQualityDamping   = 0.80
)

// densityBoost maps keyword density to a stepped boost. Density is the
// fraction of the query's meaningful tokens that occur in the record's
// field text.
func densityBoost(density float64) float64 {
	switch {
	case density >= 0.8:
		return 0.10
	case density >= 0.6:
		return 0.08
	case density >= 0.4:
		return 0.06
	case density >= 0.2:
		return 0.04
	default:
		return 0
	}
}

// keywordDensity computes the fraction of the query's meaningful tokens
// (stop words and short tokens already removed) found verbatim in the
// record's field text. Queries with no meaningful tokens have density 0.
func keywordDensity(queryKeywords []string, fieldTokens map[string]struct{}) float64 {
	if len(queryKeywords) == 0 {
		return 0
	}
	hits := 0
	for _, kw := range queryKeywords {
		if _, ok := fieldTokens[kw]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(queryKeywords))
}

// applyContextualWeighting turns a fused base score into the record's
// adjusted confidence. At most one category boost applies (exact wins
// over partial), then keyword density, then the exact-match bonus.
func applyContextualWeighting(fused float64, queryTokens map[string]struct{}, queryKeywords []string, rec *core.Record, fieldTokens map[string]struct{}, quality float64) float64 {
	var boost float64

	switch matchCategory(queryTokens, rec.Category) {
	case categoryExact:
		boost += categoryExactBoost
	case categoryPartial:
		boost += categoryPartialBoost
	}

	boost += densityBoost(keywordDensity(queryKeywords, fieldTokens))

	if fused > exactMatchThreshold {
		boost += exactMatchBoost
	}

	if quality < lowQualityThreshold {
		boost *= lowQualityDamping
	}

	return clamp01(fused + boost)
}
