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


// Package search implements fuzzy matching of free-text queries against a
// corpus of curated response records.
//
// The Searcher type runs a deterministic scoring pipeline per record:
//   - Multi-algorithm similarity fusion (token-set, partial, token-sort,
//     and plain ratio) with query-length-dependent weights, taking the
//     best-matching field of each record
//   - Contextual boosts for category alignment, keyword density, and
//     near-literal matches, with a penalty for low-quality content
//   - An independent, query-agnostic content-quality score per record
//
// Candidates above the configured confidence threshold are ranked by a
// configurable confidence/quality blend. Scoring fans out across a worker
// pool, one task per record; the final sort restores a deterministic
// order regardless of execution interleaving.
package search
