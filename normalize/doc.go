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


// Package normalize provides deterministic text normalization for the
// matching engine: case folding, abbreviation and domain-synonym
// expansion, punctuation stripping, whitespace collapsing, and keyword
// tokenization with stop-word filtering.
//
// All functions are pure; Normalize is total and idempotent, which the
// scoring pipeline relies on to score already-normalized text without
// drift.
package normalize
