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


package core

import "fmt"

// ValidateRecord validates a Record according to domain rules.
//
// A record with all four text fields empty is deliberately valid: it can
// never be matched (its fused confidence is always 0), but it must not
// break corpus loading or the scoring pipeline.
//
// NOT validated (populated at ingestion):
//   - Keywords (derived tokens, may be empty)
//   - Quality (0 until the quality pass has run)
//   - ID (0 is valid before content IDs are assigned)
func ValidateRecord(record *Record) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}
	if err := ValidateScore(record.Quality); err != nil {
		return fmt.Errorf("%w: quality: %w", ErrInvalidRecord, err)
	}
	return nil
}

// ValidateScore checks that a score value lies in [0,1].
func ValidateScore(score float64) error {
	if score < 0 || score > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidScore, score)
	}
	return nil
}
