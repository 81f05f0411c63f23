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
	"strings"

	"github.com/poiesic/answerbank/core"
	"github.com/poiesic/answerbank/normalize"
)

// fieldText is one searchable field of a record after normalization.
// Fields whose raw text is empty are dropped before scoring.
type fieldText struct {
	field core.Field
	text  string
}

// extractFields returns the record's non-empty fields in canonical order,
// each normalized for fuzzy comparison. A record with no text in any field
// yields an empty slice and can never match.
func extractFields(rec *core.Record) []fieldText {
	fields := make([]fieldText, 0, len(core.Fields))
	for _, f := range core.Fields {
		raw := rec.FieldText(f)
		if raw == "" {
			continue
		}
		norm := normalize.Normalize(raw)
		if norm == "" {
			continue
		}
		fields = append(fields, fieldText{field: f, text: norm})
	}
	return fields
}

// fieldTokens collects the distinct tokens across a record's normalized
// fields, for keyword-density checks against the query.
func fieldTokens(fields []fieldText) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, ft := range fields {
		for _, tok := range strings.Fields(ft.text) {
			tokens[tok] = struct{}{}
		}
	}
	return tokens
}
