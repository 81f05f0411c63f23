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


package normalize

import (
	"strings"
	"unicode"
)

// expansions maps lower-case tokens to their expanded forms. Lookup is
// token-exact (after trimming surrounding punctuation), never substring
// based, so expanding an already-expanded string is a no-op: no expansion
// output contains another expansion key as a whole token. That property
// keeps Normalize idempotent.
var expansions = map[string]string{
	"as":         "australian standard",
	"r-value":    "r value thermal resistance",
	"rvalue":     "r value thermal resistance",
	"diy":        "do it yourself",
	"hvac":       "heating ventilation air conditioning",
	"pvc":        "polyvinyl chloride",
	"eps":        "expanded polystyrene",
	"vic":        "victoria",
	"tas":        "tasmania",
	"melb":       "melbourne",
	"pm2":        "per square metre",
	"mould":      "mold moisture",
	"colorbond":  "steel metal roofing",
	"soundproof": "acoustic soundproofing noise",
}

// Normalize cleans free text for matching. Steps, in order: lower-case,
// expand known abbreviations and domain synonyms, strip every character
// that is not a letter, digit, or whitespace, and collapse runs of
// whitespace to single spaces.
//
// Normalize is total (empty in, empty out) and idempotent:
// Normalize(Normalize(s)) == Normalize(s) for any input.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lowered := strings.ToLower(text)

	// Token-exact abbreviation expansion. Each whitespace token is first
	// looked up whole with surrounding punctuation trimmed (so "DIY?" and
	// "r-value" expand), then split on interior punctuation with each part
	// looked up again. Splitting and expanding in the same pass is what
	// keeps Normalize idempotent: its output contains only clean,
	// already-expanded tokens.
	tokens := strings.Fields(lowered)
	expanded := make([]string, 0, len(tokens))
	for _, token := range tokens {
		key := strings.TrimFunc(token, isPunct)
		if replacement, ok := expansions[key]; ok {
			expanded = append(expanded, replacement)
			continue
		}
		for _, part := range strings.FieldsFunc(key, isPunct) {
			if replacement, ok := expansions[part]; ok {
				expanded = append(expanded, replacement)
			} else {
				expanded = append(expanded, part)
			}
		}
	}

	return strings.Join(expanded, " ")
}

func isPunct(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// Tokens returns the whitespace-separated tokens of the normalized text.
func Tokens(text string) []string {
	return strings.Fields(Normalize(text))
}
