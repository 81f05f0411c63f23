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
	"regexp"
	"strings"

	"github.com/poiesic/answerbank/core"
)

// Quality scoring rewards records whose answer text carries domain
// substance: technical vocabulary, cited standards, professional framing,
// regional specificity, and depth. Scores are intrinsic to the record and
// independent of any query, so they are computed once per record and
// cached by the Searcher.
//
// Scoring runs over the lowercased raw primary text, not the normalized
// form: abbreviation expansion would rewrite the very terms the tables
// look for.

const (
	qualityBase = 0.30

	qualityTechnicalCap    = 0.25
	qualityStandardsCap    = 0.20
	qualityProfessionalCap = 0.10
	qualityLocationCap     = 0.05
	qualityCategoryCap     = 0.05
	qualityDepthCap        = 0.10
)

// highValueTerms are worth 0.04 each toward the technical component.
var highValueTerms = []string{
	"closed-cell",
	"closed cell",
	"r-value",
	"thermal resistance",
	"vapour barrier",
	"vapor barrier",
	"air seal",
	"condensation control",
	"thermal bridging",
	"fire retardant",
	"acoustic insulation",
}

// standardTechTerms are worth 0.02 each toward the technical component.
var standardTechTerms = []string{
	"insulation",
	"polyurethane",
	"spray foam",
	"substrate",
	"membrane",
	"cavity",
	"stud",
	"joist",
	"rafter",
	"cladding",
	"moisture",
	"thermal",
	"density",
	"adhesion",
	"curing",
	"expansion",
	"sealant",
	"ventilation",
}

// Cited standards are tiered by specificity. A full numbered citation is
// worth more than a named code, which is worth more than a generic
// compliance mention.
var (
	standardsPattern = regexp.MustCompile(`\bas\s*[0-9]{3,4}(?:\.[0-9]+)?\b`)

	namedStandards = []string{
		"as/nzs",
		"building code of australia",
		"ncc",
		"bca",
		"codemark",
	}

	complianceTerms = []string{
		"compliant",
		"compliance",
		"certified",
		"certification",
		"accredited",
		"tested to",
	}
)

// Professional framing terms, tiered.
var (
	strongProfessionalTerms = []string{
		"licensed installer",
		"qualified installer",
		"trained technician",
		"warranty",
		"site assessment",
	}
	weakProfessionalTerms = []string{
		"professional",
		"installer",
		"installation team",
		"recommend",
		"inspection",
		"quote",
	}
)

// Regional terms, tiered. Full names outrank abbreviations.
var (
	strongLocationTerms = []string{
		"victoria",
		"tasmania",
		"melbourne",
		"gippsland",
		"mornington peninsula",
	}
	weakLocationTerms = []string{
		"vic",
		"tas",
		"regional",
		"metro",
		"local",
	}
)

// categoryTerms reward records whose text reinforces their own category.
// Each hit is worth 0.01 up to the category cap.
var categoryTerms = map[string][]string{
	"safety":     {"safe", "non-toxic", "health", "fumes", "off-gassing", "standards"},
	"thermal":    {"r-value", "thermal", "heat", "temperature", "energy"},
	"moisture":   {"moisture", "condensation", "damp", "waterproof", "vapour"},
	"acoustic":   {"sound", "noise", "acoustic", "decibel", "soundproof"},
	"fire":       {"fire", "flame", "combustion", "retardant", "ignition"},
	"pests":      {"rodent", "vermin", "pest", "insect", "mice"},
	"cost":       {"cost", "price", "quote", "investment", "value"},
	"install":    {"install", "application", "spray", "preparation", "access"},
	"appearance": {"finish", "colour", "surface", "trim", "coat"},
}

// ScoreQuality computes the intrinsic quality score of a record in [0,1].
// Records with no primary answer text score 0.
func ScoreQuality(rec *core.Record) float64 {
	primary := rec.PrimaryText()
	if strings.TrimSpace(primary) == "" {
		return 0
	}
	text := strings.ToLower(primary)

	score := qualityBase
	score += technicalComponent(text)
	score += standardsComponent(text)
	score += tieredComponent(text, strongProfessionalTerms, weakProfessionalTerms, 0.03, 0.01, qualityProfessionalCap)
	score += tieredComponent(text, strongLocationTerms, weakLocationTerms, 0.02, 0.01, qualityLocationCap)
	score += categoryComponent(text, rec.Category)
	score += depthComponent(text)

	return clamp01(score)
}

func technicalComponent(text string) float64 {
	var c float64
	for _, term := range highValueTerms {
		if strings.Contains(text, term) {
			c += 0.04
		}
	}
	for _, term := range standardTechTerms {
		if strings.Contains(text, term) {
			c += 0.02
		}
	}
	return min(c, qualityTechnicalCap)
}

func standardsComponent(text string) float64 {
	var c float64
	c += 0.08 * float64(len(standardsPattern.FindAllString(text, -1)))
	for _, term := range namedStandards {
		if strings.Contains(text, term) {
			c += 0.05
		}
	}
	for _, term := range complianceTerms {
		if strings.Contains(text, term) {
			c += 0.03
		}
	}
	return min(c, qualityStandardsCap)
}

func tieredComponent(text string, strong, weak []string, strongWeight, weakWeight, limit float64) float64 {
	var c float64
	for _, term := range strong {
		if strings.Contains(text, term) {
			c += strongWeight
		}
	}
	for _, term := range weak {
		if strings.Contains(text, term) {
			c += weakWeight
		}
	}
	return min(c, limit)
}

func categoryComponent(text, category string) float64 {
	terms, ok := categoryTerms[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		return 0
	}
	var c float64
	for _, term := range terms {
		if strings.Contains(text, term) {
			c += 0.01
		}
	}
	return min(c, qualityCategoryCap)
}

// depthComponent rewards answer length in character tiers. Very short
// answers still earn a token amount so depth never zeroes out a record
// with a real answer.
func depthComponent(text string) float64 {
	n := len(text)
	switch {
	case n > 2000:
		return 0.10
	case n > 1000:
		return 0.08
	case n > 500:
		return 0.06
	case n > 200:
		return 0.04
	case n > 100:
		return 0.02
	default:
		return 0.01
	}
}
