package search

import "strings"

// semanticGroups map a category to the query vocabulary that signals it.
// They drive the partial category boost: a query that mentions any term
// in a record's category group is treated as topically adjacent even
// when it never names the category itself.
var semanticGroups = map[string][]string{
	"safety":     {"safe", "safety", "toxic", "health", "fumes", "breathing", "pets", "dogs", "children"},
	"install":    {"install", "installation", "apply", "application", "spray", "diy", "yourself"},
	"thermal":    {"thermal", "heat", "insulation", "temperature", "energy", "warm", "cold", "resistance"},
	"moisture":   {"moisture", "condensation", "damp", "water", "waterproof", "humidity", "mould", "mold"},
	"fire":       {"fire", "flame", "burn", "combustion", "flammable", "ignition"},
	"cost":       {"cost", "price", "expensive", "cheap", "quote", "budget", "afford"},
	"appearance": {"look", "looks", "finish", "colour", "color", "paint", "surface", "appearance"},
	"pests":      {"pest", "pests", "rodent", "rodents", "mice", "rats", "insects", "vermin"},
	"acoustic":   {"sound", "noise", "acoustic", "soundproof", "soundproofing", "quiet", "decibel"},
}

// categoryMatch reports how strongly the query's tokens relate to a
// record category. Exact means every token of the category name appears
// in the query; partial means the query mentions any term from the
// category's semantic group.
type categoryMatch int

const (
	categoryNone categoryMatch = iota
	categoryPartial
	categoryExact
)

// matchCategory classifies the query tokens against a record category.
func matchCategory(queryTokens map[string]struct{}, category string) categoryMatch {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" || len(queryTokens) == 0 {
		return categoryNone
	}

	nameTokens := strings.Fields(category)
	if len(nameTokens) > 0 {
		exact := true
		for _, t := range nameTokens {
			if _, ok := queryTokens[t]; !ok {
				exact = false
				break
			}
		}
		if exact {
			return categoryExact
		}
	}

	for _, term := range semanticGroups[category] {
		if _, ok := queryTokens[term]; ok {
			return categoryPartial
		}
	}
	return categoryNone
}
