package normalize

// Stop words filtered out when deriving keyword tokens.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "were": true, "to": true, "of": true, "and": true, "or": true,
	"in": true, "that": true, "have": true, "it": true, "for": true, "not": true,
	"on": true, "with": true, "you": true, "do": true, "at": true, "this": true,
	"but": true, "by": true, "from": true, "can": true, "will": true, "would": true,
	"there": true, "what": true, "how": true, "does": true,
}

// IsStopWord reports whether the token is a stop word.
func IsStopWord(token string) bool {
	return stopWords[token]
}

// Keywords normalizes text and returns its meaningful tokens: stop words
// and tokens shorter than three characters are dropped, duplicates are
// removed, and first-occurrence order is preserved.
func Keywords(text string) []string {
	tokens := Tokens(text)
	seen := make(map[string]bool, len(tokens))
	keywords := make([]string, 0, len(tokens))

	for _, token := range tokens {
		if len(token) <= 2 || stopWords[token] || seen[token] {
			continue
		}
		seen[token] = true
		keywords = append(keywords, token)
	}

	return keywords
}
