package ai

import (
	"context"

	"github.com/poiesic/answerbank/core"
)

// ResponseAdapter rewrites a matched answer into a reply tailored to the
// user's question. Adapters must ground their output in the supplied
// candidates: they rephrase and combine approved answer text, they do
// not invent new claims. Implementations must be thread-safe.
type ResponseAdapter interface {
	// AdaptResponse produces a reply to the query from the ranked match
	// candidates, best match first. Returns an error if no candidates
	// are provided or generation fails.
	AdaptResponse(ctx context.Context, query string, candidates []*core.MatchCandidate) (string, error)
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management.
type AIProvider interface {
	// ResponseAdapter returns the response adaptation service.
	// The returned ResponseAdapter is safe for concurrent use.
	ResponseAdapter() ResponseAdapter

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
