package mock

import (
	"context"
	"errors"
	"sync"

	"github.com/poiesic/answerbank/ai"
	"github.com/poiesic/answerbank/core"
)

// MockResponseAdapter is a test double for ai.ResponseAdapter. By
// default it echoes the best candidate's primary text, which is also
// the production fallback behavior.
type MockResponseAdapter struct {
	mu        sync.Mutex
	callCount int

	// AdaptFunc overrides the default behavior when set.
	AdaptFunc func(ctx context.Context, query string, candidates []*core.MatchCandidate) (string, error)
}

var _ ai.ResponseAdapter = (*MockResponseAdapter)(nil)

// NewMockResponseAdapter creates a new mock adapter with default behavior.
func NewMockResponseAdapter() *MockResponseAdapter {
	return &MockResponseAdapter{}
}

// AdaptResponse returns the best candidate's primary text, or delegates
// to AdaptFunc when set.
func (m *MockResponseAdapter) AdaptResponse(ctx context.Context, query string, candidates []*core.MatchCandidate) (string, error) {
	m.mu.Lock()
	m.callCount++
	fn := m.AdaptFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, query, candidates)
	}
	if len(candidates) == 0 {
		return "", errors.New("no candidates to adapt")
	}
	return candidates[0].Record.PrimaryText(), nil
}

// CallCount returns how many times AdaptResponse has been called.
func (m *MockResponseAdapter) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}
