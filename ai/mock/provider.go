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

package mock

import "github.com/poiesic/answerbank/ai"

// MockProvider is a test double for ai.AIProvider.
type MockProvider struct {
	adapter *MockResponseAdapter
}

// NewMockProvider creates a new mock provider with a default mock adapter.
//
// Returns ai.AIProvider interface for consistency with production
// constructors. Use GetMockAdapter() to access the concrete type for
// test assertions.
func NewMockProvider() ai.AIProvider {
	return &MockProvider{
		adapter: NewMockResponseAdapter(),
	}
}

// ResponseAdapter returns the mock adapter.
func (p *MockProvider) ResponseAdapter() ai.ResponseAdapter {
	return p.adapter
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockAdapter returns the underlying mock adapter for test assertions.
func (p *MockProvider) GetMockAdapter() *MockResponseAdapter {
	return p.adapter
}
