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

package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/poiesic/answerbank/ai"
	"github.com/poiesic/answerbank/core"
)

// ResponseAdapter implements ai.ResponseAdapter using OpenAI-compatible
// chat APIs.
type ResponseAdapter struct {
	client        llms.Model
	temperature   float64
	maxCandidates int
	logger        *slog.Logger
}

// newResponseAdapter is an internal constructor that returns the
// concrete type. Used by Provider to manage the instance.
func newResponseAdapter(config *ai.Config) (*ResponseAdapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that
	// don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken("none"),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &ResponseAdapter{
		client:        client,
		temperature:   config.Temperature,
		maxCandidates: config.MaxCandidates,
		logger:        slog.Default().With("component", "openai-adapter"),
	}, nil
}

// NewResponseAdapter creates a new response adapter using the provided
// configuration.
//
// Returns ai.ResponseAdapter interface to enforce abstraction.
func NewResponseAdapter(config *ai.Config) (ai.ResponseAdapter, error) {
	return newResponseAdapter(config)
}

// AdaptResponse rewrites the best matching approved answers into a reply
// to the user's question.
func (a *ResponseAdapter) AdaptResponse(ctx context.Context, query string, candidates []*core.MatchCandidate) (string, error) {
	if len(candidates) == 0 {
		return "", errors.New("no candidates to adapt")
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(a.buildUserPrompt(query, candidates)),
			},
		},
	}

	response, err := a.client.GenerateContent(ctx, content, llms.WithTemperature(a.temperature))
	if err != nil {
		a.logger.Error("failed to generate content", "err", err)
		return "", err
	}
	if len(response.Choices) < 1 {
		a.logger.Debug("no choices returned from model, falling back to best match")
		return candidates[0].Record.PrimaryText(), nil
	}

	reply := strings.TrimSpace(response.Choices[0].Content)
	if reply == "" {
		return candidates[0].Record.PrimaryText(), nil
	}
	return reply, nil
}

// buildUserPrompt lays out the question plus the approved answers the
// model may draw from, best match first.
func (a *ResponseAdapter) buildUserPrompt(query string, candidates []*core.MatchCandidate) string {
	limit := a.maxCandidates
	if limit > len(candidates) {
		limit = len(candidates)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Customer question: %s\n\nApproved answers, best match first:\n", query)
	for i := 0; i < limit; i++ {
		rec := candidates[i].Record
		fmt.Fprintf(&b, "\n%d. [%s] %s\n", i+1, rec.Category, rec.PrimaryText())
	}
	return b.String()
}
