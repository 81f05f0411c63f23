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

// Package ai defines the response adaptation abstraction.
//
// Search returns ranked approved answers; a ResponseAdapter turns the
// best of them into a reply phrased for the user's actual question. The
// adapter is constrained to the approved answer text so the response
// stays factually grounded in the curated dataset.
//
// Sub-packages provide implementations:
//
//   - openai: OpenAI-compatible chat APIs (Ollama, LocalAI, vLLM, ...)
//   - mock: deterministic implementation for testing
package ai
