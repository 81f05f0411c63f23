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

// Package storage provides the storage abstraction layer for answerbank.
//
// It defines the repository interface that decouples record persistence
// from the search engine. Public constructors in backend packages return
// the storage.RecordRepository interface so consumers never couple to a
// specific backend:
//
//	repo, err := badger.NewRepository("/path/to/db")
//
// Use in tests with in-memory storage:
//
//	repo, err := badger.NewMemoryRepository()
//
// The repository preserves insertion order: AllRecords and Snapshot
// return records in the order they were first added, which is what makes
// search tie-breaking reproducible across process restarts.
//
// All repository implementations must be thread-safe, and all methods
// accept a context.Context for cancellation.
package storage
