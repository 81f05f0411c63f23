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

package storage

import (
	"context"

	"github.com/poiesic/answerbank/core"
)

// RecordRepository provides operations for managing answer records.
// Implementations must be thread-safe and support concurrent access.
type RecordRepository interface {
	// AddRecords adds one or more answer records to storage.
	// For records with ID=0, derives a content-based ID from the record's
	// question and primary text. Sets InsertedAt if not already set.
	// Preserves insertion order for later iteration.
	// Returns the records with IDs and timestamps populated.
	AddRecords(ctx context.Context, records ...*core.Record) ([]*core.Record, error)

	// UpdateRecords updates existing answer records in place.
	// Updates the UpdatedAt timestamp automatically; insertion order is
	// unaffected. Returns ErrNotFound if any record doesn't exist.
	UpdateRecords(ctx context.Context, records ...*core.Record) ([]*core.Record, error)

	// DeleteRecords removes answer records by their IDs.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteRecords(ctx context.Context, ids ...core.ID) error

	// GetRecord retrieves a single answer record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetRecord(ctx context.Context, id core.ID) (*core.Record, error)

	// GetRecords retrieves multiple answer records by their IDs.
	// Returns only the records that exist (no error for missing records).
	GetRecords(ctx context.Context, ids ...core.ID) ([]*core.Record, error)

	// AllRecords retrieves every stored record in insertion order.
	AllRecords(ctx context.Context) ([]*core.Record, error)

	// Snapshot materializes the full store as an immutable corpus in
	// insertion order, ready to hand to a searcher.
	Snapshot(ctx context.Context) (*core.Corpus, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}
