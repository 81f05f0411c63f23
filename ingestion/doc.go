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

// Package ingestion loads curated question/answer datasets into the
// record store.
//
// The pipeline parses the dataset JSON export, converts items into
// answer records, derives search keywords, and computes quality scores
// on a worker pool before persisting. Malformed items are logged and
// skipped so a single bad entry never fails a batch.
package ingestion
