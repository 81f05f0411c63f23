package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Field identifies one of the searchable text fields of a Record.
type Field int

const (
	// FieldQuestion is the generated question associated with a record.
	FieldQuestion Field = iota + 1
	// FieldResponse is the primary curated response.
	FieldResponse
	// FieldAltResponse is the alternative response text.
	FieldAltResponse
	// FieldSourceText is the raw source text the response was derived from.
	FieldSourceText
)

// String returns the field name as used in the source dataset.
func (f Field) String() string {
	switch f {
	case FieldQuestion:
		return "question"
	case FieldResponse:
		return "response"
	case FieldAltResponse:
		return "alt_response"
	case FieldSourceText:
		return "source_text"
	default:
		return "unknown"
	}
}

// Fields lists the searchable fields in their canonical order: generated
// question first, then the primary response, then the fallbacks.
var Fields = []Field{FieldQuestion, FieldResponse, FieldAltResponse, FieldSourceText}

// Record is one curated response entry in the corpus.
// Records are immutable once a corpus snapshot has been built; the engine
// never mutates them. Any of the four text fields may be empty.
type Record struct {
	Id          ID
	Category    string
	Question    string   // Generated question (may be empty)
	Response    string   // Primary curated response
	AltResponse string   // Alternative response text
	SourceText  string   // Source text the response was derived from
	Keywords    []string // Derived keyword tokens (populated at ingestion)
	Quality     float64  // Cached content-quality score in [0,1] (populated at ingestion)
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// FieldText returns the raw text of the given field.
func (r *Record) FieldText(f Field) string {
	switch f {
	case FieldQuestion:
		return r.Question
	case FieldResponse:
		return r.Response
	case FieldAltResponse:
		return r.AltResponse
	case FieldSourceText:
		return r.SourceText
	default:
		return ""
	}
}

// PrimaryText returns the record's main content: the first non-empty of
// the response, alternative response, and source text fields.
func (r *Record) PrimaryText() string {
	for _, f := range []Field{FieldResponse, FieldAltResponse, FieldSourceText} {
		if text := r.FieldText(f); text != "" {
			return text
		}
	}
	return ""
}

// FieldScore holds the raw per-algorithm similarity sub-scores for one
// query/field pair, plus their weighted fusion. All values are in [0,1].
type FieldScore struct {
	Field     Field
	TokenSet  float64
	Partial   float64
	TokenSort float64
	Ratio     float64
	Fused     float64
}

// MatchCandidate is produced per (query, record) pair during a search.
// Confidence is the contextually adjusted fused score, Quality the record's
// content-quality score, and FinalScore their configured blend.
// Candidates are transient: they live only for the duration of one query
// evaluation and are never persisted.
type MatchCandidate struct {
	Record      *Record
	FieldScores []FieldScore
	Confidence  float64
	Quality     float64
	FinalScore  float64
}
