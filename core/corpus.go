package core

import "fmt"

// Corpus is an immutable, ordered collection of records. It is built once
// per process lifetime (or explicit reload) and then shared read-only;
// insertion order is preserved and used as the final ranking tie-break.
type Corpus struct {
	records  []*Record
	position map[ID]int
}

// NewCorpus builds a corpus from records in their given order.
// Record identifiers must be unique; duplicates are rejected.
func NewCorpus(records ...*Record) (*Corpus, error) {
	position := make(map[ID]int, len(records))
	for i, record := range records {
		if record == nil {
			return nil, fmt.Errorf("%w: record at position %d is nil", ErrInvalidRecord, i)
		}
		if _, ok := position[record.Id]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateRecordID, record.Id)
		}
		position[record.Id] = i
	}
	return &Corpus{
		records:  records,
		position: position,
	}, nil
}

// Len returns the number of records in the corpus.
func (c *Corpus) Len() int {
	return len(c.records)
}

// Records returns the records in insertion order.
// The returned slice is shared and must not be modified.
func (c *Corpus) Records() []*Record {
	return c.records
}

// Get returns the record with the given ID, if present.
func (c *Corpus) Get(id ID) (*Record, bool) {
	i, ok := c.position[id]
	if !ok {
		return nil, false
	}
	return c.records[i], true
}

// Position returns the insertion position of the record with the given ID.
func (c *Corpus) Position(id ID) (int, bool) {
	i, ok := c.position[id]
	return i, ok
}
