package badger

import (
	"encoding/binary"

	"github.com/poiesic/answerbank/core"
)

// Key prefixes for different data types
const (
	recordPrefix   = "ansrec"
	recordIDPrefix = "ansidx"
	recordSeqName  = "ansrecseq"
)

// makeRecordSeqKey generates the primary key for a record by its insertion
// sequence number. Sequence numbers are written in BigEndian order so
// lexicographic iteration walks records in insertion order.
func makeRecordSeqKey(seq uint64) []byte {
	prefix := recordPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], seq)
	return buf
}

// makeRecordIDKey generates the index key mapping a record ID to its
// insertion sequence number.
func makeRecordIDKey(id core.ID) []byte {
	prefix := recordIDPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// marshalSeq encodes a sequence number for storage in the ID index.
func marshalSeq(seq uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, seq)
	return buf
}

// unmarshalSeq decodes a sequence number from the ID index.
func unmarshalSeq(data []byte) (uint64, bool) {
	if len(data) != 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(data), true
}
