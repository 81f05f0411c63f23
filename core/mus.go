package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for the storage layer. The record schema is
// small and changes rarely, so these are maintained by hand rather than
// generated.

// IDMUS serializes record identifiers.
var IDMUS = idMUS{}

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

// RecordMUS serializes records. Timestamps are stored as Unix microseconds.
var RecordMUS = recordMUS{}

type recordMUS struct{}

func (recordMUS) Marshal(r Record, bs []byte) (n int) {
	n = IDMUS.Marshal(r.Id, bs)
	n += ord.String.Marshal(r.Category, bs[n:])
	n += ord.String.Marshal(r.Question, bs[n:])
	n += ord.String.Marshal(r.Response, bs[n:])
	n += ord.String.Marshal(r.AltResponse, bs[n:])
	n += ord.String.Marshal(r.SourceText, bs[n:])
	n += varint.PositiveInt.Marshal(len(r.Keywords), bs[n:])
	for _, kw := range r.Keywords {
		n += ord.String.Marshal(kw, bs[n:])
	}
	n += raw.Float64.Marshal(r.Quality, bs[n:])
	n += varint.Int64.Marshal(r.InsertedAt.UnixMicro(), bs[n:])
	n += varint.Int64.Marshal(r.UpdatedAt.UnixMicro(), bs[n:])
	return n
}

func (recordMUS) Unmarshal(bs []byte) (r Record, n int, err error) {
	var n1 int
	if r.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return r, n, err
	}
	if r.Category, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	if r.Question, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	if r.Response, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	if r.AltResponse, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	if r.SourceText, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	var count int
	if count, n1, err = varint.PositiveInt.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	if count > 0 {
		r.Keywords = make([]string, count)
		for i := 0; i < count; i++ {
			if r.Keywords[i], n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
				return r, n + n1, err
			}
			n += n1
		}
	}
	if r.Quality, n1, err = raw.Float64.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	var micros int64
	if micros, n1, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	r.InsertedAt = time.UnixMicro(micros).UTC()
	if micros, n1, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	r.UpdatedAt = time.UnixMicro(micros).UTC()
	return r, n, nil
}

func (recordMUS) Size(r Record) (size int) {
	size = IDMUS.Size(r.Id)
	size += ord.String.Size(r.Category)
	size += ord.String.Size(r.Question)
	size += ord.String.Size(r.Response)
	size += ord.String.Size(r.AltResponse)
	size += ord.String.Size(r.SourceText)
	size += varint.PositiveInt.Size(len(r.Keywords))
	for _, kw := range r.Keywords {
		size += ord.String.Size(kw)
	}
	size += raw.Float64.Size(r.Quality)
	size += varint.Int64.Size(r.InsertedAt.UnixMicro())
	size += varint.Int64.Size(r.UpdatedAt.UnixMicro())
	return size
}

func (m recordMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = m.Unmarshal(bs)
	return n, err
}
