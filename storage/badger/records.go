package badger

import (
	"context"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/answerbank/core"
	"github.com/poiesic/answerbank/storage"
)

// RecordRepository implements storage.RecordRepository for BadgerDB.
type RecordRepository struct {
	backend *Backend
	seq     *badger.Sequence
}

var _ storage.RecordRepository = (*RecordRepository)(nil)

// NewRepository opens a record repository backed by a database at path.
// Caller must close both the repository and the backend when done.
func NewRepository(path string) (storage.RecordRepository, *Backend, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, nil, err
	}

	repo, err := NewRecordRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}

	return repo, backend, nil
}

// NewRecordRepository creates a new RecordRepository.
func NewRecordRepository(backend *Backend) (*RecordRepository, error) {
	seq, err := backend.GetSequence(recordSeqName)
	if err != nil {
		return nil, err
	}

	return &RecordRepository{
		backend: backend,
		seq:     seq,
	}, nil
}

// Close releases the insertion sequence.
func (r *RecordRepository) Close() error {
	return r.seq.Release()
}

// WithTransaction delegates to the backend.
func (r *RecordRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddRecords adds one or more answer records to storage.
func (r *RecordRepository) AddRecords(ctx context.Context, records ...*core.Record) ([]*core.Record, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			if err := core.ValidateRecord(record); err != nil {
				return err
			}

			if record.Id == 0 {
				record.Id = contentID(record)
			}

			// Reject IDs we have already stored
			idKey := makeRecordIDKey(record.Id)
			if _, err := tx.Get(idKey); err == nil {
				return storage.ErrDuplicateKey
			} else if err != badger.ErrKeyNotFound {
				return err
			}

			if record.InsertedAt.IsZero() {
				record.InsertedAt = time.Now().UTC()
			}
			record.UpdatedAt = record.InsertedAt

			seq, err := r.seq.Next()
			if err != nil {
				return err
			}

			if err := tx.Set(makeRecordSeqKey(seq), storage.MarshalRecord(record)); err != nil {
				return err
			}
			if err := tx.Set(idKey, marshalSeq(seq)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// UpdateRecords updates existing answer records. The record keeps its
// insertion sequence slot, so updates never reorder the store.
func (r *RecordRepository) UpdateRecords(ctx context.Context, records ...*core.Record) ([]*core.Record, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			seq, err := r.lookupSeq(tx, record.Id)
			if err != nil {
				return err
			}

			record.UpdatedAt = time.Now().UTC()

			if err := tx.Set(makeRecordSeqKey(seq), storage.MarshalRecord(record)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// DeleteRecords removes answer records by their IDs.
func (r *RecordRepository) DeleteRecords(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			seq, err := r.lookupSeq(tx, id)
			if err != nil {
				return err
			}
			if err := tx.Delete(makeRecordSeqKey(seq)); err != nil {
				return err
			}
			if err := tx.Delete(makeRecordIDKey(id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetRecord retrieves a single answer record by ID.
func (r *RecordRepository) GetRecord(ctx context.Context, id core.ID) (*core.Record, error) {
	var result *core.Record
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		seq, err := r.lookupSeq(tx, id)
		if err != nil {
			return err
		}
		result, err = r.readRecord(tx, makeRecordSeqKey(seq))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetRecords retrieves multiple answer records by their IDs.
func (r *RecordRepository) GetRecords(ctx context.Context, ids ...core.ID) ([]*core.Record, error) {
	var result []*core.Record
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			seq, err := r.lookupSeq(tx, id)
			if err == storage.ErrNotFound {
				continue
			}
			if err != nil {
				return err
			}
			record, err := r.readRecord(tx, makeRecordSeqKey(seq))
			if err != nil {
				return err
			}
			if record != nil {
				result = append(result, record)
			}
		}
		return nil
	}, false)
	return result, err
}

// AllRecords retrieves every stored record in insertion order.
func (r *RecordRepository) AllRecords(ctx context.Context) ([]*core.Record, error) {
	var results []*core.Record
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(recordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *core.Record
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
			}
		}
		return nil
	}, false)

	return results, err
}

// Snapshot materializes the store as an immutable corpus in insertion order.
func (r *RecordRepository) Snapshot(ctx context.Context) (*core.Corpus, error) {
	records, err := r.AllRecords(ctx)
	if err != nil {
		return nil, err
	}
	return core.NewCorpus(records...)
}

// lookupSeq resolves a record ID to its insertion sequence number.
func (r *RecordRepository) lookupSeq(tx *badger.Txn, id core.ID) (uint64, error) {
	item, err := tx.Get(makeRecordIDKey(id))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return 0, storage.ErrNotFound
		}
		return 0, err
	}

	var seq uint64
	err = item.Value(func(val []byte) error {
		var ok bool
		seq, ok = unmarshalSeq(val)
		if !ok {
			return storage.ErrSerializationFailed
		}
		return nil
	})
	return seq, err
}

// readRecord reads a record from the transaction.
func (r *RecordRepository) readRecord(tx *badger.Txn, key []byte) (*core.Record, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.Record
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		record, unmarshalErr = storage.UnmarshalRecord(val)
		return unmarshalErr
	})
	return record, err
}

// contentID derives a stable ID from the record's question and primary
// answer text, so re-ingesting the same dataset yields the same IDs.
func contentID(record *core.Record) core.ID {
	return core.IDFromContent(strings.Join([]string{record.Question, record.PrimaryText()}, "\n"))
}
