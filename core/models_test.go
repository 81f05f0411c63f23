package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := IDFromContent("spray foam insulation")
		b := IDFromContent("spray foam insulation")
		assert.Equal(t, a, b)
	})

	t.Run("different content different id", func(t *testing.T) {
		a := IDFromContent("thermal performance")
		b := IDFromContent("moisture resistance")
		assert.NotEqual(t, a, b)
	})

	t.Run("empty content", func(t *testing.T) {
		// Must not panic; empty content still hashes to a stable ID.
		a := IDFromContent("")
		b := IDFromContent("")
		assert.Equal(t, a, b)
	})
}

func TestRecordFieldText(t *testing.T) {
	record := &Record{
		Question:    "is it waterproof",
		Response:    "the foam forms a moisture barrier",
		AltResponse: "acts as a vapour barrier",
		SourceText:  "customer asked about water",
	}

	assert.Equal(t, "is it waterproof", record.FieldText(FieldQuestion))
	assert.Equal(t, "the foam forms a moisture barrier", record.FieldText(FieldResponse))
	assert.Equal(t, "acts as a vapour barrier", record.FieldText(FieldAltResponse))
	assert.Equal(t, "customer asked about water", record.FieldText(FieldSourceText))
	assert.Equal(t, "", record.FieldText(Field(99)))
}

func TestRecordPrimaryText(t *testing.T) {
	t.Run("prefers response", func(t *testing.T) {
		record := &Record{Response: "primary", AltResponse: "alt", SourceText: "source"}
		assert.Equal(t, "primary", record.PrimaryText())
	})

	t.Run("falls back to alt response", func(t *testing.T) {
		record := &Record{AltResponse: "alt", SourceText: "source"}
		assert.Equal(t, "alt", record.PrimaryText())
	})

	t.Run("falls back to source text", func(t *testing.T) {
		record := &Record{SourceText: "source"}
		assert.Equal(t, "source", record.PrimaryText())
	})

	t.Run("empty record", func(t *testing.T) {
		record := &Record{Question: "only a question"}
		assert.Equal(t, "", record.PrimaryText())
	})
}

func TestCorpus(t *testing.T) {
	t.Run("preserves insertion order", func(t *testing.T) {
		records := []*Record{
			{Id: 3, Response: "third"},
			{Id: 1, Response: "first"},
			{Id: 2, Response: "second"},
		}
		corpus, err := NewCorpus(records...)
		require.NoError(t, err)

		assert.Equal(t, 3, corpus.Len())
		got := corpus.Records()
		require.Len(t, got, 3)
		assert.Equal(t, ID(3), got[0].Id)
		assert.Equal(t, ID(1), got[1].Id)
		assert.Equal(t, ID(2), got[2].Id)

		pos, ok := corpus.Position(1)
		require.True(t, ok)
		assert.Equal(t, 1, pos)
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		_, err := NewCorpus(&Record{Id: 7}, &Record{Id: 7})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateRecordID)
	})

	t.Run("rejects nil records", func(t *testing.T) {
		_, err := NewCorpus(&Record{Id: 1}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRecord)
	})

	t.Run("lookup by id", func(t *testing.T) {
		corpus, err := NewCorpus(&Record{Id: 10, Response: "found"})
		require.NoError(t, err)

		record, ok := corpus.Get(10)
		require.True(t, ok)
		assert.Equal(t, "found", record.Response)

		_, ok = corpus.Get(11)
		assert.False(t, ok)
	})
}
