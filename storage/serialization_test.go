package storage

import (
	"testing"
	"time"

	"github.com/poiesic/answerbank/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("is the foam safe")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.Error(t, err)
}

func TestMarshalUnmarshalRecord(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	tests := []struct {
		name   string
		record *core.Record
	}{
		{
			name: "full record",
			record: &core.Record{
				Id:          core.ID(7),
				Category:    "thermal",
				Question:    "What is the R-value?",
				Response:    "Around R6 per inch for closed-cell foam.",
				AltResponse: "Roughly R6 per inch.",
				SourceText:  "Customer asked about thermal performance.",
				Keywords:    []string{"thermal", "value", "inch"},
				Quality:     0.72,
				InsertedAt:  now,
				UpdatedAt:   now,
			},
		},
		{
			name:   "minimal record",
			record: &core.Record{Id: core.ID(1), Response: "Yes."},
		},
		{
			name: "no keywords",
			record: &core.Record{
				Id:         core.ID(2),
				Category:   "safety",
				Question:   "Is it safe for pets?",
				Response:   "Yes, once cured.",
				InsertedAt: now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalRecord(tt.record)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalRecord(data)
			require.NoError(t, err)

			assert.Equal(t, tt.record.Id, decoded.Id)
			assert.Equal(t, tt.record.Category, decoded.Category)
			assert.Equal(t, tt.record.Question, decoded.Question)
			assert.Equal(t, tt.record.Response, decoded.Response)
			assert.Equal(t, tt.record.AltResponse, decoded.AltResponse)
			assert.Equal(t, tt.record.SourceText, decoded.SourceText)
			assert.Equal(t, tt.record.Keywords, decoded.Keywords)
			assert.InDelta(t, tt.record.Quality, decoded.Quality, 1e-12)
			assert.True(t, tt.record.InsertedAt.Equal(decoded.InsertedAt))
			assert.True(t, tt.record.UpdatedAt.Equal(decoded.UpdatedAt))
		})
	}
}

func TestUnmarshalRecord_Invalid(t *testing.T) {
	_, err := UnmarshalRecord([]byte{0xff})
	assert.Error(t, err)
}
