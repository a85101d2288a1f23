package lfreq_test

import (
	"testing"

	"github.com/marinedata/survtab/pkg/lfreq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPairsRawAndRaised(t *testing.T) {
	sample := lfreq.Sample{
		ID:         "S-17",
		SpeciesID:  "sp-1",
		RawCode:    "0.5,7.5,1,2,1",
		RaisedCode: "0.5,7.5,4,8,4",
	}

	rows, err := lfreq.Expand(sample)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	for i, row := range rows {
		assert.Equal(t, "S-17", row.SampleID)
		assert.Equal(t, "sp-1", row.SpeciesID)
		require.True(t, row.RawLength.Valid)
		require.True(t, row.RaisedFreq.Valid)
		assert.Equal(t, row.RawLength.Float64, row.RaisedLength.Float64, "row %d", i)
		assert.Equal(t, row.RawFreq.Float64*4, row.RaisedFreq.Float64, "row %d", i)
	}
}

func TestExpandNoRawCode(t *testing.T) {
	tests := []struct {
		name   string
		sample lfreq.Sample
	}{
		{
			name:   "both codes missing",
			sample: lfreq.Sample{ID: "S-1", SpeciesID: "sp-9"},
		},
		{
			// The raised code is not consulted when raw is missing,
			// even if it would not decode.
			name: "raised code present but malformed",
			sample: lfreq.Sample{
				ID: "S-2", SpeciesID: "sp-9", RaisedCode: "not,a,code",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := lfreq.Expand(tt.sample)
			require.NoError(t, err)
			require.Len(t, rows, 1)

			row := rows[0]
			assert.Equal(t, tt.sample.ID, row.SampleID)
			assert.Equal(t, tt.sample.SpeciesID, row.SpeciesID)
			assert.False(t, row.RawLength.Valid)
			assert.False(t, row.RawFreq.Valid)
			assert.False(t, row.RaisedLength.Valid)
			assert.False(t, row.RaisedFreq.Valid)
		})
	}
}

func TestExpandLengthMismatch(t *testing.T) {
	// Raw decodes to 3 classes, raised to 2.
	sample := lfreq.Sample{
		ID:         "S-3",
		SpeciesID:  "sp-2",
		RawCode:    "1,10,1,2,3",
		RaisedCode: "1,10,5,5",
	}

	rows, err := lfreq.Expand(sample)
	require.Error(t, err)
	assert.ErrorIs(t, err, lfreq.ErrMismatch)
	assert.Empty(t, rows)
}

func TestExpandParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		sample lfreq.Sample
	}{
		{
			name: "malformed raw code",
			sample: lfreq.Sample{
				ID: "S-4", RawCode: "bad,10,1", RaisedCode: "1,10,1",
			},
		},
		{
			name: "malformed raised code",
			sample: lfreq.Sample{
				ID: "S-5", RawCode: "1,10,1", RaisedCode: "1,bad,1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := lfreq.Expand(tt.sample)
			require.Error(t, err)
			assert.ErrorIs(t, err, lfreq.ErrParse)
			assert.Empty(t, rows)
		})
	}
}
