package lfreq_test

import (
	"testing"

	"github.com/marinedata/survtab/pkg/lfreq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePlain(t *testing.T) {
	tests := []struct {
		name string
		code string
		want []lfreq.Point
	}{
		{
			name: "consecutive classes, no drops",
			code: "0.5,7.5,1,2,1",
			want: []lfreq.Point{{7.5, 1}, {8.0, 2}, {8.5, 1}},
		},
		{
			name: "zero-frequency classes dropped",
			code: "1,10,0,5,0",
			want: []lfreq.Point{{11, 5}},
		},
		{
			name: "no frequency tokens at all",
			code: "1,10",
			want: []lfreq.Point{},
		},
		{
			name: "non-integer minimum size",
			code: "0.5,12.25,3",
			want: []lfreq.Point{{12.25, 3}},
		},
		{
			name: "tokens with surrounding spaces",
			code: "1, 10, 2, 3",
			want: []lfreq.Point{{10, 2}, {11, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lfreq.Decode(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodePlusGroup(t *testing.T) {
	tests := []struct {
		name string
		code string
		want []lfreq.Point
	}{
		{
			name: "all intermediate classes implicit zero",
			code: "0.5,7.5,1,+10,2",
			want: []lfreq.Point{{10.0, 2}},
		},
		{
			name: "leading plain run before plus marker",
			code: "1,1,5,6,+4,3",
			want: []lfreq.Point{{1, 5}, {2, 6}, {4, 3}},
		},
		{
			// A lone token before the first plus marker is discarded,
			// a run of two or more is kept as class frequencies.
			name: "lone leading token discarded",
			code: "1,10,5,+12,2",
			want: []lfreq.Point{{12, 2}},
		},
		{
			name: "two plus markers",
			code: "1,10,+12,4,+14,9",
			want: []lfreq.Point{{12, 4}, {14, 9}},
		},
		{
			name: "plus marker at minimum size",
			code: "1,10,+10,7",
			want: []lfreq.Point{{10, 7}},
		},
		{
			name: "plus size several classes beyond minimum",
			code: "0.5,2.0,+3.5,5",
			want: []lfreq.Point{{3.5, 5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lfreq.Decode(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"non-numeric width", "x,10,1"},
		{"non-numeric minimum size", "1,ten,1"},
		{"non-numeric frequency", "1,10,one"},
		{"zero width", "0,10,1"},
		{"negative width", "-1,10,1"},
		{"empty code", ""},
		{"width only", "1"},
		{"empty token", "1,10,1,,2"},
		{"plus size below minimum", "1,10,+5,2"},
		{"plus size between classes", "1,10,+12.5,2"},
		{"plus marker without frequency", "1,10,+12"},
		{"non-numeric plus size", "1,10,+abc,2"},
		{"non-numeric plus frequency", "1,10,+12,abc"},
		{"more leading frequencies than classes", "1,10,5,6,7,+11,2"},
		{"lone non-numeric leading token", "1,10,x,+12,2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lfreq.Decode(tt.code)
			require.Error(t, err)
			assert.ErrorIs(t, err, lfreq.ErrParse)
		})
	}
}

// Every returned frequency is strictly positive, so re-filtering an
// already decoded sequence changes nothing.
func TestDecodeFilterIdempotent(t *testing.T) {
	codes := []string{
		"0.5,7.5,1,2,1",
		"1,10,0,5,0",
		"1,1,5,6,+4,3",
		"0.5,7.5,1,+10,2",
	}
	for _, code := range codes {
		points, err := lfreq.Decode(code)
		require.NoError(t, err)
		for _, p := range points {
			assert.Greater(t, p.Freq, 0.0, "code %q", code)
		}
	}
}

// Decoding a plain code, re-encoding it, and decoding again yields the
// same surviving point set.
func TestPlainRoundTrip(t *testing.T) {
	const width, minSize = 0.5, 7.5
	freqs := []float64{1, 0, 2, 3, 0, 1}

	code := lfreq.Encode(width, minSize, freqs)
	assert.Equal(t, "0.5,7.5,1,0,2,3,0,1", code)

	first, err := lfreq.Decode(code)
	require.NoError(t, err)

	again, err := lfreq.Decode(lfreq.Encode(width, minSize, freqs))
	require.NoError(t, err)
	assert.Equal(t, first, again)

	want := []lfreq.Point{{7.5, 1}, {8.5, 2}, {9.0, 3}, {10.0, 1}}
	assert.Equal(t, want, first)
}
