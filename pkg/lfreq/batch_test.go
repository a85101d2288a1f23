package lfreq_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/marinedata/survtab/pkg/lfreq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandAllSkipsFailedSamples(t *testing.T) {
	samples := []lfreq.Sample{
		{ID: "S-1", SpeciesID: "sp-1", RawCode: "1,10,1,2", RaisedCode: "1,10,2,4"},
		// ParseError: non-numeric width.
		{ID: "S-2", SpeciesID: "sp-1", RawCode: "bad,10,1", RaisedCode: "1,10,1"},
		{ID: "S-3", SpeciesID: "sp-2", RawCode: "1,20,3", RaisedCode: "1,20,9"},
		// FrequencyMismatch: 2 raw classes vs 1 raised.
		{ID: "S-4", SpeciesID: "sp-2", RawCode: "1,10,1,1", RaisedCode: "1,10,5"},
		{ID: "S-5", SpeciesID: "sp-3"},
	}

	rows, notices := lfreq.ExpandAll(context.Background(), samples, 1)

	// S-1 contributes 2 rows, S-3 one row, S-5 one placeholder row.
	require.Len(t, rows, 4)
	var ids []string
	for _, row := range rows {
		ids = append(ids, row.SampleID)
	}
	assert.Equal(t, []string{"S-1", "S-1", "S-3", "S-5"}, ids)

	require.Len(t, notices, 2)
	assert.Equal(t, "S-2", notices[0].SampleID)
	assert.Contains(t, notices[0].Reason, "not a number")
	assert.Equal(t, "S-4", notices[1].SampleID)
	assert.Contains(t, notices[1].Reason, "differ in length")
}

func TestExpandAllKeepsDuplicateRows(t *testing.T) {
	sample := lfreq.Sample{
		SpeciesID: "sp-1", RawCode: "1,10,2", RaisedCode: "1,10,6",
	}
	s1, s2 := sample, sample
	s1.ID, s2.ID = "S-1", "S-1"

	rows, notices := lfreq.ExpandAll(
		context.Background(), []lfreq.Sample{s1, s2}, 1,
	)
	assert.Empty(t, notices)
	require.Len(t, rows, 2)
	assert.Equal(t, rows[0], rows[1])
}

// Worker scheduling must not leak into output order: rows follow input
// sample order for any job count.
func TestExpandAllParallelIsDeterministic(t *testing.T) {
	const n = 500
	samples := make([]lfreq.Sample, n)
	for i := range samples {
		samples[i] = lfreq.Sample{
			ID:         fmt.Sprintf("S-%03d", i),
			SpeciesID:  "sp-1",
			RawCode:    fmt.Sprintf("1,10,%d,2", i+1),
			RaisedCode: fmt.Sprintf("1,10,%d,4", (i+1)*2),
		}
		if i%7 == 0 {
			// Unreachable plus size, fails to decode.
			samples[i].RawCode = "1,10,+5,2"
		}
	}

	sequential, seqNotices := lfreq.ExpandAll(context.Background(), samples, 1)
	parallel, parNotices := lfreq.ExpandAll(context.Background(), samples, 8)

	assert.Equal(t, sequential, parallel)
	assert.Equal(t, seqNotices, parNotices)

	for i := 1; i < len(parallel); i++ {
		assert.LessOrEqual(t, parallel[i-1].SampleID, parallel[i].SampleID)
	}
}

// Samples skipped by cancellation must surface as notices, never as a
// silently shortened table.
func TestExpandAllCancelledContext(t *testing.T) {
	samples := []lfreq.Sample{
		{ID: "S-1", SpeciesID: "sp-1", RawCode: "1,10,1", RaisedCode: "1,10,2"},
		{ID: "S-2", SpeciesID: "sp-1", RawCode: "1,10,3", RaisedCode: "1,10,6"},
		{ID: "S-3", SpeciesID: "sp-2", RawCode: "1,20,5", RaisedCode: "1,20,10"},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rows, notices := lfreq.ExpandAll(ctx, samples, 2)

	assert.Empty(t, rows)
	require.Len(t, notices, 3)
	for i, n := range notices {
		assert.Equal(t, samples[i].ID, n.SampleID)
		assert.Contains(t, n.Reason, context.Canceled.Error())
	}
}

func TestExpandAllEmptyInput(t *testing.T) {
	rows, notices := lfreq.ExpandAll(context.Background(), nil, 4)
	assert.Empty(t, rows)
	assert.Empty(t, notices)
}
