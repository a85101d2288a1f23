package lfreq

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrMismatch indicates that the raw and raised codes of a sample
// decode to a different number of size classes.
var ErrMismatch = errors.New("raw and raised frequencies differ in length")

// Sample is one catch measurement event from a workbook's catch sheet.
// RawCode and RaisedCode hold the encoded length-frequency histograms;
// an empty RawCode means no lengths were measured for the sample.
type Sample struct {
	ID         string
	SpeciesID  string
	RawCode    string
	RaisedCode string
}

// Row is one expanded size class of a sample. The four numeric fields
// are null together exactly when the sample carries no raw code.
type Row struct {
	SampleID     string
	SpeciesID    string
	RawLength    sql.NullFloat64
	RawFreq      sql.NullFloat64
	RaisedLength sql.NullFloat64
	RaisedFreq   sql.NullFloat64
}

// Expand decodes both frequency codes of a sample and zips them into
// expanded rows, one per surviving size class.
//
// A sample without a raw code keeps a single placeholder row with null
// lengths and frequencies; the raised code is not consulted. When both
// codes decode, they must yield the same number of size classes or the
// sample fails with ErrMismatch.
func Expand(sample Sample) ([]Row, error) {
	if sample.RawCode == "" {
		return []Row{{
			SampleID:  sample.ID,
			SpeciesID: sample.SpeciesID,
		}}, nil
	}

	rawPoints, err := Decode(sample.RawCode)
	if err != nil {
		return nil, fmt.Errorf("raw code: %w", err)
	}
	raisedPoints, err := Decode(sample.RaisedCode)
	if err != nil {
		return nil, fmt.Errorf("raised code: %w", err)
	}

	if len(rawPoints) != len(raisedPoints) {
		return nil, fmt.Errorf(
			"%w: %d raw vs %d raised classes",
			ErrMismatch, len(rawPoints), len(raisedPoints),
		)
	}

	res := make([]Row, 0, len(rawPoints))
	for i, raw := range rawPoints {
		raised := raisedPoints[i]
		res = append(res, Row{
			SampleID:     sample.ID,
			SpeciesID:    sample.SpeciesID,
			RawLength:    sql.NullFloat64{Float64: raw.Size, Valid: true},
			RawFreq:      sql.NullFloat64{Float64: raw.Freq, Valid: true},
			RaisedLength: sql.NullFloat64{Float64: raised.Size, Valid: true},
			RaisedFreq:   sql.NullFloat64{Float64: raised.Freq, Valid: true},
		})
	}
	return res, nil
}
