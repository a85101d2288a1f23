package lfreq

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Notice reports one sample that failed expansion and the reason.
type Notice struct {
	SampleID string
	Reason   string
}

// ExpandAll expands every sample and gathers the rows into one table.
//
// Samples are independent, so they are expanded concurrently by jobs
// workers (runtime.NumCPU() when jobs is 0). Results are collected by
// original sample index: row order follows input order and the notices
// are deterministic regardless of worker scheduling. A sample that
// fails to decode contributes a notice instead of rows; the batch
// always completes. Cancelling ctx stops scheduling new samples, and
// every sample skipped by cancellation is reported as a notice so a
// truncated result is never mistaken for a complete one.
func ExpandAll(
	ctx context.Context,
	samples []Sample,
	jobs int,
) ([]Row, []Notice) {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	perSample := make([][]Row, len(samples))
	failures := make([]error, len(samples))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := range samples {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				failures[i] = err
				return err
			}
			rows, err := Expand(samples[i])
			if err != nil {
				failures[i] = err
				return nil
			}
			perSample[i] = rows
			return nil
		})
	}
	// Expansion failures become notices. Cancellation is recorded the
	// same way for every sample it skipped, so Wait's error carries no
	// extra information.
	_ = g.Wait()

	var total int
	for _, rows := range perSample {
		total += len(rows)
	}

	res := make([]Row, 0, total)
	var notices []Notice
	for i, rows := range perSample {
		if failures[i] != nil {
			notices = append(notices, Notice{
				SampleID: samples[i].ID,
				Reason:   failures[i].Error(),
			})
			continue
		}
		res = append(res, rows...)
	}
	return res, notices
}
