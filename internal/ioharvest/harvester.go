// Package ioharvest converts fishery survey workbooks into normalized
// tables. This is an impure I/O package that reads xlsx files and
// writes CSV or SQLite outputs; the length-frequency expansion itself
// lives in pkg/lfreq.
package ioharvest

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnparser"
	"github.com/marinedata/survtab/pkg/config"
	"github.com/marinedata/survtab/pkg/lfreq"
	"github.com/marinedata/survtab/pkg/survtab"
)

// harvester implements the survtab.Harvester interface.
type harvester struct {
	cfg    *config.Config
	trn    *Translation
	parser gnparser.GNparser

	// sampleSeq numbers generated sample ids across all workbooks of
	// one run.
	sampleSeq int
}

// New creates a new Harvester. The workbook flavor (research-vessel or
// statistical) comes from cfg.Harvest.Kind.
func New(cfg *config.Config, trn *Translation) survtab.Harvester {
	return &harvester{
		cfg:    cfg,
		trn:    trn,
		parser: gnparser.New(gnparser.NewConfig()),
	}
}

// Harvest reads every workbook, expands length frequencies, and writes
// the normalized tables. A workbook that fails to read is reported and
// skipped; the run fails only when all workbooks fail.
func (h *harvester) Harvest(ctx context.Context, paths []string) error {
	startTime := time.Now()
	slog.Info("Starting harvest",
		"kind", h.cfg.Harvest.Kind,
		"workbooks", len(paths),
	)

	ds := newDataset()
	successCount := 0
	errorCount := 0

	for i, path := range paths {
		select {
		case <-ctx.Done():
			return CancelledError(ctx.Err())
		default:
		}

		gn.Info("(%d/%d) Reading workbook <em>%s</em>",
			i+1, len(paths), filepath.Base(path))

		err := h.harvestWorkbook(path, ds)
		if err != nil {
			errorCount++
			gn.PrintErrorMessage(err)
			slog.Error("Failed to process workbook",
				"path", path,
				"error", err,
			)
			continue
		}
		successCount++
	}

	if errorCount > 0 && successCount == 0 {
		return AllWorkbooksFailedError(errorCount)
	}

	gn.Info("Expanding length frequencies for <em>%s</em> samples...",
		humanize.Comma(int64(len(ds.lfSamples))))
	lengths, notices := lfreq.ExpandAll(ctx, ds.lfSamples, h.cfg.JobsNumber)

	for _, n := range notices {
		slog.Warn("Sample failed expansion",
			"sample_id", n.SampleID,
			"reason", n.Reason,
		)
	}

	w, err := h.newWriter()
	if err != nil {
		return err
	}
	if err := w.Write(ds, lengths, notices); err != nil {
		return err
	}

	totalDuration := time.Since(startTime)
	slog.Info("Harvest complete",
		"workbooks", successCount,
		"failed", errorCount,
		"species", len(ds.species),
		"samples", len(ds.samples),
		"length_records", len(lengths),
		"notices", len(notices),
		"duration", gnfmt.TimeString(totalDuration.Seconds()),
	)
	gn.Info(`Harvest complete
Workbooks succeeded: %d, failed %d.
Species: %s, samples: %s, length records: %s, skipped samples: %d.
Elapsed time: <em>%s</em>
`,
		successCount,
		errorCount,
		humanize.Comma(int64(len(ds.species))),
		humanize.Comma(int64(len(ds.samples))),
		humanize.Comma(int64(len(lengths))),
		len(notices),
		gnfmt.TimeString(totalDuration.Seconds()),
	)

	return nil
}

// harvestWorkbook reads one workbook and appends its records to the
// dataset.
func (h *harvester) harvestWorkbook(path string, ds *dataset) error {
	wb, err := readWorkbook(path, h.trn)
	if err != nil {
		return err
	}

	switch h.cfg.Harvest.Kind {
	case "stat":
		return h.harvestStat(wb, ds)
	default:
		return h.harvestRV(wb, ds)
	}
}

func (h *harvester) newWriter() (tableWriter, error) {
	outDir := h.cfg.Harvest.OutDir
	if h.cfg.Harvest.Format == "sqlite" {
		return newSQLiteWriter(filepath.Join(outDir, "survtab.sqlite")), nil
	}
	return newCSVWriter(outDir), nil
}

// nextSampleID generates a sequential sample id for rows that carry
// none of their own.
func (h *harvester) nextSampleID() string {
	h.sampleSeq++
	return fmt.Sprintf("%s-%06d",
		strings.ToUpper(h.cfg.Harvest.Kind), h.sampleSeq)
}
