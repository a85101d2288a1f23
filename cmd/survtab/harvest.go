/*
Copyright © 2026 Marine Data Working Group

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package main

import (
	"context"

	"github.com/gnames/gn"
	"github.com/marinedata/survtab/internal/ioharvest"
	"github.com/marinedata/survtab/pkg/config"
	"github.com/spf13/cobra"
)

// getHarvestCmd returns the harvest command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getHarvestCmd() *cobra.Command {
	var (
		kind   string
		outDir string
		format string
		jobs   int
	)

	harvestCmd := &cobra.Command{
		Use:   "harvest <workbook.xlsx> ...",
		Short: "Convert survey workbooks into normalized tables",
		Long: `Convert fishery survey workbooks into normalized tables.

This command:
  1. Reads the catch and effort sheets of each workbook
  2. Translates column headers via ~/.config/survtab/translate.yaml
  3. Expands run-length encoded length frequencies into one row per
     size class
  4. Writes species, samples, length records, vessels, areas, efforts
     and a table of skipped samples

A workbook that fails to read is reported and skipped; the command
fails only when every workbook fails. Samples with malformed or
mismatched frequency codes are skipped individually and recorded in
harvest_notices.

Examples:
  # Research-vessel workbooks to CSV files
  survtab harvest rv-2023.xlsx rv-2024.xlsx

  # Statistical workbooks into one SQLite file
  survtab harvest -k stat -f sqlite -o ./out landings-2023.xlsx`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runHarvest(args, kind, outDir, format, jobs)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	harvestCmd.Flags().StringVarP(
		&kind, "kind", "k", "",
		"workbook flavor: rv or stat (default rv)",
	)
	harvestCmd.Flags().StringVarP(
		&outDir, "out", "o", "",
		"output directory for normalized tables",
	)
	harvestCmd.Flags().StringVarP(
		&format, "format", "f", "",
		"output format: csv or sqlite (default csv)",
	)
	harvestCmd.Flags().IntVarP(
		&jobs, "jobs", "j", 0,
		"number of expansion workers (default CPU threads)",
	)

	return harvestCmd
}

func runHarvest(
	paths []string,
	kind, outDir, format string,
	jobs int,
) error {
	var flagOpts []config.Option
	if kind != "" {
		flagOpts = append(flagOpts, config.OptHarvestKind(kind))
	}
	if outDir != "" {
		flagOpts = append(flagOpts, config.OptHarvestOutDir(outDir))
	}
	if format != "" {
		flagOpts = append(flagOpts, config.OptHarvestFormat(format))
	}
	if jobs > 0 {
		flagOpts = append(flagOpts, config.OptJobsNumber(jobs))
	}
	cfg.Update(flagOpts)

	trn, err := ioharvest.LoadTranslation(
		config.TranslateFilePath(cfg.HomeDir),
	)
	if err != nil {
		return err
	}

	h := ioharvest.New(cfg, trn)
	return h.Harvest(context.Background(), paths)
}
