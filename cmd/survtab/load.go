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
	"github.com/marinedata/survtab/internal/iodb"
	"github.com/marinedata/survtab/internal/ioload"
	"github.com/spf13/cobra"
)

// getLoadCmd returns the load command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getLoadCmd() *cobra.Command {
	loadCmd := &cobra.Command{
		Use:   "load [csv-dir]",
		Short: "Bulk-load harvested tables into PostgreSQL",
		Long: `Bulk-load previously harvested CSV tables into PostgreSQL.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Reads the CSV tables written by 'survtab harvest'
  3. Replaces the contents of each normalized table using CopyFrom
  4. Records the run in the import_batches table

The directory defaults to the current one.

Examples:
  survtab load
  survtab load ./out`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			err := runLoad(dir)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return loadCmd
}

func runLoad(dir string) error {
	ctx := context.Background()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: %s@%s:%d/%s",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	l := ioload.New(cfg, op)
	return l.Load(ctx, dir)
}
