package ioharvest

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/marinedata/survtab/pkg/errcode"
)

// WorkbookOpenError creates an error for when a survey workbook
// cannot be opened or read.
func WorkbookOpenError(path string, err error) error {
	msg := `Cannot open survey workbook

<em>Workbook:</em> %s
<em>Error:</em> %v

<em>Possible causes:</em>
  - File is not an xlsx workbook
  - File is corrupted or still open in a spreadsheet program
  - Insufficient read permissions

<em>How to fix:</em>
  1. Open the file in a spreadsheet program and re-save it as xlsx
  2. Check file permissions: ls -l %s`

	vars := []any{path, err, path}

	return &gn.Error{
		Code: errcode.HarvestWorkbookOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open workbook %s: %w", path, err),
	}
}

// SheetMissingError creates an error for when a workbook lacks a
// required catch or effort sheet.
func SheetMissingError(path, name string) error {
	msg := `Required sheet not found in workbook

<em>Workbook:</em> %s
<em>Sheet:</em> %s

<em>How to fix:</em>
  1. Check the sheet names in the workbook
  2. Add the sheet name to the translation file if it is spelled
     differently in this workbook`

	vars := []any{path, name}

	return &gn.Error{
		Code: errcode.HarvestSheetMissingError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("sheet %q not found in %s", name, path),
	}
}

// TranslateError creates an error for when the column translation
// file cannot be read or parsed.
func TranslateError(path string, err error) error {
	msg := `Cannot read column translation file

<em>File:</em> %s
<em>Error:</em> %v

<em>How to fix:</em>
  1. Check the file exists and is valid YAML
  2. Delete the file to restore the default translations on the
     next run`

	vars := []any{path, err}

	return &gn.Error{
		Code: errcode.HarvestTranslateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read translation file %s: %w", path, err),
	}
}

// ColumnMissingError creates an error for when a sheet lacks a
// column the harvester cannot work without.
func ColumnMissingError(path, sheet, column string) error {
	msg := `Required column not found in sheet

<em>Workbook:</em> %s
<em>Sheet:</em> %s
<em>Column:</em> %s

<em>How to fix:</em>
  1. Check the header row of the sheet
  2. Map the workbook's header to %s in the translation file`

	vars := []any{path, sheet, column, column}

	return &gn.Error{
		Code: errcode.HarvestColumnMissingError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"column %q not found in sheet %q of %s",
			column, sheet, path),
	}
}

// WriteError creates an error for when harvested tables cannot be
// written to the output sink.
func WriteError(path string, err error) error {
	msg := `Cannot write harvested tables

<em>Output:</em> %s
<em>Error:</em> %v

<em>How to fix:</em>
  1. Check the output directory exists and is writable
  2. Check available disk space`

	vars := []any{path, err}

	return &gn.Error{
		Code: errcode.HarvestWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write output %s: %w", path, err),
	}
}

// CancelledError creates an error for when a harvest run is
// interrupted by the user.
func CancelledError(err error) error {
	msg := `Harvest was cancelled

<em>Error:</em> %v

Tables written before cancellation may be incomplete.`

	vars := []any{err}

	return &gn.Error{
		Code: errcode.HarvestCancelledError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("harvest cancelled: %w", err),
	}
}

// AllWorkbooksFailedError creates an error for when every workbook
// of a harvest run failed to process.
func AllWorkbooksFailedError(count int) error {
	msg := `All workbooks failed to process

<em>Workbooks attempted:</em> %d

<em>How to fix:</em>
  1. Review the errors above for each workbook
  2. Check the log file for details`

	vars := []any{count}

	return &gn.Error{
		Code: errcode.HarvestAllWorkbooksFailedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("all %d workbooks failed", count),
	}
}
