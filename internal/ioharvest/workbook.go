package ioharvest

import (
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// sheetTable is one worksheet with translated headers: a column-name
// index over the raw data rows.
type sheetTable struct {
	cols map[string]int
	rows [][]string
}

// workbook holds the two sheets survtab cares about.
type workbook struct {
	path   string
	catch  *sheetTable
	effort *sheetTable
}

// readWorkbook opens an xlsx file and extracts its "catch" and
// "effort" sheets. Sheet names are matched case-insensitively by
// substring, so "Catch2023" and "fishing effort" both resolve.
func readWorkbook(path string, trn *Translation) (*workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, WorkbookOpenError(path, err)
	}
	defer f.Close()

	catchSheet, err := readSheet(f, path, "catch", trn.Catch)
	if err != nil {
		return nil, err
	}
	effortSheet, err := readSheet(f, path, "effort", trn.Effort)
	if err != nil {
		return nil, err
	}

	return &workbook{path: path, catch: catchSheet, effort: effortSheet}, nil
}

func readSheet(
	f *excelize.File,
	path, name string,
	table map[string]string,
) (*sheetTable, error) {
	var sheet string
	for _, s := range f.GetSheetList() {
		if strings.Contains(strings.ToLower(s), name) {
			sheet = s
			break
		}
	}
	if sheet == "" {
		return nil, SheetMissingError(path, name)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, WorkbookOpenError(path, err)
	}
	if len(rows) == 0 {
		return nil, SheetMissingError(path, name)
	}

	cols := make(map[string]int)
	for i, header := range rows[0] {
		if strings.TrimSpace(header) == "" {
			continue
		}
		cols[normalize(table, header)] = i
	}

	return &sheetTable{cols: cols, rows: rows[1:]}, nil
}

// cell returns the value of a named column in a data row, or "" when
// the column is absent or the row is ragged.
func (t *sheetTable) cell(row []string, name string) string {
	idx, ok := t.cols[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// hasColumn reports whether the sheet carries a named column.
func (t *sheetTable) hasColumn(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// dateLayouts are tried in order when parsing workbook date cells.
// excelize formats date cells per the workbook's number format, so the
// same column can surface in several shapes.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01-02-06",
	"1/2/06 15:04",
	"2-Jan-06",
}

func parseDateCell(s string) sql.NullTime {
	if s == "" {
		return sql.NullTime{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return sql.NullTime{Time: t, Valid: true}
		}
	}
	return sql.NullTime{}
}

func parseFloatCell(s string) sql.NullFloat64 {
	if s == "" {
		return sql.NullFloat64{}
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}
