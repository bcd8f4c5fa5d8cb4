package parser

import (
	"errors"
	"strings"

	"github.com/ukaji3/auditsplit-go/pkg/auditsplit/models"
	"github.com/xuri/excelize/v2"
)

// ErrAnchorNotFound indicates the anchor text does not appear on the sheet.
var ErrAnchorNotFound = errors.New("anchor not found")

// ErrHeaderNotFound indicates no row carries the leader header.
var ErrHeaderNotFound = errors.New("leader header not found")

// ErrResultColumnNotFound indicates the header row has no QA result column.
var ErrResultColumnNotFound = errors.New("result column not found")

// TableParams holds parameters for table location.
type TableParams struct {
	// Anchor, when set, restricts the header search to rows below the
	// first cell containing this text.
	Anchor string
	// AnchorCol limits the anchor search to one 1-based column (0 = any).
	AnchorCol int
	// Range, when set, is used as the table bounds instead of detection.
	Range *models.TableBounds
	// Leader recognises the audit leader header.
	Leader HeaderMatcher
	// Result recognises the QA result header.
	Result HeaderMatcher
}

// DefaultTableParams returns default table location parameters.
func DefaultTableParams() TableParams {
	return TableParams{
		Leader: HeaderMatcher{Name: "Audit Leader", Include: []string{"audit leader"}},
		Result: HeaderMatcher{Name: "QA Result"},
	}
}

// ReadTable locates the audit table on a sheet and reads its records.
func ReadTable(f *excelize.File, sheetName string, params TableParams) (models.Table, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.Table{}, err
	}

	table, err := LocateTable(rows, params)
	if err != nil {
		return models.Table{}, err
	}
	table.Sheet = sheetName
	table.Records = ExtractRecords(rows, table)
	return table, nil
}

// LocateTable finds the header row and data extent in a sheet's rows.
// The returned table has no sheet name or records.
func LocateTable(rows [][]string, params TableParams) (models.Table, error) {
	if params.Range != nil {
		return locateInRange(rows, *params.Range, params)
	}

	start := 0
	if params.Anchor != "" {
		idx := findAnchor(rows, params.Anchor, params.AnchorCol)
		if idx < 0 {
			return models.Table{}, ErrAnchorNotFound
		}
		start = idx + 1
	}

	headerIdx := -1
	for rowIdx := start; rowIdx < len(rows); rowIdx++ {
		if FindColumn(rows[rowIdx], params.Leader) > 0 {
			headerIdx = rowIdx
			break
		}
	}
	if headerIdx < 0 {
		return models.Table{}, ErrHeaderNotFound
	}

	header := rows[headerIdx]
	maxCol := lastNonEmpty(header)

	// Data ends at the first completely empty row. A cell holding only
	// spaces still counts as content.
	endIdx := len(rows) - 1
	for rowIdx := headerIdx + 1; rowIdx < len(rows); rowIdx++ {
		if isEmptyRow(rows[rowIdx]) {
			endIdx = rowIdx - 1
			break
		}
	}

	bounds := models.TableBounds{R1: headerIdx + 1, C1: 1, R2: endIdx + 1, C2: maxCol}
	return buildTable(header, bounds, params)
}

func locateInRange(rows [][]string, bounds models.TableBounds, params TableParams) (models.Table, error) {
	if bounds.R1 > len(rows) {
		return models.Table{}, ErrHeaderNotFound
	}
	if bounds.R2 > len(rows) {
		bounds.R2 = len(rows)
	}
	header := sliceRow(rows[bounds.R1-1], bounds.C1, bounds.C2)
	if FindColumn(header, params.Leader) == 0 {
		return models.Table{}, ErrHeaderNotFound
	}
	return buildTable(rows[bounds.R1-1], bounds, params)
}

func buildTable(headerRow []string, bounds models.TableBounds, params TableParams) (models.Table, error) {
	header := sliceRow(headerRow, bounds.C1, bounds.C2)
	table := models.Table{
		Bounds:    bounds,
		Header:    header,
		LeaderCol: columnOffset(FindColumn(header, params.Leader), bounds.C1),
		ResultCol: columnOffset(FindColumn(header, params.Result), bounds.C1),
	}
	if table.ResultCol == 0 {
		return table, ErrResultColumnNotFound
	}
	return table, nil
}

// columnOffset converts a header-relative column into a sheet column.
func columnOffset(col, c1 int) int {
	if col == 0 {
		return 0
	}
	return col + c1 - 1
}

// findAnchor returns the 0-based row index of the first cell containing anchor.
func findAnchor(rows [][]string, anchor string, col int) int {
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if col > 0 && colIdx+1 != col {
				continue
			}
			if strings.Contains(cell, anchor) {
				return rowIdx
			}
		}
	}
	return -1
}

// lastNonEmpty returns the 1-based column of the last non-empty cell, or 0.
func lastNonEmpty(row []string) int {
	for colIdx := len(row) - 1; colIdx >= 0; colIdx-- {
		if strings.TrimSpace(row[colIdx]) != "" {
			return colIdx + 1
		}
	}
	return 0
}

// isEmptyRow reports whether every cell of row is the empty string.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// sliceRow returns cells c1..c2 (1-based, inclusive), padding short rows.
func sliceRow(row []string, c1, c2 int) []string {
	out := make([]string, 0, c2-c1+1)
	for col := c1; col <= c2; col++ {
		out = append(out, cellAt(row, col))
	}
	return out
}

func cellAt(row []string, col int) string {
	if col < 1 || col > len(row) {
		return ""
	}
	return row[col-1]
}
