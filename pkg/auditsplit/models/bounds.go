package models

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// TableBounds represents cell coordinate bounds for an audit table.
type TableBounds struct {
	// R1 is the header row (1-based).
	R1 int `json:"r1" yaml:"r1"`
	// C1 is the first column (1-based).
	C1 int `json:"c1" yaml:"c1"`
	// R2 is the last data row (1-based, inclusive). R2 == R1 for a header-only table.
	R2 int `json:"r2" yaml:"r2"`
	// C2 is the last column (1-based, inclusive).
	C2 int `json:"c2" yaml:"c2"`
}

// DataRows returns the number of rows below the header.
func (b TableBounds) DataRows() int {
	if b.R2 <= b.R1 {
		return 0
	}
	return b.R2 - b.R1
}

// Ref returns the bounds in A1 notation, e.g. "B5:H20".
func (b TableBounds) Ref() string {
	start, err := excelize.CoordinatesToCellName(b.C1, b.R1)
	if err != nil {
		return ""
	}
	end, err := excelize.CoordinatesToCellName(b.C2, b.R2)
	if err != nil {
		return ""
	}
	return start + ":" + end
}

// ParseBounds parses a range string like $A$1:$D$10 or A1:D10.
func ParseBounds(ref string) (TableBounds, error) {
	// Drop an optional sheet qualifier
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		ref = ref[idx+1:]
	}
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) != 2 {
		return TableBounds{}, fmt.Errorf("invalid range %q: expected start:end", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return TableBounds{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return TableBounds{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}

	if endRow < startRow || endCol < startCol {
		return TableBounds{}, fmt.Errorf("invalid range %q: end precedes start", ref)
	}

	return TableBounds{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, nil
}
