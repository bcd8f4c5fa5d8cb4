// Package models defines data structures for audit workbook splitting.
package models

// Record represents a single data row of an audit table.
type Record struct {
	// Sheet is the name of the sheet holding the row.
	Sheet string `json:"sheet" yaml:"sheet"`
	// Row is the sheet row index (1-based).
	Row int `json:"row" yaml:"row"`
	// Values holds the cell texts across the table width, left to right.
	Values []string `json:"values" yaml:"values"`
	// Leader is the trimmed audit leader cell.
	Leader string `json:"leader" yaml:"leader"`
	// Result is the trimmed QA result cell.
	Result string `json:"result" yaml:"result"`
}
