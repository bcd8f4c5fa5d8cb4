package models

// SheetOutput describes one data sheet of an output workbook.
type SheetOutput struct {
	// Sheet is the sheet name.
	Sheet string `json:"sheet" yaml:"sheet"`
	// Rows is the number of data rows kept on the sheet.
	Rows int `json:"rows" yaml:"rows"`
	// Flagged is true when a kept row carries the flag token.
	Flagged bool `json:"flagged" yaml:"flagged"`
	// TabColor is the RGB tab colour applied, empty if left unchanged.
	TabColor string `json:"tab_color,omitempty" yaml:"tab_color,omitempty"`
}

// Output describes one written leader workbook.
type Output struct {
	// Leader is the audit leader the workbook belongs to.
	Leader string `json:"leader" yaml:"leader"`
	// Path is the written file path.
	Path string `json:"path" yaml:"path"`
	// Rows is the number of data rows across all sheets.
	Rows int `json:"rows" yaml:"rows"`
	// Flagged is true when any sheet is flagged.
	Flagged bool `json:"flagged" yaml:"flagged"`
	// Sheets lists the data sheets in workbook order.
	Sheets []SheetOutput `json:"sheets" yaml:"sheets"`
}
