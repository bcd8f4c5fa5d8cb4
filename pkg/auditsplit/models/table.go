package models

// Table represents an audit table located on one sheet.
type Table struct {
	// Sheet is the sheet name owning the table.
	Sheet string `json:"sheet" yaml:"sheet"`
	// Bounds is the header row plus data rows.
	Bounds TableBounds `json:"bounds" yaml:"bounds"`
	// Header holds the header cell texts across the table width.
	Header []string `json:"header" yaml:"header"`
	// LeaderCol is the 1-based sheet column of the audit leader.
	LeaderCol int `json:"leader_col" yaml:"leader_col"`
	// ResultCol is the 1-based sheet column of the QA result.
	ResultCol int `json:"result_col" yaml:"result_col"`
	// Records contains the data rows in sheet order.
	Records []Record `json:"records,omitempty" yaml:"records,omitempty"`
}

// Source represents a loaded audit workbook.
type Source struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name" yaml:"book_name"`
	// Path is the workbook path as given to the loader.
	Path string `json:"path" yaml:"path"`
	// Tables contains located tables in workbook sheet order.
	Tables []Table `json:"tables" yaml:"tables"`
}

// Records returns every record of every table, in workbook order.
func (s *Source) Records() []Record {
	var all []Record
	for _, t := range s.Tables {
		all = append(all, t.Records...)
	}
	return all
}

// Table returns the table located on the named sheet.
func (s *Source) Table(sheet string) (Table, bool) {
	for _, t := range s.Tables {
		if t.Sheet == sheet {
			return t, true
		}
	}
	return Table{}, false
}
