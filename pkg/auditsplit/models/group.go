package models

// Group represents the records sharing one audit leader value.
// Each group becomes one output workbook.
type Group struct {
	// Leader is the grouping key.
	Leader string `json:"leader" yaml:"leader"`
	// Records holds the leader's rows, in workbook order.
	Records []Record `json:"records" yaml:"records"`
}

// BySheet returns the group's records located on the named sheet.
func (g Group) BySheet(sheet string) []Record {
	var out []Record
	for _, r := range g.Records {
		if r.Sheet == sheet {
			out = append(out, r)
		}
	}
	return out
}
