package auditsplit

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeAuditBook saves a single-sheet workbook with a header row and the given rows.
func writeAuditBook(t *testing.T, path string, header []interface{}, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	// Column width and a header style give the copy something to preserve
	require.NoError(t, f.SetColWidth("Sheet1", "B", "B", 30))
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	require.NoError(t, err)
	require.NoError(t, f.SetRowStyle("Sheet1", 1, 1, style))

	require.NoError(t, f.SaveAs(path))
}

func scenarioBook(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audits.xlsx")
	writeAuditBook(t, path,
		[]interface{}{"ID", "Audit Leader", "QA Result"},
		[][]interface{}{
			{"Q-1", "Alice", "Pass"},
			{"Q-2", "Bob", "DNC"},
			{"Q-3", "Alice", "DNC"},
		})
	return path
}

func tabColor(t *testing.T, path, sheet string) string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	props, err := f.GetSheetProps(sheet)
	require.NoError(t, err)
	if props.TabColorRGB == nil {
		return ""
	}
	return *props.TabColorRGB
}
