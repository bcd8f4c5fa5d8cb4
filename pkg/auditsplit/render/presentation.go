package render

import (
	"strings"

	"github.com/ukaji3/auditsplit-go/pkg/auditsplit/models"
	"github.com/xuri/excelize/v2"
)

// FinalizeSheet resets the view to A1 and collapses grouped rows and columns.
// Sheets with frozen or split panes keep their pane layout.
func FinalizeSheet(f *excelize.File, sheet string) error {
	panes, err := f.GetPanes(sheet)
	if err != nil {
		return err
	}
	if !panes.Freeze && !panes.Split {
		if err := f.SetPanes(sheet, &excelize.Panes{
			Selection: []excelize.Selection{{SQRef: "A1", ActiveCell: "A1"}},
		}); err != nil {
			return err
		}
		topLeft := "A1"
		if err := f.SetSheetView(sheet, -1, &excelize.ViewOptions{TopLeftCell: &topLeft}); err != nil {
			return err
		}
	}

	if err := collapseOutlines(f, sheet); err != nil {
		return err
	}

	summary := false
	return f.SetSheetProps(sheet, &excelize.SheetPropsOptions{
		OutlineSummaryBelow: &summary,
		OutlineSummaryRight: &summary,
	})
}

// collapseOutlines hides every row and column with an outline level.
func collapseOutlines(f *excelize.File, sheet string) error {
	extent, ok := sheetExtent(f, sheet)
	if !ok {
		return nil
	}

	for row := 1; row <= extent.R2; row++ {
		level, err := f.GetRowOutlineLevel(sheet, row)
		if err != nil {
			return err
		}
		if level > 0 {
			if err := f.SetRowVisible(sheet, row, false); err != nil {
				return err
			}
		}
	}

	for col := 1; col <= extent.C2; col++ {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		level, err := f.GetColOutlineLevel(sheet, name)
		if err != nil {
			return err
		}
		if level > 0 {
			if err := f.SetColVisible(sheet, name, false); err != nil {
				return err
			}
		}
	}
	return nil
}

// sheetExtent returns the used range of a sheet. The stored dimension can
// lag behind edits, so it is widened to cover every row holding a value.
func sheetExtent(f *excelize.File, sheet string) (models.TableBounds, bool) {
	extent := models.TableBounds{R1: 1, C1: 1}

	if dim, err := f.GetSheetDimension(sheet); err == nil && dim != "" {
		if !strings.Contains(dim, ":") {
			dim = dim + ":" + dim
		}
		if bounds, err := models.ParseBounds(dim); err == nil {
			extent.R2, extent.C2 = bounds.R2, bounds.C2
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return models.TableBounds{}, false
	}
	extent.R2 = max(extent.R2, len(rows))
	for _, row := range rows {
		extent.C2 = max(extent.C2, len(row))
	}

	return extent, extent.R2 > 0 && extent.C2 > 0
}
