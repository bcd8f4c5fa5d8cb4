package render

import (
	"slices"

	"github.com/ukaji3/auditsplit-go/pkg/auditsplit/models"
	"github.com/xuri/excelize/v2"
)

// PruneRows leaves only the listed data rows of a table, in the listed
// order, directly below the header. Rows outside the table are not touched
// except for shifting up.
//
// Rows already in sheet order are kept in place and the others deleted
// bottom-up, so cell styles and row heights stay exactly as in the source.
// Otherwise each kept row is copied below the table in the wanted order
// and the original block is removed.
func PruneRows(f *excelize.File, sheet string, bounds models.TableBounds, keep []int) error {
	if slices.IsSorted(keep) {
		kept := make(map[int]bool, len(keep))
		for _, row := range keep {
			kept[row] = true
		}
		for row := bounds.R2; row > bounds.R1; row-- {
			if kept[row] {
				continue
			}
			if err := f.RemoveRow(sheet, row); err != nil {
				return err
			}
		}
		return nil
	}

	for i, row := range keep {
		if err := f.DuplicateRowTo(sheet, row, bounds.R2+1+i); err != nil {
			return err
		}
	}
	for row := bounds.R2; row > bounds.R1; row-- {
		if err := f.RemoveRow(sheet, row); err != nil {
			return err
		}
	}
	return nil
}
