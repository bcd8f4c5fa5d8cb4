package parser

import (
	"strings"

	"github.com/ukaji3/auditsplit-go/pkg/auditsplit/models"
)

// ExtractRecords reads the data rows of a located table.
// Completely empty rows inside the bounds are skipped.
func ExtractRecords(rows [][]string, table models.Table) []models.Record {
	var result []models.Record
	for rowNum := table.Bounds.R1 + 1; rowNum <= table.Bounds.R2 && rowNum <= len(rows); rowNum++ {
		row := rows[rowNum-1]
		values := sliceRow(row, table.Bounds.C1, table.Bounds.C2)

		if isEmptyRow(values) {
			continue
		}

		result = append(result, models.Record{
			Sheet:  table.Sheet,
			Row:    rowNum,
			Values: values,
			Leader: strings.TrimSpace(cellAt(row, table.LeaderCol)),
			Result: strings.TrimSpace(cellAt(row, table.ResultCol)),
		})
	}
	return result
}
