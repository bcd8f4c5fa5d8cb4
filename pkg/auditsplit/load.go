package auditsplit

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/auditsplit-go/pkg/auditsplit/models"
	"github.com/ukaji3/auditsplit-go/pkg/auditsplit/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Load reads the audit tables of an Excel file.
//
// Sheets whose name does not start with opts.SheetPrefix are ignored, and
// selected sheets without a leader header are skipped with a warning. A
// table lacking the QA result column is a SchemaError, as is a workbook
// where no sheet yields a table.
func Load(path string, opts Options) (*models.Source, error) {
	log := opts.logger()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, NewFileError("stat", path, ErrFileNotFound)
		}
		return nil, NewFileError("stat", path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewFileError("open", path, errors.Join(ErrInvalidFormat, err))
	}
	defer f.Close()

	src := &models.Source{
		BookName: filepath.Base(path),
		Path:     path,
	}

	for _, sheetName := range f.GetSheetList() {
		if !strings.HasPrefix(sheetName, opts.SheetPrefix) {
			continue
		}

		table, err := parser.ReadTable(f, sheetName, opts.Table)
		switch {
		case errors.Is(err, parser.ErrAnchorNotFound), errors.Is(err, parser.ErrHeaderNotFound):
			log.Warn("skipping sheet without audit table",
				zap.String("sheet", sheetName), zap.Error(err))
			continue
		case errors.Is(err, parser.ErrResultColumnNotFound):
			return nil, NewSchemaError(sheetName, opts.Table.Result.Name, ErrColumnNotFound)
		case err != nil:
			return nil, NewFileError("read", path, err)
		}

		log.Info("located audit table",
			zap.String("sheet", sheetName),
			zap.String("range", table.Bounds.Ref()),
			zap.Int("leader_col", table.LeaderCol),
			zap.Int("result_col", table.ResultCol),
			zap.Int("rows", len(table.Records)))
		src.Tables = append(src.Tables, table)
	}

	if len(src.Tables) == 0 {
		return nil, NewSchemaError("", opts.Table.Leader.Name, errors.Join(ErrNoTables, ErrColumnNotFound))
	}
	return src, nil
}
