package auditsplit

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLoad(t *testing.T) {
	src, err := Load(scenarioBook(t), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "audits.xlsx", src.BookName)
	require.Len(t, src.Tables, 1)
	assert.Equal(t, "Sheet1", src.Tables[0].Sheet)
	assert.Equal(t, "A1:C4", src.Tables[0].Bounds.Ref())

	records := src.Records()
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Alice", "Bob", "Alice"}, []string{records[0].Leader, records[1].Leader, records[2].Leader})
	assert.Equal(t, []string{"Pass", "DNC", "DNC"}, []string{records[0].Result, records[1].Result, records[2].Result})
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.xlsx"), DefaultOptions())

		var fileErr *FileError
		require.ErrorAs(t, err, &fileErr)
		assert.ErrorIs(t, err, ErrFileNotFound)
		assert.Equal(t, "stat", fileErr.Op)
	})

	t.Run("not a spreadsheet", func(t *testing.T) {
		path := filepath.Join(dir, "notes.xlsx")
		require.NoError(t, os.WriteFile(path, []byte("plain text"), 0644))

		_, err := Load(path, DefaultOptions())

		var fileErr *FileError
		require.ErrorAs(t, err, &fileErr)
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})
}

func TestLoadSchemaErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing result column", func(t *testing.T) {
		path := filepath.Join(dir, "noresult.xlsx")
		writeAuditBook(t, path, []interface{}{"Audit Leader", "Status"}, [][]interface{}{{"Alice", "Pass"}})

		_, err := Load(path, DefaultOptions())

		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, "Sheet1", schemaErr.SheetName)
		assert.Equal(t, "QA Result", schemaErr.Column)
		assert.ErrorIs(t, err, ErrColumnNotFound)
	})

	t.Run("missing leader column", func(t *testing.T) {
		path := filepath.Join(dir, "noleader.xlsx")
		writeAuditBook(t, path, []interface{}{"Owner", "QA Result"}, [][]interface{}{{"Alice", "Pass"}})

		_, err := Load(path, DefaultOptions())

		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, "Audit Leader", schemaErr.Column)
		assert.ErrorIs(t, err, ErrNoTables)
		assert.ErrorIs(t, err, ErrColumnNotFound)
	})
}

func TestLoadSheetSelection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "multi.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Summary"))
	require.NoError(t, f.SetCellValue("Summary", "A1", "Audit Leader overview"))
	for _, name := range []string{"QA-ID-1", "QA-ID-2", "Notes"} {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
	}
	for _, name := range []string{"QA-ID-1", "QA-ID-2"} {
		require.NoError(t, f.SetCellValue(name, "B2", "Detailed Results"))
		require.NoError(t, f.SetSheetRow(name, "A4", &[]interface{}{"Ref", "Audit Leader", "QA Result"}))
		require.NoError(t, f.SetSheetRow(name, "A5", &[]interface{}{"1", "Alice", "Pass"}))
	}
	require.NoError(t, f.SetSheetRow("Notes", "A1", &[]interface{}{"Audit Leader", "QA Result"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	opts := DefaultOptions()
	opts.SheetPrefix = "QA-ID-"
	opts.Table.Anchor = "Detailed Results"
	opts.Table.AnchorCol = 2

	src, err := Load(path, opts)
	require.NoError(t, err)

	require.Len(t, src.Tables, 2)
	assert.Equal(t, "QA-ID-1", src.Tables[0].Sheet)
	assert.Equal(t, "QA-ID-2", src.Tables[1].Sheet)
	assert.Equal(t, "A4:C5", src.Tables[0].Bounds.Ref())
	assert.Len(t, src.Records(), 2)
}

func TestErrorMessages(t *testing.T) {
	base := errors.New("boom")

	assert.Equal(t, `file error (open in.xlsx): boom`, NewFileError("open", "in.xlsx", base).Error())
	assert.Equal(t, `schema error in sheet "S" (column "QA Result"): boom`, NewSchemaError("S", "QA Result", base).Error())
	assert.Equal(t, `schema error (column "Audit Leader"): boom`, NewSchemaError("", "Audit Leader", base).Error())
	assert.Equal(t, `write error for leader "Alice" (out): boom`, NewWriteError("Alice", "out", base).Error())
	assert.ErrorIs(t, NewWriteError("Alice", "out", base), base)
}
