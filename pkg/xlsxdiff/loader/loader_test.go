package loader

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func saveWorkbook(t *testing.T, f *excelize.File, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadPreservesOrder(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "id")
	f.SetCellValue("Sheet1", "B1", "val")
	f.SetCellValue("Sheet1", "A2", 1)
	f.SetCellValue("Sheet1", "B2", "a")

	_, err := f.NewSheet("Second")
	require.NoError(t, err)
	f.SetCellValue("Second", "A1", "code")
	f.SetCellValue("Second", "A2", "x")

	path := saveWorkbook(t, f, "book.xlsx")

	wb, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "book.xlsx", wb.BookName)
	assert.Equal(t, "book", wb.Stem())
	require.Len(t, wb.Sheets, 2)
	assert.Equal(t, []string{"Sheet1", "Second"}, wb.SheetNames())
	assert.Equal(t, []string{"id", "val"}, wb.Sheets[0].ColumnNames())

	val, ok := wb.Sheets[0].Column("val")
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, val.Values)
}

func TestLoadPadsRaggedRows(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "id")
	f.SetCellValue("Sheet1", "B1", "val")
	f.SetCellValue("Sheet1", "C1", "notes")
	// Row 2 has no value in B or C, row 3 only in A and B.
	f.SetCellValue("Sheet1", "A2", 1)
	f.SetCellValue("Sheet1", "A3", 2)
	f.SetCellValue("Sheet1", "B3", "b")

	path := saveWorkbook(t, f, "ragged.xlsx")

	wb, err := Load(path)
	require.NoError(t, err)
	require.Len(t, wb.Sheets, 1)

	tbl := wb.Sheets[0]
	assert.Equal(t, 2, tbl.NumRows())
	notes, ok := tbl.Column("notes")
	require.True(t, ok)
	assert.Equal(t, []string{"", ""}, notes.Values)
	val, ok := tbl.Column("val")
	require.True(t, ok)
	assert.Equal(t, []string{"", "b"}, val.Values)
}

func TestLoadEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	path := saveWorkbook(t, f, "empty.xlsx")

	wb, err := Load(path)
	require.NoError(t, err)
	require.Len(t, wb.Sheets, 1)
	assert.True(t, wb.Sheets[0].Empty())
	assert.Empty(t, wb.Sheets[0].ColumnNames())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.xlsx"))
	assert.Error(t, err)
}
