package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hsawada/xlsxdiff/pkg/xlsxdiff/models"
)

func sampleDiff() models.SheetDiff {
	added := models.NewTable(models.StringLabel("Prices"))
	added.KeyName = "id"
	added.Keys = []models.Label{models.StringLabel("3")}
	added.AddColumn("val", []string{"c"})

	deleted := models.NewTable(models.StringLabel("Prices"))
	deleted.KeyName = "id"
	deleted.Keys = []models.Label{models.StringLabel("2")}
	deleted.AddColumn("val", []string{"b"})

	return models.SheetDiff{
		Sheet: models.StringLabel("Prices"),
		Changed: &models.ChangedTable{
			KeyName:  "id",
			Keys:     []models.Label{models.StringLabel("1")},
			Refs:     []models.RefColumn{{Name: "name", Values: []string{"widget"}}},
			Columns:  []models.ChangedColumn{{Name: "val", Old: []string{"a"}, New: []string{"x"}}},
			OldLabel: "old",
			NewLabel: "new",
		},
		Added:   added,
		Deleted: deleted,
	}
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comparison.xlsx")
	require.NoError(t, Write(path, []models.SheetDiff{sampleDiff()}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Prices"}, f.GetSheetList(), "default sheet removed")

	cell := func(ref string) string {
		v, err := f.GetCellValue("Prices", ref)
		require.NoError(t, err)
		return v
	}

	// Changed block: title, two header rows, one data row.
	assert.Equal(t, "Changed", cell("A1"))
	assert.Equal(t, "name", cell("B2"))
	assert.Equal(t, "val", cell("C2"))
	assert.Equal(t, "id", cell("A3"))
	assert.Equal(t, "-", cell("B3"))
	assert.Equal(t, "old", cell("C3"))
	assert.Equal(t, "new", cell("D3"))
	assert.Equal(t, "1", cell("A4"))
	assert.Equal(t, "widget", cell("B4"))
	assert.Equal(t, "a", cell("C4"))
	assert.Equal(t, "x", cell("D4"))

	// Added block after one blank row.
	assert.Equal(t, "Added", cell("A6"))
	assert.Equal(t, "id", cell("A7"))
	assert.Equal(t, "val", cell("B7"))
	assert.Equal(t, "3", cell("A8"))
	assert.Equal(t, "c", cell("B8"))

	// Deleted block.
	assert.Equal(t, "Deleted", cell("A10"))
	assert.Equal(t, "2", cell("A12"))
	assert.Equal(t, "b", cell("B12"))
}

func TestWriteSkipsUnchangedSheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comparison.xlsx")
	unchanged := models.SheetDiff{Sheet: models.StringLabel("Same")}
	require.NoError(t, Write(path, []models.SheetDiff{unchanged, sampleDiff()}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Prices"}, f.GetSheetList())
}

func TestWriteNoDifferences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comparison.xlsx")
	require.NoError(t, Write(path, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Sheet1"}, f.GetSheetList())
}
