// Package loader reads xlsx workbooks into the in-memory table model.
package loader

import (
	"fmt"
	"path/filepath"

	"github.com/hsawada/xlsxdiff/pkg/xlsxdiff/models"
	"github.com/xuri/excelize/v2"
)

// Load reads the workbook at path. Sheet order and column order are
// preserved as authored. The first row of each sheet is the header; data
// rows are padded to the header width, so every column has one value per
// row. A sheet with no rows yields an empty table.
func Load(path string) (*models.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	wb := &models.Workbook{BookName: filepath.Base(path)}
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q of %s: %w", sheetName, path, err)
		}
		wb.Sheets = append(wb.Sheets, buildTable(sheetName, rows))
	}
	return wb, nil
}

// buildTable turns raw sheet rows into a column-oriented table. GetRows
// returns ragged rows with trailing empty cells omitted, so each row is
// padded (or truncated) to the header width.
func buildTable(sheetName string, rows [][]string) *models.Table {
	t := models.NewTable(models.StringLabel(sheetName))
	if len(rows) == 0 {
		return t
	}

	header := rows[0]
	data := rows[1:]
	for col, name := range header {
		values := make([]string, len(data))
		for i, row := range data {
			if col < len(row) {
				values[i] = row[col]
			}
		}
		t.AddColumn(name, values)
	}
	return t
}
