// Package report serializes comparison results into an xlsx workbook.
package report

import (
	"fmt"

	"github.com/hsawada/xlsxdiff/pkg/xlsxdiff/models"
	"github.com/xuri/excelize/v2"
)

// DefaultFileName is the report file name used when the caller does not
// choose one.
const DefaultFileName = "comparison.xlsx"

// refHeader marks reference columns in the sub-header row, where compared
// columns carry the old and new file stems.
const refHeader = "-"

// Write saves the comparison results to an xlsx file at path. Each sheet
// with differences gets a worksheet of the same name holding titled
// "Changed", "Added" and "Deleted" blocks; sheets without differences are
// skipped. Empty blocks are skipped too.
func Write(path string, diffs []models.SheetDiff) error {
	f := excelize.NewFile()
	defer f.Close()

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create title style: %w", err)
	}

	wrote := false
	keepDefault := false
	for _, d := range diffs {
		if d.Empty() {
			continue
		}
		sheet := d.Sheet.String()
		if sheet == "Sheet1" {
			keepDefault = true
		}
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("create sheet %q: %w", sheet, err)
		}
		if err := writeSheet(f, sheet, d, titleStyle); err != nil {
			return fmt.Errorf("write sheet %q: %w", sheet, err)
		}
		wrote = true
	}
	if wrote && !keepDefault {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save report %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, d models.SheetDiff, titleStyle int) error {
	row := 1
	if !d.Changed.Empty() {
		next, err := writeChanged(f, sheet, row, d.Changed, titleStyle)
		if err != nil {
			return err
		}
		row = next + 1
	}
	if !d.Added.Empty() {
		next, err := writeTable(f, sheet, row, "Added", d.Added, titleStyle)
		if err != nil {
			return err
		}
		row = next + 1
	}
	if !d.Deleted.Empty() {
		if _, err := writeTable(f, sheet, row, "Deleted", d.Deleted, titleStyle); err != nil {
			return err
		}
	}
	return nil
}

// writeChanged writes the "Changed" block starting at the given row and
// returns the first row after the block. Headers span two rows: column
// names on top, the old/new file stems (or the reference marker) below.
func writeChanged(f *excelize.File, sheet string, row int, c *models.ChangedTable, titleStyle int) (int, error) {
	if err := writeTitle(f, sheet, row, "Changed", titleStyle); err != nil {
		return 0, err
	}

	top, sub := row+1, row+2
	if err := setCell(f, sheet, 1, sub, c.KeyName); err != nil {
		return 0, err
	}
	col := 2
	for _, ref := range c.Refs {
		if err := setCell(f, sheet, col, top, ref.Name); err != nil {
			return 0, err
		}
		if err := setCell(f, sheet, col, sub, refHeader); err != nil {
			return 0, err
		}
		col++
	}
	for _, cc := range c.Columns {
		if err := setCell(f, sheet, col, top, cc.Name); err != nil {
			return 0, err
		}
		if err := mergePair(f, sheet, col, top); err != nil {
			return 0, err
		}
		if err := setCell(f, sheet, col, sub, c.OldLabel); err != nil {
			return 0, err
		}
		if err := setCell(f, sheet, col+1, sub, c.NewLabel); err != nil {
			return 0, err
		}
		col += 2
	}

	for i, key := range c.Keys {
		r := sub + 1 + i
		if err := setCell(f, sheet, 1, r, key.String()); err != nil {
			return 0, err
		}
		col = 2
		for _, ref := range c.Refs {
			if err := setCell(f, sheet, col, r, ref.Values[i]); err != nil {
				return 0, err
			}
			col++
		}
		for _, cc := range c.Columns {
			if err := setCell(f, sheet, col, r, cc.Old[i]); err != nil {
				return 0, err
			}
			if err := setCell(f, sheet, col+1, r, cc.New[i]); err != nil {
				return 0, err
			}
			col += 2
		}
	}

	return sub + 1 + len(c.Keys), nil
}

// writeTable writes a titled single-header block for an added or deleted
// table and returns the first row after the block.
func writeTable(f *excelize.File, sheet string, row int, title string, t *models.Table, titleStyle int) (int, error) {
	if err := writeTitle(f, sheet, row, title, titleStyle); err != nil {
		return 0, err
	}

	header := row + 1
	if err := setCell(f, sheet, 1, header, t.KeyName); err != nil {
		return 0, err
	}
	for j, c := range t.Columns {
		if err := setCell(f, sheet, j+2, header, c.Name); err != nil {
			return 0, err
		}
	}
	for i, key := range t.Keys {
		r := header + 1 + i
		if err := setCell(f, sheet, 1, r, key.String()); err != nil {
			return 0, err
		}
		for j, c := range t.Columns {
			if err := setCell(f, sheet, j+2, r, c.Values[i]); err != nil {
				return 0, err
			}
		}
	}

	return header + 1 + len(t.Keys), nil
}

func writeTitle(f *excelize.File, sheet string, row int, title string, style int) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell, title); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cell, cell, style)
}

func setCell(f *excelize.File, sheet string, col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func mergePair(f *excelize.File, sheet string, col, row int) error {
	left, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	right, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return err
	}
	return f.MergeCell(sheet, left, right)
}
