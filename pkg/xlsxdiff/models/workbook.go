package models

import (
	"path/filepath"
	"strings"
)

// Workbook holds the sheets of one workbook file in authored order. Sheet
// order matters: two workbooks are compared sheet-by-sheet by position, not
// by name.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets holds the tables in sheet order.
	Sheets []*Table `json:"sheets"`
}

// Stem returns the workbook file name without its extension, used to label
// the old and new sides of a cell diff.
func (w *Workbook) Stem() string {
	return strings.TrimSuffix(w.BookName, filepath.Ext(w.BookName))
}

// SheetNames returns the sheet names in order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name.String()
	}
	return names
}
