// Package models defines the tabular data structures shared by the loader,
// the diff core, and the report writer.
package models

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"
)

// PositionKey is the synthetic key name used when rows are aligned by
// position rather than by an explicit key column.
const PositionKey = "_index_"

// Column is a named, ordered sequence of cell values.
type Column struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Table is an ordered sequence of named columns, all of equal length, plus a
// designated row key. Until WithKey or WithPositionKey is applied, KeyName is
// empty and Keys is nil. Setting an explicit key removes that column from
// Columns, so the key is never subject to column comparison or removal.
type Table struct {
	Name    Label    `json:"name"`
	Columns []Column `json:"columns"`
	KeyName string   `json:"key_name,omitempty"`
	Keys    []Label  `json:"keys,omitempty"`
}

// MissingKeyError indicates the configured key column does not exist in a
// table.
type MissingKeyError struct {
	Column string
	Sheet  Label
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("key column %q not found in sheet %q", e.Column, e.Sheet)
}

// NewTable creates an empty table for the named sheet.
func NewTable(name Label) *Table {
	return &Table{Name: name}
}

// AddColumn appends a column. The caller is responsible for keeping all
// columns the same length.
func (t *Table) AddColumn(name string, values []string) {
	t.Columns = append(t.Columns, Column{Name: name, Values: values})
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	if len(t.Keys) > 0 {
		return len(t.Keys)
	}
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// Empty reports whether the table has no data rows.
func (t *Table) Empty() bool {
	return t == nil || t.NumRows() == 0
}

// Column returns the named column, if present.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// ColumnNames returns the column names in order. The key is not included.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() (*Table, error) {
	var out Table
	if err := deepcopy.Copy(&out, t); err != nil {
		return nil, fmt.Errorf("clone table %q: %w", t.Name, err)
	}
	return &out, nil
}

// WithKey returns a copy of the table keyed on the named column. The column
// is removed from the copy's Columns and its values become the row keys.
// Returns a MissingKeyError if the column does not exist.
func (t *Table) WithKey(name string) (*Table, error) {
	out, err := t.Clone()
	if err != nil {
		return nil, err
	}
	for i, c := range out.Columns {
		if c.Name != name {
			continue
		}
		keys := make([]Label, len(c.Values))
		for j, v := range c.Values {
			keys[j] = StringLabel(v)
		}
		out.Columns = append(out.Columns[:i], out.Columns[i+1:]...)
		out.KeyName = name
		out.Keys = keys
		return out, nil
	}
	return nil, &MissingKeyError{Column: name, Sheet: t.Name}
}

// WithPositionKey returns a copy of the table keyed on row position.
func (t *Table) WithPositionKey() (*Table, error) {
	out, err := t.Clone()
	if err != nil {
		return nil, err
	}
	n := out.NumRows()
	keys := make([]Label, n)
	for i := range keys {
		keys[i] = IntLabel(i)
	}
	out.KeyName = PositionKey
	out.Keys = keys
	return out, nil
}

// DropColumns removes every listed column that is present. Columns not
// present are ignored. The key is unaffected because it is not a column.
func (t *Table) DropColumns(names map[string]bool) {
	kept := t.Columns[:0]
	for _, c := range t.Columns {
		if !names[c.Name] {
			kept = append(kept, c)
		}
	}
	t.Columns = kept
}

// RowsForKey returns the indices of all rows holding the given key, in row
// order.
func (t *Table) RowsForKey(key Label) []int {
	var rows []int
	for i, k := range t.Keys {
		if k == key {
			rows = append(rows, i)
		}
	}
	return rows
}

// SelectKeys returns a new table holding every row whose key is in the given
// set, in original row order. Duplicate-key rows are all carried over.
func (t *Table) SelectKeys(keys []Label) *Table {
	want := make(map[Label]bool, len(keys))
	for _, k := range keys {
		want[k] = true
	}

	out := &Table{Name: t.Name, KeyName: t.KeyName}
	out.Columns = make([]Column, len(t.Columns))
	for i, c := range t.Columns {
		out.Columns[i] = Column{Name: c.Name}
	}
	for i, k := range t.Keys {
		if !want[k] {
			continue
		}
		out.Keys = append(out.Keys, k)
		for j := range t.Columns {
			out.Columns[j].Values = append(out.Columns[j].Values, t.Columns[j].Values[i])
		}
	}
	return out
}
