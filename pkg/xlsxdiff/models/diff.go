package models

// ChangedColumn holds the old and new values of one compared column for the
// rows of a ChangedTable. Cells where old and new agree are blank on both
// sides; at least one row differs or the column would not be present.
type ChangedColumn struct {
	Name string   `json:"name"`
	Old  []string `json:"old"`
	New  []string `json:"new"`
}

// RefColumn is a non-compared column carried into a ChangedTable purely as
// human context, taken from the old table.
type RefColumn struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// ChangedTable is the sparse cell-level diff for rows present in both
// tables: only keys with at least one differing column, and only columns
// differing for at least one key. Headers are two-level: the column name
// over the pair (OldLabel, NewLabel), which are the two input file stems.
type ChangedTable struct {
	KeyName  string          `json:"key_name"`
	Keys     []Label         `json:"keys"`
	Refs     []RefColumn     `json:"refs,omitempty"`
	Columns  []ChangedColumn `json:"columns"`
	OldLabel string          `json:"old_label"`
	NewLabel string          `json:"new_label"`
}

// Empty reports whether the changed table has no rows.
func (c *ChangedTable) Empty() bool {
	return c == nil || len(c.Keys) == 0
}

// SheetDiff is the comparison result for one sheet pair.
type SheetDiff struct {
	// Sheet is the old workbook's sheet name for this pair.
	Sheet   Label         `json:"sheet"`
	Changed *ChangedTable `json:"changed,omitempty"`
	Added   *Table        `json:"added,omitempty"`
	Deleted *Table        `json:"deleted,omitempty"`
}

// Empty reports whether the sheet pair had no differences at all.
func (d SheetDiff) Empty() bool {
	return d.Changed.Empty() && d.Added.Empty() && d.Deleted.Empty()
}
