package diff

import (
	"errors"
	"fmt"

	"github.com/hsawada/xlsxdiff/pkg/xlsxdiff/models"
)

// ErrDuplicateIndex indicates rows sharing a key prevented a one-to-one
// comparison.
var ErrDuplicateIndex = errors.New("likely duplicate index")

// ErrMissingReference indicates a configured reference column was not
// present in the old table after reconciliation.
var ErrMissingReference = errors.New("reference column not found")

// AmbiguousKeyError reports a key in the both bucket that maps to more than
// one row on at least one side, making row pairing ambiguous.
type AmbiguousKeyError struct {
	Key     models.Label
	OldRows int
	NewRows int
}

func (e *AmbiguousKeyError) Error() string {
	return fmt.Sprintf("cannot pair rows for key %q (%d old row(s), %d new row(s)): %v",
		e.Key, e.OldRows, e.NewRows, ErrDuplicateIndex)
}

func (e *AmbiguousKeyError) Unwrap() error {
	return ErrDuplicateIndex
}

// CompareOptions configures a cell comparison.
type CompareOptions struct {
	// OldLabel and NewLabel name the two sides in the result headers,
	// conventionally the input files' base names without extension.
	OldLabel string
	NewLabel string
	// ReferenceColumns are carried from the old table into the result as
	// context, never compared.
	ReferenceColumns []string
}

// CompareCells compares old and new cell values for every key in the both
// set, over the tables' (already reconciled, identical) column sets. The
// result is sparse: only keys with at least one differing column and only
// columns differing for at least one key are included; within an included
// row, columns that agree are blank on both sides.
//
// Every key in both must map to exactly one row on each side, otherwise an
// AmbiguousKeyError is returned.
func CompareCells(old, new *models.Table, both []models.Label, opts CompareOptions) (*models.ChangedTable, error) {
	oldRow := make(map[models.Label]int, len(both))
	newRow := make(map[models.Label]int, len(both))
	for _, k := range both {
		or := old.RowsForKey(k)
		nr := new.RowsForKey(k)
		if len(or) != 1 || len(nr) != 1 {
			return nil, &AmbiguousKeyError{Key: k, OldRows: len(or), NewRows: len(nr)}
		}
		oldRow[k] = or[0]
		newRow[k] = nr[0]
	}

	// First pass: which keys and which columns differ at all.
	changedKeys := make([]models.Label, 0)
	keyChanged := make(map[models.Label]bool, len(both))
	colChanged := make(map[string]bool, len(old.Columns))
	for _, k := range both {
		for _, c := range old.Columns {
			nc, ok := new.Column(c.Name)
			if !ok {
				// Reconciliation guarantees identical column sets.
				return nil, fmt.Errorf("column %q missing from new table after reconciliation", c.Name)
			}
			if c.Values[oldRow[k]] != nc.Values[newRow[k]] {
				colChanged[c.Name] = true
				if !keyChanged[k] {
					keyChanged[k] = true
					changedKeys = append(changedKeys, k)
				}
			}
		}
	}

	out := &models.ChangedTable{
		KeyName:  old.KeyName,
		Keys:     changedKeys,
		OldLabel: opts.OldLabel,
		NewLabel: opts.NewLabel,
	}
	if len(changedKeys) == 0 {
		return out, nil
	}

	// Second pass: fill the sparse columns, blanking equal cells.
	for _, c := range old.Columns {
		if !colChanged[c.Name] {
			continue
		}
		nc, _ := new.Column(c.Name)
		col := models.ChangedColumn{
			Name: c.Name,
			Old:  make([]string, len(changedKeys)),
			New:  make([]string, len(changedKeys)),
		}
		for i, k := range changedKeys {
			ov := c.Values[oldRow[k]]
			nv := nc.Values[newRow[k]]
			if ov != nv {
				col.Old[i] = ov
				col.New[i] = nv
			}
		}
		out.Columns = append(out.Columns, col)
	}

	for _, name := range opts.ReferenceColumns {
		rc, ok := old.Column(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingReference, name)
		}
		ref := models.RefColumn{Name: name, Values: make([]string, len(changedKeys))}
		for i, k := range changedKeys {
			ref.Values[i] = rc.Values[oldRow[k]]
		}
		out.Refs = append(out.Refs, ref)
	}

	return out, nil
}
