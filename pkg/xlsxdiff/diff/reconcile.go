// Package diff implements the sheet comparison core: column reconciliation,
// row alignment by key, and the sparse cell-level diff.
package diff

import (
	"github.com/hsawada/xlsxdiff/pkg/xlsxdiff/models"
)

// Reconcile returns copies of old and new restricted to the columns eligible
// for comparison: columns present in both tables and not in the ignored set.
// The inputs are not modified. The key is handled by alignment, not by column
// comparison, so it survives reconciliation regardless of the ignored set.
func Reconcile(old, new *models.Table, ignored []string) (*models.Table, *models.Table, error) {
	oldCopy, err := old.Clone()
	if err != nil {
		return nil, nil, err
	}
	newCopy, err := new.Clone()
	if err != nil {
		return nil, nil, err
	}

	drop := make(map[string]bool)
	oldCols := columnSet(oldCopy)
	newCols := columnSet(newCopy)
	for name := range oldCols {
		if !newCols[name] {
			drop[name] = true
		}
	}
	for name := range newCols {
		if !oldCols[name] {
			drop[name] = true
		}
	}
	for _, name := range ignored {
		drop[name] = true
	}

	oldCopy.DropColumns(drop)
	newCopy.DropColumns(drop)
	return oldCopy, newCopy, nil
}

func columnSet(t *models.Table) map[string]bool {
	set := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		set[c.Name] = true
	}
	return set
}
