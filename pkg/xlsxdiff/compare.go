package xlsxdiff

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/hsawada/xlsxdiff/pkg/xlsxdiff/diff"
	"github.com/hsawada/xlsxdiff/pkg/xlsxdiff/loader"
	"github.com/hsawada/xlsxdiff/pkg/xlsxdiff/models"
)

// Compare loads the two workbooks and compares them sheet by sheet. See
// CompareWorkbooks for the pairing and error semantics.
func Compare(oldPath, newPath string, opts Options) ([]models.SheetDiff, error) {
	oldWB, err := loader.Load(oldPath)
	if err != nil {
		return nil, err
	}
	newWB, err := loader.Load(newPath)
	if err != nil {
		return nil, err
	}
	return CompareWorkbooks(oldWB, newWB, opts)
}

// CompareWorkbooks compares sheets positionally: the Nth sheet of old
// against the Nth sheet of new, regardless of sheet names. When the counts
// differ, the extra sheets of the longer workbook are skipped with a
// warning. The first failing sheet aborts the run with a SheetError; input
// tables are never modified.
func CompareWorkbooks(oldWB, newWB *models.Workbook, opts Options) ([]models.SheetDiff, error) {
	n := len(oldWB.Sheets)
	if len(newWB.Sheets) < n {
		n = len(newWB.Sheets)
	}
	if len(oldWB.Sheets) != len(newWB.Sheets) {
		log.Warnf("sheet counts differ (%d old, %d new); skipping unpaired sheets: old=[%s] new=[%s]",
			len(oldWB.Sheets), len(newWB.Sheets),
			strings.Join(oldWB.SheetNames()[n:], ", "),
			strings.Join(newWB.SheetNames()[n:], ", "))
	}

	diffs := make([]models.SheetDiff, 0, n)
	for i := 0; i < n; i++ {
		oldT, newT := oldWB.Sheets[i], newWB.Sheets[i]
		log.Infof("comparing sheet %s", oldT.Name)
		log.Debugf("pairing old sheet %q with new sheet %q", oldT.Name, newT.Name)

		d, err := compareSheet(oldT, newT, oldWB.Stem(), newWB.Stem(), opts)
		if err != nil {
			return nil, &SheetError{Sheet: oldT.Name, Err: err}
		}
		if d.Empty() {
			log.Debugf("sheet %s unchanged", oldT.Name)
		}
		diffs = append(diffs, d)
	}
	return diffs, nil
}

func compareSheet(oldT, newT *models.Table, oldLabel, newLabel string, opts Options) (models.SheetDiff, error) {
	var keyed [2]*models.Table
	for i, t := range []*models.Table{oldT, newT} {
		var err error
		if opts.KeyColumn == "" {
			keyed[i], err = t.WithPositionKey()
		} else {
			keyed[i], err = t.WithKey(opts.KeyColumn)
		}
		if err != nil {
			return models.SheetDiff{}, err
		}
	}

	oldK, newK, err := diff.Reconcile(keyed[0], keyed[1], opts.IgnoredColumns)
	if err != nil {
		return models.SheetDiff{}, err
	}

	al := diff.Align(oldK, newK)
	changed, err := diff.CompareCells(oldK, newK, al.Both, diff.CompareOptions{
		OldLabel:         oldLabel,
		NewLabel:         newLabel,
		ReferenceColumns: opts.ReferenceColumns,
	})
	if err != nil {
		return models.SheetDiff{}, err
	}

	return models.SheetDiff{
		Sheet:   oldT.Name,
		Changed: changed,
		Added:   newK.SelectKeys(al.NewOnly),
		Deleted: oldK.SelectKeys(al.OldOnly),
	}, nil
}
