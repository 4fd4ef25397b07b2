package diff

import (
	"github.com/hsawada/xlsxdiff/pkg/xlsxdiff/models"
)

// Alignment is the outcome of a full outer join of two tables on their keys.
// The three sets are pairwise disjoint and their union is the union of all
// keys across both tables. Each key appears at most once per set even when a
// table holds it in several rows.
type Alignment struct {
	// Both holds keys present in both tables, in old-table row order.
	Both []models.Label
	// OldOnly holds keys present only in the old table, in old-table row order.
	OldOnly []models.Label
	// NewOnly holds keys present only in the new table, in new-table row order.
	NewOnly []models.Label
}

// Align classifies every key of the two tables by presence. Only key
// equality matters here; value comparison and duplicate-key detection are the
// cell differ's concern.
func Align(old, new *models.Table) Alignment {
	oldKeys := keySet(old)
	newKeys := keySet(new)

	var al Alignment
	seen := make(map[models.Label]bool, len(old.Keys))
	for _, k := range old.Keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		if newKeys[k] {
			al.Both = append(al.Both, k)
		} else {
			al.OldOnly = append(al.OldOnly, k)
		}
	}
	seen = make(map[models.Label]bool, len(new.Keys))
	for _, k := range new.Keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		if !oldKeys[k] {
			al.NewOnly = append(al.NewOnly, k)
		}
	}
	return al
}

func keySet(t *models.Table) map[models.Label]bool {
	set := make(map[models.Label]bool, len(t.Keys))
	for _, k := range t.Keys {
		set[k] = true
	}
	return set
}
