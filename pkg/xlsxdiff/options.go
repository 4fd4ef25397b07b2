// Package xlsxdiff compares two versions of an xlsx workbook sheet by sheet,
// classifying rows as changed, added, or deleted.
package xlsxdiff

// Options configures a comparison session. It is read-only during the run:
// construct it once, before any sheet is processed.
type Options struct {
	// KeyColumn names the column rows are aligned on. Empty means rows are
	// aligned by position.
	KeyColumn string
	// IgnoredColumns are excluded from every sheet's comparison, whether or
	// not they are common to both tables.
	IgnoredColumns []string
	// ReferenceColumns are old-table columns carried into the changed
	// result as context. They are never compared.
	ReferenceColumns []string
}

// DefaultOptions returns options aligning rows by position with no ignored
// or reference columns.
func DefaultOptions() Options {
	return Options{}
}
