package xlsxdiff

import (
	"fmt"

	"github.com/hsawada/xlsxdiff/pkg/xlsxdiff/models"
)

// SheetError annotates a comparison failure with the sheet that triggered
// it. A failing sheet aborts the whole run; there is no partial result.
type SheetError struct {
	Sheet models.Label
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("comparing sheet %q: %v", e.Sheet, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
