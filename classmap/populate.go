package classmap

import (
	"fmt"

	"classmap-builder/utils"
)

// Populate writes one row into root, which must be a non-nil pointer to the
// model type. Each entry that is not ignored takes the cell at its zero-based
// ColumnIndex. Cells must already hold the entry's exact leaf type; nil is
// accepted for nullable kinds.
func (d *Definition) Populate(root any, row []any) error {
	for _, e := range d.entries {
		if e.Ignored {
			continue
		}

		if !utils.IsInRange(0, e.ColumnIndex, len(row)-1) {
			return fmt.Errorf("%w: %s wants column %d, row has %d", ErrColumnOutOfRange, e.Path(), e.ColumnIndex, len(row))
		}

		if err := e.Accessor.Set(root, row[e.ColumnIndex]); err != nil {
			return fmt.Errorf("column %d (%s): %w", e.ColumnIndex, e.Path(), err)
		}
	}

	return nil
}
