package reconcile

import (
	"fmt"

	pkgerrors "github.com/jbmln/partsmerge/pkg/errors"
	"github.com/jbmln/partsmerge/pkg/schema"
)

// Invariant names reported by the verifier.
const (
	InvariantNewRowCount   = "new-row-count"
	InvariantOldDataStable = "old-data-immutability"
	InvariantMCUPopulation = "mcu-population"
)

// VerifyNewRowCount checks that exactly as many rows are marked new as the
// delta-only key set implies.
func VerifyNewRowCount(merged []Row, expected int) error {
	actual := 0
	for i := range merged {
		if merged[i].IsNew {
			actual++
		}
	}
	if actual != expected {
		return pkgerrors.NewInvariantError(InvariantNewRowCount,
			fmt.Sprintf("expected %d new rows, got %d", expected, actual))
	}
	return nil
}

// VerifyOldDataStable checks that, new rows excluded, the merged projection
// is cell-for-cell identical to a projection built from the base generation
// alone. Columns are compared in schema order and the first divergent cell
// is reported.
func VerifyOldDataStable(baseRows, merged []Row, columns []string) error {
	mergedOld := make(map[string]*Row, len(merged))
	for i := range merged {
		if !merged[i].IsNew {
			mergedOld[string(merged[i].Key)] = &merged[i]
		}
	}

	if len(mergedOld) != len(baseRows) {
		return pkgerrors.NewInvariantError(InvariantOldDataStable,
			fmt.Sprintf("key sets differ: base has %d rows, merged-old has %d", len(baseRows), len(mergedOld)))
	}
	for i := range baseRows {
		if _, ok := mergedOld[string(baseRows[i].Key)]; !ok {
			return pkgerrors.NewInvariantError(InvariantOldDataStable,
				fmt.Sprintf("key %s present in base but missing from merged-old", baseRows[i].Key))
		}
	}

	for _, col := range columns {
		for i := range baseRows {
			b := &baseRows[i]
			m := mergedOld[string(b.Key)]
			if b.Cells[col] != m.Cells[col] {
				return &pkgerrors.InvariantError{
					Invariant: InvariantOldDataStable,
					Key:       string(b.Key),
					Column:    col,
					BaseValue: b.Cells[col],
					GotValue:  m.Cells[col],
				}
			}
		}
	}
	return nil
}

// VerifyMCUPopulation checks that every newly added MCU row (core processor
// populated) carries at least one populated MCU field.
func VerifyMCUPopulation(merged []Row) error {
	mcuCols := []string{
		schema.ColCoreProcessor,
		schema.ColCoreType,
		schema.ColClockSpeed,
		schema.ColProgramMemorySize,
	}
	for i := range merged {
		r := &merged[i]
		if !r.IsNew || r.Cells[schema.ColCoreProcessor] == "" {
			continue
		}
		populated := false
		for _, col := range mcuCols {
			if r.Cells[col] != "" {
				populated = true
				break
			}
		}
		if !populated {
			return pkgerrors.NewInvariantError(InvariantMCUPopulation,
				fmt.Sprintf("newly added MCU row %s has all MCU fields empty", r.Key))
		}
	}
	return nil
}
