package reconcile

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/jbmln/partsmerge/pkg/discover"
	pkgerrors "github.com/jbmln/partsmerge/pkg/errors"
	"github.com/jbmln/partsmerge/pkg/purchasing"
	"github.com/jbmln/partsmerge/pkg/schema"
	"github.com/jbmln/partsmerge/pkg/tabular"
)

// Output file names, fixed across runs.
const (
	OutMergedProducts = "merged_products_out.json"
	OutMergedInvoices = "merged_invoices_out.json"
	OutFullCSV        = "updated_full_future_schema.csv"
	OutMiniCSV        = "updated_mini.csv"
	OutNewCSV         = "new_purchases_enriched.csv"
)

// writeOutputs writes the five outputs of a verified pass and returns their
// paths in write order. The merged JSON documents are rebuilt from raw
// elements so fields the projector never reads survive untouched.
func writeOutputs(outDir string, inputs *discover.Inputs, rows []Row, columns, miniColumns []string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, pkgerrors.WrapIO("create", outDir, err)
	}

	outProducts := filepath.Join(outDir, OutMergedProducts)
	outInvoices := filepath.Join(outDir, OutMergedInvoices)
	outFull := filepath.Join(outDir, OutFullCSV)
	outMini := filepath.Join(outDir, OutMiniCSV)
	outNew := filepath.Join(outDir, OutNewCSV)

	if err := writeMergedJSON(outProducts, inputs.Products.Base, inputs.Products.Delta); err != nil {
		return nil, err
	}
	if err := writeMergedJSON(outInvoices, inputs.Invoices.Base, inputs.Invoices.Delta); err != nil {
		return nil, err
	}

	cells := make([]map[string]string, len(rows))
	for i := range rows {
		cells[i] = rows[i].Cells
	}
	if err := tabular.Write(outFull, columns, cells); err != nil {
		return nil, err
	}

	mini := make([]map[string]string, len(rows))
	for i := range rows {
		r := make(map[string]string, len(miniColumns))
		for _, col := range miniColumns {
			if col == schema.ColQtyBought {
				r[col] = rows[i].QtyBought
			} else {
				r[col] = rows[i].Cells[col]
			}
		}
		mini[i] = r
	}
	if err := tabular.Write(outMini, miniColumns, mini); err != nil {
		return nil, err
	}

	var newCells []map[string]string
	for i := range rows {
		if rows[i].IsNew {
			newCells = append(newCells, rows[i].Cells)
		}
	}
	if err := tabular.Write(outNew, columns, newCells); err != nil {
		return nil, err
	}

	return []string{outProducts, outInvoices, outFull, outMini, outNew}, nil
}

// writeMergedJSON concatenates the raw elements of the base and delta
// documents and writes them as one 2-space-indented JSON array.
func writeMergedJSON(path, basePath, deltaPath string) error {
	base, err := purchasing.LoadRaw(basePath)
	if err != nil {
		return err
	}
	delta, err := purchasing.LoadRaw(deltaPath)
	if err != nil {
		return err
	}
	elems := make([]json.RawMessage, 0, len(base)+len(delta))
	elems = append(elems, base...)
	elems = append(elems, delta...)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(elems); err != nil {
		return pkgerrors.WrapParse("json", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return pkgerrors.WrapIO("write", path, err)
	}
	return nil
}
