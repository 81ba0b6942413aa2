package discover

import (
	"path/filepath"

	pkgerrors "github.com/jbmln/partsmerge/pkg/errors"
	"github.com/jbmln/partsmerge/pkg/logging"
	"github.com/jbmln/partsmerge/pkg/purchasing"
)

// Inputs holds the six discovered input files of one reconciliation pass.
type Inputs struct {
	Invoices Pair
	Products Pair
	CSVs     CSVPair
}

// Discover locates the reconciliation inputs in dir: it classifies every
// *.json by shape, selects a base/delta pair per kind, and selects the
// full/mini CSV pair from every *.csv. Fewer than two files of a required
// kind is fatal.
func Discover(dir string) (*Inputs, error) {
	jsonPaths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, pkgerrors.WrapIO("glob", dir, err)
	}

	groups := map[Kind][]string{}
	for _, p := range jsonPaths {
		kind := ClassifyFile(p)
		groups[kind] = append(groups[kind], p)
		logging.Debug().Str("path", p).Str("kind", string(kind)).Msg("Classified JSON document")
	}

	invoices, err := SelectBaseDelta("invoice", dir, groups[KindInvoice], invoiceKeySet)
	if err != nil {
		return nil, err
	}

	products, err := SelectBaseDelta("product", dir, groups[KindProduct], productKeySet)
	if err != nil {
		return nil, err
	}

	csvPaths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, pkgerrors.WrapIO("glob", dir, err)
	}
	csvs, err := SelectCSVPair(dir, csvPaths)
	if err != nil {
		return nil, err
	}

	return &Inputs{Invoices: invoices, Products: products, CSVs: csvs}, nil
}

// invoiceKeySet extracts the line-item identity-key set from an invoice
// document.
func invoiceKeySet(path string) (map[string]struct{}, error) {
	set, err := purchasing.LoadInvoices(path)
	if err != nil {
		return nil, err
	}
	out := make(map[string]struct{})
	for k := range purchasing.DetailKeys(set) {
		out[string(k)] = struct{}{}
	}
	return out, nil
}

// productKeySet extracts the vendor-part-number key set from a product
// document.
func productKeySet(path string) (map[string]struct{}, error) {
	set, err := purchasing.LoadProducts(path)
	if err != nil {
		return nil, err
	}
	out := make(map[string]struct{})
	for k := range purchasing.ProductKeys(set) {
		out[string(k)] = struct{}{}
	}
	return out, nil
}
