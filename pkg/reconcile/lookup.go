// Package reconcile merges a base purchasing dataset with a delta export:
// it keys both generations, enriches invoice line items from a product
// lookup with base precedence, verifies the merge invariants, and writes
// the merged outputs.
package reconcile

import "github.com/jbmln/partsmerge/pkg/purchasing"

// Lookup resolves a vendor part number to its product record.
type Lookup map[purchasing.ProductKey]*purchasing.Product

// BuildLookup indexes products by vendor part number with base precedence:
// base products are inserted first, and no later entry ever overwrites an
// earlier one. A part number present in both generations always resolves to
// the base record, which is what keeps pre-existing rows byte-stable across
// a merge.
func BuildLookup(base, delta purchasing.ProductSet) Lookup {
	lut := make(Lookup)
	insert := func(set purchasing.ProductSet) {
		for i := range set {
			for _, v := range set[i].Variations {
				if v.DigiKeyProductNumber == "" {
					continue
				}
				key := purchasing.ProductKey(v.DigiKeyProductNumber)
				if _, ok := lut[key]; !ok {
					lut[key] = &set[i]
				}
			}
		}
	}
	insert(base)
	insert(delta)
	return lut
}
