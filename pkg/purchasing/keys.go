package purchasing

import (
	"iter"
	"strings"
)

// DetailKey uniquely identifies an invoice line item for dedup and
// set-difference purposes. Within one document set, two details sharing a
// key are treated as duplicates and the first occurrence wins.
type DetailKey string

// ProductKey is a vendor part number drawn from a product variation. A
// product exposes one key per variation; all of them resolve to the same
// product record.
type ProductKey string

// Key computes the line item's identity key: (invoiceId, detailId) when
// both are present, else a composite of invoice id, part numbers, quantity
// shipped and extended price.
func (d *InvoiceDetail) Key() DetailKey {
	if d.InvoiceID != "" && d.DetailID != "" {
		return DetailKey("inv:" + d.InvoiceID.String() + "|det:" + d.DetailID.String())
	}
	parts := []string{
		"inv:" + d.InvoiceID.String(),
		"dk:" + d.DigiKeyProductNumber,
		"mfr:" + d.ManufacturerProductNumber,
		"qty:" + d.QuantityShipped.String(),
		"ext:" + d.ExtendedPrice.String(),
	}
	return DetailKey(strings.Join(parts, "|"))
}

// DetailKeys yields one identity key per line item per order, in document
// order. Duplicates are yielded as-is; callers dedup by materializing into
// a set.
func DetailKeys(set InvoiceSet) iter.Seq[DetailKey] {
	return func(yield func(DetailKey) bool) {
		for i := range set {
			for j := range set[i].InvoiceDetails {
				if !yield(set[i].InvoiceDetails[j].Key()) {
					return
				}
			}
		}
	}
}

// ProductKeys yields one key per variation per product that carries a
// non-empty vendor part number. Variations without a part number are
// skipped, not yielded as empty keys.
func ProductKeys(set ProductSet) iter.Seq[ProductKey] {
	return func(yield func(ProductKey) bool) {
		for i := range set {
			for _, v := range set[i].Variations {
				if v.DigiKeyProductNumber == "" {
					continue
				}
				if !yield(ProductKey(v.DigiKeyProductNumber)) {
					return
				}
			}
		}
	}
}

// CollectDetailKeys materializes DetailKeys into a set.
func CollectDetailKeys(set InvoiceSet) map[DetailKey]struct{} {
	out := make(map[DetailKey]struct{})
	for k := range DetailKeys(set) {
		out[k] = struct{}{}
	}
	return out
}

// CollectProductKeys materializes ProductKeys into a set.
func CollectProductKeys(set ProductSet) map[ProductKey]struct{} {
	out := make(map[ProductKey]struct{})
	for k := range ProductKeys(set) {
		out[k] = struct{}{}
	}
	return out
}
