// Package purchasing defines the document model for the two purchasing
// dataset generations: invoice document sets and product document sets as
// exported by the vendor, plus the identity keys used to deduplicate and
// diff them.
//
// Numeric wire fields are kept as json.Number so that values render back
// exactly as they appeared in the source documents.
package purchasing

import "encoding/json"

// InvoiceSet is an ordered sequence of orders as read from one invoice
// document. Sets are read once and never mutated; base and delta sets are
// concatenated for output but keyed separately.
type InvoiceSet []Order

// Order groups the invoice headers and line-item details of one order.
type Order struct {
	Invoices       []Invoice       `json:"invoices"`
	InvoiceDetails []InvoiceDetail `json:"invoiceDetails"`
}

// Invoice is an invoice header. Line items reference it by InvoiceID.
type Invoice struct {
	InvoiceID   json.Number `json:"invoiceId"`
	DateShipped string      `json:"dateShipped"`
}

// InvoiceDetail is a single purchased line item.
type InvoiceDetail struct {
	InvoiceID                 json.Number `json:"invoiceId"`
	DetailID                  json.Number `json:"detailId"`
	DigiKeyProductNumber      string      `json:"digiKeyProductNumber"`
	ManufacturerProductNumber string      `json:"manufacturerProductNumber"`
	ManufacturerName          string      `json:"manufacturerName"`
	Description               string      `json:"description"`
	QuantityShipped           json.Number `json:"quantityShipped"`
	QuantityInitial           json.Number `json:"quantityInitial"`
	ExtendedPrice             json.Number `json:"extendedPrice"`
	FormattedUnitPrice        string      `json:"formattedUnitPrice"`
	FormattedExtendedPrice    string      `json:"formattedExtendedPrice"`
}

// HeaderByID builds a lookup from invoice ID to header for one order.
func (o *Order) HeaderByID() map[json.Number]*Invoice {
	out := make(map[json.Number]*Invoice, len(o.Invoices))
	for i := range o.Invoices {
		out[o.Invoices[i].InvoiceID] = &o.Invoices[i]
	}
	return out
}

// Concat returns the concatenation of invoice sets in order. The result
// shares the underlying orders; callers must not mutate them.
func Concat(sets ...InvoiceSet) InvoiceSet {
	var n int
	for _, s := range sets {
		n += len(s)
	}
	out := make(InvoiceSet, 0, n)
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}
