// Package discover locates the reconciliation inputs inside a directory
// without relying on filenames: JSON documents are classified by structural
// shape, base/delta pairs are selected by size and key overlap, and the
// full/mini CSV pair is selected by column and row counts.
package discover

import (
	"encoding/json"
	"os"
)

// Kind labels a classified JSON document.
type Kind string

// Document kinds recognized by the classifier.
const (
	KindInvoice Kind = "invoice"
	KindProduct Kind = "product"
	KindUnknown Kind = "unknown"
)

// invoiceMarkers and productMarkers are the keys whose presence in the
// first element decides a document's kind.
var (
	invoiceMarkers = []string{"invoiceDetails", "invoices", "boxes"}
	productMarkers = []string{"productVariations", "parameters"}
)

// ClassifyDocument labels raw JSON by structural shape: a non-empty array
// of objects whose first element carries an invoice marker is an invoice
// set; a product marker makes it a product set. Only the first element is
// inspected. Anything else, including unparseable input, is unknown.
func ClassifyDocument(data []byte) Kind {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil || len(elems) == 0 {
		return KindUnknown
	}

	var first map[string]json.RawMessage
	if err := json.Unmarshal(elems[0], &first); err != nil {
		return KindUnknown
	}

	for _, k := range invoiceMarkers {
		if _, ok := first[k]; ok {
			return KindInvoice
		}
	}
	for _, k := range productMarkers {
		if _, ok := first[k]; ok {
			return KindProduct
		}
	}
	return KindUnknown
}

// ClassifyFile classifies the JSON document at path. Read or parse
// failures are not fatal; the file is reported unknown and excluded from
// further consideration.
func ClassifyFile(path string) Kind {
	data, err := os.ReadFile(path)
	if err != nil {
		return KindUnknown
	}
	return ClassifyDocument(data)
}
