package reconcile

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/jbmln/partsmerge/pkg/purchasing"
	"github.com/jbmln/partsmerge/pkg/schema"
)

// mcuCategoryTerms classify a product as a microcontroller when any name in
// its category tree contains one of them (case-insensitive).
var mcuCategoryTerms = []string{
	"microcontroller",
	"application specific microcontrollers",
}

// Row is one projected output row: the flat cells keyed by column name plus
// the bookkeeping the verifier and the mini schema need.
type Row struct {
	Key       purchasing.DetailKey
	IsNew     bool
	QtyBought string
	Other     map[string]string // other-parameters dict backing the blob cell
	Cells     map[string]string
}

// ProjectRows builds one row per unique line-item key, in document order
// with first occurrence winning. Each row joins the line item with its
// invoice header (same order) and its product record from the lookup.
// newKeys marks which keys count as newly purchased; pass nil when
// projecting a single generation.
func ProjectRows(
	invoices purchasing.InvoiceSet,
	lookup Lookup,
	newKeys map[purchasing.DetailKey]struct{},
	mcu schema.MCUParams,
) []Row {
	seen := make(map[purchasing.DetailKey]struct{})
	var rows []Row

	for i := range invoices {
		order := &invoices[i]
		headers := order.HeaderByID()

		for j := range order.InvoiceDetails {
			d := &order.InvoiceDetails[j]
			key := d.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			prod := lookup[purchasing.ProductKey(d.DigiKeyProductNumber)]
			header := headers[d.InvoiceID]

			_, isNew := newKeys[key]
			row := Row{
				Key:       key,
				IsNew:     isNew,
				QtyBought: d.QuantityInitial.String(),
				Cells:     make(map[string]string, 18),
			}

			row.Cells[schema.ColDescription] = d.Description
			row.Cells[schema.ColCategory] = prod.CategoryName()
			row.Cells[schema.ColDKPN] = d.DigiKeyProductNumber
			row.Cells[schema.ColMfrPN] = d.ManufacturerProductNumber
			row.Cells[schema.ColMfr] = d.ManufacturerName
			row.Cells[schema.ColQtyShipped] = d.QuantityShipped.String()
			row.Cells[schema.ColUnitPrice] = d.FormattedUnitPrice
			row.Cells[schema.ColExtPrice] = d.FormattedExtendedPrice
			row.Cells[schema.ColInvoiceID] = d.InvoiceID.String()
			if header != nil {
				row.Cells[schema.ColDateShipped] = header.DateShipped
			} else {
				row.Cells[schema.ColDateShipped] = ""
			}

			row.Cells[schema.ColSeries] = prod.SeriesName()
			row.Cells[schema.ColProductStatus] = prod.Status()
			row.Cells[schema.ColPackageType] = prod.PackageTypeFor(d.DigiKeyProductNumber)

			isMCU := IsMCUProduct(prod)
			if isMCU {
				cp, ct, clk, pm := ExtractMCUFields(prod, mcu)
				row.Cells[schema.ColCoreProcessor] = cp
				row.Cells[schema.ColCoreType] = ct
				row.Cells[schema.ColClockSpeed] = clk
				row.Cells[schema.ColProgramMemorySize] = pm
			} else {
				row.Cells[schema.ColCoreProcessor] = ""
				row.Cells[schema.ColCoreType] = ""
				row.Cells[schema.ColClockSpeed] = ""
				row.Cells[schema.ColProgramMemorySize] = ""
			}

			row.Other = otherParams(prod, mcu, isMCU)
			row.Cells[schema.ColOtherParameters] = marshalBlob(row.Other)

			rows = append(rows, row)
		}
	}
	return rows
}

// IsMCUProduct reports whether any name in the product's category tree
// contains an MCU term, case-insensitive.
func IsMCUProduct(prod *purchasing.Product) bool {
	if prod == nil {
		return false
	}
	joined := strings.ToLower(strings.Join(prod.CategoryNames(), " "))
	for _, term := range mcuCategoryTerms {
		if strings.Contains(joined, term) {
			return true
		}
	}
	return false
}

// ExtractMCUFields pulls the promoted MCU parameters out of the product.
// The core type is derived from the core processor value: the substring
// from "Cortex" on (registered-mark glyphs stripped), or "AVR", falling
// back to the core size and finally the raw processor value.
func ExtractMCUFields(prod *purchasing.Product, mcu schema.MCUParams) (coreProcessor, coreType, clockSpeed, programMemorySize string) {
	params := prod.ParameterMap()

	coreProcessor = params[mcu.CoreProcessor]
	clockSpeed = params[mcu.Speed]
	programMemorySize = params[mcu.ProgramMemorySize]
	coreSize := params[mcu.CoreSize]

	switch {
	case strings.Contains(coreProcessor, "Cortex"):
		ct := coreProcessor[strings.Index(coreProcessor, "Cortex"):]
		ct = strings.ReplaceAll(ct, "Cortex®", "Cortex")
		ct = strings.ReplaceAll(ct, "®", "")
		coreType = strings.TrimSpace(ct)
	case strings.Contains(coreProcessor, "AVR"):
		coreType = "AVR"
	case coreSize != "":
		coreType = coreSize
	default:
		coreType = coreProcessor
	}
	return coreProcessor, coreType, clockSpeed, programMemorySize
}

// otherParams flattens the product's parameters. For MCU-classified
// products the four promoted names are excluded so the blob never
// duplicates a dedicated column; every other product keeps its full
// parameter set, even parameters that happen to share a promoted name.
func otherParams(prod *purchasing.Product, mcu schema.MCUParams, isMCU bool) map[string]string {
	if prod == nil {
		return map[string]string{}
	}
	promoted := make(map[string]struct{}, 4)
	if isMCU {
		for _, name := range mcu.Names() {
			promoted[name] = struct{}{}
		}
	}
	out := make(map[string]string, len(prod.Parameters))
	for _, prm := range prod.Parameters {
		if _, skip := promoted[prm.ParameterText]; skip {
			continue
		}
		out[prm.ParameterText] = prm.ValueText
	}
	return out
}

// marshalBlob serializes an other-parameters dict deterministically (keys
// sorted) without HTML escaping, so values like "Tape & Reel" survive
// verbatim.
func marshalBlob(params map[string]string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a map[string]string cannot fail.
	_ = enc.Encode(params)
	return strings.TrimRight(buf.String(), "\n")
}
