package purchasing_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbmln/partsmerge/pkg/purchasing"
)

func TestCategoryName(t *testing.T) {
	tests := []struct {
		name    string
		product *purchasing.Product
		want    string
	}{
		{
			name: "first child wins",
			product: &purchasing.Product{Category: &purchasing.Category{
				Name: "Integrated Circuits (ICs)",
				ChildCategories: []purchasing.Category{
					{Name: "Embedded"},
					{Name: "Logic"},
				},
			}},
			want: "Embedded",
		},
		{
			name: "top level when no children",
			product: &purchasing.Product{Category: &purchasing.Category{
				Name: "Resistors",
			}},
			want: "Resistors",
		},
		{
			name:    "nil category",
			product: &purchasing.Product{},
			want:    "",
		},
		{
			name:    "nil product",
			product: nil,
			want:    "",
		},
		{
			name: "empty child name falls back to top",
			product: &purchasing.Product{Category: &purchasing.Category{
				Name:            "Capacitors",
				ChildCategories: []purchasing.Category{{Name: ""}},
			}},
			want: "Capacitors",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.product.CategoryName())
		})
	}
}

func TestCategoryNamesWalksFullTree(t *testing.T) {
	p := &purchasing.Product{Category: &purchasing.Category{
		Name: "Integrated Circuits (ICs)",
		ChildCategories: []purchasing.Category{
			{
				Name: "Embedded",
				ChildCategories: []purchasing.Category{
					{Name: "Microcontrollers"},
				},
			},
			{Name: "Logic"},
		},
	}}

	assert.Equal(t,
		[]string{"Integrated Circuits (ICs)", "Embedded", "Microcontrollers", "Logic"},
		p.CategoryNames())
}

func TestPackageTypeFor(t *testing.T) {
	p := &purchasing.Product{Variations: []purchasing.Variation{
		{DigiKeyProductNumber: "A-CT", PackageType: &purchasing.PackageType{Name: "Cut Tape (CT)"}},
		{DigiKeyProductNumber: "A-ND", PackageType: &purchasing.PackageType{Name: "Tube"}},
		{DigiKeyProductNumber: "A-ND", PackageType: &purchasing.PackageType{Name: "Bulk"}},
	}}

	assert.Equal(t, "Tube", p.PackageTypeFor("A-ND"), "first match in variation order")
	assert.Equal(t, "", p.PackageTypeFor("B-ND"))
}

func TestHeaderByID(t *testing.T) {
	order := purchasing.Order{Invoices: []purchasing.Invoice{
		{InvoiceID: "100", DateShipped: "2024-03-01"},
		{InvoiceID: "101", DateShipped: "2024-03-02"},
	}}

	byID := order.HeaderByID()
	require.Contains(t, byID, json.Number("101"))
	assert.Equal(t, "2024-03-02", byID["101"].DateShipped)
}

func TestLoadInvoicesPreservesNumberText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orders.json")
	doc := `[
	  {
	    "invoices": [{"invoiceId": 100, "dateShipped": "2024-03-01"}],
	    "invoiceDetails": [{
	      "invoiceId": 100, "detailId": 1,
	      "digiKeyProductNumber": "A-ND",
	      "quantityShipped": 25,
	      "extendedPrice": 12.50
	    }]
	  }
	]`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	set, err := purchasing.LoadInvoices(path)
	require.NoError(t, err)
	require.Len(t, set, 1)
	require.Len(t, set[0].InvoiceDetails, 1)

	d := set[0].InvoiceDetails[0]
	assert.Equal(t, "25", d.QuantityShipped.String())
	assert.Equal(t, "12.50", d.ExtendedPrice.String(), "source literal survives decoding")
	assert.Equal(t, purchasing.DetailKey("inv:100|det:1"), d.Key())
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "an array"`), 0o644))

	_, err := purchasing.LoadInvoices(path)
	assert.Error(t, err)

	_, err = purchasing.LoadProducts(path)
	assert.Error(t, err)

	_, err = purchasing.LoadRaw(path)
	assert.Error(t, err)
}

func TestLoadRawRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "products.json")
	doc := `[{"unknownField": 1, "parameters": []}, {"parameters": []}]`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	elems, err := purchasing.LoadRaw(path)
	require.NoError(t, err)
	require.Len(t, elems, 2)
	assert.Contains(t, string(elems[0]), "unknownField")
}
