package discover_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbmln/partsmerge/pkg/discover"
)

func TestClassifyDocument(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want discover.Kind
	}{
		{"invoice by details", `[{"invoiceDetails": []}]`, discover.KindInvoice},
		{"invoice by headers", `[{"invoices": []}]`, discover.KindInvoice},
		{"invoice by boxes", `[{"boxes": []}]`, discover.KindInvoice},
		{"product by variations", `[{"productVariations": []}]`, discover.KindProduct},
		{"product by parameters", `[{"parameters": []}]`, discover.KindProduct},
		{"only first element inspected", `[{"something": 1}, {"invoiceDetails": []}]`, discover.KindUnknown},
		{"empty array", `[]`, discover.KindUnknown},
		{"not an array", `{"invoiceDetails": []}`, discover.KindUnknown},
		{"array of scalars", `[1, 2, 3]`, discover.KindUnknown},
		{"malformed", `[{"invoiceDetails": `, discover.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, discover.ClassifyDocument([]byte(tt.doc)))
		})
	}
}

func TestClassifyFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "a.json")
	require.NoError(t, os.WriteFile(good, []byte(`[{"productVariations": []}]`), 0o644))
	assert.Equal(t, discover.KindProduct, discover.ClassifyFile(good))

	assert.Equal(t, discover.KindUnknown, discover.ClassifyFile(filepath.Join(dir, "missing.json")))
}
