package purchasing

import (
	"encoding/json"
	"os"

	"github.com/jbmln/partsmerge/pkg/errors"
)

// LoadInvoices reads and decodes an invoice document set from path.
func LoadInvoices(path string) (InvoiceSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var set InvoiceSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return set, nil
}

// LoadProducts reads and decodes a product document set from path.
func LoadProducts(path string) (ProductSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var set ProductSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return set, nil
}

// LoadRaw reads a JSON document as an array of raw messages. Merged JSON
// outputs are built from raw elements so fields the row projector never
// reads survive the merge untouched.
func LoadRaw(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return elems, nil
}
