package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbmln/partsmerge/pkg/purchasing"
	"github.com/jbmln/partsmerge/pkg/reconcile"
)

func product(pns []string, series string) purchasing.Product {
	vars := make([]purchasing.Variation, len(pns))
	for i, pn := range pns {
		vars[i] = purchasing.Variation{DigiKeyProductNumber: pn}
	}
	return purchasing.Product{
		Variations: vars,
		Series:     &purchasing.Series{Name: series},
	}
}

func TestBuildLookupBasePrecedence(t *testing.T) {
	base := purchasing.ProductSet{product([]string{"A-ND", "A-CT"}, "base")}
	delta := purchasing.ProductSet{
		product([]string{"A-ND"}, "delta"), // shared key must not override
		product([]string{"B-ND"}, "delta"),
	}

	lut := reconcile.BuildLookup(base, delta)
	require.Len(t, lut, 3)

	assert.Equal(t, "base", lut["A-ND"].SeriesName())
	assert.Equal(t, "base", lut["A-CT"].SeriesName())
	assert.Equal(t, "delta", lut["B-ND"].SeriesName())
}

func TestBuildLookupFirstOccurrenceWinsWithinSet(t *testing.T) {
	base := purchasing.ProductSet{
		product([]string{"A-ND"}, "first"),
		product([]string{"A-ND"}, "second"),
	}

	lut := reconcile.BuildLookup(base, nil)
	assert.Equal(t, "first", lut["A-ND"].SeriesName())
}

func TestBuildLookupSkipsEmptyPartNumbers(t *testing.T) {
	base := purchasing.ProductSet{product([]string{"", "A-ND"}, "s")}

	lut := reconcile.BuildLookup(base, nil)
	require.Len(t, lut, 1)
	assert.Contains(t, lut, purchasing.ProductKey("A-ND"))
}
