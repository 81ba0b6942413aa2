package report_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbmln/partsmerge/pkg/discover"
	"github.com/jbmln/partsmerge/pkg/reconcile"
	"github.com/jbmln/partsmerge/pkg/report"
)

func sampleResult() *reconcile.Result {
	return &reconcile.Result{
		Inputs: &discover.Inputs{
			Invoices: discover.Pair{Base: "/in/inv_base.json", Delta: "/in/inv_delta.json"},
			Products: discover.Pair{Base: "/in/prod_base.json", Delta: "/in/prod_delta.json"},
			CSVs:     discover.CSVPair{Full: "/in/full.csv", Mini: "/in/mini.csv"},
		},
		Outputs:            []string{"/out/merged_products_out.json"},
		ExpectedNew:        3,
		ActualNew:          3,
		RowDiffVsInputFull: 9,
		MCURows:            2,
		Missingness:        0.1234,
	}
}

func TestNewStampsRunID(t *testing.T) {
	r := report.New(sampleResult())

	_, err := uuid.Parse(r.RunID)
	require.NoError(t, err)
	assert.False(t, r.Timestamp.IsZero())
}

func TestReportRendering(t *testing.T) {
	r := report.New(sampleResult())

	var sb strings.Builder
	require.NoError(t, r.Write(&sb))
	out := sb.String()

	assert.Contains(t, out, r.RunID)
	assert.Contains(t, out, "inv_base.json")
	assert.Contains(t, out, "inv_delta.json")
	assert.Contains(t, out, "full.csv")
	assert.Contains(t, out, "/out/merged_products_out.json")
	assert.Contains(t, out, "expected new rows (delta-only): 3")
	assert.Contains(t, out, "row diff vs input full csv    : 9")
	assert.Contains(t, out, "MCU rows (core_processor non-empty): 2")
	assert.Contains(t, out, "12.34%")
	assert.Equal(t, out, r.String())
}

func TestReportDryRun(t *testing.T) {
	res := sampleResult()
	res.Outputs = nil

	out := report.New(res).String()
	assert.Contains(t, out, "dry run, nothing written")
}
