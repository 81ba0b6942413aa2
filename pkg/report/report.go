// Package report renders the run summary of a reconciliation pass: the
// auto-discovered inputs, the written outputs, and the verification and
// coverage stats.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/agentstation/utc"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jbmln/partsmerge/pkg/reconcile"
)

// Report is the printable summary of one completed pass.
type Report struct {
	RunID     string
	Timestamp utc.Time

	InvoicesBase  string
	InvoicesDelta string
	ProductsBase  string
	ProductsDelta string
	FullCSV       string
	MiniCSV       string

	Outputs []string

	ExpectedNew        int
	ActualNew          int
	RowDiffVsInputFull int
	MCURows            int
	Missingness        float64
}

// New builds a report from a pipeline result, stamped with a fresh run ID.
func New(res *reconcile.Result) *Report {
	return &Report{
		RunID:              uuid.New().String(),
		Timestamp:          utc.Now(),
		InvoicesBase:       res.Inputs.Invoices.Base,
		InvoicesDelta:      res.Inputs.Invoices.Delta,
		ProductsBase:       res.Inputs.Products.Base,
		ProductsDelta:      res.Inputs.Products.Delta,
		FullCSV:            res.Inputs.CSVs.Full,
		MiniCSV:            res.Inputs.CSVs.Mini,
		Outputs:            res.Outputs,
		ExpectedNew:        res.ExpectedNew,
		ActualNew:          res.ActualNew,
		RowDiffVsInputFull: res.RowDiffVsInputFull,
		MCURows:            res.MCURows,
		Missingness:        res.Missingness,
	}
}

const rule = "────────────────────────────────────────────────────────────────────────────────"

// Write renders the report to w.
func (r *Report) Write(w io.Writer) error {
	title := cases.Title(language.English)

	var sb strings.Builder
	sb.WriteString(rule + "\n")
	fmt.Fprintf(&sb, "Run %s at %s\n", r.RunID, r.Timestamp)

	sb.WriteString(title.String("inputs (auto-discovered):") + "\n")
	fmt.Fprintf(&sb, "  invoices base : %s\n", filepath.Base(r.InvoicesBase))
	fmt.Fprintf(&sb, "  invoices delta: %s\n", filepath.Base(r.InvoicesDelta))
	fmt.Fprintf(&sb, "  products base : %s\n", filepath.Base(r.ProductsBase))
	fmt.Fprintf(&sb, "  products delta: %s\n", filepath.Base(r.ProductsDelta))
	fmt.Fprintf(&sb, "  full csv      : %s\n", filepath.Base(r.FullCSV))
	fmt.Fprintf(&sb, "  mini csv      : %s\n", filepath.Base(r.MiniCSV))

	sb.WriteString(title.String("outputs:") + "\n")
	if len(r.Outputs) == 0 {
		sb.WriteString("  (dry run, nothing written)\n")
	}
	for _, path := range r.Outputs {
		fmt.Fprintf(&sb, "  %s\n", path)
	}

	sb.WriteString(title.String("checks:") + "\n")
	fmt.Fprintf(&sb, "  expected new rows (delta-only): %d\n", r.ExpectedNew)
	fmt.Fprintf(&sb, "  actual new rows               : %d\n", r.ActualNew)
	fmt.Fprintf(&sb, "  row diff vs input full csv    : %d\n", r.RowDiffVsInputFull)
	fmt.Fprintf(&sb, "  MCU rows (core_processor non-empty): %d\n", r.MCURows)
	fmt.Fprintf(&sb, "  missingness (non-MCU rows only): %.2f%%\n", r.Missingness*100)
	sb.WriteString(rule + "\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// String renders the report as a string.
func (r *Report) String() string {
	var sb strings.Builder
	_ = r.Write(&sb)
	return sb.String()
}
