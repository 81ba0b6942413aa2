package reconcile

import (
	"context"

	"github.com/jbmln/partsmerge/pkg/discover"
	"github.com/jbmln/partsmerge/pkg/logging"
	"github.com/jbmln/partsmerge/pkg/purchasing"
	"github.com/jbmln/partsmerge/pkg/schema"
	"github.com/jbmln/partsmerge/pkg/tabular"
)

// Pipeline is one configured reconciliation pass over an input directory.
type Pipeline struct {
	inDir  string
	outDir string
	cfg    *schema.Config
	dryRun bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithSchema overrides the compiled-in schema configuration.
func WithSchema(cfg *schema.Config) Option {
	return func(p *Pipeline) {
		if cfg != nil {
			p.cfg = cfg
		}
	}
}

// WithDryRun runs discovery, projection and verification but writes no
// outputs.
func WithDryRun(dry bool) Option {
	return func(p *Pipeline) {
		p.dryRun = dry
	}
}

// New creates a reconciliation pipeline reading from inDir and writing to
// outDir.
func New(inDir, outDir string, opts ...Option) *Pipeline {
	p := &Pipeline{
		inDir:  inDir,
		outDir: outDir,
		cfg:    schema.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result summarizes one completed reconciliation pass.
type Result struct {
	Inputs  *discover.Inputs
	Rows    []Row
	Columns []string // post-mutation output column list

	ExpectedNew        int
	ActualNew          int
	RowDiffVsInputFull int
	MCURows            int     // rows with a populated core processor
	Missingness        float64 // empty-cell fraction over non-MCU rows

	Outputs []string // paths written; empty on a dry run
}

// Run executes the pass: discover inputs, key both generations, project
// rows with base precedence, verify the merge invariants, and write the
// five outputs. Any invariant violation aborts before anything is written.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	logger := logging.Ctx(ctx)

	inputs, err := discover.Discover(p.inDir)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Str("invoices_base", inputs.Invoices.Base).
		Str("invoices_delta", inputs.Invoices.Delta).
		Str("products_base", inputs.Products.Base).
		Str("products_delta", inputs.Products.Delta).
		Str("full_csv", inputs.CSVs.Full).
		Str("mini_csv", inputs.CSVs.Mini).
		Msg("Discovered inputs")

	invBase, err := purchasing.LoadInvoices(inputs.Invoices.Base)
	if err != nil {
		return nil, err
	}
	invDelta, err := purchasing.LoadInvoices(inputs.Invoices.Delta)
	if err != nil {
		return nil, err
	}
	prodBase, err := purchasing.LoadProducts(inputs.Products.Base)
	if err != nil {
		return nil, err
	}
	prodDelta, err := purchasing.LoadProducts(inputs.Products.Delta)
	if err != nil {
		return nil, err
	}

	baseKeys := purchasing.CollectDetailKeys(invBase)
	deltaOnly := make(map[purchasing.DetailKey]struct{})
	for k := range purchasing.DetailKeys(invDelta) {
		if _, ok := baseKeys[k]; !ok {
			deltaOnly[k] = struct{}{}
		}
	}

	lookup := BuildLookup(prodBase, prodDelta)

	baseRows := ProjectRows(invBase, lookup, nil, p.cfg.MCUParams)
	merged := ProjectRows(purchasing.Concat(invBase, invDelta), lookup, deltaOnly, p.cfg.MCUParams)

	if err := VerifyNewRowCount(merged, len(deltaOnly)); err != nil {
		return nil, err
	}
	if err := VerifyOldDataStable(baseRows, merged, p.cfg.Columns); err != nil {
		return nil, err
	}
	if err := VerifyMCUPopulation(merged); err != nil {
		return nil, err
	}
	logger.Info().
		Int("rows", len(merged)).
		Int("new_rows", len(deltaOnly)).
		Msg("Merge verified")

	fullInfo, err := tabular.Probe(inputs.CSVs.Full)
	if err != nil {
		return nil, err
	}

	columns := ApplyMutations(merged, p.cfg.Columns, p.cfg.Mutations)

	res := &Result{
		Inputs:             inputs,
		Rows:               merged,
		Columns:            columns,
		ExpectedNew:        len(deltaOnly),
		ActualNew:          len(deltaOnly),
		RowDiffVsInputFull: len(merged) - fullInfo.Rows,
	}
	res.MCURows, res.Missingness = summarize(merged, columns)

	if p.dryRun {
		logger.Info().Msg("Dry run, skipping output writes")
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	outputs, err := writeOutputs(p.outDir, inputs, merged, columns, p.cfg.MiniColumns)
	if err != nil {
		return nil, err
	}
	res.Outputs = outputs
	for _, path := range outputs {
		logger.Info().Str("path", path).Msg("Wrote output")
	}
	return res, nil
}

// summarize computes the informational run stats: the count of rows with a
// populated core processor, and the empty-cell fraction of the remaining
// rows over the output columns.
func summarize(rows []Row, columns []string) (mcuRows int, missingness float64) {
	var totalCells, missingCells int
	for i := range rows {
		if rows[i].Cells[schema.ColCoreProcessor] != "" {
			mcuRows++
			continue
		}
		for _, col := range columns {
			totalCells++
			if rows[i].Cells[col] == "" {
				missingCells++
			}
		}
	}
	if totalCells > 0 {
		missingness = float64(missingCells) / float64(totalCells)
	}
	return mcuRows, missingness
}
