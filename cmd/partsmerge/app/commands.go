package app

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jbmln/partsmerge/pkg/discover"
	"github.com/jbmln/partsmerge/pkg/logging"
	"github.com/jbmln/partsmerge/pkg/reconcile"
	"github.com/jbmln/partsmerge/pkg/report"
	"github.com/jbmln/partsmerge/pkg/schema"
)

// NewRunCommand creates the run command: one full reconciliation pass.
func (a *App) NewRunCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Reconcile the base and delta exports and write the merged outputs",
		Long: `Run discovers the input files in the input directory, merges the delta
export into the base export, verifies the merge invariants, and writes the
merged JSON documents and the three CSVs to the output directory.

With --dry the pass runs through verification but writes nothing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.schemaConfig()
			if err != nil {
				return err
			}

			runID := uuid.New().String()
			ctx := logging.WithLogger(cmd.Context(), a.logger)
			ctx = logging.WithRunID(ctx, runID)

			pipeline := reconcile.New(a.config.InDir, a.config.OutDir,
				reconcile.WithSchema(cfg),
				reconcile.WithDryRun(dryRun),
			)
			res, err := pipeline.Run(ctx)
			if err != nil {
				return err
			}

			rep := report.New(res)
			rep.RunID = runID
			return rep.Write(cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry", false, "verify the merge but write no outputs")
	return cmd
}

// NewDiscoverCommand creates the discover command: classify and select the
// inputs without merging anything.
func (a *App) NewDiscoverCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "discover",
		Short: "Show which input files a run would select",
		RunE: func(cmd *cobra.Command, _ []string) error {
			inputs, err := discover.Discover(a.config.InDir)
			if err != nil {
				return err
			}

			cmd.Printf("invoices base : %s\n", inputs.Invoices.Base)
			cmd.Printf("invoices delta: %s\n", inputs.Invoices.Delta)
			cmd.Printf("products base : %s\n", inputs.Products.Base)
			cmd.Printf("products delta: %s\n", inputs.Products.Delta)
			cmd.Printf("full csv      : %s\n", inputs.CSVs.Full)
			cmd.Printf("mini csv      : %s\n", inputs.CSVs.Mini)
			return nil
		},
	}
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("partsmerge %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}

// schemaConfig resolves the schema configuration: the file named by
// --schema when set, else the compiled-in defaults.
func (a *App) schemaConfig() (*schema.Config, error) {
	if a.config.SchemaFile == "" {
		return schema.Default(), nil
	}
	return schema.Load(a.config.SchemaFile)
}
