// Package schema holds the output schema as configuration data: the stable
// full column list, the mini column list, the MCU parameter vocabulary, and
// the optional declarative schema mutations. Keeping these out of the
// reconciliation core lets the column set evolve without touching merge
// logic.
package schema

import (
	"os"

	"github.com/goccy/go-yaml"

	pkgerrors "github.com/jbmln/partsmerge/pkg/errors"
)

// Column names populated by the row projector. The configured column list
// selects and orders a subset of these (plus any promoted columns).
const (
	ColDescription       = "description"
	ColCategory          = "category"
	ColDKPN              = "dk_pn"
	ColMfrPN             = "mfr_pn"
	ColMfr               = "mfr"
	ColQtyShipped        = "qty_shipped"
	ColUnitPrice         = "gbp_unit_price"
	ColExtPrice          = "gbp_ext_price"
	ColInvoiceID         = "invoice_id"
	ColDateShipped       = "date_shipped"
	ColSeries            = "series"
	ColProductStatus     = "product_status"
	ColPackageType       = "package_type"
	ColCoreProcessor     = "core_processor"
	ColCoreType          = "core_type"
	ColClockSpeed        = "clock_speed"
	ColProgramMemorySize = "program_memory_size"
	ColOtherParameters   = "other_parameters"

	// Mini schema only.
	ColQtyBought = "qty_bought"
)

// Config is the externally supplied output-schema configuration.
type Config struct {
	Columns     []string  `yaml:"columns"`
	MiniColumns []string  `yaml:"mini_columns"`
	MCUParams   MCUParams `yaml:"mcu_params"`
	Mutations   Mutations `yaml:"mutations"`
}

// MCUParams names the product parameters promoted into dedicated MCU
// columns. These names are excluded from the other-parameters blob for
// MCU-classified products.
type MCUParams struct {
	CoreProcessor     string `yaml:"core_processor"`
	CoreSize          string `yaml:"core_size"`
	Speed             string `yaml:"speed"`
	ProgramMemorySize string `yaml:"program_memory_size"`
}

// Names returns the promoted parameter names in a stable order.
func (m MCUParams) Names() []string {
	return []string{m.CoreProcessor, m.CoreSize, m.Speed, m.ProgramMemorySize}
}

// Promotion moves one other-parameters key into a dedicated column.
type Promotion struct {
	Param  string `yaml:"param"`
	Column string `yaml:"column"`
}

// Mutations is the optional, declarative post-pass over the projected rows
// and column list. Disabled (zero) by default.
type Mutations struct {
	DropColumns  []string    `yaml:"drop_columns"`
	Promote      []Promotion `yaml:"promote"`
	InsertBefore string      `yaml:"insert_before"`
}

// IsZero reports whether no mutations are configured.
func (m Mutations) IsZero() bool {
	return len(m.DropColumns) == 0 && len(m.Promote) == 0
}

// Anchor returns the column new promoted columns are inserted before.
func (m Mutations) Anchor() string {
	if m.InsertBefore != "" {
		return m.InsertBefore
	}
	return ColOtherParameters
}

// Default returns the compiled-in schema configuration: the stable full
// column list, the 4-column mini schema, and the vendor's MCU parameter
// names. Mutations are disabled.
func Default() *Config {
	return &Config{
		Columns: []string{
			ColDescription,
			ColCategory,
			ColDKPN,
			ColMfrPN,
			ColMfr,
			ColQtyShipped,
			ColUnitPrice,
			ColExtPrice,
			ColInvoiceID,
			ColDateShipped,
			ColSeries,
			ColProductStatus,
			ColPackageType,
			ColCoreProcessor,
			ColCoreType,
			ColClockSpeed,
			ColProgramMemorySize,
			ColOtherParameters,
		},
		MiniColumns: []string{ColMfrPN, ColDKPN, ColDescription, ColQtyBought},
		MCUParams: MCUParams{
			CoreProcessor:     "Core Processor",
			CoreSize:          "Core Size",
			Speed:             "Speed",
			ProgramMemorySize: "Program Memory Size",
		},
	}
}

// Load reads a schema configuration from a YAML file. Omitted fields keep
// their compiled-in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.WrapIO("read", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, pkgerrors.WrapParse("yaml", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if len(c.Columns) == 0 {
		return pkgerrors.NewValidationError("columns", c.Columns, "cannot be empty")
	}
	if len(c.MiniColumns) == 0 {
		return pkgerrors.NewValidationError("mini_columns", c.MiniColumns, "cannot be empty")
	}
	seen := make(map[string]struct{}, len(c.Columns))
	for _, col := range c.Columns {
		if _, dup := seen[col]; dup {
			return pkgerrors.NewValidationError("columns", col, "duplicate column")
		}
		seen[col] = struct{}{}
	}
	for _, p := range c.Mutations.Promote {
		if p.Param == "" || p.Column == "" {
			return pkgerrors.NewValidationError("mutations.promote", p, "param and column are required")
		}
	}
	return nil
}
