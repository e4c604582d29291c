package cmd

import (
	"github.com/adtools/mediamath/core"
	"github.com/adtools/mediamath/internal/contract"
	"github.com/spf13/cobra"
)

// batchCmd solves a file of scenarios in one run.
var batchCmd = &cobra.Command{
	Use:   "batch <scenario-file>",
	Short: "Solve and benchmark every scenario in a YAML, JSON or TOML file.",
	Long: `Run many solve requests from a scenario file and report them together.

Each scenario names a family and its inputs, and may set a target, a mode,
an industry and a media type. Industry and media fall back to the file-level
values, then to --industry and --media. One invalid scenario fails the run.

Example file:
  industry: Retail
  media: Display
  scenarios:
    - name: spring display
      family: cpm
      inputs: {budget: 1000, impressions: 400000}
    - name: reach at $2.50
      family: cpm
      target: impressions
      inputs: {budget: 500, cpm: 2.5}

Examples:
  mediamath batch scenarios.yaml
  mediamath batch scenarios.yaml --output parquet --output-file results.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteBatch(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run batch", err)
		}
	},
}
