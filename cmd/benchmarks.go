package cmd

import (
	"github.com/adtools/mediamath/core"
	"github.com/adtools/mediamath/internal/contract"
	"github.com/spf13/cobra"
)

// benchmarksCmd prints the reference table.
var benchmarksCmd = &cobra.Command{
	Use:   "benchmarks",
	Short: "List industry benchmarks by media type.",
	Long: `Print the benchmark table used for evaluation, including any overrides
from the config file. Filter with --industry and --media.

A dash means no benchmark exists for that combination.

Examples:
  mediamath benchmarks --media video
  mediamath benchmarks --output parquet --output-file benchmarks.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteBenchmarks(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list benchmarks", err)
		}
	},
}
