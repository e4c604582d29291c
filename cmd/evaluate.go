package cmd

import (
	"github.com/adtools/mediamath/core"
	"github.com/adtools/mediamath/internal/contract"
	"github.com/spf13/cobra"
)

// evaluateCmd compares a known rate metric against the benchmark table.
var evaluateCmd = &cobra.Command{
	Use:   "evaluate <metric> <value>",
	Short: "Compare a CPM, CPV, CTR or view rate value to its industry benchmark.",
	Long: `Classify a metric value as good, average or poor for an industry and media type.

Values within the threshold band (10 percentage points by default) of the
benchmark are average. Lower is better for cpm and cpv; higher is better for
ctr and viewRate. Combinations without a benchmark are reported, not failed.

Examples:
  # Is a $3.10 display CPM good for finance?
  mediamath evaluate cpm 3.10 --industry finance --media display

  # Tighten the average band to 5 points
  mediamath evaluate ctr 0.9% -i retail -m social --threshold 5`,
	Args:    cobra.ExactArgs(2),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteEvaluate(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot evaluate metric", err)
		}
	},
}
