package cmd

import (
	"github.com/adtools/mediamath/core"
	"github.com/adtools/mediamath/internal/contract"
	"github.com/spf13/cobra"
)

// solveCmd computes the missing quantity of a metric family.
var solveCmd = &cobra.Command{
	Use:   "solve <family>",
	Short: "Solve CPM, CPV, CTR or view rate from the other two quantities.",
	Long: `Solve one metric family from the quantities you already know.

Each family relates exactly three quantities:
  cpm      - budget, impressions, cpm
  cpv      - budget, views, cpv (views doubles as clicks)
  ctr      - clicks, impressions, ctr
  viewRate - views, impressions, viewRate

By default the family's rate metric is solved. Use --target to solve for
another field, or --auto to let the solver pick the unknown field from the
values provided. When an industry and media type are selected, a computed
rate metric is compared against the industry benchmark.

Examples:
  # Compute CPM from budget and impressions
  mediamath solve cpm --budget 1000 --impressions 400000

  # How many impressions does $500 buy at a $2.50 CPM?
  mediamath solve cpm --target impressions --budget 500 --cpm 2.50

  # Let the solver decide, and benchmark against Retail video
  mediamath solve viewRate --auto --views 25000 --impressions 100000 -i retail -m video

  # Export the result as JSON
  mediamath solve ctr --clicks 250 --impressions 50000 --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSolve(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot solve metric", err)
		}
	},
}
