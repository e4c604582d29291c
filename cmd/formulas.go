package cmd

import (
	"github.com/adtools/mediamath/core"
	"github.com/adtools/mediamath/internal/contract"
	"github.com/spf13/cobra"
)

// formulasCmd documents the inverse formulas.
var formulasCmd = &cobra.Command{
	Use:     "formulas",
	Short:   "Show the formulas behind each metric family.",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFormulas(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot show formulas", err)
		}
	},
}
