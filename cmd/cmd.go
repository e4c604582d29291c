// Package cmd defines the command-line interface for mediamath.
package cmd

import (
	"github.com/adtools/mediamath/internal/contract"
	"github.com/adtools/mediamath/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(benchmarksCmd)
	rootCmd.AddCommand(formulasCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for benchmark differences")
	rootCmd.PersistentFlags().String("color", contract.DefaultColor, "Enable colored labels in output (auto/yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("emoji", contract.DefaultEmoji, "Enable emojis in text output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().StringP("industry", "i", "", "Benchmark industry, e.g. Retail or B2B")
	rootCmd.PersistentFlags().StringP("media", "m", "", "Benchmark media type: Display or Video or Social or Search or Audio")
	rootCmd.PersistentFlags().Float64("threshold", contract.DefaultThreshold, "Percentage points around a benchmark that count as average")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed for feedback phrases (0 = random)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of solveCmd to Viper
	solveCmd.Flags().StringP("target", "t", "", "Field to solve for (defaults to the family's rate metric)")
	solveCmd.Flags().Bool("auto", false, "Infer the field to solve from the known values")
	solveCmd.Flags().String("budget", "", "Total spend, e.g. 1000 or $1,000")
	solveCmd.Flags().String("impressions", "", "Number of ad impressions")
	solveCmd.Flags().String("views", "", "Number of views or clicks")
	solveCmd.Flags().String("clicks", "", "Number of clicks")
	solveCmd.Flags().String("cpm", "", "Cost per 1,000 impressions")
	solveCmd.Flags().String("cpv", "", "Cost per view or click")
	solveCmd.Flags().String("ctr", "", "Click-through rate in percent, e.g. 2.4 or 2.4%")
	solveCmd.Flags().String("view-rate", "", "View or listen-through rate in percent")
	if err := viper.BindPFlags(solveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding solve flags", err)
	}
}
