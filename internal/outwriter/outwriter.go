// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"

	"github.com/adtools/mediamath/internal/contract"
	"github.com/adtools/mediamath/schema"
)

// errParquetUnsupported is returned by commands without a columnar layout.
func errParquetUnsupported(what string) error {
	return fmt.Errorf("parquet output is not supported for %s", what)
}

// heading returns a section title, prefixed with an emoji when enabled.
func heading(cfg *contract.Config, emoji, title string) string {
	if cfg.UseEmojis && emoji != "" {
		return emoji + " " + title
	}
	return title
}

// statusLabel renders a benchmark status for tables.
func statusLabel(cfg *contract.Config, status schema.BenchmarkStatus) string {
	label := contract.GetPlainLabel(status)
	if cfg.UseColors {
		label = contract.GetColorLabel(status)
	}
	if cfg.UseEmojis {
		if e := contract.GetStatusEmoji(status); e != "" {
			label = e + " " + label
		}
	}
	return label
}

// benchmarkSummary describes a comparison in one sentence, e.g.
// "12.50% better than the CPM benchmark of $2.42".
func benchmarkSummary(b *schema.BenchmarkResult, fmtFloat func(float64) string) string {
	ref := schema.FormatField(b.Metric, b.BenchmarkValue)
	switch b.Status {
	case schema.GoodStatus:
		return fmt.Sprintf("%s%% better than the %s benchmark of %s", fmtFloat(b.DiffPercent), b.MetricLabel, ref)
	case schema.PoorStatus:
		return fmt.Sprintf("%s%% worse than the %s benchmark of %s", fmtFloat(b.DiffPercent), b.MetricLabel, ref)
	default:
		return fmt.Sprintf("within %s%% of the %s benchmark of %s", fmtFloat(b.DiffPercent), b.MetricLabel, ref)
	}
}

// scenarioCSVHeader lists the columns shared by solve and batch CSV output.
var scenarioCSVHeader = []string{
	"RunID", "Name", "Family", "Mode", "Target", "Value", "Rounded", "Computed",
	"Budget", "Impressions", "Views", "Clicks", "CPM", "CPV", "CTR", "ViewRate",
	"Industry", "MediaType", "Status", "DiffPercent", "BenchmarkValue", "Feedback",
}

// scenarioCSVRecord flattens one scenario into a CSV record matching scenarioCSVHeader.
func scenarioCSVRecord(runID string, row schema.ScenarioResult, fmtFloat func(float64) string) []string {
	sol := row.Solution
	in := sol.Inputs
	record := []string{
		runID,
		row.Name,
		string(sol.Family),
		string(sol.Mode),
		string(sol.Target),
		rawFloat(sol.Value),
		rawFloat(sol.Rounded),
		fmt.Sprintf("%t", sol.Computed),
		optionalFloat(in.Budget),
		optionalFloat(in.Impressions),
		optionalFloat(in.Views),
		optionalFloat(in.Clicks),
		optionalFloat(in.CPM),
		optionalFloat(in.CPV),
		optionalFloat(in.CTR),
		optionalFloat(in.ViewRate),
		string(row.Industry),
		string(row.MediaType),
	}
	if b := row.Benchmark; b != nil {
		record = append(record, string(b.Status), fmtFloat(b.DiffPercent), rawFloat(b.BenchmarkValue), b.FeedbackTitle)
	} else {
		record = append(record, "", "", "", "")
	}
	return record
}
