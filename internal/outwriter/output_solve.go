package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/adtools/mediamath/internal/contract"
	"github.com/adtools/mediamath/internal/parquet"
	"github.com/adtools/mediamath/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteSolveResult outputs one solved family, dispatching based on the output format configured.
func WriteSolveResult(row schema.ScenarioResult, cfg *contract.Config) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, row)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, scenarioCSVHeader, func(cw *csv.Writer) error {
				return cw.Write(scenarioCSVRecord("", row, fmtFloat))
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		records := []parquet.ScenarioRecord{parquet.ConvertScenarioResult("", row, time.Now())}
		if err := parquet.WriteScenariosParquet(records, cfg.OutputFile); err != nil {
			return err
		}
		logSuccess("Wrote Parquet", cfg.OutputFile)
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSolveText(w, row, cfg, fmtFloat)
		}, "Wrote text")
	}
}

// writeSolveText prints the headline result, the family's fields and the benchmark.
func writeSolveText(w io.Writer, row schema.ScenarioResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	sol := row.Solution

	if err := writeSolutionHeadline(w, sol, cfg); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Field", "Value", "Role"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	fields, err := schema.FamilyFields(sol.Family)
	if err != nil {
		return err
	}
	var data [][]string
	for _, f := range fields {
		value := "-"
		if v, ok := sol.Inputs.Get(f); ok {
			value = schema.FormatField(f, v)
		}
		role := "input"
		if f == sol.Target {
			role = "unsolved"
			if sol.Computed {
				role = "solved"
				value = schema.FormatField(f, sol.Rounded)
			}
		}
		data = append(data, []string{string(f), value, role})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	return writeBenchmarkText(w, row.Benchmark, row.Industry, row.MediaType, cfg, fmtFloat)
}

// writeSolutionHeadline prints the solved value with its label and caption.
func writeSolutionHeadline(w io.Writer, sol schema.Solution, cfg *contract.Config) error {
	if sol.Target == "" {
		_, err := fmt.Fprintf(w, "%s\n\n", heading(cfg, "🧮", "Enter at least two known values to auto-solve "+string(sol.Family)))
		return err
	}

	label, subtext := schema.ResultLabel(sol.Family, sol.Target)
	value := schema.FormatField(sol.Target, sol.Rounded)
	if _, err := fmt.Fprintf(w, "%s: %s\n", heading(cfg, "🧮", label), value); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", subtext); err != nil {
		return err
	}
	return nil
}

// writeBenchmarkText prints the benchmark block below a result.
func writeBenchmarkText(w io.Writer, b *schema.BenchmarkResult, industry schema.Industry, media schema.MediaType, cfg *contract.Config, fmtFloat func(float64) string) error {
	if b == nil {
		if industry == "" || media == "" {
			return nil
		}
		_, err := fmt.Fprintf(w, "\n%s\n", heading(cfg, "📊", fmt.Sprintf("No benchmark available for %s / %s", industry, media)))
		return err
	}
	title := fmt.Sprintf("Benchmark (%s / %s): %s", b.Industry, b.MediaType, statusLabel(cfg, b.Status))
	if _, err := fmt.Fprintf(w, "\n%s\n", heading(cfg, "📊", title)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", b.FeedbackTitle); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s is %s\n", schema.FormatField(b.Metric, b.Value), benchmarkSummary(b, fmtFloat)); err != nil {
		return err
	}
	return nil
}

// WriteBatch outputs every scenario of a batch run, dispatching based on the output format configured.
func WriteBatch(result schema.BatchResult, cfg *contract.Config) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, scenarioCSVHeader, func(cw *csv.Writer) error {
				for _, row := range result.Scenarios {
					if err := cw.Write(scenarioCSVRecord(result.RunID, row, fmtFloat)); err != nil {
						return fmt.Errorf("failed to write CSV record: %w", err)
					}
				}
				return nil
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		if err := parquet.WriteScenariosParquet(parquet.ConvertBatchResult(result, time.Now()), cfg.OutputFile); err != nil {
			return err
		}
		logSuccess("Wrote Parquet", cfg.OutputFile)
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBatchTable(w, result, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// writeBatchTable generates and writes the human-readable batch table.
func writeBatchTable(w io.Writer, result schema.BatchResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintf(w, "%s\n", heading(cfg, "📦", fmt.Sprintf("Batch %s (%d scenarios)", result.RunID, len(result.Scenarios)))); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Scenario", "Family", "Target", "Result", "Benchmark", "Diff", "Status"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, row := range result.Scenarios {
		sol := row.Solution
		value, target := "-", "-"
		if sol.Target != "" {
			target = string(sol.Target)
			value = schema.FormatField(sol.Target, sol.Rounded)
		}
		ref, diff, status := "-", "-", contract.NoneValue
		if b := row.Benchmark; b != nil {
			ref = schema.FormatField(b.Metric, b.BenchmarkValue)
			diff = fmtFloat(b.DiffPercent) + "%"
			status = statusLabel(cfg, b.Status)
		}
		data = append(data, []string{row.Name, string(sol.Family), target, value, ref, diff, status})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
