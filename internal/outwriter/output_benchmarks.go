package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/adtools/mediamath/internal/contract"
	"github.com/adtools/mediamath/internal/parquet"
	"github.com/adtools/mediamath/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Evaluation is the JSON shape of a single benchmark lookup.
// Benchmark is null when no reference applies.
type Evaluation struct {
	Metric    schema.Field            `json:"metric"`
	Value     float64                 `json:"value"`
	Benchmark *schema.BenchmarkResult `json:"benchmark"`
}

// WriteEvaluation outputs one benchmark comparison, dispatching based on the output format configured.
func WriteEvaluation(metric schema.Field, value float64, result *schema.BenchmarkResult, cfg *contract.Config) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, Evaluation{Metric: metric, Value: value, Benchmark: result})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"Metric", "Value", "Industry", "MediaType", "Status", "DiffPercent", "BenchmarkValue", "Feedback"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				record := []string{string(metric), rawFloat(value), string(cfg.Industry), string(cfg.MediaType), "", "", "", ""}
				if result != nil {
					record[4] = string(result.Status)
					record[5] = fmtFloat(result.DiffPercent)
					record[6] = rawFloat(result.BenchmarkValue)
					record[7] = result.FeedbackTitle
				}
				return cw.Write(record)
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported("evaluate")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if result == nil {
				_, err := fmt.Fprintf(w, "%s\n", heading(cfg, "📊", noBenchmarkMessage(metric, cfg.Industry, cfg.MediaType)))
				return err
			}
			return writeBenchmarkText(w, result, result.Industry, result.MediaType, cfg, fmtFloat)
		}, "Wrote text")
	}
}

// noBenchmarkMessage explains why an evaluation produced no result.
func noBenchmarkMessage(metric schema.Field, industry schema.Industry, media schema.MediaType) string {
	if industry == "" || media == "" {
		return "Select an industry and media type to compare against benchmarks"
	}
	return fmt.Sprintf("No %s benchmark available for %s / %s", schema.MetricLabel(metric, media), industry, media)
}

// WriteBenchmarks outputs the benchmark table, dispatching based on the output format configured.
func WriteBenchmarks(rows []schema.BenchmarkRow, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, rows)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"MediaType", "Industry", "CPM", "CTR", "CPV", "ViewRate"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for _, r := range rows {
					record := []string{string(r.MediaType), string(r.Industry), rawFloat(r.CPM), rawFloat(r.CTR), rawFloat(r.CPV), rawFloat(r.ViewRate)}
					if err := cw.Write(record); err != nil {
						return fmt.Errorf("failed to write CSV record: %w", err)
					}
				}
				return nil
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		if err := parquet.WriteBenchmarksParquet(parquet.ConvertBenchmarkRows(rows), cfg.OutputFile); err != nil {
			return err
		}
		logSuccess("Wrote Parquet", cfg.OutputFile)
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBenchmarksTable(w, rows, cfg)
		}, "Wrote table")
	}
}

// writeBenchmarksTable renders the table with display formatting. Zero cells
// have no benchmark and show as "-".
func writeBenchmarksTable(w io.Writer, rows []schema.BenchmarkRow, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "%s (average band ±%s%%)\n", heading(cfg, "📊", "Industry Benchmarks"), rawFloat(cfg.Threshold)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Media", "Industry", "CPM", "CTR", "CPV / CPC", "View Rate / LTR"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	cell := func(field schema.Field, v float64) string {
		if v <= 0 {
			return "-"
		}
		return schema.FormatField(field, v)
	}
	var data [][]string
	for _, r := range rows {
		data = append(data, []string{
			string(r.MediaType),
			string(r.Industry),
			cell(schema.FieldCPM, r.CPM),
			cell(schema.FieldCTR, r.CTR),
			cell(schema.FieldCPV, r.CPV),
			cell(schema.FieldViewRate, r.ViewRate),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
