// Package parquet provides data structures and functions for exporting solved
// scenarios and benchmark tables to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/adtools/mediamath/schema"
	"github.com/parquet-go/parquet-go"
)

// ScenarioRecord is one solved scenario, flattened for columnar export.
type ScenarioRecord struct {
	// RunID groups the rows of one batch run
	RunID string `parquet:"run_id,snappy"`

	// Name identifies the scenario within its run
	Name string `parquet:"name,snappy"`

	// ExportedAt is when the row was written (stored as TIMESTAMP with nanosecond precision)
	ExportedAt time.Time `parquet:"exported_at,snappy"`

	Family   string  `parquet:"family,snappy"`
	Mode     string  `parquet:"mode,snappy"`
	Target   string  `parquet:"target,snappy"`
	Value    float64 `parquet:"value,snappy"`
	Rounded  float64 `parquet:"rounded,snappy"`
	Computed bool    `parquet:"computed,snappy"`

	// Inputs after solving (nullable when unset)
	Budget      *float64 `parquet:"budget,optional,snappy"`
	Impressions *float64 `parquet:"impressions,optional,snappy"`
	Views       *float64 `parquet:"views,optional,snappy"`
	Clicks      *float64 `parquet:"clicks,optional,snappy"`
	CPM         *float64 `parquet:"cpm,optional,snappy"`
	CPV         *float64 `parquet:"cpv,optional,snappy"`
	CTR         *float64 `parquet:"ctr,optional,snappy"`
	ViewRate    *float64 `parquet:"view_rate,optional,snappy"`

	Industry  *string `parquet:"industry,optional,snappy"`
	MediaType *string `parquet:"media_type,optional,snappy"`

	// Benchmark comparison (nullable when no reference applies)
	Status         *string  `parquet:"status,optional,snappy"`
	DiffPercent    *float64 `parquet:"diff_percent,optional,snappy"`
	BenchmarkValue *float64 `parquet:"benchmark_value,optional,snappy"`
	FeedbackTitle  *string  `parquet:"feedback_title,optional,snappy"`
}

// BenchmarkRecord is one media type and industry row of the benchmark table.
// Zero means no benchmark exists for that metric.
type BenchmarkRecord struct {
	MediaType string  `parquet:"media_type,snappy"`
	Industry  string  `parquet:"industry,snappy"`
	CPM       float64 `parquet:"cpm,snappy"`
	CTR       float64 `parquet:"ctr,snappy"`
	CPV       float64 `parquet:"cpv,snappy"`
	ViewRate  float64 `parquet:"view_rate,snappy"`
}

// WriteScenariosParquet writes a slice of ScenarioRecord structs to a Parquet file.
func WriteScenariosParquet(data []ScenarioRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteBenchmarksParquet writes a slice of BenchmarkRecord structs to a Parquet file.
func WriteBenchmarksParquet(data []BenchmarkRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet writes records to outputPath. The schema is derived from the
// struct tags of T.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// ConvertBatchResult converts a batch run into ScenarioRecord rows.
func ConvertBatchResult(result schema.BatchResult, exportedAt time.Time) []ScenarioRecord {
	records := make([]ScenarioRecord, len(result.Scenarios))
	for i, row := range result.Scenarios {
		records[i] = ConvertScenarioResult(result.RunID, row, exportedAt)
	}
	return records
}

// ConvertScenarioResult converts one solved scenario into a ScenarioRecord.
func ConvertScenarioResult(runID string, row schema.ScenarioResult, exportedAt time.Time) ScenarioRecord {
	sol := row.Solution
	in := sol.Inputs.Clone()
	rec := ScenarioRecord{
		RunID:       runID,
		Name:        row.Name,
		ExportedAt:  exportedAt,
		Family:      string(sol.Family),
		Mode:        string(sol.Mode),
		Target:      string(sol.Target),
		Value:       sol.Value,
		Rounded:     sol.Rounded,
		Computed:    sol.Computed,
		Budget:      in.Budget,
		Impressions: in.Impressions,
		Views:       in.Views,
		Clicks:      in.Clicks,
		CPM:         in.CPM,
		CPV:         in.CPV,
		CTR:         in.CTR,
		ViewRate:    in.ViewRate,
		Industry:    optionalString(string(row.Industry)),
		MediaType:   optionalString(string(row.MediaType)),
	}
	if b := row.Benchmark; b != nil {
		rec.Status = optionalString(string(b.Status))
		rec.DiffPercent = schema.Float(b.DiffPercent)
		rec.BenchmarkValue = schema.Float(b.BenchmarkValue)
		rec.FeedbackTitle = optionalString(b.FeedbackTitle)
	}
	return rec
}

// ConvertBenchmarkRows converts flattened table rows into BenchmarkRecord rows.
func ConvertBenchmarkRows(rows []schema.BenchmarkRow) []BenchmarkRecord {
	result := make([]BenchmarkRecord, len(rows))
	for i, row := range rows {
		result[i] = BenchmarkRecord{
			MediaType: string(row.MediaType),
			Industry:  string(row.Industry),
			CPM:       row.CPM,
			CTR:       row.CTR,
			CPV:       row.CPV,
			ViewRate:  row.ViewRate,
		}
	}
	return result
}

// optionalString maps the empty string to a null column value.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
