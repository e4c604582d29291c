package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adtools/mediamath/internal/contract"
	"github.com/adtools/mediamath/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, output schema.OutputMode, ext string) *contract.Config {
	t.Helper()
	return &contract.Config{
		Output:     output,
		OutputFile: filepath.Join(t.TempDir(), "out."+ext),
		Precision:  2,
		Threshold:  10,
		Industry:   schema.RetailIndustry,
		MediaType:  schema.DisplayMedia,
	}
}

func readOutput(t *testing.T, cfg *contract.Config) string {
	t.Helper()
	content, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	return string(content)
}

func solvedRow() schema.ScenarioResult {
	return schema.ScenarioResult{
		Name:      "cpm",
		Industry:  schema.RetailIndustry,
		MediaType: schema.DisplayMedia,
		Solution: schema.Solution{
			Family:   schema.CPMFamily,
			Mode:     schema.ExplicitMode,
			Target:   schema.FieldCPM,
			Value:    2.5,
			Rounded:  2.5,
			Computed: true,
			Inputs: schema.MetricInputs{
				Budget:      schema.Float(1000),
				Impressions: schema.Float(400000),
			},
		},
		Benchmark: &schema.BenchmarkResult{
			Metric:         schema.FieldCPM,
			Value:          2.5,
			Industry:       schema.RetailIndustry,
			MediaType:      schema.DisplayMedia,
			Status:         schema.PoorStatus,
			DiffPercent:    25,
			BenchmarkValue: 2,
			MetricLabel:    "CPM",
			FeedbackTitle:  "Needs attention",
		},
	}
}

func TestWriteSolveResult(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		cfg := testConfig(t, schema.TextOut, "txt")
		require.NoError(t, WriteSolveResult(solvedRow(), cfg))

		out := readOutput(t, cfg)
		assert.Contains(t, out, "Cost Per 1,000 Impressions: $2.50")
		assert.Contains(t, out, "$1,000.00")
		assert.Contains(t, out, "400,000")
		assert.Contains(t, out, "solved")
		assert.Contains(t, out, "Benchmark (Retail / Display): Poor")
		assert.Contains(t, out, "25.00% worse than the CPM benchmark of $2.00")
		assert.Contains(t, out, "Needs attention")
	})

	t.Run("json", func(t *testing.T) {
		cfg := testConfig(t, schema.JSONOut, "json")
		require.NoError(t, WriteSolveResult(solvedRow(), cfg))

		var got schema.ScenarioResult
		require.NoError(t, json.Unmarshal([]byte(readOutput(t, cfg)), &got))
		assert.Equal(t, solvedRow(), got)
	})

	t.Run("csv", func(t *testing.T) {
		cfg := testConfig(t, schema.CSVOut, "csv")
		require.NoError(t, WriteSolveResult(solvedRow(), cfg))

		records, err := csv.NewReader(strings.NewReader(readOutput(t, cfg))).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, scenarioCSVHeader, records[0])
		assert.Len(t, records[1], len(scenarioCSVHeader))
		assert.Equal(t, "1000", records[1][8])
		assert.Equal(t, "poor", records[1][18])
		assert.Equal(t, "25.00", records[1][19])
	})

	t.Run("parquet", func(t *testing.T) {
		cfg := testConfig(t, schema.ParquetOut, "parquet")
		require.NoError(t, WriteSolveResult(solvedRow(), cfg))
		assert.FileExists(t, cfg.OutputFile)
	})

	t.Run("auto with nothing known", func(t *testing.T) {
		cfg := testConfig(t, schema.TextOut, "txt")
		row := schema.ScenarioResult{Solution: schema.Solution{Family: schema.CTRFamily, Mode: schema.AutoMode}}
		require.NoError(t, WriteSolveResult(row, cfg))
		assert.Contains(t, readOutput(t, cfg), "Enter at least two known values")
	})
}

func TestWriteBatch(t *testing.T) {
	second := solvedRow()
	second.Name = "no benchmark"
	second.Benchmark = nil
	result := schema.BatchResult{RunID: "run-42", Scenarios: []schema.ScenarioResult{solvedRow(), second}}

	t.Run("text", func(t *testing.T) {
		cfg := testConfig(t, schema.TextOut, "txt")
		require.NoError(t, WriteBatch(result, cfg))
		out := readOutput(t, cfg)
		assert.Contains(t, out, "Batch run-42 (2 scenarios)")
		assert.Contains(t, out, "no benchmark")
		assert.Contains(t, out, "Poor")
	})

	t.Run("csv", func(t *testing.T) {
		cfg := testConfig(t, schema.CSVOut, "csv")
		require.NoError(t, WriteBatch(result, cfg))
		records, err := csv.NewReader(strings.NewReader(readOutput(t, cfg))).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "run-42", records[1][0])
		assert.Equal(t, "", records[2][18], "missing benchmark leaves status empty")
	})

	t.Run("json", func(t *testing.T) {
		cfg := testConfig(t, schema.JSONOut, "json")
		require.NoError(t, WriteBatch(result, cfg))
		var got schema.BatchResult
		require.NoError(t, json.Unmarshal([]byte(readOutput(t, cfg)), &got))
		assert.Equal(t, result, got)
	})

	t.Run("parquet", func(t *testing.T) {
		cfg := testConfig(t, schema.ParquetOut, "parquet")
		require.NoError(t, WriteBatch(result, cfg))
		assert.FileExists(t, cfg.OutputFile)
	})
}

func TestWriteEvaluation(t *testing.T) {
	b := solvedRow().Benchmark

	t.Run("text with result", func(t *testing.T) {
		cfg := testConfig(t, schema.TextOut, "txt")
		require.NoError(t, WriteEvaluation(schema.FieldCPM, 2.5, b, cfg))
		assert.Contains(t, readOutput(t, cfg), "$2.50 is 25.00% worse than the CPM benchmark of $2.00")
	})

	t.Run("text without result", func(t *testing.T) {
		cfg := testConfig(t, schema.TextOut, "txt")
		cfg.MediaType = schema.SearchMedia
		require.NoError(t, WriteEvaluation(schema.FieldCPV, 1, nil, cfg))
		assert.Contains(t, readOutput(t, cfg), "No CPV / CPC benchmark available for Retail / Search")
	})

	t.Run("text without selectors", func(t *testing.T) {
		cfg := testConfig(t, schema.TextOut, "txt")
		cfg.Industry = ""
		require.NoError(t, WriteEvaluation(schema.FieldCPV, 1, nil, cfg))
		assert.Contains(t, readOutput(t, cfg), "Select an industry and media type")
	})

	t.Run("json null benchmark", func(t *testing.T) {
		cfg := testConfig(t, schema.JSONOut, "json")
		require.NoError(t, WriteEvaluation(schema.FieldCTR, 0.5, nil, cfg))
		assert.Contains(t, readOutput(t, cfg), `"benchmark": null`)
	})

	t.Run("csv", func(t *testing.T) {
		cfg := testConfig(t, schema.CSVOut, "csv")
		require.NoError(t, WriteEvaluation(schema.FieldCPM, 2.5, b, cfg))
		records, err := csv.NewReader(strings.NewReader(readOutput(t, cfg))).ReadAll()
		require.NoError(t, err)
		assert.Equal(t, []string{"cpm", "2.5", "Retail", "Display", "poor", "25.00", "2", "Needs attention"}, records[1])
	})

	t.Run("parquet unsupported", func(t *testing.T) {
		cfg := testConfig(t, schema.ParquetOut, "parquet")
		assert.Error(t, WriteEvaluation(schema.FieldCPM, 2.5, b, cfg))
	})
}

func TestWriteBenchmarks(t *testing.T) {
	rows := []schema.BenchmarkRow{
		{MediaType: schema.SearchMedia, Industry: schema.AverageIndustry, BenchmarkValues: schema.BenchmarkValues{CPM: 38, CTR: 3.17}},
	}

	t.Run("text", func(t *testing.T) {
		cfg := testConfig(t, schema.TextOut, "txt")
		require.NoError(t, WriteBenchmarks(rows, cfg))
		out := readOutput(t, cfg)
		assert.Contains(t, out, "Industry Benchmarks (average band ±10%)")
		assert.Contains(t, out, "$38.00")
		assert.Contains(t, out, "3.17%")
		assert.Contains(t, out, "-")
	})

	t.Run("csv", func(t *testing.T) {
		cfg := testConfig(t, schema.CSVOut, "csv")
		require.NoError(t, WriteBenchmarks(rows, cfg))
		records, err := csv.NewReader(strings.NewReader(readOutput(t, cfg))).ReadAll()
		require.NoError(t, err)
		assert.Equal(t, []string{"Search", "Average", "38", "3.17", "0", "0"}, records[1])
	})

	t.Run("parquet", func(t *testing.T) {
		cfg := testConfig(t, schema.ParquetOut, "parquet")
		require.NoError(t, WriteBenchmarks(rows, cfg))
		assert.FileExists(t, cfg.OutputFile)
	})
}

func TestWriteFormulas(t *testing.T) {
	defs := []schema.FormulaDefinition{
		{
			Family: schema.CTRFamily, Target: schema.FieldCTR,
			Inputs:     [2]schema.Field{schema.FieldClicks, schema.FieldImpressions},
			Expression: "ctr = clicks / impressions * 100", Label: "Click Through Rate",
		},
	}

	t.Run("text", func(t *testing.T) {
		cfg := testConfig(t, schema.TextOut, "txt")
		require.NoError(t, WriteFormulas(defs, cfg))
		out := readOutput(t, cfg)
		assert.Contains(t, out, "Media Metric Formulas")
		assert.Contains(t, out, "CTR\n")
		assert.Contains(t, out, "ctr = clicks / impressions * 100")
	})

	t.Run("csv", func(t *testing.T) {
		cfg := testConfig(t, schema.CSVOut, "csv")
		require.NoError(t, WriteFormulas(defs, cfg))
		assert.Contains(t, readOutput(t, cfg), "ctr,ctr,clicks|impressions,ctr = clicks / impressions * 100,Click Through Rate")
	})

	t.Run("parquet unsupported", func(t *testing.T) {
		cfg := testConfig(t, schema.ParquetOut, "parquet")
		assert.Error(t, WriteFormulas(defs, cfg))
	})
}

func TestStatusLabel(t *testing.T) {
	cfg := &contract.Config{}
	assert.Equal(t, "Good", statusLabel(cfg, schema.GoodStatus))

	cfg.UseEmojis = true
	assert.Equal(t, "🟢 Good", statusLabel(cfg, schema.GoodStatus))
	assert.Equal(t, contract.NoneValue, statusLabel(cfg, ""))
}

func TestGetDisplayNameForFamily(t *testing.T) {
	assert.Equal(t, "View Rate", getDisplayNameForFamily(schema.ViewRateFamily, false))
	assert.Equal(t, "💵 CPM", getDisplayNameForFamily(schema.CPMFamily, true))
}
