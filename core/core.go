// Package core has core logic for solving media-buying metrics and
// benchmarking them against industry references.
package core

import (
	"context"

	"github.com/adtools/mediamath/core/algo"
	"github.com/adtools/mediamath/internal/contract"
	"github.com/adtools/mediamath/internal/outwriter"
	"github.com/adtools/mediamath/schema"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// NewEvaluatorFromConfig builds an Evaluator from the validated table,
// threshold and seed of cfg.
func NewEvaluatorFromConfig(cfg *contract.Config) *Evaluator {
	opts := []EvaluatorOption{
		WithThreshold(cfg.Threshold),
		WithRandSource(NewRandSource(cfg.Seed)),
	}
	if cfg.Benchmarks != nil {
		opts = append(opts, WithTable(cfg.Benchmarks))
	}
	return NewEvaluator(opts...)
}

// SolveAndEvaluate runs one solve and benchmarks the result when the family's
// rate metric was computed.
func SolveAndEvaluate(req SolveRequest, evaluator *Evaluator, industry schema.Industry, media schema.MediaType) (schema.ScenarioResult, error) {
	sol, err := Solve(req)
	if err != nil {
		return schema.ScenarioResult{}, err
	}
	row := schema.ScenarioResult{
		Name:      string(req.Family),
		Industry:  industry,
		MediaType: media,
		Solution:  sol,
	}
	if b, ok := evaluateSolution(evaluator, sol, industry, media); ok {
		row.Benchmark = &b
	}
	return row, nil
}

// GetSolveResult solves the family configured in cfg.
func GetSolveResult(cfg *contract.Config) (schema.ScenarioResult, error) {
	return SolveAndEvaluate(SolveRequest{
		Family: cfg.Family,
		Mode:   cfg.Mode,
		Target: cfg.Target,
		Inputs: cfg.Inputs,
	}, NewEvaluatorFromConfig(cfg), cfg.Industry, cfg.MediaType)
}

// ExecuteSolve solves one family and prints the result.
func ExecuteSolve(_ context.Context, cfg *contract.Config) error {
	row, err := GetSolveResult(cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteSolveResult(row, cfg)
}

// ExecuteEvaluate benchmarks a single metric value and prints the result.
// A missing reference is reported, not treated as an error.
func ExecuteEvaluate(_ context.Context, cfg *contract.Config) error {
	evaluator := NewEvaluatorFromConfig(cfg)
	result, ok := evaluator.Evaluate(cfg.Metric, cfg.Value, cfg.Industry, cfg.MediaType)
	var out *schema.BenchmarkResult
	if ok {
		out = &result
	}
	return outwriter.WriteEvaluation(cfg.Metric, cfg.Value, out, cfg)
}

// ExecuteBenchmarks prints the active benchmark table.
func ExecuteBenchmarks(_ context.Context, cfg *contract.Config) error {
	return outwriter.WriteBenchmarks(GetBenchmarkRows(cfg.Benchmarks, cfg.Industry, cfg.MediaType), cfg)
}

// ExecuteFormulas prints the definitions of every family.
func ExecuteFormulas(_ context.Context, cfg *contract.Config) error {
	return outwriter.WriteFormulas(GetFormulaDefinitions(), cfg)
}

// ExecuteBatch solves every scenario in cfg.ScenarioFile and prints the results.
func ExecuteBatch(_ context.Context, cfg *contract.Config) error {
	file, err := LoadScenarioFile(cfg.ScenarioFile)
	if err != nil {
		return err
	}
	result, err := RunScenarios(file, NewEvaluatorFromConfig(cfg), cfg.Industry, cfg.MediaType)
	if err != nil {
		return err
	}
	result.Source = cfg.ScenarioFile
	return outwriter.WriteBatch(result, cfg)
}

// GetBenchmarkRows flattens table in display order. Empty selectors match everything.
func GetBenchmarkRows(table schema.BenchmarkTable, industry schema.Industry, media schema.MediaType) []schema.BenchmarkRow {
	if table == nil {
		table = schema.DefaultBenchmarks()
	}
	var rows []schema.BenchmarkRow
	for _, mt := range schema.AllMediaTypes {
		if media != "" && mt != media {
			continue
		}
		for _, ind := range schema.AllIndustries {
			if industry != "" && ind != industry {
				continue
			}
			values, ok := table.Lookup(mt, ind)
			if !ok {
				continue
			}
			rows = append(rows, schema.BenchmarkRow{MediaType: mt, Industry: ind, BenchmarkValues: values})
		}
	}
	return rows
}

// GetFormulaDefinitions lists every family's formulas in auto-solve priority order.
func GetFormulaDefinitions() []schema.FormulaDefinition {
	var defs []schema.FormulaDefinition
	for _, family := range schema.AllFamilies {
		for _, f := range algo.Formulas(family) {
			label, subtext := schema.ResultLabel(family, f.Target)
			defs = append(defs, schema.FormulaDefinition{
				Family:     family,
				Target:     f.Target,
				Inputs:     f.Inputs,
				Expression: f.Expression,
				Label:      label,
				Subtext:    subtext,
			})
		}
	}
	return defs
}
