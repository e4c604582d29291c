package core

import (
	"math"

	"github.com/adtools/mediamath/internal/contract"
	"github.com/adtools/mediamath/schema"
)

// Evaluator classifies computed metrics against a benchmark table.
type Evaluator struct {
	table     schema.BenchmarkTable
	threshold float64
	rand      contract.RandSource
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithTable replaces the built-in benchmark table.
func WithTable(table schema.BenchmarkTable) EvaluatorOption {
	return func(e *Evaluator) {
		if table != nil {
			e.table = table.Clone()
		}
	}
}

// WithThreshold sets the percentage-point band that counts as average.
func WithThreshold(threshold float64) EvaluatorOption {
	return func(e *Evaluator) {
		if threshold >= 0 && schema.IsFinite(threshold) {
			e.threshold = threshold
		}
	}
}

// WithRandSource sets the source used to pick feedback phrases.
func WithRandSource(src contract.RandSource) EvaluatorOption {
	return func(e *Evaluator) {
		if src != nil {
			e.rand = src
		}
	}
}

// NewEvaluator creates an Evaluator using the built-in table, a 10 point
// threshold and the process-wide random source unless overridden.
func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		table:     schema.DefaultBenchmarks(),
		threshold: schema.DefaultThreshold,
		rand:      NewRandSource(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Table returns a copy of the evaluator's benchmark table.
func (e *Evaluator) Table() schema.BenchmarkTable {
	return e.table.Clone()
}

// Threshold returns the average band in percentage points.
func (e *Evaluator) Threshold() float64 {
	return e.threshold
}

// Evaluate compares value against the benchmark for metric, industry and media type.
//
// It reports false, meaning no result, when either selector is empty, the
// metric has no benchmark, value is not a positive finite number, or the table
// holds the zero sentinel for the combination.
func (e *Evaluator) Evaluate(metric schema.Field, value float64, industry schema.Industry, media schema.MediaType) (schema.BenchmarkResult, bool) {
	if industry == "" || media == "" {
		return schema.BenchmarkResult{}, false
	}
	if _, ok := schema.ValidRateFields[metric]; !ok {
		return schema.BenchmarkResult{}, false
	}
	if !schema.IsFinite(value) || value <= 0 {
		return schema.BenchmarkResult{}, false
	}
	ref, ok := e.table.Reference(metric, industry, media)
	if !ok {
		return schema.BenchmarkResult{}, false
	}

	diff := percentDiff(value, ref)
	status := classify(metric, diff, e.threshold)

	return schema.BenchmarkResult{
		Metric:         metric,
		Value:          value,
		Industry:       industry,
		MediaType:      media,
		Status:         status,
		DiffPercent:    math.Abs(diff),
		BenchmarkValue: ref,
		MetricLabel:    schema.MetricLabel(metric, media),
		FeedbackTitle:  pickFeedback(e.rand, status),
	}, true
}

// diffPrecision is the resolution percentage differences are snapped to before
// classification. Two-decimal inputs that sit exactly on the threshold would
// otherwise land on either side of it through float division error.
const diffPrecision = 1e9

// percentDiff returns the signed difference of value from ref in percent.
func percentDiff(value, ref float64) float64 {
	return math.Round((value-ref)*100/ref*diffPrecision) / diffPrecision
}

// classify maps a signed percentage difference to a status. The threshold
// itself is average on both sides.
func classify(metric schema.Field, diff, threshold float64) schema.BenchmarkStatus {
	better, worse := diff < -threshold, diff > threshold
	if !schema.LowerIsBetter(metric) {
		better, worse = diff > threshold, diff < -threshold
	}
	switch {
	case better:
		return schema.GoodStatus
	case worse:
		return schema.PoorStatus
	default:
		return schema.AverageStatus
	}
}
