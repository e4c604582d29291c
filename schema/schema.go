// Package schema has models, enums and the static benchmark table for mediamath.
package schema

// Computation is emitted by the auto solver when it fills in a field.
type Computation struct {
	Metric Field   `json:"metric"`
	Value  float64 `json:"value"`
}

// Solution is the outcome of one solve call.
type Solution struct {
	Family   MetricFamily `json:"family"`
	Mode     SolveMode    `json:"mode"`
	Target   Field        `json:"target,omitempty"` // Empty when auto mode found nothing to solve
	Value    float64      `json:"value"`            // Unrounded formula output
	Rounded  float64      `json:"rounded"`          // Value after field rounding; used downstream
	Computed bool         `json:"computed"`         // False means the not-computable sentinel
	Inputs   MetricInputs `json:"inputs"`           // Inputs after the solve, including any write-back
	Event    *Computation `json:"event,omitempty"`  // Set only by a successful auto solve
}

// BenchmarkResult is the derived comparison of a computed metric against the table.
type BenchmarkResult struct {
	Metric         Field           `json:"metric"`
	Value          float64         `json:"value"`
	Industry       Industry        `json:"industry"`
	MediaType      MediaType       `json:"mediaType"`
	Status         BenchmarkStatus `json:"status"`
	DiffPercent    float64         `json:"diffPercent"` // Always non-negative; direction is in Status
	BenchmarkValue float64         `json:"benchmarkValue"`
	MetricLabel    string          `json:"metricLabel"`
	FeedbackTitle  string          `json:"feedbackTitle"`
}

// SessionState is a point-in-time copy of a calculator session.
type SessionState struct {
	Family    MetricFamily     `json:"family"`
	Mode      SolveMode        `json:"mode"`
	Target    Field            `json:"target"`
	Industry  Industry         `json:"industry,omitempty"`
	MediaType MediaType        `json:"mediaType,omitempty"`
	Inputs    MetricInputs     `json:"inputs"`
	Solution  *Solution        `json:"solution,omitempty"`
	Benchmark *BenchmarkResult `json:"benchmark,omitempty"`
}

// ScenarioResult is one solved and evaluated row of a batch run.
type ScenarioResult struct {
	Name      string           `json:"name"`
	Industry  Industry         `json:"industry,omitempty"`
	MediaType MediaType        `json:"mediaType,omitempty"`
	Solution  Solution         `json:"solution"`
	Benchmark *BenchmarkResult `json:"benchmark,omitempty"`
}

// BatchResult groups all scenario results of a batch run.
type BatchResult struct {
	RunID     string           `json:"runId"`
	Source    string           `json:"source"`
	Scenarios []ScenarioResult `json:"scenarios"`
}

// BenchmarkRow is one flattened entry of the benchmark table.
type BenchmarkRow struct {
	MediaType MediaType `json:"mediaType"`
	Industry  Industry  `json:"industry"`
	BenchmarkValues
}

// FormulaDefinition describes one inverse formula for display.
type FormulaDefinition struct {
	Family     MetricFamily `json:"family"`
	Target     Field        `json:"target"`
	Inputs     [2]Field     `json:"inputs"`
	Expression string       `json:"expression"`
	Label      string       `json:"label"`
	Subtext    string       `json:"subtext"`
}
