package core

import (
	"math"
	"testing"

	"github.com/adtools/mediamath/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inputs(kv map[schema.Field]float64) schema.MetricInputs {
	var m schema.MetricInputs
	for f, v := range kv {
		m.Set(f, v)
	}
	return m
}

func TestSolveExplicit(t *testing.T) {
	tests := []struct {
		name     string
		family   schema.MetricFamily
		target   schema.Field
		inputs   map[schema.Field]float64
		want     float64
		rounded  float64
		computed bool
	}{
		{
			name: "cpm", family: schema.CPMFamily, target: schema.FieldCPM,
			inputs: map[schema.Field]float64{schema.FieldBudget: 5000, schema.FieldImpressions: 250000},
			want:   20, rounded: 20, computed: true,
		},
		{
			name: "cpv", family: schema.CPVFamily, target: schema.FieldCPV,
			inputs: map[schema.Field]float64{schema.FieldBudget: 1500, schema.FieldViews: 450},
			want:   1500.0 / 450.0, rounded: 3.33, computed: true,
		},
		{
			name: "ctr", family: schema.CTRFamily, target: schema.FieldCTR,
			inputs: map[schema.Field]float64{schema.FieldClicks: 120, schema.FieldImpressions: 5000},
			want:   2.4, rounded: 2.4, computed: true,
		},
		{
			name: "view rate", family: schema.ViewRateFamily, target: schema.FieldViewRate,
			inputs: map[schema.Field]float64{schema.FieldViews: 2500, schema.FieldImpressions: 10000},
			want:   25, rounded: 25, computed: true,
		},
		{
			name: "impressions are floored", family: schema.CPMFamily, target: schema.FieldImpressions,
			inputs: map[schema.Field]float64{schema.FieldBudget: 100, schema.FieldCPM: 3},
			want:   100000.0 / 3.0, rounded: 33333, computed: true,
		},
		{
			name: "populated target is ignored", family: schema.CTRFamily, target: schema.FieldCTR,
			inputs: map[schema.Field]float64{schema.FieldClicks: 50, schema.FieldImpressions: 1000, schema.FieldCTR: 99},
			want:   5, rounded: 5, computed: true,
		},
		{
			name: "missing input", family: schema.CPMFamily, target: schema.FieldCPM,
			inputs: map[schema.Field]float64{schema.FieldBudget: 5000},
		},
		{
			name: "zero divisor", family: schema.CPMFamily, target: schema.FieldCPM,
			inputs: map[schema.Field]float64{schema.FieldBudget: 5000, schema.FieldImpressions: 0},
		},
		{
			name: "zero ctr divisor", family: schema.CTRFamily, target: schema.FieldImpressions,
			inputs: map[schema.Field]float64{schema.FieldClicks: 10, schema.FieldCTR: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := inputs(tt.inputs)
			sol, err := Solve(SolveRequest{Family: tt.family, Target: tt.target, Inputs: in})
			require.NoError(t, err)

			assert.Equal(t, schema.ExplicitMode, sol.Mode)
			assert.Equal(t, tt.target, sol.Target)
			assert.Equal(t, tt.computed, sol.Computed)
			assert.InDelta(t, tt.want, sol.Value, 1e-9)
			assert.InDelta(t, tt.rounded, sol.Rounded, 1e-9)
			assert.Nil(t, sol.Event)
			assert.Equal(t, in, sol.Inputs, "explicit mode never writes back")
		})
	}
}

func TestSolveExplicitErrors(t *testing.T) {
	_, err := Solve(SolveRequest{Family: "roas", Target: schema.FieldCPM})
	assert.ErrorIs(t, err, schema.ErrUnknownFamily)

	_, err = Solve(SolveRequest{Family: schema.CTRFamily, Target: schema.FieldBudget})
	assert.ErrorIs(t, err, schema.ErrTargetNotInFamily)

	_, err = Solve(SolveRequest{Family: schema.CTRFamily, Mode: "guess", Target: schema.FieldCTR})
	assert.ErrorIs(t, err, schema.ErrUnknownMode)
}

func TestSolveAuto(t *testing.T) {
	tests := []struct {
		name    string
		family  schema.MetricFamily
		inputs  map[schema.Field]float64
		target  schema.Field
		rounded float64
	}{
		{
			name: "cpm from budget and impressions", family: schema.CPMFamily,
			inputs: map[schema.Field]float64{schema.FieldBudget: 5000, schema.FieldImpressions: 250000},
			target: schema.FieldCPM, rounded: 20,
		},
		{
			name: "budget from cpm and impressions", family: schema.CPMFamily,
			inputs: map[schema.Field]float64{schema.FieldCPM: 4.2, schema.FieldImpressions: 250000},
			target: schema.FieldBudget, rounded: 1050,
		},
		{
			name: "impressions from budget and cpm", family: schema.CPMFamily,
			inputs: map[schema.Field]float64{schema.FieldBudget: 500, schema.FieldCPM: 2.5},
			target: schema.FieldImpressions, rounded: 200000,
		},
		{
			name: "views from budget and cpv", family: schema.CPVFamily,
			inputs: map[schema.Field]float64{schema.FieldBudget: 100, schema.FieldCPV: 0.3},
			target: schema.FieldViews, rounded: 333,
		},
		{
			name: "over-determined resolves to the rate metric", family: schema.CPMFamily,
			inputs: map[schema.Field]float64{schema.FieldBudget: 1000, schema.FieldImpressions: 400000, schema.FieldCPM: 9},
			target: schema.FieldCPM, rounded: 2.5,
		},
		{
			name: "zero counts as unknown", family: schema.ViewRateFamily,
			inputs: map[schema.Field]float64{schema.FieldViews: 0, schema.FieldViewRate: 20, schema.FieldImpressions: 5000},
			target: schema.FieldViews, rounded: 1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := inputs(tt.inputs)
			sol, err := Solve(SolveRequest{Family: tt.family, Mode: schema.AutoMode, Inputs: in})
			require.NoError(t, err)

			require.True(t, sol.Computed)
			assert.Equal(t, tt.target, sol.Target)
			assert.InDelta(t, tt.rounded, sol.Rounded, 1e-9)
			assert.Equal(t, tt.rounded, sol.Inputs.Value(tt.target), "rounded value is written back")
			require.NotNil(t, sol.Event)
			assert.Equal(t, schema.Computation{Metric: tt.target, Value: tt.rounded}, *sol.Event)

			// The caller's inputs are not modified.
			assert.Equal(t, inputs(tt.inputs), in)
		})
	}
}

func TestSolveAutoNotComputable(t *testing.T) {
	tests := []struct {
		name   string
		inputs map[schema.Field]float64
	}{
		{"nothing known", nil},
		{"one known", map[schema.Field]float64{schema.FieldClicks: 10}},
		{"other family fields", map[schema.Field]float64{schema.FieldBudget: 10, schema.FieldCPM: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := inputs(tt.inputs)
			sol, err := Solve(SolveRequest{Family: schema.CTRFamily, Mode: schema.AutoMode, Inputs: in})
			require.NoError(t, err)
			assert.False(t, sol.Computed)
			assert.Empty(t, sol.Target)
			assert.Nil(t, sol.Event)
			assert.Equal(t, in, sol.Inputs)
		})
	}
}

func TestSolveAutoOverflowKeepsStoredValue(t *testing.T) {
	in := inputs(map[schema.Field]float64{
		schema.FieldBudget:      math.MaxFloat64,
		schema.FieldImpressions: 1e-300,
		schema.FieldCPM:         7,
	})
	sol, err := Solve(SolveRequest{Family: schema.CPMFamily, Mode: schema.AutoMode, Inputs: in})
	require.NoError(t, err)
	assert.False(t, sol.Computed)
	assert.Equal(t, schema.FieldCPM, sol.Target)
	assert.Equal(t, 7.0, sol.Value)
	assert.Nil(t, sol.Event)
}

// Explicit round trip: solve C from A and B, then A from B and C.
func TestSolveRoundTrip(t *testing.T) {
	for _, family := range schema.AllFamilies {
		fields, err := schema.FamilyFields(family)
		require.NoError(t, err)
		a, b, c := fields[0], fields[1], fields[2]

		in := inputs(map[schema.Field]float64{a: 1234.5, b: 67890})
		first, err := Solve(SolveRequest{Family: family, Target: c, Inputs: in})
		require.NoError(t, err)
		require.True(t, first.Computed)

		back := inputs(map[schema.Field]float64{b: 67890, c: first.Value})
		second, err := Solve(SolveRequest{Family: family, Target: a, Inputs: back})
		require.NoError(t, err)
		require.True(t, second.Computed)
		assert.InEpsilon(t, 1234.5, second.Value, 1e-6, "family %s", family)
	}
}

// FuzzSolve checks that no combination of inputs produces NaN or Inf.
func FuzzSolve(f *testing.F) {
	f.Add(5000.0, 250000.0, 0.0, false)
	f.Add(0.0, 0.0, 0.0, true)
	f.Add(1e308, 1e-308, 1.0, true)
	f.Add(-1.0, 10.0, 2.0, false)
	f.Fuzz(func(t *testing.T, x, y, z float64, auto bool) {
		mode := schema.ExplicitMode
		if auto {
			mode = schema.AutoMode
		}
		for _, family := range schema.AllFamilies {
			fields, _ := schema.FamilyFields(family)
			in := inputs(map[schema.Field]float64{fields[0]: x, fields[1]: y, fields[2]: z})
			for _, target := range fields {
				sol, err := Solve(SolveRequest{Family: family, Mode: mode, Target: target, Inputs: in})
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if sol.Computed && (!schema.IsFinite(sol.Value) || !schema.IsFinite(sol.Rounded)) {
					t.Errorf("%s/%s produced a non-finite value: %v", family, target, sol.Value)
				}
				if sol.Event != nil && !schema.IsFinite(sol.Event.Value) {
					t.Errorf("%s event carries a non-finite value", family)
				}
			}
		}
	})
}

// BenchmarkSolveExplicit benchmarks a single explicit solve.
func BenchmarkSolveExplicit(b *testing.B) {
	req := SolveRequest{
		Family: schema.CPMFamily,
		Target: schema.FieldCPM,
		Inputs: schema.MetricInputs{Budget: schema.Float(1000), Impressions: schema.Float(400000)},
	}

	for b.Loop() {
		_, _ = Solve(req)
	}
}

// BenchmarkSolveAuto benchmarks auto mode with write-back.
func BenchmarkSolveAuto(b *testing.B) {
	req := SolveRequest{
		Family: schema.CTRFamily,
		Mode:   schema.AutoMode,
		Inputs: schema.MetricInputs{Clicks: schema.Float(90), Impressions: schema.Float(10000)},
	}

	for b.Loop() {
		_, _ = Solve(req)
	}
}
