package core

import (
	"fmt"

	"github.com/adtools/mediamath/core/algo"
	"github.com/adtools/mediamath/schema"
)

// SolveRequest describes one solve call.
type SolveRequest struct {
	Family schema.MetricFamily
	Mode   schema.SolveMode // Empty means explicit
	Target schema.Field     // Required in explicit mode, ignored in auto mode
	Inputs schema.MetricInputs
}

// Solve computes the unknown quantity of a metric family.
//
// In explicit mode the caller names the target; the other two fields are read
// and the target field is ignored even if populated. Missing or non-positive
// inputs yield Value 0 with Computed false, and inputs are returned unchanged.
//
// In auto mode the target is the first formula, in priority order, whose two
// inputs are known. Over-determined inputs therefore resolve deterministically.
// On success the rounded value is written back into the returned inputs and an
// Event is attached; with fewer than two known fields nothing changes.
//
// Errors are reserved for caller mistakes such as an unknown family.
func Solve(req SolveRequest) (schema.Solution, error) {
	if _, err := schema.FamilyFields(req.Family); err != nil {
		return schema.Solution{}, err
	}
	mode := req.Mode
	if mode == "" {
		mode = schema.ExplicitMode
	}

	switch mode {
	case schema.ExplicitMode:
		return solveExplicit(req.Family, req.Target, req.Inputs)
	case schema.AutoMode:
		return solveAuto(req.Family, req.Inputs), nil
	default:
		return schema.Solution{}, fmt.Errorf("%w: %q", schema.ErrUnknownMode, req.Mode)
	}
}

// solveExplicit applies the formula for a caller-selected target.
func solveExplicit(family schema.MetricFamily, target schema.Field, inputs schema.MetricInputs) (schema.Solution, error) {
	formula, ok := algo.FormulaFor(family, target)
	if !ok {
		return schema.Solution{}, fmt.Errorf("%w: %q not in %s", schema.ErrTargetNotInFamily, target, family)
	}

	sol := schema.Solution{
		Family: family,
		Mode:   schema.ExplicitMode,
		Target: target,
		Inputs: inputs.Clone(),
	}
	v, ok := formula.Apply(inputs.Value(formula.Inputs[0]), inputs.Value(formula.Inputs[1]))
	if !ok {
		return sol, nil
	}
	sol.Value = v
	sol.Rounded = schema.RoundFor(target, v)
	sol.Computed = true
	return sol, nil
}

// solveAuto infers the target from which fields are known.
func solveAuto(family schema.MetricFamily, inputs schema.MetricInputs) schema.Solution {
	sol := schema.Solution{
		Family: family,
		Mode:   schema.AutoMode,
		Inputs: inputs.Clone(),
	}
	for _, formula := range algo.Formulas(family) {
		a, b := formula.Inputs[0], formula.Inputs[1]
		if !inputs.Known(a) || !inputs.Known(b) {
			continue
		}
		v, ok := formula.Apply(inputs.Value(a), inputs.Value(b))
		if !ok {
			// Overflow; keep whatever the target already holds.
			sol.Target = formula.Target
			sol.Value = inputs.Value(formula.Target)
			sol.Rounded = sol.Value
			return sol
		}
		rounded := schema.RoundFor(formula.Target, v)
		sol.Target = formula.Target
		sol.Value = v
		sol.Rounded = rounded
		sol.Computed = true
		sol.Inputs.Set(formula.Target, rounded)
		sol.Event = &schema.Computation{Metric: formula.Target, Value: rounded}
		return sol
	}
	return sol
}
