// Package algo holds the inverse formulas relating each metric family's three quantities.
package algo

import "github.com/adtools/mediamath/schema"

// Formula computes one field of a family from the other two.
type Formula struct {
	Target     schema.Field
	Inputs     [2]schema.Field
	Expression string
	compute    func(a, b float64) float64
}

// Apply runs the formula on its two inputs. It reports false when either
// input is not strictly positive or the result is not finite, so callers never
// see NaN or Inf.
func (f Formula) Apply(a, b float64) (float64, bool) {
	if !(a > 0) || !(b > 0) {
		return 0, false
	}
	v := f.compute(a, b)
	if !schema.IsFinite(v) {
		return 0, false
	}
	return v, true
}

// Formulas are listed in auto-solve priority order: the first pair checked
// derives the rate metric, then the budget or numerator, then the denominator.
var formulas = map[schema.MetricFamily][]Formula{
	schema.CPMFamily: {
		{
			Target: schema.FieldCPM, Inputs: [2]schema.Field{schema.FieldBudget, schema.FieldImpressions},
			Expression: "cpm = budget / impressions * 1000",
			compute:    func(budget, impressions float64) float64 { return budget * 1000 / impressions },
		},
		{
			Target: schema.FieldBudget, Inputs: [2]schema.Field{schema.FieldCPM, schema.FieldImpressions},
			Expression: "budget = cpm * impressions / 1000",
			compute:    func(cpm, impressions float64) float64 { return cpm * impressions / 1000 },
		},
		{
			Target: schema.FieldImpressions, Inputs: [2]schema.Field{schema.FieldBudget, schema.FieldCPM},
			Expression: "impressions = budget / cpm * 1000",
			compute:    func(budget, cpm float64) float64 { return budget * 1000 / cpm },
		},
	},
	schema.CPVFamily: {
		{
			Target: schema.FieldCPV, Inputs: [2]schema.Field{schema.FieldBudget, schema.FieldViews},
			Expression: "cpv = budget / views",
			compute:    func(budget, views float64) float64 { return budget / views },
		},
		{
			Target: schema.FieldBudget, Inputs: [2]schema.Field{schema.FieldCPV, schema.FieldViews},
			Expression: "budget = cpv * views",
			compute:    func(cpv, views float64) float64 { return cpv * views },
		},
		{
			Target: schema.FieldViews, Inputs: [2]schema.Field{schema.FieldBudget, schema.FieldCPV},
			Expression: "views = budget / cpv",
			compute:    func(budget, cpv float64) float64 { return budget / cpv },
		},
	},
	schema.CTRFamily: {
		{
			Target: schema.FieldCTR, Inputs: [2]schema.Field{schema.FieldClicks, schema.FieldImpressions},
			Expression: "ctr = clicks / impressions * 100",
			compute:    func(clicks, impressions float64) float64 { return clicks * 100 / impressions },
		},
		{
			Target: schema.FieldClicks, Inputs: [2]schema.Field{schema.FieldCTR, schema.FieldImpressions},
			Expression: "clicks = ctr * impressions / 100",
			compute:    func(ctr, impressions float64) float64 { return ctr * impressions / 100 },
		},
		{
			Target: schema.FieldImpressions, Inputs: [2]schema.Field{schema.FieldClicks, schema.FieldCTR},
			Expression: "impressions = clicks / (ctr / 100)",
			compute:    func(clicks, ctr float64) float64 { return clicks * 100 / ctr },
		},
	},
	schema.ViewRateFamily: {
		{
			Target: schema.FieldViewRate, Inputs: [2]schema.Field{schema.FieldViews, schema.FieldImpressions},
			Expression: "viewRate = views / impressions * 100",
			compute:    func(views, impressions float64) float64 { return views * 100 / impressions },
		},
		{
			Target: schema.FieldViews, Inputs: [2]schema.Field{schema.FieldViewRate, schema.FieldImpressions},
			Expression: "views = viewRate / 100 * impressions",
			compute:    func(viewRate, impressions float64) float64 { return viewRate * impressions / 100 },
		},
		{
			Target: schema.FieldImpressions, Inputs: [2]schema.Field{schema.FieldViews, schema.FieldViewRate},
			Expression: "impressions = views / (viewRate / 100)",
			compute:    func(views, viewRate float64) float64 { return views * 100 / viewRate },
		},
	},
}

// Formulas returns the three formulas of a family in auto-solve priority order.
// It returns nil for an unknown family.
func Formulas(family schema.MetricFamily) []Formula {
	return formulas[family]
}

// FormulaFor returns the formula that solves target within family.
func FormulaFor(family schema.MetricFamily, target schema.Field) (Formula, bool) {
	for _, f := range formulas[family] {
		if f.Target == target {
			return f, true
		}
	}
	return Formula{}, false
}
