package core

import (
	"fmt"
	"sync"

	"github.com/adtools/mediamath/schema"
)

// Session owns one calculator's inputs and selectors and keeps the derived
// solution and benchmark in sync with them. Every mutation recomputes, so a
// stale benchmark is never visible after an invalidating change.
//
// In auto mode the solved value is written back into the inputs but stays
// derived: later solves ignore it until the caller sets or clears that field,
// so the solved target only moves when the entered values do.
// A Session is safe for concurrent use; all updates are serialized.
type Session struct {
	mu        sync.Mutex
	evaluator *Evaluator

	family    schema.MetricFamily
	mode      schema.SolveMode
	target    schema.Field
	industry  schema.Industry
	media     schema.MediaType
	inputs    schema.MetricInputs
	derived   schema.Field // Field last written back by auto mode, reset on family change
	solution  *schema.Solution
	benchmark *schema.BenchmarkResult
}

// NewSession creates a session on the CPM family in explicit mode, solving for CPM.
// A nil evaluator falls back to NewEvaluator().
func NewSession(evaluator *Evaluator) *Session {
	if evaluator == nil {
		evaluator = NewEvaluator()
	}
	return &Session{
		evaluator: evaluator,
		family:    schema.CPMFamily,
		mode:      schema.ExplicitMode,
		target:    schema.FieldCPM,
	}
}

// SetFamily switches the active family. The target resets to the family's rate metric.
func (s *Session) SetFamily(family schema.MetricFamily) error {
	if _, err := schema.FamilyFields(family); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if family != s.family {
		s.derived = ""
	}
	s.family = family
	s.target = schema.RateField(family)
	s.recompute()
	return nil
}

// SetTarget selects the field to solve for in explicit mode.
func (s *Session) SetTarget(target schema.Field) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !schema.InFamily(s.family, target) {
		return fmt.Errorf("%w: %q not in %s", schema.ErrTargetNotInFamily, target, s.family)
	}
	s.target = target
	s.recompute()
	return nil
}

// SetMode switches between explicit and auto solving.
func (s *Session) SetMode(mode schema.SolveMode) error {
	if _, ok := schema.ValidSolveModes[mode]; !ok {
		return fmt.Errorf("%w: %q", schema.ErrUnknownMode, mode)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
	s.recompute()
	return nil
}

// SetInput stores a non-negative value for a field.
func (s *Session) SetInput(field schema.Field, value float64) error {
	if _, ok := schema.ValidFields[field]; !ok {
		return fmt.Errorf("%w: %q", schema.ErrUnknownField, field)
	}
	if value < 0 || !schema.IsFinite(value) {
		return fmt.Errorf("value for %s must be a non-negative number (received %v)", field, value)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setInput(field, value)
	s.recompute()
	return nil
}

// ClearInput returns a field to the unset state.
func (s *Session) ClearInput(field schema.Field) error {
	if _, ok := schema.ValidFields[field]; !ok {
		return fmt.Errorf("%w: %q", schema.ErrUnknownField, field)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearInput(field)
	s.recompute()
	return nil
}

// SetIndustry selects the benchmark industry. Empty clears the selection.
func (s *Session) SetIndustry(industry schema.Industry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.industry = industry
	s.reevaluate()
}

// SetMediaType selects the benchmark media type. Empty clears the selection.
func (s *Session) SetMediaType(media schema.MediaType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.media = media
	s.reevaluate()
}

// Reset clears all inputs and derived results but keeps family, mode and selectors.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs = schema.MetricInputs{}
	s.derived = ""
	s.recompute()
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() schema.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := schema.SessionState{
		Family:    s.family,
		Mode:      s.mode,
		Target:    s.target,
		Industry:  s.industry,
		MediaType: s.media,
		Inputs:    s.inputs.Clone(),
	}
	if s.solution != nil {
		sol := *s.solution
		sol.Inputs = sol.Inputs.Clone()
		state.Solution = &sol
	}
	if s.benchmark != nil {
		b := *s.benchmark
		state.Benchmark = &b
	}
	return state
}

// SessionUpdate is a batch of changes applied atomically by Session.Apply.
// Zero fields leave the current value alone.
type SessionUpdate struct {
	Family    schema.MetricFamily
	Mode      schema.SolveMode
	Target    schema.Field
	Industry  *schema.Industry  // Points at "" to clear the selection
	MediaType *schema.MediaType // Points at "" to clear the selection
	Clear     []schema.Field
	Values    schema.MetricInputs
}

// Apply validates every change in u and then applies them together with a
// single recompute. On error the session is left untouched.
func (s *Session) Apply(u SessionUpdate) error {
	if u.Family != "" {
		if _, err := schema.FamilyFields(u.Family); err != nil {
			return err
		}
	}
	if u.Mode != "" {
		if _, ok := schema.ValidSolveModes[u.Mode]; !ok {
			return fmt.Errorf("%w: %q", schema.ErrUnknownMode, u.Mode)
		}
	}
	for _, field := range u.Clear {
		if _, ok := schema.ValidFields[field]; !ok {
			return fmt.Errorf("%w: %q", schema.ErrUnknownField, field)
		}
	}
	for _, field := range schema.AllFields {
		if v, ok := u.Values.Get(field); ok && (v < 0 || !schema.IsFinite(v)) {
			return fmt.Errorf("value for %s must be a non-negative number (received %v)", field, v)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	family, target := s.family, s.target
	if u.Family != "" {
		family, target = u.Family, schema.RateField(u.Family)
	}
	if u.Target != "" {
		if !schema.InFamily(family, u.Target) {
			return fmt.Errorf("%w: %q not in %s", schema.ErrTargetNotInFamily, u.Target, family)
		}
		target = u.Target
	}

	resolve := family != s.family || target != s.target
	if family != s.family {
		s.derived = ""
	}
	s.family, s.target = family, target
	if u.Mode != "" {
		resolve = resolve || u.Mode != s.mode
		s.mode = u.Mode
	}
	if u.Industry != nil {
		s.industry = *u.Industry
	}
	if u.MediaType != nil {
		s.media = *u.MediaType
	}
	for _, field := range u.Clear {
		s.clearInput(field)
		resolve = true
	}
	for _, field := range schema.AllFields {
		if v, ok := u.Values.Get(field); ok {
			s.setInput(field, v)
			resolve = true
		}
	}

	if resolve {
		s.recompute()
	} else {
		s.reevaluate()
	}
	return nil
}

// setInput stores a caller-entered value. Callers must hold s.mu.
func (s *Session) setInput(field schema.Field, value float64) {
	s.inputs.Set(field, value)
	if field == s.derived {
		s.derived = ""
	}
}

// clearInput unsets a field. Callers must hold s.mu.
func (s *Session) clearInput(field schema.Field) {
	s.inputs.Unset(field)
	if field == s.derived {
		s.derived = ""
	}
}

// recompute re-runs the solver and evaluator. Callers must hold s.mu.
func (s *Session) recompute() {
	s.solution, s.benchmark = nil, nil

	inputs := s.inputs
	if s.mode == schema.AutoMode && s.derived != "" {
		inputs = inputs.Clone()
		inputs.Unset(s.derived)
	}
	sol, err := Solve(SolveRequest{
		Family: s.family,
		Mode:   s.mode,
		Target: s.target,
		Inputs: inputs,
	})
	if err != nil {
		return
	}
	s.solution = &sol
	if sol.Mode == schema.AutoMode {
		s.inputs = sol.Inputs.Clone()
		s.derived = ""
		if sol.Computed {
			s.derived = sol.Target
		}
	}

	s.reevaluate()
}

// reevaluate benchmarks the current solution against the current selectors
// without solving again. Callers must hold s.mu.
func (s *Session) reevaluate() {
	s.benchmark = nil
	if s.solution == nil {
		return
	}
	if b, ok := evaluateSolution(s.evaluator, *s.solution, s.industry, s.media); ok {
		s.benchmark = &b
	}
}

// evaluateSolution benchmarks a solution when it computed the family's rate metric.
// The rounded value is compared so results match what is displayed.
func evaluateSolution(e *Evaluator, sol schema.Solution, industry schema.Industry, media schema.MediaType) (schema.BenchmarkResult, bool) {
	if !sol.Computed || sol.Target != schema.RateField(sol.Family) {
		return schema.BenchmarkResult{}, false
	}
	return e.Evaluate(sol.Target, sol.Rounded, industry, media)
}
