package schema

// MetricInputs is the shared set of quantities a user has entered.
// A nil field is unset, which is distinct from zero. A field is known only
// when it is set and strictly positive.
type MetricInputs struct {
	Budget      *float64 `json:"budget,omitempty" mapstructure:"budget"`
	Impressions *float64 `json:"impressions,omitempty" mapstructure:"impressions"`
	Views       *float64 `json:"views,omitempty" mapstructure:"views"`
	Clicks      *float64 `json:"clicks,omitempty" mapstructure:"clicks"`
	CPM         *float64 `json:"cpm,omitempty" mapstructure:"cpm"`
	CPV         *float64 `json:"cpv,omitempty" mapstructure:"cpv"`
	CTR         *float64 `json:"ctr,omitempty" mapstructure:"ctr"`
	ViewRate    *float64 `json:"viewRate,omitempty" mapstructure:"viewRate"`
}

// ptr returns the storage slot for a field, or nil for an unknown field.
func (m *MetricInputs) ptr(f Field) **float64 {
	switch f {
	case FieldBudget:
		return &m.Budget
	case FieldImpressions:
		return &m.Impressions
	case FieldViews:
		return &m.Views
	case FieldClicks:
		return &m.Clicks
	case FieldCPM:
		return &m.CPM
	case FieldCPV:
		return &m.CPV
	case FieldCTR:
		return &m.CTR
	case FieldViewRate:
		return &m.ViewRate
	default:
		return nil
	}
}

// Get returns the value of a field and whether it is set.
func (m MetricInputs) Get(f Field) (float64, bool) {
	slot := m.ptr(f)
	if slot == nil || *slot == nil {
		return 0, false
	}
	return **slot, true
}

// Value returns the value of a field, or 0 when unset.
func (m MetricInputs) Value(f Field) float64 {
	v, _ := m.Get(f)
	return v
}

// Known reports whether a field is set and strictly positive.
func (m MetricInputs) Known(f Field) bool {
	v, ok := m.Get(f)
	return ok && v > 0
}

// Set stores v in the field. Unknown fields are ignored.
func (m *MetricInputs) Set(f Field, v float64) {
	if slot := m.ptr(f); slot != nil {
		*slot = &v
	}
}

// Unset clears the field back to the unset state.
func (m *MetricInputs) Unset(f Field) {
	if slot := m.ptr(f); slot != nil {
		*slot = nil
	}
}

// Clone returns a deep copy that shares no storage with m.
func (m MetricInputs) Clone() MetricInputs {
	var out MetricInputs
	for _, f := range AllFields {
		if v, ok := m.Get(f); ok {
			out.Set(f, v)
		}
	}
	return out
}

// KnownCount returns how many of the given fields are known.
func (m MetricInputs) KnownCount(fields ...Field) int {
	n := 0
	for _, f := range fields {
		if m.Known(f) {
			n++
		}
	}
	return n
}

// Float returns a pointer to v, handy for building MetricInputs literals.
func Float(v float64) *float64 {
	return &v
}
