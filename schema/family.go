package schema

import (
	"fmt"
	"strings"
)

// familyFields holds the three fields of each family in canonical order.
// The last field is always the family's rate metric.
var familyFields = map[MetricFamily][3]Field{
	CPMFamily:      {FieldBudget, FieldImpressions, FieldCPM},
	CPVFamily:      {FieldBudget, FieldViews, FieldCPV},
	CTRFamily:      {FieldClicks, FieldImpressions, FieldCTR},
	ViewRateFamily: {FieldViews, FieldImpressions, FieldViewRate},
}

// FamilyFields returns the three fields related by a family in canonical order.
func FamilyFields(family MetricFamily) ([3]Field, error) {
	fields, ok := familyFields[family]
	if !ok {
		return [3]Field{}, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
	}
	return fields, nil
}

// RateField returns the benchmarkable metric of a family (cpm, cpv, ctr or viewRate).
func RateField(family MetricFamily) Field {
	return familyFields[family][2]
}

// InFamily reports whether field belongs to family.
func InFamily(family MetricFamily, field Field) bool {
	for _, f := range familyFields[family] {
		if f == field {
			return true
		}
	}
	return false
}

// KindOf returns the rounding and display class of a field.
func KindOf(field Field) FieldKind {
	switch field {
	case FieldImpressions, FieldViews, FieldClicks:
		return CountKind
	case FieldCTR, FieldViewRate:
		return PercentKind
	default:
		return CurrencyKind
	}
}

// LowerIsBetter reports whether a smaller value of the rate field beats the benchmark.
// Costs (cpm, cpv) are lower-is-better; rates (ctr, viewRate) are higher-is-better.
func LowerIsBetter(field Field) bool {
	return field == FieldCPM || field == FieldCPV
}

// ParseFamily resolves a user-supplied family name case-insensitively.
// "view-rate", "view_rate" and "viewrate" all map to ViewRateFamily.
func ParseFamily(s string) (MetricFamily, error) {
	switch normalizeKey(s) {
	case "cpm":
		return CPMFamily, nil
	case "cpv", "cpc":
		return CPVFamily, nil
	case "ctr":
		return CTRFamily, nil
	case "viewrate", "vr", "ltr":
		return ViewRateFamily, nil
	default:
		return "", fmt.Errorf("%w: %q (must be cpm, cpv, ctr, viewRate)", ErrUnknownFamily, s)
	}
}

// ParseField resolves a user-supplied field name case-insensitively.
func ParseField(s string) (Field, error) {
	key := normalizeKey(s)
	for _, f := range AllFields {
		if normalizeKey(string(f)) == key {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// ParseIndustry resolves a user-supplied industry case-insensitively.
// An empty string is returned unchanged, meaning "not selected".
func ParseIndustry(s string) (Industry, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	key := normalizeKey(s)
	for _, ind := range AllIndustries {
		if normalizeKey(string(ind)) == key {
			return ind, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownIndustry, s)
}

// ParseMediaType resolves a user-supplied media type case-insensitively.
// An empty string is returned unchanged, meaning "not selected".
func ParseMediaType(s string) (MediaType, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	key := normalizeKey(s)
	for _, mt := range AllMediaTypes {
		if normalizeKey(string(mt)) == key {
			return mt, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMediaType, s)
}

// normalizeKey lowercases s and strips separators so "View-Rate" matches "viewRate".
func normalizeKey(s string) string {
	r := strings.NewReplacer("-", "", "_", "", " ", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(s)))
}
