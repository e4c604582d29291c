package schema

import (
	"math"

	"github.com/dustin/go-humanize"
)

// RoundFor applies the storage rounding of a field: counts are floored,
// currency and percentages keep two decimals.
func RoundFor(field Field, v float64) float64 {
	if !IsFinite(v) {
		return 0
	}
	if KindOf(field) == CountKind {
		return math.Floor(v)
	}
	return math.Round(v*100) / 100
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FormatCurrency renders v as dollars with thousands separators, e.g. "$1,234.50".
// Non-positive or non-finite values render as the zero state "$0.00".
func FormatCurrency(v float64) string {
	if !IsFinite(v) || v <= 0 {
		return "$0.00"
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// FormatPercent renders a human-readable percentage, e.g. "2.40%".
func FormatPercent(v float64) string {
	if !IsFinite(v) || v <= 0 {
		return "0.00%"
	}
	return humanize.FormatFloat("#,###.##", v) + "%"
}

// FormatCount floors v and renders it with thousands separators, e.g. "250,000".
func FormatCount(v float64) string {
	if !IsFinite(v) || v < 1 {
		return "0"
	}
	return humanize.Comma(int64(math.Floor(v)))
}

// FormatField renders v using the display rules of the field's kind.
func FormatField(field Field, v float64) string {
	switch KindOf(field) {
	case CountKind:
		return FormatCount(v)
	case PercentKind:
		return FormatPercent(v)
	default:
		return FormatCurrency(v)
	}
}

// MetricLabel returns the display label of a rate field. Audio view rate is
// reported as listen-through rate.
func MetricLabel(metric Field, media MediaType) string {
	switch metric {
	case FieldCPM:
		return "CPM"
	case FieldCPV:
		return "CPV / CPC"
	case FieldCTR:
		return "CTR"
	case FieldViewRate:
		if media == AudioMedia {
			return "Listen-Through Rate"
		}
		return "View Rate"
	default:
		return string(metric)
	}
}

// resultCopy is the heading and caption shown for a solved target.
type resultCopy struct {
	label   string
	subtext string
}

var resultCopies = map[MetricFamily]map[Field]resultCopy{
	CPMFamily: {
		FieldCPM:         {"Cost Per 1,000 Impressions", "Calculated CPM"},
		FieldBudget:      {"Required Budget", "Total cost based on inputs"},
		FieldImpressions: {"Total Impressions", "Estimated reach"},
	},
	CPVFamily: {
		FieldCPV:    {"Cost Per View / Click", "Calculated cost per interaction"},
		FieldBudget: {"Required Budget", "Total cost based on inputs"},
		FieldViews:  {"Total Views / Clicks", "Total interactions"},
	},
	CTRFamily: {
		FieldCTR:         {"Click Through Rate", "Percentage of impressions that clicked"},
		FieldClicks:      {"Total Clicks", "Estimated clicks"},
		FieldImpressions: {"Required Impressions", "Impressions needed"},
	},
	ViewRateFamily: {
		FieldViewRate:    {"View Rate", "Percentage of impressions that viewed"},
		FieldViews:       {"Total Views", "Estimated views"},
		FieldImpressions: {"Required Impressions", "Impressions needed"},
	},
}

// ResultLabel returns the heading and caption for a solved target in a family.
func ResultLabel(family MetricFamily, target Field) (label, subtext string) {
	if c, ok := resultCopies[family][target]; ok {
		return c.label, c.subtext
	}
	return string(target), ""
}
