package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFamilyFields(t *testing.T) {
	for _, family := range AllFamilies {
		fields, err := FamilyFields(family)
		require.NoError(t, err)
		assert.Equal(t, fields[2], RateField(family))
		for _, f := range fields {
			assert.True(t, InFamily(family, f))
		}
	}

	_, err := FamilyFields("roas")
	assert.ErrorIs(t, err, ErrUnknownFamily)
	assert.False(t, InFamily(CTRFamily, FieldBudget))
	assert.False(t, InFamily("roas", FieldBudget))
}

func TestKindAndDirection(t *testing.T) {
	assert.Equal(t, CountKind, KindOf(FieldViews))
	assert.Equal(t, PercentKind, KindOf(FieldCTR))
	assert.Equal(t, CurrencyKind, KindOf(FieldBudget))

	assert.True(t, LowerIsBetter(FieldCPM))
	assert.True(t, LowerIsBetter(FieldCPV))
	assert.False(t, LowerIsBetter(FieldCTR))
	assert.False(t, LowerIsBetter(FieldViewRate))
}

func TestParseFamily(t *testing.T) {
	tests := map[string]MetricFamily{
		"cpm":       CPMFamily,
		" CPM ":     CPMFamily,
		"cpc":       CPVFamily,
		"ctr":       CTRFamily,
		"viewRate":  ViewRateFamily,
		"view-rate": ViewRateFamily,
		"VIEW_RATE": ViewRateFamily,
		"ltr":       ViewRateFamily,
	}
	for in, want := range tests {
		got, err := ParseFamily(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFamily("roas")
	assert.ErrorIs(t, err, ErrUnknownFamily)
	_, err = ParseFamily("")
	assert.ErrorIs(t, err, ErrUnknownFamily)
}

func TestParseField(t *testing.T) {
	got, err := ParseField("View-Rate")
	require.NoError(t, err)
	assert.Equal(t, FieldViewRate, got)

	got, err = ParseField("IMPRESSIONS")
	require.NoError(t, err)
	assert.Equal(t, FieldImpressions, got)

	_, err = ParseField("reach")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestParseSelectors(t *testing.T) {
	industry, err := ParseIndustry("b2b")
	require.NoError(t, err)
	assert.Equal(t, B2BIndustry, industry)

	industry, err = ParseIndustry("  ")
	require.NoError(t, err)
	assert.Empty(t, industry)

	_, err = ParseIndustry("mining")
	assert.ErrorIs(t, err, ErrUnknownIndustry)

	media, err := ParseMediaType("VIDEO")
	require.NoError(t, err)
	assert.Equal(t, VideoMedia, media)

	media, err = ParseMediaType("")
	require.NoError(t, err)
	assert.Empty(t, media)

	_, err = ParseMediaType("print")
	assert.ErrorIs(t, err, ErrUnknownMediaType)
}
