package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBenchmarksShape(t *testing.T) {
	table := DefaultBenchmarks()
	for _, media := range AllMediaTypes {
		for _, industry := range AllIndustries {
			values, ok := table.Lookup(media, industry)
			require.True(t, ok, "%s/%s", media, industry)
			assert.Positive(t, values.CPM, "%s/%s", media, industry)
		}
	}

	for _, industry := range AllIndustries {
		_, ok := table.Reference(FieldCPV, industry, SearchMedia)
		assert.False(t, ok, "search has no cpv for %s", industry)
		_, ok = table.Reference(FieldViewRate, industry, DisplayMedia)
		assert.False(t, ok)
		_, ok = table.Reference(FieldCTR, industry, AudioMedia)
		assert.False(t, ok)
	}
}

func TestDefaultBenchmarksAreImmutable(t *testing.T) {
	table := DefaultBenchmarks()
	table[DisplayMedia][AverageIndustry] = BenchmarkValues{}
	delete(table, VideoMedia)

	fresh := DefaultBenchmarks()
	ref, ok := fresh.Reference(FieldCPM, AverageIndustry, DisplayMedia)
	require.True(t, ok)
	assert.Equal(t, 2.5, ref)
	_, ok = fresh.Lookup(VideoMedia, AverageIndustry)
	assert.True(t, ok)
}

func TestBenchmarkValues(t *testing.T) {
	v := BenchmarkValues{CPM: 1, CTR: 2, CPV: 3, ViewRate: 4}
	assert.Equal(t, 1.0, v.Get(FieldCPM))
	assert.Equal(t, 4.0, v.Get(FieldViewRate))
	assert.Zero(t, v.Get(FieldBudget))

	w := v.With(FieldCTR, 9).With(FieldBudget, 100)
	assert.Equal(t, 9.0, w.CTR)
	assert.Equal(t, 2.0, v.CTR, "With returns a copy")
	assert.Equal(t, v.CPM, w.CPM)
}

func TestReferenceMissing(t *testing.T) {
	table := BenchmarkTable{DisplayMedia: {RetailIndustry: {CPM: 2}}}

	_, ok := table.Reference(FieldCPM, RetailIndustry, VideoMedia)
	assert.False(t, ok)
	_, ok = table.Reference(FieldCPM, TravelIndustry, DisplayMedia)
	assert.False(t, ok)
	_, ok = table.Reference(FieldCTR, RetailIndustry, DisplayMedia)
	assert.False(t, ok)
}
