package schema

// BenchmarkValues holds the reference values for one industry and media type.
// A zero value means no benchmark applies to that metric.
type BenchmarkValues struct {
	CPM      float64 `json:"cpm"`
	CTR      float64 `json:"ctr"`
	CPV      float64 `json:"cpv"`
	ViewRate float64 `json:"viewRate"`
}

// Get returns the reference for a rate field, or 0 for any other field.
func (b BenchmarkValues) Get(field Field) float64 {
	switch field {
	case FieldCPM:
		return b.CPM
	case FieldCTR:
		return b.CTR
	case FieldCPV:
		return b.CPV
	case FieldViewRate:
		return b.ViewRate
	default:
		return 0
	}
}

// With returns a copy of b with field set to v. Non-rate fields are ignored.
func (b BenchmarkValues) With(field Field, v float64) BenchmarkValues {
	switch field {
	case FieldCPM:
		b.CPM = v
	case FieldCTR:
		b.CTR = v
	case FieldCPV:
		b.CPV = v
	case FieldViewRate:
		b.ViewRate = v
	}
	return b
}

// BenchmarkTable maps MediaType -> Industry -> reference values.
type BenchmarkTable map[MediaType]map[Industry]BenchmarkValues

// Lookup returns the reference values for a media type and industry.
func (t BenchmarkTable) Lookup(media MediaType, industry Industry) (BenchmarkValues, bool) {
	byIndustry, ok := t[media]
	if !ok {
		return BenchmarkValues{}, false
	}
	values, ok := byIndustry[industry]
	return values, ok
}

// Reference returns the benchmark for a metric, reporting false when the
// combination is missing or holds the zero sentinel.
func (t BenchmarkTable) Reference(metric Field, industry Industry, media MediaType) (float64, bool) {
	values, ok := t.Lookup(media, industry)
	if !ok {
		return 0, false
	}
	ref := values.Get(metric)
	if ref <= 0 {
		return 0, false
	}
	return ref, true
}

// Clone returns a deep copy of the table.
func (t BenchmarkTable) Clone() BenchmarkTable {
	out := make(BenchmarkTable, len(t))
	for media, byIndustry := range t {
		row := make(map[Industry]BenchmarkValues, len(byIndustry))
		for industry, values := range byIndustry {
			row[industry] = values
		}
		out[media] = row
	}
	return out
}

// DefaultBenchmarks returns a fresh copy of the built-in benchmark table.
// Callers may modify the copy; the built-in table never changes.
func DefaultBenchmarks() BenchmarkTable {
	return defaultBenchmarks.Clone()
}

// defaultBenchmarks is loaded once at process start and never mutated.
var defaultBenchmarks = BenchmarkTable{
	DisplayMedia: {
		AverageIndustry:    {CPM: 2.50, CTR: 0.46, CPV: 0.63},
		AutomotiveIndustry: {CPM: 2.80, CTR: 0.41, CPV: 0.58},
		B2BIndustry:        {CPM: 3.40, CTR: 0.35, CPV: 0.79},
		EducationIndustry:  {CPM: 2.20, CTR: 0.42, CPV: 0.48},
		FinanceIndustry:    {CPM: 3.90, CTR: 0.33, CPV: 0.98},
		HealthcareIndustry: {CPM: 2.90, CTR: 0.38, CPV: 0.72},
		RetailIndustry:     {CPM: 2.10, CTR: 0.51, CPV: 0.45},
		TechnologyIndustry: {CPM: 3.20, CTR: 0.39, CPV: 0.71},
		TravelIndustry:     {CPM: 2.40, CTR: 0.47, CPV: 0.44},
	},
	VideoMedia: {
		AverageIndustry:    {CPM: 12.00, CTR: 0.65, CPV: 0.04, ViewRate: 31.0},
		AutomotiveIndustry: {CPM: 13.50, CTR: 0.58, CPV: 0.05, ViewRate: 29.5},
		B2BIndustry:        {CPM: 18.00, CTR: 0.48, CPV: 0.08, ViewRate: 24.0},
		EducationIndustry:  {CPM: 10.50, CTR: 0.71, CPV: 0.03, ViewRate: 33.0},
		FinanceIndustry:    {CPM: 16.50, CTR: 0.52, CPV: 0.07, ViewRate: 26.5},
		HealthcareIndustry: {CPM: 14.00, CTR: 0.55, CPV: 0.06, ViewRate: 28.0},
		RetailIndustry:     {CPM: 11.00, CTR: 0.74, CPV: 0.03, ViewRate: 32.5},
		TechnologyIndustry: {CPM: 15.00, CTR: 0.60, CPV: 0.05, ViewRate: 27.0},
		TravelIndustry:     {CPM: 11.50, CTR: 0.69, CPV: 0.04, ViewRate: 34.0},
	},
	SocialMedia: {
		AverageIndustry:    {CPM: 8.00, CTR: 0.90, CPV: 0.97, ViewRate: 18.0},
		AutomotiveIndustry: {CPM: 9.20, CTR: 0.80, CPV: 2.24, ViewRate: 16.5},
		B2BIndustry:        {CPM: 11.50, CTR: 0.78, CPV: 2.52, ViewRate: 14.0},
		EducationIndustry:  {CPM: 7.10, CTR: 0.73, CPV: 1.06, ViewRate: 19.5},
		FinanceIndustry:    {CPM: 12.40, CTR: 0.56, CPV: 3.77, ViewRate: 13.0},
		HealthcareIndustry: {CPM: 9.80, CTR: 0.83, CPV: 1.32, ViewRate: 15.5},
		RetailIndustry:     {CPM: 6.60, CTR: 1.59, CPV: 0.70, ViewRate: 21.0},
		TechnologyIndustry: {CPM: 10.30, CTR: 1.04, CPV: 1.27, ViewRate: 17.0},
		TravelIndustry:     {CPM: 7.40, CTR: 0.90, CPV: 0.63, ViewRate: 22.5},
	},
	// Search has no view-based buying, so cpv and viewRate hold the zero sentinel.
	SearchMedia: {
		AverageIndustry:    {CPM: 38.00, CTR: 3.17},
		AutomotiveIndustry: {CPM: 41.00, CTR: 4.00},
		B2BIndustry:        {CPM: 52.00, CTR: 2.41},
		EducationIndustry:  {CPM: 35.00, CTR: 3.78},
		FinanceIndustry:    {CPM: 58.00, CTR: 2.91},
		HealthcareIndustry: {CPM: 44.00, CTR: 3.27},
		RetailIndustry:     {CPM: 30.00, CTR: 2.69},
		TechnologyIndustry: {CPM: 47.00, CTR: 2.09},
		TravelIndustry:     {CPM: 33.00, CTR: 4.68},
	},
	// Audio is not clickable; ViewRate is the listen-through rate.
	AudioMedia: {
		AverageIndustry:    {CPM: 18.00, ViewRate: 90.0},
		AutomotiveIndustry: {CPM: 19.50, ViewRate: 88.5},
		B2BIndustry:        {CPM: 24.00, ViewRate: 85.0},
		EducationIndustry:  {CPM: 16.50, ViewRate: 91.5},
		FinanceIndustry:    {CPM: 22.50, ViewRate: 86.0},
		HealthcareIndustry: {CPM: 20.00, ViewRate: 87.5},
		RetailIndustry:     {CPM: 17.00, ViewRate: 92.0},
		TechnologyIndustry: {CPM: 21.00, ViewRate: 89.0},
		TravelIndustry:     {CPM: 17.50, ViewRate: 93.0},
	},
}
