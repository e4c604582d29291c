package schema

// Custom string types for type safety.
type (
	// Field names one of the eight quantities a user can enter or solve for.
	Field string

	// FieldKind groups fields by how they are rounded and displayed.
	FieldKind string

	// MetricFamily represents a calculator tab relating exactly three fields.
	MetricFamily string

	// SolveMode selects how the solver decides which field is unknown.
	SolveMode string

	// OutputMode represents the format of the output.
	OutputMode string

	// BenchmarkStatus is the qualitative verdict of a benchmark comparison.
	BenchmarkStatus string

	// Industry is a benchmark table row selector.
	Industry string

	// MediaType is a benchmark table column selector.
	MediaType string
)

// All fields of MetricInputs.
const (
	FieldBudget      Field = "budget"
	FieldImpressions Field = "impressions"
	FieldViews       Field = "views"
	FieldClicks      Field = "clicks"
	FieldCPM         Field = "cpm"
	FieldCPV         Field = "cpv"
	FieldCTR         Field = "ctr"
	FieldViewRate    Field = "viewRate"
)

// Field kinds.
const (
	CurrencyKind FieldKind = "currency" // budget, cpm, cpv
	CountKind    FieldKind = "count"    // impressions, views, clicks
	PercentKind  FieldKind = "percent"  // ctr, viewRate
)

// All metric families supported.
const (
	CPMFamily      MetricFamily = "cpm" // default
	CPVFamily      MetricFamily = "cpv"
	CTRFamily      MetricFamily = "ctr"
	ViewRateFamily MetricFamily = "viewRate"
)

// All solve modes supported.
const (
	ExplicitMode SolveMode = "explicit" // default
	AutoMode     SolveMode = "auto"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All benchmark statuses.
const (
	GoodStatus    BenchmarkStatus = "good"
	AverageStatus BenchmarkStatus = "average"
	PoorStatus    BenchmarkStatus = "poor"
)

// Industries present in the benchmark table.
const (
	AverageIndustry    Industry = "Average"
	AutomotiveIndustry Industry = "Automotive"
	B2BIndustry        Industry = "B2B"
	EducationIndustry  Industry = "Education"
	FinanceIndustry    Industry = "Finance"
	HealthcareIndustry Industry = "Healthcare"
	RetailIndustry     Industry = "Retail"
	TechnologyIndustry Industry = "Technology"
	TravelIndustry     Industry = "Travel"
)

// Media types present in the benchmark table.
const (
	DisplayMedia MediaType = "Display"
	VideoMedia   MediaType = "Video"
	SocialMedia  MediaType = "Social"
	SearchMedia  MediaType = "Search"
	AudioMedia   MediaType = "Audio"
)

// DefaultThreshold is the percentage-point band around a benchmark that counts as average.
const DefaultThreshold = 10.0

// AllFields lists every MetricInputs field in declaration order.
var AllFields = []Field{
	FieldBudget, FieldImpressions, FieldViews, FieldClicks,
	FieldCPM, FieldCPV, FieldCTR, FieldViewRate,
}

// AllFamilies lists the metric families in tab order.
var AllFamilies = []MetricFamily{CPMFamily, CPVFamily, CTRFamily, ViewRateFamily}

// AllIndustries lists industries in display order.
var AllIndustries = []Industry{
	AverageIndustry, AutomotiveIndustry, B2BIndustry, EducationIndustry, FinanceIndustry,
	HealthcareIndustry, RetailIndustry, TechnologyIndustry, TravelIndustry,
}

// AllMediaTypes lists media types in display order.
var AllMediaTypes = []MediaType{DisplayMedia, VideoMedia, SocialMedia, SearchMedia, AudioMedia}

// RateFields lists the fields that carry a benchmark.
var RateFields = []Field{FieldCPM, FieldCPV, FieldCTR, FieldViewRate}

// ValidFields lists all valid fields.
var ValidFields = map[Field]struct{}{
	FieldBudget:      {},
	FieldImpressions: {},
	FieldViews:       {},
	FieldClicks:      {},
	FieldCPM:         {},
	FieldCPV:         {},
	FieldCTR:         {},
	FieldViewRate:    {},
}

// ValidFamilies lists all valid metric families.
var ValidFamilies = map[MetricFamily]struct{}{
	CPMFamily:      {},
	CPVFamily:      {},
	CTRFamily:      {},
	ViewRateFamily: {},
}

// ValidSolveModes lists all valid solve modes.
var ValidSolveModes = map[SolveMode]struct{}{
	ExplicitMode: {},
	AutoMode:     {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidRateFields lists the fields that can be benchmarked.
var ValidRateFields = map[Field]struct{}{
	FieldCPM:      {},
	FieldCPV:      {},
	FieldCTR:      {},
	FieldViewRate: {},
}
