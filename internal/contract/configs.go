package contract

import (
	"fmt"
	"maps"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/adtools/mediamath/schema"
	"golang.org/x/term"
)

// Default values for configuration.
const (
	DefaultPrecision = 2
	DefaultThreshold = schema.DefaultThreshold
	DefaultColor     = "auto"
	DefaultEmoji     = "no"
)

// BenchmarkRaw holds override values for one industry row of the benchmark table.
// Use float64 pointers so omitted metrics keep their defaults.
type BenchmarkRaw struct {
	CPM      *float64 `mapstructure:"cpm"`
	CTR      *float64 `mapstructure:"ctr"`
	CPV      *float64 `mapstructure:"cpv"`
	ViewRate *float64 `mapstructure:"view_rate"`
}

// Config holds the runtime configuration for a command.
// This struct is the "final, validated" config.
type Config struct {
	// Solve
	Family schema.MetricFamily
	Mode   schema.SolveMode
	Target schema.Field
	Inputs schema.MetricInputs

	// Evaluate
	Metric schema.Field
	Value  float64

	// Batch
	ScenarioFile string

	Industry  schema.Industry
	MediaType schema.MediaType

	Precision  int
	Output     schema.OutputMode
	OutputFile string

	// Threshold is the band in percentage points that counts as average.
	Threshold float64

	// Seed makes feedback phrases reproducible. Zero picks randomly.
	Seed uint64

	// CustomBenchmarks is a mapping of [MediaType][Industry] = overrides from the config file
	CustomBenchmarks map[schema.MediaType]map[schema.Industry]BenchmarkRaw

	// Benchmarks is the final table, computed from defaults + custom overrides
	Benchmarks schema.BenchmarkTable

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// These are set manually from positional args, so no tag
	FamilyStr    string `mapstructure:"-"`
	MetricStr    string `mapstructure:"-"`
	ValueStr     string `mapstructure:"-"`
	ScenarioFile string `mapstructure:"-"`

	// --- Fields from rootCmd.PersistentFlags() ---
	Output     string  `mapstructure:"output"`
	OutputFile string  `mapstructure:"output-file"`
	Precision  int     `mapstructure:"precision"`
	Color      string  `mapstructure:"color"`
	Emoji      string  `mapstructure:"emoji"`
	Industry   string  `mapstructure:"industry"`
	Media      string  `mapstructure:"media"`
	Threshold  float64 `mapstructure:"threshold"`
	Seed       uint64  `mapstructure:"seed"`

	// --- Fields from solveCmd.Flags() ---
	Target      string `mapstructure:"target"`
	Auto        bool   `mapstructure:"auto"`
	Budget      string `mapstructure:"budget"`
	Impressions string `mapstructure:"impressions"`
	Views       string `mapstructure:"views"`
	Clicks      string `mapstructure:"clicks"`
	CPM         string `mapstructure:"cpm"`
	CPV         string `mapstructure:"cpv"`
	CTR         string `mapstructure:"ctr"`
	ViewRate    string `mapstructure:"view-rate"`

	// --- Benchmark overrides from config file ---
	Benchmarks map[string]map[string]BenchmarkRaw `mapstructure:"benchmarks"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Inputs = c.Inputs.Clone()
	if c.CustomBenchmarks != nil {
		clone.CustomBenchmarks = make(map[schema.MediaType]map[schema.Industry]BenchmarkRaw, len(c.CustomBenchmarks))
		for media, rows := range c.CustomBenchmarks {
			clone.CustomBenchmarks[media] = maps.Clone(rows)
		}
	}
	if c.Benchmarks != nil {
		clone.Benchmarks = c.Benchmarks.Clone()
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processSolveInputs(cfg, input); err != nil {
		return err
	}
	if err := processEvaluateInputs(cfg, input); err != nil {
		return err
	}
	if err := processCustomBenchmarks(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates the shared output and benchmark fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.ScenarioFile = strings.TrimSpace(input.ScenarioFile)
	cfg.Seed = input.Seed

	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseColorString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	// --- 2. Threshold Validation ---
	if math.IsNaN(input.Threshold) || input.Threshold < 0 || input.Threshold > 100 {
		return fmt.Errorf("threshold must be between 0 and 100 (received %v)", input.Threshold)
	}
	cfg.Threshold = input.Threshold

	// --- 3. Benchmark Selectors ---
	if cfg.Industry, err = schema.ParseIndustry(input.Industry); err != nil {
		return err
	}
	if cfg.MediaType, err = schema.ParseMediaType(input.Media); err != nil {
		return err
	}

	return nil
}

// processSolveInputs parses the family, mode, target and the numeric value flags.
func processSolveInputs(cfg *Config, input *ConfigRawInput) error {
	raw := map[schema.Field]string{
		schema.FieldBudget:      input.Budget,
		schema.FieldImpressions: input.Impressions,
		schema.FieldViews:       input.Views,
		schema.FieldClicks:      input.Clicks,
		schema.FieldCPM:         input.CPM,
		schema.FieldCPV:         input.CPV,
		schema.FieldCTR:         input.CTR,
		schema.FieldViewRate:    input.ViewRate,
	}
	cfg.Inputs = schema.MetricInputs{}
	for _, field := range schema.AllFields {
		v, ok, err := ParseAmount(raw[field])
		if err != nil {
			return fmt.Errorf("invalid --%s value: %w", flagName(field), err)
		}
		if ok {
			cfg.Inputs.Set(field, v)
		}
	}

	cfg.Mode = schema.ExplicitMode
	if input.Auto {
		cfg.Mode = schema.AutoMode
	}

	if input.FamilyStr == "" {
		return nil
	}
	family, err := schema.ParseFamily(input.FamilyStr)
	if err != nil {
		return err
	}
	cfg.Family = family

	cfg.Target = schema.RateField(family)
	if input.Target != "" {
		target, err := schema.ParseField(input.Target)
		if err != nil {
			return err
		}
		if !schema.InFamily(family, target) {
			fields, _ := schema.FamilyFields(family)
			return fmt.Errorf("%w: %q must be one of %v", schema.ErrTargetNotInFamily, input.Target, fields)
		}
		cfg.Target = target
	}
	return nil
}

// processEvaluateInputs parses the metric and value positional arguments.
func processEvaluateInputs(cfg *Config, input *ConfigRawInput) error {
	if input.MetricStr == "" {
		return nil
	}
	metric, err := schema.ParseField(input.MetricStr)
	if err != nil {
		return err
	}
	if _, ok := schema.ValidRateFields[metric]; !ok {
		return fmt.Errorf("%w: %q must be one of %v", schema.ErrNotRateField, input.MetricStr, schema.RateFields)
	}
	cfg.Metric = metric

	v, ok, err := ParseAmount(input.ValueStr)
	if err != nil {
		return fmt.Errorf("invalid value: %w", err)
	}
	if !ok {
		return fmt.Errorf("a value is required for %s", metric)
	}
	cfg.Value = v
	return nil
}

// ProcessBenchmarksRawInput converts raw override rows into a typed map,
// rejecting unknown media types, unknown industries and negative values.
func ProcessBenchmarksRawInput(raw map[string]map[string]BenchmarkRaw) (map[schema.MediaType]map[schema.Industry]BenchmarkRaw, error) {
	result := make(map[schema.MediaType]map[schema.Industry]BenchmarkRaw)

	// Sorted so the first reported error is stable.
	for _, mediaKey := range slices.Sorted(maps.Keys(raw)) {
		media, err := schema.ParseMediaType(mediaKey)
		if err != nil || media == "" {
			return nil, fmt.Errorf("invalid benchmark media type '%s': %w", mediaKey, schema.ErrUnknownMediaType)
		}
		rows := raw[mediaKey]
		for _, industryKey := range slices.Sorted(maps.Keys(rows)) {
			industry, err := schema.ParseIndustry(industryKey)
			if err != nil || industry == "" {
				return nil, fmt.Errorf("invalid benchmark industry '%s' under %s: %w", industryKey, media, schema.ErrUnknownIndustry)
			}
			row := rows[industryKey]
			for _, v := range []*float64{row.CPM, row.CTR, row.CPV, row.ViewRate} {
				if v != nil && (*v < 0 || !schema.IsFinite(*v)) {
					return nil, fmt.Errorf("benchmark values for %s/%s must be non-negative (received %v)", media, industry, *v)
				}
			}
			if result[media] == nil {
				result[media] = make(map[schema.Industry]BenchmarkRaw)
			}
			result[media][industry] = row
		}
	}
	return result, nil
}

// processCustomBenchmarks validates the overrides and computes the final table.
func processCustomBenchmarks(cfg *Config, input *ConfigRawInput) error {
	custom, err := ProcessBenchmarksRawInput(input.Benchmarks)
	if err != nil {
		return err
	}
	cfg.CustomBenchmarks = custom
	cfg.Benchmarks = MergeBenchmarks(schema.DefaultBenchmarks(), custom)
	return nil
}

// MergeBenchmarks overlays custom rows on base. Only the metrics present in an
// override replace the base values; new industry rows start from zero.
func MergeBenchmarks(base schema.BenchmarkTable, custom map[schema.MediaType]map[schema.Industry]BenchmarkRaw) schema.BenchmarkTable {
	table := base.Clone()
	for media, rows := range custom {
		if table[media] == nil {
			table[media] = make(map[schema.Industry]schema.BenchmarkValues)
		}
		for industry, row := range rows {
			values := table[media][industry]
			if row.CPM != nil {
				values = values.With(schema.FieldCPM, *row.CPM)
			}
			if row.CTR != nil {
				values = values.With(schema.FieldCTR, *row.CTR)
			}
			if row.CPV != nil {
				values = values.With(schema.FieldCPV, *row.CPV)
			}
			if row.ViewRate != nil {
				values = values.With(schema.FieldViewRate, *row.ViewRate)
			}
			table[media][industry] = values
		}
	}
	return table
}

// ParseAmount parses a user-entered number. An empty string means unset and
// reports ok=false. Thousands separators, a leading "$" and a trailing "%" are
// tolerated. Negative, NaN and infinite values are rejected.
func ParseAmount(s string) (float64, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	cleaned := strings.TrimSuffix(strings.TrimPrefix(s, "$"), "%")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	v, err := strconv.ParseFloat(strings.TrimSpace(cleaned), 64)
	if err != nil {
		return 0, false, fmt.Errorf("'%s' is not a number", s)
	}
	if !schema.IsFinite(v) {
		return 0, false, fmt.Errorf("'%s' is not a finite number", s)
	}
	if v < 0 {
		return 0, false, fmt.Errorf("'%s' must not be negative", s)
	}
	return v, true, nil
}

// ParseColorString resolves the color setting. "auto" enables colors only
// when stdout is a terminal.
func ParseColorString(s string) (bool, error) {
	if strings.EqualFold(strings.TrimSpace(s), "auto") {
		return term.IsTerminal(int(os.Stdout.Fd())), nil
	}
	return ParseBoolString(s)
}

// flagName returns the CLI flag that carries a field.
func flagName(field schema.Field) string {
	if field == schema.FieldViewRate {
		return "view-rate"
	}
	return string(field)
}
