package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adtools/mediamath/schema"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// ErrNoScenarios is returned for a scenario file without any scenarios.
var ErrNoScenarios = errors.New("scenario file has no scenarios")

// Scenario is one entry of a batch file. Industry and media fall back to the
// file-level values, then to the command configuration.
type Scenario struct {
	Name     string              `mapstructure:"name"`
	Family   string              `mapstructure:"family"`
	Target   string              `mapstructure:"target"`
	Mode     string              `mapstructure:"mode"`
	Industry string              `mapstructure:"industry"`
	Media    string              `mapstructure:"media"`
	Inputs   schema.MetricInputs `mapstructure:"inputs"`
}

// ScenarioFile is the top-level layout of a batch file.
type ScenarioFile struct {
	Industry  string     `mapstructure:"industry"`
	Media     string     `mapstructure:"media"`
	Scenarios []Scenario `mapstructure:"scenarios"`
}

// LoadScenarioFile reads a YAML, JSON or TOML batch file. The format follows
// the file extension.
func LoadScenarioFile(path string) (*ScenarioFile, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read scenario file %s: %w", path, err)
	}

	var file ScenarioFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("failed to decode scenario file %s: %w", path, err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoScenarios)
	}
	return &file, nil
}

// RunScenarios solves and evaluates every scenario in order. Any invalid
// scenario fails the whole batch so partial output is never written.
func RunScenarios(file *ScenarioFile, evaluator *Evaluator, industry schema.Industry, media schema.MediaType) (schema.BatchResult, error) {
	result := schema.BatchResult{
		RunID:     uuid.NewString(),
		Scenarios: make([]schema.ScenarioResult, 0, len(file.Scenarios)),
	}

	defIndustry, defMedia, err := resolveSelectors(file.Industry, file.Media, industry, media)
	if err != nil {
		return schema.BatchResult{}, err
	}

	for i, sc := range file.Scenarios {
		name := sc.Name
		if name == "" {
			name = fmt.Sprintf("scenario-%d", i+1)
		}
		row, err := runScenario(sc, evaluator, defIndustry, defMedia)
		if err != nil {
			return schema.BatchResult{}, fmt.Errorf("scenario %q: %w", name, err)
		}
		row.Name = name
		result.Scenarios = append(result.Scenarios, row)
	}
	return result, nil
}

// runScenario validates one scenario and runs it through Solve and Evaluate.
func runScenario(sc Scenario, evaluator *Evaluator, industry schema.Industry, media schema.MediaType) (schema.ScenarioResult, error) {
	family, err := schema.ParseFamily(sc.Family)
	if err != nil {
		return schema.ScenarioResult{}, err
	}

	mode := schema.ExplicitMode
	if sc.Mode != "" {
		mode = schema.SolveMode(strings.ToLower(sc.Mode))
		if _, ok := schema.ValidSolveModes[mode]; !ok {
			return schema.ScenarioResult{}, fmt.Errorf("%w: %q", schema.ErrUnknownMode, sc.Mode)
		}
	}

	target := schema.RateField(family)
	if sc.Target != "" {
		if target, err = schema.ParseField(sc.Target); err != nil {
			return schema.ScenarioResult{}, err
		}
	}

	for _, f := range schema.AllFields {
		if v, ok := sc.Inputs.Get(f); ok && (v < 0 || !schema.IsFinite(v)) {
			return schema.ScenarioResult{}, fmt.Errorf("input %s must be a non-negative number (received %v)", f, v)
		}
	}

	if industry, media, err = resolveSelectors(sc.Industry, sc.Media, industry, media); err != nil {
		return schema.ScenarioResult{}, err
	}

	return SolveAndEvaluate(SolveRequest{
		Family: family,
		Mode:   mode,
		Target: target,
		Inputs: sc.Inputs,
	}, evaluator, industry, media)
}

// resolveSelectors parses raw industry and media values, keeping the
// fallbacks for whichever one is empty.
func resolveSelectors(rawIndustry, rawMedia string, industry schema.Industry, media schema.MediaType) (schema.Industry, schema.MediaType, error) {
	if rawIndustry != "" {
		parsed, err := schema.ParseIndustry(rawIndustry)
		if err != nil {
			return "", "", err
		}
		industry = parsed
	}
	if rawMedia != "" {
		parsed, err := schema.ParseMediaType(rawMedia)
		if err != nil {
			return "", "", err
		}
		media = parsed
	}
	return industry, media, nil
}
