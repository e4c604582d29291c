package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/adtools/mediamath/internal/contract"
	"github.com/adtools/mediamath/schema"
)

// getDisplayNameForFamily returns the display name with emoji for a family.
func getDisplayNameForFamily(family schema.MetricFamily, useEmojis bool) string {
	name := schema.MetricLabel(schema.RateField(family), "")
	if !useEmojis {
		return name
	}
	switch family {
	case schema.CPMFamily:
		return "💵 " + name
	case schema.CPVFamily:
		return "▶️  " + name
	case schema.CTRFamily:
		return "🖱️  " + name
	case schema.ViewRateFamily:
		return "👀 " + name
	default:
		return name
	}
}

// WriteFormulas outputs the formula reference, dispatching based on the output format configured.
func WriteFormulas(defs []schema.FormulaDefinition, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, defs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"Family", "Target", "Inputs", "Formula", "Label"}, func(cw *csv.Writer) error {
				for _, d := range defs {
					record := []string{string(d.Family), string(d.Target), string(d.Inputs[0]) + "|" + string(d.Inputs[1]), d.Expression, d.Label}
					if err := cw.Write(record); err != nil {
						return fmt.Errorf("failed to write CSV record: %w", err)
					}
				}
				return nil
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported("formulas")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFormulasText(w, defs, cfg)
		}, "Wrote text")
	}
}

// writeFormulasText prints each family followed by its formulas in auto-solve order.
func writeFormulasText(w io.Writer, defs []schema.FormulaDefinition, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "%s\n", heading(cfg, "🧮", "Media Metric Formulas")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Auto mode solves the first formula whose inputs are both known.\n"); err != nil {
		return err
	}

	var current schema.MetricFamily
	for _, d := range defs {
		if d.Family != current {
			current = d.Family
			if _, err := fmt.Fprintf(w, "\n%s\n", getDisplayNameForFamily(d.Family, cfg.UseEmojis)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "   %-40s %s\n", d.Expression, d.Label); err != nil {
			return err
		}
	}
	return nil
}
