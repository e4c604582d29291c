package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/adtools/mediamath/schema"
	"github.com/fatih/color"
)

// Status label constants.
const (
	GoodValue    = "Good"    // Good value
	AverageValue = "Average" // Average value
	PoorValue    = "Poor"    // Poor value
	NoneValue    = "-"       // No benchmark available
)

// Color variables for console output.
var (
	GoodColor    = color.New(color.FgGreen, color.Bold) // GoodColor represents beating the benchmark.
	AverageColor = color.New(color.FgYellow)            // AverageColor represents being within the band, not bold.
	PoorColor    = color.New(color.FgRed, color.Bold)   // PoorColor represents standard danger.
)

// GetPlainLabel returns a plain text label for a benchmark status.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(status schema.BenchmarkStatus) string {
	switch status {
	case schema.GoodStatus:
		return GoodValue
	case schema.AverageStatus:
		return AverageValue
	case schema.PoorStatus:
		return PoorValue
	default:
		return NoneValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(status schema.BenchmarkStatus) string {
	text := GetPlainLabel(status)

	switch text {
	case GoodValue:
		return GoodColor.Sprint(text)
	case AverageValue:
		return AverageColor.Sprint(text)
	case PoorValue:
		return PoorColor.Sprint(text)
	default:
		return text
	}
}

// GetStatusEmoji returns a short marker for a status, used when emojis are enabled.
func GetStatusEmoji(status schema.BenchmarkStatus) string {
	switch status {
	case schema.GoodStatus:
		return "🟢"
	case schema.AverageStatus:
		return "🟡"
	case schema.PoorStatus:
		return "🔴"
	default:
		return ""
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
