package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adtools/mediamath/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    schema.BenchmarkStatus
		expected string
	}{
		{name: "good", input: schema.GoodStatus, expected: GoodValue},
		{name: "average", input: schema.AverageStatus, expected: AverageValue},
		{name: "poor", input: schema.PoorStatus, expected: PoorValue},
		{name: "no status", input: "", expected: NoneValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.input))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	for _, status := range []schema.BenchmarkStatus{schema.GoodStatus, schema.AverageStatus, schema.PoorStatus} {
		t.Run(string(status), func(t *testing.T) {
			assert.Contains(t, GetColorLabel(status), GetPlainLabel(status))
		})
	}
	assert.Equal(t, NoneValue, GetColorLabel(""))
}

func TestGetStatusEmoji(t *testing.T) {
	assert.NotEmpty(t, GetStatusEmoji(schema.GoodStatus))
	assert.NotEqual(t, GetStatusEmoji(schema.GoodStatus), GetStatusEmoji(schema.PoorStatus))
	assert.Empty(t, GetStatusEmoji(""))
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path is stdout", func(t *testing.T) {
		f, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, f)
	})

	t.Run("creates file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		f, err := SelectOutputFile(path)
		require.NoError(t, err)
		require.NoError(t, f.Close())
		assert.FileExists(t, path)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := SelectOutputFile(filepath.Join(t.TempDir(), "nope", "out.txt"))
		assert.Error(t, err)
	})
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{"yes", true, false},
		{"YES", true, false},
		{"true", true, false},
		{"1", true, false},
		{"no", false, false},
		{"False", false, false},
		{"0", false, false},
		{"auto", false, true},
		{"", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseColorString(t *testing.T) {
	got, err := ParseColorString("yes")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = ParseColorString("no")
	require.NoError(t, err)
	assert.False(t, got)

	// Test binaries do not write to a terminal.
	_, err = ParseColorString("AUTO")
	require.NoError(t, err)

	_, err = ParseColorString("rainbow")
	assert.Error(t, err)
}
