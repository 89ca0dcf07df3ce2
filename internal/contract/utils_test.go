package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unc-data110/hoopstats/schema"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{
			name:     "smallest value possible",
			input:    0.0,
			expected: schema.MinimalValue,
		},
		{
			name:     "tempo coefficient",
			input:    0.005,
			expected: schema.MinimalValue,
		},
		{
			name:     "exactly weak",
			input:    0.05,
			expected: schema.WeakValue,
		},
		{
			name:     "defense coefficient",
			input:    0.45,
			expected: schema.SubstantialValue,
		},
		{
			name:     "exactly strong",
			input:    0.5,
			expected: schema.StrongValue,
		},
		{
			name:     "offense coefficient",
			input:    0.64,
			expected: schema.StrongValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.input))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		label string
	}{
		{"minimal", 0.001, schema.MinimalValue},
		{"weak", 0.1, schema.WeakValue},
		{"substantial", 0.3, schema.SubstantialValue},
		{"strong", 0.9, schema.StrongValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetColorLabel(tt.value)
			// Should contain the plain label
			assert.Contains(t, result, tt.label)
		})
	}
}

func TestGetDecisionLabel(t *testing.T) {
	assert.Equal(t, "Reject H₀", GetDecisionLabel(schema.PValue))
	assert.Equal(t, "Fail to reject H₀", GetDecisionLabel(0.05))
	assert.Equal(t, "Fail to reject H₀", GetDecisionLabel(0.4))
	assert.Contains(t, GetColorDecisionLabel(0.0005), "Reject H₀")
	assert.Contains(t, GetColorDecisionLabel(0.5), "Fail to reject H₀")
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		file, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, file)
	})

	t.Run("valid path creates file", func(t *testing.T) {
		tempFile := filepath.Join(t.TempDir(), "test_output.txt")

		file, err := SelectOutputFile(tempFile)
		require.NoError(t, err)
		assert.NotNil(t, file)
		_ = file.Close()

		// Verify file was created
		_, err = os.Stat(tempFile)
		assert.NoError(t, err)
	})

	t.Run("missing directory fails", func(t *testing.T) {
		_, err := SelectOutputFile(filepath.Join(t.TempDir(), "missing", "out.txt"))
		assert.Error(t, err)
	})
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "Offense...", TruncateText("Offense Matters More", 10))
	assert.Equal(t, "abcdef", TruncateText("abcdef", 3), "tiny widths leave text untouched")
	assert.Equal(t, "R²...", TruncateText("R² Score here", 5), "truncation counts runes")
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"empty", "   ", 10, nil},
		{"fits", "Tempo is Overrated", 40, []string{"Tempo is Overrated"}},
		{"wraps", "Offense wins championships today", 16, []string{"Offense wins", "championships", "today"}},
		{"long word", "supercalifragilistic word", 5, []string{"supercalifragilistic", "word"}},
		{"no width", "a  b   c", 0, []string{"a b c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WrapText(tt.text, tt.width))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, v, s)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, v, s)
	}
	_, err := ParseBoolString("maybe")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "maybe"))
}
