package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/unc-data110/hoopstats/schema"
)

// Color variables for console output.
var (
	StrongColor      = color.New(color.FgGreen, color.Bold)   // StrongColor marks the dominant predictors.
	SubstantialColor = color.New(color.FgYellow, color.Bold)  // SubstantialColor marks clearly relevant predictors.
	WeakColor        = color.New(color.FgMagenta)             // WeakColor marks marginal predictors.
	MinimalColor     = color.New(color.FgCyan)                // MinimalColor marks predictors with negligible effect.
	RejectColor      = color.New(color.FgGreen, color.Bold)   // RejectColor marks a significant test result.
	RetainColor      = color.New(color.FgRed, color.Bold)     // RetainColor marks a non-significant test result.
	HeaderColor      = color.New(color.FgHiBlue, color.Bold)  // HeaderColor marks section headers.
	ValueColor       = color.New(color.FgHiWhite, color.Bold) // ValueColor marks headline numbers.
)

// GetPlainLabel returns a plain text label describing the strength of a coefficient.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(value float64) string {
	return schema.GetPlainLabel(value)
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(value float64) string {
	text := GetPlainLabel(value)

	switch text {
	case schema.StrongValue:
		return StrongColor.Sprint(text)
	case schema.SubstantialValue:
		return SubstantialColor.Sprint(text)
	case schema.WeakValue:
		return WeakColor.Sprint(text)
	default: // "Minimal"
		return MinimalColor.Sprint(text)
	}
}

// GetDecisionLabel returns the hypothesis test decision for a p-value.
func GetDecisionLabel(pValue float64) string {
	if pValue < schema.SignificanceLevel {
		return "Reject H₀"
	}
	return "Fail to reject H₀"
}

// GetColorDecisionLabel returns the decision label colored for console output.
func GetColorDecisionLabel(pValue float64) string {
	text := GetDecisionLabel(pValue)
	if pValue < schema.SignificanceLevel {
		return RejectColor.Sprint(text)
	}
	return RetainColor.Sprint(text)
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
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

// LogInfo logs an informational line to stderr.
func LogInfo(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// TruncateText truncates text to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 to ensure there's space for both the "..." suffix and at least one character of content.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// WrapText breaks text into lines no wider than width, splitting on spaces.
// Words longer than width are kept whole on their own line.
func WrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	var current []rune
	for _, word := range words {
		w := []rune(word)
		switch {
		case len(current) == 0:
			current = append(current, w...)
		case len(current)+1+len(w) <= width:
			current = append(current, ' ')
			current = append(current, w...)
		default:
			lines = append(lines, string(current))
			current = append([]rune(nil), w...)
		}
	}
	return append(lines, string(current))
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
