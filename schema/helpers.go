package schema

import (
	"fmt"
	"strings"
)

// ParseTab resolves a tab name case-insensitively. An empty name selects the default tab.
func ParseTab(s string) (Tab, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return OverviewTab, nil
	}
	for _, t := range AllTabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w %q: must be overview, exploration, model, results", ErrUnknownTab, s)
}

// ParseMetric resolves a metric name case-insensitively. An empty name selects the default metric.
func ParseMetric(s string) (Metric, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return ADJOE, nil
	}
	for _, m := range AllMetrics {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w %q: must be ADJOE or ADJDE", ErrUnknownMetric, s)
}

// ParseChart resolves a chart name case-insensitively.
func ParseChart(s string) (ChartName, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range AllCharts {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w %q: must be one of %s", ErrUnknownChart, s, joinCharts())
}

func joinCharts() string {
	names := make([]string, len(AllCharts))
	for i, c := range AllCharts {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// TabTitle returns the navigation label of a tab, e.g. "Overview".
func TabTitle(t Tab) string {
	s := string(t)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
