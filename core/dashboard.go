package core

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/unc-data110/hoopstats/schema"
)

// Dashboard holds the interactive selection of the dashboard: which tab is
// shown and which metric the exploration scatter plots.
// It is safe for concurrent use.
type Dashboard struct {
	mu     sync.RWMutex
	tab    schema.Tab
	metric schema.Metric
}

// NewDashboard returns a dashboard on the overview tab with ADJOE selected.
func NewDashboard() *Dashboard {
	return &Dashboard{tab: schema.OverviewTab, metric: schema.ADJOE}
}

// Tab returns the active tab.
func (d *Dashboard) Tab() schema.Tab {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.tab
}

// Metric returns the selected scatter metric.
func (d *Dashboard) Metric() schema.Metric {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.metric
}

// SelectTab switches the active tab. The metric is left untouched.
// An unknown tab leaves the state unchanged and wraps schema.ErrUnknownTab.
func (d *Dashboard) SelectTab(tab schema.Tab) error {
	if !isKnownTab(tab) {
		return fmt.Errorf("%w %q", schema.ErrUnknownTab, tab)
	}
	d.mu.Lock()
	d.tab = tab
	d.mu.Unlock()
	return nil
}

// SelectMetric switches the scatter metric. The active tab is left untouched.
// An unknown metric leaves the state unchanged and wraps schema.ErrUnknownMetric.
func (d *Dashboard) SelectMetric(metric schema.Metric) error {
	if metric != schema.ADJOE && metric != schema.ADJDE {
		return fmt.Errorf("%w %q", schema.ErrUnknownMetric, metric)
	}
	d.mu.Lock()
	d.metric = metric
	d.mu.Unlock()
	return nil
}

// Render builds the view of the active tab. Random samples are drawn from src.
func (d *Dashboard) Render(src *rand.Rand) schema.View {
	d.mu.RLock()
	tab, metric := d.tab, d.metric
	d.mu.RUnlock()
	return BuildView(tab, metric, src)
}

func isKnownTab(tab schema.Tab) bool {
	for _, t := range schema.AllTabs {
		if t == tab {
			return true
		}
	}
	return false
}
