package profiling

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/montanaflynn/stats"
)

// SortKey selects the metric a report is ordered by
type SortKey int

const (
	// SortByTotal orders rows by cumulative time, descending (the default)
	SortByTotal SortKey = iota
	// SortByCalls orders rows by call count, descending
	SortByCalls
	// SortByPerCall orders rows by mean per-call time, descending
	SortByPerCall
)

// Row is one label's aggregated measurements
type Row struct {
	Label   string        `json:"label"`
	Calls   int           `json:"calls"`
	Total   time.Duration `json:"total_ns"`
	PerCall time.Duration `json:"per_call_ns"`
	Median  time.Duration `json:"median_ns"`
	P95     time.Duration `json:"p95_ns"`
}

// Report is the aggregated view of one collector
type Report struct {
	Rows []Row `json:"rows"`
}

// Report aggregates the collector into rows with duration summaries
func (c *Collector) Report() *Report {
	report := &Report{Rows: make([]Row, 0, len(c.order))}
	for _, label := range c.order {
		e := c.entries[label]
		row := Row{
			Label: label,
			Calls: e.calls,
			Total: e.total,
		}
		if e.calls > 0 {
			row.PerCall = e.total / time.Duration(e.calls)
			if median, err := stats.Median(e.durations); err == nil {
				row.Median = time.Duration(median)
			}
			if p95, err := stats.Percentile(e.durations, 95); err == nil {
				row.P95 = time.Duration(p95)
			}
		}
		report.Rows = append(report.Rows, row)
	}
	return report
}

// Sort orders the rows by the given key, descending
func (r *Report) Sort(key SortKey) {
	sort.SliceStable(r.Rows, func(i, j int) bool {
		a, b := r.Rows[i], r.Rows[j]
		switch key {
		case SortByCalls:
			return a.Calls > b.Calls
		case SortByPerCall:
			return a.PerCall > b.PerCall
		default:
			return a.Total > b.Total
		}
	})
}

// String renders the report as an aligned table
func (r *Report) String() string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LABEL\tCALLS\tTOTAL\tPER-CALL\tMEDIAN\tP95")
	for _, row := range r.Rows {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n",
			row.Label, row.Calls, row.Total, row.PerCall, row.Median, row.P95)
	}
	w.Flush()
	return sb.String()
}
