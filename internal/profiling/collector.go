// Package profiling provides scoped call-count and wall-clock measurement for
// benchmark runs, plus optional CPU profile capture via runtime/pprof.
package profiling

import (
	"time"
)

// entry accumulates measurements for one label
type entry struct {
	calls     int
	total     time.Duration
	durations []float64 // nanoseconds, kept for summary statistics
}

// Collector records per-label call counts and durations. Benchmark runs are
// synchronous, so Collector is not safe for concurrent use.
type Collector struct {
	entries map[string]*entry
	order   []string // first-seen label order
}

// NewCollector creates an empty collector
func NewCollector() *Collector {
	return &Collector{entries: make(map[string]*entry)}
}

// Track starts a timer for one call under label and returns the stop function
func (c *Collector) Track(label string) func() {
	start := time.Now()
	return func() {
		c.Record(label, time.Since(start))
	}
}

// Record adds one completed call under label
func (c *Collector) Record(label string, d time.Duration) {
	e, ok := c.entries[label]
	if !ok {
		e = &entry{}
		c.entries[label] = e
		c.order = append(c.order, label)
	}
	e.calls++
	e.total += d
	e.durations = append(e.durations, float64(d))
}

// Calls returns the call count recorded under label
func (c *Collector) Calls(label string) int {
	if e, ok := c.entries[label]; ok {
		return e.calls
	}
	return 0
}

// Total returns the cumulative time recorded under label
func (c *Collector) Total(label string) time.Duration {
	if e, ok := c.entries[label]; ok {
		return e.total
	}
	return 0
}

// Labels returns recorded labels in first-seen order
func (c *Collector) Labels() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}
