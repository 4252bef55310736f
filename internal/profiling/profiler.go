package profiling

import (
	"context"
	"os"
	"runtime/pprof"

	"distbench/internal/errors"
)

// Profiler runs a callable once under a fresh collector and reports per-label
// call counts and cumulative time, sorted by total time. When CPUProfile is
// set, a pprof CPU profile covering the callable is written there as well.
type Profiler struct {
	cpuProfile string
}

// NewProfiler creates a profiler. cpuProfile may be empty.
func NewProfiler(cpuProfile string) *Profiler {
	return &Profiler{cpuProfile: cpuProfile}
}

// Profile executes fn to completion as one tracked call under label and
// returns the aggregated report. fn receives the collector so inner calls can
// be tracked under their own labels.
func (p *Profiler) Profile(ctx context.Context, label string, fn func(*Collector) error) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if p.cpuProfile != "" {
		f, err := os.Create(p.cpuProfile)
		if err != nil {
			return nil, errors.ProfileError("failed to create CPU profile file", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return nil, errors.ProfileError("failed to start CPU profile", err)
		}
		defer pprof.StopCPUProfile()
	}

	collector := NewCollector()
	stop := collector.Track(label)
	err := fn(collector)
	stop()
	if err != nil {
		return nil, err
	}

	report := collector.Report()
	report.Sort(SortByTotal)
	return report, nil
}
