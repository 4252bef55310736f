package ports

import (
	"context"

	"distbench/internal/profiling"
)

// ProfilerPort executes a callable once as an opaque scoped measurement and
// reports per-label call counts and cumulative/per-call time.
type ProfilerPort interface {
	Profile(ctx context.Context, label string, fn func(*profiling.Collector) error) (*profiling.Report, error)
}
