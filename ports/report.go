package ports

import (
	"context"

	"distbench/domain/bench"
)

// ReportPort persists a finished comparison to a human-readable artifact.
// The comparator core itself never writes anything; reporting is opt-in.
type ReportPort interface {
	WriteComparison(ctx context.Context, cmp *bench.Comparison) error
}
