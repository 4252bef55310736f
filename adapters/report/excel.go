// Package report writes comparison results to spreadsheet artifacts.
package report

import (
	"context"

	"github.com/xuri/excelize/v2"

	"distbench/domain/bench"
	"distbench/internal/errors"
)

// ExcelWriter implements ports.ReportPort by writing one sheet per comparison
// file: a header row followed by one row per variant, then the run summary.
type ExcelWriter struct {
	path string
}

// NewExcelWriter creates a writer targeting path
func NewExcelWriter(path string) *ExcelWriter {
	return &ExcelWriter{path: path}
}

var headers = []string{
	"variant", "agents", "steps", "lambda",
	"elapsed_ms", "sampling_calls", "per_call_us",
}

// WriteComparison renders cmp to the configured xlsx file
func (w *ExcelWriter) WriteComparison(ctx context.Context, cmp *bench.Comparison) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Sheet1"

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return errors.ReportError("failed to write header cell", err)
		}
	}

	for r, result := range []bench.VariantResult{cmp.ObjectOwned, cmp.ExplicitState} {
		values := []interface{}{
			string(result.Variant),
			result.Experiment.Agents,
			result.Experiment.Steps,
			result.Experiment.Lambda,
			float64(result.Elapsed.Microseconds()) / 1000.0,
			result.SamplingCalls,
			float64(result.PerCall().Nanoseconds()) / 1000.0,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return errors.ReportError("failed to write result cell", err)
			}
		}
	}

	summary := [][]interface{}{
		{"run_id", cmp.RunID.String()},
		{"speedup", cmp.Speedup},
		{"faster", string(cmp.Faster())},
		{"started_at", cmp.StartedAt.String()},
		{"finished_at", cmp.FinishedAt.String()},
	}
	for r, pair := range summary {
		for c, v := range pair {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+5)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return errors.ReportError("failed to write summary cell", err)
			}
		}
	}

	if err := f.SaveAs(w.path); err != nil {
		return errors.ReportError("failed to save report", err)
	}
	return nil
}
