package report

import (
	"sort"
	"time"

	"darkroom/internal/convert"
	"darkroom/internal/scan"
)

// Failure names one failed task and why it failed.
type Failure struct {
	Path   string
	Reason string
}

// Summary holds the aggregate counters for one run.
type Summary struct {
	Total     int
	Converted int
	Skipped   int
	Failed    int

	Images int
	Videos int

	InputBytes  int64
	OutputBytes int64
	Elapsed     time.Duration

	Failures []Failure
}

// Aggregate folds every outcome into a Summary. Outcome order does not
// affect the result; failures are listed sorted by path.
func Aggregate(outcomes []convert.Outcome, elapsed time.Duration) Summary {
	summary := Summary{Total: len(outcomes), Elapsed: elapsed}

	for _, outcome := range outcomes {
		switch outcome.Task.Kind {
		case scan.KindVideo:
			summary.Videos++
		default:
			summary.Images++
		}

		switch outcome.Status {
		case convert.StatusConverted:
			summary.Converted++
			summary.InputBytes += outcome.Task.InputSize
			summary.OutputBytes += outcome.OutputBytes
		case convert.StatusSkipped:
			summary.Skipped++
		case convert.StatusFailed:
			summary.Failed++
			summary.Failures = append(summary.Failures, Failure{
				Path:   outcome.Task.Input,
				Reason: outcome.Reason,
			})
		}
	}

	sort.Slice(summary.Failures, func(i, j int) bool {
		return summary.Failures[i].Path < summary.Failures[j].Path
	})
	return summary
}

// SpaceSaved returns the byte difference between converted inputs and their
// outputs. Positive means outputs are smaller.
func (s Summary) SpaceSaved() int64 {
	return s.InputBytes - s.OutputBytes
}
