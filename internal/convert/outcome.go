package convert

import (
	"time"

	"darkroom/internal/plan"
)

// Status classifies the result of one task.
type Status string

const (
	StatusConverted Status = "converted"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Outcome records the result of exactly one task. Every task produces
// exactly one outcome; the coordinator owns it until the summary folds it
// in.
type Outcome struct {
	Task        plan.Task
	Status      Status
	Reason      string
	OutputBytes int64
	Elapsed     time.Duration
}

func converted(task plan.Task, outputBytes int64, elapsed time.Duration) Outcome {
	return Outcome{Task: task, Status: StatusConverted, OutputBytes: outputBytes, Elapsed: elapsed}
}

func skipped(task plan.Task, reason string) Outcome {
	return Outcome{Task: task, Status: StatusSkipped, Reason: reason}
}

func failed(task plan.Task, err error, elapsed time.Duration) Outcome {
	reason := ""
	if err != nil {
		reason = err.Error()
	}
	return Outcome{Task: task, Status: StatusFailed, Reason: reason, Elapsed: elapsed}
}
