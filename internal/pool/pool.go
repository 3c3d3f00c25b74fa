package pool

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"darkroom/internal/convert"
	"darkroom/internal/logging"
	"darkroom/internal/plan"
)

// ConvertFunc executes one task and returns its outcome. It must not
// panic and must always return; per-task failures are expressed in the
// outcome, never as an error.
type ConvertFunc func(ctx context.Context, task plan.Task) convert.Outcome

// Progress describes one completed task.
type Progress struct {
	Completed int
	Total     int
	Path      string
}

// Options configures a run.
type Options struct {
	// Workers is the pool size; values below 1 default to the CPU core
	// count.
	Workers int
	// OnProgress, when set, is invoked once per completed task from the
	// collection goroutine (never concurrently).
	OnProgress func(Progress)
	Logger     *slog.Logger
}

// Run converts every task using a pool of workers and returns one outcome
// per task. A cancelled context stops new work; tasks that were never
// started are recorded as failed with the cancellation reason so the
// outcome count always matches the task count.
func Run(ctx context.Context, tasks []plan.Task, fn ConvertFunc, opts Options) []convert.Outcome {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With(slog.String(logging.FieldComponent, "pool"))

	total := len(tasks)
	if total == 0 {
		return nil
	}

	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > total {
		workers = total
	}
	logger.Debug("starting workers", slog.Int("workers", workers), slog.Int("tasks", total))

	taskCh := make(chan plan.Task)
	outcomeCh := make(chan convert.Outcome)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, taskCh, outcomeCh, fn)
		}()
	}

	go func() {
		defer close(taskCh)
		for _, task := range tasks {
			taskCh <- task
		}
	}()

	go func() {
		wg.Wait()
		close(outcomeCh)
	}()

	outcomes := make([]convert.Outcome, 0, total)
	for outcome := range outcomeCh {
		outcomes = append(outcomes, outcome)
		if opts.OnProgress != nil {
			opts.OnProgress(Progress{
				Completed: len(outcomes),
				Total:     total,
				Path:      outcome.Task.Input,
			})
		}
	}
	return outcomes
}

// worker pulls tasks until the channel closes. After cancellation it keeps
// draining so every remaining task still receives an outcome.
func worker(ctx context.Context, tasks <-chan plan.Task, outcomes chan<- convert.Outcome, fn ConvertFunc) {
	for task := range tasks {
		if err := ctx.Err(); err != nil {
			outcomes <- convert.Outcome{
				Task:   task,
				Status: convert.StatusFailed,
				Reason: "run interrupted: " + err.Error(),
			}
			continue
		}
		outcomes <- fn(ctx, task)
	}
}
