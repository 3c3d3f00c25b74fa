package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"darkroom/internal/pool"
)

// progressReporter draws an interactive bar when stdout is a terminal and
// stays silent otherwise, so piped output only carries the final summary.
type progressReporter struct {
	bar *progressbar.ProgressBar
}

func newProgressReporter(out io.Writer, total int) *progressReporter {
	if !writerIsTerminal(out) {
		return &progressReporter{}
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("converting"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetWidth(30),
	)
	return &progressReporter{bar: bar}
}

// update is invoked once per completed task from the pool's collection
// goroutine, never concurrently.
func (p *progressReporter) update(progress pool.Progress) {
	if p.bar == nil {
		return
	}
	_ = p.bar.Set(progress.Completed)
}

func (p *progressReporter) finish() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
}

func writerIsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
