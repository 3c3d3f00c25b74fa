package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"darkroom/internal/report"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	failColor = color.New(color.FgRed)
)

// renderSummary prints the end-of-run accounting: per-status counts, media
// mix, byte totals for converted files, and a failure listing.
func renderSummary(out io.Writer, summary report.Summary) {
	fmt.Fprintf(out, "\nProcessed %d file(s) in %s\n",
		summary.Total, formatElapsed(summary.Elapsed))

	rows := []table.Row{
		{okColor.Sprint("Converted"), summary.Converted},
		{warnColor.Sprint("Skipped"), summary.Skipped},
		{failColor.Sprint("Failed"), summary.Failed},
	}
	fmt.Fprintln(out, renderTable(table.Row{"Result", "Count"}, rows, 1))

	if summary.Total > 0 {
		fmt.Fprintf(out, "Media: %d image(s), %d video(s)\n", summary.Images, summary.Videos)
	}
	if summary.Converted > 0 {
		fmt.Fprintf(out, "Size: %s in, %s out (%s)\n",
			humanize.IBytes(uint64(summary.InputBytes)),
			humanize.IBytes(uint64(summary.OutputBytes)),
			formatSpaceSaved(summary.SpaceSaved()))
	}

	if len(summary.Failures) > 0 {
		fmt.Fprintln(out, failColor.Sprint("\nFailures:"))
		for _, failure := range summary.Failures {
			fmt.Fprintf(out, "  %s: %s\n", failure.Path, failure.Reason)
		}
	}
}

func formatSpaceSaved(saved int64) string {
	if saved < 0 {
		return humanize.IBytes(uint64(-saved)) + " larger"
	}
	return humanize.IBytes(uint64(saved)) + " saved"
}

func formatElapsed(elapsed time.Duration) string {
	if elapsed >= time.Minute {
		return elapsed.Round(time.Second).String()
	}
	return elapsed.Round(time.Millisecond).String()
}
