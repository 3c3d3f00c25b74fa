package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"darkroom/internal/config"
	"darkroom/internal/preflight"
)

// newCheckCommand reports whether the environment can support a run:
// transcoder availability, directory permissions, and free disk space.
func newCheckCommand(flags *convertFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check [input_dir]",
		Short: "Diagnose the environment before a conversion run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}

			var rows []table.Row
			failed := false

			for _, status := range preflight.CheckSystemDeps(cfg) {
				if status.Available {
					rows = append(rows, table.Row{status.Name, okColor.Sprint("OK"), "found " + status.Command})
					continue
				}
				// A missing transcoder degrades to skipping videos rather
				// than blocking the run.
				rows = append(rows, table.Row{status.Name, warnColor.Sprint("WARN"), status.Detail + " (videos will be skipped)"})
			}

			if len(args) == 1 {
				inputRoot, err := config.ExpandPath(args[0])
				if err != nil {
					return err
				}
				results := []preflight.Result{
					preflight.CheckDirectoryAccess("Input", inputRoot),
					preflight.CheckFreeSpace("Free space", inputRoot),
				}
				outputRoot := flags.outputDir
				if outputRoot == "" {
					outputRoot = cfg.OutputRootFor(inputRoot)
				}
				if _, err := os.Stat(outputRoot); err == nil {
					results = append(results, preflight.CheckDirectoryAccess("Output", outputRoot))
				}
				for _, result := range results {
					if result.Passed {
						rows = append(rows, table.Row{result.Name, okColor.Sprint("OK"), result.Detail})
					} else {
						failed = true
						rows = append(rows, table.Row{result.Name, failColor.Sprint("FAIL"), result.Detail})
					}
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(table.Row{"Check", "Status", "Detail"}, rows))

			if failed {
				return fmt.Errorf("environment checks failed")
			}
			return nil
		},
	}
}
