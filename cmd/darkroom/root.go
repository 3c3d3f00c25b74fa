package main

import (
	"errors"

	"github.com/spf13/cobra"
)

type convertFlags struct {
	configPath  string
	outputDir   string
	quality     int
	workers     int
	preset      string
	overwrite   bool
	noOverwrite bool
	dryRun      bool
}

func newRootCommand() *cobra.Command {
	flags := &convertFlags{}

	rootCmd := &cobra.Command{
		Use:           "darkroom [flags] <input_dir>",
		Short:         "Bulk-convert HEIC photos and camera video to JPEG and MP4",
		Long: `Darkroom walks a directory tree, converts every HEIC/HEIF image to JPEG
and every MOV/QT/MP4/M4V video to an H.264/AAC MP4, and writes the results
into a mirrored output tree. Files it cannot convert are reported at the
end without stopping the rest of the run.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			if flags.overwrite && flags.noOverwrite {
				return errors.New("--overwrite and --no-overwrite are mutually exclusive")
			}
			return runConvert(cmd, args[0], flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Configuration file path")

	rootCmd.Flags().StringVarP(&flags.outputDir, "output", "o", "", "Output directory (default: <input_dir>/converted)")
	rootCmd.Flags().IntVarP(&flags.quality, "quality", "q", 0, "JPEG encode quality, 1-100 (default 95)")
	rootCmd.Flags().IntVarP(&flags.workers, "workers", "w", 0, "Worker pool size (default: one per CPU core)")
	rootCmd.Flags().StringVar(&flags.preset, "preset", "", "x264 speed preset for video transcodes")
	rootCmd.Flags().BoolVar(&flags.overwrite, "overwrite", false, "Re-convert files whose output already exists")
	rootCmd.Flags().BoolVar(&flags.noOverwrite, "no-overwrite", false, "Skip files whose output already exists")
	rootCmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "List the planned conversions without running them")

	rootCmd.AddCommand(newCheckCommand(flags))
	rootCmd.AddCommand(newConfigCommand(flags))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
